// Package phase defines the seven fixed buildout phases of the platform
// and the Terraform targets each one owns. The table is the single source
// of truth consumed by the deployment driver, the rollback driver, and the
// verification suites.
package phase

import (
	"fmt"
	"strconv"

	apperrors "github.com/catherinevee/terraform-gcp-sub000/internal/errors"
)

// Phase is one of seven fixed stages of infrastructure buildout.
// Each phase owns a disjoint set of Terraform-managed resources.
type Phase int

const (
	// Foundation enables APIs and creates service accounts and registries.
	Foundation Phase = iota
	// Networking builds the VPC, subnets, firewall rules, NAT, and load balancer.
	Networking
	// Security provisions KMS, Secret Manager, and IAM roles and bindings.
	Security
	// Data provisions Cloud SQL, Memorystore, BigQuery, GCS, and Pub/Sub.
	Data
	// Compute provisions GKE, Cloud Run, and Cloud Functions.
	Compute
	// Observability provisions log sinks, alerting policies, and channels.
	Observability
	// Operations hardens production: Cloud Armor, SSL policies, scheduler, backups.
	Operations
)

// Count is the number of phases.
const Count = 7

// Spec carries a phase's static descriptor: its Terraform resource targets
// and the human-readable resource list shown before a rollback.
type Spec struct {
	Name        string
	Description string
	// Targets are passed to terraform plan/destroy as -target selectors.
	Targets []string
	// Resources names what the phase owns, for operator confirmation.
	Resources []string
}

var specs = map[Phase]Spec{
	Foundation: {
		Name:        "foundation",
		Description: "Project APIs, service accounts, artifact registry",
		Targets: []string{
			"module.project_services",
			"module.service_accounts",
			"module.artifact_registry",
		},
		Resources: []string{
			"Enabled service APIs",
			"Platform service accounts",
			"Artifact Registry repository",
		},
	},
	Networking: {
		Name:        "networking",
		Description: "VPC, subnets, firewall rules, Cloud NAT, load balancer",
		Targets: []string{
			"module.vpc",
			"module.subnets",
			"module.firewall",
			"module.cloud_nat",
			"module.load_balancer",
		},
		Resources: []string{
			"VPC network",
			"Regional subnets",
			"Firewall rules",
			"Cloud Router and NAT",
			"Global load balancer",
		},
	},
	Security: {
		Name:        "security",
		Description: "KMS keyring and keys, Secret Manager secrets, IAM bindings",
		Targets: []string{
			"module.kms",
			"module.secret_manager",
			"module.iam",
		},
		Resources: []string{
			"KMS keyring and crypto keys",
			"Secret Manager secrets",
			"Custom IAM roles and bindings",
		},
	},
	Data: {
		Name:        "data",
		Description: "Cloud SQL, Memorystore Redis, BigQuery, GCS buckets, Pub/Sub",
		Targets: []string{
			"module.cloud_sql",
			"module.memorystore",
			"module.bigquery",
			"module.storage",
			"module.pubsub",
		},
		Resources: []string{
			"Cloud SQL instance and databases",
			"Memorystore Redis instance",
			"BigQuery datasets",
			"Cloud Storage buckets",
			"Pub/Sub topics and subscriptions",
		},
	},
	Compute: {
		Name:        "compute",
		Description: "GKE cluster, Cloud Run services, Cloud Functions",
		Targets: []string{
			"module.gke",
			"module.cloud_run",
			"module.cloud_functions",
		},
		Resources: []string{
			"GKE cluster and node pools",
			"Cloud Run services",
			"Cloud Functions",
		},
	},
	Observability: {
		Name:        "observability",
		Description: "Log sinks, alert policies, notification channels, uptime checks",
		Targets: []string{
			"module.logging",
			"module.monitoring",
			"module.alerting",
		},
		Resources: []string{
			"Log sinks and log-based metrics",
			"Alert policies",
			"Notification channels",
			"Uptime checks",
		},
	},
	Operations: {
		Name:        "operations",
		Description: "Cloud Armor, SSL policies, scheduler jobs, backup plumbing",
		Targets: []string{
			"module.cloud_armor",
			"module.ssl_policy",
			"module.scheduler",
			"module.backup",
		},
		Resources: []string{
			"Cloud Armor security policy",
			"SSL policy",
			"Cloud Scheduler jobs",
			"Backup bucket and schedules",
		},
	},
}

// Parse converts a command-line argument into a Phase.
// Anything outside 0-6 is rejected here, before any cloud call is made.
func Parse(arg string) (Phase, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, apperrors.NewInvalidInputError(
			fmt.Sprintf("invalid phase: %s. Must be 0-6", arg), err)
	}
	p := Phase(n)
	if err := p.Valid(); err != nil {
		return 0, err
	}
	return p, nil
}

// Valid reports whether the phase is within the fixed 0-6 table.
func (p Phase) Valid() error {
	if p < Foundation || p > Operations {
		return apperrors.NewInvalidInputError(
			fmt.Sprintf("invalid phase: %d. Must be 0-6", int(p)), nil)
	}
	return nil
}

// Spec returns the phase's static descriptor.
func (p Phase) Spec() Spec {
	return specs[p]
}

// Name returns the phase's short name, e.g. "networking".
func (p Phase) Name() string {
	return specs[p].Name
}

// String implements fmt.Stringer, e.g. "phase 1 (networking)".
func (p Phase) String() string {
	if p.Valid() != nil {
		return fmt.Sprintf("phase %d (unknown)", int(p))
	}
	return fmt.Sprintf("phase %d (%s)", int(p), specs[p].Name)
}

// All returns every phase in deployment order.
func All() []Phase {
	return []Phase{Foundation, Networking, Security, Data, Compute, Observability, Operations}
}
