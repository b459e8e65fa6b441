package verify

import (
	"fmt"
	"os"

	apperrors "github.com/catherinevee/terraform-gcp-sub000/internal/errors"

	"gopkg.in/yaml.v3"
)

// Expectations are the thresholds the suites test against. A file given
// with --expectations overlays the defaults, so environments only state
// what differs.
type Expectations struct {
	MinServiceAccounts  int    `yaml:"min_service_accounts"`
	MinRepositories     int    `yaml:"min_repositories"`
	VPCRoutingMode      string `yaml:"vpc_routing_mode"`
	MinSubnets          int    `yaml:"min_subnets"`
	MinFirewalls        int    `yaml:"min_firewalls"`
	RequireNAT          bool   `yaml:"require_nat"`
	MinForwardingRules  int    `yaml:"min_forwarding_rules"`
	MinKeyRings         int    `yaml:"min_key_rings"`
	MinSecrets          int    `yaml:"min_secrets"`
	MinSQLInstances     int    `yaml:"min_sql_instances"`
	RequireSQLBackups   bool   `yaml:"require_sql_backups"`
	MinRedisInstances   int    `yaml:"min_redis_instances"`
	MinBuckets          int    `yaml:"min_buckets"`
	MinDatasets         int    `yaml:"min_datasets"`
	MinTopics           int    `yaml:"min_topics"`
	MinSubscriptions    int    `yaml:"min_subscriptions"`
	MinClusters         int    `yaml:"min_clusters"`
	RequirePrivateNodes bool   `yaml:"require_private_nodes"`
	RequireWorkloadID   bool   `yaml:"require_workload_identity"`
	MinRunServices      int    `yaml:"min_run_services"`
	BootCanaryVM        bool   `yaml:"boot_canary_vm"`
	MinSinks            int    `yaml:"min_sinks"`
	MinAlertPolicies    int    `yaml:"min_alert_policies"`
	MinUptimeChecks     int    `yaml:"min_uptime_checks"`
	MinSchedulerJobs    int    `yaml:"min_scheduler_jobs"`
	MinSSLPolicies      int    `yaml:"min_ssl_policies"`
	MinSecurityPolicies int    `yaml:"min_security_policies"`
	RequireBackupBucket bool   `yaml:"require_backup_bucket"`
}

// DefaultExpectations matches the baseline environment layout.
func DefaultExpectations() *Expectations {
	return &Expectations{
		MinServiceAccounts:  1,
		MinRepositories:     1,
		VPCRoutingMode:      "REGIONAL",
		MinSubnets:          2,
		MinFirewalls:        1,
		RequireNAT:          true,
		MinForwardingRules:  1,
		MinKeyRings:         1,
		MinSecrets:          1,
		MinSQLInstances:     1,
		RequireSQLBackups:   true,
		MinRedisInstances:   1,
		MinBuckets:          1,
		MinDatasets:         1,
		MinTopics:           1,
		MinSubscriptions:    1,
		MinClusters:         1,
		RequirePrivateNodes: true,
		RequireWorkloadID:   true,
		MinRunServices:      1,
		BootCanaryVM:        true,
		MinSinks:            1,
		MinAlertPolicies:    1,
		MinUptimeChecks:     1,
		MinSchedulerJobs:    1,
		MinSSLPolicies:      1,
		MinSecurityPolicies: 1,
		RequireBackupBucket: true,
	}
}

// LoadExpectations reads a YAML overlay on top of the defaults.
func LoadExpectations(path string) (*Expectations, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.NewConfigError(
			fmt.Sprintf("failed to read expectations file %s", path), err)
	}

	expect := DefaultExpectations()
	if err := yaml.Unmarshal(data, expect); err != nil {
		return nil, apperrors.NewConfigError(
			fmt.Sprintf("failed to parse expectations file %s", path), err)
	}
	return expect, nil
}
