// Package gcp wraps the Google Cloud APIs behind narrow per-service
// interfaces so the health checker and verification suites can be tested
// against mocks. The real implementations use the discovery-based clients
// from google.golang.org/api plus the Cloud Resource Manager gRPC client.
package gcp

import (
	"context"

	apperrors "github.com/catherinevee/terraform-gcp-sub000/internal/errors"

	resourcemanager "cloud.google.com/go/resourcemanager/apiv3"
	"cloud.google.com/go/resourcemanager/apiv3/resourcemanagerpb"
	artifactregistry "google.golang.org/api/artifactregistry/v1"
	bigquery "google.golang.org/api/bigquery/v2"
	cloudbilling "google.golang.org/api/cloudbilling/v1"
	cloudfunctions "google.golang.org/api/cloudfunctions/v2"
	cloudkms "google.golang.org/api/cloudkms/v1"
	cloudscheduler "google.golang.org/api/cloudscheduler/v1"
	compute "google.golang.org/api/compute/v1"
	container "google.golang.org/api/container/v1"
	iam "google.golang.org/api/iam/v1"
	logging "google.golang.org/api/logging/v2"
	monitoring "google.golang.org/api/monitoring/v3"
	pubsub "google.golang.org/api/pubsub/v1"
	redis "google.golang.org/api/redis/v1"
	run "google.golang.org/api/run/v2"
	secretmanager "google.golang.org/api/secretmanager/v1"
	serviceusage "google.golang.org/api/serviceusage/v1"
	sqladmin "google.golang.org/api/sqladmin/v1"
	storage "google.golang.org/api/storage/v1"
)

// ProjectService reads project metadata from Cloud Resource Manager.
type ProjectService interface {
	GetProject(ctx context.Context, projectID string) (*resourcemanagerpb.Project, error)
}

// BillingService reads project billing state.
type BillingService interface {
	GetBillingInfo(ctx context.Context, projectID string) (*cloudbilling.ProjectBillingInfo, error)
}

// UsageService lists the APIs enabled on a project.
type UsageService interface {
	ListEnabledServices(ctx context.Context, projectID string) ([]string, error)
}

// NetworkService reads VPC networking resources.
type NetworkService interface {
	GetNetwork(ctx context.Context, projectID, name string) (*compute.Network, error)
	ListSubnetworks(ctx context.Context, projectID, region string) ([]*compute.Subnetwork, error)
	ListFirewalls(ctx context.Context, projectID string) ([]*compute.Firewall, error)
	ListRouters(ctx context.Context, projectID, region string) ([]*compute.Router, error)
}

// LoadBalancingService reads global load balancer resources.
type LoadBalancingService interface {
	ListGlobalForwardingRules(ctx context.Context, projectID string) ([]*compute.ForwardingRule, error)
	ListSSLPolicies(ctx context.Context, projectID string) ([]*compute.SslPolicy, error)
	ListSecurityPolicies(ctx context.Context, projectID string) ([]*compute.SecurityPolicy, error)
}

// InstanceService manages Compute Engine instances. Insert and Delete
// return once the API accepts the request; callers poll GetInstance to
// observe the transition.
type InstanceService interface {
	InsertInstance(ctx context.Context, projectID, zone string, instance *compute.Instance) error
	GetInstance(ctx context.Context, projectID, zone, name string) (*compute.Instance, error)
	DeleteInstance(ctx context.Context, projectID, zone, name string) error
	ListInstances(ctx context.Context, projectID, zone string) ([]*compute.Instance, error)
}

// ClusterService lists GKE clusters across all locations.
type ClusterService interface {
	ListClusters(ctx context.Context, projectID string) ([]*container.Cluster, error)
}

// RunService lists Cloud Run services in a region.
type RunService interface {
	ListServices(ctx context.Context, projectID, region string) ([]*run.GoogleCloudRunV2Service, error)
}

// FunctionService lists Cloud Functions in a region.
type FunctionService interface {
	ListFunctions(ctx context.Context, projectID, region string) ([]*cloudfunctions.Function, error)
}

// SQLService lists Cloud SQL instances.
type SQLService interface {
	ListInstances(ctx context.Context, projectID string) ([]*sqladmin.DatabaseInstance, error)
}

// RedisService lists Memorystore Redis instances across all locations.
type RedisService interface {
	ListInstances(ctx context.Context, projectID string) ([]*redis.Instance, error)
}

// BigQueryService lists BigQuery datasets.
type BigQueryService interface {
	ListDatasets(ctx context.Context, projectID string) ([]*bigquery.DatasetListDatasets, error)
}

// StorageService lists Cloud Storage buckets.
type StorageService interface {
	ListBuckets(ctx context.Context, projectID string) ([]*storage.Bucket, error)
}

// PubSubService lists Pub/Sub topics and subscriptions.
type PubSubService interface {
	ListTopics(ctx context.Context, projectID string) ([]*pubsub.Topic, error)
	ListSubscriptions(ctx context.Context, projectID string) ([]*pubsub.Subscription, error)
}

// SchedulerService lists Cloud Scheduler jobs in a region.
type SchedulerService interface {
	ListJobs(ctx context.Context, projectID, region string) ([]*cloudscheduler.Job, error)
}

// IAMService lists service accounts.
type IAMService interface {
	ListServiceAccounts(ctx context.Context, projectID string) ([]*iam.ServiceAccount, error)
}

// KMSService lists KMS key rings and their keys.
type KMSService interface {
	ListKeyRings(ctx context.Context, projectID, location string) ([]*cloudkms.KeyRing, error)
	ListCryptoKeys(ctx context.Context, keyRing string) ([]*cloudkms.CryptoKey, error)
}

// SecretService lists Secret Manager secrets.
type SecretService interface {
	ListSecrets(ctx context.Context, projectID string) ([]*secretmanager.Secret, error)
}

// LoggingService lists log sinks.
type LoggingService interface {
	ListSinks(ctx context.Context, projectID string) ([]*logging.LogSink, error)
}

// MonitoringService lists alerting and uptime resources.
type MonitoringService interface {
	ListAlertPolicies(ctx context.Context, projectID string) ([]*monitoring.AlertPolicy, error)
	ListNotificationChannels(ctx context.Context, projectID string) ([]*monitoring.NotificationChannel, error)
	ListUptimeChecks(ctx context.Context, projectID string) ([]*monitoring.UptimeCheckConfig, error)
}

// RegistryService lists Artifact Registry repositories in a region.
type RegistryService interface {
	ListRepositories(ctx context.Context, projectID, region string) ([]*artifactregistry.Repository, error)
}

// Clients bundles one client per GCP service the tool inspects.
type Clients struct {
	Project    ProjectService
	Billing    BillingService
	Usage      UsageService
	Network    NetworkService
	LB         LoadBalancingService
	Instances  InstanceService
	Clusters   ClusterService
	Run        RunService
	Functions  FunctionService
	SQL        SQLService
	Redis      RedisService
	BigQuery   BigQueryService
	Storage    StorageService
	PubSub     PubSubService
	Scheduler  SchedulerService
	IAM        IAMService
	KMS        KMSService
	Secrets    SecretService
	Logging    LoggingService
	Monitoring MonitoringService
	Registry   RegistryService

	projects *resourcemanager.ProjectsClient
}

// NewClients builds real clients for every service using application
// default credentials.
func NewClients(ctx context.Context) (*Clients, error) {
	projects, err := resourcemanager.NewProjectsClient(ctx)
	if err != nil {
		return nil, apperrors.NewCredentialsError("failed to create resource manager client", err)
	}

	computeSvc, err := compute.NewService(ctx)
	if err != nil {
		return nil, apperrors.NewCredentialsError("failed to create compute client", err)
	}
	containerSvc, err := container.NewService(ctx)
	if err != nil {
		return nil, apperrors.NewCredentialsError("failed to create container client", err)
	}
	runSvc, err := run.NewService(ctx)
	if err != nil {
		return nil, apperrors.NewCredentialsError("failed to create cloud run client", err)
	}
	functionsSvc, err := cloudfunctions.NewService(ctx)
	if err != nil {
		return nil, apperrors.NewCredentialsError("failed to create cloud functions client", err)
	}
	sqlSvc, err := sqladmin.NewService(ctx)
	if err != nil {
		return nil, apperrors.NewCredentialsError("failed to create cloud sql client", err)
	}
	redisSvc, err := redis.NewService(ctx)
	if err != nil {
		return nil, apperrors.NewCredentialsError("failed to create redis client", err)
	}
	bigquerySvc, err := bigquery.NewService(ctx)
	if err != nil {
		return nil, apperrors.NewCredentialsError("failed to create bigquery client", err)
	}
	storageSvc, err := storage.NewService(ctx)
	if err != nil {
		return nil, apperrors.NewCredentialsError("failed to create storage client", err)
	}
	pubsubSvc, err := pubsub.NewService(ctx)
	if err != nil {
		return nil, apperrors.NewCredentialsError("failed to create pubsub client", err)
	}
	schedulerSvc, err := cloudscheduler.NewService(ctx)
	if err != nil {
		return nil, apperrors.NewCredentialsError("failed to create cloud scheduler client", err)
	}
	iamSvc, err := iam.NewService(ctx)
	if err != nil {
		return nil, apperrors.NewCredentialsError("failed to create iam client", err)
	}
	kmsSvc, err := cloudkms.NewService(ctx)
	if err != nil {
		return nil, apperrors.NewCredentialsError("failed to create kms client", err)
	}
	secretsSvc, err := secretmanager.NewService(ctx)
	if err != nil {
		return nil, apperrors.NewCredentialsError("failed to create secret manager client", err)
	}
	loggingSvc, err := logging.NewService(ctx)
	if err != nil {
		return nil, apperrors.NewCredentialsError("failed to create logging client", err)
	}
	monitoringSvc, err := monitoring.NewService(ctx)
	if err != nil {
		return nil, apperrors.NewCredentialsError("failed to create monitoring client", err)
	}
	billingSvc, err := cloudbilling.NewService(ctx)
	if err != nil {
		return nil, apperrors.NewCredentialsError("failed to create billing client", err)
	}
	usageSvc, err := serviceusage.NewService(ctx)
	if err != nil {
		return nil, apperrors.NewCredentialsError("failed to create service usage client", err)
	}
	registrySvc, err := artifactregistry.NewService(ctx)
	if err != nil {
		return nil, apperrors.NewCredentialsError("failed to create artifact registry client", err)
	}

	cs := &computeClient{svc: computeSvc}

	return &Clients{
		Project:    &projectClient{client: projects},
		Billing:    &billingClient{svc: billingSvc},
		Usage:      &usageClient{svc: usageSvc},
		Network:    cs,
		LB:         cs,
		Instances:  cs,
		Clusters:   &containerClient{svc: containerSvc},
		Run:        &runClient{svc: runSvc},
		Functions:  &functionsClient{svc: functionsSvc},
		SQL:        &sqlClient{svc: sqlSvc},
		Redis:      &redisClient{svc: redisSvc},
		BigQuery:   &bigqueryClient{svc: bigquerySvc},
		Storage:    &storageClient{svc: storageSvc},
		PubSub:     &pubsubClient{svc: pubsubSvc},
		Scheduler:  &schedulerClient{svc: schedulerSvc},
		IAM:        &iamClient{svc: iamSvc},
		KMS:        &kmsClient{svc: kmsSvc},
		Secrets:    &secretsClient{svc: secretsSvc},
		Logging:    &loggingClient{svc: loggingSvc},
		Monitoring: &monitoringClient{svc: monitoringSvc},
		Registry:   &registryClient{svc: registrySvc},
		projects:   projects,
	}, nil
}

// Close releases the gRPC connection held by the resource manager client.
// The discovery-based clients share the process HTTP client and need no
// explicit shutdown.
func (c *Clients) Close() error {
	if c.projects != nil {
		return c.projects.Close()
	}
	return nil
}
