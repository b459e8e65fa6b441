// Package gcptest provides function-field mocks for the gcp service
// interfaces. A mock whose function field is nil fails loudly, so tests
// only stub what they mean to exercise.
package gcptest

import (
	"context"
	"errors"

	"github.com/catherinevee/terraform-gcp-sub000/internal/gcp"

	"cloud.google.com/go/resourcemanager/apiv3/resourcemanagerpb"
	artifactregistry "google.golang.org/api/artifactregistry/v1"
	bigquery "google.golang.org/api/bigquery/v2"
	cloudbilling "google.golang.org/api/cloudbilling/v1"
	cloudfunctions "google.golang.org/api/cloudfunctions/v2"
	cloudkms "google.golang.org/api/cloudkms/v1"
	cloudscheduler "google.golang.org/api/cloudscheduler/v1"
	compute "google.golang.org/api/compute/v1"
	container "google.golang.org/api/container/v1"
	"google.golang.org/api/googleapi"
	iam "google.golang.org/api/iam/v1"
	logging "google.golang.org/api/logging/v2"
	monitoring "google.golang.org/api/monitoring/v3"
	pubsub "google.golang.org/api/pubsub/v1"
	redis "google.golang.org/api/redis/v1"
	run "google.golang.org/api/run/v2"
	secretmanager "google.golang.org/api/secretmanager/v1"
	sqladmin "google.golang.org/api/sqladmin/v1"
	storage "google.golang.org/api/storage/v1"
)

var errNotImplemented = errors.New("not implemented")

// NotFound returns the 404 shape the real clients produce.
func NotFound() error {
	return &googleapi.Error{Code: 404, Message: "not found"}
}

// Project mocks gcp.ProjectService.
type Project struct {
	GetProjectFunc func(ctx context.Context, projectID string) (*resourcemanagerpb.Project, error)
}

var _ gcp.ProjectService = (*Project)(nil)

func (m *Project) GetProject(ctx context.Context, projectID string) (*resourcemanagerpb.Project, error) {
	if m.GetProjectFunc != nil {
		return m.GetProjectFunc(ctx, projectID)
	}
	return nil, errNotImplemented
}

// Billing mocks gcp.BillingService.
type Billing struct {
	GetBillingInfoFunc func(ctx context.Context, projectID string) (*cloudbilling.ProjectBillingInfo, error)
}

var _ gcp.BillingService = (*Billing)(nil)

func (m *Billing) GetBillingInfo(ctx context.Context, projectID string) (*cloudbilling.ProjectBillingInfo, error) {
	if m.GetBillingInfoFunc != nil {
		return m.GetBillingInfoFunc(ctx, projectID)
	}
	return nil, errNotImplemented
}

// Usage mocks gcp.UsageService.
type Usage struct {
	ListEnabledServicesFunc func(ctx context.Context, projectID string) ([]string, error)
}

var _ gcp.UsageService = (*Usage)(nil)

func (m *Usage) ListEnabledServices(ctx context.Context, projectID string) ([]string, error) {
	if m.ListEnabledServicesFunc != nil {
		return m.ListEnabledServicesFunc(ctx, projectID)
	}
	return nil, errNotImplemented
}

// Network mocks gcp.NetworkService.
type Network struct {
	GetNetworkFunc      func(ctx context.Context, projectID, name string) (*compute.Network, error)
	ListSubnetworksFunc func(ctx context.Context, projectID, region string) ([]*compute.Subnetwork, error)
	ListFirewallsFunc   func(ctx context.Context, projectID string) ([]*compute.Firewall, error)
	ListRoutersFunc     func(ctx context.Context, projectID, region string) ([]*compute.Router, error)
}

var _ gcp.NetworkService = (*Network)(nil)

func (m *Network) GetNetwork(ctx context.Context, projectID, name string) (*compute.Network, error) {
	if m.GetNetworkFunc != nil {
		return m.GetNetworkFunc(ctx, projectID, name)
	}
	return nil, errNotImplemented
}

func (m *Network) ListSubnetworks(ctx context.Context, projectID, region string) ([]*compute.Subnetwork, error) {
	if m.ListSubnetworksFunc != nil {
		return m.ListSubnetworksFunc(ctx, projectID, region)
	}
	return nil, errNotImplemented
}

func (m *Network) ListFirewalls(ctx context.Context, projectID string) ([]*compute.Firewall, error) {
	if m.ListFirewallsFunc != nil {
		return m.ListFirewallsFunc(ctx, projectID)
	}
	return nil, errNotImplemented
}

func (m *Network) ListRouters(ctx context.Context, projectID, region string) ([]*compute.Router, error) {
	if m.ListRoutersFunc != nil {
		return m.ListRoutersFunc(ctx, projectID, region)
	}
	return nil, errNotImplemented
}

// LoadBalancing mocks gcp.LoadBalancingService.
type LoadBalancing struct {
	ListGlobalForwardingRulesFunc func(ctx context.Context, projectID string) ([]*compute.ForwardingRule, error)
	ListSSLPoliciesFunc           func(ctx context.Context, projectID string) ([]*compute.SslPolicy, error)
	ListSecurityPoliciesFunc      func(ctx context.Context, projectID string) ([]*compute.SecurityPolicy, error)
}

var _ gcp.LoadBalancingService = (*LoadBalancing)(nil)

func (m *LoadBalancing) ListGlobalForwardingRules(ctx context.Context, projectID string) ([]*compute.ForwardingRule, error) {
	if m.ListGlobalForwardingRulesFunc != nil {
		return m.ListGlobalForwardingRulesFunc(ctx, projectID)
	}
	return nil, errNotImplemented
}

func (m *LoadBalancing) ListSSLPolicies(ctx context.Context, projectID string) ([]*compute.SslPolicy, error) {
	if m.ListSSLPoliciesFunc != nil {
		return m.ListSSLPoliciesFunc(ctx, projectID)
	}
	return nil, errNotImplemented
}

func (m *LoadBalancing) ListSecurityPolicies(ctx context.Context, projectID string) ([]*compute.SecurityPolicy, error) {
	if m.ListSecurityPoliciesFunc != nil {
		return m.ListSecurityPoliciesFunc(ctx, projectID)
	}
	return nil, errNotImplemented
}

// Instances mocks gcp.InstanceService.
type Instances struct {
	InsertInstanceFunc func(ctx context.Context, projectID, zone string, instance *compute.Instance) error
	GetInstanceFunc    func(ctx context.Context, projectID, zone, name string) (*compute.Instance, error)
	DeleteInstanceFunc func(ctx context.Context, projectID, zone, name string) error
	ListInstancesFunc  func(ctx context.Context, projectID, zone string) ([]*compute.Instance, error)
}

var _ gcp.InstanceService = (*Instances)(nil)

func (m *Instances) InsertInstance(ctx context.Context, projectID, zone string, instance *compute.Instance) error {
	if m.InsertInstanceFunc != nil {
		return m.InsertInstanceFunc(ctx, projectID, zone, instance)
	}
	return errNotImplemented
}

func (m *Instances) GetInstance(ctx context.Context, projectID, zone, name string) (*compute.Instance, error) {
	if m.GetInstanceFunc != nil {
		return m.GetInstanceFunc(ctx, projectID, zone, name)
	}
	return nil, errNotImplemented
}

func (m *Instances) DeleteInstance(ctx context.Context, projectID, zone, name string) error {
	if m.DeleteInstanceFunc != nil {
		return m.DeleteInstanceFunc(ctx, projectID, zone, name)
	}
	return errNotImplemented
}

func (m *Instances) ListInstances(ctx context.Context, projectID, zone string) ([]*compute.Instance, error) {
	if m.ListInstancesFunc != nil {
		return m.ListInstancesFunc(ctx, projectID, zone)
	}
	return nil, errNotImplemented
}

// Clusters mocks gcp.ClusterService.
type Clusters struct {
	ListClustersFunc func(ctx context.Context, projectID string) ([]*container.Cluster, error)
}

var _ gcp.ClusterService = (*Clusters)(nil)

func (m *Clusters) ListClusters(ctx context.Context, projectID string) ([]*container.Cluster, error) {
	if m.ListClustersFunc != nil {
		return m.ListClustersFunc(ctx, projectID)
	}
	return nil, errNotImplemented
}

// Run mocks gcp.RunService.
type Run struct {
	ListServicesFunc func(ctx context.Context, projectID, region string) ([]*run.GoogleCloudRunV2Service, error)
}

var _ gcp.RunService = (*Run)(nil)

func (m *Run) ListServices(ctx context.Context, projectID, region string) ([]*run.GoogleCloudRunV2Service, error) {
	if m.ListServicesFunc != nil {
		return m.ListServicesFunc(ctx, projectID, region)
	}
	return nil, errNotImplemented
}

// Functions mocks gcp.FunctionService.
type Functions struct {
	ListFunctionsFunc func(ctx context.Context, projectID, region string) ([]*cloudfunctions.Function, error)
}

var _ gcp.FunctionService = (*Functions)(nil)

func (m *Functions) ListFunctions(ctx context.Context, projectID, region string) ([]*cloudfunctions.Function, error) {
	if m.ListFunctionsFunc != nil {
		return m.ListFunctionsFunc(ctx, projectID, region)
	}
	return nil, errNotImplemented
}

// SQL mocks gcp.SQLService.
type SQL struct {
	ListInstancesFunc func(ctx context.Context, projectID string) ([]*sqladmin.DatabaseInstance, error)
}

var _ gcp.SQLService = (*SQL)(nil)

func (m *SQL) ListInstances(ctx context.Context, projectID string) ([]*sqladmin.DatabaseInstance, error) {
	if m.ListInstancesFunc != nil {
		return m.ListInstancesFunc(ctx, projectID)
	}
	return nil, errNotImplemented
}

// Redis mocks gcp.RedisService.
type Redis struct {
	ListInstancesFunc func(ctx context.Context, projectID string) ([]*redis.Instance, error)
}

var _ gcp.RedisService = (*Redis)(nil)

func (m *Redis) ListInstances(ctx context.Context, projectID string) ([]*redis.Instance, error) {
	if m.ListInstancesFunc != nil {
		return m.ListInstancesFunc(ctx, projectID)
	}
	return nil, errNotImplemented
}

// BigQuery mocks gcp.BigQueryService.
type BigQuery struct {
	ListDatasetsFunc func(ctx context.Context, projectID string) ([]*bigquery.DatasetListDatasets, error)
}

var _ gcp.BigQueryService = (*BigQuery)(nil)

func (m *BigQuery) ListDatasets(ctx context.Context, projectID string) ([]*bigquery.DatasetListDatasets, error) {
	if m.ListDatasetsFunc != nil {
		return m.ListDatasetsFunc(ctx, projectID)
	}
	return nil, errNotImplemented
}

// Storage mocks gcp.StorageService.
type Storage struct {
	ListBucketsFunc func(ctx context.Context, projectID string) ([]*storage.Bucket, error)
}

var _ gcp.StorageService = (*Storage)(nil)

func (m *Storage) ListBuckets(ctx context.Context, projectID string) ([]*storage.Bucket, error) {
	if m.ListBucketsFunc != nil {
		return m.ListBucketsFunc(ctx, projectID)
	}
	return nil, errNotImplemented
}

// PubSub mocks gcp.PubSubService.
type PubSub struct {
	ListTopicsFunc        func(ctx context.Context, projectID string) ([]*pubsub.Topic, error)
	ListSubscriptionsFunc func(ctx context.Context, projectID string) ([]*pubsub.Subscription, error)
}

var _ gcp.PubSubService = (*PubSub)(nil)

func (m *PubSub) ListTopics(ctx context.Context, projectID string) ([]*pubsub.Topic, error) {
	if m.ListTopicsFunc != nil {
		return m.ListTopicsFunc(ctx, projectID)
	}
	return nil, errNotImplemented
}

func (m *PubSub) ListSubscriptions(ctx context.Context, projectID string) ([]*pubsub.Subscription, error) {
	if m.ListSubscriptionsFunc != nil {
		return m.ListSubscriptionsFunc(ctx, projectID)
	}
	return nil, errNotImplemented
}

// Scheduler mocks gcp.SchedulerService.
type Scheduler struct {
	ListJobsFunc func(ctx context.Context, projectID, region string) ([]*cloudscheduler.Job, error)
}

var _ gcp.SchedulerService = (*Scheduler)(nil)

func (m *Scheduler) ListJobs(ctx context.Context, projectID, region string) ([]*cloudscheduler.Job, error) {
	if m.ListJobsFunc != nil {
		return m.ListJobsFunc(ctx, projectID, region)
	}
	return nil, errNotImplemented
}

// IAM mocks gcp.IAMService.
type IAM struct {
	ListServiceAccountsFunc func(ctx context.Context, projectID string) ([]*iam.ServiceAccount, error)
}

var _ gcp.IAMService = (*IAM)(nil)

func (m *IAM) ListServiceAccounts(ctx context.Context, projectID string) ([]*iam.ServiceAccount, error) {
	if m.ListServiceAccountsFunc != nil {
		return m.ListServiceAccountsFunc(ctx, projectID)
	}
	return nil, errNotImplemented
}

// KMS mocks gcp.KMSService.
type KMS struct {
	ListKeyRingsFunc   func(ctx context.Context, projectID, location string) ([]*cloudkms.KeyRing, error)
	ListCryptoKeysFunc func(ctx context.Context, keyRing string) ([]*cloudkms.CryptoKey, error)
}

var _ gcp.KMSService = (*KMS)(nil)

func (m *KMS) ListKeyRings(ctx context.Context, projectID, location string) ([]*cloudkms.KeyRing, error) {
	if m.ListKeyRingsFunc != nil {
		return m.ListKeyRingsFunc(ctx, projectID, location)
	}
	return nil, errNotImplemented
}

func (m *KMS) ListCryptoKeys(ctx context.Context, keyRing string) ([]*cloudkms.CryptoKey, error) {
	if m.ListCryptoKeysFunc != nil {
		return m.ListCryptoKeysFunc(ctx, keyRing)
	}
	return nil, errNotImplemented
}

// Secrets mocks gcp.SecretService.
type Secrets struct {
	ListSecretsFunc func(ctx context.Context, projectID string) ([]*secretmanager.Secret, error)
}

var _ gcp.SecretService = (*Secrets)(nil)

func (m *Secrets) ListSecrets(ctx context.Context, projectID string) ([]*secretmanager.Secret, error) {
	if m.ListSecretsFunc != nil {
		return m.ListSecretsFunc(ctx, projectID)
	}
	return nil, errNotImplemented
}

// Logging mocks gcp.LoggingService.
type Logging struct {
	ListSinksFunc func(ctx context.Context, projectID string) ([]*logging.LogSink, error)
}

var _ gcp.LoggingService = (*Logging)(nil)

func (m *Logging) ListSinks(ctx context.Context, projectID string) ([]*logging.LogSink, error) {
	if m.ListSinksFunc != nil {
		return m.ListSinksFunc(ctx, projectID)
	}
	return nil, errNotImplemented
}

// Monitoring mocks gcp.MonitoringService.
type Monitoring struct {
	ListAlertPoliciesFunc        func(ctx context.Context, projectID string) ([]*monitoring.AlertPolicy, error)
	ListNotificationChannelsFunc func(ctx context.Context, projectID string) ([]*monitoring.NotificationChannel, error)
	ListUptimeChecksFunc         func(ctx context.Context, projectID string) ([]*monitoring.UptimeCheckConfig, error)
}

var _ gcp.MonitoringService = (*Monitoring)(nil)

func (m *Monitoring) ListAlertPolicies(ctx context.Context, projectID string) ([]*monitoring.AlertPolicy, error) {
	if m.ListAlertPoliciesFunc != nil {
		return m.ListAlertPoliciesFunc(ctx, projectID)
	}
	return nil, errNotImplemented
}

func (m *Monitoring) ListNotificationChannels(ctx context.Context, projectID string) ([]*monitoring.NotificationChannel, error) {
	if m.ListNotificationChannelsFunc != nil {
		return m.ListNotificationChannelsFunc(ctx, projectID)
	}
	return nil, errNotImplemented
}

func (m *Monitoring) ListUptimeChecks(ctx context.Context, projectID string) ([]*monitoring.UptimeCheckConfig, error) {
	if m.ListUptimeChecksFunc != nil {
		return m.ListUptimeChecksFunc(ctx, projectID)
	}
	return nil, errNotImplemented
}

// Registry mocks gcp.RegistryService.
type Registry struct {
	ListRepositoriesFunc func(ctx context.Context, projectID, region string) ([]*artifactregistry.Repository, error)
}

var _ gcp.RegistryService = (*Registry)(nil)

func (m *Registry) ListRepositories(ctx context.Context, projectID, region string) ([]*artifactregistry.Repository, error) {
	if m.ListRepositoriesFunc != nil {
		return m.ListRepositoriesFunc(ctx, projectID, region)
	}
	return nil, errNotImplemented
}
