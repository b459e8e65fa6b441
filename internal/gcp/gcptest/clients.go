package gcptest

import (
	"context"

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

// EmptyClients returns clients that model an active, billed project with
// nothing deployed: every get of a named resource is a 404 and every list
// is empty. Tests overwrite individual fields to simulate deployments.
func EmptyClients() *gcp.Clients {
	return &gcp.Clients{
		Project: &Project{
			GetProjectFunc: func(_ context.Context, projectID string) (*resourcemanagerpb.Project, error) {
				return &resourcemanagerpb.Project{
					Name:      "projects/" + projectID,
					ProjectId: projectID,
					State:     resourcemanagerpb.Project_ACTIVE,
				}, nil
			},
		},
		Billing: &Billing{
			GetBillingInfoFunc: func(context.Context, string) (*cloudbilling.ProjectBillingInfo, error) {
				return &cloudbilling.ProjectBillingInfo{BillingEnabled: true}, nil
			},
		},
		Usage: &Usage{
			ListEnabledServicesFunc: func(context.Context, string) ([]string, error) {
				return nil, nil
			},
		},
		Network: &Network{
			GetNetworkFunc: func(context.Context, string, string) (*compute.Network, error) {
				return nil, NotFound()
			},
			ListSubnetworksFunc: func(context.Context, string, string) ([]*compute.Subnetwork, error) {
				return nil, nil
			},
			ListFirewallsFunc: func(context.Context, string) ([]*compute.Firewall, error) {
				return nil, nil
			},
			ListRoutersFunc: func(context.Context, string, string) ([]*compute.Router, error) {
				return nil, nil
			},
		},
		LB: &LoadBalancing{
			ListGlobalForwardingRulesFunc: func(context.Context, string) ([]*compute.ForwardingRule, error) {
				return nil, nil
			},
			ListSSLPoliciesFunc: func(context.Context, string) ([]*compute.SslPolicy, error) {
				return nil, nil
			},
			ListSecurityPoliciesFunc: func(context.Context, string) ([]*compute.SecurityPolicy, error) {
				return nil, nil
			},
		},
		Instances: &Instances{
			InsertInstanceFunc: func(context.Context, string, string, *compute.Instance) error {
				return nil
			},
			GetInstanceFunc: func(context.Context, string, string, string) (*compute.Instance, error) {
				return nil, NotFound()
			},
			DeleteInstanceFunc: func(context.Context, string, string, string) error {
				return nil
			},
			ListInstancesFunc: func(context.Context, string, string) ([]*compute.Instance, error) {
				return nil, nil
			},
		},
		Clusters: &Clusters{
			ListClustersFunc: func(context.Context, string) ([]*container.Cluster, error) {
				return nil, nil
			},
		},
		Run: &Run{
			ListServicesFunc: func(context.Context, string, string) ([]*run.GoogleCloudRunV2Service, error) {
				return nil, nil
			},
		},
		Functions: &Functions{
			ListFunctionsFunc: func(context.Context, string, string) ([]*cloudfunctions.Function, error) {
				return nil, nil
			},
		},
		SQL: &SQL{
			ListInstancesFunc: func(context.Context, string) ([]*sqladmin.DatabaseInstance, error) {
				return nil, nil
			},
		},
		Redis: &Redis{
			ListInstancesFunc: func(context.Context, string) ([]*redis.Instance, error) {
				return nil, nil
			},
		},
		BigQuery: &BigQuery{
			ListDatasetsFunc: func(context.Context, string) ([]*bigquery.DatasetListDatasets, error) {
				return nil, nil
			},
		},
		Storage: &Storage{
			ListBucketsFunc: func(context.Context, string) ([]*storage.Bucket, error) {
				return nil, nil
			},
		},
		PubSub: &PubSub{
			ListTopicsFunc: func(context.Context, string) ([]*pubsub.Topic, error) {
				return nil, nil
			},
			ListSubscriptionsFunc: func(context.Context, string) ([]*pubsub.Subscription, error) {
				return nil, nil
			},
		},
		Scheduler: &Scheduler{
			ListJobsFunc: func(context.Context, string, string) ([]*cloudscheduler.Job, error) {
				return nil, nil
			},
		},
		IAM: &IAM{
			ListServiceAccountsFunc: func(context.Context, string) ([]*iam.ServiceAccount, error) {
				return nil, nil
			},
		},
		KMS: &KMS{
			ListKeyRingsFunc: func(context.Context, string, string) ([]*cloudkms.KeyRing, error) {
				return nil, nil
			},
			ListCryptoKeysFunc: func(context.Context, string) ([]*cloudkms.CryptoKey, error) {
				return nil, nil
			},
		},
		Secrets: &Secrets{
			ListSecretsFunc: func(context.Context, string) ([]*secretmanager.Secret, error) {
				return nil, nil
			},
		},
		Logging: &Logging{
			ListSinksFunc: func(context.Context, string) ([]*logging.LogSink, error) {
				return nil, nil
			},
		},
		Monitoring: &Monitoring{
			ListAlertPoliciesFunc: func(context.Context, string) ([]*monitoring.AlertPolicy, error) {
				return nil, nil
			},
			ListNotificationChannelsFunc: func(context.Context, string) ([]*monitoring.NotificationChannel, error) {
				return nil, nil
			},
			ListUptimeChecksFunc: func(context.Context, string) ([]*monitoring.UptimeCheckConfig, error) {
				return nil, nil
			},
		},
		Registry: &Registry{
			ListRepositoriesFunc: func(context.Context, string, string) ([]*artifactregistry.Repository, error) {
				return nil, nil
			},
		},
	}
}
