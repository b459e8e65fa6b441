package verify

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/catherinevee/terraform-gcp-sub000/internal/gcp"
	"github.com/catherinevee/terraform-gcp-sub000/internal/gcp/gcptest"
	"github.com/catherinevee/terraform-gcp-sub000/internal/phase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	compute "google.golang.org/api/compute/v1"
	container "google.golang.org/api/container/v1"
	run "google.golang.org/api/run/v2"
)

func TestFor_CoversEveryPhase(t *testing.T) {
	for _, p := range phase.All() {
		suite := For(p)
		assert.Equal(t, p.Name(), suite.Name)
		assert.NotEmpty(t, suite.Checks, suite.Name)
	}
}

func TestFoundationSuite_EmptyProject(t *testing.T) {
	// An active, billed project with nothing deployed: the project gates
	// pass, the provisioning checks fail, and nothing gets skipped.
	h := newTestHarness(gcptest.EmptyClients())

	result := h.RunPhase(context.Background(), phase.Foundation)

	require.Len(t, result.Results, 5)
	assert.Equal(t, CheckPassed, result.Results[0].Status, "project is active")
	assert.Equal(t, CheckPassed, result.Results[1].Status, "billing is enabled")
	assert.Equal(t, CheckFailed, result.Results[2].Status, "required APIs are enabled")
	assert.Contains(t, result.Results[2].Err, "required APIs not enabled")
	assert.Equal(t, CheckFailed, result.Results[3].Status, "service accounts provisioned")
	assert.Equal(t, CheckFailed, result.Results[4].Status, "artifact registry repositories")

	passed, failed, skipped := result.Counts()
	assert.Equal(t, 2, passed)
	assert.Equal(t, 3, failed)
	assert.Equal(t, 0, skipped)
}

func TestNetworkingSuite_FullyDeployed(t *testing.T) {
	clients := gcptest.EmptyClients()
	clients.Network = &gcptest.Network{
		GetNetworkFunc: func(_ context.Context, _ string, name string) (*compute.Network, error) {
			return &compute.Network{
				Name:          name,
				RoutingConfig: &compute.NetworkRoutingConfig{RoutingMode: "REGIONAL"},
			}, nil
		},
		ListSubnetworksFunc: func(context.Context, string, string) ([]*compute.Subnetwork, error) {
			return []*compute.Subnetwork{
				{Name: "app", PrivateIpGoogleAccess: true},
				{Name: "data", PrivateIpGoogleAccess: true},
			}, nil
		},
		ListFirewallsFunc: func(context.Context, string) ([]*compute.Firewall, error) {
			return []*compute.Firewall{{Name: "allow-internal"}}, nil
		},
		ListRoutersFunc: func(context.Context, string, string) ([]*compute.Router, error) {
			return []*compute.Router{{
				Name: "nat-router",
				Nats: []*compute.RouterNat{{Name: "nat-gateway"}},
			}}, nil
		},
	}
	clients.LB = &gcptest.LoadBalancing{
		ListGlobalForwardingRulesFunc: func(context.Context, string) ([]*compute.ForwardingRule, error) {
			return []*compute.ForwardingRule{{Name: "https-rule", IPAddress: "203.0.113.9"}}, nil
		},
		ListSSLPoliciesFunc: func(context.Context, string) ([]*compute.SslPolicy, error) {
			return nil, nil
		},
		ListSecurityPoliciesFunc: func(context.Context, string) ([]*compute.SecurityPolicy, error) {
			return nil, nil
		},
	}
	h := newTestHarness(clients)
	h.Expect.BootCanaryVM = false

	result := h.RunPhase(context.Background(), phase.Networking)

	assert.True(t, result.Passed(), "%+v", result.Results)
	passed, failed, skipped := result.Counts()
	assert.Equal(t, len(result.Results), passed)
	assert.Equal(t, 0, failed)
	assert.Equal(t, 0, skipped)
}

func TestNetworkingSuite_GlobalRoutingFails(t *testing.T) {
	clients := gcptest.EmptyClients()
	clients.Network = &gcptest.Network{
		GetNetworkFunc: func(_ context.Context, _ string, name string) (*compute.Network, error) {
			return &compute.Network{
				Name:          name,
				RoutingConfig: &compute.NetworkRoutingConfig{RoutingMode: "GLOBAL"},
			}, nil
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
	}
	h := newTestHarness(clients)

	result := h.RunPhase(context.Background(), phase.Networking)

	require.GreaterOrEqual(t, len(result.Results), 2)
	assert.Equal(t, CheckPassed, result.Results[0].Status, "VPC exists")
	assert.Equal(t, CheckFailed, result.Results[1].Status, "routing mode")
	assert.Contains(t, result.Results[1].Err, `want "REGIONAL"`)
}

// canaryProject fakes a deployed network plus the instance lifecycle behind
// the connectivity probe: an insert makes the instance visible with a fixed
// status, a delete makes it a 404 again.
type canaryProject struct {
	mu       sync.Mutex
	status   string
	name     string
	inserted *compute.Instance
	deleted  bool
}

func (c *canaryProject) clients(subnets []*compute.Subnetwork) *gcp.Clients {
	clients := gcptest.EmptyClients()
	clients.Network = &gcptest.Network{
		GetNetworkFunc: func(_ context.Context, _ string, name string) (*compute.Network, error) {
			return &compute.Network{
				Name:          name,
				RoutingConfig: &compute.NetworkRoutingConfig{RoutingMode: "REGIONAL"},
			}, nil
		},
		ListSubnetworksFunc: func(context.Context, string, string) ([]*compute.Subnetwork, error) {
			return subnets, nil
		},
		ListFirewallsFunc: func(context.Context, string) ([]*compute.Firewall, error) {
			return []*compute.Firewall{{Name: "allow-internal"}}, nil
		},
		ListRoutersFunc: func(context.Context, string, string) ([]*compute.Router, error) {
			return []*compute.Router{{
				Name: "nat-router",
				Nats: []*compute.RouterNat{{Name: "nat-gateway"}},
			}}, nil
		},
	}
	clients.LB = &gcptest.LoadBalancing{
		ListGlobalForwardingRulesFunc: func(context.Context, string) ([]*compute.ForwardingRule, error) {
			return []*compute.ForwardingRule{{Name: "https-rule"}}, nil
		},
		ListSSLPoliciesFunc: func(context.Context, string) ([]*compute.SslPolicy, error) {
			return nil, nil
		},
		ListSecurityPoliciesFunc: func(context.Context, string) ([]*compute.SecurityPolicy, error) {
			return nil, nil
		},
	}
	clients.Instances = &gcptest.Instances{
		InsertInstanceFunc: func(_ context.Context, _ string, _ string, inst *compute.Instance) error {
			c.mu.Lock()
			defer c.mu.Unlock()
			c.inserted = inst
			c.name = inst.Name
			return nil
		},
		GetInstanceFunc: func(_ context.Context, _ string, _ string, name string) (*compute.Instance, error) {
			c.mu.Lock()
			defer c.mu.Unlock()
			if c.inserted == nil || c.deleted || name != c.name {
				return nil, gcptest.NotFound()
			}
			return &compute.Instance{Name: name, Status: c.status}, nil
		},
		DeleteInstanceFunc: func(_ context.Context, _ string, _ string, name string) error {
			c.mu.Lock()
			defer c.mu.Unlock()
			if c.inserted == nil || name != c.name {
				return gcptest.NotFound()
			}
			c.deleted = true
			return nil
		},
		ListInstancesFunc: func(context.Context, string, string) ([]*compute.Instance, error) {
			return nil, nil
		},
	}
	return clients
}

func TestNetworkingSuite_CanaryLifecycle(t *testing.T) {
	project := &canaryProject{status: "RUNNING"}
	subnets := []*compute.Subnetwork{
		{
			Name:                  "app",
			SelfLink:              "https://www.googleapis.com/compute/v1/projects/p/regions/us-central1/subnetworks/app",
			PrivateIpGoogleAccess: true,
		},
		{Name: "data", PrivateIpGoogleAccess: true},
	}

	h := newTestHarness(project.clients(subnets))

	result := h.RunPhase(context.Background(), phase.Networking)

	assert.True(t, result.Passed(), "%+v", result.Results)

	require.NotNil(t, project.inserted)
	assert.True(t, strings.HasPrefix(project.inserted.Name, "cataziza-canary-"))
	assert.Contains(t, project.inserted.MachineType, "machineTypes/e2-micro")
	require.Len(t, project.inserted.NetworkInterfaces, 1)
	assert.Equal(t, subnets[0].SelfLink, project.inserted.NetworkInterfaces[0].Subnetwork)
	assert.Equal(t, "verification", project.inserted.Labels["purpose"])

	assert.True(t, project.deleted, "canary must be deleted when the suite ends")
}

func TestNetworkingSuite_CanaryDeletedAfterBootFailure(t *testing.T) {
	project := &canaryProject{status: "TERMINATED"}
	subnets := []*compute.Subnetwork{
		{Name: "app", PrivateIpGoogleAccess: true},
		{Name: "data", PrivateIpGoogleAccess: true},
	}

	h := newTestHarness(project.clients(subnets))

	result := h.RunPhase(context.Background(), phase.Networking)

	assert.False(t, result.Passed())
	canary := result.Results[len(result.Results)-1]
	assert.Equal(t, CheckFailed, canary.Status)
	assert.Contains(t, canary.Err, "terminated during boot")

	assert.True(t, project.deleted, "a failed boot must still tear the canary down")
}

func TestNetworkingSuite_CanaryDisabled(t *testing.T) {
	project := &canaryProject{status: "RUNNING"}
	subnets := []*compute.Subnetwork{
		{Name: "app", PrivateIpGoogleAccess: true},
		{Name: "data", PrivateIpGoogleAccess: true},
	}

	h := newTestHarness(project.clients(subnets))
	h.Expect.BootCanaryVM = false

	result := h.RunPhase(context.Background(), phase.Networking)

	assert.True(t, result.Passed(), "%+v", result.Results)
	assert.Nil(t, project.inserted)
}

// computeClients fakes a project with one GKE cluster and one ready cloud
// run service. EmptyClients already reports zero cloud functions, which the
// functions check accepts.
func computeClients(cluster *container.Cluster) *gcp.Clients {
	clients := gcptest.EmptyClients()
	clients.Clusters = &gcptest.Clusters{
		ListClustersFunc: func(context.Context, string) ([]*container.Cluster, error) {
			return []*container.Cluster{cluster}, nil
		},
	}
	clients.Run = &gcptest.Run{
		ListServicesFunc: func(context.Context, string, string) ([]*run.GoogleCloudRunV2Service, error) {
			return []*run.GoogleCloudRunV2Service{{
				Name:              "projects/p/locations/us-central1/services/storefront",
				TerminalCondition: &run.GoogleCloudRunV2Condition{State: "CONDITION_SUCCEEDED"},
			}}, nil
		},
	}
	return clients
}

func TestComputeSuite_HardenedCluster(t *testing.T) {
	h := newTestHarness(computeClients(&container.Cluster{
		Name:                 "apps",
		Status:               "RUNNING",
		PrivateClusterConfig: &container.PrivateClusterConfig{EnablePrivateNodes: true},
		WorkloadIdentityConfig: &container.WorkloadIdentityConfig{
			WorkloadPool: "acme-ecommerce-dev.svc.id.goog",
		},
	}))

	result := h.RunPhase(context.Background(), phase.Compute)

	assert.True(t, result.Passed(), "%+v", result.Results)
}

func TestComputeSuite_PublicClusterFails(t *testing.T) {
	h := newTestHarness(computeClients(&container.Cluster{
		Name:   "apps",
		Status: "RUNNING",
		WorkloadIdentityConfig: &container.WorkloadIdentityConfig{
			WorkloadPool: "acme-ecommerce-dev.svc.id.goog",
		},
	}))

	result := h.RunPhase(context.Background(), phase.Compute)

	assert.Equal(t, CheckFailed, result.Results[0].Status)
	assert.Contains(t, result.Results[0].Err, "does not use private nodes")
}

func TestComputeSuite_WorkloadIdentityDisabledFails(t *testing.T) {
	h := newTestHarness(computeClients(&container.Cluster{
		Name:                 "apps",
		Status:               "RUNNING",
		PrivateClusterConfig: &container.PrivateClusterConfig{EnablePrivateNodes: true},
	}))

	result := h.RunPhase(context.Background(), phase.Compute)

	assert.Equal(t, CheckFailed, result.Results[0].Status)
	assert.Contains(t, result.Results[0].Err, "workload identity disabled")
}

func TestSecuritySuite_MissingKeyRingsAborts(t *testing.T) {
	h := newTestHarness(gcptest.EmptyClients())

	result := h.RunPhase(context.Background(), phase.Security)

	require.Len(t, result.Results, 3)
	assert.Equal(t, CheckFailed, result.Results[0].Status)
	assert.Equal(t, CheckSkipped, result.Results[1].Status)
	assert.Equal(t, CheckSkipped, result.Results[2].Status)
}
