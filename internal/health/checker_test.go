package health

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/catherinevee/terraform-gcp-sub000/internal/config"
	"github.com/catherinevee/terraform-gcp-sub000/internal/gcp"
	"github.com/catherinevee/terraform-gcp-sub000/internal/gcp/gcptest"

	"cloud.google.com/go/resourcemanager/apiv3/resourcemanagerpb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	cloudbilling "google.golang.org/api/cloudbilling/v1"
	compute "google.golang.org/api/compute/v1"
	container "google.golang.org/api/container/v1"
	sqladmin "google.golang.org/api/sqladmin/v1"
)

func newTestChecker(clients *gcp.Clients) *Checker {
	cfg := &config.Config{
		ProjectID:   "acme-ecommerce-dev",
		Environment: "dev",
		Region:      "us-central1",
		Zone:        "us-central1-a",
	}
	return NewChecker(clients, cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestChecker_Run_CoversEveryCategory(t *testing.T) {
	checker := newTestChecker(gcptest.EmptyClients())

	report := checker.Run(context.Background())

	wantOrder := []string{
		"project", "apis", "networking", "load-balancing", "compute", "databases",
		"storage", "messaging", "security", "observability", "operations", "latency",
	}
	require.Len(t, report.Categories, len(wantOrder))
	for i, cat := range report.Categories {
		assert.Equal(t, wantOrder[i], cat.Category)
	}

	// An empty project has nothing deployed, so no resource category may
	// report healthy. Latency is exempt: it measures round trips, not
	// inventory.
	for _, cat := range report.Categories[1:] {
		if cat.Category == "latency" {
			continue
		}
		assert.NotEqual(t, StatusHealthy, cat.Status,
			"category %s healthy with zero resources", cat.Category)
	}
	assert.True(t, report.HasErrors())
	assert.Equal(t, "acme-ecommerce-dev", report.ProjectID)
}

func TestChecker_Project(t *testing.T) {
	t.Run("active project with billing is healthy", func(t *testing.T) {
		checker := newTestChecker(gcptest.EmptyClients())

		res := checker.checkProject(context.Background())

		assert.Equal(t, StatusHealthy, res.Status)
	})

	t.Run("disabled billing is an error", func(t *testing.T) {
		clients := gcptest.EmptyClients()
		clients.Billing = &gcptest.Billing{
			GetBillingInfoFunc: func(context.Context, string) (*cloudbilling.ProjectBillingInfo, error) {
				return &cloudbilling.ProjectBillingInfo{BillingEnabled: false}, nil
			},
		}
		checker := newTestChecker(clients)

		res := checker.checkProject(context.Background())

		assert.Equal(t, StatusError, res.Status)
	})

	t.Run("project pending deletion is an error", func(t *testing.T) {
		clients := gcptest.EmptyClients()
		clients.Project = &gcptest.Project{
			GetProjectFunc: func(_ context.Context, projectID string) (*resourcemanagerpb.Project, error) {
				return &resourcemanagerpb.Project{
					ProjectId: projectID,
					State:     resourcemanagerpb.Project_DELETE_REQUESTED,
				}, nil
			},
		}
		checker := newTestChecker(clients)

		res := checker.checkProject(context.Background())

		assert.Equal(t, StatusError, res.Status)
	})

	t.Run("unreachable API fails the category", func(t *testing.T) {
		clients := gcptest.EmptyClients()
		clients.Project = &gcptest.Project{
			GetProjectFunc: func(context.Context, string) (*resourcemanagerpb.Project, error) {
				return nil, errors.New("connection refused")
			},
		}
		checker := newTestChecker(clients)

		res := checker.checkProject(context.Background())

		assert.Equal(t, StatusError, res.Status)
		assert.Contains(t, res.Err, "connection refused")
	})
}

func TestChecker_APIs(t *testing.T) {
	t.Run("all required APIs enabled", func(t *testing.T) {
		clients := gcptest.EmptyClients()
		clients.Usage = &gcptest.Usage{
			ListEnabledServicesFunc: func(context.Context, string) ([]string, error) {
				return gcp.RequiredAPIs(), nil
			},
		}
		checker := newTestChecker(clients)

		res := checker.checkAPIs(context.Background())

		assert.Equal(t, StatusHealthy, res.Status)
		assert.Len(t, res.Details, len(gcp.RequiredAPIs()))
	})

	t.Run("missing API is an error", func(t *testing.T) {
		clients := gcptest.EmptyClients()
		clients.Usage = &gcptest.Usage{
			ListEnabledServicesFunc: func(context.Context, string) ([]string, error) {
				return gcp.RequiredAPIs()[1:], nil
			},
		}
		checker := newTestChecker(clients)

		res := checker.checkAPIs(context.Background())

		assert.Equal(t, StatusError, res.Status)
	})
}

func TestChecker_Networking(t *testing.T) {
	fullyDeployed := func() *gcp.Clients {
		clients := gcptest.EmptyClients()
		clients.Network = &gcptest.Network{
			GetNetworkFunc: func(_ context.Context, _, name string) (*compute.Network, error) {
				return &compute.Network{
					Name:          name,
					RoutingConfig: &compute.NetworkRoutingConfig{RoutingMode: "REGIONAL"},
				}, nil
			},
			ListSubnetworksFunc: func(context.Context, string, string) ([]*compute.Subnetwork, error) {
				return []*compute.Subnetwork{
					{Name: "web", IpCidrRange: "10.0.1.0/24", PrivateIpGoogleAccess: true},
					{Name: "data", IpCidrRange: "10.0.2.0/24", PrivateIpGoogleAccess: true},
				}, nil
			},
			ListFirewallsFunc: func(context.Context, string) ([]*compute.Firewall, error) {
				return []*compute.Firewall{{Name: "allow-internal"}}, nil
			},
			ListRoutersFunc: func(context.Context, string, string) ([]*compute.Router, error) {
				return []*compute.Router{
					{Name: "nat-router", Nats: []*compute.RouterNat{{Name: "nat"}}},
				}, nil
			},
		}
		return clients
	}

	t.Run("full networking stack is healthy", func(t *testing.T) {
		checker := newTestChecker(fullyDeployed())

		res := checker.checkNetworking(context.Background())

		assert.Equal(t, StatusHealthy, res.Status)
	})

	t.Run("expects the environment VPC by name", func(t *testing.T) {
		var requested string
		clients := fullyDeployed()
		inner := clients.Network.(*gcptest.Network)
		getNetwork := inner.GetNetworkFunc
		inner.GetNetworkFunc = func(ctx context.Context, projectID, name string) (*compute.Network, error) {
			requested = name
			return getNetwork(ctx, projectID, name)
		}
		checker := newTestChecker(clients)

		checker.checkNetworking(context.Background())

		assert.Equal(t, "cataziza-ecommerce-platform-dev-vpc", requested)
	})

	t.Run("missing VPC is an error", func(t *testing.T) {
		checker := newTestChecker(gcptest.EmptyClients())

		res := checker.checkNetworking(context.Background())

		assert.Equal(t, StatusError, res.Status)
	})

	t.Run("global routing mode is a warning", func(t *testing.T) {
		clients := fullyDeployed()
		clients.Network.(*gcptest.Network).GetNetworkFunc =
			func(_ context.Context, _, name string) (*compute.Network, error) {
				return &compute.Network{
					Name:          name,
					RoutingConfig: &compute.NetworkRoutingConfig{RoutingMode: "GLOBAL"},
				}, nil
			}
		checker := newTestChecker(clients)

		res := checker.checkNetworking(context.Background())

		assert.Equal(t, StatusWarning, res.Status)
	})
}

func TestChecker_Compute(t *testing.T) {
	t.Run("cluster not running is an error", func(t *testing.T) {
		clients := gcptest.EmptyClients()
		clients.Clusters = &gcptest.Clusters{
			ListClustersFunc: func(context.Context, string) ([]*container.Cluster, error) {
				return []*container.Cluster{{Name: "apps", Status: "DEGRADED"}}, nil
			},
		}
		checker := newTestChecker(clients)

		res := checker.checkCompute(context.Background())

		assert.Equal(t, StatusError, res.Status)
	})
}

func TestChecker_Databases(t *testing.T) {
	t.Run("stopped sql instance is an error", func(t *testing.T) {
		clients := gcptest.EmptyClients()
		clients.SQL = &gcptest.SQL{
			ListInstancesFunc: func(context.Context, string) ([]*sqladmin.DatabaseInstance, error) {
				return []*sqladmin.DatabaseInstance{{Name: "orders-db", State: "STOPPED"}}, nil
			},
		}
		checker := newTestChecker(clients)

		res := checker.checkDatabases(context.Background())

		assert.Equal(t, StatusError, res.Status)
	})

	t.Run("runnable instance without backups is a warning", func(t *testing.T) {
		clients := gcptest.EmptyClients()
		clients.SQL = &gcptest.SQL{
			ListInstancesFunc: func(context.Context, string) ([]*sqladmin.DatabaseInstance, error) {
				return []*sqladmin.DatabaseInstance{{
					Name:     "orders-db",
					State:    "RUNNABLE",
					Settings: &sqladmin.Settings{},
				}}, nil
			},
		}
		checker := newTestChecker(clients)

		res := checker.checkDatabases(context.Background())

		assert.Equal(t, StatusWarning, res.Status)
	})
}
