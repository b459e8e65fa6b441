package health

import (
	"context"
	"fmt"
	"path"

	"github.com/catherinevee/terraform-gcp-sub000/internal/constants"
	"github.com/catherinevee/terraform-gcp-sub000/internal/gcp"
)

func (c *Checker) vpcName() string {
	return fmt.Sprintf("%s-%s-vpc", constants.NamePrefix, c.cfg.Environment)
}

func (c *Checker) checkNetworking(ctx context.Context) CategoryResult {
	const category = "networking"
	var details []Detail

	network, err := c.clients.Network.GetNetwork(ctx, c.cfg.ProjectID, c.vpcName())
	switch {
	case gcp.IsNotFound(err):
		details = append(details, failed("vpc", fmt.Sprintf("network %s not found", c.vpcName())))
	case err != nil:
		return errorResult(category, fmt.Errorf("get network: %w", err))
	default:
		details = append(details, healthy("vpc", network.Name))
		if network.RoutingConfig == nil || network.RoutingConfig.RoutingMode != "REGIONAL" {
			details = append(details, warning("vpc routing", "routing mode is not REGIONAL"))
		}
	}

	subnets, err := c.clients.Network.ListSubnetworks(ctx, c.cfg.ProjectID, c.cfg.Region)
	switch {
	case err != nil:
		details = append(details, failed("subnetworks", fmt.Sprintf("list subnetworks: %v", err)))
	case len(subnets) == 0:
		details = append(details, warning("subnetworks", "none found in "+c.cfg.Region))
	default:
		details = append(details, healthy("subnetworks",
			fmt.Sprintf("%d in %s", len(subnets), c.cfg.Region)))
		for _, subnet := range subnets {
			if !subnet.PrivateIpGoogleAccess {
				details = append(details, warning(subnet.Name, "private Google access disabled"))
			}
		}
	}

	firewalls, err := c.clients.Network.ListFirewalls(ctx, c.cfg.ProjectID)
	switch {
	case err != nil:
		details = append(details, failed("firewall rules", fmt.Sprintf("list firewalls: %v", err)))
	case len(firewalls) == 0:
		details = append(details, warning("firewall rules", "none found"))
	default:
		details = append(details, healthy("firewall rules", fmt.Sprintf("%d rules", len(firewalls))))
	}

	routers, err := c.clients.Network.ListRouters(ctx, c.cfg.ProjectID, c.cfg.Region)
	switch {
	case err != nil:
		details = append(details, failed("cloud nat", fmt.Sprintf("list routers: %v", err)))
	default:
		nats := 0
		for _, router := range routers {
			nats += len(router.Nats)
		}
		if nats == 0 {
			details = append(details, warning("cloud nat", "no NAT gateway in "+c.cfg.Region))
		} else {
			details = append(details, healthy("cloud nat", fmt.Sprintf("%d NAT gateways", nats)))
		}
	}

	return result(category, details)
}

func (c *Checker) checkLoadBalancing(ctx context.Context) CategoryResult {
	const category = "load-balancing"
	var details []Detail

	rules, err := c.clients.LB.ListGlobalForwardingRules(ctx, c.cfg.ProjectID)
	switch {
	case err != nil:
		return errorResult(category, fmt.Errorf("list forwarding rules: %w", err))
	case len(rules) == 0:
		details = append(details, warning("forwarding rules", "no global forwarding rules"))
	default:
		for _, rule := range rules {
			details = append(details, healthy(rule.Name, rule.IPAddress))
		}
	}

	policies, err := c.clients.LB.ListSSLPolicies(ctx, c.cfg.ProjectID)
	switch {
	case err != nil:
		details = append(details, failed("ssl policies", fmt.Sprintf("list ssl policies: %v", err)))
	case len(policies) == 0:
		details = append(details, warning("ssl policies", "none found"))
	default:
		for _, policy := range policies {
			if policy.MinTlsVersion != "TLS_1_2" {
				details = append(details, warning(policy.Name,
					"minimum TLS version is "+policy.MinTlsVersion))
			} else {
				details = append(details, healthy(policy.Name, "minimum TLS 1.2"))
			}
		}
	}

	armor, err := c.clients.LB.ListSecurityPolicies(ctx, c.cfg.ProjectID)
	switch {
	case err != nil:
		details = append(details, failed("cloud armor", fmt.Sprintf("list security policies: %v", err)))
	case len(armor) == 0:
		details = append(details, warning("cloud armor", "no security policies"))
	default:
		details = append(details, healthy("cloud armor",
			fmt.Sprintf("%d security policies", len(armor))))
	}

	return result(category, details)
}

func (c *Checker) checkCompute(ctx context.Context) CategoryResult {
	const category = "compute"
	var details []Detail

	clusters, err := c.clients.Clusters.ListClusters(ctx, c.cfg.ProjectID)
	switch {
	case err != nil:
		details = append(details, failed("gke", fmt.Sprintf("list clusters: %v", err)))
	case len(clusters) == 0:
		details = append(details, warning("gke", "no clusters"))
	default:
		for _, cluster := range clusters {
			if cluster.Status != "RUNNING" {
				details = append(details, failed(cluster.Name, "status "+cluster.Status))
				continue
			}
			details = append(details, healthy(cluster.Name,
				fmt.Sprintf("running, %d nodes", cluster.CurrentNodeCount)))
			if cluster.PrivateClusterConfig == nil || !cluster.PrivateClusterConfig.EnablePrivateNodes {
				details = append(details, warning(cluster.Name, "public nodes"))
			}
			if cluster.WorkloadIdentityConfig == nil || cluster.WorkloadIdentityConfig.WorkloadPool == "" {
				details = append(details, warning(cluster.Name, "workload identity disabled"))
			}
		}
	}

	services, err := c.clients.Run.ListServices(ctx, c.cfg.ProjectID, c.cfg.Region)
	switch {
	case err != nil:
		details = append(details, failed("cloud run", fmt.Sprintf("list services: %v", err)))
	case len(services) == 0:
		details = append(details, warning("cloud run", "no services in "+c.cfg.Region))
	default:
		for _, svc := range services {
			name := path.Base(svc.Name)
			if svc.TerminalCondition != nil && svc.TerminalCondition.State != "CONDITION_SUCCEEDED" {
				details = append(details, warning(name, "not ready: "+svc.TerminalCondition.State))
			} else {
				details = append(details, healthy(name, svc.Uri))
			}
		}
	}

	functions, err := c.clients.Functions.ListFunctions(ctx, c.cfg.ProjectID, c.cfg.Region)
	switch {
	case err != nil:
		details = append(details, failed("cloud functions", fmt.Sprintf("list functions: %v", err)))
	case len(functions) == 0:
		details = append(details, warning("cloud functions", "no functions in "+c.cfg.Region))
	default:
		for _, fn := range functions {
			name := path.Base(fn.Name)
			if fn.State != "ACTIVE" {
				details = append(details, warning(name, "state "+fn.State))
			} else {
				details = append(details, healthy(name, "active"))
			}
		}
	}

	return result(category, details)
}
