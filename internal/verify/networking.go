package verify

import (
	"context"
	"fmt"
	"time"

	"github.com/catherinevee/terraform-gcp-sub000/internal/constants"
	apperrors "github.com/catherinevee/terraform-gcp-sub000/internal/errors"
	"github.com/catherinevee/terraform-gcp-sub000/internal/gcp"
	"github.com/catherinevee/terraform-gcp-sub000/internal/poll"

	compute "google.golang.org/api/compute/v1"
)

func networkingSuite() Suite {
	return Suite{
		Name: "networking",
		Checks: []Check{
			{Name: "environment VPC exists", Critical: true, Fn: checkVPCExists},
			{Name: "VPC routing mode", Fn: checkVPCRoutingMode},
			{Name: "subnetworks provisioned", Fn: checkSubnetworks},
			{Name: "firewall rules present", Fn: checkFirewalls},
			{Name: "cloud NAT configured", Fn: checkCloudNAT},
			{Name: "global load balancer configured", Fn: checkLoadBalancer},
			{Name: "connectivity canary boots", Fn: checkCanaryBoot},
		},
	}
}

func (h *Harness) vpcName() string {
	return fmt.Sprintf("%s-%s-vpc", constants.NamePrefix, h.Cfg.Environment)
}

func checkVPCExists(ctx context.Context, h *Harness) error {
	_, err := h.Clients.Network.GetNetwork(ctx, h.Cfg.ProjectID, h.vpcName())
	if gcp.IsNotFound(err) {
		return apperrors.NewVerificationError(
			fmt.Sprintf("network %s not found", h.vpcName()), nil)
	}
	if err != nil {
		return apperrors.NewVerificationError("failed to get network", err)
	}
	return nil
}

func checkVPCRoutingMode(ctx context.Context, h *Harness) error {
	network, err := h.Clients.Network.GetNetwork(ctx, h.Cfg.ProjectID, h.vpcName())
	if err != nil {
		return apperrors.NewVerificationError("failed to get network", err)
	}
	mode := ""
	if network.RoutingConfig != nil {
		mode = network.RoutingConfig.RoutingMode
	}
	if mode != h.Expect.VPCRoutingMode {
		return apperrors.NewVerificationError(
			fmt.Sprintf("routing mode is %q, want %q", mode, h.Expect.VPCRoutingMode), nil)
	}
	return nil
}

func checkSubnetworks(ctx context.Context, h *Harness) error {
	subnets, err := h.Clients.Network.ListSubnetworks(ctx, h.Cfg.ProjectID, h.Cfg.Region)
	if err != nil {
		return apperrors.NewVerificationError("failed to list subnetworks", err)
	}
	if len(subnets) < h.Expect.MinSubnets {
		return apperrors.NewVerificationError(
			fmt.Sprintf("found %d subnetworks in %s, want at least %d",
				len(subnets), h.Cfg.Region, h.Expect.MinSubnets), nil)
	}
	for _, subnet := range subnets {
		if !subnet.PrivateIpGoogleAccess {
			return apperrors.NewVerificationError(
				fmt.Sprintf("subnetwork %s has private Google access disabled", subnet.Name), nil)
		}
	}
	return nil
}

func checkFirewalls(ctx context.Context, h *Harness) error {
	firewalls, err := h.Clients.Network.ListFirewalls(ctx, h.Cfg.ProjectID)
	if err != nil {
		return apperrors.NewVerificationError("failed to list firewalls", err)
	}
	if len(firewalls) < h.Expect.MinFirewalls {
		return apperrors.NewVerificationError(
			fmt.Sprintf("found %d firewall rules, want at least %d",
				len(firewalls), h.Expect.MinFirewalls), nil)
	}
	return nil
}

func checkCloudNAT(ctx context.Context, h *Harness) error {
	if !h.Expect.RequireNAT {
		return nil
	}
	routers, err := h.Clients.Network.ListRouters(ctx, h.Cfg.ProjectID, h.Cfg.Region)
	if err != nil {
		return apperrors.NewVerificationError("failed to list routers", err)
	}
	for _, router := range routers {
		if len(router.Nats) > 0 {
			return nil
		}
	}
	return apperrors.NewVerificationError(
		fmt.Sprintf("no cloud NAT gateway found in %s", h.Cfg.Region), nil)
}

func checkLoadBalancer(ctx context.Context, h *Harness) error {
	rules, err := h.Clients.LB.ListGlobalForwardingRules(ctx, h.Cfg.ProjectID)
	if err != nil {
		return apperrors.NewVerificationError("failed to list forwarding rules", err)
	}
	if len(rules) < h.Expect.MinForwardingRules {
		return apperrors.NewVerificationError(
			fmt.Sprintf("found %d global forwarding rules, want at least %d",
				len(rules), h.Expect.MinForwardingRules), nil)
	}
	return nil
}

// checkCanaryBoot proves the network path end to end by booting a throwaway
// VM in the first environment subnetwork and waiting for it to reach
// RUNNING. The instance is registered for cleanup the moment the insert is
// accepted, so it is deleted whether or not the boot wait succeeds.
func checkCanaryBoot(ctx context.Context, h *Harness) error {
	if !h.Expect.BootCanaryVM {
		return nil
	}

	subnets, err := h.Clients.Network.ListSubnetworks(ctx, h.Cfg.ProjectID, h.Cfg.Region)
	if err != nil {
		return apperrors.NewVerificationError("failed to list subnetworks", err)
	}
	if len(subnets) == 0 {
		return apperrors.NewVerificationError(
			fmt.Sprintf("no subnetwork in %s to boot the canary in", h.Cfg.Region), nil)
	}
	subnetwork := subnets[0].SelfLink
	if subnetwork == "" {
		subnetwork = fmt.Sprintf("regions/%s/subnetworks/%s", h.Cfg.Region, subnets[0].Name)
	}

	name := constants.CanaryInstanceName(time.Now().UTC().Format(constants.ArtifactTimeFormat))
	instance := &compute.Instance{
		Name:        name,
		MachineType: fmt.Sprintf("zones/%s/machineTypes/%s", h.Cfg.Zone, constants.CanaryMachineType),
		Disks: []*compute.AttachedDisk{{
			Boot:       true,
			AutoDelete: true,
			InitializeParams: &compute.AttachedDiskInitializeParams{
				SourceImage: constants.CanaryImage,
			},
		}},
		NetworkInterfaces: []*compute.NetworkInterface{{Subnetwork: subnetwork}},
		Labels:            map[string]string{"purpose": "verification", "managed-by": constants.ProjectName},
	}

	h.Log.Info("booting canary instance", "name", name, "zone", h.Cfg.Zone)
	if err := h.Clients.Instances.InsertInstance(ctx, h.Cfg.ProjectID, h.Cfg.Zone, instance); err != nil {
		return apperrors.NewVerificationError("failed to create canary instance", err)
	}
	h.Cleanup.Register("canary instance "+name, func(ctx context.Context) error {
		return deleteInstance(ctx, h, name)
	})

	err = poll.Until(ctx, poll.DefaultConfig(), "canary instance "+name+" to reach RUNNING",
		func(ctx context.Context) (bool, error) {
			inst, err := h.Clients.Instances.GetInstance(ctx, h.Cfg.ProjectID, h.Cfg.Zone, name)
			if gcp.IsNotFound(err) {
				return false, nil
			}
			if err != nil {
				return false, err
			}
			switch inst.Status {
			case "RUNNING":
				return true, nil
			case "TERMINATED":
				return false, apperrors.NewVerificationError(
					fmt.Sprintf("canary instance %s terminated during boot", name), nil)
			default:
				return false, nil
			}
		})
	if err != nil {
		return err
	}

	h.Log.Info("canary instance running", "name", name)
	return nil
}

// deleteInstance removes the canary and waits until it is gone so the
// subnetwork can be destroyed afterwards.
func deleteInstance(ctx context.Context, h *Harness, name string) error {
	err := h.Clients.Instances.DeleteInstance(ctx, h.Cfg.ProjectID, h.Cfg.Zone, name)
	if err != nil && !gcp.IsNotFound(err) {
		return err
	}

	cfg := poll.Config{
		Initial:    2 * time.Second,
		Max:        10 * time.Second,
		Multiplier: constants.ProbePollMultiplier,
		Timeout:    constants.CleanupTimeout,
	}
	return poll.Until(ctx, cfg, "canary instance "+name+" to be deleted",
		func(ctx context.Context) (bool, error) {
			_, err := h.Clients.Instances.GetInstance(ctx, h.Cfg.ProjectID, h.Cfg.Zone, name)
			if gcp.IsNotFound(err) {
				return true, nil
			}
			if err != nil {
				return false, err
			}
			return false, nil
		})
}
