package gcp

import (
	"context"

	compute "google.golang.org/api/compute/v1"
)

// computeClient serves the network, load balancing, and instance
// interfaces from a single Compute Engine service.
type computeClient struct {
	svc *compute.Service
}

var (
	_ NetworkService       = (*computeClient)(nil)
	_ LoadBalancingService = (*computeClient)(nil)
	_ InstanceService      = (*computeClient)(nil)
)

func (c *computeClient) GetNetwork(ctx context.Context, projectID, name string) (*compute.Network, error) {
	return c.svc.Networks.Get(projectID, name).Context(ctx).Do()
}

func (c *computeClient) ListSubnetworks(ctx context.Context, projectID, region string) ([]*compute.Subnetwork, error) {
	resp, err := c.svc.Subnetworks.List(projectID, region).Context(ctx).Do()
	if err != nil {
		return nil, err
	}
	return resp.Items, nil
}

func (c *computeClient) ListFirewalls(ctx context.Context, projectID string) ([]*compute.Firewall, error) {
	resp, err := c.svc.Firewalls.List(projectID).Context(ctx).Do()
	if err != nil {
		return nil, err
	}
	return resp.Items, nil
}

func (c *computeClient) ListRouters(ctx context.Context, projectID, region string) ([]*compute.Router, error) {
	resp, err := c.svc.Routers.List(projectID, region).Context(ctx).Do()
	if err != nil {
		return nil, err
	}
	return resp.Items, nil
}

func (c *computeClient) ListGlobalForwardingRules(ctx context.Context, projectID string) ([]*compute.ForwardingRule, error) {
	resp, err := c.svc.GlobalForwardingRules.List(projectID).Context(ctx).Do()
	if err != nil {
		return nil, err
	}
	return resp.Items, nil
}

func (c *computeClient) ListSSLPolicies(ctx context.Context, projectID string) ([]*compute.SslPolicy, error) {
	resp, err := c.svc.SslPolicies.List(projectID).Context(ctx).Do()
	if err != nil {
		return nil, err
	}
	return resp.Items, nil
}

func (c *computeClient) ListSecurityPolicies(ctx context.Context, projectID string) ([]*compute.SecurityPolicy, error) {
	resp, err := c.svc.SecurityPolicies.List(projectID).Context(ctx).Do()
	if err != nil {
		return nil, err
	}
	return resp.Items, nil
}

func (c *computeClient) InsertInstance(ctx context.Context, projectID, zone string, instance *compute.Instance) error {
	_, err := c.svc.Instances.Insert(projectID, zone, instance).Context(ctx).Do()
	return err
}

func (c *computeClient) GetInstance(ctx context.Context, projectID, zone, name string) (*compute.Instance, error) {
	return c.svc.Instances.Get(projectID, zone, name).Context(ctx).Do()
}

func (c *computeClient) DeleteInstance(ctx context.Context, projectID, zone, name string) error {
	_, err := c.svc.Instances.Delete(projectID, zone, name).Context(ctx).Do()
	return err
}

func (c *computeClient) ListInstances(ctx context.Context, projectID, zone string) ([]*compute.Instance, error) {
	resp, err := c.svc.Instances.List(projectID, zone).Context(ctx).Do()
	if err != nil {
		return nil, err
	}
	return resp.Items, nil
}
