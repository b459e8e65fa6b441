package gcp

import (
	"context"
	"fmt"

	cloudfunctions "google.golang.org/api/cloudfunctions/v2"
	container "google.golang.org/api/container/v1"
	run "google.golang.org/api/run/v2"
)

type containerClient struct {
	svc *container.Service
}

var _ ClusterService = (*containerClient)(nil)

func (c *containerClient) ListClusters(ctx context.Context, projectID string) ([]*container.Cluster, error) {
	parent := fmt.Sprintf("projects/%s/locations/-", projectID)
	resp, err := c.svc.Projects.Locations.Clusters.List(parent).Context(ctx).Do()
	if err != nil {
		return nil, err
	}
	return resp.Clusters, nil
}

type runClient struct {
	svc *run.Service
}

var _ RunService = (*runClient)(nil)

func (c *runClient) ListServices(ctx context.Context, projectID, region string) ([]*run.GoogleCloudRunV2Service, error) {
	parent := fmt.Sprintf("projects/%s/locations/%s", projectID, region)
	resp, err := c.svc.Projects.Locations.Services.List(parent).Context(ctx).Do()
	if err != nil {
		return nil, err
	}
	return resp.Services, nil
}

type functionsClient struct {
	svc *cloudfunctions.Service
}

var _ FunctionService = (*functionsClient)(nil)

func (c *functionsClient) ListFunctions(ctx context.Context, projectID, region string) ([]*cloudfunctions.Function, error) {
	parent := fmt.Sprintf("projects/%s/locations/%s", projectID, region)
	resp, err := c.svc.Projects.Locations.Functions.List(parent).Context(ctx).Do()
	if err != nil {
		return nil, err
	}
	return resp.Functions, nil
}
