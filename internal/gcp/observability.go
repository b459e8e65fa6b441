package gcp

import (
	"context"
	"fmt"

	artifactregistry "google.golang.org/api/artifactregistry/v1"
	logging "google.golang.org/api/logging/v2"
	monitoring "google.golang.org/api/monitoring/v3"
)

type loggingClient struct {
	svc *logging.Service
}

var _ LoggingService = (*loggingClient)(nil)

func (c *loggingClient) ListSinks(ctx context.Context, projectID string) ([]*logging.LogSink, error) {
	resp, err := c.svc.Projects.Sinks.List("projects/" + projectID).Context(ctx).Do()
	if err != nil {
		return nil, err
	}
	return resp.Sinks, nil
}

type monitoringClient struct {
	svc *monitoring.Service
}

var _ MonitoringService = (*monitoringClient)(nil)

func (c *monitoringClient) ListAlertPolicies(ctx context.Context, projectID string) ([]*monitoring.AlertPolicy, error) {
	resp, err := c.svc.Projects.AlertPolicies.List("projects/" + projectID).Context(ctx).Do()
	if err != nil {
		return nil, err
	}
	return resp.AlertPolicies, nil
}

func (c *monitoringClient) ListNotificationChannels(ctx context.Context, projectID string) ([]*monitoring.NotificationChannel, error) {
	resp, err := c.svc.Projects.NotificationChannels.List("projects/" + projectID).Context(ctx).Do()
	if err != nil {
		return nil, err
	}
	return resp.NotificationChannels, nil
}

func (c *monitoringClient) ListUptimeChecks(ctx context.Context, projectID string) ([]*monitoring.UptimeCheckConfig, error) {
	resp, err := c.svc.Projects.UptimeCheckConfigs.List("projects/" + projectID).Context(ctx).Do()
	if err != nil {
		return nil, err
	}
	return resp.UptimeCheckConfigs, nil
}

type registryClient struct {
	svc *artifactregistry.Service
}

var _ RegistryService = (*registryClient)(nil)

func (c *registryClient) ListRepositories(ctx context.Context, projectID, region string) ([]*artifactregistry.Repository, error) {
	parent := fmt.Sprintf("projects/%s/locations/%s", projectID, region)
	resp, err := c.svc.Projects.Locations.Repositories.List(parent).Context(ctx).Do()
	if err != nil {
		return nil, err
	}
	return resp.Repositories, nil
}
