package gcp

import (
	"context"
	"fmt"

	cloudscheduler "google.golang.org/api/cloudscheduler/v1"
	pubsub "google.golang.org/api/pubsub/v1"
)

type pubsubClient struct {
	svc *pubsub.Service
}

var _ PubSubService = (*pubsubClient)(nil)

func (c *pubsubClient) ListTopics(ctx context.Context, projectID string) ([]*pubsub.Topic, error) {
	resp, err := c.svc.Projects.Topics.List("projects/" + projectID).Context(ctx).Do()
	if err != nil {
		return nil, err
	}
	return resp.Topics, nil
}

func (c *pubsubClient) ListSubscriptions(ctx context.Context, projectID string) ([]*pubsub.Subscription, error) {
	resp, err := c.svc.Projects.Subscriptions.List("projects/" + projectID).Context(ctx).Do()
	if err != nil {
		return nil, err
	}
	return resp.Subscriptions, nil
}

type schedulerClient struct {
	svc *cloudscheduler.Service
}

var _ SchedulerService = (*schedulerClient)(nil)

func (c *schedulerClient) ListJobs(ctx context.Context, projectID, region string) ([]*cloudscheduler.Job, error) {
	parent := fmt.Sprintf("projects/%s/locations/%s", projectID, region)
	resp, err := c.svc.Projects.Locations.Jobs.List(parent).Context(ctx).Do()
	if err != nil {
		return nil, err
	}
	return resp.Jobs, nil
}
