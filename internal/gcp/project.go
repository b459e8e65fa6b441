package gcp

import (
	"context"

	resourcemanager "cloud.google.com/go/resourcemanager/apiv3"
	"cloud.google.com/go/resourcemanager/apiv3/resourcemanagerpb"
	cloudbilling "google.golang.org/api/cloudbilling/v1"
	serviceusage "google.golang.org/api/serviceusage/v1"
)

type projectClient struct {
	client *resourcemanager.ProjectsClient
}

var _ ProjectService = (*projectClient)(nil)

func (c *projectClient) GetProject(ctx context.Context, projectID string) (*resourcemanagerpb.Project, error) {
	return c.client.GetProject(ctx, &resourcemanagerpb.GetProjectRequest{
		Name: "projects/" + projectID,
	})
}

type billingClient struct {
	svc *cloudbilling.APIService
}

var _ BillingService = (*billingClient)(nil)

func (c *billingClient) GetBillingInfo(ctx context.Context, projectID string) (*cloudbilling.ProjectBillingInfo, error) {
	return c.svc.Projects.GetBillingInfo("projects/" + projectID).Context(ctx).Do()
}

type usageClient struct {
	svc *serviceusage.Service
}

var _ UsageService = (*usageClient)(nil)

// ListEnabledServices returns the enabled API names, e.g.
// "compute.googleapis.com". The list call pages at 50 entries, so it
// walks every page.
func (c *usageClient) ListEnabledServices(ctx context.Context, projectID string) ([]string, error) {
	var names []string
	call := c.svc.Services.List("projects/" + projectID).Filter("state:ENABLED")
	err := call.Pages(ctx, func(resp *serviceusage.ListServicesResponse) error {
		for _, svc := range resp.Services {
			if svc.Config != nil {
				names = append(names, svc.Config.Name)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return names, nil
}
