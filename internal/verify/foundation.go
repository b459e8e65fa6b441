package verify

import (
	"context"
	"fmt"
	"strings"

	apperrors "github.com/catherinevee/terraform-gcp-sub000/internal/errors"
	"github.com/catherinevee/terraform-gcp-sub000/internal/gcp"

	"cloud.google.com/go/resourcemanager/apiv3/resourcemanagerpb"
)

func foundationSuite() Suite {
	return Suite{
		Name: "foundation",
		Checks: []Check{
			{Name: "project is active", Critical: true, Fn: checkProjectActive},
			{Name: "billing is enabled", Critical: true, Fn: checkBillingEnabled},
			{Name: "required APIs are enabled", Fn: checkRequiredAPIs},
			{Name: "service accounts provisioned", Fn: checkServiceAccounts},
			{Name: "artifact registry repositories", Fn: checkRepositories},
		},
	}
}

func checkProjectActive(ctx context.Context, h *Harness) error {
	project, err := h.Clients.Project.GetProject(ctx, h.Cfg.ProjectID)
	if err != nil {
		return apperrors.NewVerificationError(
			fmt.Sprintf("failed to get project %s", h.Cfg.ProjectID), err)
	}
	if project.GetState() != resourcemanagerpb.Project_ACTIVE {
		return apperrors.NewVerificationError(
			fmt.Sprintf("project %s is %s, want ACTIVE", h.Cfg.ProjectID, project.GetState()), nil)
	}
	return nil
}

func checkBillingEnabled(ctx context.Context, h *Harness) error {
	info, err := h.Clients.Billing.GetBillingInfo(ctx, h.Cfg.ProjectID)
	if err != nil {
		return apperrors.NewVerificationError("failed to get billing info", err)
	}
	if !info.BillingEnabled {
		return apperrors.NewVerificationError(
			fmt.Sprintf("billing is disabled on project %s", h.Cfg.ProjectID), nil)
	}
	return nil
}

func checkRequiredAPIs(ctx context.Context, h *Harness) error {
	enabled, err := h.Clients.Usage.ListEnabledServices(ctx, h.Cfg.ProjectID)
	if err != nil {
		return apperrors.NewVerificationError("failed to list enabled services", err)
	}

	enabledSet := make(map[string]struct{}, len(enabled))
	for _, name := range enabled {
		enabledSet[name] = struct{}{}
	}

	var missing []string
	for _, api := range gcp.RequiredAPIs() {
		if _, ok := enabledSet[api]; !ok {
			missing = append(missing, api)
		}
	}
	if len(missing) > 0 {
		return apperrors.NewVerificationError(
			fmt.Sprintf("%d required APIs not enabled: %s", len(missing), strings.Join(missing, ", ")), nil)
	}
	return nil
}

func checkServiceAccounts(ctx context.Context, h *Harness) error {
	accounts, err := h.Clients.IAM.ListServiceAccounts(ctx, h.Cfg.ProjectID)
	if err != nil {
		return apperrors.NewVerificationError("failed to list service accounts", err)
	}
	active := 0
	for _, account := range accounts {
		if !account.Disabled {
			active++
		}
	}
	if active < h.Expect.MinServiceAccounts {
		return apperrors.NewVerificationError(
			fmt.Sprintf("found %d active service accounts, want at least %d",
				active, h.Expect.MinServiceAccounts), nil)
	}
	return nil
}

func checkRepositories(ctx context.Context, h *Harness) error {
	repos, err := h.Clients.Registry.ListRepositories(ctx, h.Cfg.ProjectID, h.Cfg.Region)
	if err != nil {
		return apperrors.NewVerificationError("failed to list repositories", err)
	}
	if len(repos) < h.Expect.MinRepositories {
		return apperrors.NewVerificationError(
			fmt.Sprintf("found %d repositories in %s, want at least %d",
				len(repos), h.Cfg.Region, h.Expect.MinRepositories), nil)
	}
	return nil
}
