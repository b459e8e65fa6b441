package verify

import (
	"context"
	"fmt"
	"path"

	apperrors "github.com/catherinevee/terraform-gcp-sub000/internal/errors"
)

func computeSuite() Suite {
	return Suite{
		Name: "compute",
		Checks: []Check{
			{Name: "GKE clusters running", Fn: checkClusters},
			{Name: "cloud run services ready", Fn: checkRunServices},
			{Name: "cloud functions active", Fn: checkFunctions},
		},
	}
}

func checkClusters(ctx context.Context, h *Harness) error {
	clusters, err := h.Clients.Clusters.ListClusters(ctx, h.Cfg.ProjectID)
	if err != nil {
		return apperrors.NewVerificationError("failed to list clusters", err)
	}
	if len(clusters) < h.Expect.MinClusters {
		return apperrors.NewVerificationError(
			fmt.Sprintf("found %d clusters, want at least %d", len(clusters), h.Expect.MinClusters), nil)
	}
	for _, cluster := range clusters {
		if cluster.Status != "RUNNING" {
			return apperrors.NewVerificationError(
				fmt.Sprintf("cluster %s is %s, want RUNNING", cluster.Name, cluster.Status), nil)
		}
		if h.Expect.RequirePrivateNodes &&
			(cluster.PrivateClusterConfig == nil || !cluster.PrivateClusterConfig.EnablePrivateNodes) {
			return apperrors.NewVerificationError(
				fmt.Sprintf("cluster %s does not use private nodes", cluster.Name), nil)
		}
		if h.Expect.RequireWorkloadID &&
			(cluster.WorkloadIdentityConfig == nil || cluster.WorkloadIdentityConfig.WorkloadPool == "") {
			return apperrors.NewVerificationError(
				fmt.Sprintf("cluster %s has workload identity disabled", cluster.Name), nil)
		}
	}
	return nil
}

func checkRunServices(ctx context.Context, h *Harness) error {
	services, err := h.Clients.Run.ListServices(ctx, h.Cfg.ProjectID, h.Cfg.Region)
	if err != nil {
		return apperrors.NewVerificationError("failed to list cloud run services", err)
	}
	if len(services) < h.Expect.MinRunServices {
		return apperrors.NewVerificationError(
			fmt.Sprintf("found %d cloud run services in %s, want at least %d",
				len(services), h.Cfg.Region, h.Expect.MinRunServices), nil)
	}
	for _, svc := range services {
		if svc.TerminalCondition != nil && svc.TerminalCondition.State != "CONDITION_SUCCEEDED" {
			return apperrors.NewVerificationError(
				fmt.Sprintf("service %s is not ready: %s",
					path.Base(svc.Name), svc.TerminalCondition.State), nil)
		}
	}
	return nil
}

func checkFunctions(ctx context.Context, h *Harness) error {
	functions, err := h.Clients.Functions.ListFunctions(ctx, h.Cfg.ProjectID, h.Cfg.Region)
	if err != nil {
		return apperrors.NewVerificationError("failed to list cloud functions", err)
	}
	for _, fn := range functions {
		if fn.State != "ACTIVE" {
			return apperrors.NewVerificationError(
				fmt.Sprintf("function %s is %s, want ACTIVE", path.Base(fn.Name), fn.State), nil)
		}
	}
	return nil
}
