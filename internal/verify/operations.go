package verify

import (
	"context"
	"fmt"
	"path"
	"strings"

	apperrors "github.com/catherinevee/terraform-gcp-sub000/internal/errors"
)

func operationsSuite() Suite {
	return Suite{
		Name: "operations",
		Checks: []Check{
			{Name: "cloud armor security policies", Fn: checkSecurityPolicies},
			{Name: "SSL policies enforce modern TLS", Fn: checkSSLPolicies},
			{Name: "scheduler jobs enabled", Fn: checkSchedulerJobs},
			{Name: "backup bucket present", Fn: checkBackupBucket},
		},
	}
}

func checkSecurityPolicies(ctx context.Context, h *Harness) error {
	policies, err := h.Clients.LB.ListSecurityPolicies(ctx, h.Cfg.ProjectID)
	if err != nil {
		return apperrors.NewVerificationError("failed to list security policies", err)
	}
	if len(policies) < h.Expect.MinSecurityPolicies {
		return apperrors.NewVerificationError(
			fmt.Sprintf("found %d cloud armor policies, want at least %d",
				len(policies), h.Expect.MinSecurityPolicies), nil)
	}
	return nil
}

func checkSSLPolicies(ctx context.Context, h *Harness) error {
	policies, err := h.Clients.LB.ListSSLPolicies(ctx, h.Cfg.ProjectID)
	if err != nil {
		return apperrors.NewVerificationError("failed to list SSL policies", err)
	}
	if len(policies) < h.Expect.MinSSLPolicies {
		return apperrors.NewVerificationError(
			fmt.Sprintf("found %d SSL policies, want at least %d",
				len(policies), h.Expect.MinSSLPolicies), nil)
	}
	for _, policy := range policies {
		if policy.MinTlsVersion != "TLS_1_2" {
			return apperrors.NewVerificationError(
				fmt.Sprintf("SSL policy %s allows %s, want TLS_1_2",
					policy.Name, policy.MinTlsVersion), nil)
		}
	}
	return nil
}

func checkSchedulerJobs(ctx context.Context, h *Harness) error {
	jobs, err := h.Clients.Scheduler.ListJobs(ctx, h.Cfg.ProjectID, h.Cfg.Region)
	if err != nil {
		return apperrors.NewVerificationError("failed to list scheduler jobs", err)
	}
	if len(jobs) < h.Expect.MinSchedulerJobs {
		return apperrors.NewVerificationError(
			fmt.Sprintf("found %d scheduler jobs in %s, want at least %d",
				len(jobs), h.Cfg.Region, h.Expect.MinSchedulerJobs), nil)
	}
	for _, job := range jobs {
		if job.State != "ENABLED" {
			return apperrors.NewVerificationError(
				fmt.Sprintf("job %s is %s, want ENABLED", path.Base(job.Name), job.State), nil)
		}
	}
	return nil
}

func checkBackupBucket(ctx context.Context, h *Harness) error {
	if !h.Expect.RequireBackupBucket {
		return nil
	}
	buckets, err := h.Clients.Storage.ListBuckets(ctx, h.Cfg.ProjectID)
	if err != nil {
		return apperrors.NewVerificationError("failed to list buckets", err)
	}
	for _, bucket := range buckets {
		if strings.Contains(bucket.Name, "backup") {
			return nil
		}
	}
	return apperrors.NewVerificationError("no backup bucket found", nil)
}
