package verify

import (
	"context"
	"fmt"
	"path"

	apperrors "github.com/catherinevee/terraform-gcp-sub000/internal/errors"
)

func dataSuite() Suite {
	return Suite{
		Name: "data",
		Checks: []Check{
			{Name: "cloud SQL instances runnable", Critical: true, Fn: checkSQLInstances},
			{Name: "cloud SQL backups enabled", Fn: checkSQLBackups},
			{Name: "redis instances ready", Fn: checkRedisInstances},
			{Name: "storage buckets versioned", Fn: checkBuckets},
			{Name: "bigquery datasets present", Fn: checkDatasets},
			{Name: "pubsub topics and subscriptions", Fn: checkPubSub},
		},
	}
}

func checkSQLInstances(ctx context.Context, h *Harness) error {
	instances, err := h.Clients.SQL.ListInstances(ctx, h.Cfg.ProjectID)
	if err != nil {
		return apperrors.NewVerificationError("failed to list cloud SQL instances", err)
	}
	if len(instances) < h.Expect.MinSQLInstances {
		return apperrors.NewVerificationError(
			fmt.Sprintf("found %d cloud SQL instances, want at least %d",
				len(instances), h.Expect.MinSQLInstances), nil)
	}
	for _, inst := range instances {
		if inst.State != "RUNNABLE" {
			return apperrors.NewVerificationError(
				fmt.Sprintf("instance %s is %s, want RUNNABLE", inst.Name, inst.State), nil)
		}
	}
	return nil
}

func checkSQLBackups(ctx context.Context, h *Harness) error {
	if !h.Expect.RequireSQLBackups {
		return nil
	}
	instances, err := h.Clients.SQL.ListInstances(ctx, h.Cfg.ProjectID)
	if err != nil {
		return apperrors.NewVerificationError("failed to list cloud SQL instances", err)
	}
	for _, inst := range instances {
		if inst.Settings == nil || inst.Settings.BackupConfiguration == nil ||
			!inst.Settings.BackupConfiguration.Enabled {
			return apperrors.NewVerificationError(
				fmt.Sprintf("instance %s has automated backups disabled", inst.Name), nil)
		}
	}
	return nil
}

func checkRedisInstances(ctx context.Context, h *Harness) error {
	instances, err := h.Clients.Redis.ListInstances(ctx, h.Cfg.ProjectID)
	if err != nil {
		return apperrors.NewVerificationError("failed to list redis instances", err)
	}
	if len(instances) < h.Expect.MinRedisInstances {
		return apperrors.NewVerificationError(
			fmt.Sprintf("found %d redis instances, want at least %d",
				len(instances), h.Expect.MinRedisInstances), nil)
	}
	for _, inst := range instances {
		if inst.State != "READY" {
			return apperrors.NewVerificationError(
				fmt.Sprintf("instance %s is %s, want READY", path.Base(inst.Name), inst.State), nil)
		}
	}
	return nil
}

func checkBuckets(ctx context.Context, h *Harness) error {
	buckets, err := h.Clients.Storage.ListBuckets(ctx, h.Cfg.ProjectID)
	if err != nil {
		return apperrors.NewVerificationError("failed to list buckets", err)
	}
	if len(buckets) < h.Expect.MinBuckets {
		return apperrors.NewVerificationError(
			fmt.Sprintf("found %d buckets, want at least %d", len(buckets), h.Expect.MinBuckets), nil)
	}
	for _, bucket := range buckets {
		if bucket.Versioning == nil || !bucket.Versioning.Enabled {
			return apperrors.NewVerificationError(
				fmt.Sprintf("bucket %s has versioning disabled", bucket.Name), nil)
		}
	}
	return nil
}

func checkDatasets(ctx context.Context, h *Harness) error {
	datasets, err := h.Clients.BigQuery.ListDatasets(ctx, h.Cfg.ProjectID)
	if err != nil {
		return apperrors.NewVerificationError("failed to list datasets", err)
	}
	if len(datasets) < h.Expect.MinDatasets {
		return apperrors.NewVerificationError(
			fmt.Sprintf("found %d datasets, want at least %d", len(datasets), h.Expect.MinDatasets), nil)
	}
	return nil
}

func checkPubSub(ctx context.Context, h *Harness) error {
	topics, err := h.Clients.PubSub.ListTopics(ctx, h.Cfg.ProjectID)
	if err != nil {
		return apperrors.NewVerificationError("failed to list topics", err)
	}
	if len(topics) < h.Expect.MinTopics {
		return apperrors.NewVerificationError(
			fmt.Sprintf("found %d topics, want at least %d", len(topics), h.Expect.MinTopics), nil)
	}

	subs, err := h.Clients.PubSub.ListSubscriptions(ctx, h.Cfg.ProjectID)
	if err != nil {
		return apperrors.NewVerificationError("failed to list subscriptions", err)
	}
	if len(subs) < h.Expect.MinSubscriptions {
		return apperrors.NewVerificationError(
			fmt.Sprintf("found %d subscriptions, want at least %d",
				len(subs), h.Expect.MinSubscriptions), nil)
	}
	return nil
}
