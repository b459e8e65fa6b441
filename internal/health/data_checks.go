package health

import (
	"context"
	"fmt"
	"path"
)

func (c *Checker) checkDatabases(ctx context.Context) CategoryResult {
	const category = "databases"
	var details []Detail

	sqlInstances, err := c.clients.SQL.ListInstances(ctx, c.cfg.ProjectID)
	switch {
	case err != nil:
		details = append(details, failed("cloud sql", fmt.Sprintf("list instances: %v", err)))
	case len(sqlInstances) == 0:
		details = append(details, warning("cloud sql", "no instances"))
	default:
		for _, inst := range sqlInstances {
			if inst.State != "RUNNABLE" {
				details = append(details, failed(inst.Name, "state "+inst.State))
				continue
			}
			details = append(details, healthy(inst.Name, inst.DatabaseVersion))
			if inst.Settings == nil || inst.Settings.BackupConfiguration == nil ||
				!inst.Settings.BackupConfiguration.Enabled {
				details = append(details, warning(inst.Name, "automated backups disabled"))
			}
		}
	}

	redisInstances, err := c.clients.Redis.ListInstances(ctx, c.cfg.ProjectID)
	switch {
	case err != nil:
		details = append(details, failed("redis", fmt.Sprintf("list instances: %v", err)))
	case len(redisInstances) == 0:
		details = append(details, warning("redis", "no instances"))
	default:
		for _, inst := range redisInstances {
			name := path.Base(inst.Name)
			if inst.State != "READY" {
				details = append(details, failed(name, "state "+inst.State))
			} else {
				details = append(details, healthy(name,
					fmt.Sprintf("%s, %d GB", inst.Tier, inst.MemorySizeGb)))
			}
		}
	}

	return result(category, details)
}

func (c *Checker) checkStorage(ctx context.Context) CategoryResult {
	const category = "storage"
	var details []Detail

	buckets, err := c.clients.Storage.ListBuckets(ctx, c.cfg.ProjectID)
	switch {
	case err != nil:
		details = append(details, failed("buckets", fmt.Sprintf("list buckets: %v", err)))
	case len(buckets) == 0:
		details = append(details, warning("buckets", "no buckets"))
	default:
		for _, bucket := range buckets {
			if bucket.Versioning == nil || !bucket.Versioning.Enabled {
				details = append(details, warning(bucket.Name, "versioning disabled"))
			} else {
				details = append(details, healthy(bucket.Name, bucket.Location))
			}
		}
	}

	datasets, err := c.clients.BigQuery.ListDatasets(ctx, c.cfg.ProjectID)
	switch {
	case err != nil:
		details = append(details, failed("bigquery", fmt.Sprintf("list datasets: %v", err)))
	case len(datasets) == 0:
		details = append(details, warning("bigquery", "no datasets"))
	default:
		for _, ds := range datasets {
			name := ds.Id
			if ds.DatasetReference != nil {
				name = ds.DatasetReference.DatasetId
			}
			details = append(details, healthy(name, ds.Location))
		}
	}

	return result(category, details)
}

func (c *Checker) checkMessaging(ctx context.Context) CategoryResult {
	const category = "messaging"
	var details []Detail

	topics, err := c.clients.PubSub.ListTopics(ctx, c.cfg.ProjectID)
	switch {
	case err != nil:
		details = append(details, failed("topics", fmt.Sprintf("list topics: %v", err)))
	case len(topics) == 0:
		details = append(details, warning("topics", "no topics"))
	default:
		details = append(details, healthy("topics", fmt.Sprintf("%d topics", len(topics))))
	}

	subs, err := c.clients.PubSub.ListSubscriptions(ctx, c.cfg.ProjectID)
	switch {
	case err != nil:
		details = append(details, failed("subscriptions", fmt.Sprintf("list subscriptions: %v", err)))
	case len(subs) == 0:
		details = append(details, warning("subscriptions", "no subscriptions"))
	default:
		details = append(details, healthy("subscriptions",
			fmt.Sprintf("%d subscriptions", len(subs))))
		for _, sub := range subs {
			if sub.DeadLetterPolicy == nil {
				details = append(details, warning(path.Base(sub.Name), "no dead letter policy"))
			}
		}
	}

	return result(category, details)
}
