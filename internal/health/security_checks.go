package health

import (
	"context"
	"fmt"
	"path"
)

func (c *Checker) checkSecurity(ctx context.Context) CategoryResult {
	const category = "security"
	var details []Detail

	accounts, err := c.clients.IAM.ListServiceAccounts(ctx, c.cfg.ProjectID)
	switch {
	case err != nil:
		details = append(details, failed("service accounts", fmt.Sprintf("list service accounts: %v", err)))
	case len(accounts) == 0:
		details = append(details, warning("service accounts", "none found"))
	default:
		active := 0
		for _, account := range accounts {
			if account.Disabled {
				details = append(details, warning(account.Email, "disabled"))
			} else {
				active++
			}
		}
		details = append(details, healthy("service accounts", fmt.Sprintf("%d active", active)))
	}

	keyRings, err := c.clients.KMS.ListKeyRings(ctx, c.cfg.ProjectID, c.cfg.Region)
	switch {
	case err != nil:
		details = append(details, failed("kms", fmt.Sprintf("list key rings: %v", err)))
	case len(keyRings) == 0:
		details = append(details, warning("kms", "no key rings in "+c.cfg.Region))
	default:
		for _, ring := range keyRings {
			keys, err := c.clients.KMS.ListCryptoKeys(ctx, ring.Name)
			if err != nil {
				details = append(details, failed(path.Base(ring.Name),
					fmt.Sprintf("list crypto keys: %v", err)))
				continue
			}
			details = append(details, healthy(path.Base(ring.Name),
				fmt.Sprintf("%d keys", len(keys))))
			for _, key := range keys {
				if key.RotationPeriod == "" {
					details = append(details, warning(path.Base(key.Name), "no rotation period"))
				}
			}
		}
	}

	secrets, err := c.clients.Secrets.ListSecrets(ctx, c.cfg.ProjectID)
	switch {
	case err != nil:
		details = append(details, failed("secrets", fmt.Sprintf("list secrets: %v", err)))
	case len(secrets) == 0:
		details = append(details, warning("secrets", "none found"))
	default:
		details = append(details, healthy("secrets", fmt.Sprintf("%d secrets", len(secrets))))
	}

	return result(category, details)
}

func (c *Checker) checkObservability(ctx context.Context) CategoryResult {
	const category = "observability"
	var details []Detail

	sinks, err := c.clients.Logging.ListSinks(ctx, c.cfg.ProjectID)
	switch {
	case err != nil:
		details = append(details, failed("log sinks", fmt.Sprintf("list sinks: %v", err)))
	case len(sinks) == 0:
		details = append(details, warning("log sinks", "none found"))
	default:
		details = append(details, healthy("log sinks", fmt.Sprintf("%d sinks", len(sinks))))
	}

	policies, err := c.clients.Monitoring.ListAlertPolicies(ctx, c.cfg.ProjectID)
	switch {
	case err != nil:
		details = append(details, failed("alert policies", fmt.Sprintf("list alert policies: %v", err)))
	case len(policies) == 0:
		details = append(details, warning("alert policies", "none found"))
	default:
		enabled := 0
		for _, policy := range policies {
			if policy.Enabled {
				enabled++
			}
		}
		if enabled == 0 {
			details = append(details, warning("alert policies",
				fmt.Sprintf("%d policies, none enabled", len(policies))))
		} else {
			details = append(details, healthy("alert policies",
				fmt.Sprintf("%d enabled", enabled)))
		}
	}

	channels, err := c.clients.Monitoring.ListNotificationChannels(ctx, c.cfg.ProjectID)
	switch {
	case err != nil:
		details = append(details, failed("notification channels",
			fmt.Sprintf("list notification channels: %v", err)))
	case len(channels) == 0:
		details = append(details, warning("notification channels", "none found"))
	default:
		details = append(details, healthy("notification channels",
			fmt.Sprintf("%d channels", len(channels))))
	}

	uptime, err := c.clients.Monitoring.ListUptimeChecks(ctx, c.cfg.ProjectID)
	switch {
	case err != nil:
		details = append(details, failed("uptime checks", fmt.Sprintf("list uptime checks: %v", err)))
	case len(uptime) == 0:
		details = append(details, warning("uptime checks", "none found"))
	default:
		details = append(details, healthy("uptime checks", fmt.Sprintf("%d checks", len(uptime))))
	}

	return result(category, details)
}

func (c *Checker) checkOperations(ctx context.Context) CategoryResult {
	const category = "operations"
	var details []Detail

	jobs, err := c.clients.Scheduler.ListJobs(ctx, c.cfg.ProjectID, c.cfg.Region)
	switch {
	case err != nil:
		details = append(details, failed("scheduler jobs", fmt.Sprintf("list jobs: %v", err)))
	case len(jobs) == 0:
		details = append(details, warning("scheduler jobs", "none found in "+c.cfg.Region))
	default:
		for _, job := range jobs {
			name := path.Base(job.Name)
			if job.State != "ENABLED" {
				details = append(details, warning(name, "state "+job.State))
			} else {
				details = append(details, healthy(name, job.Schedule))
			}
		}
	}

	repos, err := c.clients.Registry.ListRepositories(ctx, c.cfg.ProjectID, c.cfg.Region)
	switch {
	case err != nil:
		details = append(details, failed("artifact registry", fmt.Sprintf("list repositories: %v", err)))
	case len(repos) == 0:
		details = append(details, warning("artifact registry", "no repositories in "+c.cfg.Region))
	default:
		for _, repo := range repos {
			details = append(details, healthy(path.Base(repo.Name), repo.Format))
		}
	}

	return result(category, details)
}
