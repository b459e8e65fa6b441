package verify

import (
	"context"
	"fmt"

	apperrors "github.com/catherinevee/terraform-gcp-sub000/internal/errors"
)

func observabilitySuite() Suite {
	return Suite{
		Name: "observability",
		Checks: []Check{
			{Name: "log sinks configured", Fn: checkLogSinks},
			{Name: "alert policies enabled", Fn: checkAlertPolicies},
			{Name: "notification channels configured", Fn: checkNotificationChannels},
			{Name: "uptime checks configured", Fn: checkUptimeChecks},
		},
	}
}

func checkLogSinks(ctx context.Context, h *Harness) error {
	sinks, err := h.Clients.Logging.ListSinks(ctx, h.Cfg.ProjectID)
	if err != nil {
		return apperrors.NewVerificationError("failed to list log sinks", err)
	}
	if len(sinks) < h.Expect.MinSinks {
		return apperrors.NewVerificationError(
			fmt.Sprintf("found %d log sinks, want at least %d", len(sinks), h.Expect.MinSinks), nil)
	}
	return nil
}

func checkAlertPolicies(ctx context.Context, h *Harness) error {
	policies, err := h.Clients.Monitoring.ListAlertPolicies(ctx, h.Cfg.ProjectID)
	if err != nil {
		return apperrors.NewVerificationError("failed to list alert policies", err)
	}
	enabled := 0
	for _, policy := range policies {
		if policy.Enabled {
			enabled++
		}
	}
	if enabled < h.Expect.MinAlertPolicies {
		return apperrors.NewVerificationError(
			fmt.Sprintf("found %d enabled alert policies, want at least %d",
				enabled, h.Expect.MinAlertPolicies), nil)
	}
	return nil
}

func checkNotificationChannels(ctx context.Context, h *Harness) error {
	channels, err := h.Clients.Monitoring.ListNotificationChannels(ctx, h.Cfg.ProjectID)
	if err != nil {
		return apperrors.NewVerificationError("failed to list notification channels", err)
	}
	if len(channels) == 0 {
		return apperrors.NewVerificationError("no notification channels configured", nil)
	}
	return nil
}

func checkUptimeChecks(ctx context.Context, h *Harness) error {
	checks, err := h.Clients.Monitoring.ListUptimeChecks(ctx, h.Cfg.ProjectID)
	if err != nil {
		return apperrors.NewVerificationError("failed to list uptime checks", err)
	}
	if len(checks) < h.Expect.MinUptimeChecks {
		return apperrors.NewVerificationError(
			fmt.Sprintf("found %d uptime checks, want at least %d",
				len(checks), h.Expect.MinUptimeChecks), nil)
	}
	return nil
}
