package health

import (
	"context"
	"fmt"
	"time"

	"github.com/catherinevee/terraform-gcp-sub000/internal/constants"

	"golang.org/x/sync/errgroup"
)

// checkLatency round-trips one cheap read per core API and flags endpoints
// that respond slower than the warning threshold. Probes run in parallel;
// a probe that errors is reported but does not abort the others.
func (c *Checker) checkLatency(ctx context.Context) CategoryResult {
	const category = "latency"

	probes := []struct {
		name string
		fn   func(context.Context) error
	}{
		{"compute", func(ctx context.Context) error {
			_, err := c.clients.Network.ListFirewalls(ctx, c.cfg.ProjectID)
			return err
		}},
		{"storage", func(ctx context.Context) error {
			_, err := c.clients.Storage.ListBuckets(ctx, c.cfg.ProjectID)
			return err
		}},
		{"pubsub", func(ctx context.Context) error {
			_, err := c.clients.PubSub.ListTopics(ctx, c.cfg.ProjectID)
			return err
		}},
		{"sqladmin", func(ctx context.Context) error {
			_, err := c.clients.SQL.ListInstances(ctx, c.cfg.ProjectID)
			return err
		}},
		{"monitoring", func(ctx context.Context) error {
			_, err := c.clients.Monitoring.ListAlertPolicies(ctx, c.cfg.ProjectID)
			return err
		}},
	}

	details := make([]Detail, len(probes))
	g := new(errgroup.Group)
	for i, probe := range probes {
		i, probe := i, probe
		g.Go(func() error {
			pctx, cancel := context.WithTimeout(ctx, constants.LatencyProbeTimeout)
			defer cancel()

			start := time.Now()
			err := probe.fn(pctx)
			elapsed := time.Since(start)

			switch {
			case err != nil:
				details[i] = warning(probe.name, fmt.Sprintf("probe failed: %v", err))
			case elapsed > constants.LatencyWarningThreshold:
				details[i] = warning(probe.name,
					fmt.Sprintf("%s round trip", elapsed.Round(time.Millisecond)))
			default:
				details[i] = healthy(probe.name,
					fmt.Sprintf("%s round trip", elapsed.Round(time.Millisecond)))
			}
			return nil
		})
	}
	_ = g.Wait()

	return result(category, details)
}
