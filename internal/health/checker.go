package health

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/catherinevee/terraform-gcp-sub000/internal/config"
	"github.com/catherinevee/terraform-gcp-sub000/internal/constants"
	"github.com/catherinevee/terraform-gcp-sub000/internal/gcp"

	"cloud.google.com/go/resourcemanager/apiv3/resourcemanagerpb"
	"golang.org/x/sync/errgroup"
)

// Checker runs every health category against one project.
type Checker struct {
	clients *gcp.Clients
	cfg     *config.Config
	log     *slog.Logger
}

// NewChecker builds a Checker bound to the given clients and coordinates.
func NewChecker(clients *gcp.Clients, cfg *config.Config, log *slog.Logger) *Checker {
	return &Checker{clients: clients, cfg: cfg, log: log}
}

// Run executes all categories, a few at a time, and returns the report.
// Category failures are captured in the report rather than returned.
func (c *Checker) Run(ctx context.Context) *Report {
	start := time.Now()

	checks := []struct {
		name string
		fn   func(context.Context) CategoryResult
	}{
		{"project", c.checkProject},
		{"apis", c.checkAPIs},
		{"networking", c.checkNetworking},
		{"load-balancing", c.checkLoadBalancing},
		{"compute", c.checkCompute},
		{"databases", c.checkDatabases},
		{"storage", c.checkStorage},
		{"messaging", c.checkMessaging},
		{"security", c.checkSecurity},
		{"observability", c.checkObservability},
		{"operations", c.checkOperations},
		{"latency", c.checkLatency},
	}

	results := make([]CategoryResult, len(checks))
	g := new(errgroup.Group)
	g.SetLimit(constants.MaxConcurrentChecks)
	for i, chk := range checks {
		i, chk := i, chk
		g.Go(func() error {
			cctx, cancel := context.WithTimeout(ctx, constants.CategoryCheckTimeout)
			defer cancel()

			began := time.Now()
			res := chk.fn(cctx)
			res.Duration = time.Since(began)
			results[i] = res

			c.log.Debug("health category finished",
				"category", res.Category, "status", res.Status, "duration", res.Duration)
			return nil
		})
	}
	_ = g.Wait()

	return &Report{
		ProjectID:   c.cfg.ProjectID,
		Environment: c.cfg.Environment,
		Region:      c.cfg.Region,
		GeneratedAt: start,
		Elapsed:     time.Since(start),
		Categories:  results,
	}
}

func (c *Checker) checkProject(ctx context.Context) CategoryResult {
	const category = "project"
	var details []Detail

	project, err := c.clients.Project.GetProject(ctx, c.cfg.ProjectID)
	switch {
	case err != nil:
		return errorResult(category, fmt.Errorf("get project: %w", err))
	case project.GetState() != resourcemanagerpb.Project_ACTIVE:
		details = append(details, failed("project state",
			fmt.Sprintf("project %s is %s", c.cfg.ProjectID, project.GetState())))
	default:
		details = append(details, healthy("project state",
			fmt.Sprintf("project %s is active", c.cfg.ProjectID)))
	}

	billing, err := c.clients.Billing.GetBillingInfo(ctx, c.cfg.ProjectID)
	switch {
	case err != nil:
		details = append(details, failed("billing", fmt.Sprintf("get billing info: %v", err)))
	case !billing.BillingEnabled:
		details = append(details, failed("billing", "billing is disabled"))
	default:
		details = append(details, healthy("billing", "billing enabled"))
	}

	return result(category, details)
}

func (c *Checker) checkAPIs(ctx context.Context) CategoryResult {
	const category = "apis"

	enabled, err := c.clients.Usage.ListEnabledServices(ctx, c.cfg.ProjectID)
	if err != nil {
		return errorResult(category, fmt.Errorf("list enabled services: %w", err))
	}

	enabledSet := make(map[string]struct{}, len(enabled))
	for _, name := range enabled {
		enabledSet[name] = struct{}{}
	}

	required := gcp.RequiredAPIs()
	details := make([]Detail, 0, len(required))
	for _, api := range required {
		if _, ok := enabledSet[api]; ok {
			details = append(details, healthy(api, "enabled"))
		} else {
			details = append(details, failed(api, "not enabled"))
		}
	}
	return result(category, details)
}
