package infra

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/catherinevee/terraform-gcp-sub000/internal/constants"
	"github.com/catherinevee/terraform-gcp-sub000/internal/phase"
	"github.com/catherinevee/terraform-gcp-sub000/internal/report"
	"github.com/catherinevee/terraform-gcp-sub000/internal/terraform"
)

// RollbackOptions configures one phase rollback.
type RollbackOptions struct {
	Phase phase.Phase
	// DryRun stops after the destroy plan; nothing is ever destroyed.
	DryRun bool
	// Force destroys without prompting.
	Force bool
	// NoBackup skips the state backup. The default is to back up.
	NoBackup bool
	// VarFiles are extra -var-file arguments for the destroy plan.
	VarFiles []string
}

// RollbackResult reports what one rollback run did.
type RollbackResult struct {
	Phase       phase.Phase
	Plan        terraform.Summary
	Targets     []string
	Destroyed   bool
	BackupPath  string
	Leftovers   []string
	PlanFile    string
	SummaryPath string
}

// Rollback destroys one phase's resources: init, a state backup unless
// declined, a destroy plan restricted to the phase targets, destroy on
// confirmation, then a leftover sweep of the state. Leftovers are
// reported, not treated as failure; the operator decides what to do with
// a resource terraform could not remove.
func (d *Driver) Rollback(ctx context.Context, opts RollbackOptions) (*RollbackResult, error) {
	if err := d.preflight(opts.Phase); err != nil {
		return nil, err
	}

	spec := opts.Phase.Spec()
	timestamp := report.Timestamp()
	started := time.Now()

	d.log.Info("rolling back",
		"phase", opts.Phase.String(),
		"project", d.cfg.ProjectID,
		"environment", d.cfg.Environment,
		"dry_run", opts.DryRun)

	if err := d.runner.Init(ctx); err != nil {
		return nil, err
	}

	result := &RollbackResult{
		Phase:    opts.Phase,
		Targets:  spec.Targets,
		PlanFile: constants.PlanFileName(int(opts.Phase), timestamp),
	}

	if !opts.NoBackup {
		path, err := d.backupState(ctx, timestamp)
		if err != nil {
			return nil, err
		}
		result.BackupPath = path
	}

	changes, err := d.runner.Plan(ctx, terraform.PlanOptions{
		Out:      result.PlanFile,
		Targets:  spec.Targets,
		Destroy:  true,
		VarFiles: opts.VarFiles,
	})
	if err != nil {
		return nil, err
	}

	if changes {
		plan, err := d.runner.ShowPlan(ctx, result.PlanFile)
		if err != nil {
			return nil, err
		}
		result.Plan = terraform.Summarize(plan)
	}

	switch {
	case !changes:
		d.log.Info("nothing to destroy", "phase", opts.Phase.String())
		return d.finishRollback(result, opts, started, timestamp)
	case opts.DryRun:
		d.log.Info("dry run, stopping after destroy plan",
			"phase", opts.Phase.String(), "destroy", result.Plan.Destroy)
		return d.finishRollback(result, opts, started, timestamp)
	}

	if !opts.Force {
		prompt := fmt.Sprintf("Destroy %d resources of %s in project %s? This cannot be undone",
			result.Plan.Destroy, opts.Phase, d.cfg.ProjectID)
		if !d.confirm(prompt) {
			d.log.Info("destroy declined", "phase", opts.Phase.String())
			return d.finishRollback(result, opts, started, timestamp)
		}
	}

	if err := d.runner.Apply(ctx, result.PlanFile); err != nil {
		return nil, err
	}
	result.Destroyed = true
	d.log.Info("destroyed", "phase", opts.Phase.String(), "resources", result.Plan.Destroy)

	leftovers, err := d.sweepState(ctx, spec.Targets)
	if err != nil {
		d.log.Warn("could not sweep state for leftovers", "error", err)
	}
	result.Leftovers = leftovers
	if len(leftovers) > 0 {
		d.log.Warn("resources still tracked after destroy, review manually",
			"phase", opts.Phase.String(), "count", len(leftovers))
	}

	return d.finishRollback(result, opts, started, timestamp)
}

// backupState pulls the state document and writes it as a timestamped
// artifact. An empty state is nothing to protect, so it is skipped.
func (d *Driver) backupState(ctx context.Context, timestamp string) (string, error) {
	raw, err := d.runner.RawState(ctx)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(raw) == "" {
		d.log.Info("state is empty, skipping backup")
		return "", nil
	}
	path, err := d.reports.WriteStateBackup(raw, timestamp)
	if err != nil {
		return "", err
	}
	d.log.Info("state backed up", "path", path)
	return path, nil
}

// sweepState lists addresses still in state that belong to the phase.
func (d *Driver) sweepState(ctx context.Context, targets []string) ([]string, error) {
	state, err := d.runner.State(ctx)
	if err != nil {
		return nil, err
	}
	return terraform.MatchingAddresses(terraform.StateAddresses(state), targets), nil
}

func (d *Driver) finishRollback(
	result *RollbackResult,
	opts RollbackOptions,
	started time.Time,
	timestamp string) (*RollbackResult, error) {

	path, err := d.reports.WriteRollback(report.Rollback{
		Phase:       result.Phase,
		ProjectID:   d.cfg.ProjectID,
		Environment: d.cfg.Environment,
		Region:      d.cfg.Region,
		WorkDir:     d.runner.WorkingDir(),
		DryRun:      opts.DryRun,
		Destroyed:   result.Destroyed,
		Plan:        result.Plan,
		Targets:     result.Targets,
		BackupFile:  result.BackupPath,
		Leftovers:   result.Leftovers,
		StartedAt:   started,
		Duration:    time.Since(started),
	}, timestamp)
	if err != nil {
		return result, err
	}
	result.SummaryPath = path
	d.log.Info("summary written", "path", path)

	return result, nil
}
