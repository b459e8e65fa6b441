package infra

import (
	"context"
	"fmt"
	"time"

	"github.com/catherinevee/terraform-gcp-sub000/internal/constants"
	apperrors "github.com/catherinevee/terraform-gcp-sub000/internal/errors"
	"github.com/catherinevee/terraform-gcp-sub000/internal/phase"
	"github.com/catherinevee/terraform-gcp-sub000/internal/report"
	"github.com/catherinevee/terraform-gcp-sub000/internal/terraform"
	"github.com/catherinevee/terraform-gcp-sub000/internal/verify"
)

// DeployOptions configures one phase deployment.
type DeployOptions struct {
	Phase phase.Phase
	// DryRun stops after the plan; nothing is ever applied.
	DryRun bool
	// AutoApprove applies without prompting.
	AutoApprove bool
	// SkipVerify skips the post-apply verification suite.
	SkipVerify bool
	// VarFiles are extra -var-file arguments for the plan.
	VarFiles []string
}

// DeployResult reports what one deployment run did.
type DeployResult struct {
	Phase        phase.Phase
	Plan         terraform.Summary
	Changed      []string
	Applied      bool
	PlanFile     string
	Verification *verify.SuiteResult
	SummaryPath  string
}

// Deploy runs one phase: init, validate, a plan restricted to the phase's
// module targets, apply on confirmation, then the phase verification
// suite. The summary artifact is written on every outcome that gets past
// planning. A failed verification returns an error, but the result still
// records that the apply went through.
func (d *Driver) Deploy(ctx context.Context, opts DeployOptions) (*DeployResult, error) {
	if err := d.preflight(opts.Phase); err != nil {
		return nil, err
	}

	spec := opts.Phase.Spec()
	timestamp := report.Timestamp()
	started := time.Now()

	d.log.Info("deploying",
		"phase", opts.Phase.String(),
		"project", d.cfg.ProjectID,
		"environment", d.cfg.Environment,
		"dry_run", opts.DryRun)

	if err := d.runner.Init(ctx); err != nil {
		return nil, err
	}
	diag, err := d.runner.Validate(ctx)
	if err != nil {
		return nil, err
	}
	if err := checkDiagnostics(diag); err != nil {
		return nil, err
	}

	result := &DeployResult{
		Phase:    opts.Phase,
		PlanFile: constants.PlanFileName(int(opts.Phase), timestamp),
	}

	changes, err := d.runner.Plan(ctx, terraform.PlanOptions{
		Out:      result.PlanFile,
		Targets:  spec.Targets,
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
		result.Changed = terraform.ChangedResources(plan)
	}

	switch {
	case !changes:
		d.log.Info("no changes, infrastructure is up to date", "phase", opts.Phase.String())
		return d.finishDeploy(ctx, result, opts, started, timestamp)
	case opts.DryRun:
		d.log.Info("dry run, stopping after plan",
			"phase", opts.Phase.String(), "add", result.Plan.Add, "change", result.Plan.Change)
		return d.finishDeploy(ctx, result, opts, started, timestamp)
	}

	if !opts.AutoApprove {
		prompt := fmt.Sprintf("Apply %s to project %s (%d to add, %d to change, %d to destroy)?",
			opts.Phase, d.cfg.ProjectID, result.Plan.Add, result.Plan.Change, result.Plan.Destroy)
		if !d.confirm(prompt) {
			d.log.Info("apply declined", "phase", opts.Phase.String())
			return d.finishDeploy(ctx, result, opts, started, timestamp)
		}
	}

	if err := d.runner.Apply(ctx, result.PlanFile); err != nil {
		return nil, err
	}
	result.Applied = true
	d.log.Info("applied", "phase", opts.Phase.String(), "resources", result.Plan.Total())

	return d.finishDeploy(ctx, result, opts, started, timestamp)
}

// finishDeploy runs verification when the phase was applied, writes the
// summary artifact, and folds a failed verification into the error.
func (d *Driver) finishDeploy(
	ctx context.Context,
	result *DeployResult,
	opts DeployOptions,
	started time.Time,
	timestamp string) (*DeployResult, error) {

	if result.Applied && !opts.SkipVerify && d.harness != nil {
		suite := d.harness.RunPhase(ctx, opts.Phase)
		result.Verification = &suite
	}

	path, err := d.reports.WriteDeployment(report.Deployment{
		Phase:        result.Phase,
		ProjectID:    d.cfg.ProjectID,
		Environment:  d.cfg.Environment,
		Region:       d.cfg.Region,
		WorkDir:      d.runner.WorkingDir(),
		DryRun:       opts.DryRun,
		Applied:      result.Applied,
		Plan:         result.Plan,
		Changed:      result.Changed,
		PlanFile:     result.PlanFile,
		Verification: result.Verification,
		StartedAt:    started,
		Duration:     time.Since(started),
	}, timestamp)
	if err != nil {
		return result, err
	}
	result.SummaryPath = path
	d.log.Info("summary written", "path", path)

	if result.Verification != nil && !result.Verification.Passed() {
		_, failed, _ := result.Verification.Counts()
		return result, apperrors.NewVerificationError(
			fmt.Sprintf("%s applied, but %d verification checks failed", result.Phase, failed), nil)
	}
	return result, nil
}
