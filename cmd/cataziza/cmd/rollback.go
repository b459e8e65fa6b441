package cmd

import (
	"log/slog"

	"github.com/catherinevee/terraform-gcp-sub000/internal/infra"
	"github.com/catherinevee/terraform-gcp-sub000/internal/output"
	"github.com/catherinevee/terraform-gcp-sub000/internal/phase"
	"github.com/catherinevee/terraform-gcp-sub000/internal/report"
	"github.com/catherinevee/terraform-gcp-sub000/internal/terraform"

	"github.com/spf13/cobra"
)

var (
	// rollback flags
	rollbackForce    bool
	rollbackNoBackup bool
	rollbackDryRun   bool
	rollbackVarFiles []string
)

// rollbackCmd tears down one phase of the platform infrastructure
var rollbackCmd = &cobra.Command{
	Use:   "rollback <phase>",
	Short: "Destroy one phase of the platform infrastructure",
	Long: `Destroy a single phase: a timestamped state backup, a destroy plan
restricted to the phase's modules, destroy after confirmation, then a sweep
of the remaining state for leftover phase resources.

Phases are torn down independently. Destroy dependent phases before the
ones they build on (operations before compute, compute before networking).

A rollback summary is written to the report directory on every run that
gets past planning, destroyed or not.

Phases:
` + phaseUsage() + `
Examples:
  # Preview what destroying the compute phase would remove
  cataziza rollback 4 --dry-run

  # Destroy the operations phase without prompting
  cataziza rollback 6 --force

  # Destroy without taking a state backup first
  cataziza rollback 6 --force --no-backup`,
	Args: cobra.ExactArgs(1),
	RunE: rollbackRun,
}

func init() {
	rootCmd.AddCommand(rollbackCmd)

	rollbackCmd.Flags().BoolVarP(&rollbackForce, "force", "f", false,
		"Destroy without prompting for confirmation")
	rollbackCmd.Flags().BoolVarP(&rollbackNoBackup, "no-backup", "n", false,
		"Skip the state backup before destroying")
	rollbackCmd.Flags().BoolVarP(&rollbackDryRun, "dry-run", "d", false,
		"Stop after the destroy plan; never destroy")
	rollbackCmd.Flags().StringSliceVar(&rollbackVarFiles, "var-file", nil,
		"Extra terraform variable file (can be specified multiple times)")
}

func rollbackRun(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	p, err := phase.Parse(args[0])
	if err != nil {
		return err
	}

	cfg, err := getConfigFromContext(cmd)
	if err != nil {
		return err
	}
	if err = cfg.RequireProjectID(); err != nil {
		return err
	}

	runner, err := terraform.NewCLI(workingDir(cfg), cfg.TerraformBinary, slog.Default())
	if err != nil {
		return err
	}

	output.KeyValue("Phase", p.String())
	output.KeyValue("Project", cfg.ProjectID)
	output.KeyValue("Environment", cfg.Environment)
	output.KeyValue("Working directory", runner.WorkingDir())
	output.Blank()
	output.Subheader("This phase owns")
	output.List(p.Spec().Resources)

	driver := infra.NewDriver(runner, nil, cfg,
		report.NewWriter(cfg.ReportDir, slog.Default()), output.Confirm, slog.Default())

	result, runErr := driver.Rollback(ctx, infra.RollbackOptions{
		Phase:    p,
		DryRun:   rollbackDryRun,
		Force:    rollbackForce,
		NoBackup: rollbackNoBackup,
		VarFiles: rollbackVarFiles,
	})
	if result != nil {
		renderRollbackResult(cfg.ProjectID, result)
	}

	return runErr
}

func renderRollbackResult(projectID string, result *infra.RollbackResult) {
	output.Blank()

	if result.BackupPath != "" {
		output.KeyValue("State backup", result.BackupPath)
	} else {
		output.KeyValue("State backup", "skipped")
	}
	output.PlanStats(result.Plan.Add, result.Plan.Change, result.Plan.Destroy)

	switch {
	case result.Destroyed:
		output.Successf("%s destroyed in project %s", result.Phase, projectID)
	case rollbackDryRun:
		output.Infof("Dry run, nothing destroyed")
	case !result.Plan.HasChanges():
		output.Successf("Nothing to destroy, phase is already gone")
	default:
		output.Warningf("Destroy declined, nothing destroyed")
	}

	if len(result.Leftovers) > 0 {
		output.Blank()
		output.Warningf("%d phase resources are still in state and need manual review:", len(result.Leftovers))
		output.List(result.Leftovers)
	}
	if result.SummaryPath != "" {
		output.KeyValue("Summary", result.SummaryPath)
	}
}
