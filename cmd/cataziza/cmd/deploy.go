package cmd

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/catherinevee/terraform-gcp-sub000/internal/infra"
	"github.com/catherinevee/terraform-gcp-sub000/internal/output"
	"github.com/catherinevee/terraform-gcp-sub000/internal/phase"
	"github.com/catherinevee/terraform-gcp-sub000/internal/report"
	"github.com/catherinevee/terraform-gcp-sub000/internal/terraform"
	"github.com/catherinevee/terraform-gcp-sub000/internal/verify"

	"github.com/spf13/cobra"
)

var (
	// deploy flags
	deployAutoApprove bool
	deployDryRun      bool
	deploySkipVerify  bool
	deployVarFiles    []string
)

// deployCmd rolls out one phase of the platform infrastructure
var deployCmd = &cobra.Command{
	Use:   "deploy <phase>",
	Short: "Deploy one phase of the platform infrastructure",
	Long: `Deploy a single phase: terraform init, validate, a plan restricted to the
phase's modules, apply after confirmation, then the phase verification suite.

A deployment summary is written to the report directory on every run that
gets past planning, applied or not.

Phases:
` + phaseUsage() + `
Examples:
  # Preview the networking phase without applying
  cataziza deploy 1 --dry-run

  # Apply the data phase without prompting
  cataziza deploy 3 --auto-approve

  # Apply with an extra variable file and skip post-apply verification
  cataziza deploy 4 --var-file overrides.tfvars --skip-verify`,
	Args: cobra.ExactArgs(1),
	RunE: deployRun,
}

func init() {
	rootCmd.AddCommand(deployCmd)

	deployCmd.Flags().BoolVarP(&deployAutoApprove, "auto-approve", "a", false,
		"Apply the plan without prompting for confirmation")
	deployCmd.Flags().BoolVarP(&deployDryRun, "dry-run", "d", false,
		"Stop after planning; never apply")
	deployCmd.Flags().BoolVar(&deploySkipVerify, "skip-verify", false,
		"Skip the post-apply verification suite")
	deployCmd.Flags().StringSliceVar(&deployVarFiles, "var-file", nil,
		"Extra terraform variable file (can be specified multiple times)")
}

func deployRun(cmd *cobra.Command, args []string) error {
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

	// The verification harness probes live GCP APIs after the apply, so it
	// needs working credentials up front. A plan-only or skip-verify run
	// leaves GCP alone; terraform authenticates on its own.
	var harness *verify.Harness
	if !deploySkipVerify && !deployDryRun {
		clients, err := connectGCP(ctx, cfg)
		if err != nil {
			return err
		}
		defer func() { _ = clients.Close() }()

		harness = verify.NewHarness(clients, cfg, verify.DefaultExpectations(), slog.Default())
	}

	output.KeyValue("Phase", p.String())
	output.KeyValue("Project", cfg.ProjectID)
	output.KeyValue("Environment", cfg.Environment)
	output.KeyValue("Working directory", runner.WorkingDir())
	output.Blank()

	driver := infra.NewDriver(runner, harness, cfg,
		report.NewWriter(cfg.ReportDir, slog.Default()), output.Confirm, slog.Default())

	result, runErr := driver.Deploy(ctx, infra.DeployOptions{
		Phase:       p,
		DryRun:      deployDryRun,
		AutoApprove: deployAutoApprove,
		SkipVerify:  deploySkipVerify,
		VarFiles:    deployVarFiles,
	})
	if result != nil {
		renderDeployResult(cfg.ProjectID, result)
	}

	return runErr
}

func renderDeployResult(projectID string, result *infra.DeployResult) {
	output.Blank()
	output.PlanStats(result.Plan.Add, result.Plan.Change, result.Plan.Destroy)

	if verbose && len(result.Changed) > 0 {
		output.List(result.Changed)
	}

	switch {
	case result.Applied:
		output.Successf("%s applied to project %s", result.Phase, projectID)
	case deployDryRun:
		output.Infof("Dry run, nothing applied")
	case !result.Plan.HasChanges():
		output.Successf("No changes, infrastructure is up to date")
	default:
		output.Warningf("Apply declined, nothing applied")
	}

	if result.Verification != nil {
		renderSuite(*result.Verification)
	}
	if result.SummaryPath != "" {
		output.KeyValue("Summary", result.SummaryPath)
	}
}

// phaseUsage renders the phase table for command help text.
func phaseUsage() string {
	var b strings.Builder
	for _, p := range phase.All() {
		spec := p.Spec()
		fmt.Fprintf(&b, "  %d  %-13s %s\n", int(p), spec.Name, spec.Description)
	}
	return b.String()
}
