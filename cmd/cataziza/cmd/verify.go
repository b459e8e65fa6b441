package cmd

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	apperrors "github.com/catherinevee/terraform-gcp-sub000/internal/errors"

	"github.com/catherinevee/terraform-gcp-sub000/internal/output"
	"github.com/catherinevee/terraform-gcp-sub000/internal/phase"
	"github.com/catherinevee/terraform-gcp-sub000/internal/report"
	"github.com/catherinevee/terraform-gcp-sub000/internal/verify"

	"github.com/spf13/cobra"
)

var (
	// verify flags
	verifyExpectations string
)

// verifyCmd probes live GCP resources against what each phase should have built
var verifyCmd = &cobra.Command{
	Use:   "verify <phase|all>",
	Short: "Run post-deployment verification suites",
	Long: `Run the verification suite for one phase, or every suite in phase order
with "all".

Each suite probes the live project for the resources its phase owns. An
"all" run covers every phase even when earlier suites fail, writes one log
per phase, and consolidates the results into a markdown report plus a JSON
report for CI.

The command exits nonzero when any check fails. Skipped checks alone exit
zero.

Examples:
  # Verify the networking phase
  cataziza verify 1

  # Verify every phase and write the consolidated reports
  cataziza verify all

  # Verify with relaxed expectations for a scratch project
  cataziza verify all --expectations dev-expectations.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: verifyRun,
}

func init() {
	rootCmd.AddCommand(verifyCmd)

	verifyCmd.Flags().StringVar(&verifyExpectations, "expectations", "",
		"YAML file overriding the default verification expectations")
}

func verifyRun(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	phases, all, err := resolvePhases(args[0])
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

	expect := verify.DefaultExpectations()
	if verifyExpectations != "" {
		if expect, err = verify.LoadExpectations(verifyExpectations); err != nil {
			return err
		}
	}

	clients, err := connectGCP(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = clients.Close() }()

	harness := verify.NewHarness(clients, cfg, expect, slog.Default())
	writer := report.NewWriter(cfg.ReportDir, slog.Default())
	timestamp := report.Timestamp()
	started := time.Now()

	var suites []verify.SuiteResult
	if all {
		suites = harness.RunAll(ctx)
	} else {
		suites = []verify.SuiteResult{harness.RunPhase(ctx, phases[0])}
	}

	for _, suite := range suites {
		renderSuite(suite)
		if _, err = writer.WritePhaseLog(suite, timestamp); err != nil {
			return err
		}
	}

	consolidated := report.Verification{
		ProjectID:   cfg.ProjectID,
		Environment: cfg.Environment,
		Region:      cfg.Region,
		StartedAt:   started,
		Duration:    time.Since(started),
		Suites:      suites,
	}

	if all {
		mdPath, jsonPath, err := writer.WriteVerification(consolidated, timestamp)
		if err != nil {
			return err
		}
		output.Blank()
		output.KeyValue("Report", mdPath)
		output.KeyValue("JSON report", jsonPath)
	}

	summary := consolidated.Summary()
	output.Blank()
	if !consolidated.Passed() {
		output.Errorf("%d of %d checks failed", summary.Failed, summary.Total)
		return apperrors.NewVerificationError(
			fmt.Sprintf("%d of %d verification checks failed", summary.Failed, summary.Total), nil)
	}

	if summary.Skipped > 0 {
		output.Successf("%d checks passed, %d skipped", summary.Passed, summary.Skipped)
	} else {
		output.Successf("All %d checks passed", summary.Passed)
	}
	return nil
}

// resolvePhases expands the positional argument into the phases to verify.
func resolvePhases(arg string) (phases []phase.Phase, all bool, err error) {
	if strings.EqualFold(arg, "all") {
		return phase.All(), true, nil
	}

	p, err := phase.Parse(arg)
	if err != nil {
		return nil, false, err
	}
	return []phase.Phase{p}, false, nil
}

// renderSuite prints one suite's check results as a console table.
func renderSuite(suite verify.SuiteResult) {
	output.Blank()
	output.Subheader(fmt.Sprintf("Verification: %s", suite.Phase))

	rows := make([][]string, 0, len(suite.Results))
	for _, r := range suite.Results {
		rows = append(rows, []string{
			r.Name,
			output.StatusBadge(string(r.Status)),
			output.Duration(r.Duration),
			r.Err,
		})
	}
	output.Table([]string{"Check", "Status", "Duration", "Error"}, rows)

	passed, failed, skipped := suite.Counts()
	if failed > 0 {
		output.Errorf("%s: %d passed, %d failed, %d skipped", suite.Name, passed, failed, skipped)
	} else {
		output.Successf("%s: %d passed, %d skipped", suite.Name, passed, skipped)
	}
}
