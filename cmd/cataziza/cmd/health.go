package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	apperrors "github.com/catherinevee/terraform-gcp-sub000/internal/errors"

	"github.com/catherinevee/terraform-gcp-sub000/internal/constants"
	"github.com/catherinevee/terraform-gcp-sub000/internal/health"
	"github.com/catherinevee/terraform-gcp-sub000/internal/output"

	"github.com/spf13/cobra"
)

var (
	// health flags
	healthFormat string
	healthOutput string
)

// healthCmd checks the health of everything the phases deployed
var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the health of deployed platform resources",
	Long: `Run read-only checks across the platform's resource categories (project,
APIs, networking, load balancing, compute, databases, storage, messaging,
security, observability, operations) and classify each as healthy, warning,
or error.

The command exits nonzero when any category reports an error. Warnings
alone exit zero.

Examples:
  # Console report
  cataziza health

  # Machine-readable report for CI
  cataziza health --format json

  # Self-contained HTML page
  cataziza health --format html --output health.html`,
	RunE: healthRun,
}

func init() {
	rootCmd.AddCommand(healthCmd)

	healthCmd.Flags().StringVarP(&healthFormat, "format", "f", string(constants.FormatConsole),
		"Output format: console, json or html")
	healthCmd.Flags().StringVarP(&healthOutput, "output", "o", "",
		"Write the report to a file instead of stdout")
}

func healthRun(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	format, err := parseFormat(healthFormat)
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

	clients, err := connectGCP(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = clients.Close() }()

	spinner := output.NewSpinner(fmt.Sprintf("Checking project %s (%s)", cfg.ProjectID, cfg.Environment))
	spinner.Start()
	rpt := health.NewChecker(clients, cfg, slog.Default()).Run(ctx)
	spinner.Stop()

	dest := os.Stdout
	if healthOutput != "" {
		f, err := os.Create(healthOutput)
		if err != nil {
			return fmt.Errorf("error creating output file: %w", err)
		}
		defer func() { _ = f.Close() }()
		dest = f
	}
	if err = health.Render(dest, format, rpt); err != nil {
		return err
	}
	if healthOutput != "" {
		output.Successf("Report written to %s", healthOutput)
	}

	healthyCount, warningCount, errorCount := rpt.Counts()
	output.Blank()
	output.Infof("%d healthy, %d warnings, %d errors", healthyCount, warningCount, errorCount)

	if rpt.HasErrors() {
		return apperrors.NewHealthCheckError(
			fmt.Sprintf("%d categories report errors", errorCount))
	}
	return nil
}

// parseFormat validates the --format flag against the supported renderers.
func parseFormat(s string) (constants.OutputFormat, error) {
	switch f := constants.OutputFormat(strings.ToLower(s)); f {
	case constants.FormatConsole, constants.FormatJSON, constants.FormatHTML:
		return f, nil
	default:
		return "", apperrors.NewInvalidInputError(
			fmt.Sprintf("unknown format %q (valid: console, json, html)", s), nil)
	}
}
