// Package cmd implements the CLI commands for the cataziza tool.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/catherinevee/terraform-gcp-sub000/internal/config"
	"github.com/catherinevee/terraform-gcp-sub000/internal/constants"
	"github.com/catherinevee/terraform-gcp-sub000/internal/gcp"
	"github.com/catherinevee/terraform-gcp-sub000/internal/logger"
	"github.com/catherinevee/terraform-gcp-sub000/internal/output"

	"github.com/spf13/cobra"
)

var (
	debug         bool
	logJSON       bool
	timeout       string
	timeoutCancel context.CancelFunc
	verbose       bool

	flagProject     string
	flagEnvironment string
	flagRegion      string
	flagReportDir   string
	flagChdir       string
)

var rootCmd = &cobra.Command{
	Use:   constants.ProjectName,
	Short: constants.ProjectName,
	Long: fmt.Sprintf(`%s - %s
Phased deployment, rollback, verification, and health checks for the
platform's GCP infrastructure`,
		constants.ProjectName, *constants.GetVersion()),
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		startTime := time.Now().UTC()
		cmd.SetContext(context.WithValue(cmd.Context(), constants.StartTimeCtxKey, startTime))
		printHeader(cmd)

		if verbose {
			output.Infof("CLI build: " + output.Bold(*constants.GetVersion()))
		}

		logLevel := slog.LevelInfo
		if debug {
			logLevel = slog.LevelDebug
		}
		logger.Initialize(logLevel, logJSON)

		// NOTICE: this runs after flags are parsed but before the command runs
		if timeout != "0" {
			timeoutDuration, err := parseTimeout(timeout)
			if err != nil {
				return fmt.Errorf("error parsing timeout: %w", err)
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), timeoutDuration)
			timeoutCancel = cancel // Store for cleanup in Execute()
			cmd.SetContext(ctx)

			if verbose {
				output.Infof("Timeout: %s", timeoutDuration)
			}
		} else if verbose {
			output.Infof("Timeout disabled")
		}

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("error loading configuration: %w", err)
		}
		applyFlagOverrides(cmd, cfg)

		cmd.SetContext(context.WithValue(cmd.Context(), constants.ConfigCtxKey, cfg))
		if verbose {
			output.Infof("Project: %s", output.Bold(cfg.ProjectID))
			output.Infof("Environment: %s", output.Bold(cfg.Environment))
			output.Infof("Region: %s", output.Bold(cfg.Region))
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, _ []string) {
		if verbose {
			startTime := getStartTimeFromContext(cmd)
			if !startTime.IsZero() {
				output.Infof("Time elapsed: %s", output.Bold(time.Since(startTime).String()))
			}
		}
		if timeoutCancel != nil {
			timeoutCancel()
		}
	},
}

// Execute runs the root command and handles cleanup of timeout context.
func Execute() {
	err := rootCmd.Execute()
	if timeoutCancel != nil {
		timeoutCancel()
	}

	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&timeout, "timeout", "45m",
		"Timeout for command execution (e.g., 45m, 30s, 1h)")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Verbose output")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debugging logs")
	rootCmd.PersistentFlags().BoolVar(&logJSON, "log-json", false, "Emit logs as JSON")
	rootCmd.PersistentFlags().StringVarP(&flagProject, "project", "p", "",
		"GCP project ID (overrides PROJECT_ID and the config file)")
	rootCmd.PersistentFlags().StringVarP(&flagEnvironment, "environment", "e", "",
		"Target environment: dev, staging or prod")
	rootCmd.PersistentFlags().StringVarP(&flagRegion, "region", "r", "", "Primary GCP region")
	rootCmd.PersistentFlags().StringVar(&flagReportDir, "report-dir", "",
		"Directory for summary and report artifacts")
	rootCmd.PersistentFlags().StringVar(&flagChdir, "chdir", "",
		"Terraform working directory (overrides the environment layout)")
}

// applyFlagOverrides folds explicitly set global flags into the loaded
// configuration. Flags outrank environment variables and the config file.
func applyFlagOverrides(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("project") {
		cfg.ProjectID = flagProject
	}
	if flags.Changed("environment") {
		cfg.Environment = flagEnvironment
	}
	if flags.Changed("region") {
		cfg.Region = flagRegion
	}
	if flags.Changed("report-dir") {
		cfg.ReportDir = flagReportDir
	}
}

// parseTimeout parses timeout string to time.Duration
// defaults to 45 minutes if empty
// Supports formats: "45m", "30s", "1h", "600s" (number of seconds)
func parseTimeout(timeoutStr string) (time.Duration, error) {
	if timeoutStr == "" {
		return constants.DefaultCommandTimeout, nil
	}

	// Try parsing as duration first (supports "45m", "30s", "1h", etc.)
	duration, err := time.ParseDuration(timeoutStr)
	if err == nil {
		return duration, nil
	}

	// If duration parsing fails, try parsing as seconds (integer)
	seconds, err := strconv.Atoi(timeoutStr)
	if err != nil {
		errMsg := fmt.Sprintf(
			"invalid timeout format: %s (use duration like '45m' or '30s', or seconds like '600')",
			timeoutStr)
		return 0, errors.New(errMsg)
	}

	return time.Duration(seconds) * time.Second, nil
}

func printHeader(cmd *cobra.Command) {
	output.Header(output.Bold("🚀 " + constants.ProjectName + " " + cmd.CalledAs()))
}

// getConfigFromContext retrieves the config from the command context
func getConfigFromContext(cmd *cobra.Command) (*config.Config, error) {
	cfg, ok := cmd.Context().Value(constants.ConfigCtxKey).(*config.Config)
	if !ok || cfg == nil {
		return nil, fmt.Errorf("config not found in context")
	}
	return cfg, nil
}

func getStartTimeFromContext(cmd *cobra.Command) time.Time {
	startTime, ok := cmd.Context().Value(constants.StartTimeCtxKey).(time.Time)
	if !ok {
		return time.Time{}
	}
	return startTime
}

// workingDir resolves the terraform working directory, honoring --chdir.
func workingDir(cfg *config.Config) string {
	if flagChdir != "" {
		return flagChdir
	}
	return cfg.WorkDir(cfg.Environment)
}

// connectGCP validates application default credentials before building the
// API client bundle the cloud-facing commands probe GCP with. Callers own
// Close on the returned clients.
func connectGCP(ctx context.Context, cfg *config.Config) (*gcp.Clients, error) {
	credProject, err := gcp.ValidateCredentials(ctx)
	if err != nil {
		return nil, err
	}
	if credProject != "" && credProject != cfg.ProjectID {
		output.Warningf("Credentials default to project %s, operating on %s", credProject, cfg.ProjectID)
	}

	return gcp.NewClients(ctx)
}

// RootCmd returns the root command for use by tools like doc generators.
func RootCmd() *cobra.Command {
	return rootCmd
}
