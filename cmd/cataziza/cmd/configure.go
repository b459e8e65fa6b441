package cmd

import (
	"fmt"

	"github.com/catherinevee/terraform-gcp-sub000/internal/config"
	"github.com/catherinevee/terraform-gcp-sub000/internal/constants"
	"github.com/catherinevee/terraform-gcp-sub000/internal/output"

	"github.com/spf13/cobra"
)

// configureCmd persists the effective configuration for later runs
var configureCmd = &cobra.Command{
	Use:   "configure",
	Short: "Persist deployment coordinates to the config file",
	Long: fmt.Sprintf(`Write the effective configuration, global flags and environment variables
included, to ~/%s/%s so later runs do not need them repeated.

Examples:
  # Pin the project and environment for this machine
  cataziza configure --project acme-ecommerce-prod --environment prod`,
		constants.ConfigDirName, constants.ConfigFileName),
	RunE: configureRun,
}

func init() {
	rootCmd.AddCommand(configureCmd)
}

func configureRun(cmd *cobra.Command, _ []string) error {
	cfg, err := getConfigFromContext(cmd)
	if err != nil {
		return err
	}
	if err = cfg.RequireProjectID(); err != nil {
		return err
	}

	if err = config.Save(cfg); err != nil {
		return err
	}

	path, err := config.GetConfigPath()
	if err != nil {
		return err
	}

	output.Successf("Configuration written to %s", path)
	output.KeyValue("Project", cfg.ProjectID)
	output.KeyValue("Environment", cfg.Environment)
	output.KeyValue("Region", cfg.Region)
	output.KeyValue("Report directory", cfg.ReportDir)
	return nil
}
