package cmd

import (
	"github.com/catherinevee/terraform-gcp-sub000/internal/constants"
	"github.com/catherinevee/terraform-gcp-sub000/internal/output"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the version of the CLI",
	Run: func(cmd *cobra.Command, _ []string) {
		output.KeyValue("CLI version", *constants.GetVersion())

		cfg, err := getConfigFromContext(cmd)
		if err != nil {
			return
		}
		if cfg.ProjectID != "" {
			output.KeyValue("Project", cfg.ProjectID)
		}
		output.KeyValue("Environment", cfg.Environment)
		output.KeyValue("Region", cfg.Region)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
