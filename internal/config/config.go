// Package config manages configuration for the cataziza CLI.
// It uses Viper for unified configuration management from files and environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/catherinevee/terraform-gcp-sub000/internal/constants"
	apperrors "github.com/catherinevee/terraform-gcp-sub000/internal/errors"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Config holds the deployment coordinates every command needs.
// Precedence: command flags > environment variables > config file > defaults.
// ProjectID deliberately has no default; commands reject a run without one
// before touching terraform or any GCP API.
type Config struct {
	ProjectID       string `mapstructure:"project_id" yaml:"project_id"`
	Environment     string `mapstructure:"environment" yaml:"environment" validate:"omitempty,oneof=dev staging prod"`
	Region          string `mapstructure:"region" yaml:"region"`
	Zone            string `mapstructure:"zone" yaml:"zone"`
	SecondaryRegion string `mapstructure:"secondary_region" yaml:"secondary_region"`
	ReportDir       string `mapstructure:"report_dir" yaml:"report_dir"`
	EnvironmentsDir string `mapstructure:"environments_dir" yaml:"environments_dir"`
	TerraformBinary string `mapstructure:"terraform_binary" yaml:"terraform_binary"`
}

var validate = validator.New()

// Load loads the configuration using Viper.
// Reads ~/.cataziza/config.yaml when present, then binds the environment
// variables the legacy automation consumed (PROJECT_ID, ENVIRONMENT, REGION,
// ZONE, SECONDARY_REGION, REPORT_DIR). Environment variables take precedence
// over config file values.
func Load() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if err := loadConfigFile(v); err != nil {
		// A missing config file is fine; env vars and flags carry the run.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !os.IsNotExist(err) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	bindEnvVars(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// Save saves the configuration to the user's home directory.
// Overwrites the existing config file if it exists.
func Save(config *Config) error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("error getting home directory: %w", err)
	}

	configDir := constants.ConfigDirPath(homeDir)

	if err = os.MkdirAll(configDir, constants.ConfigDirPermissions); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	configFilePath := filepath.Join(configDir, constants.ConfigFileName)

	v := viper.New()
	v.Set("project_id", config.ProjectID)
	v.Set("environment", config.Environment)
	v.Set("region", config.Region)
	v.Set("zone", config.Zone)
	v.Set("secondary_region", config.SecondaryRegion)
	v.Set("report_dir", config.ReportDir)
	v.Set("environments_dir", config.EnvironmentsDir)
	v.Set("terraform_binary", config.TerraformBinary)

	if err = v.WriteConfigAs(configFilePath); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}

	if err = os.Chmod(configFilePath, constants.ConfigFilePermissions); err != nil {
		return fmt.Errorf("error setting config file permissions: %w", err)
	}

	return nil
}

// GetConfigPath returns the path to the config file
func GetConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("error getting home directory: %w", err)
	}

	return constants.ConfigFilePath(homeDir), nil
}

// WorkDir returns the terraform working directory for an environment,
// e.g. infrastructure/environments/dev.
func (c *Config) WorkDir(environment string) string {
	return filepath.Join(c.EnvironmentsDir, environment)
}

// RequireProjectID rejects a run without a project. Every command calls
// this before touching terraform or any GCP API; there is no default.
func (c *Config) RequireProjectID() error {
	if c.ProjectID == "" {
		return apperrors.NewConfigError(
			"PROJECT_ID is required. Set the PROJECT_ID environment variable, the project_id config key, or --project", nil)
	}
	return nil
}

// Helper functions

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment", string(constants.DefaultEnvironment))
	v.SetDefault("region", constants.DefaultRegion)
	v.SetDefault("zone", constants.DefaultZone)
	v.SetDefault("secondary_region", constants.DefaultSecondaryRegion)
	v.SetDefault("report_dir", constants.DefaultReportDir)
	v.SetDefault("environments_dir", constants.DefaultEnvironmentsDir)
	v.SetDefault("terraform_binary", constants.DefaultTerraformBinary)
}

func loadConfigFile(v *viper.Viper) error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("error getting home directory: %w", err)
	}

	configFile := constants.ConfigFilePath(homeDir)

	v.SetConfigFile(configFile)
	v.SetConfigType("yaml")

	return v.ReadInConfig()
}

func bindEnvVars(v *viper.Viper) {
	// The legacy scripts read these exact unprefixed names; keep them.
	envVars := map[string]string{
		"project_id":       "PROJECT_ID",
		"environment":      "ENVIRONMENT",
		"region":           "REGION",
		"zone":             "ZONE",
		"secondary_region": "SECONDARY_REGION",
		"report_dir":       "REPORT_DIR",
	}

	for key, envVar := range envVars {
		_ = v.BindEnv(key, envVar)
	}
}
