package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks the variables Load binds so a developer's shell cannot
// leak into assertions. Viper treats empty env vars as unset.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{"PROJECT_ID", "ENVIRONMENT", "REGION", "ZONE", "SECONDARY_REGION", "REPORT_DIR"} {
		t.Setenv(name, "")
	}
	t.Setenv("HOME", t.TempDir())
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Empty(t, cfg.ProjectID)
	assert.Equal(t, "dev", cfg.Environment)
	assert.Equal(t, "us-central1", cfg.Region)
	assert.Equal(t, "us-central1-a", cfg.Zone)
	assert.Equal(t, "us-east1", cfg.SecondaryRegion)
	assert.Equal(t, "reports", cfg.ReportDir)
	assert.Equal(t, "infrastructure/environments", cfg.EnvironmentsDir)
	assert.Equal(t, "terraform", cfg.TerraformBinary)
}

func TestLoad_EnvironmentVariables(t *testing.T) {
	clearEnv(t)
	t.Setenv("PROJECT_ID", "acme-dev")
	t.Setenv("ENVIRONMENT", "staging")
	t.Setenv("REGION", "europe-west1")
	t.Setenv("SECONDARY_REGION", "europe-west3")
	t.Setenv("REPORT_DIR", "/tmp/reports")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "acme-dev", cfg.ProjectID)
	assert.Equal(t, "staging", cfg.Environment)
	assert.Equal(t, "europe-west1", cfg.Region)
	assert.Equal(t, "europe-west3", cfg.SecondaryRegion)
	assert.Equal(t, "/tmp/reports", cfg.ReportDir)
}

func TestLoad_InvalidEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("ENVIRONMENT", "qa")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation")
}

func TestLoad_ConfigFile(t *testing.T) {
	clearEnv(t)
	home := t.TempDir()
	t.Setenv("HOME", home)

	configDir := filepath.Join(home, ".cataziza")
	require.NoError(t, os.MkdirAll(configDir, 0o750))
	configFile := filepath.Join(configDir, "config.yaml")
	content := "project_id: acme-prod\nenvironment: prod\nregion: us-west1\n"
	require.NoError(t, os.WriteFile(configFile, []byte(content), 0o600))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "acme-prod", cfg.ProjectID)
	assert.Equal(t, "prod", cfg.Environment)
	assert.Equal(t, "us-west1", cfg.Region)
	// Fields the file omits keep their defaults
	assert.Equal(t, "us-central1-a", cfg.Zone)
}

func TestLoad_EnvOverridesConfigFile(t *testing.T) {
	clearEnv(t)
	home := t.TempDir()
	t.Setenv("HOME", home)

	configDir := filepath.Join(home, ".cataziza")
	require.NoError(t, os.MkdirAll(configDir, 0o750))
	configFile := filepath.Join(configDir, "config.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte("project_id: from-file\n"), 0o600))

	t.Setenv("PROJECT_ID", "from-env")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.ProjectID)
}

func TestSaveAndReload(t *testing.T) {
	clearEnv(t)
	home := t.TempDir()
	t.Setenv("HOME", home)

	saved := &Config{
		ProjectID:       "acme-dev",
		Environment:     "dev",
		Region:          "us-central1",
		Zone:            "us-central1-a",
		SecondaryRegion: "us-east1",
		ReportDir:       "reports",
		EnvironmentsDir: "infrastructure/environments",
		TerraformBinary: "terraform",
	}
	require.NoError(t, Save(saved))

	path, err := GetConfigPath()
	require.NoError(t, err)
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, saved.ProjectID, cfg.ProjectID)
	assert.Equal(t, saved.Region, cfg.Region)
}

func TestWorkDir(t *testing.T) {
	cfg := &Config{EnvironmentsDir: "infrastructure/environments"}
	assert.Equal(t, filepath.Join("infrastructure/environments", "staging"), cfg.WorkDir("staging"))
}
