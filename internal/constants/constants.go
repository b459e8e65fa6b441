// Package constants defines global constants used throughout cataziza.
// It includes version information, paths, defaults, and artifact naming.
package constants

import (
	"fmt"
	"time"
)

// ProjectName is the name of the CLI tool and application
const ProjectName = "cataziza"

// NamePrefix is the naming prefix shared by all platform resources,
// e.g. cataziza-ecommerce-platform-dev-vpc.
const NamePrefix = "cataziza-ecommerce-platform"

// ConfigDirName is the name of the configuration directory in the user's home directory
const ConfigDirName = ".cataziza"

// ConfigFileName is the name of the global configuration file
const ConfigFileName = "config.yaml"

// ConfigDirPath returns the full path to the global configuration directory.
func ConfigDirPath(homeDir string) string {
	return homeDir + "/" + ConfigDirName
}

// ConfigFilePath returns the full path to the global configuration file
func ConfigFilePath(homeDir string) string {
	return ConfigDirPath(homeDir) + "/" + ConfigFileName
}

// Environment represents a deployment target environment.
type Environment string

const (
	// Dev is the development environment.
	Dev Environment = "dev"
	// Staging is the pre-production environment.
	Staging Environment = "staging"
	// Prod is the production environment.
	Prod Environment = "prod"
)

// Environments returns all valid deployment environments.
func Environments() []Environment {
	return []Environment{Dev, Staging, Prod}
}

// OutputFormat represents a health report rendering format.
type OutputFormat string

const (
	// FormatConsole renders to the terminal.
	FormatConsole OutputFormat = "console"
	// FormatJSON renders machine-readable JSON.
	FormatJSON OutputFormat = "json"
	// FormatHTML renders a self-contained HTML page.
	FormatHTML OutputFormat = "html"
)

// Defaults for the coordinates every command accepts. PROJECT_ID has no
// default on purpose: it must always be supplied.
const (
	DefaultEnvironment     = Dev
	DefaultRegion          = "us-central1"
	DefaultZone            = "us-central1-a"
	DefaultSecondaryRegion = "us-east1"
	DefaultReportDir       = "reports"
	DefaultEnvironmentsDir = "infrastructure/environments"
	DefaultTerraformBinary = "terraform"
)

// ConfigCtxKeyType is the type for the config context key
type ConfigCtxKeyType string

// ConfigCtxKey is the key used to store config in context
const ConfigCtxKey ConfigCtxKeyType = "config"

// StartTimeCtxKeyType is the type for start time context keys
type StartTimeCtxKeyType string

// StartTimeCtxKey is the key used to store the start time in context
const StartTimeCtxKey StartTimeCtxKeyType = "startTime"

// Time-related constants

// DefaultCommandTimeout is the default timeout for a whole command run.
// Terraform applies of the compute phase routinely take over half an hour.
const DefaultCommandTimeout = 45 * time.Minute

// APICallTimeout is the per-call timeout for GCP API reads
const APICallTimeout = 30 * time.Second

// CategoryCheckTimeout bounds a full health check category, which may
// issue several API reads
const CategoryCheckTimeout = 2 * time.Minute

// MaxConcurrentChecks caps the health categories probed in parallel
const MaxConcurrentChecks = 4

// ProbePollInitialInterval is the first interval when polling resource readiness
const ProbePollInitialInterval = 2 * time.Second

// ProbePollMaxInterval caps the backoff between readiness polls
const ProbePollMaxInterval = 30 * time.Second

// ProbePollMultiplier is the backoff growth factor between readiness polls
const ProbePollMultiplier = 2.0

// ProbeTimeout is the hard deadline for any single readiness wait
const ProbeTimeout = 5 * time.Minute

// CleanupTimeout bounds the teardown of ephemeral verification resources.
// Teardown runs on a fresh context so a canceled run still releases them.
const CleanupTimeout = 2 * time.Minute

// LatencyProbeTimeout bounds a single synthetic latency probe request
const LatencyProbeTimeout = 10 * time.Second

// LatencyWarningThreshold is the round-trip above which an endpoint is flagged
const LatencyWarningThreshold = 2 * time.Second

// SpinnerTickerInterval is the interval between spinner frame updates
const SpinnerTickerInterval = 80 * time.Millisecond

// TestContextTimeout is the timeout for test contexts
const TestContextTimeout = 5 * time.Second

// ArtifactTimeFormat is the timestamp layout embedded in artifact file names
const ArtifactTimeFormat = "20060102-150405"

// Artifact naming. Plan files, state backups, and summaries are audit
// artifacts and are never cleaned up automatically.

// PlanFileName returns the plan artifact name for a phase.
func PlanFileName(phase int, timestamp string) string {
	return fmt.Sprintf("tfplan-phase-%d-%s", phase, timestamp)
}

// StateBackupFileName returns the state backup artifact name.
func StateBackupFileName(timestamp string) string {
	return fmt.Sprintf("terraform.tfstate.backup.%s", timestamp)
}

// DeploymentSummaryFileName returns the deployment summary artifact name.
func DeploymentSummaryFileName(phase int, timestamp string) string {
	return fmt.Sprintf("deployment-summary-phase-%d-%s.md", phase, timestamp)
}

// RollbackSummaryFileName returns the rollback summary artifact name.
func RollbackSummaryFileName(phase int, timestamp string) string {
	return fmt.Sprintf("rollback-summary-phase-%d-%s.md", phase, timestamp)
}

// PhaseTestLogFileName returns the per-phase verification log name.
func PhaseTestLogFileName(phase int, timestamp string) string {
	return fmt.Sprintf("phase-%d-test-%s.log", phase, timestamp)
}

// PhaseTestReportFileName returns the consolidated verification report name.
func PhaseTestReportFileName(timestamp string) string {
	return fmt.Sprintf("phase-test-report-%s.md", timestamp)
}

// PhaseTestJSONFileName returns the machine-readable verification report name.
func PhaseTestJSONFileName(timestamp string) string {
	return fmt.Sprintf("phase-test-report-%s.json", timestamp)
}

// Canary instance settings. The networking suite boots a throwaway VM to
// prove the network actually carries new workloads.

// CanaryMachineType is the machine type for the ephemeral verification instance
const CanaryMachineType = "e2-micro"

// CanaryImage is the boot image for the ephemeral verification instance
const CanaryImage = "projects/debian-cloud/global/images/family/debian-12"

// CanaryInstanceName returns the name for an ephemeral verification instance.
func CanaryInstanceName(timestamp string) string {
	return fmt.Sprintf("%s-canary-%s", ProjectName, timestamp)
}

// File permission constants

// ConfigDirPermissions is the file system permissions for config directory (0750)
const ConfigDirPermissions = 0750

// ConfigFilePermissions is the file system permissions for config file (0600)
const ConfigFilePermissions = 0600

// ReportDirPermissions is the file system permissions for report directories (0755)
const ReportDirPermissions = 0755

// ReportFilePermissions is the file system permissions for report artifacts (0644)
const ReportFilePermissions = 0644

// UI/Display constants

// HeaderSeparatorLength is the length of the header separator line
const HeaderSeparatorLength = 50

// Conversion constants

// PercentageMultiplier is the multiplier to convert fraction to percentage
const PercentageMultiplier = 100

// SecondsPerMinute is the number of seconds in a minute
const SecondsPerMinute = 60

// MinutesPerHour is the number of minutes in an hour
const MinutesPerHour = 60
