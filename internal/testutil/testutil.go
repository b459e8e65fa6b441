// Package testutil provides shared testing utilities and helpers.
package testutil

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/catherinevee/terraform-gcp-sub000/internal/config"
	"github.com/catherinevee/terraform-gcp-sub000/internal/constants"
)

// DiscardLogger returns a logger that swallows everything. Tests assert
// on behavior, not log lines.
func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// TestConfig returns a fully populated configuration for a fictional dev
// project. Tests overwrite the fields they care about.
func TestConfig() *config.Config {
	return &config.Config{
		ProjectID:       "acme-ecommerce-dev",
		Environment:     "dev",
		Region:          constants.DefaultRegion,
		Zone:            constants.DefaultZone,
		SecondaryRegion: constants.DefaultSecondaryRegion,
		ReportDir:       constants.DefaultReportDir,
		EnvironmentsDir: constants.DefaultEnvironmentsDir,
		TerraformBinary: constants.DefaultTerraformBinary,
	}
}

// TestContext returns a context that expires with the standard test
// timeout and is canceled when the test ends.
func TestContext(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), constants.TestContextTimeout)
	t.Cleanup(cancel)
	return ctx
}
