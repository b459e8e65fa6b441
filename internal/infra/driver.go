// Package infra orchestrates phased terraform deployments and rollbacks.
// The platform deploys in seven fixed phases, foundation first; a driver
// runs one phase at a time through init, validate, plan, apply, and the
// phase's verification suite, and leaves an audit artifact behind.
package infra

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/catherinevee/terraform-gcp-sub000/internal/config"
	apperrors "github.com/catherinevee/terraform-gcp-sub000/internal/errors"
	"github.com/catherinevee/terraform-gcp-sub000/internal/phase"
	"github.com/catherinevee/terraform-gcp-sub000/internal/report"
	"github.com/catherinevee/terraform-gcp-sub000/internal/terraform"
	"github.com/catherinevee/terraform-gcp-sub000/internal/verify"

	tfjson "github.com/hashicorp/terraform-json"
)

// Driver runs deployments and rollbacks against one terraform working
// directory.
type Driver struct {
	runner  terraform.Runner
	harness *verify.Harness
	cfg     *config.Config
	reports *report.Writer
	confirm func(prompt string) bool
	log     *slog.Logger
}

// NewDriver creates a driver.
// If harness is nil, post-apply verification is skipped.
// If confirm is nil, every prompt is answered no.
func NewDriver(
	runner terraform.Runner,
	harness *verify.Harness,
	cfg *config.Config,
	reports *report.Writer,
	confirm func(prompt string) bool,
	log *slog.Logger) *Driver {
	if confirm == nil {
		confirm = func(string) bool { return false }
	}
	return &Driver{
		runner:  runner,
		harness: harness,
		cfg:     cfg,
		reports: reports,
		confirm: confirm,
		log:     log,
	}
}

// preflight rejects bad input before any terraform or cloud call.
func (d *Driver) preflight(p phase.Phase) error {
	if err := p.Valid(); err != nil {
		return err
	}
	return d.cfg.RequireProjectID()
}

// checkDiagnostics turns failed validate output into an error carrying
// the first few diagnostic summaries.
func checkDiagnostics(out *tfjson.ValidateOutput) error {
	if out == nil || out.Valid {
		return nil
	}
	var summaries []string
	for _, diag := range out.Diagnostics {
		if diag.Severity == tfjson.DiagnosticSeverityError {
			summaries = append(summaries, diag.Summary)
		}
		if len(summaries) == 3 {
			break
		}
	}
	return apperrors.NewTerraformError("validate",
		fmt.Errorf("%d errors: %s", out.ErrorCount, strings.Join(summaries, "; ")))
}
