package report

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/catherinevee/terraform-gcp-sub000/internal/constants"
	apperrors "github.com/catherinevee/terraform-gcp-sub000/internal/errors"
	"github.com/catherinevee/terraform-gcp-sub000/internal/verify"
)

// Verification aggregates the suite results of a verification run. A run
// over all phases carries one suite per phase, in deployment order.
type Verification struct {
	ProjectID   string               `json:"project_id"`
	Environment string               `json:"environment"`
	Region      string               `json:"region"`
	StartedAt   time.Time            `json:"started_at"`
	Duration    time.Duration        `json:"duration_ns"`
	Suites      []verify.SuiteResult `json:"suites"`
}

// VerificationSummary tallies every check across all suites.
type VerificationSummary struct {
	Total       int     `json:"total"`
	Passed      int     `json:"passed"`
	Failed      int     `json:"failed"`
	Skipped     int     `json:"skipped"`
	SuccessRate float64 `json:"success_rate"`
}

// Summary computes the aggregate tallies. The success rate is the passed
// fraction of all checks, skipped ones included: a suite that was aborted
// early did not verify anything.
func (v Verification) Summary() VerificationSummary {
	var s VerificationSummary
	for _, suite := range v.Suites {
		passed, failed, skipped := suite.Counts()
		s.Passed += passed
		s.Failed += failed
		s.Skipped += skipped
	}
	s.Total = s.Passed + s.Failed + s.Skipped
	if s.Total > 0 {
		s.SuccessRate = float64(s.Passed) / float64(s.Total) * constants.PercentageMultiplier
	}
	return s
}

// Passed reports whether every suite passed.
func (v Verification) Passed() bool {
	for _, suite := range v.Suites {
		if !suite.Passed() {
			return false
		}
	}
	return true
}

// WriteVerification writes the consolidated report as markdown and JSON.
// It returns both artifact paths.
func (w *Writer) WriteVerification(v Verification, timestamp string) (mdPath, jsonPath string, err error) {
	mdPath, err = w.write(constants.PhaseTestReportFileName(timestamp), []byte(v.markdown()))
	if err != nil {
		return "", "", err
	}

	payload := struct {
		Verification
		Summary VerificationSummary `json:"summary"`
	}{Verification: v, Summary: v.Summary()}
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return "", "", apperrors.NewInternalError("failed to encode verification report", err)
	}
	jsonPath, err = w.write(constants.PhaseTestJSONFileName(timestamp), data)
	if err != nil {
		return "", "", err
	}
	return mdPath, jsonPath, nil
}

func (v Verification) markdown() string {
	var b strings.Builder

	b.WriteString("# Phase Verification Report\n\n")
	fmt.Fprintf(&b, "- **Project:** %s\n", v.ProjectID)
	fmt.Fprintf(&b, "- **Environment:** %s\n", v.Environment)
	fmt.Fprintf(&b, "- **Region:** %s\n", v.Region)
	fmt.Fprintf(&b, "- **Started:** %s\n", formatTime(v.StartedAt))
	fmt.Fprintf(&b, "- **Duration:** %s\n", formatDuration(v.Duration))

	s := v.Summary()
	b.WriteString("\n## Summary\n\n")
	b.WriteString("| Total | Passed | Failed | Skipped | Success Rate |\n")
	b.WriteString("|------:|-------:|-------:|--------:|-------------:|\n")
	fmt.Fprintf(&b, "| %d | %d | %d | %d | %.1f%% |\n",
		s.Total, s.Passed, s.Failed, s.Skipped, s.SuccessRate)

	for _, suite := range v.Suites {
		verdict := "PASSED"
		if !suite.Passed() {
			verdict = "FAILED"
		}
		fmt.Fprintf(&b, "\n## %s: %s\n\n", suite.Phase, verdict)
		writeSuiteTable(&b, suite)
	}

	return b.String()
}

// WritePhaseLog writes the plain-text check log for one suite run.
func (w *Writer) WritePhaseLog(suite verify.SuiteResult, timestamp string) (string, error) {
	var b strings.Builder

	fmt.Fprintf(&b, "%s verification, %s\n", suite.Phase, formatTime(time.Now()))
	for _, cr := range suite.Results {
		fmt.Fprintf(&b, "[%s] %s (%s)\n", cr.Status, cr.Name, formatDuration(cr.Duration))
		if cr.Err != "" {
			fmt.Fprintf(&b, "        %s\n", cr.Err)
		}
	}
	passed, failed, skipped := suite.Counts()
	fmt.Fprintf(&b, "%d passed, %d failed, %d skipped in %s\n",
		passed, failed, skipped, formatDuration(suite.Duration))

	return w.write(constants.PhaseTestLogFileName(int(suite.Phase), timestamp), []byte(b.String()))
}
