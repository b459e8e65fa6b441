// Package verify runs post-deployment test suites against the live GCP
// footprint, one suite per deployment phase. Checks read actual cloud
// state through the gcp interfaces; a few acquire ephemeral resources,
// which are always released through the suite's cleanup stack.
package verify

import (
	"context"
	"log/slog"
	"time"

	"github.com/catherinevee/terraform-gcp-sub000/internal/config"
	"github.com/catherinevee/terraform-gcp-sub000/internal/gcp"
	"github.com/catherinevee/terraform-gcp-sub000/internal/phase"
)

// CheckStatus classifies a single check outcome.
type CheckStatus string

const (
	// CheckPassed means the check ran and its condition held.
	CheckPassed CheckStatus = "passed"
	// CheckFailed means the check ran and its condition did not hold.
	CheckFailed CheckStatus = "failed"
	// CheckSkipped means an earlier critical failure aborted the check.
	CheckSkipped CheckStatus = "skipped"
)

// Check is one verification within a suite. A Critical check that fails
// aborts the rest of its suite; the aborted checks are reported skipped.
type Check struct {
	Name     string
	Critical bool
	Fn       func(ctx context.Context, h *Harness) error
}

// CheckResult records one executed or skipped check.
type CheckResult struct {
	Name     string        `json:"name"`
	Status   CheckStatus   `json:"status"`
	Err      string        `json:"error,omitempty"`
	Duration time.Duration `json:"duration_ns"`
}

// SuiteResult records every check of one phase suite.
type SuiteResult struct {
	Phase    phase.Phase   `json:"phase"`
	Name     string        `json:"name"`
	Results  []CheckResult `json:"results"`
	Duration time.Duration `json:"duration_ns"`
}

// Passed reports whether no check failed. Skipped checks do not pass,
// but only failures fail the suite.
func (r SuiteResult) Passed() bool {
	for _, c := range r.Results {
		if c.Status == CheckFailed {
			return false
		}
	}
	return true
}

// Counts tallies check outcomes.
func (r SuiteResult) Counts() (passed, failed, skipped int) {
	for _, c := range r.Results {
		switch c.Status {
		case CheckPassed:
			passed++
		case CheckFailed:
			failed++
		case CheckSkipped:
			skipped++
		}
	}
	return passed, failed, skipped
}

// Harness carries everything a check needs. Cleanup is replaced for each
// suite run and released when the suite ends.
type Harness struct {
	Clients *gcp.Clients
	Cfg     *config.Config
	Expect  *Expectations
	Log     *slog.Logger

	Cleanup *Cleanup
}

// NewHarness builds a harness with the given expectations, falling back
// to defaults when nil.
func NewHarness(clients *gcp.Clients, cfg *config.Config, expect *Expectations, log *slog.Logger) *Harness {
	if expect == nil {
		expect = DefaultExpectations()
	}
	return &Harness{Clients: clients, Cfg: cfg, Expect: expect, Log: log}
}

// RunPhase executes the suite for one phase. Ephemeral resources are
// released before it returns, on a fresh context, so cancellation of ctx
// cannot leak them.
func (h *Harness) RunPhase(ctx context.Context, p phase.Phase) SuiteResult {
	return h.runSuite(ctx, p, For(p))
}

func (h *Harness) runSuite(ctx context.Context, p phase.Phase, suite Suite) SuiteResult {
	result := SuiteResult{Phase: p, Name: suite.Name}
	start := time.Now()

	h.Cleanup = NewCleanup(h.Log)
	defer h.Cleanup.Release()

	aborted := false
	for _, chk := range suite.Checks {
		if aborted {
			result.Results = append(result.Results, CheckResult{
				Name:   chk.Name,
				Status: CheckSkipped,
			})
			continue
		}

		began := time.Now()
		err := chk.Fn(ctx, h)
		cr := CheckResult{Name: chk.Name, Duration: time.Since(began)}
		if err != nil {
			cr.Status = CheckFailed
			cr.Err = err.Error()
			h.Log.Warn("check failed", "phase", int(p), "check", chk.Name, "error", err)
			if chk.Critical {
				aborted = true
			}
		} else {
			cr.Status = CheckPassed
			h.Log.Debug("check passed", "phase", int(p), "check", chk.Name, "duration", cr.Duration)
		}
		result.Results = append(result.Results, cr)
	}

	result.Duration = time.Since(start)
	return result
}

// RunAll executes every phase suite in order. A failing phase never stops
// the later ones: the aggregate report always carries one entry per phase.
func (h *Harness) RunAll(ctx context.Context) []SuiteResult {
	phases := phase.All()
	results := make([]SuiteResult, 0, len(phases))
	for _, p := range phases {
		h.Log.Info("running verification suite", "phase", p.String())
		results = append(results, h.RunPhase(ctx, p))
	}
	return results
}
