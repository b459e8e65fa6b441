// Package health inspects the deployed GCP footprint category by category
// and classifies each one as healthy, warning, or error. A category with
// nothing deployed is never healthy: absence of required resources is at
// best a warning.
package health

import (
	"time"
)

// Status classifies a check result.
type Status string

const (
	// StatusHealthy means every inspected resource is present and sound.
	StatusHealthy Status = "healthy"
	// StatusWarning means resources are missing or degraded but usable.
	StatusWarning Status = "warning"
	// StatusError means a required resource is broken or unreachable.
	StatusError Status = "error"
)

// Detail is a single inspected resource or condition within a category.
type Detail struct {
	Name   string `json:"name"`
	Status Status `json:"status"`
	Note   string `json:"note,omitempty"`
}

// CategoryResult is the outcome of one health category.
type CategoryResult struct {
	Category string        `json:"category"`
	Status   Status        `json:"status"`
	Details  []Detail      `json:"details,omitempty"`
	Err      string        `json:"error,omitempty"`
	Duration time.Duration `json:"duration_ns"`
}

// Report aggregates every category checked in one run.
type Report struct {
	ProjectID   string           `json:"project_id"`
	Environment string           `json:"environment"`
	Region      string           `json:"region"`
	GeneratedAt time.Time        `json:"generated_at"`
	Elapsed     time.Duration    `json:"elapsed_ns"`
	Categories  []CategoryResult `json:"categories"`
}

// HasErrors reports whether any category ended in StatusError.
func (r *Report) HasErrors() bool {
	for _, c := range r.Categories {
		if c.Status == StatusError {
			return true
		}
	}
	return false
}

// Counts tallies categories by status.
func (r *Report) Counts() (healthy, warning, failed int) {
	for _, c := range r.Categories {
		switch c.Status {
		case StatusHealthy:
			healthy++
		case StatusWarning:
			warning++
		case StatusError:
			failed++
		}
	}
	return healthy, warning, failed
}

// classify folds detail statuses into a category status. No details means
// nothing was found, which is a warning, never healthy.
func classify(details []Detail) Status {
	if len(details) == 0 {
		return StatusWarning
	}
	status := StatusHealthy
	for _, d := range details {
		switch d.Status {
		case StatusError:
			return StatusError
		case StatusWarning:
			status = StatusWarning
		}
	}
	return status
}

func healthy(name, note string) Detail {
	return Detail{Name: name, Status: StatusHealthy, Note: note}
}

func warning(name, note string) Detail {
	return Detail{Name: name, Status: StatusWarning, Note: note}
}

func failed(name, note string) Detail {
	return Detail{Name: name, Status: StatusError, Note: note}
}

func result(category string, details []Detail) CategoryResult {
	return CategoryResult{Category: category, Status: classify(details), Details: details}
}

func errorResult(category string, err error) CategoryResult {
	return CategoryResult{Category: category, Status: StatusError, Err: err.Error()}
}
