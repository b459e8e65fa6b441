package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/catherinevee/terraform-gcp-sub000/internal/constants"
	"github.com/catherinevee/terraform-gcp-sub000/internal/phase"
	"github.com/catherinevee/terraform-gcp-sub000/internal/terraform"
)

// Rollback records one phase rollback for the summary artifact.
type Rollback struct {
	Phase       phase.Phase
	ProjectID   string
	Environment string
	Region      string
	WorkDir     string
	DryRun      bool
	Destroyed   bool
	Plan        terraform.Summary
	Targets     []string
	BackupFile  string
	Leftovers   []string
	StartedAt   time.Time
	Duration    time.Duration
}

// Result describes the outcome in one word for the summary header.
func (r Rollback) Result() string {
	switch {
	case r.Destroyed && len(r.Leftovers) > 0:
		return "destroyed (leftovers remain)"
	case r.Destroyed:
		return "destroyed"
	case !r.Plan.HasChanges():
		return "nothing to destroy"
	case r.DryRun:
		return "planned (dry run, not destroyed)"
	default:
		return "planned (not destroyed)"
	}
}

// WriteRollback renders the rollback summary and writes it under the
// report directory. It returns the artifact path.
func (w *Writer) WriteRollback(r Rollback, timestamp string) (string, error) {
	var b strings.Builder

	fmt.Fprintf(&b, "# Rollback Summary: %s\n\n", r.Phase)
	fmt.Fprintf(&b, "- **Project:** %s\n", r.ProjectID)
	fmt.Fprintf(&b, "- **Environment:** %s\n", r.Environment)
	fmt.Fprintf(&b, "- **Region:** %s\n", r.Region)
	fmt.Fprintf(&b, "- **Working directory:** %s\n", r.WorkDir)
	fmt.Fprintf(&b, "- **Started:** %s\n", formatTime(r.StartedAt))
	fmt.Fprintf(&b, "- **Duration:** %s\n", formatDuration(r.Duration))
	fmt.Fprintf(&b, "- **Result:** %s\n", r.Result())
	if r.BackupFile != "" {
		fmt.Fprintf(&b, "- **State backup:** %s\n", r.BackupFile)
	} else {
		b.WriteString("- **State backup:** skipped\n")
	}

	if len(r.Targets) > 0 {
		b.WriteString("\n## Targets\n\n")
		for _, target := range r.Targets {
			fmt.Fprintf(&b, "- %s\n", target)
		}
	}

	b.WriteString("\n## Destroy Plan\n\n")
	b.WriteString("| Action | Count |\n|--------|------:|\n")
	fmt.Fprintf(&b, "| Destroy | %d |\n", r.Plan.Destroy)
	fmt.Fprintf(&b, "| Change | %d |\n", r.Plan.Change)

	if len(r.Leftovers) > 0 {
		b.WriteString("\n## Leftover Resources\n\n")
		b.WriteString("These addresses were still in state after the destroy and need manual review:\n\n")
		for _, addr := range r.Leftovers {
			fmt.Fprintf(&b, "- %s\n", addr)
		}
	}

	return w.write(constants.RollbackSummaryFileName(int(r.Phase), timestamp), []byte(b.String()))
}
