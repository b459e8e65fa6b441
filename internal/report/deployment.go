package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/catherinevee/terraform-gcp-sub000/internal/constants"
	"github.com/catherinevee/terraform-gcp-sub000/internal/phase"
	"github.com/catherinevee/terraform-gcp-sub000/internal/terraform"
	"github.com/catherinevee/terraform-gcp-sub000/internal/verify"
)

// Deployment records one phase deployment for the summary artifact.
type Deployment struct {
	Phase        phase.Phase
	ProjectID    string
	Environment  string
	Region       string
	WorkDir      string
	DryRun       bool
	Applied      bool
	Plan         terraform.Summary
	Changed      []string
	PlanFile     string
	Verification *verify.SuiteResult
	StartedAt    time.Time
	Duration     time.Duration
}

// Result describes the outcome in one word for the summary header.
func (d Deployment) Result() string {
	switch {
	case d.Applied:
		return "applied"
	case !d.Plan.HasChanges():
		return "no changes"
	case d.DryRun:
		return "planned (dry run, not applied)"
	default:
		return "planned (not applied)"
	}
}

// WriteDeployment renders the deployment summary and writes it under the
// report directory. It returns the artifact path.
func (w *Writer) WriteDeployment(d Deployment, timestamp string) (string, error) {
	var b strings.Builder

	fmt.Fprintf(&b, "# Deployment Summary: %s\n\n", d.Phase)
	fmt.Fprintf(&b, "- **Project:** %s\n", d.ProjectID)
	fmt.Fprintf(&b, "- **Environment:** %s\n", d.Environment)
	fmt.Fprintf(&b, "- **Region:** %s\n", d.Region)
	fmt.Fprintf(&b, "- **Working directory:** %s\n", d.WorkDir)
	fmt.Fprintf(&b, "- **Started:** %s\n", formatTime(d.StartedAt))
	fmt.Fprintf(&b, "- **Duration:** %s\n", formatDuration(d.Duration))
	fmt.Fprintf(&b, "- **Result:** %s\n", d.Result())
	if d.PlanFile != "" {
		fmt.Fprintf(&b, "- **Plan file:** %s\n", d.PlanFile)
	}

	b.WriteString("\n## Plan\n\n")
	b.WriteString("| Action | Count |\n|--------|------:|\n")
	fmt.Fprintf(&b, "| Add | %d |\n", d.Plan.Add)
	fmt.Fprintf(&b, "| Change | %d |\n", d.Plan.Change)
	fmt.Fprintf(&b, "| Destroy | %d |\n", d.Plan.Destroy)
	fmt.Fprintf(&b, "| Replace | %d |\n", d.Plan.Replace)

	if len(d.Changed) > 0 {
		b.WriteString("\n### Resources\n\n")
		for _, line := range d.Changed {
			fmt.Fprintf(&b, "- %s\n", line)
		}
	}

	if d.Verification != nil {
		b.WriteString("\n## Verification\n\n")
		writeSuiteTable(&b, *d.Verification)
	}

	return w.write(constants.DeploymentSummaryFileName(int(d.Phase), timestamp), []byte(b.String()))
}

func writeSuiteTable(b *strings.Builder, suite verify.SuiteResult) {
	passed, failed, skipped := suite.Counts()
	fmt.Fprintf(b, "**%s**: %d passed, %d failed, %d skipped\n\n", suite.Name, passed, failed, skipped)
	b.WriteString("| Check | Status | Duration | Error |\n|-------|--------|---------:|-------|\n")
	for _, cr := range suite.Results {
		fmt.Fprintf(b, "| %s | %s | %s | %s |\n",
			escapeCell(cr.Name), cr.Status, formatDuration(cr.Duration), escapeCell(cr.Err))
	}
}
