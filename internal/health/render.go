package health

import (
	"encoding/json"
	"fmt"
	"html/template"
	"io"

	"github.com/catherinevee/terraform-gcp-sub000/internal/assets"
	"github.com/catherinevee/terraform-gcp-sub000/internal/constants"
	apperrors "github.com/catherinevee/terraform-gcp-sub000/internal/errors"
	"github.com/catherinevee/terraform-gcp-sub000/internal/output"
)

// Render writes the report to w in the requested format.
func Render(w io.Writer, format constants.OutputFormat, r *Report) error {
	switch format {
	case constants.FormatConsole:
		return renderConsole(w, r)
	case constants.FormatJSON:
		return renderJSON(w, r)
	case constants.FormatHTML:
		return renderHTML(w, r)
	default:
		return apperrors.NewInvalidInputError(
			fmt.Sprintf("unknown output format: %s. Must be console, json, or html", format), nil)
	}
}

func renderConsole(w io.Writer, r *Report) error {
	fmt.Fprintln(w, output.Bold("Infrastructure Health"))
	fmt.Fprintf(w, "Project:     %s\n", r.ProjectID)
	fmt.Fprintf(w, "Environment: %s\n", r.Environment)
	fmt.Fprintf(w, "Region:      %s\n", r.Region)
	fmt.Fprintln(w)

	for _, cat := range r.Categories {
		fmt.Fprintf(w, "%s %s (%s)\n",
			output.StatusBadge(string(cat.Status)), output.Bold(cat.Category),
			output.Duration(cat.Duration))
		if cat.Err != "" {
			fmt.Fprintf(w, "    %s\n", output.Red(cat.Err))
		}
		for _, d := range cat.Details {
			if d.Note != "" {
				fmt.Fprintf(w, "    %s %s %s\n", statusIcon(d.Status), d.Name, output.Gray(d.Note))
			} else {
				fmt.Fprintf(w, "    %s %s\n", statusIcon(d.Status), d.Name)
			}
		}
	}

	healthyCount, warningCount, errorCount := r.Counts()
	fmt.Fprintf(w, "\n%s healthy, %s warnings, %s errors in %s\n",
		output.Green(fmt.Sprintf("%d", healthyCount)),
		output.Yellow(fmt.Sprintf("%d", warningCount)),
		output.Red(fmt.Sprintf("%d", errorCount)),
		output.Duration(r.Elapsed))
	return nil
}

func statusIcon(s Status) string {
	switch s {
	case StatusHealthy:
		return output.Green("✓")
	case StatusWarning:
		return output.Yellow("⚠")
	default:
		return output.Red("✗")
	}
}

func renderJSON(w io.Writer, r *Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

func renderHTML(w io.Writer, r *Report) error {
	text, err := assets.HealthReportTemplate()
	if err != nil {
		return apperrors.NewInternalError("health report template missing", err)
	}
	tmpl, err := template.New("health").Parse(text)
	if err != nil {
		return apperrors.NewInternalError("health report template is invalid", err)
	}

	healthyCount, warningCount, errorCount := r.Counts()
	view := struct {
		*Report
		Healthy  int
		Warnings int
		Errors   int
	}{Report: r, Healthy: healthyCount, Warnings: warningCount, Errors: errorCount}
	return tmpl.Execute(w, view)
}
