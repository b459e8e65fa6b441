// Package assets provides access to embedded report templates.
package assets

import (
	"embed"
)

// templateFiles embeds the templates directory. Embedding keeps the report
// templates inside the binary so operators ship a single artifact.
//
//go:embed templates/*.tmpl
var templateFiles embed.FS

// HealthReportTemplate returns the HTML template for the health report.
func HealthReportTemplate() (string, error) {
	data, err := templateFiles.ReadFile("templates/health-report.html.tmpl")
	if err != nil {
		return "", err
	}
	return string(data), nil
}
