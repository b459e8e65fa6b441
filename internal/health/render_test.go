package health

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/catherinevee/terraform-gcp-sub000/internal/constants"
	apperrors "github.com/catherinevee/terraform-gcp-sub000/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReport() *Report {
	return &Report{
		ProjectID:   "acme-ecommerce-dev",
		Environment: "dev",
		Region:      "us-central1",
		GeneratedAt: time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC),
		Elapsed:     3 * time.Second,
		Categories: []CategoryResult{
			{
				Category: "networking",
				Status:   StatusHealthy,
				Details: []Detail{
					healthy("vpc", "cataziza-ecommerce-platform-dev-vpc"),
					healthy("subnetworks", "2 in us-central1"),
				},
			},
			{
				Category: "databases",
				Status:   StatusError,
				Details:  []Detail{failed("orders-db", "state STOPPED")},
			},
		},
	}
}

func TestRender_JSON(t *testing.T) {
	var buf bytes.Buffer

	err := Render(&buf, constants.FormatJSON, sampleReport())
	require.NoError(t, err)

	var decoded Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "acme-ecommerce-dev", decoded.ProjectID)
	require.Len(t, decoded.Categories, 2)
	assert.Equal(t, StatusError, decoded.Categories[1].Status)
	assert.Equal(t, "orders-db", decoded.Categories[1].Details[0].Name)
}

func TestRender_Console(t *testing.T) {
	var buf bytes.Buffer

	err := Render(&buf, constants.FormatConsole, sampleReport())
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "acme-ecommerce-dev")
	assert.Contains(t, out, "networking")
	assert.Contains(t, out, "orders-db")
	assert.Contains(t, out, "state STOPPED")
}

func TestRender_HTML(t *testing.T) {
	var buf bytes.Buffer

	err := Render(&buf, constants.FormatHTML, sampleReport())
	require.NoError(t, err)

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
	assert.Contains(t, out, "acme-ecommerce-dev")
	assert.Contains(t, out, `<td class="error">error</td>`)
	assert.Contains(t, out, "1 healthy, 0 warnings, 1 errors")
}

func TestRender_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer

	err := Render(&buf, constants.OutputFormat("xml"), sampleReport())

	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeInvalidInput, apperrors.GetErrorCode(err))
	assert.Empty(t, buf.String())
}
