package cmd

import (
	"testing"

	"github.com/catherinevee/terraform-gcp-sub000/internal/constants"
	apperrors "github.com/catherinevee/terraform-gcp-sub000/internal/errors"
	"github.com/catherinevee/terraform-gcp-sub000/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthCommand_Flags(t *testing.T) {
	format := healthCmd.Flags().Lookup("format")
	require.NotNil(t, format)
	assert.Equal(t, "f", format.Shorthand)
	assert.Equal(t, string(constants.FormatConsole), format.DefValue)

	out := healthCmd.Flags().Lookup("output")
	require.NotNil(t, out)
	assert.Equal(t, "o", out.Shorthand)
	assert.Equal(t, "", out.DefValue)
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input string
		want  constants.OutputFormat
	}{
		{input: "console", want: constants.FormatConsole},
		{input: "json", want: constants.FormatJSON},
		{input: "html", want: constants.FormatHTML},
		{input: "HTML", want: constants.FormatHTML},
		{input: "Json", want: constants.FormatJSON},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parseFormat(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseFormat_RejectsUnknownFormat(t *testing.T) {
	_, err := parseFormat("xml")

	testutil.AssertAppErrorCode(t, err, apperrors.ErrCodeInvalidInput)
	assert.Contains(t, err.Error(), "console, json, html")
}
