package cmd

import (
	"testing"

	apperrors "github.com/catherinevee/terraform-gcp-sub000/internal/errors"

	"github.com/catherinevee/terraform-gcp-sub000/internal/phase"
	"github.com/catherinevee/terraform-gcp-sub000/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyCommand_Flags(t *testing.T) {
	expectations := verifyCmd.Flags().Lookup("expectations")
	require.NotNil(t, expectations)
	assert.Equal(t, "", expectations.DefValue)
}

func TestResolvePhases_All(t *testing.T) {
	phases, all, err := resolvePhases("all")

	require.NoError(t, err)
	assert.True(t, all)
	assert.Len(t, phases, phase.Count)
	assert.Equal(t, phase.Foundation, phases[0])
	assert.Equal(t, phase.Operations, phases[len(phases)-1])
}

func TestResolvePhases_AllIsCaseInsensitive(t *testing.T) {
	phases, all, err := resolvePhases("ALL")

	require.NoError(t, err)
	assert.True(t, all)
	assert.Len(t, phases, phase.Count)
}

func TestResolvePhases_SinglePhase(t *testing.T) {
	phases, all, err := resolvePhases("3")

	require.NoError(t, err)
	assert.False(t, all)
	require.Len(t, phases, 1)
	assert.Equal(t, phase.Data, phases[0])
}

func TestResolvePhases_RejectsOutOfRange(t *testing.T) {
	_, _, err := resolvePhases("9")

	testutil.AssertAppErrorCode(t, err, apperrors.ErrCodeInvalidInput)
}

func TestResolvePhases_RejectsGarbage(t *testing.T) {
	_, _, err := resolvePhases("networking-please")

	testutil.AssertAppErrorCode(t, err, apperrors.ErrCodeInvalidInput)
}
