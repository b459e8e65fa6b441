package verify

import (
	"os"
	"path/filepath"
	"testing"

	apperrors "github.com/catherinevee/terraform-gcp-sub000/internal/errors"
	"github.com/catherinevee/terraform-gcp-sub000/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultExpectations(t *testing.T) {
	expect := DefaultExpectations()

	assert.Equal(t, "REGIONAL", expect.VPCRoutingMode)
	assert.Equal(t, 2, expect.MinSubnets)
	assert.True(t, expect.RequireNAT)
	assert.True(t, expect.RequireSQLBackups)
	assert.True(t, expect.BootCanaryVM)
	assert.True(t, expect.RequireBackupBucket)
}

func TestLoadExpectations_OverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "expectations.yaml")
	overlay := "min_subnets: 4\nboot_canary_vm: false\nmin_clusters: 0\n"
	require.NoError(t, os.WriteFile(path, []byte(overlay), 0o600))

	expect, err := LoadExpectations(path)
	require.NoError(t, err)

	assert.Equal(t, 4, expect.MinSubnets)
	assert.False(t, expect.BootCanaryVM)
	assert.Equal(t, 0, expect.MinClusters)

	// Keys the overlay does not mention keep their defaults.
	assert.Equal(t, "REGIONAL", expect.VPCRoutingMode)
	assert.Equal(t, 1, expect.MinKeyRings)
	assert.True(t, expect.RequireNAT)
}

func TestLoadExpectations_MissingFile(t *testing.T) {
	_, err := LoadExpectations(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	testutil.AssertAppErrorCode(t, err, apperrors.ErrCodeConfig)
}

func TestLoadExpectations_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "expectations.yaml")
	require.NoError(t, os.WriteFile(path, []byte("min_subnets: [not a number"), 0o600))

	_, err := LoadExpectations(path)
	require.Error(t, err)
	testutil.AssertAppErrorCode(t, err, apperrors.ErrCodeConfig)
}
