package infra

import (
	"context"
	"os"
	"testing"

	apperrors "github.com/catherinevee/terraform-gcp-sub000/internal/errors"
	"github.com/catherinevee/terraform-gcp-sub000/internal/gcp/gcptest"
	"github.com/catherinevee/terraform-gcp-sub000/internal/verify"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeploy_FailedVerificationIsAnErrorButRecordsApply(t *testing.T) {
	f := newFixture(t, happyRunner())
	// An empty project: the apply "succeeds" but the foundation suite finds
	// none of the resources it expects.
	f.driver.harness = verify.NewHarness(
		gcptest.EmptyClients(), f.driver.cfg, testExpectations(), f.driver.log)

	result, err := f.driver.Deploy(context.Background(), DeployOptions{Phase: 0, AutoApprove: true})

	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeVerification, apperrors.GetErrorCode(err))
	assert.True(t, result.Applied, "the apply itself went through and must be recorded")
	require.NotNil(t, result.Verification)
	assert.False(t, result.Verification.Passed())

	summaries := f.artifacts(t, "deployment-summary-phase-0-*.md")
	require.Len(t, summaries, 1, "the summary is still written when verification fails")
	data, err := os.ReadFile(summaries[0])
	require.NoError(t, err)
	assert.Contains(t, string(data), "## Verification")
}

func TestDeploy_SkipVerify(t *testing.T) {
	f := newFixture(t, happyRunner())
	f.driver.harness = verify.NewHarness(
		gcptest.EmptyClients(), f.driver.cfg, testExpectations(), f.driver.log)

	result, err := f.driver.Deploy(context.Background(),
		DeployOptions{Phase: 0, AutoApprove: true, SkipVerify: true})

	require.NoError(t, err)
	assert.True(t, result.Applied)
	assert.Nil(t, result.Verification)
}

// testExpectations disables the canary so the suite never polls.
func testExpectations() *verify.Expectations {
	expect := verify.DefaultExpectations()
	expect.BootCanaryVM = false
	return expect
}
