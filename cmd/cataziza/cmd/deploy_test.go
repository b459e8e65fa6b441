package cmd

import (
	"strings"
	"testing"

	"github.com/catherinevee/terraform-gcp-sub000/internal/phase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeployCommand_Flags(t *testing.T) {
	autoApprove := deployCmd.Flags().Lookup("auto-approve")
	require.NotNil(t, autoApprove)
	assert.Equal(t, "a", autoApprove.Shorthand)
	assert.Equal(t, "false", autoApprove.DefValue)

	dryRun := deployCmd.Flags().Lookup("dry-run")
	require.NotNil(t, dryRun)
	assert.Equal(t, "d", dryRun.Shorthand)
	assert.Equal(t, "false", dryRun.DefValue)

	require.NotNil(t, deployCmd.Flags().Lookup("skip-verify"))
	require.NotNil(t, deployCmd.Flags().Lookup("var-file"))
}

func TestDeployCommand_RequiresExactlyOnePhaseArg(t *testing.T) {
	require.Error(t, deployCmd.Args(deployCmd, []string{}))
	require.Error(t, deployCmd.Args(deployCmd, []string{"1", "2"}))
	require.NoError(t, deployCmd.Args(deployCmd, []string{"1"}))
}

func TestPhaseUsage_ListsEveryPhase(t *testing.T) {
	usage := phaseUsage()

	lines := strings.Split(strings.TrimRight(usage, "\n"), "\n")
	assert.Len(t, lines, phase.Count)

	for _, p := range phase.All() {
		assert.Contains(t, usage, p.Name())
	}
}

func TestDeployCommand_HelpNamesThePhases(t *testing.T) {
	assert.Contains(t, deployCmd.Long, "networking")
	assert.Contains(t, deployCmd.Long, "observability")
}
