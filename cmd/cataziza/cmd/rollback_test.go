package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRollbackCommand_Flags(t *testing.T) {
	force := rollbackCmd.Flags().Lookup("force")
	require.NotNil(t, force)
	assert.Equal(t, "f", force.Shorthand)
	assert.Equal(t, "false", force.DefValue)

	noBackup := rollbackCmd.Flags().Lookup("no-backup")
	require.NotNil(t, noBackup)
	assert.Equal(t, "n", noBackup.Shorthand)
	assert.Equal(t, "false", noBackup.DefValue, "backups must be on unless declined")

	dryRun := rollbackCmd.Flags().Lookup("dry-run")
	require.NotNil(t, dryRun)
	assert.Equal(t, "d", dryRun.Shorthand)

	require.NotNil(t, rollbackCmd.Flags().Lookup("var-file"))
}

func TestRollbackCommand_RequiresExactlyOnePhaseArg(t *testing.T) {
	require.Error(t, rollbackCmd.Args(rollbackCmd, []string{}))
	require.Error(t, rollbackCmd.Args(rollbackCmd, []string{"6", "5"}))
	require.NoError(t, rollbackCmd.Args(rollbackCmd, []string{"6"}))
}
