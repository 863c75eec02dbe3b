package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/primkit/pkg/numeric"
)

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand(numeric.DefaultConfig())
	require.NotNil(t, cmd)
	assert.Equal(t, "primkit", cmd.Use)
	assert.Contains(t, cmd.Long, `"--"`)
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand(numeric.DefaultConfig())
	commands := []string{"int", "safe-int", "clamp", "sum", "escape"}

	for _, cmdName := range commands {
		t.Run(cmdName, func(t *testing.T) {
			subCmd, _, err := cmd.Find([]string{cmdName})
			require.NoError(t, err, "Command %s should exist", cmdName)
			require.NotNil(t, subCmd)
			assert.Equal(t, cmdName, subCmd.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand(numeric.DefaultConfig())

	verboseFlag := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verboseFlag)
	assert.Equal(t, "v", verboseFlag.Shorthand)
	assert.Equal(t, "false", verboseFlag.DefValue)

	formatFlag := cmd.PersistentFlags().Lookup("format")
	require.NotNil(t, formatFlag)
	assert.Equal(t, "text", formatFlag.DefValue)
}

func TestFlagDefaultsFromConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cmd := NewRootCommand(numeric.DefaultConfig())

		sumCmd, _, err := cmd.Find([]string{"sum"})
		require.NoError(t, err)
		assert.Equal(t, "true", sumCmd.Flags().Lookup("ignore-nan").DefValue)
		assert.Equal(t, "true", sumCmd.Flags().Lookup("ignore-missing").DefValue)

		safeCmd, _, err := cmd.Find([]string{"safe-int"})
		require.NoError(t, err)
		assert.Equal(t, "true", safeCmd.Flags().Lookup("normalize-negative-zero").DefValue)
	})

	t.Run("overridden", func(t *testing.T) {
		cmd := NewRootCommand(numeric.Config{})

		sumCmd, _, err := cmd.Find([]string{"sum"})
		require.NoError(t, err)
		assert.Equal(t, "false", sumCmd.Flags().Lookup("ignore-nan").DefValue)
		assert.Equal(t, "false", sumCmd.Flags().Lookup("ignore-missing").DefValue)

		safeCmd, _, err := cmd.Find([]string{"safe-int"})
		require.NoError(t, err)
		assert.Equal(t, "false", safeCmd.Flags().Lookup("normalize-negative-zero").DefValue)
	})
}

func TestInvalidFormat(t *testing.T) {
	res := execute(t, "--format", "xml", "int", "1")

	require.Error(t, res.err)
	assert.ErrorIs(t, res.err, ErrInvalidFormat)
	assert.Equal(t, ExitCommandError, GetExitCode(res.err))
	assert.Empty(t, res.stdout)
}

func TestVerboseLogsToStderr(t *testing.T) {
	res := execute(t, "--verbose", "int", "12a")

	require.Error(t, res.err)
	assert.Contains(t, res.stderr, "input rejected")
	assert.Contains(t, res.stderr, "command=int")
	assert.Contains(t, res.stderr, "service=primkit")
	assert.Empty(t, res.stdout)
}

func TestQuietByDefault(t *testing.T) {
	res := execute(t, "int", "42")

	require.NoError(t, res.err)
	assert.Equal(t, "42\n", res.stdout)
	assert.Empty(t, res.stderr)
}

func TestWrongArgumentCount(t *testing.T) {
	res := execute(t, "clamp", "1", "2")

	require.Error(t, res.err)
	assert.Equal(t, ExitCommandError, GetExitCode(res.err))
}
