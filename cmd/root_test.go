package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ruffyt/ruffyt/pkg/testutil"
)

// TestExecuteTestUnknownCommand tests that an unknown command errors.
func TestExecuteTestUnknownCommand(t *testing.T) {
	rootCmd.SetArgs([]string{"no-such-command"})
	err := ExecuteTest()
	assert.Error(t, err)
}

// TestRootCommandShowsHelp tests that the bare root command prints help.
func TestRootCommandShowsHelp(t *testing.T) {
	rootCmd.SetArgs([]string{})
	var err error
	stdout := testutil.CaptureStdout(t, func() {
		err = ExecuteTest()
	})

	require.NoError(t, err)
	assert.Contains(t, stdout, "update-packages")
	assert.Contains(t, stdout, "serve")
}

// TestExecuteMapsExitCode tests that Execute exits with the error's code.
func TestExecuteMapsExitCode(t *testing.T) {
	originalExit := exitFunc
	var code int
	exitFunc = func(c int) { code = c }
	t.Cleanup(func() { exitFunc = originalExit })

	rootCmd.SetArgs([]string{"no-such-command"})
	Execute()

	assert.NotZero(t, code)
}
