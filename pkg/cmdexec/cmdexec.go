// Package cmdexec provides subprocess execution for ruffyt.
// It runs a single command line with optional environment variables,
// working directory, and timeout, and exposes the implementation behind a
// package-level variable so tests can substitute a stub.
package cmdexec

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/ruffyt/ruffyt/pkg/verbose"
)

// ExecuteFunc is the function signature for context-aware command execution.
//
// Parameters:
//   - ctx: Context for cancellation
//   - command: Command line to execute (program plus space-separated args)
//   - env: Additional environment variables to set for the command
//   - dir: Working directory for command execution (empty for inherited)
//   - timeoutSeconds: Maximum execution time in seconds (0 for no timeout)
//
// Returns:
//   - []byte: Captured stdout from the command
//   - error: Any error that occurred during execution
type ExecuteFunc func(ctx context.Context, command string, env map[string]string, dir string, timeoutSeconds int) ([]byte, error)

// Execute is the default command execution function.
//
// This variable holds the implementation used for command execution
// throughout the application. It can be replaced with a stub in tests.
var Execute ExecuteFunc = executeCommand

// executeCommand runs a single command line and captures its stdout.
//
// It performs the following operations:
//   - Step 1: Split the command line into program and arguments
//   - Step 2: Apply the timeout by deriving a deadline context
//   - Step 3: Configure environment and working directory
//   - Step 4: Run the command, capturing stdout and stderr separately
//
// Stderr from the child process is included in the returned error so the
// operator sees what the tool reported.
//
// Parameters:
//   - ctx: Context for cancellation
//   - command: Command line to execute
//   - env: Additional environment variables, merged over the process env
//   - dir: Working directory, empty to inherit
//   - timeoutSeconds: Maximum execution time in seconds, 0 for no timeout
//
// Returns:
//   - []byte: Captured stdout
//   - error: Execution failure, timeout, or empty command
func executeCommand(ctx context.Context, command string, env map[string]string, dir string, timeoutSeconds int) ([]byte, error) {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return nil, fmt.Errorf("no command provided")
	}

	if timeoutSeconds > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(timeoutSeconds)*time.Second)
		defer cancel()
	}

	verbose.Infof("Executing: %s (dir=%s, timeout=%ds)", command, dir, timeoutSeconds)

	cmd := exec.CommandContext(ctx, fields[0], fields[1:]...)
	cmd.Dir = dir
	cmd.Env = os.Environ()
	for key, value := range env {
		cmd.Env = append(cmd.Env, fmt.Sprintf("%s=%s", key, value))
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return stdout.Bytes(), fmt.Errorf("command timed out or was cancelled: %w", ctx.Err())
		}
		trimmed := strings.TrimSpace(stderr.String())
		if trimmed != "" {
			return stdout.Bytes(), fmt.Errorf("%w: %s", err, trimmed)
		}
		return stdout.Bytes(), err
	}

	return stdout.Bytes(), nil
}
