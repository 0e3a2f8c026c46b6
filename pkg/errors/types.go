// Package errors defines the error taxonomy and exit codes for ruffyt.
// Fatal errors carry an exit code so scripts can distinguish failure modes;
// the two domain error types mark where a failure originated (the external
// package-index tool or the manifest file itself).
package errors

import (
	"errors"
	"fmt"
)

// Exit codes for scripting integration.
const (
	// ExitSuccess indicates the command completed successfully,
	// including the "nothing to update" case.
	ExitSuccess = 0

	// ExitFailure indicates the operation failed: the external tool
	// could not be run, its output could not be parsed, or the manifest
	// could not be read. No file is modified on this path.
	ExitFailure = 2

	// ExitConfigError indicates a configuration or validation error.
	// The command could not proceed at all.
	ExitConfigError = 3
)

// ExitError represents a command termination with a specific exit code.
//
// Use this error when a command needs to exit with a non-zero status
// while providing context about what went wrong.
//
// Fields:
//   - Code: Exit code (use ExitFailure or ExitConfigError)
//   - Message: Human-readable error message
//   - Err: Underlying error that caused this exit, may be nil
type ExitError struct {
	// Code is the exit code for the command.
	// Standard codes: 0=success, 2=failure, 3=config error.
	Code int

	// Message is a human-readable description of why the command failed.
	Message string

	// Err is the underlying error that caused this exit.
	// May be nil if no underlying error exists.
	Err error
}

// Error implements the error interface.
//
// Returns the Message field if set, otherwise returns the underlying
// error's message, or a default message with the exit code.
func (e *ExitError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit code %d", e.Code)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates an ExitError with the given code and underlying error.
//
// Parameters:
//   - code: Exit code (use ExitFailure or ExitConfigError)
//   - err: Underlying error, may be nil
//
// Returns:
//   - *ExitError: New exit error
func NewExitError(code int, err error) *ExitError {
	return &ExitError{Code: code, Err: err}
}

// NewExitErrorf creates an ExitError with the given code and formatted message.
//
// Parameters:
//   - code: Exit code
//   - format: Printf-style format string
//   - args: Format arguments
//
// Returns:
//   - *ExitError: New exit error with formatted message
func NewExitErrorf(code int, format string, args ...interface{}) *ExitError {
	return &ExitError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// GetExitCode extracts the exit code from an error.
//
// If err is nil, returns ExitSuccess.
// If err is an ExitError, returns its code.
// Otherwise returns ExitFailure.
//
// Parameters:
//   - err: The error to extract code from
//
// Returns:
//   - int: Exit code
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	return ExitFailure
}

// ToolError indicates the external package-index tool failed or produced
// unparseable output.
//
// The updater never retries a ToolError; it is surfaced to the operator
// and the manifest is left untouched.
//
// Fields:
//   - Command: The command line that was executed
//   - Err: The underlying execution or parse error
type ToolError struct {
	// Command is the external command that failed.
	Command string

	// Err is the underlying error from execution or output parsing.
	Err error
}

// Error implements the error interface.
func (e *ToolError) Error() string {
	if e.Command != "" {
		return fmt.Sprintf("outdated check failed (%s): %v", e.Command, e.Err)
	}
	return fmt.Sprintf("outdated check failed: %v", e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *ToolError) Unwrap() error {
	return e.Err
}

// NewToolError creates a ToolError for the given command and cause.
//
// Parameters:
//   - command: The external command line that failed
//   - err: Underlying error
//
// Returns:
//   - *ToolError: New tool error
func NewToolError(command string, err error) *ToolError {
	return &ToolError{Command: command, Err: err}
}

// IsToolError reports whether err is or wraps a ToolError.
//
// Parameters:
//   - err: The error to check
//
// Returns:
//   - bool: true if err is a ToolError
func IsToolError(err error) bool {
	var te *ToolError
	return errors.As(err, &te)
}

// ManifestError indicates the manifest file could not be read, or its
// dependency block could not be located or parsed.
//
// Fields:
//   - Path: Path to the manifest file
//   - Reason: Why the manifest could not be processed
//   - Err: Underlying error, may be nil
type ManifestError struct {
	// Path is the manifest file path.
	Path string

	// Reason explains what was missing or malformed.
	Reason string

	// Err is the underlying error, may be nil.
	Err error
}

// Error implements the error interface.
func (e *ManifestError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Path, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Reason)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *ManifestError) Unwrap() error {
	return e.Err
}

// NewManifestError creates a ManifestError with the given details.
//
// Parameters:
//   - path: Manifest file path
//   - reason: Description of the problem
//   - err: Underlying error, may be nil
//
// Returns:
//   - *ManifestError: New manifest error
func NewManifestError(path, reason string, err error) *ManifestError {
	return &ManifestError{Path: path, Reason: reason, Err: err}
}

// IsManifestError reports whether err is or wraps a ManifestError.
//
// Parameters:
//   - err: The error to check
//
// Returns:
//   - bool: true if err is a ManifestError
func IsManifestError(err error) bool {
	var me *ManifestError
	return errors.As(err, &me)
}
