// Package verbose provides opt-in debug logging for the CLI.
// Messages are suppressed unless Enable has been called (normally via the
// --verbose flag), and go to a configurable writer so tests can capture them.
package verbose

import (
	"fmt"
	"io"
	"os"
	"sync"
)

var (
	mu      sync.RWMutex
	enabled bool
	writer  io.Writer = os.Stderr
)

// Enable turns on verbose logging and allows debug messages to be printed.
func Enable() {
	mu.Lock()
	defer mu.Unlock()
	enabled = true
}

// Disable turns off verbose logging and prevents debug messages from
// being printed.
func Disable() {
	mu.Lock()
	defer mu.Unlock()
	enabled = false
}

// IsEnabled returns whether verbose logging is currently enabled.
//
// Returns:
//   - bool: true if verbose output is enabled
func IsEnabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	return enabled
}

// SetWriter replaces the verbose output writer and returns a restore function.
//
// Parameters:
//   - w: The writer to route verbose output to
//
// Returns:
//   - func(): Restore function that reinstates the previous writer
func SetWriter(w io.Writer) func() {
	mu.Lock()
	prev := writer
	writer = w
	mu.Unlock()

	return func() {
		mu.Lock()
		writer = prev
		mu.Unlock()
	}
}

// Infof writes a formatted debug message when verbose logging is enabled.
//
// A trailing newline is appended. When verbose logging is disabled the
// call is a no-op.
//
// Parameters:
//   - format: Printf-style format string
//   - args: Format arguments
func Infof(format string, args ...any) {
	mu.RLock()
	on := enabled
	w := writer
	mu.RUnlock()

	if !on {
		return
	}
	_, _ = fmt.Fprintf(w, format+"\n", args...)
}

// Info writes a debug message when verbose logging is enabled.
//
// Parameters:
//   - msg: Message to print
func Info(msg string) {
	Infof("%s", msg)
}
