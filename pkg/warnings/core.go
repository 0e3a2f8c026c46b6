// Package warnings routes non-fatal warning messages to a configurable
// writer. Warnings never abort a run; they are collected or printed so the
// operator can act on them afterwards.
package warnings

import (
	"fmt"
	"io"
	"os"
	"sync"
)

var (
	mu         sync.RWMutex
	warnWriter io.Writer = os.Stderr
)

// Warnf writes formatted warning messages to the configured warning writer.
//
// Parameters:
//   - format: Printf-style format string for the warning message
//   - args: Variadic arguments to format into the string
func Warnf(format string, args ...any) {
	mu.RLock()
	w := warnWriter
	mu.RUnlock()
	_, _ = fmt.Fprintf(w, format, args...)
}

// WarningWriter returns the currently configured warning writer.
//
// Returns:
//   - io.Writer: The currently configured writer for warning messages
func WarningWriter() io.Writer {
	mu.RLock()
	defer mu.RUnlock()
	return warnWriter
}

// SetWarningWriter replaces the warning writer and returns a restore function.
//
// The returned function restores the previous writer; callers should defer
// it so the global writer does not leak between tests.
//
// Parameters:
//   - w: The writer to route warnings to
//
// Returns:
//   - func(): Restore function that reinstates the previous writer
func SetWarningWriter(w io.Writer) func() {
	mu.Lock()
	prev := warnWriter
	warnWriter = w
	mu.Unlock()

	return func() {
		mu.Lock()
		warnWriter = prev
		mu.Unlock()
	}
}
