// Package logger provides verbose logging for the chemeq CLI.
// When verbose mode is enabled via the --verbose flag, debug messages
// are printed to stderr to show how an equation moves through parsing,
// matrix construction and elimination. Trace mode (--trace) additionally
// prints every elimination step.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
)

var (
	mu      sync.RWMutex
	verbose bool
	trace   bool
	output  io.Writer = os.Stderr
)

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetTrace enables or disables step tracing. Tracing implies verbose.
func SetTrace(v bool) {
	mu.Lock()
	defer mu.Unlock()
	trace = v
	if v {
		verbose = true
	}
}

// IsTrace returns true if step tracing is enabled.
func IsTrace() bool {
	mu.RLock()
	defer mu.RUnlock()
	return trace
}

// SetOutput sets the output writer for verbose logs.
// Defaults to os.Stderr. Useful for testing.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

// Debug prints a message if verbose mode is enabled.
func Debug(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fmt.Fprintf(output, "[DEBUG] "+format+"\n", args...)
	}
}

// Trace prints a message if trace mode is enabled.
func Trace(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if trace {
		fmt.Fprintf(output, "[TRACE] "+format+"\n", args...)
	}
}

// Section prints a section header if verbose mode is enabled.
func Section(name string) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fmt.Fprintf(output, "\n=== %s ===\n", name)
	}
}

// Info prints an informational message if verbose mode is enabled.
func Info(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fmt.Fprintf(output, "[INFO] "+format+"\n", args...)
	}
}

// Warn prints a warning message if verbose mode is enabled.
func Warn(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fmt.Fprintf(output, "[WARN] "+format+"\n", args...)
	}
}
