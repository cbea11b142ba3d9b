package logging

import (
	"fmt"
	"os"
)

// User-facing output, distinct from the structured logs. Info and
// success lines go to stdout where the hook host (or a human running
// the CLI) reads them; warnings and errors go to stderr so they are
// never mistaken for command output.

// UserInfo prints an informational message to stdout.
func UserInfo(format string, args ...any) {
	fmt.Fprintf(os.Stdout, "ℹ "+format+"\n", args...)
}

// UserSuccess prints a success message to stdout.
func UserSuccess(format string, args ...any) {
	fmt.Fprintf(os.Stdout, "✓ "+format+"\n", args...)
}

// UserWarning prints a warning to stderr.
func UserWarning(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "⚠ "+format+"\n", args...)
}

// UserError prints an error to stderr.
func UserError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "✗ "+format+"\n", args...)
}
