package logging

import (
	"fmt"
	"io"
	"os"
)

// User-facing output, separate from the structured debug logging. Info and
// success go to stdout; warnings and errors go to stderr.

var (
	userOut io.Writer = os.Stdout
	userErr io.Writer = os.Stderr
)

// SetUserOutput redirects user-facing output, for tests.
func SetUserOutput(out, err io.Writer) {
	userOut = out
	userErr = err
}

// ResetUserOutput restores user-facing output to stdout/stderr.
func ResetUserOutput() {
	userOut = os.Stdout
	userErr = os.Stderr
}

func userf(w io.Writer, prefix, format string, args ...interface{}) {
	fmt.Fprintf(w, prefix+" "+format+"\n", args...)
}

// UserInfo prints an info message to stdout.
func UserInfo(format string, args ...interface{}) {
	userf(userOut, "ℹ", format, args...)
}

// UserSuccess prints a success message to stdout.
func UserSuccess(format string, args ...interface{}) {
	userf(userOut, "✓", format, args...)
}

// UserWarning prints a warning message to stderr.
func UserWarning(format string, args ...interface{}) {
	userf(userErr, "⚠", format, args...)
}

// UserError prints an error message to stderr.
func UserError(format string, args ...interface{}) {
	userf(userErr, "✗", format, args...)
}
