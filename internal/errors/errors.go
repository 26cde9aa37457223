package errors

import (
	"errors"
	"fmt"
)

// Exit codes for micabox
const (
	ExitSuccess            = 0
	ExitGeneralError       = 1
	ExitFileNotFound       = 2
	ExitMalformedConfig    = 3
	ExitInvalidPortSpec    = 4
	ExitDelegationFailure  = 5
	ExitOrchestratorAbsent = 6
)

// MicaboxError is the base error type for micabox
type MicaboxError struct {
	Code    int
	Message string
	Cause   error
}

func (e *MicaboxError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *MicaboxError) Unwrap() error {
	return e.Cause
}

// ExitCode returns the exit code for this error
func (e *MicaboxError) ExitCode() int {
	return e.Code
}

// New creates a new MicaboxError
func New(code int, message string) *MicaboxError {
	return &MicaboxError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with a MicaboxError
func Wrap(code int, message string, cause error) *MicaboxError {
	return &MicaboxError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Common error constructors

// FileNotFound returns an error for a descriptor path that does not resolve
func FileNotFound(path string) *MicaboxError {
	return New(ExitFileNotFound, fmt.Sprintf("descriptor not found: %s", path))
}

// MalformedConfig returns an error for a descriptor that cannot be parsed
// or is structurally invalid
func MalformedConfig(message string, cause error) *MicaboxError {
	return Wrap(ExitMalformedConfig, message, cause)
}

// InvalidPortSpec returns an error for an out-of-range port number or a
// bind address that is not an IP literal
func InvalidPortSpec(message string, cause error) *MicaboxError {
	return Wrap(ExitInvalidPortSpec, message, cause)
}

// DelegationFailure returns an error for a non-zero exit from the external
// orchestrator. The orchestrator's own exit code is propagated unchanged;
// captured stderr is carried in the message verbatim.
func DelegationFailure(op string, exitCode int, stderr string, cause error) *MicaboxError {
	code := exitCode
	if code == 0 {
		code = ExitDelegationFailure
	}
	message := fmt.Sprintf("orchestrator %s failed (exit %d)", op, exitCode)
	if stderr != "" {
		message = fmt.Sprintf("%s: %s", message, stderr)
	}
	return Wrap(code, message, cause)
}

// OrchestratorAbsent returns an error when no orchestrator binary is found
func OrchestratorAbsent(cause error) *MicaboxError {
	return Wrap(ExitOrchestratorAbsent, "no virtualization orchestrator available", cause)
}

// ValidationError returns an error for input validation failures
func ValidationError(message string) *MicaboxError {
	return New(ExitGeneralError, message)
}

// GetExitCode extracts the exit code from an error
func GetExitCode(err error) int {
	var mbErr *MicaboxError
	if errors.As(err, &mbErr) {
		return mbErr.ExitCode()
	}
	return ExitGeneralError
}

// Is checks if an error is of a specific type
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target any) bool {
	return errors.As(err, target)
}
