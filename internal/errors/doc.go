// Package errors provides typed errors with exit codes for micabox.
//
// # Error Types
//
// MicaboxError is the base error type that wraps an error with an exit code:
//
//	type MicaboxError struct {
//	    Code    int    // Exit code
//	    Message string // User-facing message
//	    Cause   error  // Wrapped error
//	}
//
// # Exit Codes
//
// Defined exit codes for different error categories:
//
//	ExitSuccess            = 0  // Success
//	ExitGeneralError       = 1  // General/unknown errors
//	ExitFileNotFound       = 2  // Descriptor path does not resolve
//	ExitMalformedConfig    = 3  // Descriptor cannot be parsed
//	ExitInvalidPortSpec    = 4  // Port out of range or bad bind address
//	ExitDelegationFailure  = 5  // Orchestrator failed with unknown code
//	ExitOrchestratorAbsent = 6  // Orchestrator binary not installed
//
// A DelegationFailure carries the external orchestrator's own exit code,
// so the process exits with whatever code the orchestrator produced.
//
// # Error Constructors
//
// Use the provided constructors for consistent error creation:
//
//	errors.FileNotFound("machines/default.toml")
//	errors.MalformedConfig("box is required", nil)
//	errors.InvalidPortSpec("forwarded_port 2: host port 70000 out of range", err)
//	errors.DelegationFailure("up", 1, stderr, err)
//
// # Extracting Exit Codes
//
// Use GetExitCode to extract the exit code from an error chain:
//
//	if err != nil {
//	    os.Exit(errors.GetExitCode(err))
//	}
package errors
