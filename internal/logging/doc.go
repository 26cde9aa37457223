// Package logging provides logging utilities for micabox.
//
// This package provides two categories of output:
//   - Debug logging: Structured logs for debugging (via slog)
//   - User output: Formatted messages for end users
//
// # Debug Logging
//
// Debug logs are written using slog and controlled by verbosity settings:
//
//	logging.Debug("loading descriptor", "machine", name, "path", path)
//	logging.Warn("descriptor has unknown keys", "keys", keys)
//
// # User Output
//
// User-facing messages are formatted with status indicators:
//
//	logging.UserInfo("Bringing up machine %s...", name)
//	logging.UserSuccess("Machine %s is up", name)
//	logging.UserWarning("no provisioning steps defined")
//	logging.UserError("Failed to load descriptor: %v", err)
//
// Output destinations:
//   - UserInfo, UserSuccess: stdout
//   - UserWarning, UserError: stderr
//
// # Status Indicators
//
// User functions prepend status indicators:
//   - ℹ (info)
//   - ✓ (success)
//   - ⚠ (warning)
//   - ✗ (error)
package logging
