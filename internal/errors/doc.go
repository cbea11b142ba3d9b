// Package errors provides typed errors with exit codes for hookctl.
//
// # Error Types
//
// HookError is the base error type that wraps an error with an exit code:
//
//	type HookError struct {
//	    Code    int    // Exit code
//	    Message string // User-facing message
//	    Cause   error  // Wrapped error
//	}
//
// # Exit Codes
//
// Defined exit codes for different error categories:
//
//	ExitSuccess      = 0  // Success
//	ExitGeneralError = 1  // General/unknown errors
//	ExitConfigError  = 2  // Configuration error
//	ExitEventError   = 3  // Malformed hook event
//	ExitSessionError = 4  // Session cache operation failed
//
// Exit codes only apply to commands a human runs directly. Hook-invoked
// commands (track, and skills setup when driven by the host) always exit
// zero so a broken hook can never block the assistant's workflow; their
// errors are logged and swallowed at the command boundary.
//
// # Extracting Exit Codes
//
// Use GetExitCode to extract the exit code from an error chain:
//
//	if err != nil {
//	    os.Exit(errors.GetExitCode(err))
//	}
package errors
