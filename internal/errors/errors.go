package errors

import (
	"errors"
	"fmt"
)

// Exit codes for hookctl
const (
	ExitSuccess      = 0
	ExitGeneralError = 1
	ExitConfigError  = 2
	ExitEventError   = 3
	ExitSessionError = 4
)

// HookError is the base error type for hookctl
type HookError struct {
	Code    int
	Message string
	Cause   error
}

func (e *HookError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *HookError) Unwrap() error {
	return e.Cause
}

// ExitCode returns the exit code for this error
func (e *HookError) ExitCode() int {
	return e.Code
}

// New creates a new HookError
func New(code int, message string) *HookError {
	return &HookError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with a HookError
func Wrap(code int, message string, cause error) *HookError {
	return &HookError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Common error constructors

// ConfigError returns an error for configuration issues
func ConfigError(message string, cause error) *HookError {
	return Wrap(ExitConfigError, message, cause)
}

// EventError returns an error for malformed hook events
func EventError(message string, cause error) *HookError {
	return Wrap(ExitEventError, message, cause)
}

// SessionError returns an error for session cache operations
func SessionError(op string, cause error) *HookError {
	return Wrap(ExitSessionError, fmt.Sprintf("session %s failed", op), cause)
}

// ValidationError returns an error for input validation failures
func ValidationError(message string) *HookError {
	return New(ExitGeneralError, message)
}

// GetExitCode extracts the exit code from an error
func GetExitCode(err error) int {
	var hookErr *HookError
	if errors.As(err, &hookErr) {
		return hookErr.ExitCode()
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
