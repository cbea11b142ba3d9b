package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestHookError_Error(t *testing.T) {
	err := New(ExitConfigError, "bad config")
	if err.Error() != "bad config" {
		t.Errorf("expected 'bad config', got %q", err.Error())
	}

	wrapped := Wrap(ExitSessionError, "session write failed", fmt.Errorf("disk full"))
	if wrapped.Error() != "session write failed: disk full" {
		t.Errorf("unexpected message: %q", wrapped.Error())
	}
}

func TestHookError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("underlying")
	err := Wrap(ExitEventError, "event decode failed", cause)

	if !stderrors.Is(err, cause) {
		t.Error("expected errors.Is to find the cause")
	}
}

func TestGetExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"config error", ConfigError("bad", nil), ExitConfigError},
		{"event error", EventError("bad", nil), ExitEventError},
		{"session error", SessionError("append", nil), ExitSessionError},
		{"validation error", ValidationError("bad input"), ExitGeneralError},
		{"plain error", fmt.Errorf("plain"), ExitGeneralError},
		{"wrapped hook error", fmt.Errorf("outer: %w", ConfigError("inner", nil)), ExitConfigError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetExitCode(tt.err); got != tt.want {
				t.Errorf("GetExitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}
