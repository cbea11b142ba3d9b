package logging

import (
	"io"
	"log/slog"
	"os"
)

// Logger is the shared structured logger. It always writes to stderr by
// default: hook-invoked commands have their stdout consumed by the host,
// so diagnostics must stay off that stream.
var Logger *slog.Logger

// Verbose mirrors the --verbose flag once Setup has run.
var Verbose bool

func init() {
	Logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
}

// Setup reconfigures the shared logger. verbose lowers the level to
// debug, jsonOutput switches to a JSON handler for machine consumers,
// and w overrides the destination (nil keeps stderr).
func Setup(verbose bool, jsonOutput bool, w io.Writer) {
	Verbose = verbose

	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if verbose {
		opts.Level = slog.LevelDebug
	}
	if w == nil {
		w = os.Stderr
	}

	if jsonOutput {
		Logger = slog.New(slog.NewJSONHandler(w, opts))
	} else {
		Logger = slog.New(slog.NewTextHandler(w, opts))
	}
}

// Package-level helpers delegating to Logger.

func Debug(msg string, args ...any) { Logger.Debug(msg, args...) }
func Info(msg string, args ...any)  { Logger.Info(msg, args...) }
func Warn(msg string, args ...any)  { Logger.Warn(msg, args...) }
func Error(msg string, args ...any) { Logger.Error(msg, args...) }

// With returns a logger carrying additional attributes.
func With(args ...any) *slog.Logger {
	return Logger.With(args...)
}
