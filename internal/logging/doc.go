// Package logging provides logging utilities for hookctl.
//
// This package provides two categories of output:
//   - Debug logging: Structured logs for debugging (via slog)
//   - User output: Formatted messages for end users
//
// The split matters for hook-invoked commands: the hook host reads
// stdout, so structured logs and warnings stay on stderr.
//
// # Debug Logging
//
// Debug logs are written using slog and controlled by verbosity settings:
//
//	logging.Debug("analyzing project", "path", root)
//	logging.Warn("manifest unreadable", "path", manifest, "error", err)
//
// # User Output
//
// User-facing messages are formatted with status indicators:
//
//	logging.UserInfo("Scanning %s...", root)
//	logging.UserSuccess("Skill rules written to %s", path)
//	logging.UserWarning("Skill rules are stale")
//	logging.UserError("Failed to read event: %v", err)
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
