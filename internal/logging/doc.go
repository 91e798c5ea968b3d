// Package logging provides logging utilities for omnihost-ctl.
//
// This package provides two categories of output:
//   - Debug logging: Structured logs for debugging (via slog)
//   - User output: Formatted messages for end users
//
// # Debug Logging
//
// Debug logs are written using slog and controlled by verbosity settings:
//
//	logging.Debug("saving config", "path", path)
//	logging.Warn("config file corrupt", "path", path, "error", err)
//
// # User Output
//
// User-facing messages are formatted with status indicators:
//
//	logging.UserInfo("No groups defined yet")
//	logging.UserSuccess("Default server set to %s", server)
//	logging.UserWarning("Config file was corrupt; starting from defaults")
//	logging.UserError("Failed to import profile: %v", err)
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
