package errors

import (
	"errors"
	"fmt"
)

// Exit codes for omnihost-ctl
const (
	ExitSuccess       = 0
	ExitGeneralError  = 1
	ExitGroupNotFound = 2
	ExitAliasNotFound = 3
	ExitConfigError   = 4
	ExitProfileError  = 5
)

// OmniError is the base error type for omnihost-ctl
type OmniError struct {
	Code    int
	Message string
	Cause   error
}

func (e *OmniError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *OmniError) Unwrap() error {
	return e.Cause
}

// ExitCode returns the exit code for this error
func (e *OmniError) ExitCode() int {
	return e.Code
}

// New creates a new OmniError
func New(code int, message string) *OmniError {
	return &OmniError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with an OmniError
func Wrap(code int, message string, cause error) *OmniError {
	return &OmniError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Common error constructors

// GroupNotFound returns an error for a missing server group
func GroupNotFound(name string) *OmniError {
	return New(ExitGroupNotFound, fmt.Sprintf("group not found: %s", name))
}

// AliasNotFound returns an error for a missing alias
func AliasNotFound(name string) *OmniError {
	return New(ExitAliasNotFound, fmt.Sprintf("alias not found: %s", name))
}

// CommandAliasNotFound returns an error for a missing command alias
func CommandAliasNotFound(name string) *OmniError {
	return New(ExitAliasNotFound, fmt.Sprintf("command alias not found: %s", name))
}

// ConfigError returns an error for configuration load/save failures
func ConfigError(message string, cause error) *OmniError {
	return Wrap(ExitConfigError, message, cause)
}

// ProfileError returns an error for profile operations
func ProfileError(op string, cause error) *OmniError {
	return Wrap(ExitProfileError, fmt.Sprintf("profile %s failed", op), cause)
}

// ValidationError returns an error for input validation failures
func ValidationError(message string) *OmniError {
	return New(ExitGeneralError, message)
}

// GetExitCode extracts the exit code from an error
func GetExitCode(err error) int {
	var omniErr *OmniError
	if errors.As(err, &omniErr) {
		return omniErr.ExitCode()
	}
	return ExitGeneralError
}
