package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestOmniError_Error(t *testing.T) {
	tests := []struct {
		name    string
		err     *OmniError
		wantMsg string
	}{
		{
			name:    "without cause",
			err:     New(ExitGeneralError, "something went wrong"),
			wantMsg: "something went wrong",
		},
		{
			name:    "with cause",
			err:     Wrap(ExitConfigError, "failed to save config", fmt.Errorf("disk full")),
			wantMsg: "failed to save config: disk full",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", got, tt.wantMsg)
			}
		})
	}
}

func TestOmniError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("root cause")
	err := Wrap(ExitGeneralError, "wrapped", cause)

	if unwrapped := err.Unwrap(); unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}

	errNoCause := New(ExitGeneralError, "no cause")
	if unwrapped := errNoCause.Unwrap(); unwrapped != nil {
		t.Errorf("Unwrap() = %v, want nil", unwrapped)
	}
}

func TestGetExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"group not found", GroupNotFound("web"), ExitGroupNotFound},
		{"alias not found", AliasNotFound("w1"), ExitAliasNotFound},
		{"command alias not found", CommandAliasNotFound("deploy"), ExitAliasNotFound},
		{"config error", ConfigError("failed to load config", fmt.Errorf("io")), ExitConfigError},
		{"profile error", ProfileError("import", fmt.Errorf("parse")), ExitProfileError},
		{"validation error", ValidationError("bad name"), ExitGeneralError},
		{"plain error", fmt.Errorf("plain"), ExitGeneralError},
		{"wrapped omni error", fmt.Errorf("outer: %w", GroupNotFound("db")), ExitGroupNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetExitCode(tt.err); got != tt.want {
				t.Errorf("GetExitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestErrorsAs(t *testing.T) {
	err := fmt.Errorf("context: %w", ConfigError("load failed", nil))

	var omniErr *OmniError
	if !errors.As(err, &omniErr) {
		t.Fatal("errors.As failed to find OmniError")
	}
	if omniErr.Code != ExitConfigError {
		t.Errorf("Code = %d, want %d", omniErr.Code, ExitConfigError)
	}
}
