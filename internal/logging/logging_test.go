package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestSetup_TextOutput(t *testing.T) {
	var buf bytes.Buffer
	Setup(false, false, &buf)

	Info("test message", "key", "value")

	output := buf.String()
	if !strings.Contains(output, "test message") {
		t.Errorf("Expected 'test message' in output, got: %s", output)
	}
	if strings.Contains(output, "{") {
		t.Errorf("Expected text output, got: %s", output)
	}
}

func TestSetup_JSONOutput(t *testing.T) {
	var buf bytes.Buffer
	Setup(false, true, &buf)

	Info("test message", "key", "value")

	output := buf.String()
	if !strings.Contains(output, "{") {
		t.Errorf("Expected JSON output, got: %s", output)
	}
	if !strings.Contains(output, "test message") {
		t.Errorf("Expected 'test message' in output, got: %s", output)
	}
}

func TestSetup_VerboseGate(t *testing.T) {
	tests := []struct {
		name       string
		verbose    bool
		wantLogged bool
	}{
		{"debug shown in verbose mode", true, true},
		{"debug hidden otherwise", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			Setup(tt.verbose, false, &buf)

			if Verbose != tt.verbose {
				t.Errorf("Verbose = %v, want %v", Verbose, tt.verbose)
			}

			Debug("debug message")

			got := strings.Contains(buf.String(), "debug message")
			if got != tt.wantLogged {
				t.Errorf("debug message logged = %v, want %v (output: %s)", got, tt.wantLogged, buf.String())
			}
		})
	}
}

func TestLevels(t *testing.T) {
	var buf bytes.Buffer
	Setup(false, false, &buf)

	Info("info record")
	Warn("warn record")
	Error("error record")

	output := buf.String()
	for _, want := range []string{"info record", "warn record", "error record"} {
		if !strings.Contains(output, want) {
			t.Errorf("Expected %q in output, got: %s", want, output)
		}
	}
}

func TestWith(t *testing.T) {
	var buf bytes.Buffer
	Setup(false, false, &buf)

	logger := With("component", "store")
	if logger == nil {
		t.Fatal("With() returned nil")
	}

	logger.Info("with test")

	output := buf.String()
	if !strings.Contains(output, "with test") {
		t.Errorf("Expected 'with test' in output, got: %s", output)
	}
	if !strings.Contains(output, "component") {
		t.Errorf("Expected 'component' in output, got: %s", output)
	}
}

func TestSetup_NilWriter(t *testing.T) {
	// Must not panic; falls back to stderr.
	Setup(false, false, nil)

	if Logger == nil {
		t.Error("Logger should not be nil after Setup with nil writer")
	}
}
