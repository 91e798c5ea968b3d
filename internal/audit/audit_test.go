package audit

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLogger_LogAndEvents(t *testing.T) {
	dir := t.TempDir()
	logger := NewLogger(dir)

	now := time.Now().Truncate(time.Millisecond)

	events := []Event{
		{Timestamp: now, Type: EventPreference, Target: "default_server", Details: "alpha"},
		{Timestamp: now.Add(time.Second), Type: EventGroup, Target: "web", Details: "added web-1"},
		{Timestamp: now.Add(2 * time.Second), Type: EventTag, Target: "web-1", Details: "added prod"},
		{Timestamp: now.Add(3 * time.Second), Type: EventCommandAlias, Target: "deploy"},
	}

	for _, e := range events {
		if err := logger.Log(e); err != nil {
			t.Fatalf("Log failed: %v", err)
		}
	}

	result, err := logger.Events()
	if err != nil {
		t.Fatalf("Events failed: %v", err)
	}

	if len(result) != len(events) {
		t.Fatalf("got %d events, want %d", len(result), len(events))
	}

	for i, e := range result {
		if e.Type != events[i].Type {
			t.Errorf("event %d: type = %q, want %q", i, e.Type, events[i].Type)
		}
		if e.Target != events[i].Target {
			t.Errorf("event %d: target = %q, want %q", i, e.Target, events[i].Target)
		}
		if e.Details != events[i].Details {
			t.Errorf("event %d: details = %q, want %q", i, e.Details, events[i].Details)
		}
	}
}

func TestLogger_EventsEmpty(t *testing.T) {
	logger := NewLogger(t.TempDir())

	result, err := logger.Events()
	if err != nil {
		t.Fatalf("Events failed: %v", err)
	}
	if len(result) != 0 {
		t.Errorf("got %d events, want 0", len(result))
	}
}

func TestLogger_FillsTimestamp(t *testing.T) {
	logger := NewLogger(t.TempDir())

	if err := logger.LogEvent(EventServerAlias, "w1", "set to web-1"); err != nil {
		t.Fatalf("LogEvent failed: %v", err)
	}

	events, err := logger.Events()
	if err != nil {
		t.Fatalf("Events failed: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	if events[0].Timestamp.IsZero() {
		t.Error("timestamp was not filled in")
	}
}

func TestLogger_SkipsMalformedLines(t *testing.T) {
	dir := t.TempDir()
	logger := NewLogger(dir)

	if err := logger.LogEvent(EventGroup, "web", "created"); err != nil {
		t.Fatalf("LogEvent failed: %v", err)
	}

	f, err := os.OpenFile(filepath.Join(dir, FileName), os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		t.Fatalf("failed to open trail: %v", err)
	}
	if _, err := f.WriteString("garbage line\n"); err != nil {
		t.Fatalf("failed to append garbage: %v", err)
	}
	f.Close()

	if err := logger.LogEvent(EventGroup, "db", "created"); err != nil {
		t.Fatalf("LogEvent failed: %v", err)
	}

	events, err := logger.Events()
	if err != nil {
		t.Fatalf("Events failed: %v", err)
	}
	if len(events) != 2 {
		t.Errorf("got %d events, want 2 (garbage skipped)", len(events))
	}
}

func TestLogger_Clear(t *testing.T) {
	logger := NewLogger(t.TempDir())

	if err := logger.LogEvent(EventProfile, "baseline", "exported"); err != nil {
		t.Fatalf("LogEvent failed: %v", err)
	}
	if err := logger.Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}

	events, err := logger.Events()
	if err != nil {
		t.Fatalf("Events failed: %v", err)
	}
	if len(events) != 0 {
		t.Errorf("got %d events after Clear, want 0", len(events))
	}

	// Clearing an absent trail is a no-op.
	if err := logger.Clear(); err != nil {
		t.Fatalf("Clear on absent trail failed: %v", err)
	}
}
