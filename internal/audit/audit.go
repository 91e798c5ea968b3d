// Package audit provides a structured trail of preference mutations.
// Events are stored as JSON Lines (JSONL) in a single file inside the
// config directory.
package audit

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// FileName is the audit trail inside the config directory.
const FileName = "audit.jsonl"

// EventType classifies a preference mutation.
type EventType string

const (
	EventPreference   EventType = "preference"
	EventServerAlias  EventType = "server-alias"
	EventGroup        EventType = "group"
	EventTag          EventType = "tag"
	EventCommandAlias EventType = "command-alias"
	EventProfile      EventType = "profile"
)

// Event represents a single audit log entry.
type Event struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
	Target    string    `json:"target"`
	Details   string    `json:"details,omitempty"`
}

// Logger writes and reads the mutation trail for a config directory.
type Logger struct {
	dir string
}

// NewLogger creates an audit logger rooted at the config directory.
func NewLogger(configDir string) *Logger {
	return &Logger{dir: configDir}
}

// Path returns the location of the trail.
func (l *Logger) Path() string {
	return filepath.Join(l.dir, FileName)
}

// Log appends an event to the trail.
func (l *Logger) Log(event Event) error {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	if err := os.MkdirAll(l.dir, 0755); err != nil {
		return fmt.Errorf("failed to create audit log directory: %w", err)
	}

	f, err := os.OpenFile(l.Path(), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open audit log: %w", err)
	}
	defer f.Close()

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	if _, err := f.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write event: %w", err)
	}

	return nil
}

// LogEvent is a convenience method that creates and logs an event.
func (l *Logger) LogEvent(eventType EventType, target, details string) error {
	return l.Log(Event{
		Timestamp: time.Now(),
		Type:      eventType,
		Target:    target,
		Details:   details,
	})
}

// Events reads the whole trail in chronological order.
func (l *Logger) Events() ([]Event, error) {
	f, err := os.Open(l.Path())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to open audit log: %w", err)
	}
	defer f.Close()

	var events []Event
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var event Event
		if err := json.Unmarshal(line, &event); err != nil {
			continue // Skip malformed lines
		}
		events = append(events, event)
	}

	if err := scanner.Err(); err != nil {
		return events, fmt.Errorf("error reading audit log: %w", err)
	}

	return events, nil
}

// Clear deletes the trail.
func (l *Logger) Clear() error {
	if err := os.Remove(l.Path()); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
