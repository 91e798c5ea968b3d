package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const (
	// DefaultDirName is the config directory under the user's home.
	DefaultDirName = ".omnihost"
	// ConfigFileName is the preferences document inside the config dir.
	ConfigFileName = "config.json"
	// ProfilesDirName holds named snapshots of the document.
	ProfilesDirName = "profiles"
)

// ErrCorrupt marks a config file that exists but could not be read or
// parsed. Load still returns a usable default document alongside it, so
// callers can warn the user instead of failing; the next Save will
// overwrite whatever is on disk.
var ErrCorrupt = errors.New("config file is corrupt")

// Store reads and writes the preferences document rooted at a config
// directory. The zero value is not usable; construct one with NewStore
// or DefaultStore and pass it down to whatever front end consumes it.
type Store struct {
	dir string
}

// NewStore returns a store rooted at dir.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// DefaultStore returns a store rooted at ~/.omnihost.
func DefaultStore() (*Store, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to locate home directory: %w", err)
	}
	return NewStore(filepath.Join(home, DefaultDirName)), nil
}

// Dir returns the config directory.
func (s *Store) Dir() string {
	return s.dir
}

// Path returns the location of the preferences document.
func (s *Store) Path() string {
	return filepath.Join(s.dir, ConfigFileName)
}

// EnsureDir creates the config directory if it is missing. Idempotent.
func (s *Store) EnsureDir() error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	return nil
}

// Load reads the preferences document.
//
// A missing file yields a fresh default document and a nil error;
// nothing is written until a mutator runs. An unreadable or unparsable
// file yields a fresh default document and an error wrapping ErrCorrupt.
func (s *Store) Load() (*Document, error) {
	if err := s.EnsureDir(); err != nil {
		return DefaultDocument(), err
	}

	data, err := os.ReadFile(s.Path())
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultDocument(), nil
		}
		return DefaultDocument(), fmt.Errorf("%w: %v", ErrCorrupt, err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return DefaultDocument(), fmt.Errorf("%w: %v", ErrCorrupt, err)
	}

	return &doc, nil
}

// Save writes the document as pretty-printed JSON, replacing the file
// wholesale. Write failures propagate; there is no retry.
func (s *Store) Save(doc *Document) error {
	if err := s.EnsureDir(); err != nil {
		return err
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(s.Path(), data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// load is the mutator-side Load: a corrupt file degrades to the default
// document (matching the getter behavior) while hard errors such as an
// uncreatable directory still propagate.
func (s *Store) load() (*Document, error) {
	doc, err := s.Load()
	if err != nil && !errors.Is(err, ErrCorrupt) {
		return nil, err
	}
	return doc, nil
}
