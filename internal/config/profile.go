package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	securejoin "github.com/cyphar/filepath-securejoin"
)

// profileNameRegex validates profile names. Names must start with a
// letter or digit and may contain letters, digits, dots, underscores,
// or hyphens, up to 63 characters.
var profileNameRegex = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9._-]{0,62}$`)

const profileExt = ".toml"

// ValidateProfileName checks if a profile name is valid.
func ValidateProfileName(name string) error {
	if name == "" {
		return fmt.Errorf("profile name cannot be empty")
	}
	if !profileNameRegex.MatchString(name) {
		return fmt.Errorf("invalid profile name %q: must start with a letter or digit, contain only letters, digits, dots, underscores, or hyphens, and be at most 63 characters", name)
	}
	return nil
}

// ProfilesDir returns the directory holding named snapshots.
func (s *Store) ProfilesDir() string {
	return filepath.Join(s.dir, ProfilesDirName)
}

// profilePath resolves a user-supplied profile name to a path that is
// guaranteed to stay inside the profiles directory.
func (s *Store) profilePath(name string) (string, error) {
	if err := ValidateProfileName(name); err != nil {
		return "", err
	}
	path, err := securejoin.SecureJoin(s.ProfilesDir(), name+profileExt)
	if err != nil {
		return "", fmt.Errorf("invalid profile name %q: %w", name, err)
	}
	return path, nil
}

// ExportProfile snapshots the current document to a named TOML profile.
// Unknown top-level keys from the JSON document are not carried into
// the snapshot.
func (s *Store) ExportProfile(name string) error {
	path, err := s.profilePath(name)
	if err != nil {
		return err
	}

	doc, err := s.load()
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(doc); err != nil {
		return fmt.Errorf("failed to encode profile %s: %w", name, err)
	}

	if err := os.MkdirAll(s.ProfilesDir(), 0755); err != nil {
		return fmt.Errorf("failed to create profiles directory: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write profile %s: %w", name, err)
	}

	return nil
}

// ImportProfile replaces the active document with a named snapshot.
func (s *Store) ImportProfile(name string) error {
	path, err := s.profilePath(name)
	if err != nil {
		return err
	}

	var doc Document
	if _, err := toml.DecodeFile(path, &doc); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("profile not found: %s", name)
		}
		return fmt.Errorf("failed to parse profile %s: %w", name, err)
	}
	doc.backfill()

	return s.Save(&doc)
}

// RemoveProfile deletes a named snapshot. Removing an unknown profile
// is a silent no-op.
func (s *Store) RemoveProfile(name string) error {
	path, err := s.profilePath(name)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove profile %s: %w", name, err)
	}
	return nil
}

// Profiles returns the names of all stored snapshots, sorted.
func (s *Store) Profiles() ([]string, error) {
	entries, err := os.ReadDir(s.ProfilesDir())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read profiles directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), profileExt) {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), profileExt))
	}
	sort.Strings(names)

	return names, nil
}
