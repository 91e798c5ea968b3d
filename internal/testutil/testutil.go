// Package testutil provides test utilities shared by cmd and tui tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/omnihost-tools/omnihost-ctl/internal/config"
)

// TestEnv holds a store rooted in a temporary config directory.
type TestEnv struct {
	T     *testing.T
	Dir   string
	Store *config.Store
}

// NewTestEnv creates a fresh test environment. The config directory
// lives under t.TempDir() and is cleaned up automatically.
func NewTestEnv(t *testing.T) *TestEnv {
	t.Helper()

	dir := filepath.Join(t.TempDir(), config.DefaultDirName)
	return &TestEnv{
		T:     t,
		Dir:   dir,
		Store: config.NewStore(dir),
	}
}

// Seed writes a document to the store, failing the test on error.
func (e *TestEnv) Seed(doc *config.Document) {
	e.T.Helper()

	if err := e.Store.Save(doc); err != nil {
		e.T.Fatalf("failed to seed config: %v", err)
	}
}

// SeedFleet populates the store with a small representative fleet:
// two groups, tagged servers, one server alias, one command alias, and
// a default server.
func (e *TestEnv) SeedFleet() {
	e.T.Helper()

	doc := config.DefaultDocument()
	doc.DefaultServer = "web-1"
	doc.Groups["web"] = []string{"web-1", "web-2"}
	doc.Groups["db"] = []string{"db-1"}
	doc.ServerTags["web-1"] = []string{"prod", "frontend"}
	doc.ServerTags["db-1"] = []string{"prod", "database"}
	doc.Aliases["w1"] = "web-1"
	doc.CommandAliases["deploy"] = "git pull && make deploy"
	e.Seed(doc)
}

// WriteRawConfig writes raw bytes to the config file, bypassing the
// store. Useful for corrupt-file and foreign-key scenarios.
func (e *TestEnv) WriteRawConfig(data []byte) {
	e.T.Helper()

	if err := os.MkdirAll(e.Dir, 0755); err != nil {
		e.T.Fatalf("failed to create config directory: %v", err)
	}
	if err := os.WriteFile(e.Store.Path(), data, 0644); err != nil {
		e.T.Fatalf("failed to write config file: %v", err)
	}
}
