package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), DefaultDirName))
}

func TestLoad_MissingFile(t *testing.T) {
	s := newTestStore(t)

	doc, err := s.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if doc.DefaultServer != "" {
		t.Errorf("DefaultServer = %q, want empty", doc.DefaultServer)
	}
	if doc.OutputMode != OutputModeNormal {
		t.Errorf("OutputMode = %q, want %q", doc.OutputMode, OutputModeNormal)
	}
	if doc.ParallelConnections != DefaultParallelConnections {
		t.Errorf("ParallelConnections = %d, want %d", doc.ParallelConnections, DefaultParallelConnections)
	}
	if doc.Timeout != DefaultTimeout {
		t.Errorf("Timeout = %d, want %d", doc.Timeout, DefaultTimeout)
	}
	if !doc.AuditEnabled {
		t.Error("AuditEnabled = false, want true")
	}
	if doc.Groups == nil || doc.ServerTags == nil || doc.CommandAliases == nil || doc.Aliases == nil {
		t.Error("default document has nil maps")
	}

	// Loading alone must not create the file.
	if _, err := os.Stat(s.Path()); !os.IsNotExist(err) {
		t.Error("Load created the config file")
	}
}

func TestLoad_CreatesDirectory(t *testing.T) {
	s := newTestStore(t)

	if _, err := s.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	info, err := os.Stat(s.Dir())
	if err != nil {
		t.Fatalf("config directory not created: %v", err)
	}
	if !info.IsDir() {
		t.Error("config path is not a directory")
	}
	if perm := info.Mode().Perm(); perm != 0755 {
		t.Errorf("directory mode = %o, want %o", perm, 0755)
	}
}

func TestLoad_CorruptFile(t *testing.T) {
	s := newTestStore(t)
	if err := s.EnsureDir(); err != nil {
		t.Fatalf("EnsureDir failed: %v", err)
	}
	if err := os.WriteFile(s.Path(), []byte("not valid json"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	doc, err := s.Load()
	if !errors.Is(err, ErrCorrupt) {
		t.Errorf("Load error = %v, want ErrCorrupt", err)
	}
	if doc == nil {
		t.Fatal("Load returned nil document for corrupt file")
	}
	if doc.OutputMode != OutputModeNormal {
		t.Errorf("OutputMode = %q, want default %q", doc.OutputMode, OutputModeNormal)
	}
}

func TestLoad_CorruptFileDegradesAccessors(t *testing.T) {
	s := newTestStore(t)
	if err := s.EnsureDir(); err != nil {
		t.Fatalf("EnsureDir failed: %v", err)
	}
	if err := os.WriteFile(s.Path(), []byte("{broken"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	if got := s.DefaultServer(); got != "" {
		t.Errorf("DefaultServer = %q, want empty", got)
	}
	if got := s.OutputMode(); got != OutputModeNormal {
		t.Errorf("OutputMode = %q, want %q", got, OutputModeNormal)
	}
}

func TestSave_RoundTrip(t *testing.T) {
	s := newTestStore(t)

	doc := DefaultDocument()
	doc.DefaultServer = "web-1"
	doc.OutputMode = OutputModeCompact
	doc.Groups["web"] = []string{"web-1", "web-2"}
	doc.ServerTags["web-1"] = []string{"prod"}
	doc.CommandAliases["restart"] = "systemctl restart nginx"
	doc.Aliases["w1"] = "web-1"

	if err := s.Save(doc); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := s.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.DefaultServer != "web-1" {
		t.Errorf("DefaultServer = %q, want %q", loaded.DefaultServer, "web-1")
	}
	if loaded.OutputMode != OutputModeCompact {
		t.Errorf("OutputMode = %q, want %q", loaded.OutputMode, OutputModeCompact)
	}
	if got := loaded.Groups["web"]; len(got) != 2 || got[0] != "web-1" || got[1] != "web-2" {
		t.Errorf("Groups[web] = %v, want [web-1 web-2]", got)
	}
	if got := loaded.ServerTags["web-1"]; len(got) != 1 || got[0] != "prod" {
		t.Errorf("ServerTags[web-1] = %v, want [prod]", got)
	}
	if got := loaded.CommandAliases["restart"]; got != "systemctl restart nginx" {
		t.Errorf("CommandAliases[restart] = %q", got)
	}
	if got := loaded.Aliases["w1"]; got != "web-1" {
		t.Errorf("Aliases[w1] = %q, want %q", got, "web-1")
	}
}

func TestSave_PrettyPrinted(t *testing.T) {
	s := newTestStore(t)

	if err := s.Save(DefaultDocument()); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	data, err := os.ReadFile(s.Path())
	if err != nil {
		t.Fatalf("failed to read config: %v", err)
	}

	if !strings.Contains(string(data), "\n  \"") {
		t.Errorf("config is not 2-space indented:\n%s", data)
	}
}

func TestFreshEnvironmentScenario(t *testing.T) {
	s := newTestStore(t)

	if got := s.DefaultServer(); got != "" {
		t.Fatalf("DefaultServer on fresh environment = %q, want empty", got)
	}

	if err := s.SetDefaultServer("alpha"); err != nil {
		t.Fatalf("SetDefaultServer failed: %v", err)
	}

	if got := s.DefaultServer(); got != "alpha" {
		t.Errorf("DefaultServer = %q, want %q", got, "alpha")
	}

	// The file now exists and carries the defaults alongside the new value.
	data, err := os.ReadFile(s.Path())
	if err != nil {
		t.Fatalf("config file not written: %v", err)
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("config file is not valid JSON: %v", err)
	}
	for _, key := range []string{"default_server", "output_mode", "groups", "server_tags", "command_aliases", "aliases", "audit_enabled"} {
		if _, ok := raw[key]; !ok {
			t.Errorf("persisted document missing key %q", key)
		}
	}
}

func TestDefaultStore(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	s, err := DefaultStore()
	if err != nil {
		t.Fatalf("DefaultStore failed: %v", err)
	}
	if filepath.Base(s.Dir()) != DefaultDirName {
		t.Errorf("Dir = %q, want it to end in %q", s.Dir(), DefaultDirName)
	}
	if filepath.Base(s.Path()) != ConfigFileName {
		t.Errorf("Path = %q, want it to end in %q", s.Path(), ConfigFileName)
	}
}
