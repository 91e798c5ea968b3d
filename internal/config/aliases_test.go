package config

import "testing"

func TestServerAlias(t *testing.T) {
	s := newTestStore(t)

	if _, ok := s.ServerAlias("w1"); ok {
		t.Error("ServerAlias on fresh store reported an alias")
	}

	if err := s.SetServerAlias("w1", "web-1.internal"); err != nil {
		t.Fatalf("SetServerAlias failed: %v", err)
	}

	server, ok := s.ServerAlias("w1")
	if !ok || server != "web-1.internal" {
		t.Errorf("ServerAlias(w1) = %q, %v, want web-1.internal, true", server, ok)
	}
}

func TestRemoveServerAlias(t *testing.T) {
	s := newTestStore(t)
	if err := s.SetServerAlias("w1", "web-1"); err != nil {
		t.Fatalf("SetServerAlias failed: %v", err)
	}

	if err := s.RemoveServerAlias("w1"); err != nil {
		t.Fatalf("RemoveServerAlias failed: %v", err)
	}
	if _, ok := s.ServerAlias("w1"); ok {
		t.Error("alias still present after removal")
	}

	// Absent alias is a silent no-op.
	if err := s.RemoveServerAlias("w1"); err != nil {
		t.Fatalf("RemoveServerAlias on absent alias failed: %v", err)
	}
}

func TestResolveServer(t *testing.T) {
	s := newTestStore(t)
	if err := s.SetServerAlias("w1", "web-1.internal"); err != nil {
		t.Fatalf("SetServerAlias failed: %v", err)
	}
	if err := s.SetDefaultServer("fallback"); err != nil {
		t.Fatalf("SetDefaultServer failed: %v", err)
	}

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"alias wins over literal", "w1", "web-1.internal"},
		{"unknown input passes through", "web-9", "web-9"},
		{"empty input falls back to default", "", "fallback"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.ResolveServer(tt.input); got != tt.want {
				t.Errorf("ResolveServer(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestResolveServer_NoDefault(t *testing.T) {
	s := newTestStore(t)

	if got := s.ResolveServer(""); got != "" {
		t.Errorf("ResolveServer(\"\") = %q, want empty when no default is set", got)
	}
}

func TestResolveServer_MatchesDefaultServerGetter(t *testing.T) {
	s := newTestStore(t)
	if err := s.SetDefaultServer("alpha"); err != nil {
		t.Fatalf("SetDefaultServer failed: %v", err)
	}

	if s.ResolveServer("") != s.DefaultServer() {
		t.Error("ResolveServer(\"\") and DefaultServer() disagree")
	}
}
