package config

// ServerAlias returns the server a short name points at, and whether
// the alias exists.
func (s *Store) ServerAlias(alias string) (string, bool) {
	doc, _ := s.Load()
	server, ok := doc.Aliases[alias]
	return server, ok
}

// ServerAliases returns all server aliases.
func (s *Store) ServerAliases() map[string]string {
	doc, _ := s.Load()
	return doc.Aliases
}

// SetServerAlias creates or replaces an alias for a server.
func (s *Store) SetServerAlias(alias, server string) error {
	doc, err := s.load()
	if err != nil {
		return err
	}
	doc.Aliases[alias] = server
	return s.Save(doc)
}

// RemoveServerAlias deletes an alias. Removing an unknown alias is a
// silent no-op and does not rewrite the file.
func (s *Store) RemoveServerAlias(alias string) error {
	doc, err := s.load()
	if err != nil {
		return err
	}
	if _, ok := doc.Aliases[alias]; !ok {
		return nil
	}
	delete(doc.Aliases, alias)
	return s.Save(doc)
}

// ResolveServer maps user input to a server name. Non-empty input is
// looked up as an alias first and returned unchanged when no alias
// matches; empty input falls back to the default server, which may
// itself be unset.
func (s *Store) ResolveServer(input string) string {
	if input != "" {
		if target, ok := s.ServerAlias(input); ok && target != "" {
			return target
		}
		return input
	}
	return s.DefaultServer()
}
