package config

// CommandAliases returns all command aliases.
func (s *Store) CommandAliases() map[string]string {
	doc, _ := s.Load()
	return doc.CommandAliases
}

// CommandAlias returns the command string behind an alias, and whether
// the alias exists.
func (s *Store) CommandAlias(alias string) (string, bool) {
	doc, _ := s.Load()
	command, ok := doc.CommandAliases[alias]
	return command, ok
}

// SetCommandAlias creates or replaces a command alias.
func (s *Store) SetCommandAlias(alias, command string) error {
	doc, err := s.load()
	if err != nil {
		return err
	}
	doc.CommandAliases[alias] = command
	return s.Save(doc)
}

// RemoveCommandAlias deletes a command alias. Removing an unknown alias
// is a silent no-op and does not rewrite the file.
func (s *Store) RemoveCommandAlias(alias string) error {
	doc, err := s.load()
	if err != nil {
		return err
	}
	if _, ok := doc.CommandAliases[alias]; !ok {
		return nil
	}
	delete(doc.CommandAliases, alias)
	return s.Save(doc)
}
