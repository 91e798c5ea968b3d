package config

// Groups returns every group and its member list.
func (s *Store) Groups() map[string][]string {
	doc, _ := s.Load()
	return doc.Groups
}

// GroupServers returns the members of a group in insertion order, or an
// empty slice for an unknown group.
func (s *Store) GroupServers(group string) []string {
	doc, _ := s.Load()
	return doc.Groups[group]
}

// SetGroup creates a group or replaces its full member list.
func (s *Store) SetGroup(group string, servers []string) error {
	doc, err := s.load()
	if err != nil {
		return err
	}
	doc.Groups[group] = servers
	return s.Save(doc)
}

// RemoveGroup deletes a group. Removing an unknown group is a silent
// no-op and does not rewrite the file.
func (s *Store) RemoveGroup(group string) error {
	doc, err := s.load()
	if err != nil {
		return err
	}
	if _, ok := doc.Groups[group]; !ok {
		return nil
	}
	delete(doc.Groups, group)
	return s.Save(doc)
}

// AddServerToGroup appends a server to a group, creating the group if
// needed. A server already in the group is not appended twice.
func (s *Store) AddServerToGroup(group, server string) error {
	doc, err := s.load()
	if err != nil {
		return err
	}
	if !contains(doc.Groups[group], server) {
		doc.Groups[group] = append(doc.Groups[group], server)
	}
	return s.Save(doc)
}

// RemoveServerFromGroup removes a server from a group. An unknown group
// or a server that is not a member is a silent no-op that does not
// rewrite the file.
func (s *Store) RemoveServerFromGroup(group, server string) error {
	doc, err := s.load()
	if err != nil {
		return err
	}
	members, ok := doc.Groups[group]
	if !ok || !contains(members, server) {
		return nil
	}
	doc.Groups[group] = remove(members, server)
	return s.Save(doc)
}

func contains(list []string, item string) bool {
	for _, v := range list {
		if v == item {
			return true
		}
	}
	return false
}

// remove drops the first occurrence of item, keeping order.
func remove(list []string, item string) []string {
	out := make([]string, 0, len(list))
	removed := false
	for _, v := range list {
		if !removed && v == item {
			removed = true
			continue
		}
		out = append(out, v)
	}
	return out
}
