package config

import "sort"

// ServerTags returns the tags attached to a server in insertion order,
// or an empty slice for an untagged server.
func (s *Store) ServerTags(server string) []string {
	doc, _ := s.Load()
	return doc.ServerTags[server]
}

// AddServerTag attaches a tag to a server, creating its tag list if
// needed. A tag already present is not attached twice.
func (s *Store) AddServerTag(server, tag string) error {
	doc, err := s.load()
	if err != nil {
		return err
	}
	if !contains(doc.ServerTags[server], tag) {
		doc.ServerTags[server] = append(doc.ServerTags[server], tag)
	}
	return s.Save(doc)
}

// RemoveServerTag detaches a tag from a server. An untagged server or
// an absent tag is a silent no-op that does not rewrite the file.
func (s *Store) RemoveServerTag(server, tag string) error {
	doc, err := s.load()
	if err != nil {
		return err
	}
	tags, ok := doc.ServerTags[server]
	if !ok || !contains(tags, tag) {
		return nil
	}
	doc.ServerTags[server] = remove(tags, tag)
	return s.Save(doc)
}

// ServersByTag returns every server carrying the tag, sorted by name.
func (s *Store) ServersByTag(tag string) []string {
	doc, _ := s.Load()

	var servers []string
	for server, tags := range doc.ServerTags {
		if contains(tags, tag) {
			servers = append(servers, server)
		}
	}
	sort.Strings(servers)
	return servers
}
