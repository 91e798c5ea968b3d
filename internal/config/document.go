package config

import (
	"encoding/json"
)

// Output modes understood by the fleet front end. The store does not
// enforce them; unknown values are stored as-is.
const (
	OutputModeNormal  = "normal"
	OutputModeCompact = "compact"
	OutputModeSilent  = "silent"
)

// Defaults for scalar preferences.
const (
	DefaultParallelConnections = 5
	DefaultTimeout             = 30
)

// Document is the persisted preferences object.
type Document struct {
	DefaultServer       string              `json:"default_server,omitempty" toml:"default_server,omitempty"`
	OutputMode          string              `json:"output_mode" toml:"output_mode"`
	ParallelConnections int                 `json:"parallel_connections" toml:"parallel_connections"`
	Timeout             int                 `json:"timeout" toml:"timeout"`
	Groups              map[string][]string `json:"groups" toml:"groups"`
	ServerTags          map[string][]string `json:"server_tags" toml:"server_tags"`
	CommandAliases      map[string]string   `json:"command_aliases" toml:"command_aliases"`
	Aliases             map[string]string   `json:"aliases" toml:"aliases"`
	AuditEnabled        bool                `json:"audit_enabled" toml:"audit_enabled"`

	// extra holds top-level keys this version does not know about.
	// They survive a load/save cycle but are not carried into profiles.
	extra map[string]json.RawMessage
}

// documentKeys lists every key owned by Document itself. Anything else
// found at the top level of the file is preserved verbatim.
var documentKeys = []string{
	"default_server",
	"output_mode",
	"parallel_connections",
	"timeout",
	"groups",
	"server_tags",
	"command_aliases",
	"aliases",
	"audit_enabled",
}

// DefaultDocument returns the in-memory document used when no config
// file exists yet.
func DefaultDocument() *Document {
	return &Document{
		OutputMode:          OutputModeNormal,
		ParallelConnections: DefaultParallelConnections,
		Timeout:             DefaultTimeout,
		Groups:              map[string][]string{},
		ServerTags:          map[string][]string{},
		CommandAliases:      map[string]string{},
		Aliases:             map[string]string{},
		AuditEnabled:        true,
	}
}

// backfill fills in keys that older files may lack.
func (d *Document) backfill() {
	if d.Groups == nil {
		d.Groups = map[string][]string{}
	}
	if d.ServerTags == nil {
		d.ServerTags = map[string][]string{}
	}
	if d.CommandAliases == nil {
		d.CommandAliases = map[string]string{}
	}
	if d.Aliases == nil {
		d.Aliases = map[string]string{}
	}
}

// UnmarshalJSON decodes the known fields and stashes any unknown
// top-level keys so Save can write them back.
func (d *Document) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	// Pre-set audit_enabled so an absent key defaults to true rather
	// than the zero value.
	type fields Document
	f := fields{AuditEnabled: true}
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*d = Document(f)

	for _, key := range documentKeys {
		delete(raw, key)
	}
	if len(raw) > 0 {
		d.extra = raw
	}

	d.backfill()
	return nil
}

// MarshalJSON writes the known fields merged with any preserved
// unknown keys. Known fields win on name collisions.
func (d *Document) MarshalJSON() ([]byte, error) {
	type fields Document
	f := fields(*d)
	data, err := json.Marshal(&f)
	if err != nil {
		return nil, err
	}
	if len(d.extra) == 0 {
		return data, nil
	}

	var merged map[string]json.RawMessage
	if err := json.Unmarshal(data, &merged); err != nil {
		return nil, err
	}
	for key, value := range d.extra {
		if _, ok := merged[key]; !ok {
			merged[key] = value
		}
	}
	return json.Marshal(merged)
}
