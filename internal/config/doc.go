// Package config persists OmniHost user preferences.
//
// # The Document
//
// All preferences live in a single JSON object stored at
// ~/.omnihost/config.json:
//
//	type Document struct {
//	    DefaultServer       string              // server used when none is given
//	    OutputMode          string              // "normal", "compact" or "silent"
//	    ParallelConnections int                 // fan-out limit for the fleet front end
//	    Timeout             int                 // per-connection timeout in seconds
//	    Groups              map[string][]string // named server collections
//	    ServerTags          map[string][]string // free-text labels per server
//	    CommandAliases      map[string]string   // short name -> command string
//	    Aliases             map[string]string   // short name -> server name
//	    AuditEnabled        bool                // record mutations to the audit trail
//	}
//
// Top-level keys the current version does not know about are preserved
// across a load/save cycle, so older and newer tools can share a file.
//
// # The Store
//
// Store wraps the config directory and is the only type that touches the
// filesystem. Every mutator is load -> modify -> save with a full
// overwrite; there is no locking, so concurrent writers race under
// last-writer-wins semantics. That is acceptable for a per-user CLI
// preferences file and is deliberately not addressed here.
//
// A missing file loads as an in-memory default document without writing
// anything. An unreadable or unparsable file loads as a default document
// together with an error wrapping ErrCorrupt, so callers can warn the
// user before the next save overwrites whatever is on disk.
//
// # Profiles
//
// A profile is a named TOML snapshot of the whole document under
// ~/.omnihost/profiles/. Exporting and re-importing a profile switches
// the active preferences wholesale.
package config
