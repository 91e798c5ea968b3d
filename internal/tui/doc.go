// Package tui provides terminal user interface components for
// omnihost-ctl, currently the interactive server picker built over the
// configured universe of groups, tags, aliases, and the default server.
package tui
