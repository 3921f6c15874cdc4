// Package config implements gitrs's option store and the `~/.gitrsrc`
// configuration language: map/button/set directives that mutate the keymap
// registry and option store, both at startup and from the `:`-command line
// (spec §3 "Options", §4.3).
//
// # Resolution order
//
// Load follows the same shape as the teacher's original config loader: an
// explicit path wins, otherwise "~/.gitrsrc" is tried, and a missing file is
// not an error — it simply means the built-in defaults (and, unless
// default_mappings is set to false, the default bindings) stand alone.
//
// # Option store
//
// Each option has a default, a parser from its textual `set` form, and
// exactly one writer: the configuration parser. An invalid value leaves the
// previous value in place and raises OPTION_VALUE (spec §3 invariant).
package config
