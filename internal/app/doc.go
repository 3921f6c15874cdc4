// Package app provides gitrs's composition root.
//
// # Overview
//
// app.Run wires together option defaults, the keymap/button registries,
// the "~/.gitrsrc" configuration parser, the vcs.Repo gateway to the git
// executable, and an optional filesystem watcher, then hands all of it to
// internal/ui as a single ui.Params value before the alternate screen
// takes over.
//
// # Components
//
//   - app.go: Options, Run, and the two-pass configuration load that lets
//     a `set default_mappings false` line suppress the seeded defaults
//     while a user's own map/button lines still win over them.
//
// # Error handling
//
// Configuration errors (spec §7 CONFIG_SYNTAX, CONFIG_PREFIX_CONFLICT,
// UNKNOWN_OPTION, OPTION_VALUE) are collected, not fatal: Run proceeds
// with whatever bindings/options did parse and hands the errors to
// ui.Params.ConfigErrors; the first is displayed in the status line. A failure to
// start the filesystem watcher is not an error at all — gitrs loses
// automatic reload but still functions (spec §1 "external collaborators").
package app
