package keymap

import (
	"sort"

	"gitrs/internal/action"
)

// Button is one (label, action) entry in a scope's menu bar (spec §4.2).
type Button struct {
	Label  string
	Action action.Action
}

// ButtonRegistry holds an ordered list of buttons per scope, populated by
// the same `button` configuration directive that feeds the trie (spec
// §4.3). Buttons for a scope include those of its ancestors, most-specific
// appended last so on-screen order reads global-first.
type ButtonRegistry struct {
	scopes map[Scope][]Button
}

func NewButtonRegistry() *ButtonRegistry {
	return &ButtonRegistry{scopes: map[Scope][]Button{}}
}

// Add appends a button to scope s.
func (r *ButtonRegistry) Add(s Scope, label string, act action.Action) {
	r.scopes[s] = append(r.scopes[s], Button{Label: label, Action: act})
}

// ScopedButton pairs a button with the scope it is registered under.
type ScopedButton struct {
	Scope  Scope
	Button Button
}

// All enumerates every button, scopes in lexicographic order and buttons
// in insertion order within a scope, for canonical configuration
// re-emission (spec §8 "Round-trip").
func (r *ButtonRegistry) All() []ScopedButton {
	scopes := make([]Scope, 0, len(r.scopes))
	for s := range r.scopes {
		scopes = append(scopes, s)
	}
	sort.Slice(scopes, func(i, j int) bool { return scopes[i] < scopes[j] })

	var out []ScopedButton
	for _, s := range scopes {
		for _, b := range r.scopes[s] {
			out = append(out, ScopedButton{Scope: s, Button: b})
		}
	}
	return out
}

// For returns the buttons visible for the given scope chain, ancestors
// first (global ... most specific), so renderers can lay them out left to
// right in a stable, predictable order.
func (r *ButtonRegistry) For(chain []Scope) []Button {
	var out []Button
	for i := len(chain) - 1; i >= 0; i-- {
		out = append(out, r.scopes[chain[i]]...)
	}
	return out
}
