package keymap

import (
	"fmt"
	"sort"

	"gitrs/internal/action"
	"gitrs/internal/token"
)

// Result is the outcome of feeding one more token to the trie at the active
// scope chain (spec §4.2).
type Result int

const (
	Unmatched Result = iota
	Pending
	Resolved
	Ambiguous
)

type node struct {
	children map[string]*node
	action   *action.Action // set iff this node is terminal
}

func newNode() *node { return &node{children: map[string]*node{}} }

// Trie holds, for a single scope, the prefix-free set of bound token
// sequences (spec §3 "Binding").
type Trie struct {
	root *node
}

func newTrie() *Trie { return &Trie{root: newNode()} }

// Bind inserts seq -> act. An exact-match rebind replaces the previous
// action. A prefix conflict (seq is a proper prefix of an existing bound
// sequence, or an existing bound sequence is a proper prefix of seq) is
// rejected with an error; the trie is left unchanged (spec §3, §4.3).
func (t *Trie) Bind(seq []token.Token, act action.Action) error {
	if len(seq) == 0 {
		return fmt.Errorf("empty token sequence")
	}
	if ok, conflict := t.wouldConflict(seq); ok {
		return fmt.Errorf("sequence conflicts with existing binding %q", conflict)
	}
	n := t.root
	for _, tok := range seq {
		key := tok.String()
		child, ok := n.children[key]
		if !ok {
			child = newNode()
			n.children[key] = child
		}
		n = child
	}
	n.action = &act
	return nil
}

// wouldConflict reports whether binding seq would create a prefix conflict
// with a different existing sequence (an exact-match rebind is not a
// conflict). conflict names the offending sequence's literal form.
func (t *Trie) wouldConflict(seq []token.Token) (bool, string) {
	n := t.root
	for i, tok := range seq {
		key := tok.String()
		child, ok := n.children[key]
		if !ok {
			return false, ""
		}
		if child.action != nil && i < len(seq)-1 {
			// existing sequence is a proper prefix of the new one
			return true, literalPrefix(seq[:i+1])
		}
		n = child
	}
	// n is now the node at the full new sequence; if it has children,
	// the new sequence would be a proper prefix of an existing longer one.
	if len(n.children) > 0 {
		return true, literalPrefix(seq)
	}
	return false, ""
}

func literalPrefix(seq []token.Token) string {
	s := ""
	for _, tok := range seq {
		s += tok.String()
	}
	return s
}

// Lookup walks the accumulated prefix tokens from the root and reports the
// current resolution state (spec §4.2).
func (t *Trie) Lookup(prefix []token.Token) (Result, *action.Action) {
	n := t.root
	for _, tok := range prefix {
		child, ok := n.children[tok.String()]
		if !ok {
			return Unmatched, nil
		}
		n = child
	}
	hasChildren := len(n.children) > 0
	switch {
	case n.action == nil && hasChildren:
		return Pending, nil
	case n.action == nil && !hasChildren:
		return Unmatched, nil
	case n.action != nil && hasChildren:
		return Ambiguous, n.action
	default: // terminal, no children
		return Resolved, n.action
	}
}

// Registry holds one Trie per scope and implements the most-specific-first,
// fall-back-to-parent lookup described in spec §3/§4.2.
type Registry struct {
	scopes map[Scope]*Trie
}

func NewRegistry() *Registry {
	return &Registry{scopes: map[Scope]*Trie{}}
}

func (r *Registry) trie(s Scope) *Trie {
	t, ok := r.scopes[s]
	if !ok {
		t = newTrie()
		r.scopes[s] = t
	}
	return t
}

// Bind registers seq -> act within scope s.
func (r *Registry) Bind(s Scope, seq []token.Token, act action.Action) error {
	return r.trie(s).Bind(seq, act)
}

// Bound is one (scope, sequence, action) binding in canonical textual
// form, as enumerated by Registry.All for configuration re-emission.
type Bound struct {
	Scope    Scope
	Sequence string // literal token concatenation, e.g. "gg" or "<c-u>"
	Action   action.Action
}

// walk visits every terminal node under n in sorted child order,
// depth-first, carrying the accumulated literal prefix.
func (n *node) walk(prefix string, visit func(seq string, act action.Action)) {
	if n.action != nil {
		visit(prefix, *n.action)
	}
	keys := make([]string, 0, len(n.children))
	for k := range n.children {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		n.children[k].walk(prefix+k, visit)
	}
}

// All enumerates every binding in the registry, scopes in lexicographic
// order and sequences in sorted token order within a scope, so the
// canonical configuration emission is deterministic (spec §8 "Round-trip").
func (r *Registry) All() []Bound {
	scopes := make([]Scope, 0, len(r.scopes))
	for s := range r.scopes {
		scopes = append(scopes, s)
	}
	sort.Slice(scopes, func(i, j int) bool { return scopes[i] < scopes[j] })

	var out []Bound
	for _, s := range scopes {
		r.scopes[s].root.walk("", func(seq string, act action.Action) {
			out = append(out, Bound{Scope: s, Sequence: seq, Action: act})
		})
	}
	return out
}

// Lookup resolves prefix against the most specific scope in chain that has
// any match; an Unmatched result at one scope falls back to the next
// (shorter) scope, one level at a time, exactly as spec §3 describes.
// chain is the full chain (most-specific first, ending in Global); Lookup
// walks it itself, so the caller passes the whole chain once.
func (r *Registry) Lookup(chain []Scope, prefix []token.Token) (Result, *action.Action, Scope) {
	for _, s := range chain {
		t, ok := r.scopes[s]
		if !ok {
			continue
		}
		res, act := t.Lookup(prefix)
		if res != Unmatched {
			return res, act, s
		}
	}
	return Unmatched, nil, Global
}
