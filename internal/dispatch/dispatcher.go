// Package dispatch implements the dispatcher state machine that turns a
// token stream into builtin/shell action firings, the `:`-command line, and
// incremental search (spec §4.6).
package dispatch

import (
	"time"

	"gitrs/internal/action"
	"gitrs/internal/keymap"
	"gitrs/internal/token"
)

// State names the dispatcher's current mode (spec §4.6).
type State int

const (
	Idle State = iota
	Pending
	CommandLine
	Search
	Subprocess
)

// DefaultAmbiguityTimeout is the delay after which a terminal node that
// also has descendants fires its action if no further key arrives (spec
// §4.2, GLOSSARY; the exact value is an open question in spec.md, resolved
// here — see DESIGN.md).
const DefaultAmbiguityTimeout = 250 * time.Millisecond

// Direction is a search direction (spec §4.6).
type Direction int

const (
	Forward Direction = iota
	Backward
)

// Outcome is what the caller (the bubbletea Update loop) should do after
// feeding one token or timeout tick to the Dispatcher.
type Outcome struct {
	FireAction    *action.Action
	SubmitLine    string // CommandLine/Search buffer content on Enter
	SearchDir     Direction
	EnteredSearch bool
	Cancelled     bool
	StillPending  bool // start/extend an ambiguity-timeout deadline
	Generation    int  // identifies this pending episode, for stale-timeout checks
}

// Dispatcher holds the live prefix-accumulation and `:`/search buffer state
// described in spec §4.6. It is not safe for concurrent use — per spec §5 it
// is driven only from the UI thread.
type Dispatcher struct {
	bindings *keymap.Registry
	scope    func() keymap.Scope // active view's current scope, re-queried per token

	state      State
	prefix     []token.Token
	buffer     []rune
	searchDir  Direction
	generation int
}

// New constructs a Dispatcher over bindings, consulting activeScope() for
// the active view's most-specific scope on every token.
func New(bindings *keymap.Registry, activeScope func() keymap.Scope) *Dispatcher {
	return &Dispatcher{bindings: bindings, scope: activeScope, state: Idle}
}

// State returns the current dispatcher state (for rendering the `:`/search
// line and cursor-blocking decisions).
func (d *Dispatcher) State() State { return d.state }

// Buffer returns the current CommandLine/Search buffer contents.
func (d *Dispatcher) Buffer() string { return string(d.buffer) }

// SearchDirection returns the direction of the in-progress search (only
// meaningful while State() == Search), so the footer can render "/" or "?"
// to match the key the user opened the prompt with.
func (d *Dispatcher) SearchDirection() Direction { return d.searchDir }

// BeginSubprocess enters the Subprocess state: the terminal has been
// handed to a foreground child (spec §4.6 "Idle + shell action ⇒
// Subprocess"). Any pending prefix or half-typed buffer is abandoned —
// the keystrokes that follow belong to the child, not to gitrs.
func (d *Dispatcher) BeginSubprocess() {
	d.resetToIdle()
	d.state = Subprocess
}

// EndSubprocess returns to Idle once the foreground child has exited and
// the UI owns the terminal again.
func (d *Dispatcher) EndSubprocess() {
	if d.state == Subprocess {
		d.state = Idle
	}
}

// Feed advances the state machine by one token (spec §4.6 transitions).
func (d *Dispatcher) Feed(tok token.Token) Outcome {
	switch d.state {
	case Idle:
		return d.feedIdle(tok)
	case Pending:
		return d.feedPending(tok)
	case CommandLine, Search:
		return d.feedLine(tok)
	case Subprocess:
		// Input is routed to the child; the dispatcher itself ignores it
		// (spec §4.6 "during Subprocess input is routed to the child").
		return Outcome{}
	}
	return Outcome{}
}

func (d *Dispatcher) feedIdle(tok token.Token) Outcome {
	if tok.Kind == token.KindRune {
		switch tok.Literal {
		case ":":
			d.state = CommandLine
			d.buffer = nil
			return Outcome{}
		case "/":
			d.state = Search
			d.searchDir = Forward
			d.buffer = nil
			return Outcome{}
		case "?":
			d.state = Search
			d.searchDir = Backward
			d.buffer = nil
			return Outcome{}
		}
	}

	d.prefix = []token.Token{tok}
	return d.evaluate()
}

func (d *Dispatcher) feedPending(tok token.Token) Outcome {
	if tok.Kind == token.KindSpecial && tok.Literal == "<esc>" {
		d.resetToIdle()
		return Outcome{Cancelled: true}
	}
	d.prefix = append(d.prefix, tok)
	return d.evaluate()
}

// evaluate consults the trie for the accumulated prefix at the active
// scope chain, falling back toward global one level at a time (spec §3,
// §4.2).
func (d *Dispatcher) evaluate() Outcome {
	chain := d.scope().Chain()
	res, act, _ := d.bindings.Lookup(chain, d.prefix)
	switch res {
	case keymap.Unmatched:
		d.resetToIdle()
		return Outcome{}
	case keymap.Pending:
		d.state = Pending
		d.generation++
		return Outcome{StillPending: true, Generation: d.generation}
	case keymap.Resolved:
		d.resetToIdle()
		return Outcome{FireAction: act}
	case keymap.Ambiguous:
		d.state = Pending
		d.generation++
		return Outcome{StillPending: true, Generation: d.generation}
	}
	return Outcome{}
}

// Timeout fires the accumulated Ambiguous action if generation still
// matches the live pending episode (spec §4.2 ambiguity timeout; stale
// timeouts — superseded by a further keystroke — are no-ops).
func (d *Dispatcher) Timeout(generation int) Outcome {
	if d.state != Pending || generation != d.generation {
		return Outcome{}
	}
	chain := d.scope().Chain()
	res, act, _ := d.bindings.Lookup(chain, d.prefix)
	d.resetToIdle()
	if res == keymap.Ambiguous || res == keymap.Resolved {
		return Outcome{FireAction: act}
	}
	return Outcome{}
}

func (d *Dispatcher) feedLine(tok token.Token) Outcome {
	switch {
	case tok.Kind == token.KindSpecial && tok.Literal == "<esc>":
		wasSearch := d.state == Search
		d.resetToIdle()
		return Outcome{Cancelled: true, EnteredSearch: wasSearch}
	case tok.Kind == token.KindSpecial && tok.Literal == "<cr>":
		line := string(d.buffer)
		dir := d.searchDir
		isSearch := d.state == Search
		d.resetToIdle()
		if isSearch {
			return Outcome{SubmitLine: line, SearchDir: dir, EnteredSearch: true}
		}
		return Outcome{SubmitLine: line}
	case tok.Kind == token.KindSpecial && tok.Literal == "<bs>":
		if len(d.buffer) > 0 {
			d.buffer = d.buffer[:len(d.buffer)-1]
		}
		return Outcome{}
	case tok.Kind == token.KindRune:
		d.buffer = append(d.buffer, []rune(tok.Literal)...)
		return Outcome{}
	default:
		return Outcome{}
	}
}

func (d *Dispatcher) resetToIdle() {
	d.state = Idle
	d.prefix = nil
	d.buffer = nil
}
