// Package token turns terminal key and mouse events into the canonical
// token stream the keymap trie dispatches on (spec §4.1).
package token

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Kind distinguishes the three token shapes: a plain rune, a named special,
// or a pointer event. Tokens compare structurally and total-order
// lexicographically on String() for tie-breaking (spec §3).
type Kind int

const (
	KindRune Kind = iota
	KindSpecial
	KindPointer
)

// Token is the canonical representation of a single user keystroke or
// pointer event (spec GLOSSARY).
type Token struct {
	Kind    Kind
	Literal string // canonical text form, e.g. "g", "<cr>", "<c-u>", "<rclick>"
	Row     int    // out-of-band, pointer events only
	Col     int    // out-of-band, pointer events only
}

func runeToken(s string) Token    { return Token{Kind: KindRune, Literal: s} }
func specialToken(s string) Token { return Token{Kind: KindSpecial, Literal: s} }
func pointerToken(s string, row, col int) Token {
	return Token{Kind: KindPointer, Literal: s, Row: row, Col: col}
}

// String returns the canonical textual form, used both for display and as
// the total-ordering key.
func (t Token) String() string { return t.Literal }

// Equal reports structural equality. Pointer tokens with the same Literal
// are equal regardless of Row/Col — the coordinates are out-of-band data
// for the action, not part of the dispatch key.
func (t Token) Equal(o Token) bool {
	return t.Kind == o.Kind && t.Literal == o.Literal
}

// Less implements the total order used to break ties deterministically.
func (t Token) Less(o Token) bool { return t.Literal < o.Literal }

var namedKeys = map[tea.KeyType]string{
	tea.KeyEnter:     "<cr>",
	tea.KeyTab:       "<tab>",
	tea.KeyEsc:       "<esc>",
	tea.KeyHome:      "<home>",
	tea.KeyEnd:       "<end>",
	tea.KeyPgUp:      "<pgup>",
	tea.KeyPgDown:    "<pgdown>",
	tea.KeyUp:        "<up>",
	tea.KeyDown:      "<down>",
	tea.KeyLeft:      "<left>",
	tea.KeyRight:     "<right>",
	tea.KeySpace:     "<space>",
	tea.KeyBackspace: "<bs>",
	tea.KeyShiftTab:  "<s-tab>",
}

// Normalize converts a bubbletea message into a canonical Token. ok is false
// for messages that carry no dispatchable token (e.g. a resize), which the
// caller drops (spec §4.1 "unknown events -> dropped").
func Normalize(msg tea.Msg) (Token, bool) {
	switch m := msg.(type) {
	case tea.KeyMsg:
		return normalizeKey(m)
	case tea.MouseMsg:
		return normalizeMouse(m)
	default:
		return Token{}, false
	}
}

func normalizeKey(m tea.KeyMsg) (Token, bool) {
	if name, ok := namedKeys[m.Type]; ok {
		return specialToken(name), true
	}

	if m.Type == tea.KeyRunes {
		if len(m.Runes) != 1 {
			// Pasted/multi-rune bursts are not single logical keystrokes;
			// dispatch only the first rune, matching "single logical token
			// per user action".
			if len(m.Runes) == 0 {
				return Token{}, false
			}
		}
		r := m.Runes[0]
		if m.Alt {
			return specialToken(fmt.Sprintf("<a-%c>", lower(r))), true
		}
		return runeToken(string(r)), true
	}

	// Control-modified letters arrive as dedicated KeyType values in
	// bubbletea (e.g. tea.KeyCtrlU); name them <c-x>.
	if name, ok := ctrlKeyName(m.Type); ok {
		return specialToken(name), true
	}

	return Token{}, false
}

func lower(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}

// ctrlKeyName derives "<c-x>" from bubbletea's named Ctrl-* key types by
// stripping the library's own prefix and lowercasing, rather than
// maintaining a second 26-entry table.
func ctrlKeyName(t tea.KeyType) (string, bool) {
	s := t.String()
	const prefix = "ctrl+"
	if !strings.HasPrefix(s, prefix) {
		return "", false
	}
	rest := strings.TrimPrefix(s, prefix)
	if len(rest) != 1 {
		return "", false
	}
	return fmt.Sprintf("<c-%c>", lower(rune(rest[0]))), true
}

// normalizeMouse maps click/scroll events to <lclick>/<rclick>/<scroll-up>/
// <scroll-down>, annotated out-of-band with (row, column) (spec §4.1).
func normalizeMouse(m tea.MouseMsg) (Token, bool) {
	ev := tea.MouseEvent(m)
	if ev.Action != tea.MouseActionPress && ev.Action != tea.MouseActionMotion {
		if ev.Button != tea.MouseButtonWheelUp && ev.Button != tea.MouseButtonWheelDown {
			return Token{}, false
		}
	}
	switch ev.Button {
	case tea.MouseButtonLeft:
		if ev.Action != tea.MouseActionPress {
			return Token{}, false
		}
		return pointerToken("<lclick>", ev.Y, ev.X), true
	case tea.MouseButtonRight:
		if ev.Action != tea.MouseActionPress {
			return Token{}, false
		}
		return pointerToken("<rclick>", ev.Y, ev.X), true
	case tea.MouseButtonWheelUp:
		return pointerToken("<scroll-up>", ev.Y, ev.X), true
	case tea.MouseButtonWheelDown:
		return pointerToken("<scroll-down>", ev.Y, ev.X), true
	default:
		return Token{}, false
	}
}

// Parse converts one textual token as it appears in a configuration file
// (e.g. from "<c-u>gg") into a Token, consuming and returning the remainder
// of the input. Used by internal/config's sequence tokenizer.
func Parse(s string) (Token, string, bool) {
	if s == "" {
		return Token{}, s, false
	}
	if s[0] == '<' {
		end := strings.IndexByte(s, '>')
		if end < 0 {
			return Token{}, s, false
		}
		lit := strings.ToLower(s[:end+1])
		return specialToken(lit), s[end+1:], true
	}
	r := []rune(s)[0]
	return runeToken(string(r)), string([]rune(s)[1:]), true
}
