package token

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestParse_SpecialAndRuneSequence(t *testing.T) {
	tok, rest, ok := Parse("<c-u>gg")
	if !ok || tok.Kind != KindSpecial || tok.Literal != "<c-u>" {
		t.Fatalf("Parse(<c-u>gg) = %+v,%q,%v, want special <c-u>", tok, rest, ok)
	}
	if rest != "gg" {
		t.Fatalf("rest = %q, want %q", rest, "gg")
	}

	tok, rest, ok = Parse(rest)
	if !ok || tok.Kind != KindRune || tok.Literal != "g" {
		t.Fatalf("Parse(gg) = %+v,%q,%v, want rune g", tok, rest, ok)
	}
	if rest != "g" {
		t.Fatalf("rest = %q, want %q", rest, "g")
	}
}

func TestParse_UnterminatedSpecialFails(t *testing.T) {
	if _, _, ok := Parse("<c-u"); ok {
		t.Fatalf("Parse(<c-u) = ok, want failure on unterminated bracket")
	}
}

func TestParse_EmptyStringFails(t *testing.T) {
	if _, _, ok := Parse(""); ok {
		t.Fatalf("Parse(\"\") = ok, want failure")
	}
}

func TestNormalize_NamedKey(t *testing.T) {
	tok, ok := Normalize(tea.KeyMsg{Type: tea.KeyEnter})
	if !ok || tok.Kind != KindSpecial || tok.Literal != "<cr>" {
		t.Fatalf("Normalize(Enter) = %+v,%v, want special <cr>", tok, ok)
	}
}

func TestNormalize_PlainRune(t *testing.T) {
	tok, ok := Normalize(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'g'}})
	if !ok || tok.Kind != KindRune || tok.Literal != "g" {
		t.Fatalf("Normalize(g) = %+v,%v, want rune g", tok, ok)
	}
}

func TestNormalize_AltRuneBecomesSpecial(t *testing.T) {
	tok, ok := Normalize(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'G'}, Alt: true})
	if !ok || tok.Kind != KindSpecial || tok.Literal != "<a-g>" {
		t.Fatalf("Normalize(alt-G) = %+v,%v, want special <a-g>", tok, ok)
	}
}

func TestNormalize_CtrlKey(t *testing.T) {
	tok, ok := Normalize(tea.KeyMsg{Type: tea.KeyCtrlU})
	if !ok || tok.Kind != KindSpecial || tok.Literal != "<c-u>" {
		t.Fatalf("Normalize(ctrl-u) = %+v,%v, want special <c-u>", tok, ok)
	}
}

func TestNormalize_UnknownMessageDropped(t *testing.T) {
	if _, ok := Normalize(tea.WindowSizeMsg{}); ok {
		t.Fatalf("Normalize(WindowSizeMsg) = ok, want dropped")
	}
}

func TestNormalize_LeftClickProducesPointerToken(t *testing.T) {
	msg := tea.MouseMsg(tea.MouseEvent{
		X: 5, Y: 3,
		Button: tea.MouseButtonLeft,
		Action: tea.MouseActionPress,
	})
	tok, ok := Normalize(msg)
	if !ok || tok.Kind != KindPointer || tok.Literal != "<lclick>" {
		t.Fatalf("Normalize(left click) = %+v,%v, want pointer <lclick>", tok, ok)
	}
	if tok.Row != 3 || tok.Col != 5 {
		t.Fatalf("Row,Col = %d,%d, want 3,5", tok.Row, tok.Col)
	}
}

func TestNormalize_RightClickProducesPointerToken(t *testing.T) {
	msg := tea.MouseMsg(tea.MouseEvent{
		X: 1, Y: 2,
		Button: tea.MouseButtonRight,
		Action: tea.MouseActionPress,
	})
	tok, ok := Normalize(msg)
	if !ok || tok.Literal != "<rclick>" {
		t.Fatalf("Normalize(right click) = %+v,%v, want <rclick>", tok, ok)
	}
}

func TestTokenEqual_PointerIgnoresCoordinates(t *testing.T) {
	a := Token{Kind: KindPointer, Literal: "<lclick>", Row: 1, Col: 1}
	b := Token{Kind: KindPointer, Literal: "<lclick>", Row: 9, Col: 9}
	if !a.Equal(b) {
		t.Fatalf("pointer tokens with same Literal should be Equal regardless of coordinates")
	}
}
