package config

import (
	"os"
	"path/filepath"
	"testing"

	"gitrs/internal/keymap"
	"gitrs/internal/token"
)

func newTarget() Target {
	return Target{
		Bindings: keymap.NewRegistry(),
		Buttons:  keymap.NewButtonRegistry(),
		Options:  New(),
	}
}

func TestOptions_Defaults(t *testing.T) {
	o := New()
	if got := o.Git(); got != "git" {
		t.Fatalf("Git() = %q, want %q", got, "git")
	}
	if got := o.Int(ScrollOff); got != 2 {
		t.Fatalf("ScrollOff default = %d, want 2", got)
	}
	if !o.Bool(SmartCase) {
		t.Fatalf("SmartCase default = false, want true")
	}
}

func TestOptions_Set(t *testing.T) {
	tests := []struct {
		name    string
		option  string
		value   string
		wantErr bool
	}{
		{"valid string", "git", "hub", false},
		{"valid int", "scrolloff", "10", false},
		{"invalid int", "scrolloff", "abc", true},
		{"valid bool", "smart_case", "false", false},
		{"unknown option", "bogus", "1", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := New()
			err := o.Set(tt.option, tt.value)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Set(%q, %q) error = %v, wantErr %v", tt.option, tt.value, err, tt.wantErr)
			}
		})
	}
}

func TestOptions_Set_InvalidLeavesPreviousValue(t *testing.T) {
	o := New()
	before := o.Int(ScrollOff)
	if err := o.Set("scrolloff", "nope"); err == nil {
		t.Fatalf("Set returned nil error, want OPTION_VALUE error")
	}
	if got := o.Int(ScrollOff); got != before {
		t.Fatalf("ScrollOff = %d after invalid Set, want unchanged %d", got, before)
	}
}

func TestApplyLine_Map(t *testing.T) {
	target := newTarget()
	if err := ApplyLine("map global gg first", target); err != nil {
		t.Fatalf("ApplyLine error: %v", err)
	}
	res, _, scope := target.Bindings.Lookup([]keymap.Scope{"global"}, seqFor(t, "gg"))
	if res != keymap.Resolved {
		t.Fatalf("Lookup result = %v, want Resolved", res)
	}
	if scope != "global" {
		t.Fatalf("Lookup scope = %v, want global", scope)
	}
}

func TestApplyLine_PrefixConflictRejected(t *testing.T) {
	target := newTarget()
	if err := ApplyLine("map global gg first", target); err != nil {
		t.Fatalf("first ApplyLine error: %v", err)
	}
	if err := ApplyLine("map global g last", target); err == nil {
		t.Fatalf("ApplyLine returned nil error, want CONFIG_PREFIX_CONFLICT")
	}
}

func TestApplyLine_RebindExactSequenceReplaces(t *testing.T) {
	target := newTarget()
	if err := ApplyLine("map global gg first", target); err != nil {
		t.Fatalf("ApplyLine error: %v", err)
	}
	if err := ApplyLine("map global gg last", target); err != nil {
		t.Fatalf("rebind should succeed, got error: %v", err)
	}
}

func TestApplyLine_Button(t *testing.T) {
	target := newTarget()
	if err := ApplyLine(`button status "Stage" stage_unstage_file`, target); err != nil {
		t.Fatalf("ApplyLine error: %v", err)
	}
	buttons := target.Buttons.For([]keymap.Scope{"status", "global"})
	if len(buttons) != 1 || buttons[0].Label != "Stage" {
		t.Fatalf("buttons = %+v, want one button labeled Stage", buttons)
	}
}

func TestApplyLine_Set(t *testing.T) {
	target := newTarget()
	if err := ApplyLine("set scrolloff 10", target); err != nil {
		t.Fatalf("ApplyLine error: %v", err)
	}
	if got := target.Options.Int(ScrollOff); got != 10 {
		t.Fatalf("scrolloff = %d, want 10", got)
	}
}

func TestApplyLine_CommentsAndBlankLinesSkipped(t *testing.T) {
	target := newTarget()
	for _, line := range []string{"", "   ", "# a comment"} {
		if err := ApplyLine(line, target); err != nil {
			t.Fatalf("ApplyLine(%q) error = %v, want nil", line, err)
		}
	}
}

func TestApplyLine_MalformedLineReportedNotFatal(t *testing.T) {
	target := newTarget()
	if err := ApplyLine("bogus directive", target); err == nil {
		t.Fatalf("ApplyLine returned nil error, want CONFIG_SYNTAX")
	}
	// The store must remain usable after a malformed line.
	if err := ApplyLine("set scrolloff 3", target); err != nil {
		t.Fatalf("subsequent ApplyLine failed: %v", err)
	}
}

func TestApplyLine_ShellAction(t *testing.T) {
	target := newTarget()
	if err := ApplyLine("map log d !%(git) difftool %(rev)^..%(rev) -- %(file)", target); err != nil {
		t.Fatalf("ApplyLine error: %v", err)
	}
	res, act, _ := target.Bindings.Lookup([]keymap.Scope{"log"}, seqFor(t, "d"))
	if res != keymap.Resolved {
		t.Fatalf("Lookup result = %v, want Resolved", res)
	}
	if !act.IsShell || act.Template != "%(git) difftool %(rev)^..%(rev) -- %(file)" {
		t.Fatalf("act = %+v, want shell template", act)
	}
}

func TestLoad_MissingFileIsNotAnError(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	target := newTarget()
	errs := Load(filepath.Join(home, "does-not-exist"), target)
	if len(errs) != 0 {
		t.Fatalf("Load errs = %v, want none for a missing file", errs)
	}
}

func TestLoad_AppliesLinesInOrder(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := filepath.Join(t.TempDir(), "gitrsrc")
	contents := "map global gg first\nset scrolloff 5\n# comment\nmap global G last\n"
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	target := newTarget()
	if errs := Load(path, target); len(errs) != 0 {
		t.Fatalf("Load errs = %v, want none", errs)
	}
	if got := target.Options.Int(ScrollOff); got != 5 {
		t.Fatalf("scrolloff = %d, want 5", got)
	}
	res, _, _ := target.Bindings.Lookup([]keymap.Scope{"global"}, seqFor(t, "gg"))
	if res != keymap.Resolved {
		t.Fatalf("Lookup(gg) = %v, want Resolved", res)
	}
}

func TestLoad_AccumulatesNonFatalErrors(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := filepath.Join(t.TempDir(), "gitrsrc")
	contents := "bogus\nmap global gg first\n"
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	target := newTarget()
	errs := Load(path, target)
	if len(errs) != 1 {
		t.Fatalf("Load errs = %v, want exactly one", errs)
	}
	res, _, _ := target.Bindings.Lookup([]keymap.Scope{"global"}, seqFor(t, "gg"))
	if res != keymap.Resolved {
		t.Fatalf("later valid line should still apply, Lookup = %v", res)
	}
}

func TestExpandPath_ExpandsTildeAndReturnsAbs(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := expandPath("~/a/b")
	if err != nil {
		t.Fatalf("expandPath returned error: %v", err)
	}
	want := filepath.Join(home, "a/b")
	if got != want {
		t.Fatalf("expandPath = %q, want %q", got, want)
	}
}

func TestExpandPath_EmptyErrors(t *testing.T) {
	if _, err := expandPath("   "); err == nil {
		t.Fatalf("expandPath returned nil error, want error")
	}
}

// seqFor is a small test helper parsing a literal token sequence like "gg".
func seqFor(t *testing.T, s string) []token.Token {
	t.Helper()
	seq, err := parseSequence(s)
	if err != nil {
		t.Fatalf("parseSequence(%q) error: %v", s, err)
	}
	return seq
}
