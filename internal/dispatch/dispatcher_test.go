package dispatch

import (
	"testing"

	"gitrs/internal/action"
	"gitrs/internal/keymap"
	"gitrs/internal/token"
)

func globalScope() keymap.Scope { return keymap.Global }

func tok(s string) token.Token {
	t, _, _ := token.Parse(s)
	return t
}

func newTestDispatcher(t *testing.T) *Dispatcher {
	t.Helper()
	reg := keymap.NewRegistry()
	if err := reg.Bind(keymap.Global, []token.Token{tok("g"), tok("g")}, action.Of(action.First)); err != nil {
		t.Fatalf("bind gg: %v", err)
	}
	if err := reg.Bind(keymap.Global, []token.Token{tok("G")}, action.Of(action.Last)); err != nil {
		t.Fatalf("bind G: %v", err)
	}
	return New(reg, globalScope)
}

func TestDispatcher_ResolvedFiresImmediately(t *testing.T) {
	d := newTestDispatcher(t)
	out := d.Feed(tok("G"))
	if out.FireAction == nil || out.FireAction.Builtin != action.Last {
		t.Fatalf("Feed(G) = %+v, want FireAction=Last", out)
	}
	if d.State() != Idle {
		t.Fatalf("State() after resolved fire = %v, want Idle", d.State())
	}
}

func TestDispatcher_PendingThenResolved(t *testing.T) {
	d := newTestDispatcher(t)
	out := d.Feed(tok("g"))
	if !out.StillPending || d.State() != Pending {
		t.Fatalf("Feed(g) = %+v state=%v, want StillPending in Pending", out, d.State())
	}
	out = d.Feed(tok("g"))
	if out.FireAction == nil || out.FireAction.Builtin != action.First {
		t.Fatalf("Feed(g) again = %+v, want FireAction=First", out)
	}
	if d.State() != Idle {
		t.Fatalf("State() after gg resolves = %v, want Idle", d.State())
	}
}

func TestDispatcher_UnmatchedResetsToIdle(t *testing.T) {
	d := newTestDispatcher(t)
	d.Feed(tok("g"))
	out := d.Feed(tok("z"))
	if out.FireAction != nil {
		t.Fatalf("Feed(z) after g = %+v, want no FireAction", out)
	}
	if d.State() != Idle {
		t.Fatalf("State() after unmatched = %v, want Idle", d.State())
	}
}

func TestDispatcher_EscCancelsPending(t *testing.T) {
	d := newTestDispatcher(t)
	d.Feed(tok("g"))
	out := d.Feed(tok("<esc>"))
	if !out.Cancelled {
		t.Fatalf("Feed(<esc>) from Pending = %+v, want Cancelled", out)
	}
	if d.State() != Idle {
		t.Fatalf("State() after esc = %v, want Idle", d.State())
	}
}

func TestDispatcher_Timeout_FiresAmbiguousAction(t *testing.T) {
	d := newTestDispatcher(t)
	out := d.Feed(tok("g"))
	gen := out.Generation

	fired := d.Timeout(gen)
	if fired.FireAction == nil || fired.FireAction.Builtin != action.First {
		t.Fatalf("Timeout(gen) = %+v, want FireAction=First", fired)
	}
	if d.State() != Idle {
		t.Fatalf("State() after timeout fire = %v, want Idle", d.State())
	}
}

func TestDispatcher_Timeout_StaleGenerationIsNoOp(t *testing.T) {
	d := newTestDispatcher(t)
	out := d.Feed(tok("g"))
	staleGen := out.Generation

	// A second keystroke resolves "gg" and moves past the first pending
	// episode; the first episode's generation is now stale.
	d.Feed(tok("g"))
	fired := d.Timeout(staleGen)
	if fired.FireAction != nil {
		t.Fatalf("Timeout(staleGen) = %+v, want no-op", fired)
	}
}

func TestDispatcher_CommandLineBuffersAndSubmits(t *testing.T) {
	d := newTestDispatcher(t)
	d.Feed(tok(":"))
	if d.State() != CommandLine {
		t.Fatalf("State() after ':' = %v, want CommandLine", d.State())
	}
	d.Feed(tok("s"))
	d.Feed(tok("e"))
	d.Feed(tok("t"))
	out := d.Feed(tok("<cr>"))
	if out.SubmitLine != "set" {
		t.Fatalf("SubmitLine = %q, want %q", out.SubmitLine, "set")
	}
	if d.State() != Idle {
		t.Fatalf("State() after submit = %v, want Idle", d.State())
	}
}

func TestDispatcher_SearchTracksDirection(t *testing.T) {
	d := newTestDispatcher(t)
	d.Feed(tok("?"))
	if d.State() != Search || d.SearchDirection() != Backward {
		t.Fatalf("after '?': state=%v dir=%v, want Search,Backward", d.State(), d.SearchDirection())
	}
	d.Feed(tok("x"))
	out := d.Feed(tok("<cr>"))
	if !out.EnteredSearch || out.SearchDir != Backward || out.SubmitLine != "x" {
		t.Fatalf("search submit = %+v, want EnteredSearch,Backward,%q", out, "x")
	}
}

func TestDispatcher_SubprocessRoutesInputAway(t *testing.T) {
	d := newTestDispatcher(t)
	d.BeginSubprocess()
	if d.State() != Subprocess {
		t.Fatalf("State() after BeginSubprocess = %v, want Subprocess", d.State())
	}
	out := d.Feed(tok("G"))
	if out.FireAction != nil || out.StillPending {
		t.Fatalf("Feed(G) during Subprocess = %+v, want empty outcome", out)
	}
	d.EndSubprocess()
	if d.State() != Idle {
		t.Fatalf("State() after EndSubprocess = %v, want Idle", d.State())
	}
	out = d.Feed(tok("G"))
	if out.FireAction == nil || out.FireAction.Builtin != action.Last {
		t.Fatalf("Feed(G) after EndSubprocess = %+v, want FireAction=Last", out)
	}
}

func TestDispatcher_BeginSubprocessAbandonsPendingPrefix(t *testing.T) {
	d := newTestDispatcher(t)
	d.Feed(tok("g"))
	d.BeginSubprocess()
	d.EndSubprocess()
	// The pending "g" must not combine with this fresh "G".
	out := d.Feed(tok("G"))
	if out.FireAction == nil || out.FireAction.Builtin != action.Last {
		t.Fatalf("Feed(G) after subprocess episode = %+v, want FireAction=Last", out)
	}
}

func TestDispatcher_BackspaceTrimsBuffer(t *testing.T) {
	d := newTestDispatcher(t)
	d.Feed(tok(":"))
	d.Feed(tok("a"))
	d.Feed(tok("b"))
	d.Feed(tok("<bs>"))
	out := d.Feed(tok("<cr>"))
	if out.SubmitLine != "a" {
		t.Fatalf("SubmitLine after backspace = %q, want %q", out.SubmitLine, "a")
	}
}
