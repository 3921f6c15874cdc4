package view

import "testing"

func TestStatus_Ingest_OrdinaryAndRenamedAndUntracked(t *testing.T) {
	s := NewStatus()
	s.Ingest([][]byte{
		[]byte("# branch.head main"),
		[]byte("1 M. N... 100644 100644 100644 aaaa bbbb src/main.go"),
		[]byte("2 R. N... 100644 100644 100644 aaaa bbbb R100 new.go\told.go"),
		[]byte("? untracked.txt"),
	})

	if s.Branch != "main" {
		t.Fatalf("Branch = %q, want main", s.Branch)
	}
	if s.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", s.Len())
	}

	items := s.Items()
	if items[0].Path != "src/main.go" || !items[0].Staged() {
		t.Fatalf("item 0 = %+v, want staged src/main.go", items[0])
	}
	if items[1].Path != "new.go" || items[1].OrigPath != "old.go" {
		t.Fatalf("item 1 = %+v, want rename old.go -> new.go", items[1])
	}
	if !items[2].Untracked || items[2].Path != "untracked.txt" {
		t.Fatalf("item 2 = %+v, want untracked untracked.txt", items[2])
	}
}

func TestStatus_Scope_TracksFocusedEntry(t *testing.T) {
	s := NewStatus()
	s.Ingest([][]byte{
		[]byte("1 M. N... 100644 100644 100644 aaaa bbbb staged.go"),
		[]byte("1 .M N... 100644 100644 100644 aaaa bbbb modified.go"),
		[]byte("? untracked.go"),
	})

	s.JumpTo(0)
	if got := s.Scope(); got != "status:staged" {
		t.Fatalf("Scope() at staged entry = %q, want status:staged", got)
	}
	s.JumpTo(1)
	if got := s.Scope(); got != "status:unstaged:modified" {
		t.Fatalf("Scope() at modified entry = %q, want status:unstaged:modified", got)
	}
	s.JumpTo(2)
	if got := s.Scope(); got != "status:unstaged" {
		t.Fatalf("Scope() at untracked entry = %q, want status:unstaged", got)
	}
}

func TestStatus_ToggleFocused_FlipsStagedBit(t *testing.T) {
	s := NewStatus()
	s.Ingest([][]byte{[]byte("1 .M N... 100644 100644 100644 aaaa bbbb f.go")})
	s.JumpTo(0)
	if s.Items()[0].Staged() {
		t.Fatalf("expected unstaged before toggle")
	}
	s.ToggleFocused()
	if !s.Items()[0].Staged() {
		t.Fatalf("expected staged after toggle")
	}
}
