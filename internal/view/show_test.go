package view

import "testing"

func TestShow_Ingest_TracksFileAndLineWithinHunk(t *testing.T) {
	s := NewShow("HEAD")
	s.Ingest([][]byte{
		[]byte("commit abc123"),
		[]byte("Author: Jane <jane@example.com>"),
		[]byte(""),
		[]byte("diff --git a/main.go b/main.go"),
		[]byte("--- a/main.go"),
		[]byte("+++ b/main.go"),
		[]byte("@@ -1,2 +1,3 @@"),
		[]byte(" package main"),
		[]byte("+import \"fmt\""),
		[]byte(" func main() {}"),
	})

	items := s.Items()
	last := items[len(items)-1]
	if file, ok := last.File(); !ok || file != "main.go" {
		t.Fatalf("last line File() = (%q, %v), want (main.go, true)", file, ok)
	}
	if line, ok := last.Line(); !ok || line != 3 {
		t.Fatalf("last line Line() = (%d, %v), want (3, true)", line, ok)
	}
}

func TestShow_Reset_PreservesOriginalRev(t *testing.T) {
	s := NewShow("v1.0")
	s.Ingest([][]byte{[]byte("commit abc123")})
	s.Reset()
	if s.Len() != 0 {
		t.Fatalf("Len() after Reset = %d, want 0", s.Len())
	}
	if s.cursor.rev != "v1.0" {
		t.Fatalf("cursor.rev after Reset = %q, want v1.0", s.cursor.rev)
	}
}
