package view

import "testing"

func TestFiles_Ingest_SkipsBlankLines(t *testing.T) {
	f := NewFiles("v1.0")
	f.Ingest([][]byte{[]byte("a.go\n"), []byte(""), []byte("b/c.go\n")})
	if f.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", f.Len())
	}
	if rev, ok := f.Items()[0].Rev(); !ok || rev != "v1.0" {
		t.Fatalf("Rev() = (%q, %v), want (v1.0, true)", rev, ok)
	}
}
