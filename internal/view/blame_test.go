package view

import "testing"

func TestBlame_Ingest_TracksCommitHeaderAcrossLines(t *testing.T) {
	b := NewBlame("main.go")
	b.Ingest([][]byte{
		[]byte("aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa 1 1 2"),
		[]byte("author Jane Doe"),
		[]byte("author-mail <jane@example.com>"),
		[]byte("summary Initial commit"),
		[]byte("filename main.go"),
		[]byte("\tpackage main"),
		[]byte("aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa 2 2"),
		[]byte("\tfunc main() {}"),
	})
	if b.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", b.Len())
	}
	items := b.Items()
	if items[0].Content != "package main" || items[0].FinalLine != 1 {
		t.Fatalf("item 0 = %+v", items[0])
	}
	if items[1].Author != "Jane Doe" {
		t.Fatalf("item 1 author = %q, want Jane Doe (carried from earlier header)", items[1].Author)
	}
	if items[1].FinalLine != 2 || items[1].Content != "func main() {}" {
		t.Fatalf("item 1 = %+v", items[1])
	}
}
