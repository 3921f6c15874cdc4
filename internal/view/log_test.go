package view

import "testing"

func TestLog_Ingest_DecodesRecordFields(t *testing.T) {
	l := NewLog()
	l.Ingest([][]byte{
		[]byte("\nabc123full\x1fabc123\x1fJane\x1f2026-01-01\x1fInitial commit\x1e"),
		[]byte("\ndef456full\x1fdef456\x1fJohn\x1f2026-01-02\x1fSecond commit\x1e"),
	})
	if l.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", l.Len())
	}
	items := l.Items()
	if items[0].Hash != "abc123full" || items[0].Subject != "Initial commit" {
		t.Fatalf("item 0 = %+v", items[0])
	}
	if items[1].Author != "John" {
		t.Fatalf("item 1 author = %q, want John", items[1].Author)
	}
}
