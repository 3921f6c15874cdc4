package search

import "testing"

var projection = []string{"Foo bar", "foo baz", "qux FOO", "nothing here"}

func TestBuild_SmartCase_LowercaseQueryIsCaseInsensitive(t *testing.T) {
	idx := Build(projection, "foo", true)
	if len(idx.Matches()) != 3 {
		t.Fatalf("Matches = %v, want 3 matches", idx.Matches())
	}
}

func TestBuild_SmartCase_MixedCaseQueryIsCaseSensitive(t *testing.T) {
	idx := Build(projection, "Foo", true)
	if got := idx.Matches(); len(got) != 1 || got[0] != 0 {
		t.Fatalf("Matches = %v, want only index 0", got)
	}
}

func TestBuild_SmartCaseDisabled_AlwaysCaseSensitive(t *testing.T) {
	idx := Build(projection, "foo", false)
	if got := idx.Matches(); len(got) != 1 || got[0] != 1 {
		t.Fatalf("Matches = %v, want only index 1", got)
	}
}

func TestIndex_NextWrapsAround(t *testing.T) {
	idx := Build(projection, "foo", true)
	first, ok := idx.Next()
	if !ok || first != 0 {
		t.Fatalf("first Next() = %d,%v want 0,true", first, ok)
	}
	idx.Next()
	last, _ := idx.Next()
	if last != 2 {
		t.Fatalf("third Next() = %d, want 2", last)
	}
	wrapped, _ := idx.Next()
	if wrapped != 0 {
		t.Fatalf("Next() after exhausting matches = %d, want wrap to 0", wrapped)
	}
}

func TestIndex_PreviousWrapsAround(t *testing.T) {
	idx := Build(projection, "foo", true)
	first, ok := idx.Previous()
	if !ok || first != 2 {
		t.Fatalf("first Previous() = %d,%v want 2,true (wrap to last)", first, ok)
	}
}

func TestIndex_EmptyQueryYieldsNoMatches(t *testing.T) {
	idx := Build(projection, "", true)
	if !idx.Empty() {
		t.Fatalf("Empty() = false, want true for empty query")
	}
	if _, ok := idx.Next(); ok {
		t.Fatalf("Next() on empty index returned ok=true")
	}
}

func TestIndex_SeekForwardFindsNearestAtOrAfter(t *testing.T) {
	idx := Build(projection, "foo", true)
	idx.Seek(1, Forward)
	pos, ok := idx.Current()
	if !ok || pos != 1 {
		t.Fatalf("Current() after Seek(1, Forward) = %d,%v want 1,true", pos, ok)
	}
}

func TestIndex_SeekBackwardFindsNearestAtOrBefore(t *testing.T) {
	idx := Build(projection, "foo", true)
	idx.Seek(1, Backward)
	pos, ok := idx.Current()
	if !ok || pos != 1 {
		t.Fatalf("Current() after Seek(1, Backward) = %d,%v want 1,true", pos, ok)
	}
}
