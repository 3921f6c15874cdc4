// Package search implements the forward/backward substring search
// subsystem (spec §4.10): a list of match positions over a view's textual
// projection, smart-case matching, and a wrapping result cursor.
//
// This replaces the teacher's internal/ui/search.go, which drove a tview
// widget's live selection directly; here the index is a pure data
// structure the view queries, decoupled from any rendering library, the
// way spec §8's "Round-trip / idempotence" properties require
// (deterministic given inputs, nothing hidden in a widget's internal
// state).
package search

import "strings"

// Direction mirrors dispatch.Direction without importing it, keeping this
// package free of a dependency on the dispatcher.
type Direction int

const (
	Forward Direction = iota
	Backward
)

// Index holds the match positions for one query over one textual
// projection (spec §4.10). It is invalidated and rebuilt whenever the
// item sequence changes (reload, pager append) — the view is responsible
// for calling Build again when that happens (spec §4.10 "invalidated and
// recomputed lazily").
type Index struct {
	query   string
	matches []int // indices into the projection that matched
	cursor  int   // index into matches, -1 if none yet visited
}

// smartCase reports whether query should match case-insensitively: all
// lowercase and smartCase enabled (spec §8 "Smart-case").
func smartCase(query string, enabled bool) bool {
	if !enabled {
		return false
	}
	return query == strings.ToLower(query)
}

// Build scans projection (one string per item, in item order) for query
// and returns an Index positioned before the first match. An empty query
// yields an empty, harmless Index.
func Build(projection []string, query string, smartCaseEnabled bool) *Index {
	idx := &Index{query: query, cursor: -1}
	if query == "" {
		return idx
	}
	needle := query
	insensitive := smartCase(query, smartCaseEnabled)
	if insensitive {
		needle = strings.ToLower(query)
	}
	for i, line := range projection {
		hay := line
		if insensitive {
			hay = strings.ToLower(hay)
		}
		if strings.Contains(hay, needle) {
			idx.matches = append(idx.matches, i)
		}
	}
	return idx
}

// Empty reports whether the index found no occurrences.
func (idx *Index) Empty() bool { return idx == nil || len(idx.matches) == 0 }

// Matches returns the matched item positions in ascending order.
func (idx *Index) Matches() []int {
	if idx == nil {
		return nil
	}
	return idx.matches
}

// Current returns the currently selected match position, if any.
func (idx *Index) Current() (int, bool) {
	if idx.Empty() || idx.cursor < 0 || idx.cursor >= len(idx.matches) {
		return 0, false
	}
	return idx.matches[idx.cursor], true
}

// Seek moves the cursor to the first match at or after from (Forward) or
// at or before from (Backward), used the first time a search is submitted
// so the match nearest the current position under the cursor is chosen
// rather than always the first in the list.
func (idx *Index) Seek(from int, dir Direction) {
	if idx.Empty() {
		return
	}
	switch dir {
	case Forward:
		for i, m := range idx.matches {
			if m >= from {
				idx.cursor = i
				return
			}
		}
		idx.cursor = 0
	case Backward:
		for i := len(idx.matches) - 1; i >= 0; i-- {
			if idx.matches[i] <= from {
				idx.cursor = i
				return
			}
		}
		idx.cursor = len(idx.matches) - 1
	}
}

// Next advances to the next match, wrapping to the first after the last
// (spec GLOSSARY, §4.10 "n"/"N" move with wrap-around).
func (idx *Index) Next() (int, bool) {
	if idx.Empty() {
		return 0, false
	}
	if idx.cursor < 0 {
		idx.cursor = 0
	} else {
		idx.cursor = (idx.cursor + 1) % len(idx.matches)
	}
	return idx.Current()
}

// Previous moves to the previous match, wrapping to the last before the
// first.
func (idx *Index) Previous() (int, bool) {
	if idx.Empty() {
		return 0, false
	}
	if idx.cursor <= 0 {
		idx.cursor = len(idx.matches) - 1
	} else {
		idx.cursor--
	}
	return idx.Current()
}
