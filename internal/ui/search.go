package ui

import (
	"gitrs/internal/config"
	"gitrs/internal/dispatch"
	"gitrs/internal/search"
)

// runSearch builds a fresh search.Index over the active view's projection
// and seeks to the match nearest the cursor (spec §4.10): a newly
// submitted query always starts from "nearest", not "first in the list".
func (m *Model) runSearch(query string, dir dispatch.Direction) {
	if m.current == nil {
		return
	}
	m.searchQuery = query
	m.searchIdx = search.Build(m.current.Projection(), query, m.options.Bool(config.SmartCase))
	if m.searchIdx.Empty() {
		m.errMsg = "no matches for " + query
		return
	}
	m.errMsg = ""
	searchDir := search.Forward
	if dir == dispatch.Backward {
		searchDir = search.Backward
	}
	m.searchIdx.Seek(m.current.CursorPos(), searchDir)
	if pos, ok := m.searchIdx.Current(); ok {
		m.current.JumpTo(pos)
	}
}

func (m *Model) nextSearchResult() {
	if m.searchIdx == nil || m.searchIdx.Empty() {
		return
	}
	if pos, ok := m.searchIdx.Next(); ok {
		m.current.JumpTo(pos)
	}
}

func (m *Model) previousSearchResult() {
	if m.searchIdx == nil || m.searchIdx.Empty() {
		return
	}
	if pos, ok := m.searchIdx.Previous(); ok {
		m.current.JumpTo(pos)
	}
}
