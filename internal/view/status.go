package view

import (
	"strings"

	"gitrs/internal/keymap"
)

// Status implements the "status" view: the working tree's staged and
// unstaged changes (spec CLI "status"), decoding `git status
// --porcelain=v2 --branch` (spec §4.9).
type Status struct {
	Base[StatusEntry]
	Branch string
}

func NewStatus() *Status {
	return &Status{Base: NewBase[StatusEntry](keymap.Scope("status"), "status")}
}

// Scope overrides Base.Scope: the status view's scope depends on the
// focused item's staged/unstaged/modified state (spec §3 "Scope",
// example "status:unstaged:modified").
func (s *Status) Scope() keymap.Scope {
	row, ok := s.FocusedRow()
	if !ok {
		return keymap.Scope("status")
	}
	if row.Staged() {
		return keymap.Scope("status:staged")
	}
	if row.Modified() {
		return keymap.Scope("status:unstaged:modified")
	}
	return keymap.Scope("status:unstaged")
}

// Ingest decodes `git status --porcelain=v2 --branch` lines (spec §4.9).
// Unrecognised or malformed lines are skipped rather than aborting the
// whole batch — one bad line in a big status output shouldn't blank the
// view.
func (s *Status) Ingest(records [][]byte) {
	for _, rec := range records {
		line := string(rec)
		if line == "" {
			continue
		}
		switch line[0] {
		case '#':
			parseBranchHeader(line, s)
		case '1':
			if e, ok := parseOrdinaryEntry(line); ok {
				s.Append(e)
			}
		case '2':
			if e, ok := parseRenamedEntry(line); ok {
				s.Append(e)
			}
		case '?':
			path := strings.TrimSpace(strings.TrimPrefix(line, "?"))
			if path != "" {
				s.Append(StatusEntry{Path: path, Untracked: true})
			}
		}
	}
}

func parseBranchHeader(line string, s *Status) {
	const prefix = "# branch.head "
	if strings.HasPrefix(line, prefix) {
		s.Branch = strings.TrimPrefix(line, prefix)
	}
}

// parseOrdinaryEntry decodes a porcelain v2 "1 <XY> <sub> <mH> <mI> <mW>
// <hH> <hI> <path>" line.
func parseOrdinaryEntry(line string) (StatusEntry, bool) {
	fields := strings.SplitN(line, " ", 9)
	if len(fields) < 9 || len(fields[1]) != 2 {
		return StatusEntry{}, false
	}
	return StatusEntry{
		Path:      fields[8],
		IndexXY:   fields[1][0],
		WorktreeY: fields[1][1],
	}, true
}

// parseRenamedEntry decodes a porcelain v2 "2 <XY> <sub> <mH> <mI> <mW>
// <hH> <hI> <score> <path>\t<origPath>" line.
func parseRenamedEntry(line string) (StatusEntry, bool) {
	fields := strings.SplitN(line, " ", 10)
	if len(fields) < 10 || len(fields[1]) != 2 {
		return StatusEntry{}, false
	}
	pathPart := fields[9]
	path, orig, ok := strings.Cut(pathPart, "\t")
	if !ok {
		path, orig = pathPart, ""
	}
	return StatusEntry{
		Path:      path,
		OrigPath:  orig,
		IndexXY:   fields[1][0],
		WorktreeY: fields[1][1],
	}, true
}

// JumpToGroup moves the cursor to the first entry of the staged (true) or
// unstaged (false) group, backing the status_switch_view and
// focus_staged_view/focus_unstaged_view builtins. A no-op when the target
// group has no entries.
func (s *Status) JumpToGroup(staged bool) {
	for i, e := range s.Items() {
		if e.Staged() == staged {
			s.JumpTo(i)
			return
		}
	}
}

// ToggleFocused flips the staged bit of the focused entry locally,
// reflecting stage_unstage_file's immediate effect before the next reload
// confirms it from git itself (spec builtin "stage_unstage_file").
func (s *Status) ToggleFocused() {
	row, ok := s.FocusedRow()
	if !ok {
		return
	}
	if row.Staged() {
		row.IndexXY = '.'
	} else {
		row.IndexXY = 'M'
	}
	s.itemsMut()[s.CursorPos()] = row
}
