package view

import (
	"strings"

	"gitrs/internal/keymap"
)

// Show implements the "show" view: a single commit's metadata and diff
// (spec CLI "show [rev]"), decoding `git show` output line by line.
type Show struct {
	Base[TextLine]
	cursor  diffCursor
	origRev string // the rev passed to NewShow, restored by Reset
}

func NewShow(rev string) *Show {
	s := &Show{Base: NewBase[TextLine](keymap.Scope("show"), "show"), origRev: rev}
	s.cursor.rev = rev
	return s
}

func (s *Show) Ingest(records [][]byte) {
	for _, rec := range records {
		line := strings.TrimRight(string(rec), "\n")
		s.Append(s.cursor.feed(line))
	}
}

func (s *Show) Reset() {
	s.Base.Reset()
	s.cursor = diffCursor{rev: s.origRev}
}
