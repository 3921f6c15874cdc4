package view

import (
	"strings"

	"gitrs/internal/keymap"
)

// Diff implements the "diff" view (spec CLI "diff [args…]"), decoding
// `git diff` output with the same hunk-tracking grammar as Show.
type Diff struct {
	Base[TextLine]
	cursor diffCursor
}

func NewDiff() *Diff {
	return &Diff{Base: NewBase[TextLine](keymap.Scope("diff"), "diff")}
}

func (d *Diff) Ingest(records [][]byte) {
	for _, rec := range records {
		line := strings.TrimRight(string(rec), "\n")
		d.Append(d.cursor.feed(line))
	}
}

func (d *Diff) Reset() {
	d.Base.Reset()
	d.cursor = diffCursor{}
}
