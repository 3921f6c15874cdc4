package view

import (
	"strings"

	"gitrs/internal/keymap"
)

// Pager implements the external-pager mode (spec §6: gitrs invoked as
// `git log | gitrs`, reading stdin directly rather than shelling out
// itself). Unlike Show/Diff it has no hunk-aware file/line tracking — an
// arbitrary piped stream carries no file header gitrs can rely on — so
// each line is a plain TextLine.
type Pager struct {
	Base[TextLine]
}

func NewPager() *Pager {
	return &Pager{Base: NewBase[TextLine](keymap.Scope("pager"), "pager")}
}

func (p *Pager) Ingest(records [][]byte) {
	for _, rec := range records {
		p.Append(TextLine{Content: strings.TrimRight(string(rec), "\n")})
	}
}
