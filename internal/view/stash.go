package view

import (
	"strings"

	"gitrs/internal/keymap"
)

// Stash implements the "stash" view: the stash list (spec CLI "stash"),
// decoding internal/vcs's stashFormat.
type Stash struct {
	Base[StashEntry]
}

func NewStash() *Stash {
	return &Stash{Base: NewBase[StashEntry](keymap.Scope("stash"), "stash")}
}

// Ingest decodes records of the form
// "<hash>\x1f<selector>\x1f<author>\x1f<date>\x1f<subject>" (internal/vcs's
// stashFormat).
func (s *Stash) Ingest(records [][]byte) {
	for _, rec := range records {
		trimmed := strings.Trim(string(rec), "\n\x1e")
		if trimmed == "" {
			continue
		}
		fields := strings.Split(trimmed, "\x1f")
		if len(fields) != 5 {
			continue
		}
		s.Append(StashEntry{
			Hash:     fields[0],
			Selector: fields[1],
			Subject:  fields[4],
		})
	}
}
