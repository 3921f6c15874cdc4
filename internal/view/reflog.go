package view

import (
	"strings"

	"gitrs/internal/keymap"
)

// Reflog implements the "reflog" view (spec CLI "reflog [args…]"),
// decoding `git reflog show --date=iso-strict` lines of the form
// "<hash> <selector>: <subject>".
type Reflog struct {
	Base[ReflogEntry]
}

func NewReflog() *Reflog {
	return &Reflog{Base: NewBase[ReflogEntry](keymap.Scope("reflog"), "reflog")}
}

func (r *Reflog) Ingest(records [][]byte) {
	for _, rec := range records {
		line := strings.TrimRight(string(rec), "\n")
		if line == "" {
			continue
		}
		hash, rest, ok := strings.Cut(line, " ")
		if !ok {
			continue
		}
		selector, subject, ok := strings.Cut(rest, ": ")
		if !ok {
			selector, subject = rest, ""
		}
		r.Append(ReflogEntry{
			Hash:     hash,
			Selector: strings.TrimSuffix(selector, ":"),
			Subject:  subject,
		})
	}
}
