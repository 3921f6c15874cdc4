package view

import (
	"strings"

	"gitrs/internal/keymap"
)

// Log implements the "log" view: a sequence of commits (spec CLI "log
// [args…]"), decoding internal/vcs's record-separator/unit-separator
// commit format.
type Log struct {
	Base[LogEntry]
}

func NewLog() *Log {
	return &Log{Base: NewBase[LogEntry](keymap.Scope("log"), "log")}
}

// Ingest decodes records of the form
// "<hash>\x1f<short>\x1f<author>\x1f<date>\x1f<subject>" (internal/vcs's
// logFormat, spec §4.9).
func (l *Log) Ingest(records [][]byte) {
	for _, rec := range records {
		trimmed := strings.Trim(string(rec), "\n\x1e")
		if trimmed == "" {
			continue
		}
		fields := strings.Split(trimmed, "\x1f")
		if len(fields) != 5 {
			continue
		}
		l.Append(LogEntry{
			Hash:    fields[0],
			Short:   fields[1],
			Author:  fields[2],
			Date:    fields[3],
			Subject: fields[4],
		})
	}
}
