package view

import (
	"strings"

	"gitrs/internal/keymap"
)

// Files implements the "files" view: a tree listing at a rev or the
// working tree (spec CLI "files [rev]"), decoding plain newline-delimited
// paths from `git ls-files`/`git ls-tree --name-only`.
type Files struct {
	Base[FileEntry]
	Rev string
}

func NewFiles(rev string) *Files {
	return &Files{Base: NewBase[FileEntry](keymap.Scope("files"), "files"), Rev: rev}
}

func (f *Files) Ingest(records [][]byte) {
	for _, rec := range records {
		path := strings.TrimRight(string(rec), "\n")
		if path == "" {
			continue
		}
		f.Append(FileEntry{Path: path, Rev_: f.Rev})
	}
}
