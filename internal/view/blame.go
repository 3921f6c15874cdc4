package view

import (
	"strconv"
	"strings"

	"gitrs/internal/keymap"
)

// Blame implements the "blame" view (spec CLI "blame <file> [line]"),
// decoding `git blame --porcelain` output. The grammar interleaves a
// commit header block (full the first time a commit is seen in the
// stream, abbreviated to a single line thereafter) with a tab-prefixed
// content line; this parser tracks the commit/author/path state across
// records the same way `git blame --porcelain` expects a reader to.
type Blame struct {
	Base[BlameLine]
	File string

	pendingHash   string
	pendingLine   int
	pendingAuthor string
	knownAuthor   map[string]string
	currentPath   string
}

func NewBlame(file string) *Blame {
	return &Blame{
		Base:        NewBase[BlameLine](keymap.Scope("blame"), "blame"),
		File:        file,
		currentPath: file,
		knownAuthor: make(map[string]string),
	}
}

func (b *Blame) Ingest(records [][]byte) {
	for _, rec := range records {
		line := strings.TrimRight(string(rec), "\n")
		switch {
		case line == "":
			continue
		case line[0] == '\t':
			content := line[1:]
			b.Append(BlameLine{
				Hash:      b.pendingHash,
				Author:    b.knownAuthor[b.pendingHash],
				FinalLine: b.pendingLine,
				FilePath:  b.currentPath,
				Content:   content,
			})
		case strings.HasPrefix(line, "author "):
			b.knownAuthor[b.pendingHash] = strings.TrimPrefix(line, "author ")
		case strings.HasPrefix(line, "filename "):
			b.currentPath = strings.TrimPrefix(line, "filename ")
		case isHexHash(line):
			b.parseHeaderLine(line)
		default:
			// author-mail, author-time, committer*, summary, previous,
			// boundary: metadata this view doesn't project.
		}
	}
}

// parseHeaderLine decodes a "<hash> <orig-line> <final-line> [<count>]"
// line, the start of each blame chunk.
func (b *Blame) parseHeaderLine(line string) {
	fields := strings.Fields(line)
	if len(fields) < 3 {
		return
	}
	b.pendingHash = fields[0]
	final, err := strconv.Atoi(fields[2])
	if err != nil {
		return
	}
	b.pendingLine = final
}

func isHexHash(line string) bool {
	sp := strings.IndexByte(line, ' ')
	if sp < 7 {
		return false
	}
	hash := line[:sp]
	for _, r := range hash {
		if !((r >= '0' && r <= '9') || (r >= 'a' && r <= 'f')) {
			return false
		}
	}
	return true
}
