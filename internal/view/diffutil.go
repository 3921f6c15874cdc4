package view

import (
	"strconv"
	"strings"
)

// diffCursor tracks the current file and line while scanning unified diff
// output line by line, shared by Show and Diff (spec §4.9: "%(file)/%(line)
// available ... within a parsed diff hunk").
type diffCursor struct {
	rev  string
	file string
	line int // next line number a '+' or context line will occupy
}

// feed advances cursor state for one diff line and returns the TextLine to
// append. It recognises "commit <sha>" lines, "+++ b/<path>" headers and
// "@@ -a,b +c,d @@" hunk headers; all other lines are passed through as
// content at the current position.
func (c *diffCursor) feed(line string) TextLine {
	switch {
	case strings.HasPrefix(line, "+++ "):
		path := strings.TrimPrefix(line, "+++ ")
		path = strings.TrimPrefix(path, "b/")
		if path != "/dev/null" {
			c.file = path
		}
		c.line = 0
		return TextLine{Content: line, Rev_: c.rev}
	case strings.HasPrefix(line, "@@ "):
		if n, ok := parseHunkStart(line); ok {
			c.line = n
		}
		return TextLine{Content: line, Rev_: c.rev, File_: c.file}
	case strings.HasPrefix(line, "commit "):
		c.rev = strings.TrimSpace(strings.TrimPrefix(line, "commit "))
		return TextLine{Content: line}
	case c.file == "":
		return TextLine{Content: line, Rev_: c.rev}
	case strings.HasPrefix(line, "-"):
		// removed line: belongs to the old file, not a line in the new one.
		return TextLine{Content: line, Rev_: c.rev, File_: c.file}
	default:
		tl := TextLine{Content: line, Rev_: c.rev, File_: c.file, FinalLine: c.line}
		c.line++
		return tl
	}
}

// parseHunkStart extracts the new-file starting line number from a
// "@@ -a,b +c,d @@" header.
func parseHunkStart(line string) (int, bool) {
	plus := strings.Index(line, "+")
	if plus < 0 {
		return 0, false
	}
	rest := line[plus+1:]
	end := strings.IndexAny(rest, ", @")
	if end < 0 {
		return 0, false
	}
	n, err := strconv.Atoi(rest[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}
