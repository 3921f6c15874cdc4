package view

import "strconv"

// notApplicable backs every accessor that has no meaningful value for a
// given row — spec §3 invariant: "never allowed to produce an empty
// string silently", so these always return ok=false rather than "".
func notApplicable() (string, bool) { return "", false }

// StatusEntry is one row of `git status --porcelain=v2` output: a tracked
// or untracked path with its index/worktree state (spec §4.8, CLI
// "status").
type StatusEntry struct {
	Path      string
	OrigPath  string // rename source, empty unless a rename/copy
	IndexXY   byte   // status code in the index (staged) column
	WorktreeY byte   // status code in the worktree (unstaged) column
	Untracked bool
}

func (e StatusEntry) Rev() (string, bool)  { return notApplicable() }
func (e StatusEntry) File() (string, bool) { return e.Path, e.Path != "" }
func (e StatusEntry) Line() (int, bool)    { return 0, false }
func (e StatusEntry) Text() (string, bool) { return e.Path, e.Path != "" }

func (e StatusEntry) Display() string {
	if e.OrigPath != "" {
		return e.OrigPath + " -> " + e.Path
	}
	return e.Path
}

// Staged reports whether this entry has index-side changes. Porcelain v2
// uses '.' (not a space) for "no change" in the XY columns.
func (e StatusEntry) Staged() bool { return !e.Untracked && e.IndexXY != '.' && e.IndexXY != '?' }

// Modified reports whether this entry's worktree-side status is a plain
// modification, distinguishing spec's "status:unstaged:modified" scope.
func (e StatusEntry) Modified() bool { return e.WorktreeY == 'M' }

// LogEntry is one commit in a `log`/`stash list` stream (spec CLI "log").
type LogEntry struct {
	Hash, Short, Author, Date, Subject string
}

func (e LogEntry) Rev() (string, bool)  { return e.Hash, e.Hash != "" }
func (e LogEntry) File() (string, bool) { return notApplicable() }
func (e LogEntry) Line() (int, bool)    { return 0, false }
func (e LogEntry) Text() (string, bool) { return e.Subject, e.Subject != "" }

func (e LogEntry) Display() string {
	return e.Short + "  " + e.Date + "  " + e.Author + "  " + e.Subject
}

// ReflogEntry is one `git reflog` row: a selector (HEAD@{0}) resolving to
// a commit, with the operation that produced it as the subject.
type ReflogEntry struct {
	Hash, Selector, Subject string
}

func (e ReflogEntry) Rev() (string, bool)  { return e.Hash, e.Hash != "" }
func (e ReflogEntry) File() (string, bool) { return notApplicable() }
func (e ReflogEntry) Line() (int, bool)    { return 0, false }
func (e ReflogEntry) Text() (string, bool) { return e.Subject, e.Subject != "" }

func (e ReflogEntry) Display() string { return e.Selector + "  " + e.Hash + "  " + e.Subject }

// FileEntry is one path in the "files" tree-listing view (spec CLI
// "files [rev]").
type FileEntry struct {
	Path string
	Rev_ string // the rev the listing was taken at, "" for the working tree
}

func (e FileEntry) Rev() (string, bool)  { return e.Rev_, e.Rev_ != "" }
func (e FileEntry) File() (string, bool) { return e.Path, e.Path != "" }
func (e FileEntry) Line() (int, bool)    { return 0, false }
func (e FileEntry) Text() (string, bool) { return e.Path, e.Path != "" }
func (e FileEntry) Display() string      { return e.Path }

// BlameLine is one line of `git blame --porcelain` output for a fixed
// file (spec CLI "blame <file> [line]").
type BlameLine struct {
	Hash      string
	Author    string
	FinalLine int
	FilePath  string
	Content   string
}

func (l BlameLine) Rev() (string, bool)  { return l.Hash, l.Hash != "" }
func (l BlameLine) File() (string, bool) { return l.FilePath, l.FilePath != "" }
func (l BlameLine) Line() (int, bool)    { return l.FinalLine, l.FinalLine > 0 }
func (l BlameLine) Text() (string, bool) { return l.Content, l.Content != "" }
func (l BlameLine) Display() string {
	return l.Hash[:min(8, len(l.Hash))] + "  " + l.Author + "  " + strconv.Itoa(l.FinalLine) + "  " + l.Content
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// TextLine is a generic display line for views whose item granularity is
// "one rendered line of VCS output" (show, diff, pager): commit headers,
// diff hunk headers, and +/- content lines. File and FinalLine are set
// when the line falls within a parsed diff hunk, so %(file)/%(line) are
// available there and "not applicable" everywhere else (e.g. the commit
// message header).
type TextLine struct {
	Content   string
	Rev_      string
	File_     string
	FinalLine int
}

func (l TextLine) Rev() (string, bool)  { return l.Rev_, l.Rev_ != "" }
func (l TextLine) File() (string, bool) { return l.File_, l.File_ != "" }
func (l TextLine) Line() (int, bool)    { return l.FinalLine, l.FinalLine > 0 }
func (l TextLine) Text() (string, bool) { return l.Content, l.Content != "" }
func (l TextLine) Display() string      { return l.Content }

// StashEntry is one `git stash list` row.
type StashEntry struct {
	Hash, Selector, Subject string
}

func (e StashEntry) Rev() (string, bool)  { return e.Hash, e.Hash != "" }
func (e StashEntry) File() (string, bool) { return notApplicable() }
func (e StashEntry) Line() (int, bool)    { return 0, false }
func (e StashEntry) Text() (string, bool) { return e.Subject, e.Subject != "" }
func (e StashEntry) Display() string      { return e.Selector + "  " + e.Subject }
