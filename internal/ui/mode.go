package ui

// Mode selects which CLI subcommand's view gitrs opens with (spec §6:
// "status | log [args…] | show [rev] | reflog [args…] | stash | files
// [rev] | blame <file> [line] | diff [args…]"), plus the external-pager
// invocation form that reads the stream from stdin instead of spawning git
// itself.
type Mode int

const (
	ModeStatus Mode = iota
	ModeLog
	ModeShow
	ModeReflog
	ModeStash
	ModeFiles
	ModeBlame
	ModeDiff
	ModePager // invoked as `git log | gitrs`; ingest reads os.Stdin
)
