package ui

import (
	"gitrs/internal/pager"
	"gitrs/internal/subprocess"
)

// batchMsg wraps one pager.Batch for the active ingest loop.
type batchMsg struct {
	loop  *pager.Loop
	batch pager.Batch
	ok    bool
}

// timeoutMsg fires DefaultAmbiguityTimeout after the dispatcher last went
// Pending, carrying the generation it must still match to be live.
type timeoutMsg struct {
	generation int
}

// watchMsg signals that internal/watch observed a change under .git,
// driving an automatic reload (spec's ambient filesystem-watch addition).
type watchMsg struct{}

// reloadMsg requests the active view re-fetch and re-ingest its source.
type reloadMsg struct{}

type (
	finishedMsg   = subprocess.FinishedMsg
	exitMsg       = subprocess.ExitMsg
	backgroundMsg = subprocess.BackgroundMsg
)
