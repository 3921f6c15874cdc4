// Package pager implements the pager ingestion loop (spec §4.9): it
// streams bytes from a possibly large, possibly unbounded source —
// standard input when gitrs is invoked as an external pager, or a git
// subprocess's stdout when gitrs shells out for its own "log"/"show"/etc.
// views — and hands parsed records to the UI thread without ever blocking
// it (spec §5 "the pager ingest runs on a separate worker that hands
// parsed batches to the UI thread through a single-producer/single-
// consumer channel; the UI thread owns the view's item sequence and is
// the only writer").
//
// This supersedes the teacher's internal/logtail, which tailed a complete,
// already-closed log file in one batch read. The ring-buffer-free
// incremental scan here generalizes that file-tailing technique to an
// open-ended stream that may still be growing while the UI renders it.
package pager

import (
	"bufio"
	"bytes"
	"context"
	"io"

	"gitrs/internal/apperr"
)

// defaultBatchSize bounds how many records accumulate before a batch is
// flushed to the UI thread even if no opportunistic delivery has happened
// yet — keeps a single very bursty write from producing one giant batch.
const defaultBatchSize = 256

// Batch is one delivery from the ingest worker to the UI thread. Records
// within a batch are in stream order (spec §5 "within a batch, items are
// appended in stream order").
type Batch struct {
	Records [][]byte
	Err     *apperr.Error // set on INGEST_PARSE (truncated trailing record) or a read failure
	Done    bool          // true on the final batch once EOF is reached
}

// Loop drives one ingest worker goroutine over a single source.
type Loop struct {
	batches chan Batch
}

// Start launches the worker immediately and returns a Loop whose Batches
// channel receives parsed records until the source is exhausted or ctx is
// cancelled. split is the view-specific record grammar (spec §4.9 "the
// grammar depends on which sub-view is active") — e.g. record-separator-
// delimited commits for log/stash, newline-delimited lines for status,
// show, blame and reflog.
func Start(ctx context.Context, r io.Reader, split bufio.SplitFunc) *Loop {
	l := &Loop{batches: make(chan Batch, 1)}
	go l.run(ctx, r, split)
	return l
}

// Batches is the single-consumer channel of parsed batches. The UI thread
// is the only reader (spec §5).
func (l *Loop) Batches() <-chan Batch { return l.batches }

func (l *Loop) run(ctx context.Context, r io.Reader, split bufio.SplitFunc) {
	defer close(l.batches)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	// All three SplitFuncs below are strictly terminator-delimited: at EOF
	// with leftover bytes and no terminator they return (0, nil, nil), and
	// the Scanner drops the residual (SplitRecordSeparator instead consumes
	// a whitespace-only residual, which is not flagged). This wrapper observes that give-up so
	// the final batch can carry the INGEST_PARSE warning spec §4.9 requires
	// for a discarded partial record.
	truncated := false
	scanner.Split(func(data []byte, atEOF bool) (int, []byte, error) {
		advance, token, err := split(data, atEOF)
		if atEOF && err == nil && advance == 0 && token == nil && len(data) > 0 {
			truncated = true
		}
		return advance, token, err
	})

	var pending [][]byte
	flush := func(done bool, err *apperr.Error) bool {
		if len(pending) == 0 && !done && err == nil {
			return true
		}
		batch := Batch{Records: pending, Err: err, Done: done}
		pending = nil
		select {
		case l.batches <- batch:
			return true
		case <-ctx.Done():
			return false
		}
	}

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				flush(true, apperr.Wrap(apperr.IngestParse, err, "pager ingest read failed"))
				return
			}
			var warn *apperr.Error
			if truncated {
				warn = apperr.New(apperr.IngestParse, "discarded truncated trailing record")
			}
			flush(true, warn)
			return
		}

		rec := append([]byte(nil), scanner.Bytes()...)
		pending = append(pending, rec)
		if len(pending) >= defaultBatchSize {
			if !flush(false, nil) {
				return
			}
			continue
		}
		// Opportunistic delivery: if the UI is ready for a batch right now,
		// hand over whatever has accumulated instead of waiting for the
		// size threshold — items appear on screen as bytes arrive even on
		// a slow, never-ending stream, while a bursty source still batches
		// up to defaultBatchSize between deliveries.
		select {
		case l.batches <- Batch{Records: pending}:
			pending = nil
		default:
		}
	}
}

// SplitLines is the record grammar for one-item-per-line sources: status
// porcelain, blame --porcelain detail lines, reflog entries, file
// listings. Unlike bufio.ScanLines it treats the newline as a required
// terminator: leftover bytes at EOF with no newline are a truncated
// record and are left for the ingest loop to discard with a warning
// (spec §4.9), not emitted as a token.
func SplitLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		return i + 1, dropCR(data[:i]), nil
	}
	return 0, nil, nil
}

func dropCR(data []byte) []byte {
	if len(data) > 0 && data[len(data)-1] == '\r' {
		return data[:len(data)-1]
	}
	return data
}

// SplitRecordSeparator splits on the ASCII record separator (0x1e) used by
// vcs.Repo's log/stash formats. The separator is a required terminator:
// unterminated leftover bytes at EOF are a truncated record, discarded by
// the ingest loop with a warning. A residual of pure whitespace is
// consumed silently — git emits a newline after each formatted record, so
// the bytes between the final separator and EOF are framing, not data.
func SplitRecordSeparator(data []byte, atEOF bool) (advance int, token []byte, err error) {
	const rs = 0x1e
	if i := bytes.IndexByte(data, rs); i >= 0 {
		return i + 1, data[:i], nil
	}
	if atEOF && len(data) > 0 && len(bytes.TrimSpace(data)) == 0 {
		return len(data), nil, nil
	}
	return 0, nil, nil
}

// SplitNUL splits on NUL bytes, the field/entry terminator `git status
// --porcelain=v2 -z` style output would use; status.go uses the default
// (newline) v2 format instead, but blame and future machine-readable modes
// may opt into this. As with the other grammars, the terminator is
// required: unterminated bytes at EOF are a truncated record.
func SplitNUL(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if i := bytes.IndexByte(data, 0); i >= 0 {
		return i + 1, data[:i], nil
	}
	return 0, nil, nil
}
