package ui

import (
	"bufio"
	"context"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"gitrs/internal/apperr"
	"gitrs/internal/config"
	"gitrs/internal/pager"
	"gitrs/internal/search"
	"gitrs/internal/vcs"
	"gitrs/internal/view"
)

// startView constructs the view for mode, starts its source stream, and
// begins the pager ingest loop (spec §4.9). The returned tea.Cmd is the
// one-shot listener for the loop's first batch; Update re-issues it after
// every delivery until Done.
func (m *Model) startView(mode Mode) tea.Cmd {
	switch mode {
	case ModeStatus:
		m.current = view.NewStatus()
		return m.stream(func(ctx context.Context) (*vcs.Stream, error) {
			return m.repo.Status(ctx)
		}, pager.SplitLines)
	case ModeLog:
		m.current = view.NewLog()
		return m.stream(func(ctx context.Context) (*vcs.Stream, error) {
			return m.repo.Log(ctx, m.args...)
		}, pager.SplitRecordSeparator)
	case ModeShow:
		m.current = view.NewShow(m.rev)
		return m.stream(func(ctx context.Context) (*vcs.Stream, error) {
			return m.repo.Show(ctx, m.rev)
		}, pager.SplitLines)
	case ModeReflog:
		m.current = view.NewReflog()
		return m.stream(func(ctx context.Context) (*vcs.Stream, error) {
			return m.repo.Reflog(ctx, m.args...)
		}, pager.SplitLines)
	case ModeStash:
		m.current = view.NewStash()
		return m.stream(func(ctx context.Context) (*vcs.Stream, error) {
			return m.repo.Stash(ctx)
		}, pager.SplitRecordSeparator)
	case ModeFiles:
		m.current = view.NewFiles(m.rev)
		return m.stream(func(ctx context.Context) (*vcs.Stream, error) {
			return m.repo.Files(ctx, m.rev)
		}, pager.SplitLines)
	case ModeBlame:
		m.current = view.NewBlame(m.file)
		return m.stream(func(ctx context.Context) (*vcs.Stream, error) {
			return m.repo.Blame(ctx, m.rev, m.file)
		}, pager.SplitLines)
	case ModeDiff:
		m.current = view.NewDiff()
		return m.stream(func(ctx context.Context) (*vcs.Stream, error) {
			return m.repo.Diff(ctx, m.args...)
		}, pager.SplitLines)
	case ModePager:
		m.current = view.NewPager()
		return m.ingestReader(os.Stdin, pager.SplitLines)
	}
	return nil
}

func (m *Model) stream(open func(context.Context) (*vcs.Stream, error), split bufio.SplitFunc) tea.Cmd {
	ctx, cancel := context.WithCancel(context.Background())
	st, err := open(ctx)
	if err != nil {
		cancel()
		m.errMsg = apperr.Wrap(apperr.SubprocessSpawn, err, "start vcs command").Error()
		return nil
	}
	m.cancel = cancel
	m.vcsStream = st
	m.loop = pager.Start(ctx, st.Stdout, split)
	m.ingesting = true
	return tea.Batch(listenCmd(m.loop), m.spinner.Tick)
}

func (m *Model) ingestReader(r io.Reader, split bufio.SplitFunc) tea.Cmd {
	ctx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel
	m.loop = pager.Start(ctx, r, split)
	m.ingesting = true
	return tea.Batch(listenCmd(m.loop), m.spinner.Tick)
}

func (m *Model) handleBatch(msg batchMsg) tea.Cmd {
	if msg.loop != m.loop {
		// A stale listener from a reload that has since been superseded.
		return nil
	}
	if !msg.ok {
		return nil
	}
	if len(msg.batch.Records) > 0 {
		m.current.Ingest(msg.batch.Records)
		if m.searchIdx != nil {
			m.rebuildSearch()
		}
	}
	if msg.batch.Err != nil {
		m.errMsg = msg.batch.Err.Error()
	}
	if msg.batch.Done {
		m.ingesting = false
		m.reapStream()
		if m.mode == ModeBlame && m.line > 0 && m.line <= m.current.Len() {
			m.current.JumpTo(m.line - 1)
		}
		return nil
	}
	return listenCmd(m.loop)
}

// reload re-fetches the active view's source and re-ingests it from
// scratch (spec §4.8 "reload primitive"), cancelling any in-flight ingest
// first.
func (m *Model) reload() tea.Cmd {
	m.teardownIngest()
	if m.current != nil {
		m.current.Reset()
	}
	return m.startView(m.mode)
}

// teardownIngest cancels the in-flight ingest (if any) and reaps its VCS
// subprocess. The ingest worker observes the cancellation at its next read
// boundary (spec §5 "Cancellation"); the stale listener command resolves
// harmlessly against the old loop pointer.
func (m *Model) teardownIngest() {
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
	m.reapStream()
}

// reapStream waits out the finished (or just-cancelled) VCS subprocess off
// the UI thread so it never lingers as a zombie. Wait is called exactly
// once per stream.
func (m *Model) reapStream() {
	if m.vcsStream == nil {
		return
	}
	st := m.vcsStream
	m.vcsStream = nil
	go func() { _ = st.Wait() }()
}

func (m *Model) rebuildSearch() {
	m.searchIdx = search.Build(m.current.Projection(), m.searchQuery, m.options.Bool(config.SmartCase))
}
