// Package ui implements gitrs's bubbletea root Model: the event loop that
// turns terminal key/mouse events into dispatcher tokens, renders the
// active view, and hands off the terminal to subprocesses (spec §4.1,
// §4.6, §4.7, §5). Grounded on the teacher's internal/ui/tea package, the
// only part of five82/flyer whose imports actually match its own go.mod
// (its legacy internal/ui is a tview/tcell program that isn't declared as
// a dependency at all, so it cannot be the thing this project continues).
package ui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"gitrs/internal/action"
	"gitrs/internal/config"
	"gitrs/internal/dispatch"
	"gitrs/internal/keymap"
	"gitrs/internal/pager"
	"gitrs/internal/search"
	"gitrs/internal/subprocess"
	"gitrs/internal/token"
	"gitrs/internal/vcs"
	"gitrs/internal/view"
	"gitrs/internal/watch"
)

// Params bundles everything app.Run has already assembled before handing
// control to the UI (spec §4.3's option/binding stores are built by the
// caller; the configuration errors it collected arrive in ConfigErrors,
// and New shows the first of them in the footer).
type Params struct {
	Repo         vcs.Repo
	Options      *config.Options
	Bindings     *keymap.Registry
	Buttons      *keymap.ButtonRegistry
	Mode         Mode
	Args         []string // forwarded positional args (log/reflog/diff)
	Rev          string   // show/blame/files rev argument
	File         string   // blame file argument
	Line         int      // blame initial line argument
	Watcher      *watch.Watcher
	ConfigErrors []error
}

// Model is the bubbletea root model (spec §4.1 "Key event normaliser" and
// §4.6 "Dispatcher" meet here, driving whichever view is active). It is
// used as a pointer model throughout: the dispatcher's scope callback and
// the pager listener commands all close over the one live *Model, and all
// Update mutations land on it directly — per spec §5 every write happens
// on the UI thread between event dispatches, so no locking is needed.
type Model struct {
	repo       vcs.Repo
	options    *config.Options
	bindings   *keymap.Registry
	buttons    *keymap.ButtonRegistry
	dispatcher *dispatch.Dispatcher

	theme  Theme
	styles Styles
	width  int
	height int

	mode    Mode
	args    []string
	rev     string
	file    string
	line    int
	current view.View

	loop      *pager.Loop
	vcsStream *vcs.Stream
	cancel    context.CancelFunc
	spinner   spinner.Model
	ingesting bool

	searchIdx   *search.Index
	searchQuery string

	statusMsg string
	errMsg    string
	quitting  bool
	exitCode  int

	watcher *watch.Watcher
}

// New constructs the root Model from Params.
func New(p Params) *Model {
	theme := DetectTheme()
	sp := spinner.New(spinner.WithSpinner(spinner.Dot))
	sp.Style = theme.Styles().Accent
	m := &Model{
		repo:     p.Repo,
		options:  p.Options,
		bindings: p.Bindings,
		buttons:  p.Buttons,
		theme:    theme,
		styles:   theme.Styles(),
		mode:     p.Mode,
		args:     p.Args,
		rev:      p.Rev,
		file:     p.File,
		line:     p.Line,
		watcher:  p.Watcher,
		spinner:  sp,
	}
	m.dispatcher = dispatch.New(p.Bindings, m.activeScope)
	if len(p.ConfigErrors) > 0 {
		m.errMsg = p.ConfigErrors[0].Error()
	}
	return m
}

func (m *Model) activeScope() keymap.Scope {
	if m.current == nil {
		return keymap.Global
	}
	return m.current.Scope()
}

// Init starts the initial ingest for the requested mode and, if available,
// the filesystem watcher that drives automatic reload.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.startView(m.mode), m.spinner.Tick}
	if m.watcher != nil {
		cmds = append(cmds, watchCmd(m.watcher))
	}
	return tea.Batch(cmds...)
}

func watchCmd(w *watch.Watcher) tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-w.Changes; !ok {
			return nil
		}
		return watchMsg{}
	}
}

func listenCmd(loop *pager.Loop) tea.Cmd {
	return func() tea.Msg {
		batch, ok := <-loop.Batches()
		return batchMsg{loop: loop, batch: batch, ok: ok}
	}
}

func timeoutCmd(generation int) tea.Cmd {
	return tea.Tick(dispatch.DefaultAmbiguityTimeout, func(time.Time) tea.Msg {
		return timeoutMsg{generation: generation}
	})
}

// Update is the bubbletea event loop (spec §4.1 normalisation -> §4.6
// dispatch -> action execution).
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case spinner.TickMsg:
		if !m.ingesting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case batchMsg:
		return m, m.handleBatch(msg)

	case timeoutMsg:
		outcome := m.dispatcher.Timeout(msg.generation)
		return m, m.handleOutcome(outcome)

	case watchMsg:
		cmds := []tea.Cmd{m.reload()}
		if m.watcher != nil {
			cmds = append(cmds, watchCmd(m.watcher))
		}
		return m, tea.Batch(cmds...)

	case reloadMsg:
		return m, m.reload()

	case finishedMsg:
		m.dispatcher.EndSubprocess()
		m.errMsg = ""
		if msg.Err != nil {
			m.errMsg = msg.Err.Error()
		}
		return m, m.reload()

	case exitMsg:
		m.dispatcher.EndSubprocess()
		m.quitting = true
		m.exitCode = msg.Code
		return m, tea.Quit

	case backgroundMsg:
		if msg.Err != nil {
			m.errMsg = msg.Err.Error()
		}
		return m, nil

	case tea.KeyMsg, tea.MouseMsg:
		return m, m.handleInput(msg)
	}
	return m, nil
}

func (m *Model) handleInput(msg tea.Msg) tea.Cmd {
	tok, ok := token.Normalize(msg)
	if !ok {
		return nil
	}
	if tok.Kind == token.KindPointer {
		m.applyPointerRow(tok)
	}
	outcome := m.dispatcher.Feed(tok)
	return m.handleOutcome(outcome)
}

// applyPointerRow translates a click's absolute terminal row into an item
// index and jumps the cursor there before the binding (if any) fires, so
// <lclick> itself is a cursor move and <rclick> resolves placeholders
// against the row under the pointer (spec §4.8 "mouse clicks at (row, col)
// translate to cursor moves (left click) or trigger the binding for
// <rclick> at the targeted row").
func (m *Model) applyPointerRow(tok token.Token) {
	if m.current == nil || tok.Literal != "<lclick>" && tok.Literal != "<rclick>" {
		return
	}
	bodyRow := tok.Row - headerRows
	if bodyRow < 0 {
		return
	}
	idx := m.current.Top() + bodyRow
	if idx < 0 || idx >= m.current.Len() {
		return
	}
	m.current.JumpTo(idx)
}

const headerRows = 1

func (m *Model) handleOutcome(outcome dispatch.Outcome) tea.Cmd {
	var cmds []tea.Cmd

	if outcome.StillPending {
		cmds = append(cmds, timeoutCmd(outcome.Generation))
	}
	if outcome.Cancelled {
		m.statusMsg = ""
	}
	if outcome.SubmitLine != "" {
		if outcome.EnteredSearch {
			m.runSearch(outcome.SubmitLine, outcome.SearchDir)
		} else {
			m.runCommand(outcome.SubmitLine)
		}
	}
	if outcome.FireAction != nil {
		cmds = append(cmds, m.execute(*outcome.FireAction))
	}
	return tea.Batch(cmds...)
}

// runCommand applies a `:`-typed line. A purely numeric line is the "goto"
// builtin's typed form (spec builtin "goto": jump to a 1-based row index);
// anything else uses the same grammar as "~/.gitrsrc" (spec §4.3, §4.6):
// map/button/set, most commonly `set`.
func (m *Model) runCommand(line string) {
	trimmed := strings.TrimSpace(line)
	if trimmed != "" && m.current != nil && gotoLine(m.current, trimmed) {
		m.errMsg = ""
		return
	}

	target := config.Target{Bindings: m.bindings, Buttons: m.buttons, Options: m.options}
	if err := config.ApplyLine(line, target); err != nil {
		m.errMsg = err.Error()
		return
	}
	m.errMsg = ""
}

// execute runs a resolved action (spec §4.4, §4.7): a built-in verb
// mutates model/view state directly; a shell action resolves placeholders
// then hands off to internal/subprocess.
func (m *Model) execute(act action.Action) tea.Cmd {
	if act.IsShell {
		return m.executeShell(act)
	}
	return m.executeBuiltin(act.Builtin)
}

func (m *Model) executeShell(act action.Action) tea.Cmd {
	var item action.Item
	if m.current != nil {
		item, _ = m.current.Focused()
	}
	resolved, err := action.Resolve(act.Template, item, m.options)
	if err != nil {
		m.errMsg = err.Error()
		return nil
	}
	return m.spawn(act.Discipline, subprocess.Argv(resolved))
}

// spawn hands argv to the subprocess runner, transitioning the dispatcher
// into the Subprocess state for the foreground disciplines (spec §4.6
// "Idle + shell action ⇒ Subprocess; during Subprocess input is routed to
// the child"). tea.ExecProcess blocks the event loop while the child owns
// the terminal, so the transition is mostly about State() reporting
// accurately; finishedMsg/exitMsg end the state on the way back in.
// BACKGROUND children never take the terminal and cause no transition.
func (m *Model) spawn(disc action.Discipline, argv []string) tea.Cmd {
	if disc != action.Background {
		m.dispatcher.BeginSubprocess()
	}
	return subprocess.Spawn(disc, argv)
}
