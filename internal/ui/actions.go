package ui

import (
	"context"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"

	"gitrs/internal/action"
	"gitrs/internal/subprocess"
	"gitrs/internal/view"
)

// executeBuiltin runs one of the closed vocabulary of built-in verbs (spec
// §3 "Action"). Pure navigation/viewport verbs are handled generically
// against the view.View interface; the rest are view-specific or have
// side effects against the VCS executable.
func (m *Model) executeBuiltin(b action.Builtin) tea.Cmd {
	if m.current == nil {
		return nil
	}
	switch b {
	case action.Up:
		m.current.MoveUp()
	case action.Down:
		m.current.MoveDown()
	case action.First:
		m.current.MoveFirst()
	case action.Last:
		m.current.MoveLast()
	case action.HalfPageUp:
		m.current.MoveHalfPageUp(m.pageSize())
	case action.HalfPageDown:
		m.current.MoveHalfPageDown(m.pageSize())
	case action.ShiftLineTop:
		m.current.ShiftTop(m.contentHeight())
	case action.ShiftLineMiddle:
		m.current.ShiftMiddle(m.contentHeight())
	case action.ShiftLineBottom:
		m.current.ShiftBottom(m.contentHeight())

	case action.Search, action.SearchReverse, action.TypeCommand:
		// The dispatcher already transitions into CommandLine/Search on
		// the literal ':'/'/'/'?' keys before the trie is ever consulted
		// (spec §4.6); these builtins exist so a user can rebind search
		// or the command line to a different sequence, but reaching this
		// branch at all requires such a remap — nothing more to do here
		// beyond letting the dispatcher's own state transition stand.

	case action.NextSearchResult:
		m.nextSearchResult()
	case action.PreviousSearchResult:
		m.previousSearchResult()

	case action.StageUnstageFile:
		return m.stageUnstageFocused()
	case action.StageUnstageFiles:
		return m.stageUnstageAll()
	case action.StatusSwitchView:
		m.statusSwitchGroup()
	case action.FocusStagedView:
		m.focusGroup(true)
	case action.FocusUnstagedView:
		m.focusGroup(false)

	case action.PagerNextCommit:
		m.jumpCommitBoundary(1)
	case action.PagerPreviousCommit:
		m.jumpCommitBoundary(-1)
	case action.NextCommitBlame:
		m.jumpBlameBlock(1)
	case action.PreviousCommitBlame:
		m.jumpBlameBlock(-1)

	case action.OpenShowApp:
		return m.openShowApp()
	case action.OpenLogApp:
		return m.openLogApp()
	case action.OpenGitShow:
		return m.openGitShow()

	case action.Goto:
		return m.gotoPrompt()

	case action.Reload:
		return m.reload()
	case action.Quit:
		m.quitting = true
		return tea.Quit

	case action.Echo, action.Nop:
		// No observable effect; echo has no message argument in the
		// current configuration grammar (spec §4.3's `<action>` field
		// accepts a single builtin name), so it behaves like nop.
	}
	return nil
}

func (m *Model) pageSize() int {
	if m.height < 4 {
		return 1
	}
	return m.contentHeight()
}

func (m *Model) contentHeight() int {
	h := m.height - reservedRows
	if h < 1 {
		return 1
	}
	return h
}

// stageUnstageFocused runs `git add`/`git restore --staged` on the
// focused status entry (spec builtin "stage_unstage_file"): an immediate
// VCS mutation, not a user-configurable shell template.
func (m *Model) stageUnstageFocused() tea.Cmd {
	sv, ok := m.current.(*view.Status)
	if !ok {
		return nil
	}
	row, ok := sv.FocusedRow()
	if !ok {
		return nil
	}
	args := []string{"add", "--", row.Path}
	if row.Staged() {
		args = []string{"restore", "--staged", "--", row.Path}
	}
	sv.ToggleFocused()
	return m.runGitThen(args, reloadMsg{})
}

// stageUnstageAll mirrors stageUnstageFocused across the whole group the
// cursor is currently in (spec builtin "stage_unstage_files").
func (m *Model) stageUnstageAll() tea.Cmd {
	sv, ok := m.current.(*view.Status)
	if !ok {
		return nil
	}
	row, ok := sv.FocusedRow()
	if !ok {
		return nil
	}
	if row.Staged() {
		return m.runGitThen([]string{"restore", "--staged", "."}, reloadMsg{})
	}
	return m.runGitThen([]string{"add", "-A"}, reloadMsg{})
}

func (m *Model) runGitThen(args []string, then tea.Msg) tea.Cmd {
	return func() tea.Msg {
		_, _ = m.repo.Run(context.Background(), args...)
		return then
	}
}

func (m *Model) statusSwitchGroup() {
	sv, ok := m.current.(*view.Status)
	if !ok {
		return
	}
	row, ok := sv.FocusedRow()
	if !ok {
		return
	}
	sv.JumpToGroup(!row.Staged())
}

func (m *Model) focusGroup(staged bool) {
	sv, ok := m.current.(*view.Status)
	if !ok {
		return
	}
	sv.JumpToGroup(staged)
}

// jumpCommitBoundary moves within a show/diff/pager view to the next
// (dir>0) or previous (dir<0) line whose Rev() differs from the current
// one (spec builtin "pager_next_commit"/"pager_previous_commit").
func (m *Model) jumpCommitBoundary(dir int) {
	items, cursor, ok := textLineItems(m.current)
	if !ok || cursor < 0 || cursor >= len(items) {
		return
	}
	start, _ := items[cursor].Rev()
	i := cursor
	for i+dir >= 0 && i+dir < len(items) {
		i += dir
		if rev, _ := items[i].Rev(); rev != start {
			m.current.JumpTo(i)
			return
		}
	}
}

func textLineItems(v view.View) ([]view.TextLine, int, bool) {
	switch tv := v.(type) {
	case *view.Show:
		return tv.Items(), tv.CursorPos(), true
	case *view.Diff:
		return tv.Items(), tv.CursorPos(), true
	case *view.Pager:
		return tv.Items(), tv.CursorPos(), true
	default:
		return nil, 0, false
	}
}

// jumpBlameBlock moves to the next/previous line whose commit hash
// differs from the current line's, i.e. the next attribution block (spec
// builtin "next_commit_blame"/"previous_commit_blame").
func (m *Model) jumpBlameBlock(dir int) {
	bv, ok := m.current.(*view.Blame)
	if !ok {
		return
	}
	items := bv.Items()
	cursor := bv.CursorPos()
	if cursor < 0 || cursor >= len(items) {
		return
	}
	start := items[cursor].Hash
	i := cursor
	for i+dir >= 0 && i+dir < len(items) {
		i += dir
		if items[i].Hash != start {
			bv.JumpTo(i)
			return
		}
	}
}

// openShowApp switches gitrs's own active view to "show" for the focused
// item's rev (spec builtin "open_show_app").
func (m *Model) openShowApp() tea.Cmd {
	item, ok := m.current.Focused()
	if !ok {
		return nil
	}
	rev, ok := item.Rev()
	if !ok {
		m.errMsg = "no revision under cursor"
		return nil
	}
	m.teardownIngest()
	m.mode = ModeShow
	m.rev = rev
	return m.startView(ModeShow)
}

// openLogApp switches to the "log" view, used e.g. from blame to see a
// commit's place in history (spec builtin "open_log_app").
func (m *Model) openLogApp() tea.Cmd {
	m.teardownIngest()
	m.mode = ModeLog
	m.args = nil
	return m.startView(ModeLog)
}

// openGitShow runs `git show <rev>` as an interactive WAIT-discipline
// child rather than switching gitrs's own view (spec builtin
// "open_git_show", bound by default to <cr> in the log view for a quick
// peek through the user's real pager, e.g. `less`).
func (m *Model) openGitShow() tea.Cmd {
	item, ok := m.current.Focused()
	if !ok {
		return nil
	}
	if _, ok := item.Rev(); !ok {
		m.errMsg = "no revision under cursor"
		return nil
	}
	resolved, err := action.Resolve("%(git) show %(rev)", item, m.options)
	if err != nil {
		m.errMsg = err.Error()
		return nil
	}
	return m.spawn(action.Wait, subprocess.Argv(resolved))
}

// gotoPrompt handles the "goto" builtin when it is bound to a key
// sequence; it does nothing. Jumping to a 1-based row index typed on the
// command line (e.g. ":42") is done by runCommand through gotoLine, not
// here (see DESIGN.md).
func (m *Model) gotoPrompt() tea.Cmd {
	return nil
}

func gotoLine(v view.View, s string) bool {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 || n > v.Len() {
		return false
	}
	v.JumpTo(n - 1)
	return true
}

// reservedRows is the header row plus the single footer row (which doubles
// as the status/error line and the `:`/search buffer prompt, spec §4.6).
const reservedRows = headerRows + 1
