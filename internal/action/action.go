// Package action defines the canonical, tagged-union representation of an
// action — built-in verb or shell template — and the placeholder schema
// templates may reference (spec §3, §4.4).
package action

// Builtin is the closed vocabulary of built-in verbs (spec §3). Extension is
// by adding a constant here, not by runtime registration (spec DESIGN NOTES).
type Builtin int

const (
	Up Builtin = iota
	Down
	First
	Last
	HalfPageUp
	HalfPageDown
	ShiftLineMiddle
	ShiftLineTop
	ShiftLineBottom
	Search
	SearchReverse
	NextSearchResult
	PreviousSearchResult
	StageUnstageFile
	StageUnstageFiles
	StatusSwitchView
	FocusStagedView
	FocusUnstagedView
	PagerNextCommit
	PagerPreviousCommit
	NextCommitBlame
	PreviousCommitBlame
	OpenShowApp
	OpenLogApp
	OpenGitShow
	Reload
	Quit
	Nop
	Echo
	TypeCommand
	Goto
)

var builtinNames = map[Builtin]string{
	Up:                   "up",
	Down:                 "down",
	First:                "first",
	Last:                 "last",
	HalfPageUp:           "half_page_up",
	HalfPageDown:         "half_page_down",
	ShiftLineMiddle:      "shift_line_middle",
	ShiftLineTop:         "shift_line_top",
	ShiftLineBottom:      "shift_line_bottom",
	Search:               "search",
	SearchReverse:        "search_reverse",
	NextSearchResult:     "next_search_result",
	PreviousSearchResult: "previous_search_result",
	StageUnstageFile:     "stage_unstage_file",
	StageUnstageFiles:    "stage_unstage_files",
	StatusSwitchView:     "status_switch_view",
	FocusStagedView:      "focus_staged_view",
	FocusUnstagedView:    "focus_unstaged_view",
	PagerNextCommit:      "pager_next_commit",
	PagerPreviousCommit:  "pager_previous_commit",
	NextCommitBlame:      "next_commit_blame",
	PreviousCommitBlame:  "previous_commit_blame",
	OpenShowApp:          "open_show_app",
	OpenLogApp:           "open_log_app",
	OpenGitShow:          "open_git_show",
	Reload:               "reload",
	Quit:                 "quit",
	Nop:                  "nop",
	Echo:                 "echo",
	TypeCommand:          "type_command",
	Goto:                 "goto",
}

var builtinsByName = func() map[string]Builtin {
	m := make(map[string]Builtin, len(builtinNames))
	for b, name := range builtinNames {
		m[name] = b
	}
	return m
}()

// String returns the canonical name used in configuration files.
func (b Builtin) String() string {
	if name, ok := builtinNames[b]; ok {
		return name
	}
	return "nop"
}

// ParseBuiltin resolves a verb name to its Builtin, per spec §7's
// UNKNOWN_BUILTIN error kind on failure.
func ParseBuiltin(name string) (Builtin, bool) {
	b, ok := builtinsByName[name]
	return b, ok
}

// Discipline is the execution mode of a shell action (spec GLOSSARY).
type Discipline int

const (
	Wait Discipline = iota
	WaitAndExit
	Background
)

// Action is the tagged union dispatched by the keymap trie (spec §3).
type Action struct {
	IsShell    bool
	Builtin    Builtin
	Discipline Discipline
	Template   string // shell template, e.g. "%(git) restore %(file)"
}

// Of constructs a built-in action.
func Of(b Builtin) Action { return Action{Builtin: b} }

// String renders the action in the configuration grammar's `<action>`
// field form: the builtin's verb name, or the discipline sigil followed by
// the raw shell template. Parsing the result reproduces the action
// exactly (spec §8 "Round-trip").
func (a Action) String() string {
	if !a.IsShell {
		return a.Builtin.String()
	}
	switch a.Discipline {
	case WaitAndExit:
		return ">" + a.Template
	case Background:
		return "@" + a.Template
	default:
		return "!" + a.Template
	}
}

// Shell constructs a shell-template action with the given discipline.
func Shell(d Discipline, template string) Action {
	return Action{IsShell: true, Discipline: d, Template: template}
}
