package config

import (
	"gitrs/internal/action"
	"gitrs/internal/keymap"
)

// defaultBindings seeds the vim-style global navigation/search bindings and
// a handful of representative scope-specific ones: "gg" resolves to first
// and "G" to last. "g" itself is not bound (the trie is prefix-free), so a
// lone "g" followed by the ambiguity timeout is abandoned without firing
// any action; a following "G" still resolves to last.
//
// LoadDefaults applies these to target unless the `default_mappings` option
// has been set to false (spec §3 "Lifecycle").
func LoadDefaults(target Target) {
	if !target.Options.Bool(DefaultMappings) {
		return
	}

	bind := func(scope keymap.Scope, seq string, act action.Action) {
		tokens, err := parseSequence(seq)
		if err != nil {
			return
		}
		_ = target.Bindings.Bind(scope, tokens, act)
	}

	g := keymap.Global
	bind(g, "gg", action.Of(action.First))
	bind(g, "G", action.Of(action.Last))
	bind(g, "j", action.Of(action.Down))
	bind(g, "<down>", action.Of(action.Down))
	bind(g, "k", action.Of(action.Up))
	bind(g, "<up>", action.Of(action.Up))
	bind(g, "<c-d>", action.Of(action.HalfPageDown))
	bind(g, "<c-u>", action.Of(action.HalfPageUp))
	bind(g, "H", action.Of(action.ShiftLineTop))
	bind(g, "M", action.Of(action.ShiftLineMiddle))
	bind(g, "L", action.Of(action.ShiftLineBottom))
	bind(g, "/", action.Of(action.Search))
	bind(g, "?", action.Of(action.SearchReverse))
	bind(g, "n", action.Of(action.NextSearchResult))
	bind(g, "N", action.Of(action.PreviousSearchResult))
	bind(g, ":", action.Of(action.TypeCommand))
	bind(g, "q", action.Of(action.Quit))
	bind(g, "<c-c>", action.Of(action.Quit))
	bind(g, "R", action.Of(action.Reload))

	bind("status", "<tab>", action.Of(action.StatusSwitchView))
	bind("status:unstaged", "s", action.Of(action.StageUnstageFile))
	bind("status:unstaged:modified", "!r", action.Shell(action.Wait, "%(git) restore %(file)"))
	bind("status:staged", "u", action.Of(action.StageUnstageFile))
	bind("status", "<c-s>", action.Of(action.StageUnstageFiles))

	bind("log", "!r", action.Shell(action.Wait, "%(git) rebase -i %(rev)^"))
	bind("log", "<cr>", action.Of(action.OpenGitShow))
	bind("log", "S", action.Of(action.OpenShowApp))

	bind("show", "<c-n>", action.Of(action.PagerNextCommit))
	bind("show", "<c-p>", action.Of(action.PagerPreviousCommit))

	bind("blame", "<c-n>", action.Of(action.NextCommitBlame))
	bind("blame", "<c-p>", action.Of(action.PreviousCommitBlame))

	bind("pager", "<c-n>", action.Of(action.PagerNextCommit))
	bind("pager", "<c-p>", action.Of(action.PagerPreviousCommit))
}

// LoadDefaultButtons seeds the default menu bar unless `default_buttons` is
// false.
func LoadDefaultButtons(target Target) {
	if !target.Options.Bool(DefaultButtons) {
		return
	}
	target.Buttons.Add(keymap.Global, "Quit", action.Of(action.Quit))
	target.Buttons.Add(keymap.Global, "Reload", action.Of(action.Reload))
	target.Buttons.Add("status", "Stage", action.Of(action.StageUnstageFile))
	target.Buttons.Add("log", "Show", action.Of(action.OpenShowApp))
}
