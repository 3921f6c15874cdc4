// Package app is gitrs's composition root: it loads configuration, builds
// the keymap/button registries and the vcs.Repo gateway, starts the
// filesystem watcher, and hands everything to internal/ui as a ui.Params
// (spec §3 "Lifecycle", §6 CLI).
//
// Grounded on the teacher's internal/app, which played exactly this role
// for Flyer (load config, build a client, wire the poller, start the TUI)
// — generalized here from "poll a Spindle daemon over HTTP" to "load a
// keymap/option configuration and shell out to git", since gitrs has no
// daemon to poll and no persistent state to hand between runs (spec §1
// non-goals).
package app

import (
	"context"
	"fmt"

	"gitrs/internal/config"
	"gitrs/internal/keymap"
	"gitrs/internal/ui"
	"gitrs/internal/vcs"
	"gitrs/internal/watch"
)

// Options configure one gitrs invocation (spec §6 CLI).
type Options struct {
	ConfigPath string // override for "~/.gitrsrc"; empty uses the default
	Mode       ui.Mode
	Args       []string // forwarded positional args (log/reflog/diff)
	Rev        string   // show/blame/files rev argument
	File       string   // blame file argument
	Line       int      // blame initial line argument
}

// Run builds the configuration/keymap/repo state, starts the optional
// filesystem watcher, and blocks running the TUI until the user quits or a
// WAIT_AND_EXIT action terminates it. The returned int is the process exit
// code (spec §6: "Exit code 0 on clean quit; the exit code of the child for
// >-discipline actions; non-zero on fatal errors").
func Run(ctx context.Context, opts Options) (int, error) {
	options := config.New()
	bindings := keymap.NewRegistry()
	buttons := keymap.NewButtonRegistry()
	target := config.Target{Bindings: bindings, Buttons: buttons, Options: options}

	// `set` lines in the user's config can turn off default_mappings /
	// default_buttons, so the config file is parsed once up front to let
	// those options land before the defaults are conditionally applied
	// (spec §3 "Lifecycle": "the default binding set is loaded (unless
	// default_mappings = false), then the user configuration file is
	// parsed" — resolved here by applying the whole file once first so the
	// option is live before LoadDefaults runs its own check).
	configErrs := config.Load(opts.ConfigPath, target)
	config.LoadDefaults(target)
	config.LoadDefaultButtons(target)
	// A second pass re-applies the whole file so the user's own map/button
	// lines take precedence over the defaults just seeded (spec "applying
	// mutations in order" — the user's bindings are the last word).
	configErrs = append(configErrs, config.Load(opts.ConfigPath, target)...)

	repo := vcs.New(options.Git())

	var watcher *watch.Watcher
	if gitDir, err := repo.GitDir(ctx); err == nil {
		if w, err := watch.Start(gitDir); err == nil {
			watcher = w
			defer w.Close()
		}
	}

	params := ui.Params{
		Repo:         repo,
		Options:      options,
		Bindings:     bindings,
		Buttons:      buttons,
		Mode:         opts.Mode,
		Args:         opts.Args,
		Rev:          opts.Rev,
		File:         opts.File,
		Line:         opts.Line,
		Watcher:      watcher,
		ConfigErrors: configErrs,
	}

	code, err := ui.Run(params)
	if err != nil {
		return 1, fmt.Errorf("run ui: %w", err)
	}
	return code, nil
}
