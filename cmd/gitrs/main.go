// Command gitrs is the entry point: it parses the CLI subcommand (spec
// §6), or, lacking one on a non-terminal stdin, falls back to pager mode
// (spec GLOSSARY "Pager mode" — invoked as `git log | gitrs` via
// core.pager). Grounded on the teacher's cmd/flyer/main.go: a thin
// os.Exit(run()) wrapper around signal-aware context cancellation, with
// flag parsing replaced by gitrs's positional-subcommand CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/mattn/go-isatty"

	"gitrs/internal/app"
	"gitrs/internal/ui"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	opts, err := parseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "gitrs: %v\n", err)
		return 2
	}

	code, err := app.Run(ctx, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "gitrs: %v\n", err)
		return 1
	}
	return code
}

// parseArgs implements spec §6's CLI grammar:
//
//	<tool> status | log [args…] | show [rev] | reflog [args…] | stash |
//	       files [rev] | blame <file> [line] | diff [args…]
//
// With no subcommand at all and a non-terminal stdin, gitrs assumes it was
// invoked as an external pager and streams stdin instead of shelling out to
// git itself (spec §6 "Standard input (pager mode)").
func parseArgs(args []string) (app.Options, error) {
	if len(args) == 0 {
		if isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()) {
			return app.Options{Mode: ui.ModeStatus}, nil
		}
		return app.Options{Mode: ui.ModePager}, nil
	}

	sub, rest := args[0], args[1:]
	switch sub {
	case "status":
		return app.Options{Mode: ui.ModeStatus}, nil
	case "log":
		return app.Options{Mode: ui.ModeLog, Args: rest}, nil
	case "show":
		return app.Options{Mode: ui.ModeShow, Rev: firstArg(rest)}, nil
	case "reflog":
		return app.Options{Mode: ui.ModeReflog, Args: rest}, nil
	case "stash":
		return app.Options{Mode: ui.ModeStash}, nil
	case "files":
		return app.Options{Mode: ui.ModeFiles, Rev: firstArg(rest)}, nil
	case "blame":
		return parseBlame(rest)
	case "diff":
		return app.Options{Mode: ui.ModeDiff, Args: rest}, nil
	default:
		return app.Options{}, fmt.Errorf("unknown subcommand %q", sub)
	}
}

func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

// parseBlame handles "blame <file> [line]" — file is mandatory, the
// trailing line argument (if present and numeric) seeds the view's
// initial cursor position rather than a blame range (spec §6, §4.1
// component inventory).
func parseBlame(args []string) (app.Options, error) {
	if len(args) == 0 {
		return app.Options{}, fmt.Errorf("blame requires a <file> argument")
	}
	opts := app.Options{Mode: ui.ModeBlame, File: args[0]}
	if len(args) > 1 {
		if n, err := strconv.Atoi(args[1]); err == nil {
			opts.Line = n
		}
	}
	return opts, nil
}
