// Package vcs is the narrow gateway to the version-control executable, the
// one external collaborator spec §6 names explicitly: "invoked as a
// subprocess; its stdout may be piped into the pager ingest; exit codes
// propagated." Nothing in this package knows about git's semantics beyond
// the subcommands and porcelain flags needed to produce a byte stream for
// each view (spec §1 non-goal: "implementing version-control operations
// itself").
package vcs

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"
)

// Repo resolves the configured VCS executable name (the `git` option,
// spec §3) into invocations for each of the CLI subcommands in spec §6.
type Repo struct {
	// Exe is the VCS executable name, normally the `git` option's value.
	Exe string
}

func New(exe string) Repo {
	if exe == "" {
		exe = "git"
	}
	return Repo{Exe: exe}
}

// Stream is a running subprocess whose stdout feeds the pager ingest loop
// (internal/pager). Wait must be called exactly once after the reader is
// fully drained (spec §4.9 "recognise end-of-input").
type Stream struct {
	cmd    *exec.Cmd
	Stdout io.ReadCloser
}

// Wait releases the process and reports its exit status. A non-zero exit
// is not itself an error the caller must treat as fatal — spec §6 says
// "exit codes propagated", and recoverable-error classification is the
// caller's job (SUBPROCESS_EXIT_NONZERO, spec §7).
func (s *Stream) Wait() error { return s.cmd.Wait() }

func (r Repo) start(ctx context.Context, args ...string) (*Stream, error) {
	cmd := exec.CommandContext(ctx, r.Exe, args...)
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("pipe stdout: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start %s %v: %w", r.Exe, args, err)
	}
	return &Stream{cmd: cmd, Stdout: stdout}, nil
}

// Status streams `git status --porcelain=v2 --branch`, the grammar
// internal/view's Status.Ingest decodes.
func (r Repo) Status(ctx context.Context) (*Stream, error) {
	return r.start(ctx, "status", "--porcelain=v2", "--branch")
}

// Log streams `git log` in a stable, machine-oriented format plus any
// caller-forwarded positional args (spec §6 "log [args…]").
func (r Repo) Log(ctx context.Context, args ...string) (*Stream, error) {
	full := append([]string{"log", logFormat}, args...)
	return r.start(ctx, full...)
}

// logFormat uses ASCII unit/record separators (0x1f, 0x1e) so commit
// subjects containing the pipe character used by simpler log formats can
// never be mistaken for field boundaries.
const logFormat = "--format=%H\x1f%h\x1f%an\x1f%ad\x1f%s\x1e"

// Show streams `git show` for rev (or HEAD if empty), the source for the
// "show" view and for open_git_show/open_show_app builtins.
func (r Repo) Show(ctx context.Context, rev string) (*Stream, error) {
	if rev == "" {
		rev = "HEAD"
	}
	return r.start(ctx, "show", rev)
}

// Reflog streams `git reflog show` plus forwarded args.
func (r Repo) Reflog(ctx context.Context, args ...string) (*Stream, error) {
	full := append([]string{"reflog", "show", "--date=iso-strict"}, args...)
	return r.start(ctx, full...)
}

// stashFormat mirrors logFormat but substitutes %gd (the reflog selector,
// e.g. "stash@{0}") for the short hash field, since that selector — not
// the short hash — is how a stash entry is addressed.
const stashFormat = "--format=%H\x1f%gd\x1f%an\x1f%ad\x1f%s\x1e"

// Stash streams `git stash list` in a patch-identifying format.
func (r Repo) Stash(ctx context.Context) (*Stream, error) {
	return r.start(ctx, "stash", "list", stashFormat)
}

// Files streams the tree listing at rev (or the working tree if empty)
// via `git ls-tree` / `git ls-files`.
func (r Repo) Files(ctx context.Context, rev string) (*Stream, error) {
	if rev == "" {
		return r.start(ctx, "ls-files")
	}
	return r.start(ctx, "ls-tree", "-r", "--name-only", rev)
}

// Blame streams `git blame --porcelain` for file, optionally anchored at
// rev (spec CLI "blame <file> [line]" — the line argument selects the
// initial cursor position, not a blame range, and is handled by the view).
func (r Repo) Blame(ctx context.Context, rev, file string) (*Stream, error) {
	args := []string{"blame", "--porcelain"}
	if rev != "" {
		args = append(args, rev)
	}
	args = append(args, "--", file)
	return r.start(ctx, args...)
}

// Diff streams `git diff` plus forwarded args (spec CLI "diff [args…]").
func (r Repo) Diff(ctx context.Context, args ...string) (*Stream, error) {
	full := append([]string{"diff"}, args...)
	return r.start(ctx, full...)
}

// GitDir resolves the repository's .git directory (`git rev-parse
// --git-dir`), the path internal/watch needs to observe HEAD/index/refs
// changes. Returns the trimmed stdout; relative results are relative to
// the process's current directory, matching git's own convention.
func (r Repo) GitDir(ctx context.Context) (string, error) {
	out, err := r.Run(ctx, "rev-parse", "--git-dir")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

// Run executes a one-shot git invocation synchronously and returns its
// stdout, used for calls that need a result rather than a stream (GitDir,
// stage/unstage). A non-zero exit is returned as an error wrapping the
// *exec.ExitError.
func (r Repo) Run(ctx context.Context, args ...string) ([]byte, error) {
	out, err := exec.CommandContext(ctx, r.Exe, args...).Output()
	if err != nil {
		return nil, fmt.Errorf("%s %v: %w", r.Exe, args, err)
	}
	return out, nil
}
