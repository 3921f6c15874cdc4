// Package subprocess is the sole gateway through which the terminal is
// ever handed to a child process (spec §4.7, §5 "the terminal is a single
// exclusive resource"). It implements the three execution disciplines a
// shell Action can name.
//
// Grounded on bubbletea's own idiomatic suspend/resume primitive,
// tea.ExecProcess: the library already guarantees the alternate screen and
// raw-mode terminal state are restored on every return path (normal exit,
// non-zero exit, or the child's own crash), which is exactly the "UI is
// never left in a degraded terminal state" guarantee spec §4.7 asks the
// runner to uphold — there is nothing to reimplement here, only to wire.
package subprocess

import (
	"os"
	"os/exec"

	tea "github.com/charmbracelet/bubbletea"

	"gitrs/internal/action"
	"gitrs/internal/apperr"
)

// FinishedMsg reports a WAIT-discipline child's completion. A non-zero
// exit is surfaced via Err but is not fatal (spec §4.7).
type FinishedMsg struct {
	Argv []string
	Err  *apperr.Error
}

// ExitMsg requests that the application terminate with Code, the WAIT_AND_
// EXIT discipline's terminal action (spec §3 "WAIT_AND_EXIT", §4.7).
type ExitMsg struct {
	Code int
}

// BackgroundMsg reports whether a BACKGROUND-discipline child could be
// spawned at all; spawn failure is reported, the (never awaited) running
// child is not tracked further (spec §4.7).
type BackgroundMsg struct {
	Argv []string
	Err  *apperr.Error
}

// Spawn returns the tea.Cmd that executes argv under discipline. The
// caller (the dispatcher/UI model) is responsible for having already
// transitioned to the Subprocess state before issuing this command — at
// most one foreground subprocess runs at a time (spec §4.7, §5).
func Spawn(disc action.Discipline, argv []string) tea.Cmd {
	if len(argv) == 0 {
		return func() tea.Msg {
			return FinishedMsg{Err: apperr.New(apperr.SubprocessSpawn, "empty command")}
		}
	}
	switch disc {
	case action.Wait:
		return waitCmd(argv)
	case action.WaitAndExit:
		return waitAndExitCmd(argv)
	case action.Background:
		return backgroundCmd(argv)
	default:
		return nil
	}
}

func waitCmd(argv []string) tea.Cmd {
	cmd := exec.Command(argv[0], argv[1:]...)
	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return FinishedMsg{Argv: argv, Err: classifyExit(argv, err)}
	})
}

func waitAndExitCmd(argv []string) tea.Cmd {
	cmd := exec.Command(argv[0], argv[1:]...)
	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return ExitMsg{Code: exitCode(err)}
	})
}

func backgroundCmd(argv []string) tea.Cmd {
	return func() tea.Msg {
		cmd := exec.Command(argv[0], argv[1:]...)
		cmd.Stdin = nil
		devNull, openErr := os.OpenFile(os.DevNull, os.O_WRONLY, 0)
		if openErr == nil {
			cmd.Stdout = devNull
			cmd.Stderr = devNull
		}
		if err := cmd.Start(); err != nil {
			if devNull != nil {
				_ = devNull.Close()
			}
			return BackgroundMsg{Argv: argv, Err: apperr.Wrap(apperr.SubprocessSpawn, err, "spawn %v", argv)}
		}
		// Reap in the background; BACKGROUND children are never awaited
		// by the dispatcher (spec §4.7, §5), but an un-Wait()ed process
		// leaks a zombie entry once it exits.
		go func() {
			_ = cmd.Wait()
			if devNull != nil {
				_ = devNull.Close()
			}
		}()
		return BackgroundMsg{Argv: argv}
	}
}

func classifyExit(argv []string, err error) *apperr.Error {
	if err == nil {
		return nil
	}
	if exitErr, ok := err.(*exec.ExitError); ok {
		return apperr.Wrap(apperr.SubprocessExitNonzero, exitErr, "%v exited with status %d", argv, exitErr.ExitCode())
	}
	return apperr.Wrap(apperr.SubprocessSpawn, err, "spawn %v", argv)
}

func exitCode(err error) int {
	if err == nil {
		return 0
	}
	if exitErr, ok := err.(*exec.ExitError); ok {
		return exitErr.ExitCode()
	}
	return 1
}
