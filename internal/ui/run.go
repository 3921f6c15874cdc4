package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the Bubble Tea program and blocks until the user quits, a
// WAIT_AND_EXIT action fires, or a fatal error occurs (spec §6 "Exit code 0
// on clean quit; the exit code of the child for >-discipline actions").
// Grounded on the teacher's ui.Run, generalized from a fixed polling
// dashboard to gitrs's Params-constructed root Model; alt-screen and mouse
// reporting are both requested up front since every view accepts
// <lclick>/<rclick>/<scroll-*> tokens (spec §4.1).
func Run(p Params) (int, error) {
	m := New(p)
	program := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	final, err := program.Run()
	if err != nil {
		return 1, err
	}
	if fm, ok := final.(*Model); ok {
		return fm.exitCode, nil
	}
	return 0, nil
}
