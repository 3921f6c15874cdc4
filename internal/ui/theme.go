package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme defines the colors gitrs renders with. Grounded on the teacher's
// internal/ui/tea/theme.go: a flat palette plus a Styles() builder, rather
// than the legacy tview-ported component that shares no dependency with
// this project's go.mod.
type Theme struct {
	Background string
	Surface    string
	Border     string
	Text       string
	Muted      string
	Faint      string
	Accent     string
	Success    string
	Warning    string
	Danger     string
	Selection  string
}

// DetectTheme picks the dark or light palette using termenv's background
// probe, the same signal lipgloss itself uses internally for adaptive
// colors — queried explicitly here because gitrs's header/footer bars use
// fixed colors rather than lipgloss.AdaptiveColor throughout.
func DetectTheme() Theme {
	if termenv.HasDarkBackground() {
		return darkTheme()
	}
	return lightTheme()
}

func darkTheme() Theme {
	return Theme{
		Background: "#191A21",
		Surface:    "#282A36",
		Border:     "#44475A",
		Text:       "#F8F8F2",
		Muted:      "#6272A4",
		Faint:      "#44475A",
		Accent:     "#8BE9FD",
		Success:    "#50FA7B",
		Warning:    "#F1FA8C",
		Danger:     "#FF5555",
		Selection:  "#44475A",
	}
}

func lightTheme() Theme {
	return Theme{
		Background: "#FFFFFF",
		Surface:    "#F5F5F5",
		Border:     "#D0D0D0",
		Text:       "#1E1E1E",
		Muted:      "#6B6B6B",
		Faint:      "#B0B0B0",
		Accent:     "#005F87",
		Success:    "#1A7F37",
		Warning:    "#9A6700",
		Danger:     "#CF222E",
		Selection:  "#D6E4FF",
	}
}

// Styles is the set of pre-built lipgloss styles derived from a Theme.
type Styles struct {
	Header    lipgloss.Style
	Footer    lipgloss.Style
	Text      lipgloss.Style
	Muted     lipgloss.Style
	Faint     lipgloss.Style
	Accent    lipgloss.Style
	Success   lipgloss.Style
	Warning   lipgloss.Style
	Danger    lipgloss.Style
	Selected  lipgloss.Style
	CmdPrompt lipgloss.Style
}

func (t Theme) Styles() Styles {
	return Styles{
		Header: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)).
			Padding(0, 1),
		Footer: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Muted)).
			Padding(0, 1),
		Text:    lipgloss.NewStyle().Foreground(lipgloss.Color(t.Text)),
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color(t.Muted)),
		Faint:   lipgloss.NewStyle().Foreground(lipgloss.Color(t.Faint)),
		Accent:  lipgloss.NewStyle().Foreground(lipgloss.Color(t.Accent)).Bold(true),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color(t.Success)).Bold(true),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color(t.Warning)),
		Danger:  lipgloss.NewStyle().Foreground(lipgloss.Color(t.Danger)).Bold(true),
		Selected: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Selection)).
			Foreground(lipgloss.Color(t.Text)),
		CmdPrompt: lipgloss.NewStyle().Foreground(lipgloss.Color(t.Accent)),
	}
}
