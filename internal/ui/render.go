package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"gitrs/internal/config"
	"gitrs/internal/dispatch"
)

// View renders the active view's visible rows between a header (title plus
// scope) and a footer (status line, error line, or the live `:`/search
// buffer), matching the teacher's header/content/footer layout but built
// from internal/view's Projection() rather than a domain-specific status
// model (spec §4.8, §4.2 "button registry" for the menu bar).
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 || m.height == 0 {
		return ""
	}

	header := m.renderHeader()
	footer := m.renderFooter()
	body := m.renderBody(m.contentHeight())

	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

func (m *Model) renderHeader() string {
	title := "gitrs"
	if m.current != nil {
		title = m.current.Title()
	}
	if m.ingesting {
		title = m.spinner.View() + " " + title
	}
	right := string(m.activeScope())
	gap := m.width - runewidth.StringWidth(title) - runewidth.StringWidth(right) - 2
	if gap < 1 {
		gap = 1
	}
	content := title + strings.Repeat(" ", gap) + right
	return m.styles.Header.Width(m.width).Render(content)
}

func (m *Model) renderBody(height int) string {
	if m.current == nil || m.current.Len() == 0 {
		return m.styles.Faint.Width(m.width).Height(height).Render("(empty)")
	}

	scrolloff := m.options.Int(config.ScrollOff)
	top := m.current.VisibleTop(height, scrolloff)
	rows := m.current.Projection()
	cursor := m.current.CursorPos()

	var b strings.Builder
	shown := 0
	for i := top; i < len(rows) && shown < height; i++ {
		line := truncateDisplay(rows[i], m.width)
		if i == cursor {
			b.WriteString(m.styles.Selected.Width(m.width).Render(line))
		} else {
			b.WriteString(m.styles.Text.Render(line))
		}
		b.WriteString("\n")
		shown++
	}
	for ; shown < height; shown++ {
		b.WriteString("\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func (m *Model) renderFooter() string {
	switch m.dispatcher.State() {
	case dispatch.CommandLine:
		return m.styles.CmdPrompt.Width(m.width).Render(":" + m.dispatcher.Buffer())
	case dispatch.Search:
		return m.styles.CmdPrompt.Width(m.width).Render(m.searchPrompt() + m.dispatcher.Buffer())
	}

	if m.errMsg != "" {
		return m.styles.Danger.Width(m.width).Render(m.errMsg)
	}
	if m.statusMsg != "" {
		return m.styles.Footer.Width(m.width).Render(m.statusMsg)
	}
	if bar := m.renderButtonBar(); bar != "" {
		return m.styles.Footer.Width(m.width).Render(bar)
	}
	return m.styles.Footer.Width(m.width).Render("")
}

func (m *Model) searchPrompt() string {
	if m.dispatcher.SearchDirection() == dispatch.Backward {
		return "?"
	}
	return "/"
}

func (m *Model) renderButtonBar() string {
	if !m.options.Bool(config.MenuBar) {
		return ""
	}
	buttons := m.buttons.For(m.activeScope().Chain())
	if len(buttons) == 0 {
		return ""
	}
	labels := make([]string, len(buttons))
	for i, btn := range buttons {
		labels[i] = btn.Label
	}
	return strings.Join(labels, "  ")
}

func truncateDisplay(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "")
}
