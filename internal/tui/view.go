package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wrap"
)

func (m MainModel) View() string {
	if m.quitting {
		return ""
	}

	title := titleStyle.Render("lipid")
	if m.version != "" {
		title += " " + lipgloss.NewStyle().Faint(true).Render(m.version)
	}

	count := fmt.Sprintf("%d of %d listening sockets", len(m.filtered), len(m.report.Entries))
	if !m.report.TakenAt.IsZero() {
		count += " at " + m.report.TakenAt.Format("15:04:05")
	}

	footerWidth := 80
	if m.width > 0 {
		footerWidth = max(m.width-4, 20)
	}

	status := "Mode: Navigation (/ search, s/S sort, q quit)"
	if m.input.Focused() {
		status = "Mode: Searching (Press Esc/Enter to stop)"
	}
	status = wrap.String(status, footerWidth-2)
	if len(m.filtered) == 0 && m.input.Value() != "" {
		status = errorStyle.Render(wrap.String(fmt.Sprintf("No sockets match %q", m.input.Value()), footerWidth-2))
	}
	footer := footerStyle.Width(footerWidth).Render(status)

	content := lipgloss.JoinVertical(lipgloss.Left,
		title,
		count,
		m.input.View(),
		m.table.View(),
		footer,
	)

	if m.width == 0 {
		return content
	}
	return baseStyle.
		Width(m.width - 2).
		Padding(0, 1).
		Render(content)
}
