package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

func (m MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		// title, search, footer and borders
		h := m.height - 9
		if h < 3 {
			h = 3
		}
		m.table.SetHeight(h)
		m.table.SetWidth(m.width - 4)
		return m, nil

	case tea.KeyMsg:
		if m.input.Focused() {
			switch msg.String() {
			case "esc", "enter":
				m.input.Blur()
				m.table.Focus()
				return m, nil
			case "ctrl+c":
				m.quitting = true
				return m, tea.Quit
			}
			m.input, cmd = m.input.Update(msg)
			m.updateTable()
			return m, cmd
		}

		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "/":
			m.table.Blur()
			m.input.Focus()
			return m, nil
		case "s":
			m.sortCol = (m.sortCol + 1) % sortColumnCount
			m.updateTable()
			return m, nil
		case "S":
			m.sortDesc = !m.sortDesc
			m.updateTable()
			return m, nil
		case "esc":
			if m.input.Value() != "" {
				m.input.SetValue("")
				m.updateTable()
			}
			return m, nil
		}
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}
