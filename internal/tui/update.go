package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles messages and updates the model state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch keyActions[msg.String()] {
		case actionQuit:
			// Session teardown happens in the deferred shutdown path.
			return m, tea.Quit

		case actionPause:
			m.collector.TogglePause()

		case actionLogs:
			if name, ok := m.collector.SelectedName(); ok {
				return m, openLogs(m.session, name)
			}

		case actionShell:
			if name, ok := m.collector.SelectedName(); ok {
				return m, openShell(m.session, name)
			}

		case actionUp:
			m.collector.MoveSelection(-1)

		case actionDown:
			m.collector.MoveSelection(1)
		}

	case refreshMsg:
		// Redraw happens on every message; just re-arm the trigger.
		return m, waitForUpdate(m.collector.Updates(), m.maxWait)

	case actionDoneMsg:
		if msg.err != nil {
			m.log.Error("session action: %v", msg.err)
		}
	}

	return m, nil
}
