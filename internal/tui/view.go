package tui

// View renders the TUI interface
func (m Model) View() string {
	if m.height == 0 {
		return ""
	}
	return m.renderer.Render(m.collector.View(), m.height)
}
