package tui

import "github.com/charmbracelet/lipgloss"

var (
	headerStyle = lipgloss.NewStyle().Bold(true)

	selectedStyle = lipgloss.NewStyle().Reverse(true)

	redStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#d9534f"))

	yellowStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#f0ad4e"))

	greenStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#5cb85c"))
)
