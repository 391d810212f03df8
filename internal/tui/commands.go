package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rusenback/dockmon/internal/session"
)

// waitForUpdate creates a command that blocks until the collector signals
// a data change, or maxWait passes. Every delivered refreshMsg re-arms it,
// so the view redraws on change and at least once per maxWait.
func waitForUpdate(updates <-chan struct{}, maxWait time.Duration) tea.Cmd {
	return func() tea.Msg {
		select {
		case <-updates:
		case <-time.After(maxWait):
		}
		return refreshMsg{}
	}
}

// openLogs creates a command that opens the container's logs in a tmux window
func openLogs(s *session.Manager, name string) tea.Cmd {
	return func() tea.Msg {
		return actionDoneMsg{err: s.OpenLogs(context.Background(), name)}
	}
}

// openShell creates a command that opens a shell in the container
func openShell(s *session.Manager, name string) tea.Cmd {
	return func() tea.Msg {
		return actionDoneMsg{err: s.OpenShell(context.Background(), name)}
	}
}
