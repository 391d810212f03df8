package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rusenback/dockmon/internal/collector"
	"github.com/rusenback/dockmon/internal/logger"
	"github.com/rusenback/dockmon/internal/session"
)

// Model represents the TUI application state
type Model struct {
	collector *collector.Collector
	session   *session.Manager
	renderer  *Renderer
	log       logger.Logger

	// maxWait bounds the redraw trigger so the display refreshes even
	// without data changes.
	maxWait time.Duration

	width  int
	height int
}

// Message types for the Bubbletea update loop
type refreshMsg struct{}

type actionDoneMsg struct {
	err error
}

// NewModel creates a new TUI model
func NewModel(c *collector.Collector, s *session.Manager, r *Renderer, log logger.Logger, maxWait time.Duration) Model {
	return Model{
		collector: c,
		session:   s,
		renderer:  r,
		log:       log,
		maxWait:   maxWait,
	}
}

// Init arms the first redraw trigger
func (m Model) Init() tea.Cmd {
	return waitForUpdate(m.collector.Updates(), m.maxWait)
}
