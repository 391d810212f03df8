// internal/tui/renderer.go
package tui

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rusenback/dockmon/internal/collector"
	"github.com/rusenback/dockmon/internal/logger"
	"github.com/rusenback/dockmon/internal/model"
	"github.com/rusenback/dockmon/internal/units"
)

// Thresholds carries the percentage cutoffs for 3-tier coloring.
type Thresholds struct {
	CPUYellow float64
	CPURed    float64
	MemYellow float64
	MemRed    float64
}

// DefaultThresholds palauttaa vakiorajat: keltainen 50%, punainen 80%
func DefaultThresholds() Thresholds {
	return Thresholds{CPUYellow: 50, CPURed: 80, MemYellow: 50, MemRed: 80}
}

type column struct {
	title string
	width int
}

var columns = []column{
	{"NAME", 35},
	{"STATUS", 30},
	{"CREATED_AT", 20},
	{"CPU %", 10},
	{"MEM_USAGE", 25},
	{"NET_IO (RX/TX)", 20},
	{"BLOCK_IO (R/W)", 20},
}

// Renderer turns a collector view and a viewport height into styled
// table text. It never panics past Render: a failed pass degrades to a
// single error line so the display loop stays alive.
type Renderer struct {
	thresholds Thresholds
	log        logger.Logger
}

// NewRenderer luo uuden taulukkorenderöijän
func NewRenderer(thresholds Thresholds, log logger.Logger) *Renderer {
	return &Renderer{thresholds: thresholds, log: log}
}

// Render produces exactly height lines: header, separator, container
// rows sorted by name, footer, blank padding. When the rows overflow the
// viewport they are truncated and replaced with a "more containers" line.
func (r *Renderer) Render(v collector.View, height int) (out string) {
	defer func() {
		if rec := recover(); rec != nil {
			r.log.Error("render failed: %v", rec)
			out = "Error generating table.\n"
		}
	}()

	footer := r.footerLines(v)
	table := r.headerLines()
	table = append(table, r.containerLines(v)...)

	available := height - len(footer)
	if len(table) > available && available > 0 {
		table = table[:available-1]
		table = append(table, "... more containers ...")
	}

	lines := append(table, footer...)
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

func (r *Renderer) headerLines() []string {
	var titles, seps strings.Builder
	for _, col := range columns {
		titles.WriteString(fmt.Sprintf("%-*s ", col.width, col.title))
		seps.WriteString(strings.Repeat("-", col.width) + " ")
	}
	return []string{headerStyle.Render(titles.String()), seps.String()}
}

func (r *Renderer) containerLines(v collector.View) []string {
	names := make([]string, 0, len(v.Snapshot.Processes))
	for name := range v.Snapshot.Processes {
		names = append(names, name)
	}
	sort.Strings(names)

	lines := make([]string, 0, len(names))
	for idx, name := range names {
		lines = append(lines, r.containerLine(v, idx, name))
	}
	return lines
}

func (r *Renderer) containerLine(v collector.View, idx int, name string) string {
	info := v.Snapshot.Processes[name]
	stat, hasStats := v.Snapshot.Stats[name]

	cpu, mem, net, block := "N/A", "N/A", "N/A", "N/A"
	if hasStats {
		cpu, mem, net, block = stat.CPUPercent, stat.MemoryUsage, stat.NetIO, stat.BlockIO
	}

	prefix := "  "
	if idx == v.Selection {
		prefix = "> "
	}

	left := fmt.Sprintf("%s%-*s %-*s %-*s ",
		prefix,
		columns[0].width, truncate(name, columns[0].width),
		columns[1].width, truncate(orNA(info.Status), columns[1].width),
		columns[2].width, orNA(info.Created))
	cpuCell := fmt.Sprintf("%-*s ", columns[3].width, cpu)
	memCell := fmt.Sprintf("%-*s ", columns[4].width, mem)
	right := fmt.Sprintf("%-*s %-*s",
		columns[5].width, truncate(net, columns[5].width),
		columns[6].width, truncate(block, columns[6].width))

	// The selected row renders reversed as a whole; cell colors only
	// apply to unselected rows.
	if idx == v.Selection {
		return selectedStyle.Render(left + cpuCell + memCell + right)
	}

	if style, ok := r.colorFor(cpu, r.thresholds.CPUYellow, r.thresholds.CPURed); ok {
		cpuCell = style.Render(cpuCell)
	}
	if style, ok := r.memColor(mem); ok {
		memCell = style.Render(memCell)
	}
	return left + cpuCell + memCell + right
}

func (r *Renderer) footerLines(v collector.View) []string {
	pauseHint := "Press 'p' to pause"
	if v.Paused {
		pauseHint = "PAUSED: press 'p' to resume"
	}
	return []string{
		r.summaryLine(v.Summary),
		"Notes: NET_IO = RX / TX, BLOCK_IO = READ / WRITE",
		pauseHint,
		"Press 'l' for logs (tmux), 'b' for shell (tmux)",
		"'q' to quit",
	}
}

func (r *Renderer) summaryLine(s model.Summary) string {
	used := units.FormatBytes(s.UsedMiB)
	if !s.Limited || s.LimitMiB <= 0 {
		return fmt.Sprintf("Total Memory Usage: %s / unlimited", used)
	}
	text := fmt.Sprintf("%s / %s", used, units.FormatBytes(s.LimitMiB))
	percent := s.UsedMiB / s.LimitMiB * 100
	if style, ok := r.colorFor(strconv.FormatFloat(percent, 'f', -1, 64), r.thresholds.MemYellow, r.thresholds.MemRed); ok {
		text = style.Render(text)
	}
	return "Total Memory Usage: " + text
}

// colorFor maps a percentage string to its threshold style. Values that
// do not parse, like "N/A", get no color.
func (r *Renderer) colorFor(value string, yellow, red float64) (lipgloss.Style, bool) {
	f, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(value), "%"), 64)
	if err != nil {
		return lipgloss.Style{}, false
	}
	switch {
	case f >= red:
		return redStyle, true
	case f >= yellow:
		return yellowStyle, true
	default:
		return greenStyle, true
	}
}

// memColor computes the row's own memory percentage from its used/limit
// figures. Unparseable or zero-limit rows stay uncolored.
func (r *Renderer) memColor(mem string) (lipgloss.Style, bool) {
	parts := strings.Split(mem, "/")
	if len(parts) != 2 {
		return lipgloss.Style{}, false
	}
	used, err := units.ParseMemValue(parts[0])
	if err != nil {
		return lipgloss.Style{}, false
	}
	limit, err := units.ParseMemValue(parts[1])
	if err != nil || limit <= 0 {
		return lipgloss.Style{}, false
	}
	percent := used / limit * 100
	return r.colorFor(strconv.FormatFloat(percent, 'f', -1, 64), r.thresholds.MemYellow, r.thresholds.MemRed)
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
