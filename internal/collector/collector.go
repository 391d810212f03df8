// Package collector owns the shared snapshot of container processes,
// statistics and the derived memory summary. Three independent pollers
// republish into it; the renderer reads consistent views out of it.
package collector

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/rusenback/dockmon/internal/docker"
	"github.com/rusenback/dockmon/internal/logger"
	"github.com/rusenback/dockmon/internal/model"
	"github.com/rusenback/dockmon/internal/units"
)

// Options holds the poller intervals.
type Options struct {
	ProcessInterval time.Duration
	StatsInterval   time.Duration
	SummaryInterval time.Duration
}

// DefaultOptions käyttää samaa 5s väliä kaikille pollereille
func DefaultOptions() Options {
	return Options{
		ProcessInterval: 5 * time.Second,
		StatsInterval:   5 * time.Second,
		SummaryInterval: 5 * time.Second,
	}
}

// View is what a single render pass works from: a consistent snapshot
// plus the state that decorates it. Taken under one lock acquisition.
type View struct {
	Snapshot  model.Snapshot
	Summary   model.Summary
	Selection int
	Paused    bool
}

// Collector is the only owner of the shared mutable state. All mutation
// goes through its methods; the single mutex guards every map and field.
type Collector struct {
	queries docker.Querier
	opts    Options
	log     logger.Logger

	mu        sync.Mutex
	processes map[string]model.Process
	stats     map[string]model.Stats
	summary   model.Summary
	frozen    *model.Snapshot
	paused    bool
	selection int

	// Buffered to one entry so rapid changes coalesce into one redraw.
	updated chan struct{}
}

// New creates a collector with empty maps.
func New(queries docker.Querier, opts Options, log logger.Logger) *Collector {
	return &Collector{
		queries:   queries,
		opts:      opts,
		log:       log,
		processes: make(map[string]model.Process),
		stats:     make(map[string]model.Stats),
		updated:   make(chan struct{}, 1),
	}
}

// Run starts the three polling loops. They exit when ctx is cancelled,
// checking once per poll/sleep cycle.
func (c *Collector) Run(ctx context.Context) {
	go c.pollLoop(ctx, "process list", c.opts.ProcessInterval, c.FetchProcessList)
	go c.pollLoop(ctx, "stats", c.opts.StatsInterval, c.FetchStats)
	go c.pollLoop(ctx, "summary", c.opts.SummaryInterval, c.FetchSummary)
}

// pollLoop runs one fetch per interval for the process lifetime. A failed
// or panicking fetch is logged and retried next cycle; it never takes the
// other pollers down with it.
func (c *Collector) pollLoop(ctx context.Context, name string, interval time.Duration, fetch func(context.Context) error) {
	for {
		c.runSafely(name, func() {
			if err := fetch(ctx); err != nil {
				c.log.Error("%s poll: %v", name, err)
			}
		})

		select {
		case <-ctx.Done():
			return
		case <-time.After(interval):
		}
	}
}

func (c *Collector) runSafely(name string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			c.log.Error("%s poll panicked: %v", name, r)
		}
	}()
	fn()
}

// FetchProcessList polls the runtime for the container list and replaces
// the process map wholesale. The selection is re-clamped against the new
// name set under the same lock.
func (c *Collector) FetchProcessList(ctx context.Context) error {
	procs, err := c.queries.ProcessList(ctx)
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.processes = procs
	c.clampSelectionLocked()
	c.mu.Unlock()

	c.notify()
	return nil
}

// FetchStats polls resource statistics and replaces the stats map wholesale.
func (c *Collector) FetchStats(ctx context.Context) error {
	stats, err := c.queries.Stats(ctx)
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.stats = stats
	c.mu.Unlock()

	c.notify()
	return nil
}

// FetchSummary recomputes the memory summary from the current stats map.
// It reads a copy under lock, parses outside it, and replaces the stored
// summary atomically. With no stats present it yields a zero, unlimited
// summary rather than blocking on the stats poller.
func (c *Collector) FetchSummary(ctx context.Context) error {
	c.mu.Lock()
	stats := make(map[string]model.Stats, len(c.stats))
	for k, v := range c.stats {
		stats[k] = v
	}
	c.mu.Unlock()

	var used, limit float64
	limited := true
	for name, s := range stats {
		parts := strings.Split(s.MemoryUsage, "/")
		if len(parts) != 2 {
			continue
		}
		u, err := units.ParseMemValue(parts[0])
		if err != nil {
			c.log.Warn("summary: %s used: %v", name, err)
		}
		l, err := units.ParseMemValue(parts[1])
		if err != nil {
			c.log.Warn("summary: %s limit: %v", name, err)
		}
		used += u
		if l > 0 {
			limit += l
		} else {
			// A container without a usable limit makes the total
			// unlimited; summing only the reporting subset would
			// understate exposure.
			limited = false
		}
	}
	if limit <= 0 {
		limited = false
	}

	c.mu.Lock()
	c.summary = model.Summary{UsedMiB: used, LimitMiB: limit, Limited: limited}
	c.mu.Unlock()

	c.notify()
	return nil
}

// TogglePause freezes a deep copy of (process map, stats map) when
// running, or discards the frozen snapshot when paused. At most one
// frozen snapshot exists at a time.
func (c *Collector) TogglePause() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.paused {
		c.paused = false
		c.frozen = nil
		return
	}
	snap := model.Snapshot{Processes: c.processes, Stats: c.stats}.Clone()
	c.frozen = &snap
	c.paused = true
}

// Paused reports whether the view is frozen.
func (c *Collector) Paused() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.paused
}

// View returns everything a render pass needs in one lock acquisition.
// When paused it resolves to the frozen snapshot; otherwise to a detached
// copy of the live maps, so pollers never tear a render mid-pass.
func (c *Collector) View() View {
	c.mu.Lock()
	defer c.mu.Unlock()

	v := View{
		Summary:   c.summary,
		Selection: c.selection,
		Paused:    c.paused,
	}
	if c.paused && c.frozen != nil {
		// The frozen snapshot is never mutated after capture, so its
		// maps can be shared with the renderer directly.
		v.Snapshot = *c.frozen
	} else {
		v.Snapshot = model.Snapshot{Processes: c.processes, Stats: c.stats}.Clone()
	}
	return v
}

// MoveSelection moves the cursor by delta, clamped to the current name set.
func (c *Collector) MoveSelection(delta int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.selection += delta
	c.clampSelectionLocked()
}

// Selection returns the current cursor index.
func (c *Collector) Selection() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.selection
}

// SelectedName returns the container name under the cursor, or false when
// no containers are known.
func (c *Collector) SelectedName() (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	names := sortedNames(c.processes)
	if len(names) == 0 {
		return "", false
	}
	idx := c.selection
	if idx >= len(names) {
		idx = len(names) - 1
	}
	if idx < 0 {
		idx = 0
	}
	return names[idx], true
}

// Updates exposes the data-changed signal. The channel is buffered to one
// entry: consumers that are busy miss nothing, they just redraw once.
func (c *Collector) Updates() <-chan struct{} {
	return c.updated
}

func (c *Collector) notify() {
	select {
	case c.updated <- struct{}{}:
	default:
	}
}

func (c *Collector) clampSelectionLocked() {
	max := len(c.processes) - 1
	if c.selection > max {
		c.selection = max
	}
	if c.selection < 0 {
		c.selection = 0
	}
}

func sortedNames(m map[string]model.Process) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
