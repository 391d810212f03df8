// internal/docker/query.go
package docker

import (
	"context"
	"os/exec"
	"strings"
	"time"

	"github.com/rusenback/dockmon/internal/errors"
	"github.com/rusenback/dockmon/internal/logger"
	"github.com/rusenback/dockmon/internal/model"
	"github.com/rusenback/dockmon/internal/units"
)

// fieldSep erottaa kentät docker --format tulosteessa
const fieldSep = "||"

const (
	processFormat = "{{.Names}}" + fieldSep + "{{.Status}}" + fieldSep + "{{.CreatedAt}}"
	statsFormat   = "{{.Name}}" + fieldSep + "{{.CPUPerc}}" + fieldSep + "{{.MemUsage}}" + fieldSep + "{{.NetIO}}" + fieldSep + "{{.BlockIO}}"
)

// runnerFunc executes an external command and returns its stdout.
// Injected so tests can stub docker output.
type runnerFunc func(ctx context.Context, name string, args ...string) ([]byte, error)

func runCommand(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

// Query invokes the docker CLI inspection commands and parses their
// delimited tabular output into records keyed by container name.
type Query struct {
	timeout time.Duration
	run     runnerFunc
	log     logger.Logger
}

// NewQuery luo uuden Query adapterin
func NewQuery(timeout time.Duration, log logger.Logger) *Query {
	return &Query{
		timeout: timeout,
		run:     runCommand,
		log:     log,
	}
}

// ProcessList returns one record per container known to the runtime,
// running or not. Command failure or timeout surfaces as a QUERY error.
func (q *Query) ProcessList(ctx context.Context) (map[string]model.Process, error) {
	out, err := q.docker(ctx, "ps", "-a", "--format", processFormat)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrQuery, "docker ps failed")
	}

	result := make(map[string]model.Process)
	for _, line := range splitLines(out) {
		parts := strings.Split(line, fieldSep)
		if len(parts) < 3 {
			q.log.Debug("dropping malformed ps line: %q", line)
			continue
		}
		name := strings.TrimSpace(parts[0])
		result[name] = model.Process{
			Status:  strings.TrimSpace(parts[1]),
			Created: units.NormalizeTimestamp(strings.TrimSpace(parts[2])),
		}
	}
	return result, nil
}

// Stats returns one record per container currently reporting statistics.
// Stopped containers simply have no entry.
func (q *Query) Stats(ctx context.Context) (map[string]model.Stats, error) {
	out, err := q.docker(ctx, "stats", "--no-stream", "--format", statsFormat)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrQuery, "docker stats failed")
	}

	result := make(map[string]model.Stats)
	for _, line := range splitLines(out) {
		parts := strings.Split(line, fieldSep)
		if len(parts) < 5 {
			q.log.Debug("dropping malformed stats line: %q", line)
			continue
		}
		name := strings.TrimSpace(parts[0])
		result[name] = model.Stats{
			CPUPercent:  strings.TrimSpace(parts[1]),
			MemoryUsage: units.ReformatMemUsage(strings.TrimSpace(parts[2])),
			NetIO:       strings.TrimSpace(parts[3]),
			BlockIO:     strings.TrimSpace(parts[4]),
		}
	}
	return result, nil
}

func (q *Query) docker(ctx context.Context, args ...string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, q.timeout)
	defer cancel()
	return q.run(ctx, "docker", args...)
}

func splitLines(out []byte) []string {
	trimmed := strings.TrimSpace(string(out))
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "\n")
}
