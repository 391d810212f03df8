// Package session manages the tmux session dockmon lives in: the monitor
// window, the log-tail window, and on-demand windows for container logs
// and shells.
package session

import (
	"context"
	"fmt"
	"os/exec"
	"time"

	"github.com/rusenback/dockmon/internal/docker"
	"github.com/rusenback/dockmon/internal/logger"
)

type runnerFunc func(name string, args ...string) error

type outputFunc func(ctx context.Context, name string, args ...string) ([]byte, error)

func runCommand(name string, args ...string) error {
	return exec.Command(name, args...).Run()
}

func runOutput(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

// Manager opens tmux windows against a named session for the selected
// container. Command execution is injected so tests can stub it.
type Manager struct {
	session      string
	inspector    docker.Inspector
	probeTimeout time.Duration
	log          logger.Logger
	run          runnerFunc
	output       outputFunc
}

// NewManager luo session managerin olemassaolevalle tmux sessiolle
func NewManager(session string, inspector docker.Inspector, probeTimeout time.Duration, log logger.Logger) *Manager {
	return &Manager{
		session:      session,
		inspector:    inspector,
		probeTimeout: probeTimeout,
		log:          log,
		run:          runCommand,
		output:       runOutput,
	}
}

// OpenLogs opens a new tmux window on the container's log stream: follow
// mode when the container is running, otherwise a one-shot dump that waits
// for Enter before closing.
func (m *Manager) OpenLogs(ctx context.Context, name string) error {
	running, err := m.inspector.IsRunning(ctx, name)
	if err != nil {
		m.log.Error("inspect %s: %v", name, err)
		return err
	}
	return m.run("tmux", "new-window", logsCommand(name, running))
}

// OpenShell opens an interactive shell in the container in a new tmux
// window. bash is preferred; when the probe fails the shell falls back
// to sh.
func (m *Manager) OpenShell(ctx context.Context, name string) error {
	shell := "bash"
	probeCtx, cancel := context.WithTimeout(ctx, m.probeTimeout)
	defer cancel()
	if _, err := m.output(probeCtx, "docker", "exec", name, "bash", "-c", "echo OK"); err != nil {
		m.log.Info("bash not available for %s, using sh", name)
		shell = "sh"
	}
	return m.run("tmux", "new-window", shellCommand(name, shell))
}

// Kill tears the session down. Errors are expected when the session is
// already gone, so they only get debug logging.
func (m *Manager) Kill() {
	if err := m.run("tmux", "kill-session", "-t", m.session); err != nil {
		m.log.Debug("kill-session %s: %v", m.session, err)
	}
}

func logsCommand(name string, running bool) string {
	if running {
		return fmt.Sprintf("docker logs -f %s", name)
	}
	return fmt.Sprintf("docker logs %s; echo 'Container exited. Press Enter to close.'; read", name)
}

func shellCommand(name, shell string) string {
	return fmt.Sprintf("docker exec -it %s %s -c 'export PS1=\"[%s] \\u@\\h:\\w\\$ \" && exec %s'",
		name, shell, name, shell)
}

// Launch creates a fresh detached session with a monitor window and a
// log-tail window, starts command in the monitor window, and attaches.
// Any stale session with the same name is killed first.
func Launch(session, logFile, command string) error {
	// Ignore failure: usually there is no stale session to kill.
	_ = runCommand("tmux", "kill-session", "-t", session)

	steps := [][]string{
		{"new-session", "-d", "-s", session, "-n", "monitor"},
		{"new-window", "-t", session, "-n", "script-logs"},
		{"send-keys", "-t", session + ":script-logs", fmt.Sprintf("clear; tail -f %s", logFile), "Enter"},
		{"select-window", "-t", session + ":monitor"},
		{"send-keys", "-t", session + ":monitor", command, "Enter"},
		{"attach-session", "-t", session},
	}
	for _, args := range steps {
		if err := runCommand("tmux", args...); err != nil {
			return fmt.Errorf("tmux %s: %w", args[0], err)
		}
	}
	return nil
}
