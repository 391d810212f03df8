package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "docker-monitor", cfg.Session)
	assert.Equal(t, "/tmp/docker_monitor.log", cfg.LogFile)
	assert.False(t, cfg.Verbose)
	assert.Equal(t, 5*time.Second, cfg.ProcessInterval)
	assert.Equal(t, 5*time.Second, cfg.StatsInterval)
	assert.Equal(t, 5*time.Second, cfg.SummaryInterval)
	assert.Equal(t, 5*time.Second, cfg.QueryTimeout)
	assert.Equal(t, 20*time.Second, cfg.RedrawMaxWait)
	assert.Equal(t, 50.0, cfg.CPUYellow)
	assert.Equal(t, 80.0, cfg.CPURed)
}

func TestLoadExplicitFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
session: staging-monitor
verbose: true
stats_interval: 10s
thresholds:
  cpu_red: 90
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "staging-monitor", cfg.Session)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, 10*time.Second, cfg.StatsInterval)
	assert.Equal(t, 90.0, cfg.CPURed)
	// Untouched keys keep their defaults.
	assert.Equal(t, 5*time.Second, cfg.ProcessInterval)
	assert.Equal(t, 50.0, cfg.CPUYellow)
}

func TestLoadExplicitFileMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadLocalConfigFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	content := "session: local-session\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0o644))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "local-session", cfg.Session)
}

func TestEnvOverride(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("DOCKMON_SESSION", "env-session")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "env-session", cfg.Session)
}
