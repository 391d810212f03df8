package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileLoggerWritesLevels(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dockmon.log")

	log, err := NewFileLogger(path, false)
	require.NoError(t, err)

	log.Debug("hidden %d", 1)
	log.Info("hello %s", "world")
	log.Warn("careful")
	log.Error("broken: %v", os.ErrNotExist)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	s := string(data)
	assert.NotContains(t, s, "hidden", "debug suppressed unless verbose")
	assert.Contains(t, s, "[INFO] hello world")
	assert.Contains(t, s, "[WARN] careful")
	assert.Contains(t, s, "[ERROR] broken")
}

func TestFileLoggerVerbose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dockmon.log")

	log, err := NewFileLogger(path, true)
	require.NoError(t, err)
	log.Debug("visible")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[DEBUG] visible")
}

func TestFileLoggerTruncatesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dockmon.log")
	require.NoError(t, os.WriteFile(path, []byte("stale content\n"), 0o644))

	log, err := NewFileLogger(path, false)
	require.NoError(t, err)
	log.Info("fresh")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "stale content")
	assert.Contains(t, string(data), "fresh")
}

func TestBufferLogger(t *testing.T) {
	b := NewBufferLogger()
	b.Info("one %d", 1)
	b.Error("two")

	require.Len(t, b.Messages, 2)
	assert.Equal(t, Message{Level: "info", Text: "one 1"}, b.Messages[0])
	assert.True(t, b.HasLevel("error"))
	assert.False(t, b.HasLevel("warn"))
}
