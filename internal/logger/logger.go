// Package logger provides a small logging interface for dockmon components.
// The TUI owns the terminal, so the real implementation writes to a file
// that a separate tmux window tails.
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
)

// Logger defines the logging operations used across the codebase.
// All methods accept a format string and arguments, like fmt.Printf.
type Logger interface {
	Debug(format string, args ...interface{})
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
}

type fileLogger struct {
	l       *log.Logger
	verbose bool
	closer  io.Closer
}

// NewFileLogger creates a logger writing to the given file. The file is
// truncated at startup and made world-writable so the tmux log window can
// tail it regardless of who started the session. Debug messages are only
// written when verbose is true.
func NewFileLogger(path string, verbose bool) (Logger, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o666)
	if err != nil {
		return nil, err
	}
	// Best effort: umask may have narrowed the create mode.
	_ = os.Chmod(path, 0o666)

	return &fileLogger{
		l:       log.New(f, "", log.Ldate|log.Ltime),
		verbose: verbose,
		closer:  f,
	}, nil
}

func (fl *fileLogger) Debug(format string, args ...interface{}) {
	if fl.verbose {
		fl.l.Printf("[DEBUG] "+format, args...)
	}
}

func (fl *fileLogger) Info(format string, args ...interface{}) {
	fl.l.Printf("[INFO] "+format, args...)
}

func (fl *fileLogger) Warn(format string, args ...interface{}) {
	fl.l.Printf("[WARN] "+format, args...)
}

func (fl *fileLogger) Error(format string, args ...interface{}) {
	fl.l.Printf("[ERROR] "+format, args...)
}

type noopLogger struct{}

// Noop returns a logger that discards all messages.
func Noop() Logger {
	return &noopLogger{}
}

func (l *noopLogger) Debug(format string, args ...interface{}) {}
func (l *noopLogger) Info(format string, args ...interface{})  {}
func (l *noopLogger) Warn(format string, args ...interface{})  {}
func (l *noopLogger) Error(format string, args ...interface{}) {}

// Message is a captured log message.
type Message struct {
	Level string
	Text  string
}

// BufferLogger captures log messages for test assertions.
type BufferLogger struct {
	Messages []Message
}

// NewBufferLogger creates a logger that records messages for inspection.
func NewBufferLogger() *BufferLogger {
	return &BufferLogger{Messages: make([]Message, 0)}
}

func (b *BufferLogger) record(level, format string, args ...interface{}) {
	b.Messages = append(b.Messages, Message{Level: level, Text: fmt.Sprintf(format, args...)})
}

func (b *BufferLogger) Debug(format string, args ...interface{}) { b.record("debug", format, args...) }
func (b *BufferLogger) Info(format string, args ...interface{})  { b.record("info", format, args...) }
func (b *BufferLogger) Warn(format string, args ...interface{})  { b.record("warn", format, args...) }
func (b *BufferLogger) Error(format string, args ...interface{}) { b.record("error", format, args...) }

// HasLevel returns true if any message was logged at the given level.
func (b *BufferLogger) HasLevel(level string) bool {
	for _, m := range b.Messages {
		if m.Level == level {
			return true
		}
	}
	return false
}
