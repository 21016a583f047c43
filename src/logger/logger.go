package logger

import (
	"io"
	"log/slog"
)

// Logger defines the interface for logging throughout the application.
// Arguments after msg are slog key/value pairs.
type Logger interface {
	Info(msg string, args ...any)
	Error(msg string, args ...any)
	Debug(msg string, args ...any)
}

// ConsoleLogger writes human-readable logs through a slog text handler.
// Used with --verbose so diagnostics go to stderr next to the normal output.
type ConsoleLogger struct {
	log *slog.Logger
}

// NewConsoleLogger creates a logger writing to w. Debug records are only
// emitted when debug is true.
func NewConsoleLogger(w io.Writer, debug bool) *ConsoleLogger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return &ConsoleLogger{log: slog.New(handler)}
}

func (c *ConsoleLogger) Info(msg string, args ...any) {
	c.log.Info(msg, args...)
}

func (c *ConsoleLogger) Error(msg string, args ...any) {
	c.log.Error(msg, args...)
}

func (c *ConsoleLogger) Debug(msg string, args ...any) {
	c.log.Debug(msg, args...)
}

// SilentLogger discards all log messages.
// Used by default so log lines never interleave with the result table.
type SilentLogger struct{}

func NewSilentLogger() *SilentLogger {
	return &SilentLogger{}
}

func (s *SilentLogger) Info(msg string, args ...any)  {}
func (s *SilentLogger) Error(msg string, args ...any) {}
func (s *SilentLogger) Debug(msg string, args ...any) {}
