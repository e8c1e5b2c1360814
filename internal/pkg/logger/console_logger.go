package logger

import (
	"io"
	"log/slog"
	"os"
)

// ConsoleLogger writes text formatted records to stdout.
type ConsoleLogger struct {
	logger *slog.Logger
}

// NewConsoleLogger creates a new console logger with the specified log level.
func NewConsoleLogger(level string) Logger {
	return newConsoleLogger(os.Stdout, level)
}

func newConsoleLogger(w io.Writer, level string) *ConsoleLogger {
	opts := &slog.HandlerOptions{
		Level: parseLevel(level),
	}
	return &ConsoleLogger{logger: slog.New(slog.NewTextHandler(w, opts))}
}

// Debug logs a debug message to the console.
func (l *ConsoleLogger) Debug(args ...interface{}) {
	l.logger.Debug(formatArgs(args...))
}

// Info logs an informational message to the console.
func (l *ConsoleLogger) Info(args ...interface{}) {
	l.logger.Info(formatArgs(args...))
}

// Warn logs a warning message to the console.
func (l *ConsoleLogger) Warn(args ...interface{}) {
	l.logger.Warn(formatArgs(args...))
}

// Error logs an error message to the console.
func (l *ConsoleLogger) Error(args ...interface{}) {
	l.logger.Error(formatArgs(args...))
}

// Fatal logs a fatal message and exits.
func (l *ConsoleLogger) Fatal(args ...interface{}) {
	l.logger.Error(formatArgs(args...))
	os.Exit(1)
}

// Panic logs a panic message and panics.
func (l *ConsoleLogger) Panic(args ...interface{}) {
	msg := formatArgs(args...)
	l.logger.Error(msg)
	panic(msg)
}

// With returns a console logger carrying the given attributes.
func (l *ConsoleLogger) With(keyValues ...interface{}) Logger {
	return &ConsoleLogger{logger: l.logger.With(keyValues...)}
}
