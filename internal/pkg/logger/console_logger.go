package logger

import (
	"io"
	"log/slog"
	"os"
)

// ConsoleLogger writes human-readable text records to stdout.
type ConsoleLogger struct {
	slogLogger
}

// NewConsoleLogger creates a new console logger with the specified log level.
func NewConsoleLogger(level string) Logger {
	return NewConsoleLoggerWithWriter(level, os.Stdout)
}

// NewConsoleLoggerWithWriter creates a console logger writing to w.
// The CLI uses it with stderr so that stdout carries only command output.
func NewConsoleLoggerWithWriter(level string, w io.Writer) Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: parseLevel(level),
	})

	return &ConsoleLogger{slogLogger{logger: slog.New(handler)}}
}
