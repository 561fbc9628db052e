package logger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Logger wraps slog.Logger with file handling
type Logger struct {
	slogger *slog.Logger
	level   slog.Level
	writer  io.Writer
	file    *os.File
}

// Config contains logger configuration
type Config struct {
	LogFile  string
	LogLevel string
	Format   string // "json" (default) or "text"
	Silent   bool
}

// LogLevel represents logging levels
type LogLevel string

const (
	// Log levels
	LevelDebug LogLevel = "debug"
	LevelInfo  LogLevel = "info"
	LevelWarn  LogLevel = "warn"
	LevelError LogLevel = "error"
)

// ParseLevel maps a level name to a slog level, defaulting to info.
func ParseLevel(name string) slog.Level {
	switch LogLevel(strings.ToLower(strings.TrimSpace(name))) {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// New creates a new Logger instance
func New(config Config) (*Logger, error) {
	level := ParseLevel(config.LogLevel)

	var writer io.Writer
	var file *os.File

	switch {
	case config.LogFile != "":
		if err := os.MkdirAll(filepath.Dir(config.LogFile), 0755); err != nil {
			return nil, err
		}

		var err error
		file, err = os.OpenFile(config.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, err
		}
		writer = file
	case config.Silent:
		writer = io.Discard
	default:
		// stdout carries command output, so logs go to stderr
		writer = os.Stderr
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if config.Format == "text" {
		handler = slog.NewTextHandler(writer, opts)
	} else {
		handler = slog.NewJSONHandler(writer, opts)
	}

	return &Logger{
		slogger: slog.New(handler),
		level:   level,
		writer:  writer,
		file:    file,
	}, nil
}

// Close closes the logger file if it exists
func (l *Logger) Close() error {
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, args ...any) {
	l.slogger.Debug(msg, args...)
}

// Info logs an info message
func (l *Logger) Info(msg string, args ...any) {
	l.slogger.Info(msg, args...)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, args ...any) {
	l.slogger.Warn(msg, args...)
}

// Error logs an error message
func (l *Logger) Error(msg string, args ...any) {
	l.slogger.Error(msg, args...)
}

// Level returns the minimum level that is written
func (l *Logger) Level() slog.Level {
	return l.level
}

// With returns a new Logger with the given attributes added to each log entry
func (l *Logger) With(args ...any) *Logger {
	return &Logger{
		slogger: l.slogger.With(args...),
		level:   l.level,
		writer:  l.writer,
		file:    l.file,
	}
}

// WithGroup returns a new Logger with the given group added to each log entry
func (l *Logger) WithGroup(name string) *Logger {
	return &Logger{
		slogger: l.slogger.WithGroup(name),
		level:   l.level,
		writer:  l.writer,
		file:    l.file,
	}
}

// Discard returns a logger that drops everything, for tests and library
// callers that did not configure one.
func Discard() *Logger {
	return &Logger{
		slogger: slog.New(slog.NewJSONHandler(io.Discard, nil)),
		level:   slog.LevelError,
		writer:  io.Discard,
	}
}
