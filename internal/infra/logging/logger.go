// Package logging provides the diagnostic log for todoboard.
// The interactive board owns the terminal, so diagnostics go to a log file
// (<state dir>/logs/todoboard.log) or any writer supplied by the caller.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/runoshun/todoboard/internal/domain"
)

// Ensure Logger implements domain.Logger interface.
var _ domain.Logger = (*Logger)(nil)

// Logger writes formatted diagnostic lines to a file or writer.
// Fields are ordered to minimize memory padding.
type Logger struct {
	out      io.Writer
	file     *os.File
	stateDir string
	mu       sync.Mutex
	level    slog.Level
}

// New creates a Logger that appends to the log file inside stateDir.
// The file is opened on first write. If stateDir is empty, logging is
// disabled (returns a no-op logger).
func New(stateDir string, level slog.Level) *Logger {
	return &Logger{
		stateDir: stateDir,
		level:    level,
	}
}

// NewWriter creates a Logger that writes to w.
func NewWriter(w io.Writer, level slog.Level) *Logger {
	return &Logger{
		out:   w,
		level: level,
	}
}

// ParseLevel parses a log level string into slog.Level.
func ParseLevel(levelStr string) slog.Level {
	switch levelStr {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Path returns the log file path, or "" when not writing to a file.
func (l *Logger) Path() string {
	if l.stateDir == "" {
		return ""
	}
	return domain.LogPath(l.stateDir)
}

// writer returns the destination, opening the log file if needed.
// Callers must hold l.mu.
func (l *Logger) writer() (io.Writer, error) {
	if l.out != nil {
		return l.out, nil
	}

	path := domain.LogPath(l.stateDir)
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("create logs directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o640) //nolint:gosec // Log file readable by owner and group
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	l.file = f
	l.out = f
	return f, nil
}

// Close closes the log file if one was opened.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	l.out = nil
	return err
}

// formatLog formats a log entry.
// Format: [2025-12-30 09:32:51] [INFO] [category] message
func formatLog(t time.Time, level slog.Level, category, msg string) string {
	return fmt.Sprintf("[%s] [%s] [%s] %s\n",
		t.Format("2006-01-02 15:04:05"),
		levelToString(level),
		category,
		msg,
	)
}

func levelToString(level slog.Level) string {
	switch level {
	case slog.LevelDebug:
		return "DEBUG"
	case slog.LevelInfo:
		return "INFO"
	case slog.LevelWarn:
		return "WARN"
	case slog.LevelError:
		return "ERROR"
	default:
		return "INFO"
	}
}

func (l *Logger) log(level slog.Level, category, msg string) {
	if level < l.level {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.stateDir == "" && l.out == nil {
		return // Logging disabled
	}

	entry := formatLog(time.Now(), level, category, msg)
	if w, err := l.writer(); err == nil {
		_, _ = io.WriteString(w, entry)
	}
}

// Debug logs a debug message.
func (l *Logger) Debug(category, msg string) {
	l.log(slog.LevelDebug, category, msg)
}

// Info logs an info message.
func (l *Logger) Info(category, msg string) {
	l.log(slog.LevelInfo, category, msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(category, msg string) {
	l.log(slog.LevelWarn, category, msg)
}

// Error logs an error message.
func (l *Logger) Error(category, msg string) {
	l.log(slog.LevelError, category, msg)
}
