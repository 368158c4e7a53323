package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// Logger wraps charm/log for structured logging
type Logger struct {
	*log.Logger
}

// New creates a new logger with the given output
func New(w io.Writer) *Logger {
	return NewWithLevel(w, log.InfoLevel)
}

// NewWithLevel creates a logger with a specific level
func NewWithLevel(w io.Writer, level log.Level) *Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Level:           level,
		Prefix:          "notepad",
	})
	return &Logger{Logger: l}
}

// NewFileLogger creates a logger that appends to the file at path, creating
// parent directories as needed
func NewFileLogger(path string, level log.Level) (*Logger, func(), error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}

	cleanup := func() {
		f.Close()
	}

	return NewWithLevel(f, level), cleanup, nil
}

// Discard returns a logger that discards all output
func Discard() *Logger {
	return New(io.Discard)
}

// ParseLevel parses a level name such as "debug" or "warn"
func ParseLevel(name string) (log.Level, error) {
	level, err := log.ParseLevel(strings.ToLower(strings.TrimSpace(name)))
	if err != nil {
		return log.InfoLevel, fmt.Errorf("invalid log level %q: %w", name, err)
	}
	return level, nil
}

// ConfigLoaded logs the effective configuration source
func (l *Logger) ConfigLoaded(path string, sidebar bool) {
	l.Debug("config loaded",
		"file", path,
		"sidebar", sidebar)
}

// NoteSelected logs a change of the open note
func (l *Logger) NoteSelected(id, title string) {
	l.Debug("note selected",
		"note", id,
		"title", title)
}

// BlockEdited logs a text change in a block
func (l *Logger) BlockEdited(noteID, blockID string, length int) {
	l.Debug("block edited",
		"note", noteID,
		"block", blockID,
		"length", length)
}

// BlockAnnotated logs the result of annotating a block
func (l *Logger) BlockAnnotated(blockID string, ranges int, took time.Duration) {
	l.Debug("block annotated",
		"block", blockID,
		"ranges", ranges,
		"took", took)
}

// TextAnnotated logs the result of annotating one command line input,
// numbered from 1
func (l *Logger) TextAnnotated(input, ranges int, took time.Duration) {
	l.Debug("text annotated",
		"input", input,
		"ranges", ranges,
		"took", took)
}

// BlockError logs a failed block operation
func (l *Logger) BlockError(operation, blockID string, err error) {
	l.Error("block operation failed",
		"operation", operation,
		"block", blockID,
		"error", err)
}

// ClipboardError logs a failed copy
func (l *Logger) ClipboardError(err error) {
	l.Warn("clipboard copy failed",
		"error", err)
}
