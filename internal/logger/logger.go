// Package logger provides levelled logging for a TUI application.
// Output goes to a file so log lines never corrupt the terminal UI.
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/adrg/xdg"
)

// Level represents the logging level.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelError
)

const (
	appName     = "storesearch"
	logFileName = "storesearch.log"
	timeFormat  = "2006-01-02 15:04:05"
)

// String returns the string representation of the log level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Logger writes timestamped, levelled lines to an io.Writer.
type Logger struct {
	out    *log.Logger
	level  Level
	closer io.Closer
	now    func() time.Time
}

// New creates a logger writing to w at the given level.
func New(w io.Writer, level Level) *Logger {
	return &Logger{
		out:   log.New(w, "", 0),
		level: level,
		now:   time.Now,
	}
}

// NewFile creates a logger appending to the file at path.
// An empty path selects storesearch.log in the XDG state directory.
func NewFile(path string, level Level) (*Logger, error) {
	if path == "" {
		var err error
		path, err = xdg.StateFile(filepath.Join(appName, logFileName))
		if err != nil {
			return nil, fmt.Errorf("resolve log path: %w", err)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	l := New(f, level)
	l.closer = f
	return l, nil
}

// Discard returns a logger that drops everything.
func Discard() *Logger {
	return New(io.Discard, LevelError+1)
}

func (l *Logger) logf(level Level, format string, args ...any) {
	if l == nil || level < l.level {
		return
	}
	msg := fmt.Sprintf(format, args...)
	l.out.Printf("[%s] [%s] %s", l.now().Format(timeFormat), level, msg)
}

// Debug logs a debug message.
func (l *Logger) Debug(format string, args ...any) { l.logf(LevelDebug, format, args...) }

// Info logs an info message.
func (l *Logger) Info(format string, args ...any) { l.logf(LevelInfo, format, args...) }

// Error logs an error message.
func (l *Logger) Error(format string, args ...any) { l.logf(LevelError, format, args...) }

// Close closes the underlying file, if any.
func (l *Logger) Close() error {
	if l == nil || l.closer == nil {
		return nil
	}
	return l.closer.Close()
}

var (
	globalMu sync.RWMutex
	global   = Discard()
)

// Set installs the process-wide logger used by Get.
func Set(l *Logger) {
	if l == nil {
		l = Discard()
	}
	globalMu.Lock()
	global = l
	globalMu.Unlock()
}

// Get returns the process-wide logger. It never returns nil.
func Get() *Logger {
	globalMu.RLock()
	defer globalMu.RUnlock()
	return global
}
