// Package log provides leveled, categorized file logging for kartoteka.
// The logger is an explicit dependency handed to the shell layer at process
// start; there is no package-level default.
package log

import (
	"fmt"
	"io"
	"os"
	"time"
)

// Level represents log severity.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Category groups related log messages.
type Category string

const (
	CatShell     Category = "shell"     // command loop activity
	CatStore     Category = "store"     // save/load operations
	CatBirthdays Category = "birthdays" // birthday book operations
	CatCars      Category = "cars"      // car registry operations
	CatLibrary   Category = "library"   // library catalog operations
	CatConfig    Category = "config"    // configuration loading/saving
)

// Logger writes structured entries to a single destination.
type Logger struct {
	file     *os.File
	writer   io.Writer
	enabled  bool
	minLevel Level
}

// New opens path for appending and returns a logger plus a cleanup function
// that closes the log file.
func New(path string) (*Logger, func(), error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G304: path is the configured log file
	if err != nil {
		return nil, nil, err
	}
	l := &Logger{
		file:     f,
		writer:   f,
		enabled:  true,
		minLevel: LevelDebug,
	}
	return l, func() { _ = f.Close() }, nil
}

// NewWriter returns a logger over an arbitrary writer. Used by tests.
func NewWriter(w io.Writer) *Logger {
	return &Logger{
		writer:   w,
		enabled:  true,
		minLevel: LevelDebug,
	}
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{}
}

// SetMinLevel sets the minimum log level.
func (l *Logger) SetMinLevel(level Level) {
	l.minLevel = level
}

// Debug logs at debug level.
func (l *Logger) Debug(cat Category, msg string, fields ...any) {
	l.log(LevelDebug, cat, msg, fields...)
}

// Info logs at info level.
func (l *Logger) Info(cat Category, msg string, fields ...any) {
	l.log(LevelInfo, cat, msg, fields...)
}

// Warn logs at warning level.
func (l *Logger) Warn(cat Category, msg string, fields ...any) {
	l.log(LevelWarn, cat, msg, fields...)
}

// Error logs at error level.
func (l *Logger) Error(cat Category, msg string, fields ...any) {
	l.log(LevelError, cat, msg, fields...)
}

// ErrorErr logs an error with the error value.
func (l *Logger) ErrorErr(cat Category, msg string, err error, fields ...any) {
	if err != nil {
		fields = append(fields, "error", err.Error())
	} else {
		fields = append(fields, "error", "<nil>")
	}
	l.log(LevelError, cat, msg, fields...)
}

func (l *Logger) log(level Level, cat Category, msg string, fields ...any) {
	if l == nil || !l.enabled || l.writer == nil {
		return
	}
	if level < l.minLevel {
		return
	}

	// Format: 2025-12-06T10:45:00 [ERROR] [store] message key=value key2=value2
	timestamp := time.Now().Format("2006-01-02T15:04:05")
	entry := fmt.Sprintf("%s [%s] [%s] %s", timestamp, level, cat, msg)

	for i := 0; i+1 < len(fields); i += 2 {
		entry += fmt.Sprintf(" %v=%v", fields[i], fields[i+1])
	}
	// Handle odd field count - append orphan key with no value
	if len(fields)%2 != 0 {
		entry += fmt.Sprintf(" %v=<missing>", fields[len(fields)-1])
	}
	entry += "\n"

	_, _ = l.writer.Write([]byte(entry))
}
