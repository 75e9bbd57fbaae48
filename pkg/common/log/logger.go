// Package log provides the leveled logging layer shared by the listkit
// packages and their callers.
package log

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

// Level represents the logging verbosity. Higher levels are more verbose.
type Level int

const (
	// LevelOff disables all logging
	LevelOff Level = iota
	// LevelError level for unexpected situations worth surfacing
	LevelError
	// LevelInfo level for general operational information
	LevelInfo
	// LevelDebug level for copious troubleshooting output
	LevelDebug
)

// String returns the string representation of the log level
func (l Level) String() string {
	switch l {
	case LevelOff:
		return "OFF"
	case LevelError:
		return "ERROR"
	case LevelInfo:
		return "INFO"
	case LevelDebug:
		return "DEBUG"
	default:
		return fmt.Sprintf("LEVEL(%d)", l)
	}
}

// ParseLevel converts a level name into a Level. Matching is
// case-insensitive. An unknown name yields an error.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(s) {
	case "off":
		return LevelOff, nil
	case "error":
		return LevelError, nil
	case "info":
		return LevelInfo, nil
	case "debug":
		return LevelDebug, nil
	default:
		return LevelOff, fmt.Errorf("log: unknown level %q", s)
	}
}

// Logger is the interface for logging at the supported levels.
type Logger interface {
	// Error logs an error-level message
	Error(msg string, args ...interface{})
	// Info logs an info-level message
	Info(msg string, args ...interface{})
	// Debug logs a debug-level message
	Debug(msg string, args ...interface{})
	// WithFields returns a new logger with the given fields added to the context
	WithFields(fields map[string]interface{}) Logger
	// WithField returns a new logger with the given field added to the context
	WithField(key string, value interface{}) Logger
	// GetLevel returns the current logging level
	GetLevel() Level
	// SetLevel sets the logging level
	SetLevel(level Level)
}

// StandardLogger implements Logger with a timestamped line format.
type StandardLogger struct {
	mu     sync.Mutex
	level  Level
	out    io.Writer
	fields map[string]interface{}
}

// LoggerOption configures a StandardLogger.
type LoggerOption func(*StandardLogger)

// WithLevel sets the logging level
func WithLevel(level Level) LoggerOption {
	return func(l *StandardLogger) {
		l.level = level
	}
}

// WithOutput sets the output writer
func WithOutput(out io.Writer) LoggerOption {
	return func(l *StandardLogger) {
		l.out = out
	}
}

// WithInitialFields sets initial fields for the logger
func WithInitialFields(fields map[string]interface{}) LoggerOption {
	return func(l *StandardLogger) {
		for k, v := range fields {
			l.fields[k] = v
		}
	}
}

// NewStandardLogger creates a StandardLogger. Without options it logs at
// LevelInfo to stderr.
func NewStandardLogger(options ...LoggerOption) *StandardLogger {
	logger := &StandardLogger{
		level:  LevelInfo,
		out:    os.Stderr,
		fields: make(map[string]interface{}),
	}
	for _, option := range options {
		option(logger)
	}
	return logger
}

// log writes a message if the logger's level admits it.
func (l *StandardLogger) log(level Level, msg string, args ...interface{}) {
	if level > l.level || level == LevelOff {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	formattedMsg := msg
	if len(args) > 0 {
		formattedMsg = fmt.Sprintf(msg, args...)
	}

	timestamp := time.Now().Format("2006-01-02 15:04:05.000")

	fieldsStr := ""
	for k, v := range l.fields {
		fieldsStr += fmt.Sprintf(" %s=%v", k, v)
	}

	fmt.Fprintf(l.out, "[%s] [%s]%s %s\n", timestamp, level.String(), fieldsStr, formattedMsg)
}

// Error logs an error-level message
func (l *StandardLogger) Error(msg string, args ...interface{}) {
	l.log(LevelError, msg, args...)
}

// Info logs an info-level message
func (l *StandardLogger) Info(msg string, args ...interface{}) {
	l.log(LevelInfo, msg, args...)
}

// Debug logs a debug-level message
func (l *StandardLogger) Debug(msg string, args ...interface{}) {
	l.log(LevelDebug, msg, args...)
}

// WithFields returns a new logger with the given fields added to the context
func (l *StandardLogger) WithFields(fields map[string]interface{}) Logger {
	newLogger := &StandardLogger{
		level:  l.level,
		out:    l.out,
		fields: make(map[string]interface{}, len(l.fields)+len(fields)),
	}
	for k, v := range l.fields {
		newLogger.fields[k] = v
	}
	for k, v := range fields {
		newLogger.fields[k] = v
	}
	return newLogger
}

// WithField returns a new logger with the given field added to the context
func (l *StandardLogger) WithField(key string, value interface{}) Logger {
	return l.WithFields(map[string]interface{}{key: value})
}

// GetLevel returns the current logging level
func (l *StandardLogger) GetLevel() Level {
	return l.level
}

// SetLevel sets the logging level
func (l *StandardLogger) SetLevel(level Level) {
	l.level = level
}

var defaultLogger Logger = NewStandardLogger()

// SetDefaultLogger replaces the package-level logger used by the
// package-level entry points.
func SetDefaultLogger(logger Logger) {
	defaultLogger = logger
}

// SetLevel sets the level of the package-level logger.
func SetLevel(level Level) {
	defaultLogger.SetLevel(level)
}

// SetLevelFromString parses name and applies it to the package-level
// logger. An empty name leaves the level unchanged.
func SetLevelFromString(name string) error {
	if name == "" {
		return nil
	}
	level, err := ParseLevel(name)
	if err != nil {
		return err
	}
	defaultLogger.SetLevel(level)
	return nil
}

// GetLevel returns the level of the package-level logger.
func GetLevel() Level {
	return defaultLogger.GetLevel()
}

// Error logs an error-level message via the package-level logger.
func Error(msg string, args ...interface{}) {
	defaultLogger.Error(msg, args...)
}

// Info logs an info-level message via the package-level logger.
func Info(msg string, args ...interface{}) {
	defaultLogger.Info(msg, args...)
}

// Debug logs a debug-level message via the package-level logger.
func Debug(msg string, args ...interface{}) {
	defaultLogger.Debug(msg, args...)
}
