package logger

import (
	"io"
	"os"
	"sync/atomic"
)

// defaultLogger is the process-wide Logger stored atomically.
var defaultLogger atomic.Value

func init() {
	defaultLogger.Store(NewLogger(os.Stderr))
}

// Default returns the process-wide Logger.
func Default() *Logger {
	return defaultLogger.Load().(*Logger)
}

// SetDefault replaces the process-wide Logger. Nil is ignored.
func SetDefault(logger *Logger) {
	if logger != nil {
		defaultLogger.Store(logger)
	}
}

// New creates a Logger writing to stderr.
func New() *Logger {
	return NewLogger(os.Stderr)
}

// Configure sets the level and output of the default logger.
func Configure(level LogLevel, w io.Writer) {
	l := Default()
	if w != nil {
		l.SetOutput(w)
	}
	l.SetLevel(level.ToCharmLevel())
}

func Trace(msg any, keyvals ...any) {
	Default().Trace(msg, keyvals...)
}

func Debug(msg any, keyvals ...any) {
	Default().Debug(msg, keyvals...)
}

func Info(msg any, keyvals ...any) {
	Default().Info(msg, keyvals...)
}

func Warn(msg any, keyvals ...any) {
	Default().Warn(msg, keyvals...)
}

func Error(msg any, keyvals ...any) {
	Default().Error(msg, keyvals...)
}

// GetLevel returns the level of the default logger.
func GetLevel() Level {
	return Default().GetLevel()
}
