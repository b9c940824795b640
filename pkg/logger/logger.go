package logger

import (
	"fmt"
	"io"
	"math"
	"strings"

	charm "github.com/charmbracelet/log"

	errUtils "github.com/mlstack/gcpdoctor/errors"
)

// LogLevel is the user-facing name of a log level, as accepted by --logs-level.
type LogLevel string

const (
	LogLevelOff     LogLevel = "Off"
	LogLevelTrace   LogLevel = "Trace"
	LogLevelDebug   LogLevel = "Debug"
	LogLevelInfo    LogLevel = "Info"
	LogLevelWarning LogLevel = "Warning"
)

// Level aliases charmbracelet's level type so callers don't import it directly.
type Level = charm.Level

const (
	// TraceLevel is one step more verbose than debug.
	TraceLevel = charm.DebugLevel - 1
	DebugLevel = charm.DebugLevel
	InfoLevel  = charm.InfoLevel
	WarnLevel  = charm.WarnLevel
	ErrorLevel = charm.ErrorLevel
	// OffLevel silences every message.
	OffLevel = Level(math.MaxInt32)
)

// ParseLogLevel converts a configured level name to a LogLevel. Matching is case-insensitive
// and an empty string means Info.
func ParseLogLevel(logLevel string) (LogLevel, error) {
	if logLevel == "" {
		return LogLevelInfo, nil
	}

	for _, l := range []LogLevel{LogLevelTrace, LogLevelDebug, LogLevelInfo, LogLevelWarning, LogLevelOff} {
		if strings.EqualFold(logLevel, string(l)) {
			return l, nil
		}
	}

	return "", fmt.Errorf("%w '%s'. Supported log levels are Trace, Debug, Info, Warning, Off", errUtils.ErrInvalidLogLevel, logLevel)
}

// ToCharmLevel maps a LogLevel to the charmbracelet level it enables.
func (l LogLevel) ToCharmLevel() Level {
	switch l {
	case LogLevelTrace:
		return TraceLevel
	case LogLevelDebug:
		return DebugLevel
	case LogLevelWarning:
		return WarnLevel
	case LogLevelOff:
		return OffLevel
	default:
		return InfoLevel
	}
}

// Logger wraps a charmbracelet logger and adds a trace level.
type Logger struct {
	*charm.Logger
}

// NewLogger creates a Logger writing to w with gcpdoctor's defaults.
func NewLogger(w io.Writer) *Logger {
	l := charm.NewWithOptions(w, charm.Options{
		ReportTimestamp: false,
		Prefix:          "gcpdoctor",
	})
	l.SetStyles(logStyles())
	return &Logger{Logger: l}
}

// Trace logs a message below debug level.
func (l *Logger) Trace(msg any, keyvals ...any) {
	l.Log(TraceLevel, msg, keyvals...)
}

// GetLevelString returns the current level as a LogLevel name.
func (l *Logger) GetLevelString() string {
	switch lvl := l.GetLevel(); {
	case lvl <= TraceLevel:
		return string(LogLevelTrace)
	case lvl == DebugLevel:
		return string(LogLevelDebug)
	case lvl == InfoLevel:
		return string(LogLevelInfo)
	case lvl == WarnLevel || lvl == ErrorLevel:
		return string(LogLevelWarning)
	default:
		return string(LogLevelOff)
	}
}
