package lox

// log.go is a minimal leveled logger for internal trace output (currently
// only call entry, logged at Debug by the interpreter), kept separate
// from program diagnostics (scan/parse/runtime errors), which always print
// regardless of level. The level is read once from an environment variable
// at process start, generalizing the teacher's boolean debug toggle
// (debug_spans.go's `DebuggingMode = os.Getenv("MSGDEBUG") != ""`) to a
// five-level enum ordered the way the original implementation's
// util/logger.rs orders it: lower variants are more severe, and a message
// logs if its level is at or above the configured minimum severity.

import (
	"fmt"
	"io"
	"os"
)

type LogLevel int

const (
	LevelFatal LogLevel = iota
	LevelError
	LevelWarn
	LevelInfo
	LevelDebug
)

var levelNames = map[LogLevel]string{
	LevelFatal: "FATAL",
	LevelError: "ERROR",
	LevelWarn:  "WARN",
	LevelInfo:  "INFO",
	LevelDebug: "DEBUG",
}

func ParseLogLevel(s string) (LogLevel, bool) {
	switch s {
	case "Fatal", "FATAL", "fatal":
		return LevelFatal, true
	case "Error", "ERROR", "error":
		return LevelError, true
	case "Warn", "WARN", "warn":
		return LevelWarn, true
	case "Info", "INFO", "info":
		return LevelInfo, true
	case "Debug", "DEBUG", "debug":
		return LevelDebug, true
	default:
		return LevelInfo, false
	}
}

// Logger writes leveled trace lines to an output stream, dropping anything
// more verbose than its configured level.
type Logger struct {
	level LogLevel
	out   io.Writer
}

// NewLogger reads LOX_LOG from the environment (default Info) and returns a
// Logger that writes to w.
func NewLogger(w io.Writer) *Logger {
	level := LevelInfo
	if s := os.Getenv("LOX_LOG"); s != "" {
		if lv, ok := ParseLogLevel(s); ok {
			level = lv
		}
	}
	return &Logger{level: level, out: w}
}

func (l *Logger) log(level LogLevel, format string, args ...interface{}) {
	if l == nil || level > l.level {
		return
	}
	fmt.Fprintf(l.out, "[%s] %s\n", levelNames[level], fmt.Sprintf(format, args...))
}

func (l *Logger) Fatalf(format string, args ...interface{}) { l.log(LevelFatal, format, args...) }
func (l *Logger) Errorf(format string, args ...interface{}) { l.log(LevelError, format, args...) }
func (l *Logger) Warnf(format string, args ...interface{})  { l.log(LevelWarn, format, args...) }
func (l *Logger) Infof(format string, args ...interface{})  { l.log(LevelInfo, format, args...) }
func (l *Logger) Debugf(format string, args ...interface{}) { l.log(LevelDebug, format, args...) }
