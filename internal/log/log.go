// Package log provides the small leveled Logger interface used across
// cmd/sigil, wrapping the standard library's log.Logger in the style of
// the retrieval pack's own LSP logger (no example repo reaches for a
// structured logging library, so this one ambient concern stays on the
// standard library — see DESIGN.md).
package log

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
)

// Level is the logging verbosity threshold.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// ParseLevel resolves a CLI/config level name, defaulting to LevelInfo.
func ParseLevel(name string) Level {
	switch strings.ToLower(name) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// Logger is the leveled logging surface every CLI command depends on.
type Logger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

// StandardLogger implements Logger atop the standard library's log.Logger.
type StandardLogger struct {
	level  Level
	logger *log.Logger
}

// New creates a StandardLogger writing to output (os.Stderr if nil) at
// the given level.
func New(level Level, output io.Writer) *StandardLogger {
	if output == nil {
		output = os.Stderr
	}

	return &StandardLogger{level: level, logger: log.New(output, "[sigil] ", log.Ltime)}
}

func (l *StandardLogger) Debugf(format string, args ...interface{}) {
	if l.level <= LevelDebug {
		l.logger.Output(2, fmt.Sprintf("[DEBUG] "+format, args...))
	}
}

func (l *StandardLogger) Infof(format string, args ...interface{}) {
	if l.level <= LevelInfo {
		l.logger.Output(2, fmt.Sprintf("[INFO] "+format, args...))
	}
}

func (l *StandardLogger) Warnf(format string, args ...interface{}) {
	if l.level <= LevelWarn {
		l.logger.Output(2, fmt.Sprintf("[WARN] "+format, args...))
	}
}

func (l *StandardLogger) Errorf(format string, args ...interface{}) {
	if l.level <= LevelError {
		l.logger.Output(2, fmt.Sprintf("[ERROR] "+format, args...))
	}
}
