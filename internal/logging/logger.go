// Package logging provides the small leveled logger used by the
// compute packages to report dispatch decisions. Output defaults to
// discard; callers opt in by installing a logger on the engine or
// synthesizer they use.
package logging

import (
	"fmt"
	"io"
	"log"
	"strings"
)

// Level represents a logging severity.
type Level int

const (
	Debug Level = iota
	Info
	Warn
	Error
)

func (l Level) String() string {
	switch l {
	case Debug:
		return "DEBUG"
	case Info:
		return "INFO"
	case Warn:
		return "WARN"
	case Error:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Field represents a structured log field.
type Field struct {
	Key   string
	Value any
}

// F is shorthand for constructing a Field.
func F(key string, value any) Field {
	return Field{Key: key, Value: value}
}

// Logger defines leveled structured logging operations.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
}

// Discard returns a logger that drops everything.
func Discard() Logger {
	return New(Error+1, io.Discard)
}

type textLogger struct {
	level      Level
	underlying *log.Logger
}

// New constructs a text logger writing entries at or above level to out.
func New(level Level, out io.Writer) Logger {
	return &textLogger{
		level:      level,
		underlying: log.New(out, "", log.LstdFlags),
	}
}

func (l *textLogger) Debug(msg string, fields ...Field) { l.log(Debug, msg, fields...) }
func (l *textLogger) Info(msg string, fields ...Field)  { l.log(Info, msg, fields...) }
func (l *textLogger) Warn(msg string, fields ...Field)  { l.log(Warn, msg, fields...) }
func (l *textLogger) Error(msg string, fields ...Field) { l.log(Error, msg, fields...) }

func (l *textLogger) log(level Level, msg string, fields ...Field) {
	if level < l.level {
		return
	}
	if len(fields) == 0 {
		l.underlying.Printf("[%s] %s", level.String(), msg)
		return
	}
	var b strings.Builder
	for i, f := range fields {
		if f.Key == "" {
			continue
		}
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%s=%v", f.Key, f.Value)
	}
	l.underlying.Printf("[%s] %s %s", level.String(), msg, b.String())
}
