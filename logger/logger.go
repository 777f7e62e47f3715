// Package logger provides a small leveled logger with a colored component
// prefix, so each subsystem's lines stand out in shared output.
package logger

import (
	"errors"
	"io"
	"log"
)

const colorReset = "\033[0m"

// Logger is the leveled logging interface the rest of the application
// depends on.
type Logger interface {
	Info(msg string)
	Warning(msg string)
	Error(msg string)
}

// ColorLogger writes prefixed, leveled log lines to a writer, coloring
// the component prefix with the given ANSI escape code.
type ColorLogger struct {
	prefix string
	color  string
	out    *log.Logger
}

// New creates a ColorLogger for the named component.
func New(prefix, color string, w io.Writer) (*ColorLogger, error) {
	if prefix == "" {
		return nil, errors.New("logger prefix must not be empty")
	}
	if w == nil {
		return nil, errors.New("logger writer must not be nil")
	}

	return &ColorLogger{
		prefix: prefix,
		color:  color,
		out:    log.New(w, "", log.LstdFlags),
	}, nil
}

// Info logs an informational message.
func (l *ColorLogger) Info(msg string) {
	l.print("INFO", msg)
}

// Warning logs a warning message.
func (l *ColorLogger) Warning(msg string) {
	l.print("WARNING", msg)
}

// Error logs an error message.
func (l *ColorLogger) Error(msg string) {
	l.print("ERROR", msg)
}

func (l *ColorLogger) print(level, msg string) {
	l.out.Printf("%s[%s]%s [%s] %s", l.color, l.prefix, colorReset, level, msg)
}
