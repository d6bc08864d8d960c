// Package log wraps zerolog behind the small verbose logger the CLI and
// the engine share.
package log

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

// Logger writes diagnostic events when Enabled is true. Warnings are
// always written. A nil *Logger discards everything.
type Logger struct {
	Enabled bool
	zl      zerolog.Logger
}

// New returns a Logger that writes JSON events to w.
func New(w io.Writer, verbose bool) *Logger {
	return newLogger(zerolog.New(w), verbose)
}

// NewConsole returns a Logger that writes human-readable lines to w.
// Used by the CLI on stderr. Colors are used only when w is a terminal.
func NewConsole(w io.Writer, verbose bool) *Logger {
	out := zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339, NoColor: !IsTerminal(w)}
	return newLogger(zerolog.New(out).With().Timestamp().Logger(), verbose)
}

// IsTerminal reports whether w is a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Nop returns a Logger that discards all events.
func Nop() *Logger {
	return &Logger{zl: zerolog.Nop()}
}

func newLogger(zl zerolog.Logger, verbose bool) *Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return &Logger{Enabled: verbose, zl: zl.Level(level)}
}

// Printf writes a formatted debug message. It is a no-op when Enabled
// is false.
func (l *Logger) Printf(format string, args ...any) {
	if l == nil || !l.Enabled {
		return
	}
	l.zl.Debug().Msg(fmt.Sprintf(format, args...))
}

// Debug starts a debug event. The returned event is nil (and every
// method on it a no-op) unless the logger is enabled.
func (l *Logger) Debug() *zerolog.Event {
	if l == nil {
		return nil
	}
	return l.zl.Debug()
}

// Warn starts a warning event.
func (l *Logger) Warn() *zerolog.Event {
	if l == nil {
		return nil
	}
	return l.zl.Warn()
}
