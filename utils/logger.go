package utils

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	slogmulti "github.com/samber/slog-multi"
)

// Logger pairs verbosity-gated progress chatter with a structured audit
// log. Chatter goes to stdout the way the rest of the toolkit prints;
// audit records are fanned out to stderr and, when a run log file is
// given, to JSON lines for later inspection.
type Logger struct {
	V  Verbosity
	sl *slog.Logger
}

// NewLogger builds a logger at the given verbosity. logFile may be nil.
func NewLogger(v Verbosity, logFile io.Writer) *Logger {
	level := slog.LevelInfo
	if v == Silent {
		level = slog.LevelError
	}

	handlers := []slog.Handler{
		slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}),
	}
	if logFile != nil {
		handlers = append(handlers, slog.NewJSONHandler(logFile, nil))
	}
	return &Logger{V: v, sl: slog.New(slogmulti.Fanout(handlers...))}
}

// Startf and Endf print start/end markers at Minimal and above.
func (l *Logger) Startf(format string, args ...any) {
	if l.V >= Minimal {
		fmt.Printf(format, args...)
	}
}

func (l *Logger) Endf(format string, args ...any) {
	if l.V >= Minimal {
		fmt.Printf(format, args...)
	}
}

// Progressf prints at Progress and above.
func (l *Logger) Progressf(format string, args ...any) {
	if l.V >= Progress {
		fmt.Printf(format, args...)
	}
}

// Summaryf prints result summaries at Summary and above.
func (l *Logger) Summaryf(format string, args ...any) {
	if l.V >= Summary {
		fmt.Printf(format, args...)
	}
}

// Detailf prints at Full only.
func (l *Logger) Detailf(format string, args ...any) {
	if l.V >= Full {
		fmt.Printf(format, args...)
	}
}

// Warnf prints and records a warning unless silent.
func (l *Logger) Warnf(format string, args ...any) {
	if l.V > Silent {
		fmt.Printf("Warning: "+format, args...)
	}
	l.sl.Warn(fmt.Sprintf(format, args...))
}

// Audit records a structured event regardless of verbosity.
func (l *Logger) Audit(msg string, args ...any) {
	l.sl.Info(msg, args...)
}
