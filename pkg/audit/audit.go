// Package audit writes the transaction trail line emitted before every
// mutating ledger entry point.
package audit

import (
	"fmt"
	"io"
	"log/slog"
	"time"
)

const TimestampLayout = "02/01/2006 15:04:05"

type Logger struct {
	out    io.Writer
	now    func() time.Time
	logger *slog.Logger
}

type Option func(*Logger)

func WithClock(now func() time.Time) Option {
	return func(l *Logger) { l.now = now }
}

func WithLogger(logger *slog.Logger) Option {
	return func(l *Logger) { l.logger = logger }
}

// New writes the trail to out; a nil out discards it.
func New(out io.Writer, opts ...Option) *Logger {
	if out == nil {
		out = io.Discard
	}
	l := &Logger{
		out:    out,
		now:    time.Now,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.logger == nil {
		l.logger = slog.Default()
	}
	return l
}

// Log writes "[LOG] <timestamp> - Transação: <operation>". A nil Logger is a no-op.
func (l *Logger) Log(operation string) {
	if l == nil {
		return
	}
	ts := l.now()
	if _, err := fmt.Fprintf(l.out, "[LOG] %s - Transação: %s\n", ts.Format(TimestampLayout), operation); err != nil {
		l.logger.Error("Failed to write audit line",
			slog.String("operation", operation),
			slog.String("error", err.Error()))
		return
	}
	l.logger.Debug("Transaction started",
		slog.String("operation", operation),
		slog.Time("at", ts))
}

// Wrap logs the operation and then runs fn.
func Wrap[T any](l *Logger, operation string, fn func() T) T {
	l.Log(operation)
	return fn()
}
