package domain

import (
	"time"

	"banking_ledger/pkg/audit"
)

type settings struct {
	audit *audit.Logger
	now   func() time.Time
}

type Option func(*settings)

// WithAudit enables the transaction trail on the audited entry points.
func WithAudit(l *audit.Logger) Option {
	return func(s *settings) { s.audit = l }
}

func WithClock(now func() time.Time) Option {
	return func(s *settings) { s.now = now }
}

func newSettings(opts []Option) settings {
	s := settings{now: time.Now}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}
