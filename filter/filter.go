// Package filter decides which records take part in a report.
package filter

import (
	"time"

	"github.com/xtfkit/xtf/record"
)

// Spec holds the filter criteria for one run. It is built once by the
// CLI layer and never mutated afterwards.
//
// Both date bounds are strict: a record whose timestamp equals the
// bound is excluded. This asymmetry with the usual inclusive-range
// convention is deliberate, observable behavior and must not be
// "fixed".
type Spec struct {
	User   string
	After  *time.Time
	Before *time.Time

	currencies map[string]struct{}
}

// Option configures a Spec.
type Option func(*Spec)

// WithAfter excludes records at or before the given instant.
func WithAfter(t time.Time) Option {
	return func(s *Spec) {
		s.After = &t
	}
}

// WithBefore excludes records at or after the given instant.
func WithBefore(t time.Time) Option {
	return func(s *Spec) {
		s.Before = &t
	}
}

// WithCurrencies restricts the report to the given currency codes.
// Passing no codes leaves the filter open to every currency.
func WithCurrencies(codes ...string) Option {
	return func(s *Spec) {
		if len(codes) == 0 {
			return
		}
		if s.currencies == nil {
			s.currencies = make(map[string]struct{}, len(codes))
		}
		for _, code := range codes {
			s.currencies[code] = struct{}{}
		}
	}
}

// New builds a Spec for the given user.
func New(user string, opts ...Option) *Spec {
	s := &Spec{User: user}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Currencies returns the configured currency codes, or nil when the
// filter is open.
func (s *Spec) Currencies() []string {
	if len(s.currencies) == 0 {
		return nil
	}
	codes := make([]string, 0, len(s.currencies))
	for code := range s.currencies {
		codes = append(codes, code)
	}
	return codes
}

// Match reports whether the record passes every active criterion.
//
// The user check is normally satisfied already by the assembler's raw
// prefix prefilter, but Match re-applies it so the outcome does not
// depend on where each criterion runs.
func (s *Spec) Match(rec record.Record) bool {
	if rec.User != s.User {
		return false
	}
	if len(s.currencies) > 0 {
		if _, ok := s.currencies[rec.Currency]; !ok {
			return false
		}
	}
	if s.After != nil && !rec.Timestamp.After(*s.After) {
		return false
	}
	if s.Before != nil && !rec.Timestamp.Before(*s.Before) {
		return false
	}
	return true
}
