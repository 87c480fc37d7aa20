// Package session defines avocado sessions and their line encoding
package session

import (
	"math"
	"time"

	"github.com/ayoisaiah/avocado/internal/timeutil"
)

// Length is the fixed duration of every session.
const Length = 25 * time.Minute

// Remainder is the time remaining in an active session.
type Remainder struct {
	T int // total
	M int // minutes
	S int // seconds
}

// Session is one timed interval of work. A zero Stop means the session is
// still running.
type Session struct {
	Start       time.Time
	Stop        time.Time
	Description string
}

// New returns a running session that started at start.
func New(start time.Time, description string) *Session {
	return &Session{
		Start:       start,
		Description: description,
	}
}

// Done reports whether the session has both a start and a stop time.
func (s *Session) Done() bool {
	return !s.Start.IsZero() && !s.Stop.IsZero()
}

// Elapsed returns the time since the session started.
func (s *Session) Elapsed(now time.Time) time.Duration {
	return now.Sub(s.Start)
}

// Overrun reports whether a running session has gone past its length.
func (s *Session) Overrun(now time.Time) bool {
	return !s.Done() && s.Elapsed(now) > Length
}

// Left returns the time left before the session reaches its length. It is
// negative once the session has overrun.
func (s *Session) Left(now time.Time) time.Duration {
	return Length - s.Elapsed(now)
}

// MinutesRemaining returns the whole minutes left, rounded down.
func (s *Session) MinutesRemaining(now time.Time) int {
	return int(math.Floor(s.Left(now).Seconds() / 60))
}

// Remaining calculates the remaining time for the session to end.
func (s *Session) Remaining(now time.Time) Remainder {
	total := timeutil.Round(s.Left(now).Seconds())

	if total < 0 {
		total = 0
	}

	m, sec := timeutil.SecsToMinsAndSecs(float64(total))

	return Remainder{
		T: total,
		M: m,
		S: sec,
	}
}

// EndTime is the time at which the session ends if left running.
func (s *Session) EndTime() time.Time {
	return s.Start.Add(Length)
}

// Duration returns how long a finished session lasted.
func (s *Session) Duration() time.Duration {
	if !s.Done() {
		return 0
	}

	return s.Stop.Sub(s.Start)
}

// AutoComplete stops the session exactly at the end of its length, as if it
// had run to completion on schedule.
func (s *Session) AutoComplete() {
	s.Stop = s.EndTime()
}

// End stops the session at the given time.
func (s *Session) End(at time.Time) error {
	prev := s.Stop
	s.Stop = at

	if err := s.Validate(); err != nil {
		s.Stop = prev
		return err
	}

	return nil
}

// Validate checks that the session is internally consistent.
func (s *Session) Validate() error {
	if s.Start.IsZero() {
		return ErrMissingStart
	}

	if !s.Stop.IsZero() && s.Stop.Before(s.Start) {
		return ErrNegativeDuration.Fmt(
			s.Stop.Format(Layout),
			s.Start.Format(Layout),
		)
	}

	return nil
}
