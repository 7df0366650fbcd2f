package testutil

import "time"

// FixedClock is a wall clock stopped at one instant.
//
// It satisfies demo.Clock, so reports built with it are byte-identical
// across runs and can be compared against golden files.
//
// Thread-safety: FixedClock is immutable and safe for concurrent use.
type FixedClock struct {
	now time.Time
}

// NewFixedClock creates a clock stopped at t.
func NewFixedClock(t time.Time) *FixedClock {
	return &FixedClock{now: t}
}

// GoldenTime is the instant used by golden tests: 2024-03-15 09:30:00 UTC.
func GoldenTime() time.Time {
	return time.Date(2024, time.March, 15, 9, 30, 0, 0, time.UTC)
}

// Now returns the stopped time.
func (c *FixedClock) Now() time.Time {
	return c.now
}
