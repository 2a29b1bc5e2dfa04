package calendar

import "time"

// Clock supplies the current instant. "Now" only enters duration arithmetic
// at this boundary; nothing in span reads the wall clock directly, which
// keeps projection deterministic under test.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the operating system clock.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time {
	return time.Now()
}

// FixedClock always reports the same instant. Used in tests and anywhere a
// computation must be pinned to a known reference point.
type FixedClock struct {
	T time.Time
}

// Now returns the fixed instant.
func (c FixedClock) Now() time.Time {
	return c.T
}
