// Package wallclock provides a bounded, date-free time-of-day value.
//
// A WallClock covers exactly [00:00:00, 24:00:00) and carries no date or
// zone. It is the boundary type for reading a span.Duration as a clock
// time: only month-free durations inside a single day convert.
package wallclock

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/roach88/calspan/span"
)

// secondsPerDay bounds the representable range.
const secondsPerDay = 24 * 60 * 60

// WallClock is an immutable time of day.
type WallClock struct {
	hour   int
	minute int
	second int
}

// OutOfBoundsError reports a duration or component set that cannot be
// represented as a time of day.
type OutOfBoundsError struct {
	// Message describes which bound was violated.
	Message string

	// Months is the offending months field, if the duration carried one.
	Months int64

	// Seconds is the offending seconds value.
	Seconds int64
}

// Error implements the error interface.
func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("TIME_OUT_OF_BOUNDS: %s (months=%d, seconds=%d)", e.Message, e.Months, e.Seconds)
}

// IsOutOfBounds returns true if the error is an out-of-bounds error.
// Uses errors.As to handle wrapped errors.
func IsOutOfBounds(err error) bool {
	var oe *OutOfBoundsError
	return errors.As(err, &oe)
}

// New builds a WallClock from hour, minute, and second components.
func New(hour, minute, second int) (WallClock, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 || second < 0 || second > 59 {
		return WallClock{}, &OutOfBoundsError{
			Message: "clock components out of range",
			Seconds: int64(hour)*3600 + int64(minute)*60 + int64(second),
		}
	}
	return WallClock{hour: hour, minute: minute, second: second}, nil
}

// FromSpan converts a duration to a time of day. Fails with an
// OutOfBoundsError if the duration has a nonzero months field (a wall clock
// cannot represent calendar months) or if its seconds fall outside
// [0, 86400).
func FromSpan(d span.Duration) (WallClock, error) {
	if d.Months() != 0 {
		return WallClock{}, &OutOfBoundsError{
			Message: "wall clock cannot represent calendar months",
			Months:  d.Months(),
			Seconds: d.Seconds(),
		}
	}
	secs := d.Seconds()
	if secs < 0 || secs >= secondsPerDay {
		return WallClock{}, &OutOfBoundsError{
			Message: "seconds outside a single day",
			Seconds: secs,
		}
	}
	return WallClock{
		hour:   int(secs / 3600),
		minute: int(secs % 3600 / 60),
		second: int(secs % 60),
	}, nil
}

// Parse reads "H:MM" or "H:MM:SS" in 24-hour form.
func Parse(s string) (WallClock, error) {
	fields := strings.Split(strings.TrimSpace(s), ":")
	if len(fields) != 2 && len(fields) != 3 {
		return WallClock{}, fmt.Errorf("wall clock %q: expected H:MM or H:MM:SS", s)
	}
	parts := make([]int, 3)
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return WallClock{}, fmt.Errorf("wall clock %q: bad component %q", s, f)
		}
		parts[i] = n
	}
	return New(parts[0], parts[1], parts[2])
}

// Hour returns the hour component, 0-23.
func (w WallClock) Hour() int { return w.hour }

// Minute returns the minute component, 0-59.
func (w WallClock) Minute() int { return w.minute }

// Second returns the second component, 0-59.
func (w WallClock) Second() int { return w.second }

// Span returns the duration since midnight.
func (w WallClock) Span() span.Duration {
	return span.Must(span.FromUnit(int64(w.hour)*3600+int64(w.minute)*60+int64(w.second), "seconds"))
}

// At projects the wall time onto the date of t, in t's location.
func (w WallClock) At(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), w.hour, w.minute, w.second, 0, t.Location())
}

// String renders "HH:MM:SS".
func (w WallClock) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", w.hour, w.minute, w.second)
}
