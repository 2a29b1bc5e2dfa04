// Package calendar is the seam between span's pure duration arithmetic and
// the host calendar facility. It wraps the standard library's time package
// behind small, explicit primitives: date validity, month lengths, instant
// construction, and calendar-day arithmetic.
//
// Nothing here performs duration math; span consumes these primitives when
// projecting a Duration onto an instant.
package calendar

import "time"

// LastDay returns the last valid day of the given month: 28-31 depending on
// month and leap year.
func LastDay(year int, month time.Month) int {
	// Day 0 of the next month normalizes to the final day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// ValidDate reports whether (year, month, day) names an existing calendar
// date.
func ValidDate(year int, month time.Month, day int) bool {
	return day >= 1 && day <= LastDay(year, month)
}

// Make constructs an instant from calendar components in the given location.
// Components are expected to be pre-validated; obviously-invalid values
// normalize the way time.Date does.
func Make(year int, month time.Month, day, hour, min, sec int, loc *time.Location) time.Time {
	return time.Date(year, month, day, hour, min, sec, 0, loc)
}

// AddDays advances t by a whole number of calendar days, crossing month and
// year boundaries via ordinary day arithmetic. Negative counts move
// backward.
func AddDays(t time.Time, days int) time.Time {
	return t.AddDate(0, 0, days)
}
