package span

import (
	"time"

	"github.com/roach88/calspan/calendar"
)

// projectionUnits is the fixed decomposition used for calendar projection.
// The seconds bucket absorbs the minutes/hours/weeks remainder.
var projectionUnits = []string{"years", "months", "days", "seconds"}

// After returns the instant offset forward from t by d.
//
// Projection is two-phase on purpose. Month and year offsets are calendar
// arithmetic: the month index carries into the year and the day clamps to
// the target month's length ("Jan 31 + 1 month" lands on the last day of
// February). Day and second offsets are linear time arithmetic, free to
// cross midnight and month ends. Collapsing both into one linear-seconds
// computation would break the month semantics.
func After(d Duration, t time.Time) time.Time {
	parts, err := d.Split(projectionUnits)
	if err != nil {
		// projectionUnits are fixed table entries; Split cannot fail on them.
		panic(err)
	}

	// Phase 1: month/year carry with day clamping.
	index := int64(t.Month()) + parts["months"] + 12*parts["years"]
	carry := floorDiv(index-1, 12)
	month := time.Month(floorMod(index-1, 12) + 1)
	year := t.Year() + int(carry)

	day := t.Day()
	if !calendar.ValidDate(year, month, day) {
		day = calendar.LastDay(year, month)
	}

	// Phase 2: linear day then second offsets.
	out := calendar.Make(year, month, day, t.Hour(), t.Minute(), t.Second(), t.Location())
	out = calendar.AddDays(out, int(parts["days"]))
	return out.Add(time.Duration(parts["seconds"]) * time.Second)
}

// Before returns the instant offset backward from t by d.
func Before(d Duration, t time.Time) time.Time {
	return After(d.Neg(), t)
}

// FromNow projects d forward from the clock's current instant.
func FromNow(d Duration, c calendar.Clock) time.Time {
	return After(d, c.Now())
}

// Ago projects d backward from the clock's current instant.
func Ago(d Duration, c calendar.Clock) time.Time {
	return Before(d, c.Now())
}

// floorDiv divides rounding toward negative infinity. Month-index carry
// needs floor semantics, unlike the truncating division used everywhere
// else in this package.
func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// floorMod is the non-negative remainder matching floorDiv.
func floorMod(a, b int64) int64 {
	return a - floorDiv(a, b)*b
}
