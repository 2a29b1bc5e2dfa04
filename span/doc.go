// Package span provides exact calendar-duration arithmetic over two
// incommensurable axes: seconds and months.
//
// A Duration carries two independent signed integer fields. Second-based
// units (seconds, minutes, hours, days, weeks) accumulate into the seconds
// field; month-based units (months, years, decades, centuries, millennia)
// accumulate into the months field. The two fields never mix implicitly -
// crossing axes is an explicit, policy-selected approximation performed by
// Normalize and Denormalize.
//
// Key design constraints:
//   - NO floats anywhere - all magnitudes and conversions are int64
//   - Duration is an immutable value type; every operation returns a new value
//   - The unit and policy tables are built once and never mutated, safe for
//     concurrent readers without locking
//   - Division truncates toward zero (Go native semantics), never floors
//
// Calendar projection (After, Before, Ago, FromNow) consumes the calendar
// package for date validity, month lengths, and day arithmetic; span itself
// never implements calendar rules beyond month-index carry and day clamping.
package span
