package span

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse builds a Duration from a human expression of count/unit pairs, the
// inverse of the long rendering syntax: "1 year, 2 months, 3 days" or
// "90 seconds". Commas are optional, unit names may be singular, plural, or
// any case. Counts may be negative.
//
// Returns an UnknownUnitError (wrapped) for unrecognized unit words and a
// plain error for malformed expressions.
func Parse(expr string) (Duration, error) {
	fields := strings.Fields(strings.ReplaceAll(expr, ",", " "))
	if len(fields) == 0 {
		return Duration{}, fmt.Errorf("empty duration expression")
	}
	if len(fields)%2 != 0 {
		return Duration{}, fmt.Errorf("duration expression %q: expected count/unit pairs", expr)
	}

	var d Duration
	for i := 0; i < len(fields); i += 2 {
		count, err := strconv.ParseInt(fields[i], 10, 64)
		if err != nil {
			return Duration{}, fmt.Errorf("duration expression %q: bad count %q", expr, fields[i])
		}
		part, err := FromUnit(count, fields[i+1])
		if err != nil {
			return Duration{}, fmt.Errorf("duration expression %q: %w", expr, err)
		}
		d = d.Add(part)
	}
	return d, nil
}
