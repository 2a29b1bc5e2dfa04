package span

// Duration is a dual-axis exact elapsed amount of time. The zero value is
// the zero duration.
//
// The seconds field holds the exact contribution of second-based units; the
// months field holds the exact contribution of month-based units. The two
// are independently exact and are only ever combined through the explicit
// Normalize/Denormalize operations.
//
// There is no canonical reduced form: Duration values are equal iff both
// fields match exactly. Overflow beyond int64 is a caller concern.
type Duration struct {
	seconds int64
	months  int64
}

// New builds a Duration from a mapping of unit name to count. Each entry is
// resolved against the unit table, multiplied by its magnitude, and
// accumulated into the matching axis field. Returns an UnknownUnitError if
// any name does not resolve.
func New(units map[string]int64) (Duration, error) {
	var d Duration
	for name, count := range units {
		u, err := Resolve(name)
		if err != nil {
			return Duration{}, err
		}
		switch u.Axis {
		case AxisSeconds:
			d.seconds += count * u.Magnitude
		case AxisMonths:
			d.months += count * u.Magnitude
		}
	}
	return d, nil
}

// FromUnit builds a single-unit Duration: FromUnit(5, "minutes") is five
// minutes. Compound durations are built by adding single-unit values.
func FromUnit(count int64, unit string) (Duration, error) {
	return New(map[string]int64{unit: count})
}

// Must unwraps a (Duration, error) pair, panicking on error. Intended for
// literals with known-good unit names.
func Must(d Duration, err error) Duration {
	if err != nil {
		panic(err)
	}
	return d
}

// Add returns the field-wise sum of d and o.
func (d Duration) Add(o Duration) Duration {
	return Duration{seconds: d.seconds + o.seconds, months: d.months + o.months}
}

// Sub returns the field-wise difference of d and o.
func (d Duration) Sub(o Duration) Duration {
	return Duration{seconds: d.seconds - o.seconds, months: d.months - o.months}
}

// Neg returns d with both fields negated.
func (d Duration) Neg() Duration {
	return Duration{seconds: -d.seconds, months: -d.months}
}

// Equal reports field-wise exact equality. Equality is total: values on
// different axes are simply not equal, never an error.
func (d Duration) Equal(o Duration) bool {
	return d.seconds == o.seconds && d.months == o.months
}

// IsZero reports whether both fields are zero.
func (d Duration) IsZero() bool {
	return d.seconds == 0 && d.months == 0
}

// Get returns the raw field for the given axis. Any other axis name fails
// with an InvalidAxisError.
func (d Duration) Get(axis Axis) (int64, error) {
	switch axis {
	case AxisSeconds:
		return d.seconds, nil
	case AxisMonths:
		return d.months, nil
	default:
		return 0, NewInvalidAxisError(string(axis))
	}
}

// Seconds returns the raw seconds field.
func (d Duration) Seconds() int64 { return d.seconds }

// Months returns the raw months field.
func (d Duration) Months() int64 { return d.months }

// AddAssign adds o into d in place. Thin convenience wrapper over Add;
// the receiver must be owned by a single logical caller.
func (d *Duration) AddAssign(o Duration) {
	*d = d.Add(o)
}

// NegAssign negates d in place. Thin convenience wrapper over Neg.
func (d *Duration) NegAssign() {
	*d = d.Neg()
}
