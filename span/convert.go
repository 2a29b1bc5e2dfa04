package span

// In reduces d to a whole count of the given unit under the standard policy:
// the duration is normalized (seconds-axis unit) or denormalized
// (months-axis unit) first, then divided by the unit's magnitude.
//
// Division truncates toward zero, matching Go's native integer division:
// negative durations truncate toward zero, never downward, so
// In(Neg(d), u) == -In(d, u) whenever the relevant axis divides evenly.
func (d Duration) In(unit string) (int64, error) {
	return d.InPolicy(unit, PolicyStandard)
}

// InPolicy is In with an explicit normalization policy for the axis crossing.
func (d Duration) InPolicy(unit string, p Policy) (int64, error) {
	u, err := Resolve(unit)
	if err != nil {
		return 0, err
	}
	switch u.Axis {
	case AxisSeconds:
		return Normalize(d, p).seconds / u.Magnitude, nil
	default:
		return Denormalize(d, p).months / u.Magnitude, nil
	}
}

// Split greedily decomposes d into the requested units, largest-first.
//
// The requested units are always sorted descending by canonical magnitude
// before decomposition, regardless of the caller's order: requesting
// [days, months] and [months, days] yields the same split. For each unit in
// that order the whole part of the running remainder is extracted via In,
// then subtracted before moving to the next smaller unit.
//
// Output keys preserve the caller's spellings (aliases are not canonicalized)
// while the values reflect canonical decomposition. Each call is a fresh,
// independent computation terminating after exactly len(units) steps.
func (d Duration) Split(units []string) (map[string]int64, error) {
	ordered, err := OrderDesc(units)
	if err != nil {
		return nil, err
	}
	out := make(map[string]int64, len(ordered))
	rem := d
	for _, name := range ordered {
		part, err := rem.In(name)
		if err != nil {
			return nil, err
		}
		out[name] = part
		consumed, err := FromUnit(part, name)
		if err != nil {
			return nil, err
		}
		rem = rem.Sub(consumed)
	}
	return out, nil
}

// rawPart extracts the whole count of a unit directly from its own axis
// field, without crossing axes first. This is what lets whole-month and
// whole-year components be peeled off before any lossy conversion.
// Division truncates toward zero.
func (d Duration) rawPart(u Unit) int64 {
	switch u.Axis {
	case AxisSeconds:
		return d.seconds / u.Magnitude
	default:
		return d.months / u.Magnitude
	}
}
