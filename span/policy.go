package span

// Policy is a named set of exact seconds-per-month and seconds-per-year
// approximations used when crossing the seconds/months axis boundary.
type Policy struct {
	// Name identifies the policy ("standard", "minimum", "maximum").
	Name string

	// SecondsPerMonth is the exact seconds assigned to one month.
	SecondsPerMonth int64

	// SecondsPerYear is the exact seconds assigned to one year.
	SecondsPerYear int64
}

// Built-in normalization policies. Each is expressed as exact
// seconds-per-unit; days are always 86400 seconds.
var (
	// PolicyStandard uses 30-day months and 365-day years. Default.
	PolicyStandard = Policy{Name: "standard", SecondsPerMonth: 30 * 86400, SecondsPerYear: 365 * 86400}

	// PolicyMinimum uses 28-day months and 365-day years.
	PolicyMinimum = Policy{Name: "minimum", SecondsPerMonth: 28 * 86400, SecondsPerYear: 365 * 86400}

	// PolicyMaximum uses 31-day months and 366-day years.
	PolicyMaximum = Policy{Name: "maximum", SecondsPerMonth: 31 * 86400, SecondsPerYear: 366 * 86400}
)

// policyTable maps policy names to their definitions. Read-only after init.
var policyTable = map[string]Policy{
	PolicyStandard.Name: PolicyStandard,
	PolicyMinimum.Name:  PolicyMinimum,
	PolicyMaximum.Name:  PolicyMaximum,
}

// PolicyNames returns the recognized policy names in a fixed order.
func PolicyNames() []string {
	return []string{PolicyStandard.Name, PolicyMinimum.Name, PolicyMaximum.Name}
}

// PolicyByName looks up a policy by name. Returns an UnknownPolicy UnitError
// if the name is not recognized.
func PolicyByName(name string) (Policy, error) {
	p, ok := policyTable[name]
	if !ok {
		return Policy{}, NewUnknownPolicyError(name)
	}
	return p, nil
}

// policyUnit pairs a months-axis unit with its seconds value under a policy.
type policyUnit struct {
	unit       Unit
	secondsPer int64
}

// units returns the policy's conversion steps largest-first. Years must be
// peeled off before months: whole years use the year approximation, only the
// remaining months use the month approximation.
func (p Policy) units() [2]policyUnit {
	years, _ := Resolve("years")
	months, _ := Resolve("months")
	return [2]policyUnit{
		{unit: years, secondsPer: p.SecondsPerYear},
		{unit: months, secondsPer: p.SecondsPerMonth},
	}
}

// Normalize approximates d's months-axis magnitude as seconds under the
// policy. The result carries all magnitude in the seconds field and has
// months == 0.
//
// Whole policy units are extracted from the months field with a single
// truncating division per step; no fractional value survives between steps,
// so a fractional day introduced by one approximation can never shift a
// whole-month boundary in the next.
func Normalize(d Duration, p Policy) Duration {
	rem := Duration{months: d.months}
	var seconds int64
	for _, pu := range p.units() {
		count := rem.rawPart(pu.unit)
		seconds += count * pu.secondsPer
		rem = rem.Sub(Duration{months: count * pu.unit.Magnitude})
	}
	return Duration{seconds: seconds + d.seconds}
}

// Denormalize approximates d's seconds-axis magnitude as months under the
// policy. Whole policy units present in the seconds field move onto the
// months field; seconds not evenly divisible into any policy unit remain as
// a seconds remainder.
func Denormalize(d Duration, p Policy) Duration {
	rem := d.seconds
	months := d.months
	for _, pu := range p.units() {
		count := rem / pu.secondsPer
		months += count * pu.unit.Magnitude
		rem -= count * pu.secondsPer
	}
	return Duration{seconds: rem, months: months}
}
