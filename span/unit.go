package span

import "strings"

// Axis is one of the two incommensurable magnitude dimensions a unit
// contributes to.
type Axis string

const (
	// AxisSeconds covers seconds, minutes, hours, days, and weeks.
	AxisSeconds Axis = "seconds"

	// AxisMonths covers months, years, decades, centuries, and millennia.
	AxisMonths Axis = "months"
)

// Unit is an entry in the unit table: a canonical name, the axis it
// accumulates into, and its exact integer magnitude in that axis' base unit.
// Magnitudes are never floating approximations.
type Unit struct {
	Name      string
	Axis      Axis
	Magnitude int64
}

// unitTable maps every canonical (plural) unit name to its definition.
// Built once at init, read-only afterwards - safe for concurrent readers.
var unitTable = map[string]Unit{
	"seconds":   {Name: "seconds", Axis: AxisSeconds, Magnitude: 1},
	"minutes":   {Name: "minutes", Axis: AxisSeconds, Magnitude: 60},
	"hours":     {Name: "hours", Axis: AxisSeconds, Magnitude: 3600},
	"days":      {Name: "days", Axis: AxisSeconds, Magnitude: 86400},
	"weeks":     {Name: "weeks", Axis: AxisSeconds, Magnitude: 604800},
	"months":    {Name: "months", Axis: AxisMonths, Magnitude: 1},
	"years":     {Name: "years", Axis: AxisMonths, Magnitude: 12},
	"decades":   {Name: "decades", Axis: AxisMonths, Magnitude: 120},
	"centuries": {Name: "centuries", Axis: AxisMonths, Magnitude: 1200},
	"millennia": {Name: "millennia", Axis: AxisMonths, Magnitude: 12000},
}

// unitAliases maps singular spellings to their canonical plural form.
var unitAliases = map[string]string{
	"second":     "seconds",
	"minute":     "minutes",
	"hour":       "hours",
	"day":        "days",
	"week":       "weeks",
	"month":      "months",
	"year":       "years",
	"decade":     "decades",
	"century":    "centuries",
	"millennium": "millennia",
}

// canonicalOrder is the fixed ascending magnitude ordering across both axes.
// Index into this slice is the total order used for descending decomposition.
var canonicalOrder = []string{
	"seconds",
	"minutes",
	"hours",
	"days",
	"weeks",
	"months",
	"years",
	"decades",
	"centuries",
	"millennia",
}

// orderIndex maps canonical names to their position in canonicalOrder.
var orderIndex = func() map[string]int {
	idx := make(map[string]int, len(canonicalOrder))
	for i, name := range canonicalOrder {
		idx[name] = i
	}
	return idx
}()

// Resolve looks up a unit by name. Names are case-insensitive and singular
// spellings resolve through the alias table to their canonical plural form.
// Returns an UnknownUnitError if the name is not recognized.
func Resolve(name string) (Unit, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if canonical, ok := unitAliases[key]; ok {
		key = canonical
	}
	u, ok := unitTable[key]
	if !ok {
		return Unit{}, NewUnknownUnitError(name)
	}
	return u, nil
}

// CanonicalOrder returns the fixed ascending unit ordering:
// seconds < minutes < hours < days < weeks < months < years < decades <
// centuries < millennia. The returned slice is a copy.
func CanonicalOrder() []string {
	out := make([]string, len(canonicalOrder))
	copy(out, canonicalOrder)
	return out
}

// OrderDesc returns the given unit names sorted largest-first by canonical
// magnitude, preserving the caller's spellings. Duplicate or aliased names
// keep their relative input order. Returns an UnknownUnitError if any name
// does not resolve.
func OrderDesc(units []string) ([]string, error) {
	type entry struct {
		spelling string
		rank     int
	}
	entries := make([]entry, len(units))
	for i, name := range units {
		u, err := Resolve(name)
		if err != nil {
			return nil, err
		}
		entries[i] = entry{spelling: name, rank: orderIndex[u.Name]}
	}
	// Stable insertion sort; requested lists are at most a handful of units.
	for i := 1; i < len(entries); i++ {
		for j := i; j > 0 && entries[j].rank > entries[j-1].rank; j-- {
			entries[j], entries[j-1] = entries[j-1], entries[j]
		}
	}
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.spelling
	}
	return out, nil
}
