// Package format renders span.Duration values as text under a configurable
// syntax: an ordered set of unit labels, a component limit, and the strings
// joining numbers to labels and components to each other.
package format

// Label is the text attached to a unit count. Plural is optional; when a
// count is not exactly one and no plural is defined, the singular is used.
type Label struct {
	Singular string
	Plural   string
}

// UnitLabel binds a unit name to its label. Unit names must resolve against
// the span unit table; rendering an unknown unit fails rather than silently
// treating it as zero.
type UnitLabel struct {
	Unit  string
	Label Label
}

// Syntax configures rendering.
type Syntax struct {
	// Units lists the units to decompose into, with their labels.
	Units []UnitLabel

	// Count caps the number of non-zero components included, taken in
	// descending magnitude order. Zero means all.
	Count int

	// Separator joins a number to its label.
	Separator string

	// Delimiter joins successive components.
	Delimiter string
}

// Patch is a partial Syntax for overriding a built-in. Nil fields keep the
// base value; zero is a meaningful Count, hence the pointers.
type Patch struct {
	Units     []UnitLabel
	Count     *int
	Separator *string
	Delimiter *string
}

// Override returns s with the patch's set fields applied.
func (s Syntax) Override(p Patch) Syntax {
	out := s
	if p.Units != nil {
		out.Units = p.Units
	}
	if p.Count != nil {
		out.Count = *p.Count
	}
	if p.Separator != nil {
		out.Separator = *p.Separator
	}
	if p.Delimiter != nil {
		out.Delimiter = *p.Delimiter
	}
	return out
}

// allUnits builds unit labels for the full magnitude range, largest first.
func allUnits(labels map[string]Label) []UnitLabel {
	order := []string{
		"millennia", "centuries", "decades", "years", "months",
		"weeks", "days", "hours", "minutes", "seconds",
	}
	out := make([]UnitLabel, len(order))
	for i, unit := range order {
		out[i] = UnitLabel{Unit: unit, Label: labels[unit]}
	}
	return out
}

// Micro renders the single largest non-zero unit with one-letter labels:
// "3h", "2d".
func Micro() Syntax {
	return Syntax{
		Units: allUnits(map[string]Label{
			"millennia": {Singular: "ml"},
			"centuries": {Singular: "c"},
			"decades":   {Singular: "D"},
			"years":     {Singular: "y"},
			"months":    {Singular: "mo"},
			"weeks":     {Singular: "w"},
			"days":      {Singular: "d"},
			"hours":     {Singular: "h"},
			"minutes":   {Singular: "m"},
			"seconds":   {Singular: "s"},
		}),
		Count:     1,
		Separator: "",
		Delimiter: " ",
	}
}

// Short renders the two largest non-zero units with abbreviated labels:
// "1hr 3min".
func Short() Syntax {
	return Syntax{
		Units: allUnits(map[string]Label{
			"millennia": {Singular: "mil"},
			"centuries": {Singular: "cent"},
			"decades":   {Singular: "dec"},
			"years":     {Singular: "yr"},
			"months":    {Singular: "mo"},
			"weeks":     {Singular: "wk"},
			"days":      {Singular: "d"},
			"hours":     {Singular: "hr"},
			"minutes":   {Singular: "min"},
			"seconds":   {Singular: "sec"},
		}),
		Count:     2,
		Separator: "",
		Delimiter: " ",
	}
}

// Long renders every non-zero unit with full words and singular/plural
// selection: "1 hour, 3 minutes, 4 seconds". This is the default syntax.
func Long() Syntax {
	return Syntax{
		Units: allUnits(map[string]Label{
			"millennia": {Singular: "millennium", Plural: "millennia"},
			"centuries": {Singular: "century", Plural: "centuries"},
			"decades":   {Singular: "decade", Plural: "decades"},
			"years":     {Singular: "year", Plural: "years"},
			"months":    {Singular: "month", Plural: "months"},
			"weeks":     {Singular: "week", Plural: "weeks"},
			"days":      {Singular: "day", Plural: "days"},
			"hours":     {Singular: "hour", Plural: "hours"},
			"minutes":   {Singular: "minute", Plural: "minutes"},
			"seconds":   {Singular: "second", Plural: "seconds"},
		}),
		Count:     0,
		Separator: " ",
		Delimiter: ", ",
	}
}

// Default returns the default syntax (Long).
func Default() Syntax {
	return Long()
}

// builtins maps syntax names to their constructors.
var builtins = map[string]func() Syntax{
	"micro": Micro,
	"short": Short,
	"long":  Long,
}

// BuiltinNames returns the built-in syntax names in a fixed order.
func BuiltinNames() []string {
	return []string{"micro", "short", "long"}
}

// Builtin looks up a built-in syntax by name.
func Builtin(name string) (Syntax, bool) {
	ctor, ok := builtins[name]
	if !ok {
		return Syntax{}, false
	}
	return ctor(), true
}
