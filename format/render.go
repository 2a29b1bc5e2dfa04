package format

import (
	"fmt"
	"strings"

	"github.com/roach88/calspan/span"
)

// Render formats d under the syntax: decompose into the syntax's units,
// keep components with value > 0 in descending magnitude order, cap at
// syntax.Count (zero meaning all), and label each count singular or plural.
//
// A zero duration renders as a zero count of the syntax's smallest unit, so
// the output is never empty. Unknown unit names in the syntax fail with an
// UnknownUnitError.
func Render(d span.Duration, s Syntax) (string, error) {
	if len(s.Units) == 0 {
		s = Default()
	}

	names := make([]string, len(s.Units))
	labels := make(map[string]Label, len(s.Units))
	for i, ul := range s.Units {
		names[i] = ul.Unit
		labels[ul.Unit] = ul.Label
	}

	parts, err := d.Split(names)
	if err != nil {
		return "", err
	}
	ordered, err := span.OrderDesc(names)
	if err != nil {
		return "", err
	}

	var components []string
	for _, unit := range ordered {
		v := parts[unit]
		if v <= 0 {
			continue
		}
		components = append(components, component(v, s.Separator, labels[unit]))
		if s.Count > 0 && len(components) == s.Count {
			break
		}
	}

	if len(components) == 0 {
		smallest := ordered[len(ordered)-1]
		components = append(components, component(0, s.Separator, labels[smallest]))
	}

	return strings.Join(components, s.Delimiter), nil
}

// component joins a count to its label, plural when the count is not one.
func component(v int64, separator string, l Label) string {
	label := l.Singular
	if v != 1 && l.Plural != "" {
		label = l.Plural
	}
	return fmt.Sprintf("%d%s%s", v, separator, label)
}
