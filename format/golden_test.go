package format

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"

	"github.com/roach88/calspan/span"
)

// TestRenderGolden pins the exact rendered bytes for representative
// durations under each built-in syntax.
//
// To regenerate golden files, run:
//
//	go test ./format -update
func TestRenderGolden(t *testing.T) {
	tests := []struct {
		name   string
		units  map[string]int64
		syntax Syntax
	}{
		{"long_compound", map[string]int64{"hours": 1, "minutes": 3, "seconds": 4}, Long()},
		{"short_compound", map[string]int64{"hours": 1, "minutes": 3, "seconds": 4}, Short()},
		{"micro_compound", map[string]int64{"hours": 1, "minutes": 3, "seconds": 4}, Micro()},
		{"long_mixed_axes", map[string]int64{"years": 1, "months": 2, "days": 3, "hours": 4}, Long()},
		{"long_zero", nil, Long()},
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := span.New(tt.units)
			require.NoError(t, err)

			rendered, err := Render(d, tt.syntax)
			require.NoError(t, err)

			g.Assert(t, tt.name, []byte(rendered))
		})
	}
}
