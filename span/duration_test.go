package span

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAccumulatesByAxis(t *testing.T) {
	d, err := New(map[string]int64{
		"hours":   1,
		"minutes": 3,
		"seconds": 4,
		"years":   1,
		"months":  2,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3784), d.Seconds())
	assert.Equal(t, int64(14), d.Months())
}

func TestNewRoundTripMagnitude(t *testing.T) {
	// For any unit u and count n, New({u:n}).Get(axis(u)) == n * magnitude(u).
	for _, name := range CanonicalOrder() {
		t.Run(name, func(t *testing.T) {
			u, err := Resolve(name)
			require.NoError(t, err)

			d, err := FromUnit(7, name)
			require.NoError(t, err)

			got, err := d.Get(u.Axis)
			require.NoError(t, err)
			assert.Equal(t, 7*u.Magnitude, got)
		})
	}
}

func TestNewUnknownUnit(t *testing.T) {
	_, err := New(map[string]int64{"eons": 1})
	require.Error(t, err)
	assert.True(t, IsUnknownUnit(err))
}

func TestArithmetic(t *testing.T) {
	fiveMinutes := Must(FromUnit(5, "minutes"))
	twelveMonths := Must(FromUnit(12, "months"))

	t.Run("juxtaposition_is_addition", func(t *testing.T) {
		compound := fiveMinutes.Add(twelveMonths)
		assert.Equal(t, int64(300), compound.Seconds())
		assert.Equal(t, int64(12), compound.Months())
	})

	t.Run("additive_inverse", func(t *testing.T) {
		compound := fiveMinutes.Add(twelveMonths)
		assert.True(t, compound.Add(compound.Neg()).IsZero())
	})

	t.Run("subtraction", func(t *testing.T) {
		got := fiveMinutes.Sub(Must(FromUnit(2, "minutes")))
		assert.Equal(t, Must(FromUnit(3, "minutes")), got)
	})
}

func TestUnitEquivalence(t *testing.T) {
	tests := []struct {
		name string
		a    Duration
		b    Duration
	}{
		{"minute_is_60_seconds", Must(FromUnit(1, "minute")), Must(FromUnit(60, "seconds"))},
		{"week_is_7_days", Must(FromUnit(1, "week")), Must(FromUnit(7, "days"))},
		{"12_months_is_1_year", Must(FromUnit(12, "months")), Must(FromUnit(1, "year"))},
		{"decade_is_10_years", Must(FromUnit(1, "decade")), Must(FromUnit(10, "years"))},
		{"millennium_is_10_centuries", Must(FromUnit(1, "millennium")), Must(FromUnit(10, "centuries"))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.a.Equal(tt.b))
		})
	}
}

func TestEqualityIsExactPerField(t *testing.T) {
	// A months-axis value never silently equals a seconds-axis value.
	oneMonth := Must(FromUnit(1, "month"))
	thirtyDays := Must(FromUnit(30, "days"))
	assert.False(t, oneMonth.Equal(thirtyDays))

	// 90 seconds and "1 minute 30 seconds" land on the same field value.
	a := Must(FromUnit(90, "seconds"))
	b := Must(New(map[string]int64{"minute": 1, "seconds": 30}))
	assert.True(t, a.Equal(b))
}

func TestGetAxis(t *testing.T) {
	d := Must(New(map[string]int64{"days": 2, "years": 1}))

	secs, err := d.Get(AxisSeconds)
	require.NoError(t, err)
	assert.Equal(t, int64(172800), secs)

	months, err := d.Get(AxisMonths)
	require.NoError(t, err)
	assert.Equal(t, int64(12), months)

	_, err = d.Get(Axis("fortnights"))
	require.Error(t, err)
	assert.True(t, IsInvalidAxis(err))
}

func TestMutatingWrappers(t *testing.T) {
	d := Must(FromUnit(1, "hour"))
	d.AddAssign(Must(FromUnit(30, "minutes")))
	assert.Equal(t, int64(5400), d.Seconds())

	d.NegAssign()
	assert.Equal(t, int64(-5400), d.Seconds())
}

func TestMustPanics(t *testing.T) {
	assert.Panics(t, func() {
		Must(FromUnit(1, "eon"))
	})
}
