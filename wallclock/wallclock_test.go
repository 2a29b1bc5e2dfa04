package wallclock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/calspan/span"
)

func TestFromSpan(t *testing.T) {
	d := span.Must(span.New(map[string]int64{"hours": 5, "minutes": 30}))

	w, err := FromSpan(d)
	require.NoError(t, err)
	assert.Equal(t, 5, w.Hour())
	assert.Equal(t, 30, w.Minute())
	assert.Equal(t, 0, w.Second())
	assert.Equal(t, "05:30:00", w.String())
}

func TestFromSpanBounds(t *testing.T) {
	tests := []struct {
		name string
		d    span.Duration
	}{
		{"full_day", span.Must(span.FromUnit(1, "day"))},
		{"months_present", span.Must(span.New(map[string]int64{"months": 1, "seconds": 3}))},
		{"negative", span.Must(span.FromUnit(-1, "second"))},
		{"exactly_24h", span.Must(span.FromUnit(86400, "seconds"))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromSpan(tt.d)
			require.Error(t, err)
			assert.True(t, IsOutOfBounds(err))
		})
	}
}

func TestFromSpanBoundaries(t *testing.T) {
	midnight, err := FromSpan(span.Duration{})
	require.NoError(t, err)
	assert.Equal(t, "00:00:00", midnight.String())

	lastSecond, err := FromSpan(span.Must(span.FromUnit(86399, "seconds")))
	require.NoError(t, err)
	assert.Equal(t, "23:59:59", lastSecond.String())
}

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name    string
		h, m, s int
		ok      bool
	}{
		{"valid", 23, 59, 59, true},
		{"midnight", 0, 0, 0, true},
		{"hour_high", 24, 0, 0, false},
		{"minute_high", 0, 60, 0, false},
		{"second_high", 0, 0, 60, false},
		{"negative", -1, 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.h, tt.m, tt.s)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.True(t, IsOutOfBounds(err))
			}
		})
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"5:30", "05:30:00"},
		{"05:30:07", "05:30:07"},
		{"23:59:59", "23:59:59"},
		{"0:00", "00:00:00"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			w, err := Parse(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, w.String())
		})
	}

	for _, bad := range []string{"", "530", "5:xx", "25:00", "5:61", "1:2:3:4"} {
		t.Run("bad_"+bad, func(t *testing.T) {
			_, err := Parse(bad)
			assert.Error(t, err)
		})
	}
}

func TestSpanRoundTrip(t *testing.T) {
	w, err := New(5, 30, 7)
	require.NoError(t, err)

	back, err := FromSpan(w.Span())
	require.NoError(t, err)
	assert.Equal(t, w, back)
}

func TestAt(t *testing.T) {
	w, err := New(5, 30, 0)
	require.NoError(t, err)

	ref := time.Date(2000, time.March, 31, 23, 15, 42, 0, time.UTC)
	assert.Equal(t, time.Date(2000, time.March, 31, 5, 30, 0, 0, time.UTC), w.At(ref))
}
