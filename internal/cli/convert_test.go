package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertCommandText(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"same_axis", []string{"convert", "90 seconds", "minutes"}, "1 minutes\n"},
		{"cross_axis_grouped", []string{"convert", "1 month", "seconds"}, "2,592,000 seconds\n"},
		{"minimum_policy", []string{"convert", "--policy", "minimum", "1 month", "seconds"}, "2,419,200 seconds\n"},
		{"maximum_policy", []string{"convert", "--policy", "maximum", "1 year", "days"}, "366 days\n"},
		{"negative_truncates_toward_zero", []string{"convert", "-90 seconds", "minutes"}, "-1 minutes\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestConvertCommandJSON(t *testing.T) {
	out, err := execute(t, "--format", "json", "convert", "1 year", "days")
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(365), data["count"])
	assert.Equal(t, "standard", data["policy"])
}

func TestConvertCommandFailures(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantCode int
	}{
		{"unknown_unit", []string{"convert", "1 day", "parsecs"}, ExitFailure},
		{"unknown_policy", []string{"convert", "--policy", "average", "1 day", "hours"}, ExitCommandError},
		{"bad_expression", []string{"convert", "x y", "hours"}, ExitFailure},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Equal(t, tt.wantCode, GetExitCode(err))
		})
	}
}

func TestSplitCommand(t *testing.T) {
	out, err := execute(t, "split", "--units", "hours,minutes,seconds", "1 hour 3 minutes 4 seconds")
	require.NoError(t, err)
	assert.Equal(t, "1 hours, 3 minutes, 4 seconds\n", out)

	// Caller order never matters - units are processed largest-first.
	reordered, err := execute(t, "split", "--units", "seconds,minutes,hours", "1 hour 3 minutes 4 seconds")
	require.NoError(t, err)
	assert.Equal(t, out, reordered)
}

func TestSplitCommandJSON(t *testing.T) {
	out, err := execute(t, "--format", "json", "split", "--units", "days,seconds", "25 hours")
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	parts, ok := data["parts"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(1), parts["days"])
	assert.Equal(t, float64(3600), parts["seconds"])
}
