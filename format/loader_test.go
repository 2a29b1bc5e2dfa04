package format

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/calspan/span"
)

func writeSyntaxFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "syntax.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadSyntaxFileOverridesBase(t *testing.T) {
	path := writeSyntaxFile(t, `
name: terse-hours
base: short
count: 1
units:
  - unit: hours
    singular: hr
    plural: hrs
  - unit: minutes
    singular: min
`)
	syntax, err := LoadSyntaxFile(path)
	require.NoError(t, err)

	assert.Equal(t, 1, syntax.Count)
	assert.Equal(t, "", syntax.Separator, "separator inherited from short")
	assert.Equal(t, " ", syntax.Delimiter)
	require.Len(t, syntax.Units, 2)

	d, err := span.New(map[string]int64{"hours": 2, "minutes": 10})
	require.NoError(t, err)
	got, err := Render(d, syntax)
	require.NoError(t, err)
	assert.Equal(t, "2hrs", got)
}

func TestLoadSyntaxFileDefaultsToLong(t *testing.T) {
	path := writeSyntaxFile(t, `
delimiter: " and "
`)
	syntax, err := LoadSyntaxFile(path)
	require.NoError(t, err)

	d, err := span.New(map[string]int64{"hours": 1, "minutes": 2})
	require.NoError(t, err)
	got, err := Render(d, syntax)
	require.NoError(t, err)
	assert.Equal(t, "1 hour and 2 minutes", got)
}

func TestLoadSyntaxFileZeroCountMeansAll(t *testing.T) {
	path := writeSyntaxFile(t, `
base: short
count: 0
`)
	syntax, err := LoadSyntaxFile(path)
	require.NoError(t, err)
	assert.Equal(t, 0, syntax.Count)
}

func TestLoadSyntaxFileSchemaViolations(t *testing.T) {
	tests := []struct {
		name     string
		contents string
	}{
		{"negative_count", "count: -1\n"},
		{"unknown_base", "base: verbose\n"},
		{"unknown_field", "separtor: x\n"},
		{"empty_unit_name", "units:\n  - unit: \"\"\n"},
		{"wrong_type", "count: lots\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeSyntaxFile(t, tt.contents)
			_, err := LoadSyntaxFile(path)
			assert.Error(t, err)
		})
	}
}

func TestLoadSyntaxFileUnknownUnit(t *testing.T) {
	path := writeSyntaxFile(t, `
units:
  - unit: parsecs
    singular: pc
`)
	_, err := LoadSyntaxFile(path)
	require.Error(t, err)
	assert.True(t, span.IsUnknownUnit(err))
}

func TestLoadSyntaxFileMissing(t *testing.T) {
	_, err := LoadSyntaxFile(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
