package format

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueyaml "cuelang.org/go/encoding/yaml"
	"gopkg.in/yaml.v3"

	"github.com/roach88/calspan/span"
)

//go:embed schema.cue
var schemaCUE string

// syntaxFile is the on-disk YAML shape of a user-supplied syntax.
// Pointer fields distinguish "absent" from meaningful zero values.
type syntaxFile struct {
	Name      string          `yaml:"name,omitempty"`
	Base      string          `yaml:"base,omitempty"`
	Count     *int            `yaml:"count,omitempty"`
	Separator *string         `yaml:"separator,omitempty"`
	Delimiter *string         `yaml:"delimiter,omitempty"`
	Units     []unitLabelFile `yaml:"units,omitempty"`
}

type unitLabelFile struct {
	Unit     string `yaml:"unit"`
	Singular string `yaml:"singular,omitempty"`
	Plural   string `yaml:"plural,omitempty"`
}

// LoadSyntaxFile reads a YAML syntax definition, validates it against the
// embedded CUE schema, and applies it as a patch over its base syntax
// (default "long"). Unit names are checked against the span unit table.
//
// Validation happens in three layers: the CUE schema catches structural and
// range violations with positions, the strict YAML decode catches field
// typos, and unit resolution catches unknown unit names.
func LoadSyntaxFile(path string) (Syntax, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Syntax{}, fmt.Errorf("read syntax file: %w", err)
	}
	return LoadSyntax(path, data)
}

// LoadSyntax is LoadSyntaxFile over already-read bytes. The filename is
// used only for error positions.
func LoadSyntax(filename string, data []byte) (Syntax, error) {
	if err := validateSchema(filename, data); err != nil {
		return Syntax{}, err
	}

	var file syntaxFile
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true) // Reject unknown fields (typos)
	if err := decoder.Decode(&file); err != nil {
		return Syntax{}, fmt.Errorf("parse syntax file: %w", err)
	}

	base := Default()
	if file.Base != "" {
		b, ok := Builtin(file.Base)
		if !ok {
			return Syntax{}, fmt.Errorf("syntax file %s: unknown base syntax %q", filename, file.Base)
		}
		base = b
	}

	patch := Patch{
		Count:     file.Count,
		Separator: file.Separator,
		Delimiter: file.Delimiter,
	}
	if file.Units != nil {
		units := make([]UnitLabel, len(file.Units))
		for i, ul := range file.Units {
			if _, err := span.Resolve(ul.Unit); err != nil {
				return Syntax{}, fmt.Errorf("syntax file %s: units[%d]: %w", filename, i, err)
			}
			units[i] = UnitLabel{
				Unit:  ul.Unit,
				Label: Label{Singular: ul.Singular, Plural: ul.Plural},
			}
		}
		patch.Units = units
	}

	return base.Override(patch), nil
}

// validateSchema unifies the YAML document with the embedded CUE schema and
// reports constraint violations before any decoding happens.
func validateSchema(filename string, data []byte) error {
	ctx := cuecontext.New()

	schema := ctx.CompileString(schemaCUE, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return fmt.Errorf("compile syntax schema: %w", err)
	}

	doc, err := cueyaml.Extract(filename, data)
	if err != nil {
		return fmt.Errorf("parse syntax file: %w", err)
	}
	value := ctx.BuildFile(doc)
	if err := value.Err(); err != nil {
		return fmt.Errorf("build syntax file: %w", err)
	}

	if err := schema.Unify(value).Validate(cue.Final()); err != nil {
		return fmt.Errorf("syntax file %s: schema violation: %w", filename, err)
	}
	return nil
}
