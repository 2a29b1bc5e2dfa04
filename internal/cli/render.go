package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/calspan/format"
	"github.com/roach88/calspan/span"
)

// RenderResult holds the render command's JSON payload.
type RenderResult struct {
	Expression string `json:"expression"`
	Syntax     string `json:"syntax"`
	Rendered   string `json:"rendered"`
}

// NewRenderCommand creates the render command.
func NewRenderCommand(rootOpts *RootOptions) *cobra.Command {
	var syntaxName string
	var syntaxFile string

	cmd := &cobra.Command{
		Use:   "render <expression>",
		Short: "Render a duration as text",
		Long: `Render a duration expression under a named or user-defined syntax.

Expressions are count/unit pairs: "1 hour 3 minutes 4 seconds".
Built-in syntaxes: micro (1 unit), short (2 units), long (all units, default).
A --syntax-file overrides or extends its base syntax.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(rootOpts, args[0], syntaxName, syntaxFile, cmd)
		},
	}

	cmd.Flags().StringVar(&syntaxName, "syntax", "long", "built-in syntax ("+strings.Join(format.BuiltinNames(), "|")+")")
	cmd.Flags().StringVar(&syntaxFile, "syntax-file", "", "YAML syntax definition file")

	return cmd
}

func runRender(opts *RootOptions, expr, syntaxName, syntaxFile string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	d, err := parseExpr(formatter, expr)
	if err != nil {
		return err
	}

	syntax, exitErr := resolveSyntax(formatter, syntaxName, syntaxFile)
	if exitErr != nil {
		return exitErr
	}

	rendered, err := format.Render(d, syntax)
	if err != nil {
		_ = formatter.Error(ErrCodeUnknownUnit, err.Error(), nil)
		return NewExitError(ExitFailure, err.Error())
	}

	recordHistory(cmd.Context(), opts, formatter, "render", expr, rendered, span.PolicyStandard.Name)

	if opts.Format == "json" {
		name := syntaxName
		if syntaxFile != "" {
			name = syntaxFile
		}
		return formatter.Success(RenderResult{Expression: expr, Syntax: name, Rendered: rendered})
	}
	return formatter.Success(rendered)
}

// resolveSyntax picks the syntax for a render: a user file when given,
// otherwise a built-in by name.
func resolveSyntax(formatter *OutputFormatter, name, file string) (format.Syntax, error) {
	if file != "" {
		syntax, err := format.LoadSyntaxFile(file)
		if err != nil {
			_ = formatter.Error(ErrCodeBadSyntax, err.Error(), nil)
			return format.Syntax{}, NewExitError(ExitCommandError, err.Error())
		}
		return syntax, nil
	}

	syntax, ok := format.Builtin(name)
	if !ok {
		msg := "unknown syntax " + name
		_ = formatter.Error(ErrCodeBadSyntax, msg, nil)
		return format.Syntax{}, NewExitError(ExitCommandError, msg)
	}
	return syntax, nil
}
