package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/calspan/span"
)

// SplitResult holds the split command's JSON payload.
type SplitResult struct {
	Expression string           `json:"expression"`
	Units      []string         `json:"units"`
	Parts      map[string]int64 `json:"parts"`
}

// NewSplitCommand creates the split command.
func NewSplitCommand(rootOpts *RootOptions) *cobra.Command {
	var unitsFlag string

	cmd := &cobra.Command{
		Use:   "split <expression>",
		Short: "Decompose a duration into unit parts",
		Long: `Greedily decompose a duration into the requested units, largest-first.

The requested units are always processed in descending magnitude order
regardless of the order given.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSplit(rootOpts, args[0], unitsFlag, cmd)
		},
	}

	cmd.Flags().StringVar(&unitsFlag, "units", "years,months,days,seconds", "comma-separated unit list")

	return cmd
}

func runSplit(opts *RootOptions, expr, unitsFlag string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	d, err := parseExpr(formatter, expr)
	if err != nil {
		return err
	}

	units := splitUnitList(unitsFlag)
	if len(units) == 0 {
		msg := "at least one unit is required"
		_ = formatter.Error(ErrCodeBadExpr, msg, nil)
		return NewExitError(ExitCommandError, msg)
	}

	parts, err := d.Split(units)
	if err != nil {
		_ = formatter.Error(ErrCodeUnknownUnit, err.Error(), nil)
		return NewExitError(ExitFailure, err.Error())
	}

	ordered, err := span.OrderDesc(units)
	if err != nil {
		_ = formatter.Error(ErrCodeUnknownUnit, err.Error(), nil)
		return NewExitError(ExitFailure, err.Error())
	}

	components := make([]string, len(ordered))
	for i, unit := range ordered {
		components[i] = fmt.Sprintf("%d %s", parts[unit], unit)
	}
	text := strings.Join(components, ", ")

	recordHistory(cmd.Context(), opts, formatter, "split", expr, text, span.PolicyStandard.Name)

	if opts.Format == "json" {
		return formatter.Success(SplitResult{Expression: expr, Units: ordered, Parts: parts})
	}
	return formatter.Success(text)
}

// splitUnitList parses a comma-separated unit list, dropping empty entries.
func splitUnitList(s string) []string {
	var out []string
	for _, f := range strings.Split(s, ",") {
		f = strings.TrimSpace(f)
		if f != "" {
			out = append(out, f)
		}
	}
	return out
}
