package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/roach88/calspan/span"
)

// ConvertResult holds the convert command's JSON payload.
type ConvertResult struct {
	Expression string `json:"expression"`
	Unit       string `json:"unit"`
	Policy     string `json:"policy"`
	Count      int64  `json:"count"`
}

// NewConvertCommand creates the convert command.
func NewConvertCommand(rootOpts *RootOptions) *cobra.Command {
	var policyName string

	cmd := &cobra.Command{
		Use:   "convert <expression> <unit>",
		Short: "Reduce a duration to a whole count of one unit",
		Long: `Reduce a duration expression to a whole unit count, truncating toward zero.

Crossing between second-based and month-based units uses the selected
normalization policy (standard: 30-day months / 365-day years).`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(rootOpts, args[0], args[1], policyName, cmd)
		},
	}

	cmd.Flags().StringVar(&policyName, "policy", span.PolicyStandard.Name, "normalization policy (standard|minimum|maximum)")

	return cmd
}

func runConvert(opts *RootOptions, expr, unit, policyName string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	d, err := parseExpr(formatter, expr)
	if err != nil {
		return err
	}

	policy, err := span.PolicyByName(policyName)
	if err != nil {
		_ = formatter.Error(ErrCodeBadPolicy, err.Error(), nil)
		return NewExitError(ExitCommandError, err.Error())
	}

	count, err := d.InPolicy(unit, policy)
	if err != nil {
		_ = formatter.Error(ErrCodeUnknownUnit, err.Error(), nil)
		return NewExitError(ExitFailure, err.Error())
	}

	recordHistory(cmd.Context(), opts, formatter, "convert", expr, fmt.Sprintf("%d %s", count, unit), policy.Name)

	if opts.Format == "json" {
		return formatter.Success(ConvertResult{Expression: expr, Unit: unit, Policy: policy.Name, Count: count})
	}

	// Large counts ("12,000 days") read better grouped.
	printer := message.NewPrinter(language.English)
	return formatter.Success(printer.Sprintf("%d %s", count, unit))
}
