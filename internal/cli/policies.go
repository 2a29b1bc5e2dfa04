package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/calspan/span"
)

// PolicyInfo describes one normalization policy.
type PolicyInfo struct {
	Name            string `json:"name"`
	SecondsPerMonth int64  `json:"seconds_per_month"`
	SecondsPerYear  int64  `json:"seconds_per_year"`
}

// NewPoliciesCommand creates the policies command.
func NewPoliciesCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "policies",
		Short: "List normalization policies",
		Long: `List the named approximations used when crossing the seconds/months axis
boundary, with their exact seconds-per-month and seconds-per-year values.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPolicies(rootOpts, cmd)
		},
	}

	return cmd
}

func runPolicies(opts *RootOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	infos := make([]PolicyInfo, 0, len(span.PolicyNames()))
	for _, name := range span.PolicyNames() {
		p, err := span.PolicyByName(name)
		if err != nil {
			_ = formatter.Error(ErrCodeBadPolicy, err.Error(), nil)
			return NewExitError(ExitCommandError, err.Error())
		}
		infos = append(infos, PolicyInfo{
			Name:            p.Name,
			SecondsPerMonth: p.SecondsPerMonth,
			SecondsPerYear:  p.SecondsPerYear,
		})
	}

	if opts.Format == "json" {
		return formatter.Success(infos)
	}

	var b strings.Builder
	for i, p := range infos {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%-8s  month=%ds (%d days)  year=%ds (%d days)",
			p.Name, p.SecondsPerMonth, p.SecondsPerMonth/86400, p.SecondsPerYear, p.SecondsPerYear/86400)
	}
	return formatter.Success(b.String())
}
