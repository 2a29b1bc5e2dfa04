package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/roach88/calspan/span"
)

// instantLayouts are the accepted --from formats, tried in order.
var instantLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ProjectResult holds the project command's JSON payload.
type ProjectResult struct {
	Expression string `json:"expression"`
	Direction  string `json:"direction"`
	From       string `json:"from"`
	Instant    string `json:"instant"`
}

// NewProjectCommand creates the project command.
func NewProjectCommand(rootOpts *RootOptions) *cobra.Command {
	var fromFlag string
	var direction string

	cmd := &cobra.Command{
		Use:   "project <expression>",
		Short: "Project a duration onto a calendar instant",
		Long: `Compute the instant a duration before or after a reference point.

Month and year offsets clamp to valid days ("Jan 31 + 1 month" lands on the
last day of February); day and second offsets are linear time arithmetic.
Without --from, the current instant is used.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProject(rootOpts, args[0], fromFlag, direction, cmd)
		},
	}

	cmd.Flags().StringVar(&fromFlag, "from", "", "reference instant (RFC 3339, \"2006-01-02 15:04:05\", or date)")
	cmd.Flags().StringVar(&direction, "direction", "after", "projection direction (after|before)")

	return cmd
}

func runProject(opts *RootOptions, expr, fromFlag, direction string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	d, err := parseExpr(formatter, expr)
	if err != nil {
		return err
	}

	if direction != "after" && direction != "before" {
		msg := fmt.Sprintf("invalid direction %q: must be after or before", direction)
		_ = formatter.Error(ErrCodeGeneric, msg, nil)
		return NewExitError(ExitCommandError, msg)
	}

	from := opts.Clock.Now()
	if fromFlag != "" {
		parsed, parseErr := parseInstant(fromFlag)
		if parseErr != nil {
			_ = formatter.Error(ErrCodeBadInstant, parseErr.Error(), nil)
			return NewExitError(ExitCommandError, parseErr.Error())
		}
		from = parsed
	}

	var out time.Time
	if direction == "before" {
		out = span.Before(d, from)
	} else {
		out = span.After(d, from)
	}
	rendered := out.Format(time.RFC3339)

	recordHistory(cmd.Context(), opts, formatter, "project", expr, rendered, span.PolicyStandard.Name)

	if opts.Format == "json" {
		return formatter.Success(ProjectResult{
			Expression: expr,
			Direction:  direction,
			From:       from.Format(time.RFC3339),
			Instant:    rendered,
		})
	}
	return formatter.Success(rendered)
}

// parseInstant tries each accepted layout in UTC.
func parseInstant(s string) (time.Time, error) {
	for _, layout := range instantLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable instant %q", s)
}
