package cli

import (
	"github.com/spf13/cobra"

	"github.com/roach88/calspan/span"
	"github.com/roach88/calspan/wallclock"
)

// WallResult holds the wall command's JSON payload.
type WallResult struct {
	Expression string `json:"expression"`
	Wall       string `json:"wall"`
	Hour       int    `json:"hour"`
	Minute     int    `json:"minute"`
	Second     int    `json:"second"`
}

// NewWallCommand creates the wall command.
func NewWallCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wall <expression>",
		Short: "Read a duration as a time of day",
		Long: `Convert a duration to a wall-clock time.

Only month-free durations inside [0, 24h) convert; anything else is out of
bounds for a date-free clock.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWall(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runWall(opts *RootOptions, expr string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	d, err := parseExpr(formatter, expr)
	if err != nil {
		return err
	}

	w, err := wallclock.FromSpan(d)
	if err != nil {
		_ = formatter.Error(ErrCodeOutOfBounds, err.Error(), nil)
		return NewExitError(ExitFailure, err.Error())
	}

	recordHistory(cmd.Context(), opts, formatter, "wall", expr, w.String(), span.PolicyStandard.Name)

	if opts.Format == "json" {
		return formatter.Success(WallResult{
			Expression: expr,
			Wall:       w.String(),
			Hour:       w.Hour(),
			Minute:     w.Minute(),
			Second:     w.Second(),
		})
	}
	return formatter.Success(w.String())
}
