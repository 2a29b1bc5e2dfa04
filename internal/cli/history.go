package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/calspan/internal/store"
)

// NewHistoryCommand creates the history command.
func NewHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded computations",
		Long: `List past computations from the history database in logical order.

Requires --db; commands record into the same database when it is set.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(rootOpts, limit, cmd)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "maximum entries to list (0 = all)")

	return cmd
}

func runHistory(opts *RootOptions, limit int, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	if opts.DBPath == "" {
		msg := "--db is required for history"
		_ = formatter.Error(ErrCodeStore, msg, nil)
		return NewExitError(ExitCommandError, msg)
	}
	if _, err := os.Stat(opts.DBPath); os.IsNotExist(err) {
		msg := fmt.Sprintf("history database not found: %s", opts.DBPath)
		_ = formatter.Error(ErrCodeStore, msg, nil)
		return NewExitError(ExitCommandError, msg)
	}

	s, err := store.Open(opts.DBPath)
	if err != nil {
		_ = formatter.Error(ErrCodeStore, err.Error(), nil)
		return NewExitError(ExitCommandError, err.Error())
	}
	defer s.Close()

	computations, err := s.ListComputations(cmd.Context(), limit)
	if err != nil {
		_ = formatter.Error(ErrCodeStore, err.Error(), nil)
		return NewExitError(ExitCommandError, err.Error())
	}

	if opts.Format == "json" {
		return formatter.Success(computations)
	}

	if len(computations) == 0 {
		return formatter.Success("history is empty")
	}

	var b strings.Builder
	for i, c := range computations {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%4d  %-8s  %-30q  %s", c.Seq, c.Operation, c.Expression, c.Result)
	}
	return formatter.Success(b.String())
}
