package cli

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/roach88/calspan/calendar"
	"github.com/roach88/calspan/internal/store"
	"github.com/roach88/calspan/span"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"
	DBPath  string // history database; empty disables recording

	// Clock supplies "now" for projections. Injected so tests pin it.
	Clock calendar.Clock
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the calspan CLI.
func NewRootCommand(clock calendar.Clock) *cobra.Command {
	opts := &RootOptions{Clock: clock}

	cmd := &cobra.Command{
		Use:   "calspan",
		Short: "calspan - calendar-duration arithmetic",
		Long:  "Exact dual-axis (seconds/months) duration arithmetic, unit conversion, calendar projection, and rendering.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.DBPath, "db", "", "history database path (recording disabled when empty)")

	// Add subcommands
	cmd.AddCommand(NewRenderCommand(opts))
	cmd.AddCommand(NewConvertCommand(opts))
	cmd.AddCommand(NewSplitCommand(opts))
	cmd.AddCommand(NewProjectCommand(opts))
	cmd.AddCommand(NewWallCommand(opts))
	cmd.AddCommand(NewPoliciesCommand(opts))
	cmd.AddCommand(NewHistoryCommand(opts))

	return cmd
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

// Error code constants - unified across all CLI commands.
const (
	ErrCodeGeneric     = "E001" // Generic/unknown error
	ErrCodeBadExpr     = "E002" // Malformed duration expression
	ErrCodeUnknownUnit = "E003" // Unit not in the unit table
	ErrCodeBadPolicy   = "E004" // Unknown normalization policy
	ErrCodeBadSyntax   = "E005" // Syntax file invalid
	ErrCodeOutOfBounds = "E006" // Wall-clock conversion out of bounds
	ErrCodeBadInstant  = "E007" // Unparseable instant
	ErrCodeStore       = "E008" // History database error
)

// newFormatter builds the formatter for a command invocation.
func newFormatter(opts *RootOptions, cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(), // Verbose logs go to stderr to avoid corrupting JSON
		Verbose:   opts.Verbose,
	}
}

// parseExpr parses a duration expression, mapping failures to exit errors.
func parseExpr(formatter *OutputFormatter, expr string) (span.Duration, error) {
	d, err := span.Parse(expr)
	if err != nil {
		code := ErrCodeBadExpr
		if span.IsUnknownUnit(err) {
			code = ErrCodeUnknownUnit
		}
		_ = formatter.Error(code, err.Error(), nil)
		return span.Duration{}, NewExitError(ExitFailure, err.Error())
	}
	return d, nil
}

// recordHistory appends a computation to the history database when one is
// configured. Recording failures are surfaced as warnings, never as
// command failures: history is advisory.
func recordHistory(ctx context.Context, opts *RootOptions, formatter *OutputFormatter, operation, expression, result, policy string) {
	if opts.DBPath == "" {
		return
	}
	s, err := store.Open(opts.DBPath)
	if err != nil {
		formatter.VerboseLog("history: %v", err)
		return
	}
	defer s.Close()

	c := store.Computation{
		ID:         uuid.NewString(),
		Operation:  operation,
		Expression: expression,
		Result:     result,
		Policy:     policy,
	}
	if err := s.WriteComputation(ctx, c); err != nil {
		formatter.VerboseLog("history: %v", err)
	}
}
