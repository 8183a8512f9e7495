package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/bimaru/internal/puzzle"
	"github.com/roach88/bimaru/internal/rules"
)

// ValidationReport holds validation results for a puzzle document.
type ValidationReport struct {
	Puzzle     string   `json:"puzzle"`
	PuzzleHash string   `json:"puzzle_hash,omitempty"`
	Valid      bool     `json:"valid"`
	Issues     []string `json:"issues,omitempty"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <puzzle-file>",
		Short: "Validate a puzzle document without solving it",
		Long: `Validate a puzzle document without solving it.

Checks, in order:
  - the document satisfies the puzzle schema
  - the board is structurally well formed
  - row, column, and fleet totals agree
  - the given hints do not already contradict each other

A document that passes validation is not guaranteed solvable by
deduction; it is guaranteed to be a meaningful puzzle.

Exit codes: 0 valid, 1 invalid, 2 command error.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runValidate(opts *RootOptions, path string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	doc, err := puzzle.Load(path)
	if err != nil {
		formatter.Error(ErrCodeLoad, err.Error(), nil)
		return WrapExitError(ExitCommandError, "load puzzle", err)
	}

	report := ValidationReport{Puzzle: path}
	if hash, err := doc.Fingerprint(); err == nil {
		report.PuzzleHash = hash
	}

	b, err := doc.Build()
	if err != nil {
		// Structural faults are document errors, not solve outcomes.
		formatter.Error(ErrCodeConfig, err.Error(), nil)
		return WrapExitError(ExitCommandError, "build board", err)
	}

	if err := b.VerifyTotals(); err != nil {
		report.Issues = append(report.Issues, err.Error())
	}
	if v := rules.Check(b); !v.OK {
		report.Issues = append(report.Issues, fmt.Sprintf("hints are inconsistent (%s): %s", v.Reason, v.Detail))
	}
	report.Valid = len(report.Issues) == 0

	if opts.Format == "json" {
		if err := formatter.JSON(report); err != nil {
			return err
		}
	} else {
		if report.Valid {
			fmt.Fprintf(formatter.Writer, "%s: valid\n", path)
		} else {
			fmt.Fprintf(formatter.Writer, "%s: invalid\n", path)
			for _, issue := range report.Issues {
				fmt.Fprintf(formatter.Writer, "  - %s\n", issue)
			}
		}
	}

	if !report.Valid {
		return NewExitError(ExitFailure, "puzzle is invalid")
	}
	return nil
}
