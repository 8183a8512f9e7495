package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/bimaru/internal/store"
)

// TraceOptions holds flags for the trace command.
type TraceOptions struct {
	*RootOptions
	Database string
	Run      string // optional - show one run in full
	Puzzle   string // optional - filter listing by puzzle hash
}

// NewTraceCommand creates the trace command.
func NewTraceCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &TraceOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "trace",
		Short: "Inspect recorded solve runs",
		Long: `Inspect solve runs recorded with solve --db.

Without --run, lists run summaries (optionally filtered by puzzle
fingerprint). With --run, shows one run in full: outcome, final grid,
the ordered firing log, and any tier-5 probe conclusions.

Examples:
  bimaru trace --db traces.db
  bimaru trace --db traces.db --puzzle 4f1c...
  bimaru trace --db traces.db --run 6e0f... -v`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTrace(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "trace store path (required)")
	cmd.Flags().StringVar(&opts.Run, "run", "", "show this run in full")
	cmd.Flags().StringVar(&opts.Puzzle, "puzzle", "", "filter runs by puzzle fingerprint")
	cmd.MarkFlagRequired("db")

	return cmd
}

func runTrace(opts *TraceOptions, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	s, err := store.Open(opts.Database)
	if err != nil {
		formatter.Error(ErrCodeStore, err.Error(), nil)
		return WrapExitError(ExitCommandError, "open trace store", err)
	}
	defer s.Close()

	if opts.Run != "" {
		return showRun(opts, formatter, s, cmd)
	}
	return listRuns(opts, formatter, s, cmd)
}

func showRun(opts *TraceOptions, formatter *OutputFormatter, s *store.Store, cmd *cobra.Command) error {
	run, err := s.ReadRun(cmd.Context(), opts.Run)
	if err != nil {
		code := ErrCodeStore
		if errors.Is(err, store.ErrNotFound) {
			code = ErrCodeNotFound
		}
		formatter.Error(code, err.Error(), nil)
		return WrapExitError(ExitCommandError, "read run", err)
	}

	if opts.Format == "json" {
		return formatter.JSON(runPayload(run))
	}

	fmt.Fprintf(formatter.Writer, "Run:        %s\n", run.ID)
	fmt.Fprintf(formatter.Writer, "Puzzle:     %s", run.PuzzleHash)
	if run.PuzzleName != "" {
		fmt.Fprintf(formatter.Writer, " (%s)", run.PuzzleName)
	}
	fmt.Fprintln(formatter.Writer)
	fmt.Fprintf(formatter.Writer, "Recorded:   %s\n", run.CreatedAt)
	fmt.Fprintf(formatter.Writer, "Status:     %s\n", runStatus(run))
	fmt.Fprintf(formatter.Writer, "Max tier:   %d\n", run.MaxTier)
	fmt.Fprintf(formatter.Writer, "Difficulty: %d\n", run.Difficulty)
	fmt.Fprintln(formatter.Writer)
	fmt.Fprintln(formatter.Writer, run.FinalGrid)

	if len(run.Firings) > 0 {
		fmt.Fprintln(formatter.Writer)
		for _, f := range run.Firings {
			fmt.Fprintf(formatter.Writer, "  %3d  %-5s tier %d  %d cell(s)\n", f.Seq, f.Technique, f.Tier, f.Cells)
		}
	}
	for _, p := range run.Probes {
		fmt.Fprintf(formatter.Writer, "  probe (%d,%d): %s refuted (%s), committed %s\n",
			p.Row, p.Col, p.Hypothesis, p.Reason, p.Committed)
	}
	return nil
}

func listRuns(opts *TraceOptions, formatter *OutputFormatter, s *store.Store, cmd *cobra.Command) error {
	runs, err := s.ListRuns(cmd.Context(), opts.Puzzle)
	if err != nil {
		formatter.Error(ErrCodeStore, err.Error(), nil)
		return WrapExitError(ExitCommandError, "list runs", err)
	}

	if opts.Format == "json" {
		payload := make([]map[string]any, len(runs))
		for i, run := range runs {
			payload[i] = runPayload(run)
		}
		return formatter.JSON(payload)
	}

	if len(runs) == 0 {
		fmt.Fprintln(formatter.Writer, "no runs recorded")
		return nil
	}
	for _, run := range runs {
		fmt.Fprintf(formatter.Writer, "%s  %s  %-6s  tier %d  difficulty %d\n",
			run.ID, run.CreatedAt, runStatus(run), run.MaxTier, run.Difficulty)
	}
	return nil
}

// runPayload flattens a run for JSON output; summaries carry empty
// firing logs.
func runPayload(run store.Run) map[string]any {
	out := map[string]any{
		"id":          run.ID,
		"puzzle_hash": run.PuzzleHash,
		"solved":      run.Solved,
		"max_tier":    run.MaxTier,
		"difficulty":  run.Difficulty,
		"restarts":    run.Restarts,
		"created_at":  run.CreatedAt,
	}
	if run.PuzzleName != "" {
		out["puzzle_name"] = run.PuzzleName
	}
	if len(run.Firings) > 0 {
		firings := make([]map[string]any, len(run.Firings))
		for i, f := range run.Firings {
			firings[i] = map[string]any{
				"seq":       f.Seq,
				"technique": f.Technique,
				"tier":      f.Tier,
				"cells":     f.Cells,
			}
		}
		out["firings"] = firings
		out["final_grid"] = run.FinalGrid
	}
	if len(run.Probes) > 0 {
		probes := make([]map[string]any, len(run.Probes))
		for i, p := range run.Probes {
			probes[i] = map[string]any{
				"row":        p.Row,
				"col":        p.Col,
				"hypothesis": p.Hypothesis,
				"committed":  p.Committed,
				"reason":     p.Reason,
			}
		}
		out["probes"] = probes
	}
	return out
}

func runStatus(run store.Run) string {
	if run.Solved {
		return "solved"
	}
	return "stuck"
}
