package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/bimaru/internal/puzzle"
	"github.com/roach88/bimaru/internal/solver"
	"github.com/roach88/bimaru/internal/store"
)

// SolveOptions holds flags for the solve command.
type SolveOptions struct {
	*RootOptions
	Database string // optional trace store path
}

// SolveReport is the solve command's output payload.
type SolveReport struct {
	Puzzle     string          `json:"puzzle,omitempty"`
	PuzzleHash string          `json:"puzzle_hash"`
	Solved     bool            `json:"solved"`
	Stuck      bool            `json:"stuck"`
	Validated  bool            `json:"validated"`
	Valid      bool            `json:"valid"`
	MaxTier    int             `json:"max_tier"`
	Difficulty int             `json:"difficulty"`
	Restarts   int             `json:"restarts"`
	Grid       []string        `json:"grid"`
	Firings    []FiringReport  `json:"firings"`
	Probes     []ProbeReport   `json:"probes,omitempty"`
	RunID      string          `json:"run_id,omitempty"`
}

// FiringReport is one firing log entry.
type FiringReport struct {
	Seq       int    `json:"seq"`
	Technique string `json:"technique"`
	Tier      int    `json:"tier"`
	Cells     int    `json:"cells"`
}

// ProbeReport is one tier-5 conclusion.
type ProbeReport struct {
	Row        int    `json:"row"`
	Col        int    `json:"col"`
	Hypothesis string `json:"hypothesis"`
	Committed  string `json:"committed"`
	Reason     string `json:"reason"`
	Detail     string `json:"detail,omitempty"`
}

// NewSolveCommand creates the solve command.
func NewSolveCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SolveOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "solve <puzzle-file>",
		Short: "Solve a puzzle by pure deduction",
		Long: `Solve a puzzle document (JSON or YAML) by pure deduction.

The solver applies rule tiers in escalation order and never guesses:
a puzzle either resolves completely or the command reports where it
got stuck. With --db, the run is recorded in a trace store for later
inspection with the trace command.

Exit codes: 0 solved, 1 stuck or invalid, 2 command error.

Examples:
  bimaru solve puzzle.yaml
  bimaru solve puzzle.yaml --db traces.db
  bimaru solve puzzle.yaml --format json -v`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "record the run in this trace store")

	return cmd
}

func runSolve(opts *SolveOptions, path string, cmd *cobra.Command) error {
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

	hash, err := doc.Fingerprint()
	if err != nil {
		formatter.Error(ErrCodeLoad, err.Error(), nil)
		return WrapExitError(ExitCommandError, "fingerprint puzzle", err)
	}
	formatter.VerboseLog("puzzle %s fingerprint %s", path, hash)

	b, err := doc.Build()
	if err != nil {
		formatter.Error(ErrCodeConfig, err.Error(), nil)
		return WrapExitError(ExitCommandError, "build board", err)
	}

	// A totals mismatch is not a construction fault; the solve below
	// will end stuck. Surface it early for the operator.
	if err := b.VerifyTotals(); err != nil {
		formatter.VerboseLog("warning: %v", err)
	}

	res := solver.New(b).Solve()

	report := buildSolveReport(path, hash, res)
	if opts.Database != "" {
		runID, err := recordRun(cmd.Context(), opts.Database, hash, doc.Name, res)
		if err != nil {
			formatter.Error(ErrCodeStore, err.Error(), nil)
			return WrapExitError(ExitCommandError, "record run", err)
		}
		report.RunID = runID
		formatter.VerboseLog("recorded run %s in %s", runID, opts.Database)
	}

	if opts.Format == "json" {
		if err := formatter.JSON(report); err != nil {
			return err
		}
	} else {
		renderSolveText(formatter, report)
	}

	if !res.Solved {
		return NewExitError(ExitFailure, "puzzle not solved")
	}
	if res.Validated && !res.Valid {
		return NewExitError(ExitFailure, "solution disagrees with ground truth")
	}
	return nil
}

// recordRun persists the solve in the trace store.
func recordRun(ctx context.Context, dbPath, hash, name string, res solver.Result) (string, error) {
	s, err := store.Open(dbPath)
	if err != nil {
		return "", err
	}
	defer s.Close()

	run := store.NewRun(hash, name, res)
	if err := s.WriteRun(ctx, run); err != nil {
		return "", err
	}
	return run.ID, nil
}

func buildSolveReport(path, hash string, res solver.Result) SolveReport {
	report := SolveReport{
		Puzzle:     path,
		PuzzleHash: hash,
		Solved:     res.Solved,
		Stuck:      res.Stuck,
		Validated:  res.Validated,
		Valid:      res.Valid,
		MaxTier:    res.MaxTierRequired,
		Difficulty: res.DifficultyScore,
		Restarts:   res.Restarts,
		Grid:       strings.Split(res.Board.Snapshot(), "\n"),
	}
	for i, f := range res.Firings {
		report.Firings = append(report.Firings, FiringReport{
			Seq:       i,
			Technique: f.Technique,
			Tier:      f.Tier,
			Cells:     len(f.Deductions),
		})
	}
	for _, p := range res.T5Detail {
		report.Probes = append(report.Probes, ProbeReport{
			Row:        p.Row,
			Col:        p.Col,
			Hypothesis: p.Hypothesis.String(),
			Committed:  p.Committed.String(),
			Reason:     string(p.Reason),
			Detail:     p.Detail,
		})
	}
	return report
}

func renderSolveText(f *OutputFormatter, report SolveReport) {
	for _, line := range report.Grid {
		fmt.Fprintln(f.Writer, line)
	}
	fmt.Fprintln(f.Writer)

	status := "stuck"
	if report.Solved {
		status = "solved"
	}
	fmt.Fprintf(f.Writer, "Status:     %s\n", status)
	if report.Validated {
		fmt.Fprintf(f.Writer, "Validated:  matches ground truth = %v\n", report.Valid)
	}
	fmt.Fprintf(f.Writer, "Max tier:   %d\n", report.MaxTier)
	fmt.Fprintf(f.Writer, "Difficulty: %d\n", report.Difficulty)
	fmt.Fprintf(f.Writer, "Firings:    %d\n", len(report.Firings))
	if report.RunID != "" {
		fmt.Fprintf(f.Writer, "Run:        %s\n", report.RunID)
	}

	if f.Verbose {
		fmt.Fprintln(f.Writer)
		for _, fr := range report.Firings {
			fmt.Fprintf(f.Writer, "  %3d  %-5s tier %d  %d cell(s)\n", fr.Seq, fr.Technique, fr.Tier, fr.Cells)
		}
		for _, p := range report.Probes {
			fmt.Fprintf(f.Writer, "  probe (%d,%d): %s refuted (%s), committed %s\n",
				p.Row, p.Col, p.Hypothesis, p.Reason, p.Committed)
		}
	}
}
