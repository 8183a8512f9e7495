package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/roach88/bimaru/internal/solver"
)

// Run is one recorded solve trace.
type Run struct {
	ID         string
	PuzzleHash string
	PuzzleName string
	Solved     bool
	Validated  bool
	Valid      bool
	MaxTier    int
	Difficulty int
	Restarts   int
	FinalGrid  string
	CreatedAt  string
	Firings    []FiringRecord
	Probes     []ProbeRecord
}

// FiringRecord is one rule invocation in a run's firing log.
type FiringRecord struct {
	Seq       int
	Technique string
	Tier      int
	Cells     int
}

// ProbeRecord is one committed tier-5 conclusion.
type ProbeRecord struct {
	Seq        int
	Row, Col   int
	Hypothesis string
	Committed  string
	Technique  string
	Reason     string
	Detail     string
}

// NewRun flattens a solve result into a run record with a freshly
// minted UUID. The puzzle hash comes from the document fingerprint;
// pass an empty name when the document has none.
func NewRun(puzzleHash, puzzleName string, res solver.Result) Run {
	run := Run{
		ID:         uuid.NewString(),
		PuzzleHash: puzzleHash,
		PuzzleName: puzzleName,
		Solved:     res.Solved,
		Validated:  res.Validated,
		Valid:      res.Valid,
		MaxTier:    res.MaxTierRequired,
		Difficulty: res.DifficultyScore,
		Restarts:   res.Restarts,
		FinalGrid:  res.Board.Snapshot(),
	}
	for i, f := range res.Firings {
		run.Firings = append(run.Firings, FiringRecord{
			Seq:       i,
			Technique: f.Technique,
			Tier:      f.Tier,
			Cells:     len(f.Deductions),
		})
	}
	for i, f := range res.T5Detail {
		run.Probes = append(run.Probes, ProbeRecord{
			Seq:        i,
			Row:        f.Row,
			Col:        f.Col,
			Hypothesis: f.Hypothesis.String(),
			Committed:  f.Committed.String(),
			Technique:  f.Technique,
			Reason:     string(f.Reason),
			Detail:     f.Detail,
		})
	}
	return run
}

// WriteRun persists a run with its firing log and probe conclusions in
// a single transaction. Writing a run ID that already exists is a
// no-op for every table, so retries are safe.
func (s *Store) WriteRun(ctx context.Context, run Run) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO runs (id, puzzle_hash, puzzle_name, solved, validated, valid,
		                  max_tier, difficulty, restarts, final_grid)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`, run.ID, run.PuzzleHash, run.PuzzleName,
		boolInt(run.Solved), boolInt(run.Validated), boolInt(run.Valid),
		run.MaxTier, run.Difficulty, run.Restarts, run.FinalGrid)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	for _, f := range run.Firings {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO firings (run_id, seq, technique, tier, cells)
			VALUES (?, ?, ?, ?, ?)
			ON CONFLICT(run_id, seq) DO NOTHING
		`, run.ID, f.Seq, f.Technique, f.Tier, f.Cells)
		if err != nil {
			return fmt.Errorf("insert firing %d: %w", f.Seq, err)
		}
	}

	for _, p := range run.Probes {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO probes (run_id, seq, cell_row, cell_col, hypothesis,
			                    committed, technique, reason, detail)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT(run_id, seq) DO NOTHING
		`, run.ID, p.Seq, p.Row, p.Col, p.Hypothesis,
			p.Committed, p.Technique, p.Reason, p.Detail)
		if err != nil {
			return fmt.Errorf("insert probe %d: %w", p.Seq, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
