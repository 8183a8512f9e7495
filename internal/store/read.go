package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// ErrNotFound is returned when a run ID does not exist.
var ErrNotFound = errors.New("run not found")

// ReadRun loads a run with its full firing log and probe conclusions.
func (s *Store) ReadRun(ctx context.Context, id string) (Run, error) {
	var run Run
	var solved, validated, valid int
	err := s.db.QueryRowContext(ctx, `
		SELECT id, puzzle_hash, puzzle_name, solved, validated, valid,
		       max_tier, difficulty, restarts, final_grid, created_at
		FROM runs WHERE id = ?
	`, id).Scan(&run.ID, &run.PuzzleHash, &run.PuzzleName,
		&solved, &validated, &valid,
		&run.MaxTier, &run.Difficulty, &run.Restarts,
		&run.FinalGrid, &run.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, fmt.Errorf("run %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return Run{}, fmt.Errorf("query run: %w", err)
	}
	run.Solved = solved != 0
	run.Validated = validated != 0
	run.Valid = valid != 0

	run.Firings, err = s.readFirings(ctx, id)
	if err != nil {
		return Run{}, err
	}
	run.Probes, err = s.readProbes(ctx, id)
	if err != nil {
		return Run{}, err
	}
	return run, nil
}

// ListRuns returns summary rows (no firing logs) for every run of the
// given puzzle fingerprint, oldest first. An empty hash lists all
// runs.
func (s *Store) ListRuns(ctx context.Context, puzzleHash string) ([]Run, error) {
	query := `
		SELECT id, puzzle_hash, puzzle_name, solved, validated, valid,
		       max_tier, difficulty, restarts, final_grid, created_at
		FROM runs
	`
	var args []any
	if puzzleHash != "" {
		query += " WHERE puzzle_hash = ?"
		args = append(args, puzzleHash)
	}
	query += " ORDER BY created_at ASC, id COLLATE BINARY ASC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var out []Run
	for rows.Next() {
		var run Run
		var solved, validated, valid int
		if err := rows.Scan(&run.ID, &run.PuzzleHash, &run.PuzzleName,
			&solved, &validated, &valid,
			&run.MaxTier, &run.Difficulty, &run.Restarts,
			&run.FinalGrid, &run.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		run.Solved = solved != 0
		run.Validated = validated != 0
		run.Valid = valid != 0
		out = append(out, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return out, nil
}

func (s *Store) readFirings(ctx context.Context, runID string) ([]FiringRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT seq, technique, tier, cells
		FROM firings WHERE run_id = ?
		ORDER BY seq ASC
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("query firings: %w", err)
	}
	defer rows.Close()

	var out []FiringRecord
	for rows.Next() {
		var f FiringRecord
		if err := rows.Scan(&f.Seq, &f.Technique, &f.Tier, &f.Cells); err != nil {
			return nil, fmt.Errorf("scan firing: %w", err)
		}
		out = append(out, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate firings: %w", err)
	}
	return out, nil
}

func (s *Store) readProbes(ctx context.Context, runID string) ([]ProbeRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT seq, cell_row, cell_col, hypothesis, committed, technique, reason, detail
		FROM probes WHERE run_id = ?
		ORDER BY seq ASC
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("query probes: %w", err)
	}
	defer rows.Close()

	var out []ProbeRecord
	for rows.Next() {
		var p ProbeRecord
		if err := rows.Scan(&p.Seq, &p.Row, &p.Col, &p.Hypothesis,
			&p.Committed, &p.Technique, &p.Reason, &p.Detail); err != nil {
			return nil, fmt.Errorf("scan probe: %w", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate probes: %w", err)
	}
	return out, nil
}
