// Package board implements the bimaru board model: an R×C grid of
// cells, per-line ship-cell clues, and a fleet of ship lengths.
//
// The board is the single piece of shared mutable state in a solve.
// All mutation goes through Set, which enforces the monotonic
// transition rule (Unknown → Ship or Unknown → Sea, nothing else).
// Everything derived — line counts, runs, segments, remaining fleet —
// is recomputed on demand from cell states, never cached, so it can
// never go stale after an assignment.
//
// Cells are backed by a flat row-major slice so Clone is a bulk copy.
// Hypothesis testing clones the board for every single hypothesis;
// this is the hot path of a solve.
package board

import "strings"

// Cell is a single grid cell.
type Cell struct {
	State CellState

	// IsHint marks cells fixed by the puzzle author. Hint cells are
	// resolved at construction and immutable input thereafter.
	IsHint bool

	// Shape is the hint's part-of-ship tag (ShapeNone when untagged).
	// Only ship hints carry shapes.
	Shape HintShape

	// Solution is the ground-truth state, Unknown when none was
	// supplied. Read only by external validation, never by rules.
	Solution CellState
}

// Board is an R×C grid with per-line clues and a fleet.
type Board struct {
	rows, cols int
	cells      []Cell // row-major, index r*cols+c
	rowCounts  []int
	colCounts  []int
	fleet      []int

	solutionKnown bool
}

// New constructs an empty board and validates its configuration.
// Structural faults (mismatched clue lengths, out-of-range clues,
// broken fleet) are returned as *ConfigError before any rule can run.
//
// Totals mismatches (row sum vs col sum vs fleet sum) are deliberately
// NOT rejected here: a well-formed but unsatisfiable puzzle must reach
// the engine and terminate stuck, not crash the constructor. Use
// VerifyTotals to reject such inputs up front.
func New(rows, cols int, rowCounts, colCounts, fleet []int) (*Board, error) {
	if rows <= 0 || cols <= 0 {
		return nil, configErr(ErrCodeDimension, "grid must be at least 1x1, got %dx%d", rows, cols)
	}
	if len(rowCounts) != rows {
		return nil, configErr(ErrCodeClueLength, "row clue count %d does not match %d rows", len(rowCounts), rows)
	}
	if len(colCounts) != cols {
		return nil, configErr(ErrCodeClueLength, "col clue count %d does not match %d cols", len(colCounts), cols)
	}
	for r, n := range rowCounts {
		if n < 0 || n > cols {
			return nil, configErrAt(ErrCodeClueRange, r, -1, "row clue %d outside [0,%d]", n, cols)
		}
	}
	for c, n := range colCounts {
		if n < 0 || n > rows {
			return nil, configErrAt(ErrCodeClueRange, -1, c, "col clue %d outside [0,%d]", n, rows)
		}
	}
	if len(fleet) == 0 {
		return nil, configErr(ErrCodeFleet, "fleet must be explicit and non-empty")
	}
	// A fleet ship longer than either grid dimension is unsatisfiable,
	// not malformed: the solve terminates stuck, the same as any other
	// impossible-but-well-formed input.
	for _, l := range fleet {
		if l <= 0 {
			return nil, configErr(ErrCodeFleet, "ship length %d must be positive", l)
		}
	}

	b := &Board{
		rows:      rows,
		cols:      cols,
		cells:     make([]Cell, rows*cols),
		rowCounts: append([]int(nil), rowCounts...),
		colCounts: append([]int(nil), colCounts...),
		fleet:     append([]int(nil), fleet...),
	}
	return b, nil
}

// VerifyTotals checks the clue/fleet sum invariant
// sum(rowCounts) == sum(colCounts) == sum(fleet). Front-ends that want
// to reject unsatisfiable totals before solving call this; the engine
// itself does not require it.
func (b *Board) VerifyTotals() error {
	rowSum, colSum, fleetSum := 0, 0, 0
	for _, n := range b.rowCounts {
		rowSum += n
	}
	for _, n := range b.colCounts {
		colSum += n
	}
	for _, l := range b.fleet {
		fleetSum += l
	}
	if rowSum != colSum {
		return configErr(ErrCodeTotals, "row clues sum to %d but col clues sum to %d", rowSum, colSum)
	}
	if rowSum != fleetSum {
		return configErr(ErrCodeTotals, "clues sum to %d but fleet sums to %d", rowSum, fleetSum)
	}
	return nil
}

// Rows returns the number of rows.
func (b *Board) Rows() int { return b.rows }

// Cols returns the number of columns.
func (b *Board) Cols() int { return b.cols }

// Fleet returns a copy of the fleet multiset as given.
func (b *Board) Fleet() []int { return append([]int(nil), b.fleet...) }

// InBounds reports whether (r, c) lies on the grid.
func (b *Board) InBounds(r, c int) bool {
	return r >= 0 && r < b.rows && c >= 0 && c < b.cols
}

// At returns the cell at (r, c). Panics if out of bounds; callers use
// StateAt when they want edge-as-sea semantics.
func (b *Board) At(r, c int) Cell {
	return b.cells[r*b.cols+c]
}

// StateAt returns the state at (r, c), treating everything outside the
// grid as Sea. This is the edge convention all rules rely on.
func (b *Board) StateAt(r, c int) CellState {
	if !b.InBounds(r, c) {
		return Sea
	}
	return b.cells[r*b.cols+c].State
}

// Set resolves the cell at (r, c). The only legal transition is
// Unknown → Ship/Sea; anything else returns ErrIllegalWrite. Hint
// cells are resolved at construction, so they are covered by the same
// rule.
func (b *Board) Set(r, c int, s CellState) error {
	if !b.InBounds(r, c) {
		return configErrAt(ErrCodeHintIndex, r, c, "cell outside %dx%d grid", b.rows, b.cols)
	}
	if s != Ship && s != Sea {
		return ErrIllegalWrite
	}
	cell := &b.cells[r*b.cols+c]
	if cell.State != Unknown {
		return ErrIllegalWrite
	}
	cell.State = s
	return nil
}

// SetHint fixes a hint cell during board construction. The state must
// be resolved (Ship or Sea) and shapes may only accompany ship hints.
func (b *Board) SetHint(r, c int, s CellState, shape HintShape) error {
	if !b.InBounds(r, c) {
		return configErrAt(ErrCodeHintIndex, r, c, "hint outside %dx%d grid", b.rows, b.cols)
	}
	if s != Ship && s != Sea {
		return configErrAt(ErrCodeHintState, r, c, "hint state must be ship or sea")
	}
	if shape != ShapeNone && s != Ship {
		return configErrAt(ErrCodeHintState, r, c, "shape %s on non-ship hint", shape)
	}
	cell := &b.cells[r*b.cols+c]
	if cell.State != Unknown {
		return configErrAt(ErrCodeHintState, r, c, "duplicate hint")
	}
	cell.State = s
	cell.IsHint = true
	cell.Shape = shape
	return nil
}

// AttachSolution attaches a full ground-truth grid. Every cell must be
// resolved. The solution is consulted only by MatchesSolution, never
// by any deduction rule.
func (b *Board) AttachSolution(grid [][]CellState) error {
	if len(grid) != b.rows {
		return configErr(ErrCodeClueLength, "solution has %d rows, want %d", len(grid), b.rows)
	}
	for r, row := range grid {
		if len(row) != b.cols {
			return configErrAt(ErrCodeClueLength, r, -1, "solution row has %d cells, want %d", len(row), b.cols)
		}
		for c, s := range row {
			if s != Ship && s != Sea {
				return configErrAt(ErrCodeHintState, r, c, "solution cell must be resolved")
			}
		}
	}
	for r := 0; r < b.rows; r++ {
		for c := 0; c < b.cols; c++ {
			b.cells[r*b.cols+c].Solution = grid[r][c]
		}
	}
	b.solutionKnown = true
	return nil
}

// HasSolution reports whether a ground-truth grid was attached.
func (b *Board) HasSolution() bool { return b.solutionKnown }

// MatchesSolution reports whether every cell matches the attached
// ground truth. False when no solution is attached.
func (b *Board) MatchesSolution() bool {
	if !b.solutionKnown {
		return false
	}
	for i := range b.cells {
		if b.cells[i].State != b.cells[i].Solution {
			return false
		}
	}
	return true
}

// SolutionAt returns the ground-truth state at (r, c), treating
// out-of-board as Sea. Unknown when no solution is attached.
func (b *Board) SolutionAt(r, c int) CellState {
	if !b.InBounds(r, c) {
		return Sea
	}
	return b.cells[r*b.cols+c].Solution
}

// CountUnknown returns the number of unresolved cells. Every committed
// assignment strictly decreases this, which is what bounds the solve
// loop.
func (b *Board) CountUnknown() int {
	n := 0
	for i := range b.cells {
		if b.cells[i].State == Unknown {
			n++
		}
	}
	return n
}

// Clone returns a full structural copy sharing no storage with the
// receiver. O(R·C) bulk copy of the flat cell slice.
func (b *Board) Clone() *Board {
	out := &Board{
		rows:          b.rows,
		cols:          b.cols,
		cells:         make([]Cell, len(b.cells)),
		rowCounts:     append([]int(nil), b.rowCounts...),
		colCounts:     append([]int(nil), b.colCounts...),
		fleet:         append([]int(nil), b.fleet...),
		solutionKnown: b.solutionKnown,
	}
	copy(out.cells, b.cells)
	return out
}

// Snapshot renders the grid as one line per row: 'H' ship hint,
// 'h' sea hint, 'S' ship, '~' sea, '.' unknown. Used for persistence
// and diagnostics; the format is stable.
func (b *Board) Snapshot() string {
	var sb strings.Builder
	sb.Grow((b.cols + 1) * b.rows)
	for r := 0; r < b.rows; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := 0; c < b.cols; c++ {
			cell := b.cells[r*b.cols+c]
			switch {
			case cell.IsHint && cell.State == Ship:
				sb.WriteByte('H')
			case cell.IsHint:
				sb.WriteByte('h')
			case cell.State == Ship:
				sb.WriteByte('S')
			case cell.State == Sea:
				sb.WriteByte('~')
			default:
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}
