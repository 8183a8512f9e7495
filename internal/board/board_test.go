package board_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/bimaru/internal/board"
	"github.com/roach88/bimaru/internal/testutil"
)

// =============================================================================
// Construction
// =============================================================================

func TestNewValidConfiguration(t *testing.T) {
	b, err := board.New(3, 4, []int{1, 0, 1}, []int{1, 0, 1, 0}, []int{2})
	require.NoError(t, err)
	assert.Equal(t, 3, b.Rows())
	assert.Equal(t, 4, b.Cols())
	assert.Equal(t, []int{2}, b.Fleet())
	assert.Equal(t, 12, b.CountUnknown())
}

func TestNewStructuralFaults(t *testing.T) {
	tests := []struct {
		name      string
		rows, cols int
		rowCounts []int
		colCounts []int
		fleet     []int
		code      board.ConfigErrorCode
	}{
		{"zero rows", 0, 3, nil, []int{0, 0, 0}, []int{1}, board.ErrCodeDimension},
		{"negative cols", 3, -1, []int{0, 0, 0}, nil, []int{1}, board.ErrCodeDimension},
		{"row clue array too short", 3, 3, []int{0, 0}, []int{0, 0, 0}, []int{1}, board.ErrCodeClueLength},
		{"col clue array too long", 3, 3, []int{0, 0, 0}, []int{0, 0, 0, 0}, []int{1}, board.ErrCodeClueLength},
		{"row clue above line length", 3, 3, []int{4, 0, 0}, []int{0, 0, 0}, []int{1}, board.ErrCodeClueRange},
		{"negative col clue", 3, 3, []int{0, 0, 0}, []int{-1, 0, 0}, []int{1}, board.ErrCodeClueRange},
		{"empty fleet", 3, 3, []int{0, 0, 0}, []int{0, 0, 0}, nil, board.ErrCodeFleet},
		{"zero-length ship", 3, 3, []int{0, 0, 0}, []int{0, 0, 0}, []int{0}, board.ErrCodeFleet},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := board.New(tt.rows, tt.cols, tt.rowCounts, tt.colCounts, tt.fleet)
			require.Error(t, err)
			require.True(t, board.IsConfigError(err))
			var ce *board.ConfigError
			require.True(t, errors.As(err, &ce))
			assert.Equal(t, tt.code, ce.Code)
		})
	}
}

func TestNewAcceptsMismatchedTotals(t *testing.T) {
	// Unsatisfiable totals are a solve outcome, not a construction
	// fault. VerifyTotals is the opt-in front door check.
	b, err := board.New(2, 2, []int{1, 0}, []int{0, 0}, []int{1})
	require.NoError(t, err)

	err = b.VerifyTotals()
	require.Error(t, err)
	var ce *board.ConfigError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, board.ErrCodeTotals, ce.Code)
}

func TestVerifyTotalsAgainstFleet(t *testing.T) {
	// An oversized fleet ship is accepted at construction; the totals
	// mismatch is what VerifyTotals reports.
	b, err := board.New(2, 2, []int{1, 1}, []int{1, 1}, []int{3})
	require.NoError(t, err)
	require.Error(t, b.VerifyTotals())

	b, err = board.New(2, 2, []int{1, 1}, []int{1, 1}, []int{2})
	require.NoError(t, err)
	require.NoError(t, b.VerifyTotals())
}

// =============================================================================
// Cell writes
// =============================================================================

func TestSetIsMonotonic(t *testing.T) {
	b, err := board.New(2, 2, []int{1, 0}, []int{1, 0}, []int{1})
	require.NoError(t, err)

	require.NoError(t, b.Set(0, 0, board.Ship))
	assert.Equal(t, board.Ship, b.StateAt(0, 0))

	// Resolved cells are immutable, even to the same state.
	assert.ErrorIs(t, b.Set(0, 0, board.Ship), board.ErrIllegalWrite)
	assert.ErrorIs(t, b.Set(0, 0, board.Sea), board.ErrIllegalWrite)

	// Unknown is not a writable state.
	assert.ErrorIs(t, b.Set(0, 1, board.Unknown), board.ErrIllegalWrite)

	// Out-of-bounds writes are caller faults.
	assert.True(t, board.IsConfigError(b.Set(5, 5, board.Sea)))
}

func TestSetHint(t *testing.T) {
	b, err := board.New(2, 2, []int{1, 0}, []int{1, 0}, []int{1})
	require.NoError(t, err)

	require.NoError(t, b.SetHint(0, 0, board.Ship, board.ShapeSub))
	cell := b.At(0, 0)
	assert.True(t, cell.IsHint)
	assert.Equal(t, board.ShapeSub, cell.Shape)

	// Duplicate hints, unresolved states, and shapes on sea hints are
	// all construction faults.
	assert.True(t, board.IsConfigError(b.SetHint(0, 0, board.Sea, board.ShapeNone)))
	assert.True(t, board.IsConfigError(b.SetHint(0, 1, board.Unknown, board.ShapeNone)))
	assert.True(t, board.IsConfigError(b.SetHint(0, 1, board.Sea, board.ShapeTop)))
	assert.True(t, board.IsConfigError(b.SetHint(9, 0, board.Sea, board.ShapeNone)))
}

func TestStateAtEdgeIsSea(t *testing.T) {
	b, err := board.New(2, 2, []int{0, 0}, []int{0, 0}, []int{1})
	require.NoError(t, err)

	assert.Equal(t, board.Sea, b.StateAt(-1, 0))
	assert.Equal(t, board.Sea, b.StateAt(0, -1))
	assert.Equal(t, board.Sea, b.StateAt(2, 0))
	assert.Equal(t, board.Unknown, b.StateAt(1, 1))
}

// =============================================================================
// Solution grids
// =============================================================================

func TestAttachSolutionAndMatch(t *testing.T) {
	b, err := board.New(2, 2, []int{1, 0}, []int{1, 0}, []int{1})
	require.NoError(t, err)
	require.False(t, b.HasSolution())
	assert.False(t, b.MatchesSolution())

	grid := testutil.SolutionGrid(t, `
		S~
		~~
	`)
	require.NoError(t, b.AttachSolution(grid))
	require.True(t, b.HasSolution())
	assert.Equal(t, board.Ship, b.SolutionAt(0, 0))
	assert.Equal(t, board.Sea, b.SolutionAt(-1, 0))

	assert.False(t, b.MatchesSolution())
	require.NoError(t, b.Set(0, 0, board.Ship))
	require.NoError(t, b.Set(0, 1, board.Sea))
	require.NoError(t, b.Set(1, 0, board.Sea))
	require.NoError(t, b.Set(1, 1, board.Sea))
	assert.True(t, b.MatchesSolution())
}

func TestAttachSolutionRejectsBadGrids(t *testing.T) {
	b, err := board.New(2, 2, []int{1, 0}, []int{1, 0}, []int{1})
	require.NoError(t, err)

	assert.Error(t, b.AttachSolution([][]board.CellState{{board.Ship, board.Sea}}))
	assert.Error(t, b.AttachSolution([][]board.CellState{
		{board.Ship, board.Sea},
		{board.Sea, board.Unknown},
	}))
}

// =============================================================================
// Clone and snapshot
// =============================================================================

func TestCloneIsIndependent(t *testing.T) {
	b := testutil.MustBoard(t, `
		H.
		..
	`, []int{1, 1}, []int{2, 0}, []int{2})

	clone := b.Clone()
	require.NoError(t, clone.Set(1, 0, board.Ship))

	assert.Equal(t, board.Unknown, b.StateAt(1, 0))
	assert.Equal(t, board.Ship, clone.StateAt(1, 0))
	assert.True(t, clone.At(0, 0).IsHint)
}

func TestSnapshot(t *testing.T) {
	b := testutil.MustBoard(t, `
		HS.
		h~.
	`, []int{2, 0}, []int{1, 1, 0}, []int{2})

	assert.Equal(t, "HS.\nh~.", b.Snapshot())
}

// =============================================================================
// Lines, runs, segments
// =============================================================================

func TestLinesFixedOrder(t *testing.T) {
	b, err := board.New(2, 3, []int{0, 0}, []int{0, 0, 0}, []int{1})
	require.NoError(t, err)

	lines := b.Lines()
	require.Len(t, lines, 5)
	assert.Equal(t, board.Line{Axis: board.AxisRow, Index: 0}, lines[0])
	assert.Equal(t, board.Line{Axis: board.AxisRow, Index: 1}, lines[1])
	assert.Equal(t, board.Line{Axis: board.AxisCol, Index: 0}, lines[2])
	assert.Equal(t, "col 2", lines[4].String())
	assert.Equal(t, 3, b.LineLen(lines[0]))
	assert.Equal(t, 2, b.LineLen(lines[2]))
}

func TestSegments(t *testing.T) {
	b := testutil.MustBoard(t, `
		.S.~.
	`, []int{2}, []int{0, 1, 0, 0, 0}, []int{2})

	segs := b.Segments(board.Line{Axis: board.AxisRow, Index: 0})
	require.Len(t, segs, 3)

	// Leading segment is edge-bounded before, ship-bounded after.
	assert.Equal(t, 0, segs[0].Start)
	assert.Equal(t, 0, segs[0].End)
	assert.False(t, segs[0].ShipBefore)
	assert.True(t, segs[0].ShipAfter)

	assert.True(t, segs[1].ShipBefore)
	assert.False(t, segs[1].ShipAfter)

	assert.Equal(t, 4, segs[2].Start)
	assert.Equal(t, 1, segs[2].Len())
	assert.False(t, segs[2].ShipBefore)
	assert.False(t, segs[2].ShipAfter)
}

func TestRuns(t *testing.T) {
	b := testutil.MustBoard(t, `
		SS.S~
	`, []int{3}, []int{1, 1, 0, 1, 0}, []int{2, 1})

	runs := b.Runs(board.Line{Axis: board.AxisRow, Index: 0})
	require.Len(t, runs, 2)

	assert.Equal(t, 2, runs[0].Len())
	assert.False(t, runs[0].OpenBefore)
	assert.True(t, runs[0].OpenAfter)

	assert.Equal(t, 1, runs[1].Len())
	assert.True(t, runs[1].OpenBefore)
	assert.False(t, runs[1].OpenAfter)
}

// =============================================================================
// Fleet bookkeeping
// =============================================================================

func TestCompletedShipsAndRemainingFleet(t *testing.T) {
	// One completed horizontal destroyer, one completed vertical
	// destroyer, one submarine, and one still-open run.
	b := testutil.MustBoard(t, `
		SS~S~
		~~~S~
		S~~~.
	`, []int{3, 1, 1}, []int{2, 1, 0, 2, 0}, []int{2, 2, 1, 1})

	completed := b.CompletedShips()
	assert.ElementsMatch(t, []int{2, 2, 1}, completed)

	// (2,0) is sealed on all sides, so it counts as the submarine; only
	// the second submarine is still unplaced.
	assert.Equal(t, []int{1}, b.RemainingFleet())
	assert.Equal(t, 1, b.LargestRemaining())
	assert.Equal(t, 1, b.SmallestRemaining())
}

func TestVerticalShipMiddleIsNotASubmarine(t *testing.T) {
	b := testutil.MustBoard(t, `
		S~
		S~
		S~
	`, []int{1, 1, 1}, []int{3, 0}, []int{3})

	assert.ElementsMatch(t, []int{3}, b.CompletedShips())
	assert.Empty(t, b.RemainingFleet())
	assert.Equal(t, 0, b.LargestRemaining())
}
