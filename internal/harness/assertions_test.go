package harness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/bimaru/internal/solver"
	"github.com/roach88/bimaru/internal/testutil"
)

func boolPtr(b bool) *bool { return &b }
func intPtr(i int) *int    { return &i }

// solvedResult produces a solved fixture for expectation checks.
func solvedResult(t *testing.T) solver.Result {
	t.Helper()
	b := testutil.MustPuzzle(t, `
		S~~
		~~~
		~~~
	`, []int{1})
	res := solver.New(b).Solve()
	require.True(t, res.Solved)
	return res
}

func TestCheckExpectationAllPass(t *testing.T) {
	res := solvedResult(t)

	failures := checkExpectation(Expectation{
		Solved:  boolPtr(true),
		Stuck:   boolPtr(false),
		Valid:   boolPtr(true),
		MaxTier: intPtr(2),
		Cells: []CellExpect{
			{Row: 0, Col: 0, State: "ship"},
			{Row: 1, Col: 1, State: "sea"},
		},
	}, res)

	assert.Empty(t, failures)
}

func TestCheckExpectationCollectsAllFailures(t *testing.T) {
	res := solvedResult(t)

	failures := checkExpectation(Expectation{
		Solved:  boolPtr(false),
		MaxTier: intPtr(5),
		Cells: []CellExpect{
			{Row: 0, Col: 0, State: "sea"},
		},
	}, res)

	// No short-circuiting: every mismatch is reported.
	require.Len(t, failures, 3)
	assert.Contains(t, failures[0], "solved")
	assert.Contains(t, failures[1], "max_tier")
	assert.Contains(t, failures[2], "cell (0,0)")
}

func TestCheckExpectationCellEdgeCases(t *testing.T) {
	res := solvedResult(t)

	failures := checkExpectation(Expectation{
		Cells: []CellExpect{
			{Row: 9, Col: 9, State: "sea"},
			{Row: 0, Col: 0, State: "lava"},
		},
	}, res)

	require.Len(t, failures, 2)
	assert.Contains(t, failures[0], "out of bounds")
	assert.Contains(t, failures[1], "cell (0,0)")
}

func TestCheckExpectationValidNeedsSolution(t *testing.T) {
	// Board built without a ground-truth grid.
	b := testutil.MustBoard(t, `
		...
		...
		...
	`, []int{1, 0, 0}, []int{1, 0, 0}, []int{1})
	res := solver.New(b).Solve()

	failures := checkExpectation(Expectation{Valid: boolPtr(true)}, res)
	require.Len(t, failures, 1)
	assert.Contains(t, failures[0], "no solution grid")
}
