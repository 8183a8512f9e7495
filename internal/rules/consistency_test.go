package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/bimaru/internal/board"
	"github.com/roach88/bimaru/internal/rules"
	"github.com/roach88/bimaru/internal/testutil"
)

func TestCheckConsistentPartialBoard(t *testing.T) {
	b := testutil.MustBoard(t, `
		S..
		...
		...
	`, []int{1, 1, 0}, []int{1, 1, 0}, []int{1, 1})

	v := rules.Check(b)
	assert.True(t, v.OK)
	assert.Equal(t, rules.ReasonNone, v.Reason)
}

func TestCheckCapacityOverflow(t *testing.T) {
	b := testutil.MustBoard(t, `
		SS.
	`, []int{1}, []int{1, 1, 0}, []int{2})

	v := rules.Check(b)
	require.False(t, v.OK)
	assert.Equal(t, rules.ReasonCapacity, v.Reason)
	assert.Contains(t, v.Detail, "row 0")
}

func TestCheckCapacityUnreachable(t *testing.T) {
	// Row 0 has two seas and one unknown; a clue of 2 is out of reach.
	b := testutil.MustBoard(t, `
		~~.
		...
	`, []int{2, 0}, []int{0, 0, 1}, []int{2})

	v := rules.Check(b)
	require.False(t, v.OK)
	assert.Equal(t, rules.ReasonCapacity, v.Reason)
}

func TestCheckDiagonalAdjacency(t *testing.T) {
	b := testutil.MustBoard(t, `
		S.
		.S
	`, []int{1, 1}, []int{1, 1}, []int{1, 1})

	v := rules.Check(b)
	require.False(t, v.OK)
	assert.Equal(t, rules.ReasonDiagonal, v.Reason)
}

func TestCheckHintShapeViolation(t *testing.T) {
	// A top end must continue downward; sea below it is impossible.
	b, err := board.New(3, 1, []int{1, 0, 0}, []int{1}, []int{1})
	require.NoError(t, err)
	require.NoError(t, b.SetHint(0, 0, board.Ship, board.ShapeTop))
	require.NoError(t, b.Set(1, 0, board.Sea))

	v := rules.Check(b)
	require.False(t, v.OK)
	assert.Equal(t, rules.ReasonHintShape, v.Reason)
}

func TestCheckHintShapeEdgeCountsAsSea(t *testing.T) {
	// A left end on the right edge has nowhere to continue.
	b, err := board.New(1, 2, []int{2}, []int{1, 1}, []int{2})
	require.NoError(t, err)
	require.NoError(t, b.SetHint(0, 1, board.Ship, board.ShapeLeft))

	v := rules.Check(b)
	require.False(t, v.OK)
	assert.Equal(t, rules.ReasonHintShape, v.Reason)
}

func TestCheckFleetOversizedShip(t *testing.T) {
	b := testutil.MustBoard(t, `
		SSS~
	`, []int{3}, []int{1, 1, 1, 0}, []int{2, 1})

	v := rules.Check(b)
	require.False(t, v.OK)
	assert.Equal(t, rules.ReasonFleet, v.Reason)
}

func TestCheckFleetTooManyOfALength(t *testing.T) {
	b := testutil.MustBoard(t, `
		SS~SS
	`, []int{4}, []int{1, 1, 0, 1, 1}, []int{2, 1, 1})

	v := rules.Check(b)
	require.False(t, v.OK)
	assert.Equal(t, rules.ReasonFleet, v.Reason)
}

func TestCheckCheapestReasonWins(t *testing.T) {
	// The board violates capacity and the diagonal rule at once;
	// capacity is checked first.
	b := testutil.MustBoard(t, `
		S.
		.S
	`, []int{0, 1}, []int{1, 1}, []int{1, 1})

	v := rules.Check(b)
	require.False(t, v.OK)
	assert.Equal(t, rules.ReasonCapacity, v.Reason)
}

func TestCheckDoesNotMutate(t *testing.T) {
	b := testutil.MustBoard(t, `
		S.
		..
	`, []int{1, 0}, []int{1, 0}, []int{1})

	before := b.Snapshot()
	rules.Check(b)
	assert.Equal(t, before, b.Snapshot())
}
