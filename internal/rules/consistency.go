package rules

import (
	"fmt"

	"github.com/roach88/bimaru/internal/board"
)

// ContradictionReason categorizes why a board state is impossible.
type ContradictionReason string

const (
	ReasonNone      ContradictionReason = ""
	ReasonCapacity  ContradictionReason = "capacity"
	ReasonDiagonal  ContradictionReason = "diagonal"
	ReasonHintShape ContradictionReason = "hint_shape"
	ReasonFleet     ContradictionReason = "fleet"
)

// Verdict is the result of a consistency check.
type Verdict struct {
	OK     bool
	Reason ContradictionReason
	Detail string
}

func contradiction(reason ContradictionReason, format string, args ...any) Verdict {
	return Verdict{Reason: reason, Detail: fmt.Sprintf(format, args...)}
}

// Check reports whether a (possibly partial) board can still be
// completed, as far as the four cheap structural tests can tell. It is
// a pure predicate over the board: no mutation, no solution access.
//
// Tests run cheapest first and the first violation wins:
//
//  1. Capacity: a line's ship count must not exceed its clue, and
//     ships+unknowns must not fall below it.
//  2. Diagonal: no two ship cells touch diagonally.
//  3. Hint shape: a resolved neighbor of a shaped ship hint must match
//     the shape's forced state (the grid edge counts as resolved sea).
//  4. Fleet: no completed ship is longer than the largest fleet ship,
//     and no length is completed more often than the fleet allows.
//
// Invoked standalone to sanity-check externally supplied hints and
// solutions, and by the contradiction engine after every hypothesis
// closure.
func Check(b *board.Board) Verdict {
	// Capacity.
	for _, l := range b.Lines() {
		ships, unknowns, _ := b.LineCounts(l)
		clue := b.Clue(l)
		if ships > clue {
			return contradiction(ReasonCapacity, "%s has %d ships, clue is %d", l, ships, clue)
		}
		if ships+unknowns < clue {
			return contradiction(ReasonCapacity, "%s can reach at most %d ships, clue is %d", l, ships+unknowns, clue)
		}
	}

	// Diagonal adjacency.
	for r := 0; r < b.Rows(); r++ {
		for c := 0; c < b.Cols(); c++ {
			if b.StateAt(r, c) != board.Ship {
				continue
			}
			for _, off := range board.Diagonal {
				nr, nc := r+off.DR, c+off.DC
				if b.InBounds(nr, nc) && b.StateAt(nr, nc) == board.Ship {
					return contradiction(ReasonDiagonal, "ships at (%d,%d) and (%d,%d) touch diagonally", r, c, nr, nc)
				}
			}
		}
	}

	// Hint shapes.
	for r := 0; r < b.Rows(); r++ {
		for c := 0; c < b.Cols(); c++ {
			cell := b.At(r, c)
			if !cell.IsHint || cell.State != board.Ship || cell.Shape == board.ShapeNone {
				continue
			}
			for _, f := range cell.Shape.Forced() {
				nr, nc := r+f.Off.DR, c+f.Off.DC
				got := b.StateAt(nr, nc)
				if got == board.Unknown {
					continue
				}
				if got != f.State {
					return contradiction(ReasonHintShape,
						"hint %s at (%d,%d) needs %s at (%d,%d), found %s",
						cell.Shape, r, c, f.State, nr, nc, got)
				}
			}
		}
	}

	// Fleet composition.
	fleetCounts := map[int]int{}
	maxFleet := 0
	for _, l := range b.Fleet() {
		fleetCounts[l]++
		if l > maxFleet {
			maxFleet = l
		}
	}
	placedCounts := map[int]int{}
	for _, l := range b.CompletedShips() {
		if l > maxFleet {
			return contradiction(ReasonFleet, "completed ship of length %d exceeds largest fleet ship %d", l, maxFleet)
		}
		placedCounts[l]++
	}
	// Deterministic order: walk lengths ascending rather than ranging
	// over the map.
	for l := 1; l <= maxFleet; l++ {
		if placedCounts[l] > fleetCounts[l] {
			return contradiction(ReasonFleet, "%d completed ships of length %d, fleet allows %d", placedCounts[l], l, fleetCounts[l])
		}
	}

	return Verdict{OK: true}
}
