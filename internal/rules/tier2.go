package rules

import "github.com/roach88/bimaru/internal/board"

// Tier 2: line arithmetic across both axes of a cell.

// exactFit fills all unknowns of a line with ships when the line has
// exactly as many unknowns as ships still needed.
func exactFit(b *board.Board) []Deduction {
	var out []Deduction
	for _, l := range b.Lines() {
		ships, unknowns, _ := b.LineCounts(l)
		needed := b.Clue(l) - ships
		if needed <= 0 || unknowns != needed {
			continue
		}
		n := b.LineLen(l)
		for i := 0; i < n; i++ {
			r, c := b.LineCell(l, i)
			if b.StateAt(r, c) == board.Unknown {
				out = append(out, deduce(r, c, board.Ship, "T2.1", 2))
			}
		}
	}
	return out
}

// overflowPrevention marks a cell sea when either of its lines has
// already reached its clue. Overlaps with satisfiedClue on the line
// that is full; recorded as a distinct tier-2 technique so the
// difficulty metadata distinguishes the cross-axis reading.
func overflowPrevention(b *board.Board) []Deduction {
	var out []Deduction
	for r := 0; r < b.Rows(); r++ {
		rowShips, _, _ := b.LineCounts(board.Line{Axis: board.AxisRow, Index: r})
		rowFull := rowShips >= b.Clue(board.Line{Axis: board.AxisRow, Index: r})
		for c := 0; c < b.Cols(); c++ {
			if b.StateAt(r, c) != board.Unknown {
				continue
			}
			if rowFull {
				out = append(out, deduce(r, c, board.Sea, "T2.4", 2))
				continue
			}
			colShips, _, _ := b.LineCounts(board.Line{Axis: board.AxisCol, Index: c})
			if colShips >= b.Clue(board.Line{Axis: board.AxisCol, Index: c}) {
				out = append(out, deduce(r, c, board.Sea, "T2.4", 2))
			}
		}
	}
	return out
}
