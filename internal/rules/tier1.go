package rules

import "github.com/roach88/bimaru/internal/board"

// Tier 1: direct consequences of a single clue, cell, or hint.

// zeroClue fills lines whose clue is zero with sea.
func zeroClue(b *board.Board) []Deduction {
	var out []Deduction
	for _, l := range b.Lines() {
		if b.Clue(l) != 0 {
			continue
		}
		n := b.LineLen(l)
		for i := 0; i < n; i++ {
			r, c := b.LineCell(l, i)
			if b.StateAt(r, c) == board.Unknown {
				out = append(out, deduce(r, c, board.Sea, "T1.1", 1))
			}
		}
	}
	return out
}

// satisfiedClue fills the rest of a line with sea once its ship count
// has reached the clue.
func satisfiedClue(b *board.Board) []Deduction {
	var out []Deduction
	for _, l := range b.Lines() {
		ships, unknowns, _ := b.LineCounts(l)
		if ships != b.Clue(l) || unknowns == 0 {
			continue
		}
		n := b.LineLen(l)
		for i := 0; i < n; i++ {
			r, c := b.LineCell(l, i)
			if b.StateAt(r, c) == board.Unknown {
				out = append(out, deduce(r, c, board.Sea, "T1.2", 1))
			}
		}
	}
	return out
}

// diagonalWater marks the diagonal neighbors of every ship cell as
// sea; ships never touch diagonally.
func diagonalWater(b *board.Board) []Deduction {
	var out []Deduction
	seen := map[int]bool{}
	for r := 0; r < b.Rows(); r++ {
		for c := 0; c < b.Cols(); c++ {
			if b.StateAt(r, c) != board.Ship {
				continue
			}
			for _, off := range board.Diagonal {
				nr, nc := r+off.DR, c+off.DC
				if !b.InBounds(nr, nc) || b.StateAt(nr, nc) != board.Unknown {
					continue
				}
				key := nr*b.Cols() + nc
				if seen[key] {
					continue
				}
				seen[key] = true
				out = append(out, deduce(nr, nc, board.Sea, "T1.3", 1))
			}
		}
	}
	return out
}

// hintShapes applies the fixed neighbor table of every shaped ship
// hint: a ship end continues in one direction, a middle in two, a
// submarine in none.
func hintShapes(b *board.Board) []Deduction {
	var out []Deduction
	seen := map[int]bool{}
	for r := 0; r < b.Rows(); r++ {
		for c := 0; c < b.Cols(); c++ {
			cell := b.At(r, c)
			if !cell.IsHint || cell.State != board.Ship || cell.Shape == board.ShapeNone {
				continue
			}
			for _, f := range cell.Shape.Forced() {
				nr, nc := r+f.Off.DR, c+f.Off.DC
				if !b.InBounds(nr, nc) || b.StateAt(nr, nc) != board.Unknown {
					continue
				}
				key := nr*b.Cols() + nc
				if seen[key] {
					continue
				}
				seen[key] = true
				out = append(out, deduce(nr, nc, f.State, "T1.4", 1))
			}
		}
	}
	return out
}
