package rules

import "github.com/roach88/bimaru/internal/board"

// Tier 3: run and segment geometry.

// forcedExtension extends a ship run through its single open end when
// the run cannot legally terminate at its current length: the
// remaining fleet holds no unplaced ship of exactly that length.
//
// Runs of length one are handled cell-wise over all four orthogonal
// neighbors (a lone ship cell has no orientation yet), longer runs
// along their own axis.
func forcedExtension(b *board.Board) []Deduction {
	var out []Deduction
	remaining := map[int]int{}
	for _, l := range b.RemainingFleet() {
		remaining[l]++
	}

	// Multi-cell runs with exactly one open end.
	for _, l := range b.Lines() {
		for _, run := range b.Runs(l) {
			if run.Len() < 2 || remaining[run.Len()] > 0 {
				continue
			}
			if run.OpenBefore == run.OpenAfter {
				continue // zero or two open ends
			}
			var pos int
			if run.OpenBefore {
				pos = run.Start - 1
			} else {
				pos = run.End + 1
			}
			r, c := b.LineCell(l, pos)
			out = append(out, deduce(r, c, board.Ship, "T3.1", 3))
		}
	}

	// Lone ship cells: no submarine left means the cell must extend,
	// which is only forced when a single direction remains open.
	if remaining[1] == 0 {
		for r := 0; r < b.Rows(); r++ {
			for c := 0; c < b.Cols(); c++ {
				if b.StateAt(r, c) != board.Ship {
					continue
				}
				shipN, openR, openC, open := 0, 0, 0, 0
				for _, off := range board.Orthogonal {
					nr, nc := r+off.DR, c+off.DC
					switch b.StateAt(nr, nc) {
					case board.Ship:
						shipN++
					case board.Unknown:
						open++
						openR, openC = nr, nc
					}
				}
				if shipN == 0 && open == 1 {
					out = append(out, deduce(openR, openC, board.Ship, "T3.1", 3))
				}
			}
		}
	}
	return out
}

// overlapAnalysis forces the middle cells of a line's single unknown
// segment: with S unknown slots and M ship cells still needed, every
// placement covers segment offsets [S-M, M-1] when 2M > S.
func overlapAnalysis(b *board.Board) []Deduction {
	var out []Deduction
	for _, l := range b.Lines() {
		ships, _, _ := b.LineCounts(l)
		needed := b.Clue(l) - ships
		if needed <= 0 {
			continue
		}
		segs := b.Segments(l)
		if len(segs) != 1 {
			continue
		}
		seg := segs[0]
		s, m := seg.Len(), needed
		if s <= m {
			continue // exactFit territory
		}
		for off := s - m; off <= m-1; off++ {
			r, c := b.LineCell(l, seg.Start+off)
			out = append(out, deduce(r, c, board.Ship, "T3.3", 3))
		}
	}
	return out
}

// threeBlockedSides extends a ship cell whose other three orthogonal
// sides are sea or edge: the ship part cannot be complete, so it
// continues into the only open direction.
func threeBlockedSides(b *board.Board) []Deduction {
	var out []Deduction
	for r := 0; r < b.Rows(); r++ {
		for c := 0; c < b.Cols(); c++ {
			if b.StateAt(r, c) != board.Ship {
				continue
			}
			blocked, ships, openR, openC, open := 0, 0, 0, 0, 0
			for _, off := range board.Orthogonal {
				nr, nc := r+off.DR, c+off.DC
				switch b.StateAt(nr, nc) {
				case board.Sea:
					blocked++
				case board.Ship:
					ships++
				default:
					open++
					openR, openC = nr, nc
				}
			}
			if blocked == 3 && open == 1 && ships == 0 {
				out = append(out, deduce(openR, openC, board.Ship, "T3.4", 3))
			}
		}
	}
	return out
}
