package rules

import "github.com/roach88/bimaru/internal/board"

// Tier 4: fleet-composition arithmetic.

// gapAnalysis drowns unknown segments bounded by sea or edge on both
// sides that are too short for the smallest unplaced ship.
func gapAnalysis(b *board.Board) []Deduction {
	smallest := b.SmallestRemaining()
	if smallest == 0 {
		return nil
	}
	var out []Deduction
	seen := map[int]bool{}
	for _, l := range b.Lines() {
		for _, seg := range b.Segments(l) {
			if seg.ShipBefore || seg.ShipAfter || seg.Len() >= smallest {
				continue
			}
			for i := seg.Start; i <= seg.End; i++ {
				r, c := b.LineCell(l, i)
				key := r*b.Cols() + c
				if seen[key] {
					continue
				}
				seen[key] = true
				out = append(out, deduce(r, c, board.Sea, "T4.1", 4))
			}
		}
	}
	return out
}

// shipExtent counts contiguous ship cells from (r,c) exclusive in the
// given direction.
func shipExtent(b *board.Board, r, c, dr, dc int) int {
	n := 0
	for {
		r, c = r+dr, c+dc
		if b.StateAt(r, c) != board.Ship {
			return n
		}
		n++
	}
}

// fleetExhaustion marks a cell sea when assigning it ship would do
// nothing but complete a closed run of an exhausted length: the run
// that would result is bounded by sea or edge on both ends and the
// remaining fleet has no ship of that length left.
func fleetExhaustion(b *board.Board) []Deduction {
	remaining := map[int]int{}
	for _, l := range b.RemainingFleet() {
		remaining[l]++
	}
	var out []Deduction
	for r := 0; r < b.Rows(); r++ {
		for c := 0; c < b.Cols(); c++ {
			if b.StateAt(r, c) != board.Unknown {
				continue
			}
			left := shipExtent(b, r, c, 0, -1)
			right := shipExtent(b, r, c, 0, 1)
			up := shipExtent(b, r, c, -1, 0)
			down := shipExtent(b, r, c, 1, 0)
			hl := left + right + 1
			vl := up + down + 1

			var length int
			var closed bool
			switch {
			case hl > 1 && vl > 1:
				continue // would bend the ship; the diagonal rule owns this
			case hl > 1:
				closed = b.StateAt(r, c-left-1) == board.Sea && b.StateAt(r, c+right+1) == board.Sea
				length = hl
			case vl > 1:
				closed = b.StateAt(r-up-1, c) == board.Sea && b.StateAt(r+down+1, c) == board.Sea
				length = vl
			default:
				closed = b.StateAt(r-1, c) == board.Sea && b.StateAt(r+1, c) == board.Sea &&
					b.StateAt(r, c-1) == board.Sea && b.StateAt(r, c+1) == board.Sea
				length = 1
			}
			if closed && remaining[length] == 0 {
				out = append(out, deduce(r, c, board.Sea, "T4.2", 4))
			}
		}
	}
	return out
}

// capShip seals the open ends of runs that already match the largest
// unplaced ship length; growing them would exceed every ship left.
func capShip(b *board.Board) []Deduction {
	max := b.LargestRemaining()
	if max == 0 {
		return nil
	}
	var out []Deduction
	seen := map[int]bool{}
	for _, l := range b.Lines() {
		for _, run := range b.Runs(l) {
			if run.Len() != max {
				continue
			}
			capAt := func(pos int) {
				r, c := b.LineCell(l, pos)
				key := r*b.Cols() + c
				if seen[key] {
					return
				}
				seen[key] = true
				out = append(out, deduce(r, c, board.Sea, "T4.3", 4))
			}
			if run.OpenBefore {
				capAt(run.Start - 1)
			}
			if run.OpenAfter {
				capAt(run.End + 1)
			}
		}
	}
	return out
}

// preventLongJoin marks a cell sea when assigning it ship would join
// its neighbors into a run longer than the largest unplaced ship.
func preventLongJoin(b *board.Board) []Deduction {
	max := b.LargestRemaining()
	if max == 0 {
		return nil
	}
	var out []Deduction
	for r := 0; r < b.Rows(); r++ {
		for c := 0; c < b.Cols(); c++ {
			if b.StateAt(r, c) != board.Unknown {
				continue
			}
			h := shipExtent(b, r, c, 0, -1) + shipExtent(b, r, c, 0, 1) + 1
			v := shipExtent(b, r, c, -1, 0) + shipExtent(b, r, c, 1, 0) + 1
			if h > max || v > max {
				out = append(out, deduce(r, c, board.Sea, "T4.4", 4))
			}
		}
	}
	return out
}
