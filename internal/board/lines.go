package board

// Line addressing, run/segment enumeration, and fleet bookkeeping.
//
// A Run is a maximal contiguous group of Ship cells along a line.
// A Segment is a maximal contiguous group of Unknown cells along a
// line. Both are recomputed from cell states on every call.

// Lines returns every line of the board in fixed scan order: all rows
// by index, then all columns by index. Rules iterate this order so
// their deduction sequences are deterministic.
func (b *Board) Lines() []Line {
	out := make([]Line, 0, b.rows+b.cols)
	for r := 0; r < b.rows; r++ {
		out = append(out, Line{AxisRow, r})
	}
	for c := 0; c < b.cols; c++ {
		out = append(out, Line{AxisCol, c})
	}
	return out
}

// LineLen returns the number of cells in the line.
func (b *Board) LineLen(l Line) int {
	if l.Axis == AxisRow {
		return b.cols
	}
	return b.rows
}

// LineCell maps a position along a line to grid coordinates.
func (b *Board) LineCell(l Line, i int) (r, c int) {
	if l.Axis == AxisRow {
		return l.Index, i
	}
	return i, l.Index
}

// Clue returns the required ship-cell total for the line.
func (b *Board) Clue(l Line) int {
	if l.Axis == AxisRow {
		return b.rowCounts[l.Index]
	}
	return b.colCounts[l.Index]
}

// LineCounts tallies the line's cells by state.
func (b *Board) LineCounts(l Line) (ships, unknowns, seas int) {
	n := b.LineLen(l)
	for i := 0; i < n; i++ {
		r, c := b.LineCell(l, i)
		switch b.cells[r*b.cols+c].State {
		case Ship:
			ships++
		case Unknown:
			unknowns++
		default:
			seas++
		}
	}
	return ships, unknowns, seas
}

// Segment is a maximal contiguous group of Unknown cells along a line.
// Start and End are inclusive positions along the line. ShipBefore and
// ShipAfter report whether the bounding neighbor is a Ship cell; false
// means the segment is bounded by Sea or the grid edge on that side.
type Segment struct {
	Line       Line
	Start, End int
	ShipBefore bool
	ShipAfter  bool
}

// Len returns the segment length in cells.
func (s Segment) Len() int { return s.End - s.Start + 1 }

// Segments enumerates the line's unknown segments in position order.
func (b *Board) Segments(l Line) []Segment {
	var out []Segment
	n := b.LineLen(l)
	start := -1
	for i := 0; i <= n; i++ {
		var st CellState = Sea
		if i < n {
			r, c := b.LineCell(l, i)
			st = b.cells[r*b.cols+c].State
		}
		if st == Unknown {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			seg := Segment{Line: l, Start: start, End: i - 1}
			if start > 0 {
				r, c := b.LineCell(l, start-1)
				seg.ShipBefore = b.cells[r*b.cols+c].State == Ship
			}
			seg.ShipAfter = i < n && st == Ship
			out = append(out, seg)
			start = -1
		}
	}
	return out
}

// Run is a maximal contiguous group of Ship cells along a line.
// OpenBefore and OpenAfter report whether the adjacent cell along the
// line is Unknown (the run could still grow that way); false means it
// is bounded by Sea or the grid edge.
type Run struct {
	Line       Line
	Start, End int
	OpenBefore bool
	OpenAfter  bool
}

// Len returns the run length in cells.
func (r Run) Len() int { return r.End - r.Start + 1 }

// Runs enumerates the line's ship runs in position order.
func (b *Board) Runs(l Line) []Run {
	var out []Run
	n := b.LineLen(l)
	start := -1
	for i := 0; i <= n; i++ {
		var st CellState = Sea
		if i < n {
			r, c := b.LineCell(l, i)
			st = b.cells[r*b.cols+c].State
		}
		if st == Ship {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			run := Run{Line: l, Start: start, End: i - 1}
			if start > 0 {
				r, c := b.LineCell(l, start-1)
				run.OpenBefore = b.cells[r*b.cols+c].State == Unknown
			}
			run.OpenAfter = i < n && st == Unknown
			out = append(out, run)
			start = -1
		}
	}
	return out
}

// CompletedShips returns the lengths of fully placed ships: runs
// bounded by Sea or the edge on both ends. Horizontal runs of length
// one count only when their vertical neighbors are also Sea/edge
// (a submarine); vertical length-one runs are skipped entirely to
// avoid double counting.
func (b *Board) CompletedShips() []int {
	var out []int
	for r := 0; r < b.rows; r++ {
		for _, run := range b.Runs(Line{AxisRow, r}) {
			if run.OpenBefore || run.OpenAfter {
				continue
			}
			if run.Len() > 1 {
				out = append(out, run.Len())
				continue
			}
			// Single cell: a submarine only when it is sealed
			// vertically as well.
			if b.StateAt(r-1, run.Start) == Sea && b.StateAt(r+1, run.Start) == Sea {
				out = append(out, 1)
			}
		}
	}
	for c := 0; c < b.cols; c++ {
		for _, run := range b.Runs(Line{AxisCol, c}) {
			if run.OpenBefore || run.OpenAfter || run.Len() == 1 {
				continue
			}
			out = append(out, run.Len())
		}
	}
	return out
}

// RemainingFleet returns the fleet minus completed ships, preserving
// fleet order. Completed lengths with no fleet counterpart are simply
// not subtracted; the consistency checker reports those. Always
// recomputed from the current runs, never cached.
func (b *Board) RemainingFleet() []int {
	remaining := append([]int(nil), b.fleet...)
	for _, placed := range b.CompletedShips() {
		for i, l := range remaining {
			if l == placed {
				remaining = append(remaining[:i], remaining[i+1:]...)
				break
			}
		}
	}
	return remaining
}

// LargestRemaining returns the largest unplaced ship length, 0 when
// the fleet is exhausted.
func (b *Board) LargestRemaining() int {
	max := 0
	for _, l := range b.RemainingFleet() {
		if l > max {
			max = l
		}
	}
	return max
}

// SmallestRemaining returns the smallest unplaced ship length, 0 when
// the fleet is exhausted.
func (b *Board) SmallestRemaining() int {
	min := 0
	for _, l := range b.RemainingFleet() {
		if min == 0 || l < min {
			min = l
		}
	}
	return min
}
