package board

import "fmt"

// CellState is the resolution state of a single grid cell.
//
// Transitions on a live board are monotonic: Unknown → Ship or
// Unknown → Sea only. A resolved cell never changes and never reverts
// to Unknown during a solve.
type CellState uint8

const (
	Unknown CellState = iota
	Sea
	Ship
)

// String returns the lowercase name of the state.
func (s CellState) String() string {
	switch s {
	case Unknown:
		return "unknown"
	case Sea:
		return "sea"
	case Ship:
		return "ship"
	default:
		return fmt.Sprintf("CellState(%d)", uint8(s))
	}
}

// ParseState converts a textual state token to a CellState.
// Accepts the aliases used by puzzle documents ("water", "empty").
func ParseState(tok string) (CellState, error) {
	switch tok {
	case "unknown", "empty", "":
		return Unknown, nil
	case "sea", "water":
		return Sea, nil
	case "ship":
		return Ship, nil
	default:
		return Unknown, fmt.Errorf("unknown cell state %q", tok)
	}
}

// Offset is a relative (row, col) displacement.
type Offset struct {
	DR, DC int
}

// Neighbor offsets in fixed scan order. The order is part of the
// deterministic contract: rules visit neighbors in exactly this order,
// so the deduction sequence is reproducible.
var (
	Orthogonal = [4]Offset{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	Diagonal   = [4]Offset{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
)

// Axis selects rows or columns when addressing a line.
type Axis uint8

const (
	AxisRow Axis = iota
	AxisCol
)

func (a Axis) String() string {
	if a == AxisRow {
		return "row"
	}
	return "col"
}

// Line addresses a single row or column of the board.
type Line struct {
	Axis  Axis
	Index int
}

func (l Line) String() string {
	return fmt.Sprintf("%s %d", l.Axis, l.Index)
}
