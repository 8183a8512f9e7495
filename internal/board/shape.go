package board

import "fmt"

// HintShape tags a SHIP hint cell with the part of a ship it shows.
// The tag fixes the states of the cell's orthogonal neighbors: a ship
// end continues in exactly one direction, a middle in two, a submarine
// in none.
//
// A hint whose orientation is ambiguous (a "middle, unknown direction"
// glyph) carries ShapeNone and forces nothing.
type HintShape uint8

const (
	ShapeNone HintShape = iota
	ShapeSub            // single-cell ship, all four neighbors sea
	ShapeTop            // top end, continues downward
	ShapeBottom         // bottom end, continues upward
	ShapeLeft           // left end, continues rightward
	ShapeRight          // right end, continues leftward
	ShapeMidH           // horizontal middle, continues left and right
	ShapeMidV           // vertical middle, continues up and down
)

// String returns the document token for the shape.
func (h HintShape) String() string {
	switch h {
	case ShapeNone:
		return ""
	case ShapeSub:
		return "sub"
	case ShapeTop:
		return "top"
	case ShapeBottom:
		return "bottom"
	case ShapeLeft:
		return "left"
	case ShapeRight:
		return "right"
	case ShapeMidH:
		return "mid_h"
	case ShapeMidV:
		return "mid_v"
	default:
		return fmt.Sprintf("HintShape(%d)", uint8(h))
	}
}

// ParseShape converts a document token to a HintShape.
// Accepts the aliases seen in puzzle exports ("bot", "single", "up", "down").
func ParseShape(tok string) (HintShape, error) {
	switch tok {
	case "":
		return ShapeNone, nil
	case "sub", "single":
		return ShapeSub, nil
	case "top", "bow", "up":
		return ShapeTop, nil
	case "bottom", "bot", "down":
		return ShapeBottom, nil
	case "left":
		return ShapeLeft, nil
	case "right":
		return ShapeRight, nil
	case "mid_h", "middle_h", "horizontal_mid":
		return ShapeMidH, nil
	case "mid_v", "middle_v", "vertical_mid":
		return ShapeMidV, nil
	default:
		return ShapeNone, fmt.Errorf("unknown hint shape %q", tok)
	}
}

// ForcedNeighbor is one entry of a shape's fixed neighbor table.
type ForcedNeighbor struct {
	Off   Offset
	State CellState
}

// forcedNeighborTable is the fixed neighbor table consulted by the
// hint-shape rule and the consistency checker. Entries are ordered
// up, down, left, right so deductions come out in a stable order.
var forcedNeighborTable = map[HintShape][4]ForcedNeighbor{
	ShapeSub: {
		{Offset{-1, 0}, Sea}, {Offset{1, 0}, Sea}, {Offset{0, -1}, Sea}, {Offset{0, 1}, Sea},
	},
	ShapeTop: {
		{Offset{-1, 0}, Sea}, {Offset{1, 0}, Ship}, {Offset{0, -1}, Sea}, {Offset{0, 1}, Sea},
	},
	ShapeBottom: {
		{Offset{-1, 0}, Ship}, {Offset{1, 0}, Sea}, {Offset{0, -1}, Sea}, {Offset{0, 1}, Sea},
	},
	ShapeLeft: {
		{Offset{-1, 0}, Sea}, {Offset{1, 0}, Sea}, {Offset{0, -1}, Sea}, {Offset{0, 1}, Ship},
	},
	ShapeRight: {
		{Offset{-1, 0}, Sea}, {Offset{1, 0}, Sea}, {Offset{0, -1}, Ship}, {Offset{0, 1}, Sea},
	},
	ShapeMidH: {
		{Offset{-1, 0}, Sea}, {Offset{1, 0}, Sea}, {Offset{0, -1}, Ship}, {Offset{0, 1}, Ship},
	},
	ShapeMidV: {
		{Offset{-1, 0}, Ship}, {Offset{1, 0}, Ship}, {Offset{0, -1}, Sea}, {Offset{0, 1}, Sea},
	},
}

// Forced returns the shape's neighbor table in fixed order, or nil for
// ShapeNone.
func (h HintShape) Forced() []ForcedNeighbor {
	t, ok := forcedNeighborTable[h]
	if !ok {
		return nil
	}
	out := make([]ForcedNeighbor, 4)
	copy(out, t[:])
	return out
}

// ShapeFromNeighbors derives the shape tag for a ship cell from the
// states of its four orthogonal neighbors (out-of-board counts as sea).
// Used by the loader to attach exact shapes to hints when a full
// solution grid is available.
func ShapeFromNeighbors(up, down, left, right CellState) HintShape {
	n := up == Ship
	s := down == Ship
	w := left == Ship
	e := right == Ship
	switch {
	case (n && s) && (w || e), (w && e) && (n || s):
		// A ship cell cannot continue on both axes; leave untagged.
		return ShapeNone
	case n && s:
		return ShapeMidV
	case w && e:
		return ShapeMidH
	case s:
		return ShapeTop
	case n:
		return ShapeBottom
	case e:
		return ShapeLeft
	case w:
		return ShapeRight
	default:
		return ShapeSub
	}
}
