package harness

import (
	"fmt"

	"github.com/roach88/bimaru/internal/board"
	"github.com/roach88/bimaru/internal/solver"
)

// checkExpectation evaluates every declared expectation against the
// solve result and returns the failures in check order. Checks never
// short-circuit; a failing scenario reports everything that went
// wrong.
func checkExpectation(e Expectation, res solver.Result) []string {
	var failures []string
	fail := func(format string, args ...any) {
		failures = append(failures, fmt.Sprintf(format, args...))
	}

	if e.Solved != nil && res.Solved != *e.Solved {
		fail("solved = %v, expected %v", res.Solved, *e.Solved)
	}
	if e.Stuck != nil && res.Stuck != *e.Stuck {
		fail("stuck = %v, expected %v", res.Stuck, *e.Stuck)
	}
	if e.Valid != nil {
		if !res.Validated {
			fail("valid expectation declared but the puzzle has no solution grid")
		} else if res.Valid != *e.Valid {
			fail("valid = %v, expected %v", res.Valid, *e.Valid)
		}
	}
	if e.MaxTier != nil && res.MaxTierRequired != *e.MaxTier {
		fail("max_tier = %d, expected %d", res.MaxTierRequired, *e.MaxTier)
	}
	if e.Difficulty != nil && res.DifficultyScore != *e.Difficulty {
		fail("difficulty = %d, expected %d", res.DifficultyScore, *e.Difficulty)
	}

	for _, c := range e.Cells {
		want, err := board.ParseState(c.State)
		if err != nil {
			fail("cell (%d,%d): %v", c.Row, c.Col, err)
			continue
		}
		if !res.Board.InBounds(c.Row, c.Col) {
			fail("cell (%d,%d): out of bounds", c.Row, c.Col)
			continue
		}
		if got := res.Board.StateAt(c.Row, c.Col); got != want {
			fail("cell (%d,%d) = %s, expected %s", c.Row, c.Col, got, want)
		}
	}
	return failures
}
