package solver

import (
	"log/slog"

	"github.com/roach88/bimaru/internal/board"
	"github.com/roach88/bimaru/internal/rules"
)

// Firing is one applied rule invocation: the technique and every cell
// assignment it committed, in application order.
type Firing struct {
	Technique  string
	Tier       int
	Deductions []rules.Deduction
}

// Result is the outcome of a solve.
type Result struct {
	// Board is the final grid, retained for inspection.
	Board *board.Board

	// Solved is true when no unknown cells remain and the consistency
	// checker approves the full grid.
	Solved bool

	// Stuck is true when the solver stopped with unresolved cells or
	// an inconsistent grid. Always the negation of Solved.
	Stuck bool

	// Validated is true when a ground-truth solution was supplied;
	// only then is Valid meaningful. Valid reports exact cell-state
	// agreement with that solution.
	Validated bool
	Valid     bool

	// MaxTierRequired is the highest tier that ever fired, 0 when the
	// board was resolved with zero firings.
	MaxTierRequired int

	// DifficultyScore is the weighted sum over the firing histogram,
	// higher tiers weighing more.
	DifficultyScore int

	// TierFirings counts firings per tier; index 0 is unused.
	TierFirings [6]int

	// Firings is the ordered log of every applied rule invocation.
	Firings []Firing

	// T5Detail lists the contradiction-engine conclusions in commit
	// order, empty when tier 5 never fired.
	T5Detail []rules.Finding

	// Restarts is the number of loop iterations taken; bounded by the
	// cell count since every firing resolves at least one cell.
	Restarts int
}

// Solver applies the rule library to a single board until it is
// solved or no rule fires.
type Solver struct {
	board *board.Board
	tiers [][]rules.Rule
}

// New creates a solver owning the given board. The board must come
// from board.New (already structurally validated); the solver mutates
// it in place and returns it inside the result.
func New(b *board.Board) *Solver {
	return &Solver{board: b, tiers: rules.BasicTiers()}
}

// Solve runs the tier-escalation loop to completion. It is total over
// well-formed boards: unsatisfiable inputs terminate stuck, never
// panic. Solving an already-resolved consistent board returns
// immediately with zero firings.
func (s *Solver) Solve() Result {
	res := Result{Board: s.board}
	ceiling := s.board.Rows()*s.board.Cols() + 1
	inconsistent := false

	slog.Debug("solve starting",
		"rows", s.board.Rows(),
		"cols", s.board.Cols(),
		"unknown", s.board.CountUnknown(),
	)

	for s.board.CountUnknown() > 0 && res.Restarts < ceiling {
		res.Restarts++

		fired := s.fireBasic(&res)
		if !fired {
			fired = s.fireProbe(&res)
		}
		if !fired {
			break // stuck: no rule in any tier applies
		}
		if v := rules.Check(s.board); !v.OK {
			// Applied deductions exposed an unsatisfiable input.
			slog.Debug("board inconsistent after firing", "reason", v.Reason, "detail", v.Detail)
			inconsistent = true
			break
		}
	}

	res.Solved = !inconsistent && s.board.CountUnknown() == 0 && rules.Check(s.board).OK
	res.Stuck = !res.Solved
	res.Validated = s.board.HasSolution()
	res.Valid = res.Validated && s.board.MatchesSolution()

	slog.Debug("solve finished",
		"solved", res.Solved,
		"restarts", res.Restarts,
		"max_tier", res.MaxTierRequired,
		"score", res.DifficultyScore,
	)
	return res
}

// fireBasic tries tiers 1-4 in order and applies the first non-empty
// assignment set. Returns whether anything fired.
func (s *Solver) fireBasic(res *Result) bool {
	for _, tier := range s.tiers {
		for _, rule := range tier {
			deds := s.applicable(rule.Apply(s.board))
			if len(deds) == 0 {
				continue
			}
			applied := make([]rules.Deduction, 0, len(deds))
			for _, d := range deds {
				if s.board.StateAt(d.Row, d.Col) != board.Unknown {
					continue // duplicate target within the batch
				}
				if err := s.board.Set(d.Row, d.Col, d.State); err != nil {
					continue
				}
				applied = append(applied, d)
			}
			if len(applied) == 0 {
				continue
			}
			s.record(res, rule.ID, rule.Tier, rule.Weight, applied)
			return true
		}
	}
	return false
}

// fireProbe runs the tier-5 contradiction engine and commits its
// single conclusion, if any.
func (s *Solver) fireProbe(res *Result) bool {
	f, ok := rules.Probe(s.board)
	if !ok {
		return false
	}
	if err := s.board.Set(f.Row, f.Col, f.Committed); err != nil {
		return false
	}
	d := rules.Deduction{Row: f.Row, Col: f.Col, State: f.Committed, Technique: f.Technique, Tier: 5}
	s.record(res, f.Technique, 5, rules.T5Weight, []rules.Deduction{d})
	res.T5Detail = append(res.T5Detail, f)
	return true
}

// record appends a firing and updates the tier metadata.
func (s *Solver) record(res *Result, technique string, tier, weight int, deds []rules.Deduction) {
	res.Firings = append(res.Firings, Firing{Technique: technique, Tier: tier, Deductions: deds})
	res.TierFirings[tier]++
	res.DifficultyScore += weight
	if tier > res.MaxTierRequired {
		res.MaxTierRequired = tier
	}
	slog.Debug("rule fired", "technique", technique, "tier", tier, "cells", len(deds))
}

// applicable drops ship assignments that would immediately violate the
// diagonal rule: pairs within the batch that touch diagonally, and
// entries diagonal to a ship already on the board. A rule emitting
// line-local conclusions cannot see the other axis; this keeps a
// single applied batch from contradicting itself.
func (s *Solver) applicable(deds []rules.Deduction) []rules.Deduction {
	ships := make(map[[2]int]bool)
	for _, d := range deds {
		if d.State == board.Ship {
			ships[[2]int{d.Row, d.Col}] = true
		}
	}
	if len(ships) == 0 {
		return deds
	}

	conflicted := make(map[[2]int]bool)
	for pos := range ships {
		for _, off := range board.Diagonal {
			n := [2]int{pos[0] + off.DR, pos[1] + off.DC}
			if ships[n] {
				conflicted[pos] = true
				conflicted[n] = true
			}
		}
		if s.board.StateAt(pos[0]-1, pos[1]-1) == board.Ship ||
			s.board.StateAt(pos[0]-1, pos[1]+1) == board.Ship ||
			s.board.StateAt(pos[0]+1, pos[1]-1) == board.Ship ||
			s.board.StateAt(pos[0]+1, pos[1]+1) == board.Ship {
			conflicted[pos] = true
		}
	}
	if len(conflicted) == 0 {
		return deds
	}

	out := deds[:0]
	for _, d := range deds {
		if d.State == board.Ship && conflicted[[2]int{d.Row, d.Col}] {
			continue
		}
		out = append(out, d)
	}
	return out
}
