package rules

import "github.com/roach88/bimaru/internal/board"

// Tier 5: contradiction forcing. A bounded, single-level hypothesis
// check that substitutes for search: hypothesize one cell, close under
// tiers 1-4, and let the consistency checker refute it.

// T5Weight is the difficulty contribution of a tier-5 firing.
const T5Weight = 9

// Finding is one refuted hypothesis: the tested cell, the hypothesis
// that proved impossible, and the state forced as a consequence.
type Finding struct {
	Row, Col   int
	Hypothesis board.CellState
	Committed  board.CellState
	Technique  string
	Reason     ContradictionReason
	Detail     string
}

// Probe scans unknown cells in row-major order and returns the first
// refuted hypothesis. For each candidate it first tests ship (T5.1),
// then sea (T5.2); the first contradiction wins and the scan stops,
// so a single Probe never yields more than one conclusion.
//
// Probe never mutates b. Each hypothesis runs on a fresh clone that is
// discarded immediately after its check; clones are never reused
// across hypotheses and never alias the live board. The caller commits
// the finding.
func Probe(b *board.Board) (Finding, bool) {
	for r := 0; r < b.Rows(); r++ {
		for c := 0; c < b.Cols(); c++ {
			if b.StateAt(r, c) != board.Unknown {
				continue
			}
			if v, refuted := refute(b, r, c, board.Ship); refuted {
				return Finding{
					Row: r, Col: c,
					Hypothesis: board.Ship,
					Committed:  board.Sea,
					Technique:  "T5.1",
					Reason:     v.Reason,
					Detail:     v.Detail,
				}, true
			}
			if v, refuted := refute(b, r, c, board.Sea); refuted {
				return Finding{
					Row: r, Col: c,
					Hypothesis: board.Sea,
					Committed:  board.Ship,
					Technique:  "T5.2",
					Reason:     v.Reason,
					Detail:     v.Detail,
				}, true
			}
		}
	}
	return Finding{}, false
}

// refute tests a single hypothesis on a disposable clone.
func refute(b *board.Board, r, c int, hyp board.CellState) (Verdict, bool) {
	clone := b.Clone()
	if err := clone.Set(r, c, hyp); err != nil {
		return Verdict{}, false
	}
	CloseBasic(clone)
	v := Check(clone)
	return v, !v.OK
}

// CloseBasic applies the tier 1-4 rules repeatedly until no rule
// yields a new assignment (fixpoint) or the board turns inconsistent.
// Every productive pass resolves at least one cell, so the loop is
// bounded by the cell count.
//
// Unlike the solver loop, closure applies every rule's full output in
// each pass; the goal here is the fixpoint, not a firing trace.
// Assignments targeting cells already resolved earlier in the pass are
// skipped; if that leaves the board contradictory, Check reports it.
func CloseBasic(b *board.Board) {
	limit := b.Rows()*b.Cols() + 1
	for i := 0; i < limit; i++ {
		progress := false
		for _, tier := range registry {
			for _, rule := range tier {
				for _, d := range rule.Apply(b) {
					if b.StateAt(d.Row, d.Col) != board.Unknown {
						continue
					}
					if err := b.Set(d.Row, d.Col, d.State); err == nil {
						progress = true
					}
				}
			}
		}
		if !progress {
			return
		}
		if !Check(b).OK {
			return
		}
	}
}
