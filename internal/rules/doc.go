// Package rules implements the tiered deduction rule library, the
// consistency checker, and the tier-5 contradiction engine for bimaru
// boards.
//
// ARCHITECTURE:
//
// Pure Rule Functions:
// Every tier 1-4 rule is a pure function from a board to a set of
// forced cell assignments. Rules never mutate the board and never
// consult ground-truth solutions. The solver applies assignments; the
// rules only propose them.
//
// Deterministic Firing Order:
// Rules are held in a fixed ordered registry, grouped by tier. The
// registry order NEVER changes after package initialization. Within a
// rule, lines are scanned rows-then-columns by index and cells
// row-major, so identical boards always yield identical deduction
// sequences.
//
// Contradiction Engine (tier 5):
// For each unknown cell in row-major order, the engine clones the
// board, hypothesizes a state, closes the clone under tiers 1-4 to a
// fixpoint, and asks the consistency checker whether the result is
// impossible. A refuted hypothesis forces the opposite state. The
// clone is discarded after every single hypothesis; the real board is
// never touched. Contradictions here are ordinary control flow, not
// errors.
//
// The engine never searches: hypotheses are one level deep, never
// nested, and nothing is ever retracted from the real board.
package rules
