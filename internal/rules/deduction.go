package rules

import (
	"fmt"

	"github.com/roach88/bimaru/internal/board"
)

// Deduction is a single forced cell assignment proposed by a rule.
type Deduction struct {
	Row, Col  int
	State     board.CellState
	Technique string
	Tier      int
}

func (d Deduction) String() string {
	return fmt.Sprintf("%s (%d,%d)=%s", d.Technique, d.Row, d.Col, d.State)
}

// RuleFunc inspects a board and returns zero or more forced
// assignments. Implementations must be pure: no board mutation, no
// solution access, no nondeterminism.
type RuleFunc func(*board.Board) []Deduction

// Rule is one registered deduction technique.
type Rule struct {
	// ID is the technique identifier, e.g. "T3.3".
	ID string

	// Tier is the difficulty tier, 1-4 for basic rules.
	Tier int

	// Weight is the technique's difficulty contribution per firing.
	Weight int

	// Apply is the rule function.
	Apply RuleFunc
}

// registry holds tiers 1-4 in firing order. The order is the
// deterministic contract of the whole engine: the solver tries rules
// exactly in this sequence and applies the first non-empty result.
var registry = [][]Rule{
	{
		{ID: "T1.1", Tier: 1, Weight: 1, Apply: zeroClue},
		{ID: "T1.2", Tier: 1, Weight: 1, Apply: satisfiedClue},
		{ID: "T1.3", Tier: 1, Weight: 1, Apply: diagonalWater},
		{ID: "T1.4", Tier: 1, Weight: 1, Apply: hintShapes},
	},
	{
		{ID: "T2.1", Tier: 2, Weight: 3, Apply: exactFit},
		{ID: "T2.4", Tier: 2, Weight: 3, Apply: overflowPrevention},
	},
	{
		{ID: "T3.1", Tier: 3, Weight: 5, Apply: forcedExtension},
		{ID: "T3.3", Tier: 3, Weight: 6, Apply: overlapAnalysis},
		{ID: "T3.4", Tier: 3, Weight: 5, Apply: threeBlockedSides},
	},
	{
		{ID: "T4.1", Tier: 4, Weight: 7, Apply: gapAnalysis},
		{ID: "T4.2", Tier: 4, Weight: 7, Apply: fleetExhaustion},
		{ID: "T4.3", Tier: 4, Weight: 7, Apply: capShip},
		{ID: "T4.4", Tier: 4, Weight: 8, Apply: preventLongJoin},
	},
}

// BasicTiers returns the tier 1-4 rules grouped by tier in firing
// order. The slices are copies; the registry itself is immutable.
func BasicTiers() [][]Rule {
	out := make([][]Rule, len(registry))
	for i, tier := range registry {
		out[i] = append([]Rule(nil), tier...)
	}
	return out
}

// deduce is the shared constructor rules use so every entry carries
// its technique tag.
func deduce(r, c int, s board.CellState, rule string, tier int) Deduction {
	return Deduction{Row: r, Col: c, State: s, Technique: rule, Tier: tier}
}
