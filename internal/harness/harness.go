package harness

import (
	"fmt"

	"github.com/roach88/bimaru/internal/puzzle"
	"github.com/roach88/bimaru/internal/solver"
)

// Result is the outcome of executing a scenario.
type Result struct {
	// ScenarioName echoes the executed scenario.
	ScenarioName string

	// PuzzleHash is the content-addressed fingerprint of the solved
	// document.
	PuzzleHash string

	// Solve is the raw solver outcome.
	Solve solver.Result

	// Failures lists every expectation that did not hold, in check
	// order. Empty on success.
	Failures []string
}

// Pass reports whether every declared expectation held.
func (r *Result) Pass() bool {
	return len(r.Failures) == 0
}

// Run executes a scenario: load the document, build the board, solve,
// and check expectations. An error means the scenario could not be
// executed at all; expectation mismatches land in Result.Failures
// instead.
func Run(scenario *Scenario) (*Result, error) {
	doc := scenario.Document
	if scenario.Puzzle != "" {
		var err error
		doc, err = puzzle.Load(scenario.Puzzle)
		if err != nil {
			return nil, fmt.Errorf("scenario %s: %w", scenario.Name, err)
		}
	}

	hash, err := doc.Fingerprint()
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", scenario.Name, err)
	}

	b, err := doc.Build()
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", scenario.Name, err)
	}

	res := solver.New(b).Solve()
	return &Result{
		ScenarioName: scenario.Name,
		PuzzleHash:   hash,
		Solve:        res,
		Failures:     checkExpectation(scenario.Expect, res),
	}, nil
}

// RunFile loads and executes a scenario file.
func RunFile(path string) (*Result, error) {
	scenario, err := LoadScenario(path)
	if err != nil {
		return nil, err
	}
	return Run(scenario)
}
