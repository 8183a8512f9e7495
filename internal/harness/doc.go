// Package harness provides conformance testing for the deduction
// engine.
//
// The harness loads puzzle scenarios, runs the solver, and validates
// the outcome against declared expectations and golden trace files.
//
// # Scenario Format
//
// Scenarios are defined in YAML files with the following structure:
//
//	name: scenario_name
//	description: "What this scenario validates"
//	puzzle: path/to/puzzle.yaml      # or an inline document:
//	document:
//	  rows: [1, 0]
//	  cols: [1, 0]
//	  fleet: [1]
//	  hints:
//	    - { row: 0, col: 0, state: ship, shape: sub }
//	expect:
//	  solved: true
//	  max_tier: 1
//	  cells:
//	    - { row: 0, col: 0, state: ship }
//
// Puzzle paths are resolved relative to the scenario file. Exactly one
// of puzzle and document must be present.
//
// # Expectations
//
// Every expectation field is optional; only declared fields are
// checked:
//
//   - solved, stuck, valid: final outcome flags
//   - max_tier: highest tier that fired
//   - difficulty: weighted firing score
//   - cells: final states of individual cells
//
// # Deterministic Testing
//
// The solver is deterministic by construction (fixed rule order,
// row-major scans), so a scenario produces an identical firing log on
// every run. Golden files snapshot that log as canonical JSON for
// byte-exact comparison; regenerate with:
//
//	go test ./internal/harness -update
package harness
