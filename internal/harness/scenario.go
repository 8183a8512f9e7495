package harness

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/roach88/bimaru/internal/puzzle"
)

// Scenario defines a conformance test: one puzzle plus expectations on
// the solve outcome.
type Scenario struct {
	// Name uniquely identifies this scenario; golden files are keyed
	// by it.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Puzzle is a path to a puzzle document, resolved relative to the
	// scenario file. Mutually exclusive with Document.
	Puzzle string `yaml:"puzzle,omitempty"`

	// Document is an inline puzzle document. Mutually exclusive with
	// Puzzle.
	Document *puzzle.Document `yaml:"document,omitempty"`

	// Expect declares the checked outcome fields.
	Expect Expectation `yaml:"expect"`
}

// Expectation validates the solve result. Nil fields are not checked.
type Expectation struct {
	Solved     *bool `yaml:"solved,omitempty"`
	Stuck      *bool `yaml:"stuck,omitempty"`
	Valid      *bool `yaml:"valid,omitempty"`
	MaxTier    *int  `yaml:"max_tier,omitempty"`
	Difficulty *int  `yaml:"difficulty,omitempty"`

	// Cells pins final states of individual cells.
	Cells []CellExpect `yaml:"cells,omitempty"`
}

// CellExpect is one expected final cell state.
type CellExpect struct {
	Row   int    `yaml:"row"`
	Col   int    `yaml:"col"`
	State string `yaml:"state"`
}

// LoadScenario reads and parses a scenario YAML file. Puzzle paths are
// resolved relative to the scenario file location. Returns an error if
// the file is malformed, contains unknown fields (typos), or is
// missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	// Strict field validation catches typos like "expects:" vs "expect:"
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if scenario.Puzzle != "" && !filepath.IsAbs(scenario.Puzzle) {
		scenario.Puzzle = filepath.Join(filepath.Dir(path), scenario.Puzzle)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}
	return &scenario, nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	switch {
	case s.Puzzle == "" && s.Document == nil:
		return fmt.Errorf("one of puzzle or document is required")
	case s.Puzzle != "" && s.Document != nil:
		return fmt.Errorf("puzzle and document are mutually exclusive")
	case s.Puzzle != "":
		if _, err := os.Stat(s.Puzzle); os.IsNotExist(err) {
			return fmt.Errorf("puzzle file not found: %s", s.Puzzle)
		}
	}

	e := s.Expect
	if e.Solved == nil && e.Stuck == nil && e.Valid == nil &&
		e.MaxTier == nil && e.Difficulty == nil && len(e.Cells) == 0 {
		return fmt.Errorf("expect must declare at least one check")
	}
	for i, c := range e.Cells {
		if c.Row < 0 || c.Col < 0 {
			return fmt.Errorf("expect.cells[%d]: row and col must be non-negative", i)
		}
		if c.State == "" {
			return fmt.Errorf("expect.cells[%d]: state is required", i)
		}
	}
	return nil
}
