package puzzle

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/roach88/bimaru/internal/board"
)

// Document is a parsed puzzle file. The fleet is always explicit;
// there is no default fleet anywhere in the engine.
type Document struct {
	Name     string   `yaml:"name,omitempty" json:"name,omitempty"`
	Rows     []int    `yaml:"rows,omitempty" json:"rows,omitempty"`
	Cols     []int    `yaml:"cols,omitempty" json:"cols,omitempty"`
	Fleet    []int    `yaml:"fleet" json:"fleet"`
	Hints    []Hint   `yaml:"hints,omitempty" json:"hints,omitempty"`
	Solution []string `yaml:"solution,omitempty" json:"solution,omitempty"`
}

// Hint fixes one cell of the initial board.
type Hint struct {
	Row   int    `yaml:"row" json:"row"`
	Col   int    `yaml:"col" json:"col"`
	State string `yaml:"state" json:"state"`
	Shape string `yaml:"shape,omitempty" json:"shape,omitempty"`
}

// Parse validates document bytes against the CUE schema and decodes
// them. The name is used in error messages only.
func Parse(name string, data []byte, format Format) (*Document, error) {
	if err := validateSchema(name, data, format); err != nil {
		return nil, err
	}
	var doc Document
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("decode %s: %w", name, err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("decode %s: %w", name, err)
		}
	default:
		return nil, fmt.Errorf("unknown document format %d", format)
	}
	return &doc, nil
}

// Load reads and parses a puzzle file, picking the format from the
// extension (.json, .yaml, .yml).
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read puzzle: %w", err)
	}
	var format Format
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		format = FormatJSON
	case ".yaml", ".yml":
		format = FormatYAML
	default:
		return nil, fmt.Errorf("unsupported puzzle extension %q", filepath.Ext(path))
	}
	return Parse(filepath.Base(path), data, format)
}

// Build constructs a board from the document.
//
// When a solution grid is present, missing clues are derived from it,
// it is attached as ground truth, and ship hints get exact shapes from
// their solution neighborhood (any shape fields are ignored). Without
// a solution, rows, cols, and any shapes must be explicit.
func (d *Document) Build() (*board.Board, error) {
	rowCounts := d.Rows
	colCounts := d.Cols

	var grid [][]board.CellState
	if len(d.Solution) > 0 {
		grid = make([][]board.CellState, len(d.Solution))
		for r, line := range d.Solution {
			grid[r] = make([]board.CellState, len(line))
			for c := 0; c < len(line); c++ {
				if line[c] == 'S' {
					grid[r][c] = board.Ship
				} else {
					grid[r][c] = board.Sea
				}
			}
		}
		if rowCounts == nil {
			rowCounts = make([]int, len(grid))
			for r, row := range grid {
				for _, s := range row {
					if s == board.Ship {
						rowCounts[r]++
					}
				}
			}
		}
		if colCounts == nil && len(grid) > 0 {
			colCounts = make([]int, len(grid[0]))
			for _, row := range grid {
				for c, s := range row {
					if s == board.Ship {
						colCounts[c]++
					}
				}
			}
		}
	}
	if rowCounts == nil || colCounts == nil {
		return nil, fmt.Errorf("puzzle needs rows and cols clues (or a solution to derive them from)")
	}

	b, err := board.New(len(rowCounts), len(colCounts), rowCounts, colCounts, d.Fleet)
	if err != nil {
		return nil, err
	}
	if grid != nil {
		if err := b.AttachSolution(grid); err != nil {
			return nil, err
		}
	}

	for _, h := range d.Hints {
		state, err := board.ParseState(h.State)
		if err != nil {
			return nil, fmt.Errorf("hint (%d,%d): %w", h.Row, h.Col, err)
		}
		shape := board.ShapeNone
		if state == board.Ship {
			if b.HasSolution() {
				shape = board.ShapeFromNeighbors(
					b.SolutionAt(h.Row-1, h.Col),
					b.SolutionAt(h.Row+1, h.Col),
					b.SolutionAt(h.Row, h.Col-1),
					b.SolutionAt(h.Row, h.Col+1),
				)
			} else if h.Shape != "" {
				shape, err = board.ParseShape(h.Shape)
				if err != nil {
					return nil, fmt.Errorf("hint (%d,%d): %w", h.Row, h.Col, err)
				}
			}
		}
		if err := b.SetHint(h.Row, h.Col, state, shape); err != nil {
			return nil, err
		}
	}
	return b, nil
}
