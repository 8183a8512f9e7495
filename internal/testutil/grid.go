// Package testutil provides deterministic board fixtures shared by
// package tests: boards built from character diagrams instead of long
// literal slices.
package testutil

import (
	"strings"
	"testing"

	"github.com/roach88/bimaru/internal/board"
)

// Diagram characters: 'S' ship, '~' sea, '.' unknown, 'H' ship hint,
// 'h' sea hint. Rows are newline-separated; surrounding blank lines
// and per-line indentation are stripped so diagrams can be written
// inline as raw strings.

// Rows splits a diagram into trimmed, non-empty lines.
func Rows(diagram string) []string {
	var out []string
	for _, line := range strings.Split(diagram, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

// MustBoard builds a board from a diagram with explicit clues and
// fleet. Fails the test on any construction error.
func MustBoard(t testing.TB, diagram string, rowCounts, colCounts, fleet []int) *board.Board {
	t.Helper()
	rows := Rows(diagram)
	if len(rows) == 0 {
		t.Fatalf("empty diagram")
	}
	b, err := board.New(len(rows), len(rows[0]), rowCounts, colCounts, fleet)
	if err != nil {
		t.Fatalf("board.New: %v", err)
	}
	for r, line := range rows {
		if len(line) != len(rows[0]) {
			t.Fatalf("ragged diagram row %d", r)
		}
		for c := 0; c < len(line); c++ {
			var err error
			switch line[c] {
			case 'S':
				err = b.Set(r, c, board.Ship)
			case '~':
				err = b.Set(r, c, board.Sea)
			case 'H':
				err = b.SetHint(r, c, board.Ship, board.ShapeNone)
			case 'h':
				err = b.SetHint(r, c, board.Sea, board.ShapeNone)
			case '.':
			default:
				t.Fatalf("unknown diagram char %q at (%d,%d)", line[c], r, c)
			}
			if err != nil {
				t.Fatalf("diagram cell (%d,%d): %v", r, c, err)
			}
		}
	}
	return b
}

// SolutionGrid converts a diagram of 'S' and '~' into a cell-state
// grid suitable for Board.AttachSolution.
func SolutionGrid(t testing.TB, diagram string) [][]board.CellState {
	t.Helper()
	rows := Rows(diagram)
	grid := make([][]board.CellState, len(rows))
	for r, line := range rows {
		grid[r] = make([]board.CellState, len(line))
		for c := 0; c < len(line); c++ {
			switch line[c] {
			case 'S':
				grid[r][c] = board.Ship
			case '~':
				grid[r][c] = board.Sea
			default:
				t.Fatalf("solution diagrams allow only 'S' and '~', got %q", line[c])
			}
		}
	}
	return grid
}

// DeriveClues computes row and column ship totals from a solution
// diagram.
func DeriveClues(t testing.TB, diagram string) (rowCounts, colCounts []int) {
	t.Helper()
	rows := Rows(diagram)
	if len(rows) == 0 {
		t.Fatalf("empty diagram")
	}
	rowCounts = make([]int, len(rows))
	colCounts = make([]int, len(rows[0]))
	for r, line := range rows {
		for c := 0; c < len(line); c++ {
			if line[c] == 'S' {
				rowCounts[r]++
				colCounts[c]++
			}
		}
	}
	return rowCounts, colCounts
}

// MustPuzzle builds an all-unknown board whose clues are derived from
// a solution diagram, with the solution attached for validation.
func MustPuzzle(t testing.TB, solution string, fleet []int) *board.Board {
	t.Helper()
	rowCounts, colCounts := DeriveClues(t, solution)
	b, err := board.New(len(rowCounts), len(colCounts), rowCounts, colCounts, fleet)
	if err != nil {
		t.Fatalf("board.New: %v", err)
	}
	if err := b.AttachSolution(SolutionGrid(t, solution)); err != nil {
		t.Fatalf("AttachSolution: %v", err)
	}
	return b
}
