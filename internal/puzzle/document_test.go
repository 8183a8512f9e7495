package puzzle

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/bimaru/internal/board"
)

// writeFile writes document bytes to a temp file with the given name.
func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// =============================================================================
// Parse / schema validation
// =============================================================================

func TestParseYAML(t *testing.T) {
	doc, err := Parse("p.yaml", []byte(`
name: little
rows: [1, 0]
cols: [1, 0]
fleet: [1]
hints:
  - { row: 0, col: 0, state: ship, shape: sub }
`), FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, "little", doc.Name)
	assert.Equal(t, []int{1, 0}, doc.Rows)
	assert.Equal(t, []int{1}, doc.Fleet)
	require.Len(t, doc.Hints, 1)
	assert.Equal(t, "sub", doc.Hints[0].Shape)
}

func TestParseJSON(t *testing.T) {
	doc, err := Parse("p.json", []byte(`{
		"rows": [1], "cols": [1], "fleet": [1]
	}`), FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, doc.Fleet)
}

func TestParseSchemaRejections(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"missing fleet", `rows: [1]` + "\n" + `cols: [1]`},
		{"negative clue", `{"rows": [-1], "cols": [0], "fleet": [1]}`},
		{"zero ship length", `{"rows": [0], "cols": [0], "fleet": [0]}`},
		{"bad hint state", `{"fleet": [1], "hints": [{"row": 0, "col": 0, "state": "lava"}]}`},
		{"bad hint shape", `{"fleet": [1], "hints": [{"row": 0, "col": 0, "state": "ship", "shape": "diagonal"}]}`},
		{"bad solution chars", `{"fleet": [1], "solution": ["SX"]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			format := FormatYAML
			if tt.content[0] == '{' {
				format = FormatJSON
			}
			_, err := Parse("bad", []byte(tt.content), format)
			require.Error(t, err)
		})
	}
}

// =============================================================================
// Load
// =============================================================================

func TestLoadPicksFormatFromExtension(t *testing.T) {
	yamlPath := writeFile(t, "p.yaml", "fleet: [1]\nrows: [1]\ncols: [1]\n")
	doc, err := Load(yamlPath)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, doc.Fleet)

	jsonPath := writeFile(t, "p.json", `{"fleet": [1], "rows": [1], "cols": [1]}`)
	doc, err = Load(jsonPath)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, doc.Fleet)

	txtPath := writeFile(t, "p.txt", "fleet: [1]")
	_, err = Load(txtPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported puzzle extension")
}

// =============================================================================
// Build
// =============================================================================

func TestBuildExplicitClues(t *testing.T) {
	doc := &Document{
		Rows:  []int{1, 0},
		Cols:  []int{1, 0},
		Fleet: []int{1},
		Hints: []Hint{{Row: 0, Col: 0, State: "ship", Shape: "sub"}},
	}

	b, err := doc.Build()
	require.NoError(t, err)
	assert.Equal(t, 2, b.Rows())
	assert.Equal(t, board.Ship, b.StateAt(0, 0))
	assert.Equal(t, board.ShapeSub, b.At(0, 0).Shape)
	assert.False(t, b.HasSolution())
}

func TestBuildDerivesCluesFromSolution(t *testing.T) {
	doc := &Document{
		Fleet:    []int{2, 1},
		Solution: []string{"SS~", "~~~", "~~S"},
	}

	b, err := doc.Build()
	require.NoError(t, err)
	assert.Equal(t, 3, b.Rows())
	assert.Equal(t, 3, b.Cols())
	require.NoError(t, b.VerifyTotals())
	require.True(t, b.HasSolution())
	assert.Equal(t, board.Ship, b.SolutionAt(0, 0))
	assert.Equal(t, board.Sea, b.SolutionAt(1, 1))
}

func TestBuildDerivesHintShapesFromSolution(t *testing.T) {
	doc := &Document{
		Fleet:    []int{2, 1},
		Solution: []string{"SS~", "~~~", "~~S"},
		Hints: []Hint{
			// Declared shape disagrees with the solution; the solution
			// wins.
			{Row: 0, Col: 0, State: "ship", Shape: "sub"},
			{Row: 2, Col: 2, State: "ship"},
		},
	}

	b, err := doc.Build()
	require.NoError(t, err)
	assert.Equal(t, board.ShapeLeft, b.At(0, 0).Shape)
	assert.Equal(t, board.ShapeSub, b.At(2, 2).Shape)
}

func TestBuildRequiresClues(t *testing.T) {
	doc := &Document{Fleet: []int{1}}

	_, err := doc.Build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rows and cols")
}

func TestBuildRejectsBadHints(t *testing.T) {
	doc := &Document{
		Rows:  []int{0},
		Cols:  []int{0},
		Fleet: []int{1},
		Hints: []Hint{{Row: 5, Col: 0, State: "sea"}},
	}

	_, err := doc.Build()
	require.Error(t, err)
	assert.True(t, board.IsConfigError(err))
}
