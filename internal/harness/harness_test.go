package harness

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAllScenariosPass executes every checked-in scenario and requires
// its declared expectations to hold.
func TestAllScenariosPass(t *testing.T) {
	paths, err := filepath.Glob("testdata/scenarios/*.yaml")
	require.NoError(t, err)
	require.NotEmpty(t, paths, "no scenarios found")

	for _, path := range paths {
		t.Run(filepath.Base(path), func(t *testing.T) {
			result, err := RunFile(path)
			require.NoError(t, err)
			for _, failure := range result.Failures {
				t.Errorf("expectation: %s", failure)
			}
			assert.True(t, result.Pass())
		})
	}
}

func TestRunReportsFailuresWithoutError(t *testing.T) {
	s, err := LoadScenario("testdata/scenarios/hinted_sub.yaml")
	require.NoError(t, err)

	// Flip an expectation; the run itself must still succeed.
	wrong := 3
	s.Expect.MaxTier = &wrong

	result, err := Run(s)
	require.NoError(t, err)
	assert.False(t, result.Pass())
	require.Len(t, result.Failures, 1)
	assert.Contains(t, result.Failures[0], "max_tier")
}

func TestRunComputesPuzzleHash(t *testing.T) {
	result, err := RunFile("testdata/scenarios/lone_ship.yaml")
	require.NoError(t, err)
	assert.Len(t, result.PuzzleHash, 64)

	// Same document, same fingerprint.
	again, err := RunFile("testdata/scenarios/lone_ship.yaml")
	require.NoError(t, err)
	assert.Equal(t, result.PuzzleHash, again.PuzzleHash)
}
