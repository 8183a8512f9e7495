package cli

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordedRun solves a puzzle into a fresh trace store and returns the
// store path and run ID.
func recordedRun(t *testing.T) (string, string) {
	t.Helper()
	path := writePuzzle(t, loneShipYAML)
	dbPath := filepath.Join(t.TempDir(), "traces.db")

	out, _, err := execute(t, "solve", path, "--db", dbPath, "--format", "json")
	require.NoError(t, err)
	report := solveResponse(t, out)
	require.NotEmpty(t, report.RunID)
	return dbPath, report.RunID
}

func TestTraceListsRuns(t *testing.T) {
	dbPath, runID := recordedRun(t)

	out, _, err := execute(t, "trace", "--db", dbPath)
	require.NoError(t, err)
	assert.Contains(t, out, runID)
	assert.Contains(t, out, "solved")
}

func TestTraceShowsRunDetail(t *testing.T) {
	dbPath, runID := recordedRun(t)

	out, _, err := execute(t, "trace", "--db", dbPath, "--run", runID, "--format", "json")
	require.NoError(t, err)

	var resp struct {
		Status string         `json:"status"`
		Data   map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, runID, resp.Data["id"])
	assert.Equal(t, true, resp.Data["solved"])
	assert.NotEmpty(t, resp.Data["firings"])
	assert.Contains(t, resp.Data["final_grid"], "S~~")
}

func TestTraceUnknownRunIsCommandError(t *testing.T) {
	dbPath, _ := recordedRun(t)

	out, _, err := execute(t, "trace", "--db", dbPath, "--run", "missing", "--format", "json")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, out, ErrCodeNotFound)
}

func TestTraceRequiresDatabaseFlag(t *testing.T) {
	_, _, err := execute(t, "trace")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db")
}

func TestTraceFilterByPuzzleHash(t *testing.T) {
	dbPath, runID := recordedRun(t)

	out, _, err := execute(t, "trace", "--db", dbPath, "--puzzle", "no-such-hash")
	require.NoError(t, err)
	assert.NotContains(t, out, runID)
	assert.Contains(t, out, "no runs recorded")
}
