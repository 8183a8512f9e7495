package harness

import (
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/roach88/bimaru/internal/puzzle"
)

// TraceSnapshot captures the firing log and outcome of a scenario
// execution for golden comparison. The solver is deterministic, so
// the snapshot is byte-stable across runs.
type TraceSnapshot struct {
	ScenarioName string
	Solved       bool
	MaxTier      int
	Difficulty   int
	Restarts     int
	FinalGrid    string
	Firings      []FiringSnapshot
	Probes       []ProbeSnapshot
}

// FiringSnapshot is one rule invocation in the log. Cells is the
// number of cells the firing resolved; individual coordinates stay out
// of the snapshot to keep goldens reviewable.
type FiringSnapshot struct {
	Seq       int
	Technique string
	Tier      int
	Cells     int
}

// ProbeSnapshot is one committed tier-5 conclusion.
type ProbeSnapshot struct {
	Seq        int
	Row, Col   int
	Hypothesis string
	Committed  string
	Reason     string
}

// snapshot flattens a result into its golden form.
func snapshot(res *Result) TraceSnapshot {
	s := TraceSnapshot{
		ScenarioName: res.ScenarioName,
		Solved:       res.Solve.Solved,
		MaxTier:      res.Solve.MaxTierRequired,
		Difficulty:   res.Solve.DifficultyScore,
		Restarts:     res.Solve.Restarts,
		FinalGrid:    res.Solve.Board.Snapshot(),
	}
	for i, f := range res.Solve.Firings {
		s.Firings = append(s.Firings, FiringSnapshot{
			Seq:       i,
			Technique: f.Technique,
			Tier:      f.Tier,
			Cells:     len(f.Deductions),
		})
	}
	for i, p := range res.Solve.T5Detail {
		s.Probes = append(s.Probes, ProbeSnapshot{
			Seq:        i,
			Row:        p.Row,
			Col:        p.Col,
			Hypothesis: p.Hypothesis.String(),
			Committed:  p.Committed.String(),
			Reason:     string(p.Reason),
		})
	}
	return s
}

// toCanonicalMap converts a snapshot to a map for canonical JSON
// serialization. Empty probe lists are omitted.
func (s *TraceSnapshot) toCanonicalMap() map[string]any {
	firings := make([]any, len(s.Firings))
	for i, f := range s.Firings {
		firings[i] = map[string]any{
			"seq":       f.Seq,
			"technique": f.Technique,
			"tier":      f.Tier,
			"cells":     f.Cells,
		}
	}
	out := map[string]any{
		"scenario_name": s.ScenarioName,
		"solved":        s.Solved,
		"max_tier":      s.MaxTier,
		"difficulty":    s.Difficulty,
		"restarts":      s.Restarts,
		"final_grid":    s.FinalGrid,
		"firings":       firings,
	}
	if len(s.Probes) > 0 {
		probes := make([]any, len(s.Probes))
		for i, p := range s.Probes {
			probes[i] = map[string]any{
				"seq":        p.Seq,
				"row":        p.Row,
				"col":        p.Col,
				"hypothesis": p.Hypothesis,
				"committed":  p.Committed,
				"reason":     p.Reason,
			}
		}
		out["probes"] = probes
	}
	return out
}

// RunWithGolden executes a scenario, fails the test on expectation
// mismatches, and compares the trace snapshot against the golden file
// testdata/golden/{scenario.Name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
func RunWithGolden(t *testing.T, scenario *Scenario) {
	t.Helper()

	result, err := Run(scenario)
	if err != nil {
		t.Fatalf("run scenario: %v", err)
	}
	for _, failure := range result.Failures {
		t.Errorf("expectation: %s", failure)
	}

	snap := snapshot(result)
	traceJSON, err := puzzle.MarshalCanonical(snap.toCanonicalMap())
	if err != nil {
		t.Fatalf("marshal snapshot: %v", err)
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, scenario.Name, traceJSON)
}
