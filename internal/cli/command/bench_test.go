package command

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/yndnr/tabsample/internal/bench"
)

func TestBench_JSON(t *testing.T) {
	stdout, _, err := runApp(t, "-o", "json", "--seed", "1",
		"bench", "-n", "20", "--sizes", "5,50", "--shapes", "dense", "--shapes", "holey")
	if err != nil {
		t.Fatalf("bench error = %v", err)
	}

	var report bench.Report
	if err := json.Unmarshal([]byte(stdout), &report); err != nil {
		t.Fatalf("unmarshal %q: %v", stdout, err)
	}
	if report.Iterations != 20 {
		t.Errorf("Iterations = %d, want 20", report.Iterations)
	}
	if len(report.Results) != 4 {
		t.Fatalf("Results = %d, want 4", len(report.Results))
	}
	if r := report.Results[0]; r.Shape != "dense" || r.Size != 5 || r.Verdict != "dense(5)" {
		t.Errorf("Results[0] = %+v", r)
	}
	if r := report.Results[3]; r.Shape != "holey" || r.Size != 50 || r.Verdict != "sparse" {
		t.Errorf("Results[3] = %+v", r)
	}
}

func TestBench_TableWithProgress(t *testing.T) {
	stdout, stderr, err := runApp(t, "--log-level", "error",
		"bench", "-n", "5", "--sizes", "3", "--shapes", "strings")
	if err != nil {
		t.Fatalf("bench error = %v", err)
	}

	if !strings.HasPrefix(stdout, "run ") {
		t.Errorf("bench output should start with the run line: %q", stdout)
	}
	if !strings.Contains(stdout, "SHAPE") || !strings.Contains(stdout, "strings") {
		t.Errorf("bench table = %q", stdout)
	}
	if !strings.Contains(stderr, "1/1 done") {
		t.Errorf("progress missing from stderr: %q", stderr)
	}
}

func TestBench_InvalidShape(t *testing.T) {
	if _, _, err := runApp(t, "bench", "--shapes", "cube"); err == nil {
		t.Error("bench should reject an unknown shape")
	}
}
