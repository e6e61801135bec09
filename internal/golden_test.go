package internal

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/dshills/ruleeval/internal/render"
	"github.com/dshills/ruleeval/internal/report"
	"github.com/dshills/ruleeval/internal/runner"
	"github.com/dshills/ruleeval/internal/scenario"
	"github.com/dshills/ruleeval/internal/schema"
)

func projectRoot() string {
	_, filename, _, _ := runtime.Caller(0)
	return filepath.Dir(filepath.Dir(filename))
}

func TestGoldenSampleSuite(t *testing.T) {
	root := projectRoot()

	// Load and validate the suite
	s, err := scenario.Load(filepath.Join(root, "testdata", "suites", "sample.yaml"))
	if err != nil {
		t.Fatalf("failed to load suite: %v", err)
	}
	scenario.InferCaseIDs(s)
	for _, e := range schema.Validate(s) {
		t.Errorf("validation error: %s", e)
	}

	// Evaluate
	rep, err := runner.Run(context.Background(), s, runner.Options{
		Tool:     "ruleeval",
		Version:  "golden",
		Parallel: 3,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	// Compare the text rendering
	want, err := os.ReadFile(filepath.Join(root, "testdata", "golden", "sample.txt"))
	if err != nil {
		t.Fatalf("failed to read golden file: %v", err)
	}
	if got := render.Text(rep); got != string(want) {
		t.Errorf("text output differs from golden:\ngot:\n%s\nwant:\n%s", got, want)
	}

	// Verify the summary
	sum := rep.Summary
	if sum.Verdict != report.VerdictMismatches {
		t.Errorf("expected MISMATCHES verdict, got %s", sum.Verdict)
	}
	if sum.Total != 8 || sum.Passed != 6 || sum.Failed != 1 || sum.Unchecked != 1 {
		t.Errorf("unexpected counts: %+v", sum)
	}
	if sum.Allowed != 1 || sum.Denied != 1 {
		t.Errorf("unexpected access counts: %+v", sum)
	}

	// Verify sorting puts the mismatch first
	report.SortResults(rep.Results)
	if rep.Results[0].ID != "xform-claimed" {
		t.Errorf("expected xform-claimed first after sort, got %s", rep.Results[0].ID)
	}
	if !strings.Contains(render.Markdown(rep), "### triangle 3-4-5 [transform]") {
		t.Error("markdown missing mismatch section")
	}

	// Verify JSON output is stable across a second marshal
	data1, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		t.Fatalf("first marshal failed: %v", err)
	}
	data2, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		t.Fatalf("second marshal failed: %v", err)
	}
	if string(data1) != string(data2) {
		t.Error("JSON output is not deterministic")
	}
}
