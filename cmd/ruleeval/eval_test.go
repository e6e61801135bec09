package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/dshills/ruleeval/internal/report"
)

func projectRoot() string {
	_, filename, _, _ := runtime.Caller(0)
	return filepath.Dir(filepath.Dir(filepath.Dir(filename)))
}

func sampleSuitePath() string {
	return filepath.Join(projectRoot(), "testdata", "suites", "sample.yaml")
}

func readGolden(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(projectRoot(), "testdata", "golden", name))
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

func writeTempFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func defaultFlags(buf *bytes.Buffer) *evalFlags {
	return &evalFlags{
		format:        "text",
		parallel:      1,
		redactEnabled: true,
		maxResults:    report.DefaultMaxResults,
		logLevel:      "error",
		stdout:        buf,
	}
}

func assertExitCode(t *testing.T, err error, wantCode int) {
	t.Helper()
	if wantCode == 0 {
		if err != nil {
			t.Fatalf("expected no error, got: %v", err)
		}
		return
	}
	if err == nil {
		t.Fatalf("expected exit code %d, got nil error", wantCode)
	}
	var ee *exitErr
	if !errors.As(err, &ee) {
		t.Fatalf("expected *exitErr, got %T: %v", err, err)
	}
	if ee.code != wantCode {
		t.Errorf("exit code = %d, want %d (msg: %s)", ee.code, wantCode, ee.msg)
	}
}

// --- Pure function tests ---

func TestValidFailOn(t *testing.T) {
	for _, v := range []string{"mismatch", "MISMATCH", "deny"} {
		if !validFailOn(v) {
			t.Errorf("expected %q to be valid", v)
		}
	}
	for _, v := range []string{"", "fail", "critical"} {
		if validFailOn(v) {
			t.Errorf("expected %q to be invalid", v)
		}
	}
}

func TestFailOnMet(t *testing.T) {
	tests := []struct {
		name    string
		summary report.Summary
		failOn  string
		want    bool
	}{
		{"mismatch with failure", report.Summary{Failed: 1}, "mismatch", true},
		{"mismatch without failure", report.Summary{Passed: 3}, "mismatch", false},
		{"deny with denial", report.Summary{Denied: 1}, "deny", true},
		{"deny all allowed", report.Summary{Allowed: 2}, "deny", false},
		{"unknown", report.Summary{Failed: 5}, "other", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := failOnMet(tt.summary, tt.failOn); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

// --- runEval tests ---

func TestRunEvalSampleText(t *testing.T) {
	var buf bytes.Buffer
	err := runEval(context.Background(), sampleSuitePath(), defaultFlags(&buf))
	assertExitCode(t, err, 0)

	if got, want := buf.String(), readGolden(t, "sample.txt"); got != want {
		t.Errorf("output mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestRunEvalBuiltin(t *testing.T) {
	var buf bytes.Buffer
	f := defaultFlags(&buf)
	f.builtin = "reference"
	f.parallel = 4
	assertExitCode(t, runEval(context.Background(), "", f), 0)

	golden := readGolden(t, "demo.txt")
	// The demo adds a header line; the rest is identical.
	want := golden[strings.Index(golden, "\n")+1:]
	if buf.String() != want {
		t.Errorf("output mismatch:\ngot:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestRunEvalInputErrors(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		builtin string
	}{
		{"neither", "", ""},
		{"both", sampleSuitePath(), "reference"},
		{"missing file", "/nonexistent/suite.yaml", ""},
		{"unknown builtin", "", "nonexistent-suite-xyz"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			f := defaultFlags(&buf)
			f.builtin = tt.builtin
			assertExitCode(t, runEval(context.Background(), tt.path, f), exitInput)
		})
	}
}

func TestRunEvalValidationError(t *testing.T) {
	path := writeTempFile(t, t.TempDir(), "bad.yaml", `name: bad
cases:
  - kind: access
    access: {hour24: 24, flags: 0}
`)
	var buf bytes.Buffer
	assertExitCode(t, runEval(context.Background(), path, defaultFlags(&buf)), exitValidation)
	if buf.Len() != 0 {
		t.Error("expected no output for invalid suite")
	}
}

func TestRunEvalFailOn(t *testing.T) {
	var buf bytes.Buffer
	f := defaultFlags(&buf)
	f.failOn = "mismatch"
	assertExitCode(t, runEval(context.Background(), sampleSuitePath(), f), exitFailOn)
	if buf.Len() == 0 {
		t.Error("output must be written before the fail-on exit")
	}

	buf.Reset()
	f = defaultFlags(&buf)
	f.builtin = "reference"
	f.failOn = "mismatch"
	assertExitCode(t, runEval(context.Background(), "", f), 0)

	f.failOn = "deny"
	assertExitCode(t, runEval(context.Background(), "", f), exitFailOn)
}

func TestRunEvalFailOnUnrecognized(t *testing.T) {
	var buf bytes.Buffer
	f := defaultFlags(&buf)
	f.failOn = "sometimes"
	assertExitCode(t, runEval(context.Background(), sampleSuitePath(), f), exitInput)
}

func TestRunEvalFormatJSON(t *testing.T) {
	var buf bytes.Buffer
	f := defaultFlags(&buf)
	f.format = "json"
	assertExitCode(t, runEval(context.Background(), sampleSuitePath(), f), 0)

	var rep report.Report
	if err := json.Unmarshal(buf.Bytes(), &rep); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if rep.Tool != "ruleeval" || rep.Version != version {
		t.Errorf("unexpected tool/version: %s %s", rep.Tool, rep.Version)
	}
	if rep.Summary.Verdict != report.VerdictMismatches || rep.Summary.Total != 8 {
		t.Errorf("unexpected summary: %+v", rep.Summary)
	}
	if !strings.HasPrefix(rep.Input.SuiteHash, "sha256:") {
		t.Errorf("unexpected suite hash: %s", rep.Input.SuiteHash)
	}
	if rep.RunID == "" {
		t.Error("expected run ID")
	}
}

func TestRunEvalFormatYAML(t *testing.T) {
	var buf bytes.Buffer
	f := defaultFlags(&buf)
	f.format = "yaml"
	f.builtin = "boundaries"
	assertExitCode(t, runEval(context.Background(), "", f), 0)

	var doc map[string]any
	if err := yaml.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("output is not valid YAML: %v", err)
	}
	summary, ok := doc["summary"].(map[string]any)
	if !ok {
		t.Fatalf("missing summary in %v", doc)
	}
	if summary["verdict"] != string(report.VerdictAllPassed) {
		t.Errorf("verdict = %v", summary["verdict"])
	}
}

func TestRunEvalFormatMarkdownToFile(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "out.md")
	var buf bytes.Buffer
	f := defaultFlags(&buf)
	f.format = "md"
	f.out = outPath
	assertExitCode(t, runEval(context.Background(), sampleSuitePath(), f), 0)

	if buf.Len() != 0 {
		t.Error("expected nothing on stdout when --out is set")
	}
	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("output file not written: %v", err)
	}
	if !strings.Contains(string(data), "# Rule Evaluation Report") {
		t.Error("output file missing markdown header")
	}
}

func TestRunEvalFormatUnknown(t *testing.T) {
	var buf bytes.Buffer
	f := defaultFlags(&buf)
	f.format = "xml"
	assertExitCode(t, runEval(context.Background(), sampleSuitePath(), f), exitInput)
}

func TestRunEvalRedact(t *testing.T) {
	var buf bytes.Buffer
	f := defaultFlags(&buf)
	f.format = "json"
	assertExitCode(t, runEval(context.Background(), sampleSuitePath(), f), 0)
	if strings.Contains(buf.String(), "abc123") {
		t.Error("secret should be redacted in output")
	}

	buf.Reset()
	f.redactEnabled = false
	assertExitCode(t, runEval(context.Background(), sampleSuitePath(), f), 0)
	if !strings.Contains(buf.String(), "token=abc123") {
		t.Error("text should be kept when redaction is disabled")
	}
}

func TestRunEvalMetricsOut(t *testing.T) {
	metricsPath := filepath.Join(t.TempDir(), "ruleeval.prom")
	var buf bytes.Buffer
	f := defaultFlags(&buf)
	f.metricsOut = metricsPath
	assertExitCode(t, runEval(context.Background(), sampleSuitePath(), f), 0)

	data, err := os.ReadFile(metricsPath)
	if err != nil {
		t.Fatalf("metrics file not written: %v", err)
	}
	for _, want := range []string{
		`ruleeval_case_outcomes_total{kind="transform",status="FAIL"} 1`,
		`ruleeval_access_verdicts_total{reason="failed_logins_or_2fa",verdict="denied"} 1`,
	} {
		if !strings.Contains(string(data), want) {
			t.Errorf("metrics missing %q:\n%s", want, data)
		}
	}
}

func TestRunEvalSortAndTruncate(t *testing.T) {
	var buf bytes.Buffer
	f := defaultFlags(&buf)
	f.sortResults = true
	f.maxResults = 3
	assertExitCode(t, runEval(context.Background(), sampleSuitePath(), f), 0)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d:\n%s", len(lines), buf.String())
	}
	if lines[0] != "triangle 3-4-5: 17 (expected 24)" {
		t.Errorf("expected mismatch first, got %q", lines[0])
	}
	if lines[1] != "secret sample: 14" {
		t.Errorf("expected unchecked case second, got %q", lines[1])
	}
	if lines[2] != "Output truncated" {
		t.Errorf("expected truncation line, got %q", lines[2])
	}
}
