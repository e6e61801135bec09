// Package report defines the output of a suite run.
package report

import "github.com/dshills/ruleeval/internal/scenario"

// Report is the top-level output object.
type Report struct {
	Tool    string   `json:"tool" yaml:"tool"`
	Version string   `json:"version" yaml:"version"`
	RunID   string   `json:"run_id" yaml:"run_id"`
	Input   Input    `json:"input" yaml:"input"`
	Summary Summary  `json:"summary" yaml:"summary"`
	Results []Result `json:"results" yaml:"results"`
	Meta    Meta     `json:"meta" yaml:"meta"`
}

// Input describes the suite that was evaluated.
type Input struct {
	Suite     string `json:"suite" yaml:"suite"`
	SuiteFile string `json:"suite_file,omitempty" yaml:"suite_file,omitempty"`
	SuiteHash string `json:"suite_hash" yaml:"suite_hash"`
	Builtin   bool   `json:"builtin" yaml:"builtin"`
}

// Summary holds the verdict and the aggregate counts of a run.
type Summary struct {
	Verdict   Verdict        `json:"verdict" yaml:"verdict"`
	Total     int            `json:"total" yaml:"total"`
	Passed    int            `json:"passed" yaml:"passed"`
	Failed    int            `json:"failed" yaml:"failed"`
	Unchecked int            `json:"unchecked" yaml:"unchecked"`
	Allowed   int            `json:"allowed" yaml:"allowed"`
	Denied    int            `json:"denied" yaml:"denied"`
	Tiers     map[string]int `json:"tiers,omitempty" yaml:"tiers,omitempty"`
}

// Result is the outcome of one case.
type Result struct {
	ID       string        `json:"id" yaml:"id"`
	Label    string        `json:"label,omitempty" yaml:"label,omitempty"`
	Kind     scenario.Kind `json:"kind" yaml:"kind"`
	Line     int           `json:"line,omitempty" yaml:"line,omitempty"`
	Input    any           `json:"input" yaml:"input"`
	Output   any           `json:"output" yaml:"output"`
	Expected any           `json:"expected,omitempty" yaml:"expected,omitempty"`
	Status   Status        `json:"status" yaml:"status"`
	// Detail is the evaluator's explain breakdown.
	Detail any `json:"detail,omitempty" yaml:"detail,omitempty"`
}

// Name returns the label, falling back to the ID.
func (r Result) Name() string {
	if r.Label != "" {
		return r.Label
	}
	return r.ID
}

// Meta records the settings used for the run.
type Meta struct {
	Parallel int  `json:"parallel" yaml:"parallel"`
	Redacted bool `json:"redacted" yaml:"redacted"`
}
