// Package render produces Markdown and plain-text output from a report.
package render

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/dshills/ruleeval/internal/report"
	"github.com/dshills/ruleeval/internal/scenario"
)

var kindTitles = map[scenario.Kind]string{
	scenario.KindEngagement: "Engagement Scores",
	scenario.KindRisk:       "Risk Tiers",
	scenario.KindAccess:     "Access Decisions",
	scenario.KindLexical:    "Lexical Scores",
	scenario.KindTransform:  "Bounded Transforms",
}

// Markdown renders a report as a Markdown document.
func Markdown(r *report.Report) string {
	var b strings.Builder

	// Summary
	b.WriteString("# Rule Evaluation Report\n\n")
	suite := r.Input.Suite
	if r.Input.Builtin {
		suite += " (built-in)"
	}
	fmt.Fprintf(&b, "**Suite:** %s\n", suite)
	fmt.Fprintf(&b, "**Verdict:** %s\n", r.Summary.Verdict)
	fmt.Fprintf(&b, "**Cases:** %d total, %d passed, %d failed, %d unchecked\n",
		r.Summary.Total, r.Summary.Passed, r.Summary.Failed, r.Summary.Unchecked)
	if r.Summary.Allowed+r.Summary.Denied > 0 {
		fmt.Fprintf(&b, "**Access:** %d allowed, %d denied\n", r.Summary.Allowed, r.Summary.Denied)
	}
	if len(r.Summary.Tiers) > 0 {
		fmt.Fprintf(&b, "**Risk tiers:** %s\n", formatTiers(r.Summary.Tiers))
	}
	b.WriteString("\n")

	if len(r.Results) == 0 {
		b.WriteString("No cases evaluated.\n\n")
		return b.String()
	}

	// Mismatches with their breakdowns
	failures := filterStatus(r.Results, report.StatusFail)
	if len(failures) > 0 {
		b.WriteString("## Mismatches\n\n")
		for _, res := range failures {
			renderMismatch(&b, res)
		}
	}

	// Results by kind
	for _, k := range scenario.Kinds {
		rows := filterKind(r.Results, k)
		if len(rows) == 0 {
			continue
		}
		fmt.Fprintf(&b, "## %s\n\n", kindTitles[k])
		b.WriteString("| ID | Case | Output | Expected | Status |\n")
		b.WriteString("|----|------|--------|----------|--------|\n")
		for _, res := range rows {
			fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
				res.ID, res.Name(), report.FormatValue(res.Output), report.FormatValue(res.Expected), res.Status)
		}
		b.WriteString("\n")
	}

	for _, res := range r.Results {
		if res.ID == report.TruncatedID {
			fmt.Fprintf(&b, "_%s_\n\n", res.Detail)
		}
	}

	return b.String()
}

// Text renders one "name: value" line per result, matching the demo
// command output.
func Text(r *report.Report) string {
	var b strings.Builder
	for _, res := range r.Results {
		if res.ID == report.TruncatedID {
			fmt.Fprintf(&b, "%s\n", res.Label)
			continue
		}
		fmt.Fprintf(&b, "%s: %s", res.Name(), report.FormatValue(res.Output))
		if res.Status == report.StatusFail {
			fmt.Fprintf(&b, " (expected %s)", report.FormatValue(res.Expected))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func filterStatus(results []report.Result, st report.Status) []report.Result {
	var out []report.Result
	for _, res := range results {
		if res.Status == st {
			out = append(out, res)
		}
	}
	return out
}

func filterKind(results []report.Result, k scenario.Kind) []report.Result {
	var out []report.Result
	for _, res := range results {
		if res.Kind == k {
			out = append(out, res)
		}
	}
	return out
}

func formatTiers(tiers map[string]int) string {
	keys := make([]string, 0, len(tiers))
	for k := range tiers {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%d", k, tiers[k]))
	}
	return strings.Join(parts, ", ")
}

func renderMismatch(b *strings.Builder, res report.Result) {
	fmt.Fprintf(b, "### %s [%s]\n\n", res.Name(), res.Kind)
	if res.Line > 0 {
		fmt.Fprintf(b, "Suite line %d. ", res.Line)
	}
	fmt.Fprintf(b, "Expected **%s**, got **%s**.\n\n",
		report.FormatValue(res.Expected), report.FormatValue(res.Output))
	if res.Detail != nil {
		if data, err := json.MarshalIndent(res.Detail, "", "  "); err == nil {
			b.WriteString("```json\n")
			b.Write(data)
			b.WriteString("\n```\n\n")
		}
	}
}
