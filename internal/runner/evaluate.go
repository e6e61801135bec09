package runner

import (
	"fmt"

	"github.com/dshills/ruleeval/internal/report"
	"github.com/dshills/ruleeval/internal/rules"
	"github.com/dshills/ruleeval/internal/scenario"
)

// Evaluate runs a single case through its evaluator and compares the output
// against the expectation, if any.
func Evaluate(c *scenario.Case) (report.Result, error) {
	res := report.Result{
		ID:       c.ID,
		Label:    c.Label,
		Kind:     c.Kind,
		Line:     c.Line,
		Input:    c.Input(),
		Expected: c.Expect,
	}
	if res.Input == nil {
		return res, fmt.Errorf("runner.Evaluate: case %s: no %q input", c.ID, c.Kind)
	}

	switch c.Kind {
	case scenario.KindEngagement:
		b := c.Engagement.Explain()
		res.Output, res.Detail = b.Total, b
	case scenario.KindRisk:
		d := c.Risk.Explain()
		res.Output, res.Detail = d.Tier, d
	case scenario.KindAccess:
		d := c.Access.Explain()
		res.Output, res.Detail = d.Allowed, d
	case scenario.KindLexical:
		comp := rules.Compose(c.Lexical.Text)
		res.Output, res.Detail = rules.WordScore(c.Lexical.Text), comp
	case scenario.KindTransform:
		tr := rules.ExplainTransform(c.Transform.X, c.Transform.Y, c.Transform.Z)
		res.Output, res.Detail = tr.Result, tr
	}

	res.Status = compare(res.Output, c.Expect)
	return res, nil
}

func compare(output, expect any) report.Status {
	if expect == nil {
		return report.StatusNA
	}
	var match bool
	switch out := output.(type) {
	case rules.RiskTier:
		s, ok := expect.(string)
		match = ok && rules.RiskTier(s) == out
	default:
		match = output == expect
	}
	if match {
		return report.StatusPass
	}
	return report.StatusFail
}
