package report

import (
	"fmt"

	"github.com/dshills/ruleeval/internal/rules"
	"github.com/dshills/ruleeval/internal/scenario"
)

// ComputeSummary derives the verdict and counts from results.
func ComputeSummary(results []Result) Summary {
	s := Summary{Total: len(results)}

	for _, r := range results {
		switch r.Status {
		case StatusPass:
			s.Passed++
		case StatusFail:
			s.Failed++
		default:
			s.Unchecked++
		}

		switch r.Kind {
		case scenario.KindAccess:
			if allowed, ok := r.Output.(bool); ok {
				if allowed {
					s.Allowed++
				} else {
					s.Denied++
				}
			}
		case scenario.KindRisk:
			if tier, ok := r.Output.(rules.RiskTier); ok {
				if s.Tiers == nil {
					s.Tiers = make(map[string]int)
				}
				s.Tiers[string(tier)]++
			}
		}
	}

	switch {
	case s.Failed > 0:
		s.Verdict = VerdictMismatches
	case s.Total > 0 && s.Passed == s.Total:
		s.Verdict = VerdictAllPassed
	default:
		s.Verdict = VerdictUnchecked
	}
	return s
}

// FormatValue renders an evaluator output or expectation for display.
func FormatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return "-"
	case rules.RiskTier:
		return string(x)
	default:
		return fmt.Sprint(x)
	}
}
