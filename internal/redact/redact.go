// Package redact masks secrets that appear in lexical text samples before a
// report is written out.
package redact

import (
	"regexp"

	"github.com/dshills/ruleeval/internal/report"
	"github.com/dshills/ruleeval/internal/scenario"
)

// Mask replaces every redacted span.
const Mask = "[REDACTED]"

var patterns []*regexp.Regexp

func init() {
	raw := []string{
		// AWS access key IDs
		`AKIA[0-9A-Z]{16}`,
		// Private key blocks
		`-----BEGIN [A-Z ]+PRIVATE KEY-----[\s\S]*?-----END [A-Z ]+PRIVATE KEY-----`,
		// Bearer tokens
		`Bearer\s+[A-Za-z0-9\-._~+/]+=*`,
		// key/secret/token/password assignments
		`(?i)(api[_-]?key|secret|token|password|passwd)\s*[:=]\s*\S+`,
		// Email addresses
		`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`,
	}
	for _, r := range raw {
		patterns = append(patterns, regexp.MustCompile(r))
	}
}

// Redact replaces secret patterns in text with Mask.
func Redact(text string) string {
	for _, p := range patterns {
		text = p.ReplaceAllString(text, Mask)
	}
	return text
}

// Report masks the lexical inputs of r in place. Scores are left untouched:
// they were computed on the original text. Inputs are copied, so the suite
// the report was built from keeps its text.
func Report(r *report.Report) int {
	n := 0
	for i := range r.Results {
		in, ok := r.Results[i].Input.(*scenario.LexicalInput)
		if !ok || in == nil {
			continue
		}
		masked := Redact(in.Text)
		if masked == in.Text {
			continue
		}
		r.Results[i].Input = &scenario.LexicalInput{Text: masked}
		n++
	}
	r.Meta.Redacted = true
	return n
}
