// Package schema validates evaluation suites before they are run.
package schema

import (
	"fmt"
	"strings"

	"github.com/dshills/ruleeval/internal/rules"
	"github.com/dshills/ruleeval/internal/scenario"
)

// ValidationError describes a single schema violation.
type ValidationError struct {
	Path    string
	Message string
}

func (v ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Path, v.Message)
}

// Validate checks a suite for structural validity and the input ranges the
// evaluators assume. Negative engagement counts and out-of-range credit
// scores are accepted: they exercise the sentinel results.
func Validate(s *scenario.Suite) []ValidationError {
	var errs []ValidationError

	if strings.TrimSpace(s.Name) == "" {
		errs = append(errs, ValidationError{"name", "required"})
	}
	if len(s.Cases) == 0 {
		errs = append(errs, ValidationError{"cases", "at least one case required"})
	}

	ids := make(map[string]bool)
	for i, c := range s.Cases {
		prefix := casePrefix(i, c)

		if c.ID == "" {
			errs = append(errs, ValidationError{prefix + ".id", "required"})
		} else if ids[c.ID] {
			errs = append(errs, ValidationError{prefix + ".id", fmt.Sprintf("duplicate ID: %q", c.ID)})
		} else {
			ids[c.ID] = true
		}

		if !c.Kind.Valid() {
			errs = append(errs, ValidationError{prefix + ".kind", fmt.Sprintf("invalid: %q", c.Kind)})
			continue
		}
		if c.Input() == nil {
			errs = append(errs, ValidationError{prefix + "." + string(c.Kind), "input block required for kind"})
			continue
		}
		if c.InputBlocks() > 1 {
			errs = append(errs, ValidationError{prefix, "only the input block matching kind may be set"})
		}

		errs = append(errs, validateInput(prefix, c)...)
		errs = append(errs, validateExpect(prefix+".expect", c)...)
	}

	return errs
}

func casePrefix(i int, c scenario.Case) string {
	if c.Line > 0 {
		return fmt.Sprintf("cases[%d](L%d)", i, c.Line)
	}
	return fmt.Sprintf("cases[%d]", i)
}

func validateInput(prefix string, c scenario.Case) []ValidationError {
	var errs []ValidationError
	switch c.Kind {
	case scenario.KindRisk:
		if c.Risk.LatePayments < 0 {
			errs = append(errs, ValidationError{prefix + ".risk.late_payments", "must be >= 0"})
		}
	case scenario.KindAccess:
		a := c.Access
		if a.Hour24 < 0 || a.Hour24 > 23 {
			errs = append(errs, ValidationError{prefix + ".access.hour24", fmt.Sprintf("must be in 0..23, got %d", a.Hour24)})
		}
		if a.FailedLogins < 0 {
			errs = append(errs, ValidationError{prefix + ".access.failed_logins", "must be >= 0"})
		}
		if a.Flags < 0 || a.Flags&^rules.FlagMask != 0 {
			errs = append(errs, ValidationError{prefix + ".access.flags", fmt.Sprintf("must be a 4-bit mask, got %#x", a.Flags)})
		}
	}
	return errs
}

func validateExpect(path string, c scenario.Case) []ValidationError {
	if c.Expect == nil {
		return nil
	}
	switch c.Kind {
	case scenario.KindRisk:
		s, ok := c.Expect.(string)
		if !ok || !rules.RiskTier(s).Valid() {
			return []ValidationError{{path, fmt.Sprintf("must be a risk tier, got %v", c.Expect)}}
		}
	case scenario.KindAccess:
		if _, ok := c.Expect.(bool); !ok {
			return []ValidationError{{path, fmt.Sprintf("must be a boolean, got %v", c.Expect)}}
		}
	default:
		if _, ok := c.Expect.(int); !ok {
			return []ValidationError{{path, fmt.Sprintf("must be an integer, got %v", c.Expect)}}
		}
	}
	return nil
}
