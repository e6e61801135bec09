package report

// Verdict summarizes how a run compared against its expectations.
type Verdict string

const (
	VerdictAllPassed  Verdict = "ALL_PASSED"
	VerdictUnchecked  Verdict = "UNCHECKED"
	VerdictMismatches Verdict = "MISMATCHES"
)

func (v Verdict) Valid() bool {
	switch v {
	case VerdictAllPassed, VerdictUnchecked, VerdictMismatches:
		return true
	}
	return false
}

// Status is the comparison result of a single case.
type Status string

const (
	StatusPass Status = "PASS"
	StatusFail Status = "FAIL"
	StatusNA   Status = "N/A"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPass, StatusFail, StatusNA:
		return true
	}
	return false
}

// order returns a sort key (lower = shown first).
func (s Status) order() int {
	switch s {
	case StatusFail:
		return 0
	case StatusNA:
		return 1
	case StatusPass:
		return 2
	default:
		return 3
	}
}
