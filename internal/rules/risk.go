package rules

// RiskTier is the label produced by the risk classifier.
type RiskTier string

const (
	RiskInvalid RiskTier = "invalid"
	RiskLow     RiskTier = "low"
	RiskMedium  RiskTier = "medium"
	RiskHigh    RiskTier = "high"
	RiskUnknown RiskTier = "unknown"
)

func (t RiskTier) Valid() bool {
	switch t {
	case RiskInvalid, RiskLow, RiskMedium, RiskHigh, RiskUnknown:
		return true
	}
	return false
}

const maxCreditScore = 850

// FinancialProfile is the input to the risk classifier.
type FinancialProfile struct {
	CreditScore  int     `json:"credit_score" yaml:"credit_score"`
	LatePayments int     `json:"late_payments" yaml:"late_payments"`
	DebtRatio    float64 `json:"debt_ratio" yaml:"debt_ratio"`
	IsStudent    bool    `json:"is_student" yaml:"is_student"`
	HasJob       bool    `json:"has_job" yaml:"has_job"`
}

// RiskDecision is a tier plus the 1-based cascade rule that produced it.
// Rule is 0 when no rule matched and the tier is RiskUnknown.
type RiskDecision struct {
	Tier RiskTier `json:"tier"`
	Rule int      `json:"rule"`
}

// RiskCategory classifies a financial profile. The first matching rule wins.
func RiskCategory(creditScore, latePayments int, debtRatio float64, isStudent, hasJob bool) RiskTier {
	return FinancialProfile{
		CreditScore:  creditScore,
		LatePayments: latePayments,
		DebtRatio:    debtRatio,
		IsStudent:    isStudent,
		HasJob:       hasJob,
	}.Classify()
}

// Classify returns the risk tier for p.
func (p FinancialProfile) Classify() RiskTier {
	return p.Explain().Tier
}

// Explain evaluates the cascade in order. Bounds are strict where written
// as strict: a debt ratio of exactly 0.30 does not qualify for rule 2.
func (p FinancialProfile) Explain() RiskDecision {
	switch {
	case p.CreditScore < 0 || p.CreditScore > maxCreditScore || p.DebtRatio < 0.0:
		return RiskDecision{Tier: RiskInvalid, Rule: 1}
	case (p.CreditScore >= 750 && p.LatePayments == 0 && p.DebtRatio < 0.30) ||
		(p.CreditScore >= 700 && p.LatePayments <= 1 && p.DebtRatio < 0.25):
		return RiskDecision{Tier: RiskLow, Rule: 2}
	case (p.CreditScore >= 650 && p.LatePayments <= 2 && p.DebtRatio < 0.40 && p.HasJob) ||
		(p.IsStudent && p.CreditScore >= 620 && p.DebtRatio < 0.35):
		return RiskDecision{Tier: RiskMedium, Rule: 3}
	case (p.CreditScore < 600 && p.LatePayments > 2) || p.DebtRatio > 0.60:
		return RiskDecision{Tier: RiskHigh, Rule: 4}
	default:
		return RiskDecision{Tier: RiskUnknown}
	}
}
