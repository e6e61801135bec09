package scenario

// Kind selects the evaluator a case runs through.
type Kind string

const (
	KindEngagement Kind = "engagement"
	KindRisk       Kind = "risk"
	KindAccess     Kind = "access"
	KindLexical    Kind = "lexical"
	KindTransform  Kind = "transform"
)

// Kinds lists every kind in report order.
var Kinds = []Kind{KindEngagement, KindRisk, KindAccess, KindLexical, KindTransform}

func (k Kind) Valid() bool {
	switch k {
	case KindEngagement, KindRisk, KindAccess, KindLexical, KindTransform:
		return true
	}
	return false
}
