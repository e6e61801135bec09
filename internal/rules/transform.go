package rules

// Stage-1 branches of BoundedTransform, in evaluation order.
const (
	BranchTriangle = iota + 1
	BranchLargeZ
	BranchEqual
	BranchDefault
)

const (
	largeZ      = 100
	parityBonus = 7
)

// TransformTrace records how BoundedTransform reached its result.
type TransformTrace struct {
	Branch   int  `json:"branch"`
	Stage1   int  `json:"stage1"`
	Adjusted bool `json:"adjusted"`
	Result   int  `json:"result"`
}

// BoundedTransform maps three integers to one through a first-match cascade
// followed by a parity adjustment.
func BoundedTransform(x, y, z int) int {
	return ExplainTransform(x, y, z).Result
}

// ExplainTransform is BoundedTransform with the intermediate values exposed.
func ExplainTransform(x, y, z int) TransformTrace {
	var t TransformTrace
	switch {
	case x > 0 && y > 0 && z > 0 && x+y > z && y+z > x && x+z > y:
		t.Branch, t.Stage1 = BranchTriangle, x*y+z
	case (x <= 0 || y <= 0) && z > largeZ:
		t.Branch, t.Stage1 = BranchLargeZ, z-(x+y)
	case (x == 0 && y == 0 && z == 0) || (x == y && y == z):
		t.Branch, t.Stage1 = BranchEqual, x+y+z
	default:
		t.Branch, t.Stage1 = BranchDefault, x-y+z
	}

	t.Result = t.Stage1
	// Parity is taken from the original x and y, not from the stage-1 result.
	if (t.Stage1%2 == 0 && x&1 == 1) || (t.Stage1%3 == 0 && y&1 == 0) {
		t.Result += parityBonus
		t.Adjusted = true
	}
	return t
}
