package eval

import (
	"strconv"

	"github.com/kemasdimas/ffs/types"
)

// Project reduces the root Value of a completed evaluation to the
// public result type. It never errors: anything that is not a
// cleanly castable scalar becomes 0.0; callers already got their
// chance to fail earlier, during Eval.
func Project(v types.Value) float32 {
	switch x := v.(type) {
	case types.BoolValue:
		if x.Val {
			return 1
		}
		return 0
	case types.IntValue:
		return float32(x.Val)
	case types.FloatValue:
		return float32(x.Val)
	case types.StrValue:
		f, err := strconv.ParseFloat(x.Val, 32)
		if err != nil {
			return 0
		}
		return float32(f)
	default:
		return 0
	}
}
