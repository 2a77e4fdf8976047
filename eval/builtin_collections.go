package eval

import (
	"github.com/kemasdimas/ffs/internal/ffserr"
	"github.com/kemasdimas/ffs/parser"
	"github.com/kemasdimas/ffs/types"
)

func init() {
	DefaultRegistry.Register("contains", builtinContains)
}

// builtinContains tests containment as (needle, haystack): the second
// argument must be a List or Range. A caller that passes the
// arguments in the opposite order gets a TypeError here rather than a
// silently-commuted result, since a swapped call's second argument is
// ordinarily not a collection either.
func builtinContains(ev *Evaluator, args []parser.Expr) (types.Value, error) {
	vals, err := ev.evalArgs(args, 2)
	if err != nil {
		return nil, err
	}
	needle, haystack := vals[0], vals[1]

	switch h := haystack.(type) {
	case types.ListValue:
		for _, elem := range h.Elements {
			if elem.Equal(needle) {
				return types.NewBool(true), nil
			}
		}
		return types.NewBool(false), nil
	case types.RangeValue:
		n, ok := needle.(types.IntValue)
		if !ok {
			return nil, ffserr.Type(ev.Formula, "contains: range membership requires an Int needle, got %s", needle.Kind())
		}
		return types.NewBool(h.Contains(n.Val)), nil
	default:
		return nil, ffserr.Type(ev.Formula, "contains: second argument must be List or Range, got %s", haystack.Kind())
	}
}
