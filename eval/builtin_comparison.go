package eval

import (
	"github.com/kemasdimas/ffs/internal/ffserr"
	"github.com/kemasdimas/ffs/parser"
	"github.com/kemasdimas/ffs/types"
)

func init() {
	DefaultRegistry.Register("eq", builtinEq)
	DefaultRegistry.Register("gt", orderingBuiltin("gt", func(c int) bool { return c > 0 }))
	DefaultRegistry.Register("gte", orderingBuiltin("gte", func(c int) bool { return c >= 0 }))
	DefaultRegistry.Register("lt", orderingBuiltin("lt", func(c int) bool { return c < 0 }))
	DefaultRegistry.Register("lte", orderingBuiltin("lte", func(c int) bool { return c <= 0 }))
}

// builtinEq accepts any two Values and uses structural equality;
// numeric Int/Float compare by numeric value via Value.Equal.
func builtinEq(ev *Evaluator, args []parser.Expr) (types.Value, error) {
	vals, err := ev.evalArgs(args, 2)
	if err != nil {
		return nil, err
	}
	return types.NewBool(vals[0].Equal(vals[1])), nil
}

// orderingBuiltin builds gt/gte/lt/lte from a comparator applied to
// the three-way ordering result: both arguments must be mutually
// comparable scalars of the same kind (numeric, string, or bool).
func orderingBuiltin(name string, accept func(cmp int) bool) BuiltinFunc {
	return func(ev *Evaluator, args []parser.Expr) (types.Value, error) {
		vals, err := ev.evalArgs(args, 2)
		if err != nil {
			return nil, err
		}
		cmp, err := compareScalars(ev.Formula, name, vals[0], vals[1])
		if err != nil {
			return nil, err
		}
		return types.NewBool(accept(cmp)), nil
	}
}

// compareScalars returns -1/0/1 comparing a against b, requiring both
// to be numeric, both Str, or both Bool. Mixed kinds are a TypeError.
func compareScalars(formula, name string, a, b types.Value) (int, error) {
	if types.IsNumeric(a) && types.IsNumeric(b) {
		af, _ := types.AsFloat64(a)
		bf, _ := types.AsFloat64(b)
		switch {
		case af < bf:
			return -1, nil
		case af > bf:
			return 1, nil
		default:
			return 0, nil
		}
	}
	if as, ok := a.(types.StrValue); ok {
		if bs, ok := b.(types.StrValue); ok {
			switch {
			case as.Val < bs.Val:
				return -1, nil
			case as.Val > bs.Val:
				return 1, nil
			default:
				return 0, nil
			}
		}
	}
	if ab, ok := a.(types.BoolValue); ok {
		if bb, ok := b.(types.BoolValue); ok {
			switch {
			case ab.Val == bb.Val:
				return 0, nil
			case !ab.Val && bb.Val:
				return -1, nil
			default:
				return 1, nil
			}
		}
	}
	return 0, ffserr.Type(formula, "%s: mismatched or non-orderable operand kinds %s, %s", name, a.Kind(), b.Kind())
}
