package eval

import (
	"math"

	"github.com/kemasdimas/ffs/internal/ffserr"
	"github.com/kemasdimas/ffs/parser"
	"github.com/kemasdimas/ffs/types"
)

func init() {
	DefaultRegistry.Register("plus", arithBuiltin("plus",
		func(a, b int64) int64 { return a + b },
		func(a, b float64) float64 { return a + b }))
	DefaultRegistry.Register("minus", arithBuiltin("minus",
		func(a, b int64) int64 { return a - b },
		func(a, b float64) float64 { return a - b }))
	DefaultRegistry.Register("times", arithBuiltin("times",
		func(a, b int64) int64 { return a * b },
		func(a, b float64) float64 { return a * b }))
	DefaultRegistry.Register("div", builtinDiv)
	DefaultRegistry.Register("rem", builtinRem)
}

func numericPair(ev *Evaluator, name string, args []parser.Expr) (types.Value, types.Value, error) {
	vals, err := ev.evalArgs(args, 2)
	if err != nil {
		return nil, nil, err
	}
	if !types.IsNumeric(vals[0]) || !types.IsNumeric(vals[1]) {
		return nil, nil, ffserr.Type(ev.Formula, "%s: expected two numeric arguments, got %s, %s", name, vals[0].Kind(), vals[1].Kind())
	}
	return vals[0], vals[1], nil
}

// arithBuiltin builds plus/minus/times. If either operand is Float,
// both promote to Float and the result is Float; otherwise the
// result stays Int.
func arithBuiltin(name string, intOp func(a, b int64) int64, floatOp func(a, b float64) float64) BuiltinFunc {
	return func(ev *Evaluator, args []parser.Expr) (types.Value, error) {
		a, b, err := numericPair(ev, name, args)
		if err != nil {
			return nil, err
		}
		ai, aIsInt := a.(types.IntValue)
		bi, bIsInt := b.(types.IntValue)
		if aIsInt && bIsInt {
			return types.NewInt(intOp(ai.Val, bi.Val)), nil
		}
		af, _ := types.AsFloat64(a)
		bf, _ := types.AsFloat64(b)
		return types.NewFloat(floatOp(af, bf)), nil
	}
}

// builtinDiv additionally promotes Int/Int division to Float when the
// dividend is not an exact multiple of the divisor, so div(7,8) =
// 0.875 rather than truncating to 0.
func builtinDiv(ev *Evaluator, args []parser.Expr) (types.Value, error) {
	a, b, err := numericPair(ev, "div", args)
	if err != nil {
		return nil, err
	}
	ai, aIsInt := a.(types.IntValue)
	bi, bIsInt := b.(types.IntValue)
	if aIsInt && bIsInt {
		if bi.Val == 0 {
			return nil, ffserr.Math(ev.Formula, "div: division by zero")
		}
		if ai.Val%bi.Val == 0 {
			return types.NewInt(ai.Val / bi.Val), nil
		}
		return types.NewFloat(float64(ai.Val) / float64(bi.Val)), nil
	}
	af, _ := types.AsFloat64(a)
	bf, _ := types.AsFloat64(b)
	if bf == 0 {
		return nil, ffserr.Math(ev.Formula, "div: division by zero")
	}
	return types.NewFloat(af / bf), nil
}

func builtinRem(ev *Evaluator, args []parser.Expr) (types.Value, error) {
	a, b, err := numericPair(ev, "rem", args)
	if err != nil {
		return nil, err
	}
	ai, aIsInt := a.(types.IntValue)
	bi, bIsInt := b.(types.IntValue)
	if aIsInt && bIsInt {
		if bi.Val == 0 {
			return nil, ffserr.Math(ev.Formula, "rem: modulo by zero")
		}
		return types.NewInt(ai.Val % bi.Val), nil
	}
	af, _ := types.AsFloat64(a)
	bf, _ := types.AsFloat64(b)
	if bf == 0 {
		return nil, ffserr.Math(ev.Formula, "rem: modulo by zero")
	}
	return types.NewFloat(math.Mod(af, bf)), nil
}
