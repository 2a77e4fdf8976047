package eval

import (
	"math"

	"github.com/kemasdimas/ffs/internal/ffserr"
	"github.com/kemasdimas/ffs/parser"
	"github.com/kemasdimas/ffs/types"
)

func init() {
	DefaultRegistry.Register("log", builtinLog)
	DefaultRegistry.Register("ln", builtinLn)
	DefaultRegistry.Register("pow", builtinPow)
	DefaultRegistry.Register("exp", builtinExp)
	DefaultRegistry.Register("map", builtinMap)
}

func numericArg(ev *Evaluator, name string, v types.Value, index int) (float64, error) {
	f, ok := types.AsFloat64(v)
	if !ok {
		return 0, ffserr.Type(ev.Formula, "%s: argument %d expected numeric, got %s", name, index, v.Kind())
	}
	return f, nil
}

// builtinLog implements log(x) (base 10) and log(x, b) (base b).
func builtinLog(ev *Evaluator, args []parser.Expr) (types.Value, error) {
	vals, err := ev.evalArgsRange(args, 1, 2)
	if err != nil {
		return nil, err
	}
	x, err := numericArg(ev, "log", vals[0], 0)
	if err != nil {
		return nil, err
	}
	if len(vals) == 2 {
		b, err := numericArg(ev, "log", vals[1], 1)
		if err != nil {
			return nil, err
		}
		if x <= 0 || b <= 0 || b == 1 {
			return nil, ffserr.Math(ev.Formula, "log: invalid base or argument (x=%v, b=%v)", x, b)
		}
		return types.NewFloat(math.Log(x) / math.Log(b)), nil
	}
	if x <= 0 {
		return nil, ffserr.Math(ev.Formula, "log: argument must be positive, got %v", x)
	}
	return types.NewFloat(math.Log10(x)), nil
}

func builtinLn(ev *Evaluator, args []parser.Expr) (types.Value, error) {
	vals, err := ev.evalArgs(args, 1)
	if err != nil {
		return nil, err
	}
	x, err := numericArg(ev, "ln", vals[0], 0)
	if err != nil {
		return nil, err
	}
	if x <= 0 {
		return nil, ffserr.Math(ev.Formula, "ln: argument must be positive, got %v", x)
	}
	return types.NewFloat(math.Log(x)), nil
}

func builtinPow(ev *Evaluator, args []parser.Expr) (types.Value, error) {
	vals, err := ev.evalArgs(args, 2)
	if err != nil {
		return nil, err
	}
	x, err := numericArg(ev, "pow", vals[0], 0)
	if err != nil {
		return nil, err
	}
	y, err := numericArg(ev, "pow", vals[1], 1)
	if err != nil {
		return nil, err
	}
	return types.NewFloat(math.Pow(x, y)), nil
}

func builtinExp(ev *Evaluator, args []parser.Expr) (types.Value, error) {
	vals, err := ev.evalArgs(args, 1)
	if err != nil {
		return nil, err
	}
	x, err := numericArg(ev, "exp", vals[0], 0)
	if err != nil {
		return nil, err
	}
	return types.NewFloat(math.Exp(x)), nil
}

// builtinMap is a linear remap from [in_lo, in_hi] to [out_lo, out_hi]
// with no clamping, so a value outside the input range maps outside
// the output range too.
func builtinMap(ev *Evaluator, args []parser.Expr) (types.Value, error) {
	vals, err := ev.evalArgs(args, 5)
	if err != nil {
		return nil, err
	}
	f := make([]float64, 5)
	for i, v := range vals {
		n, err := numericArg(ev, "map", v, i)
		if err != nil {
			return nil, err
		}
		f[i] = n
	}
	x, inLo, inHi, outLo, outHi := f[0], f[1], f[2], f[3], f[4]
	span := inHi - inLo
	if span == 0 {
		return nil, ffserr.Math(ev.Formula, "map: in_lo and in_hi must differ")
	}
	return types.NewFloat((x-inLo)/span*(outHi-outLo) + outLo), nil
}
