// Package eval walks a parsed formula's expression tree against an
// environment and reduces it to a single Value, dispatching the
// built-in function catalogue along the way.
package eval

import (
	"strings"
	"time"

	"github.com/kemasdimas/ffs/internal/ffserr"
	"github.com/kemasdimas/ffs/parser"
	"github.com/kemasdimas/ffs/types"
)

// Evaluator holds the state one call to evaluate needs: the original
// formula text (for error context), the coerced environment, the
// builtin registry, and a clock seam so tests can freeze now().
type Evaluator struct {
	Formula  string
	Env      map[string]types.Value
	Registry *Registry
	Now      func() time.Time
}

// New builds an Evaluator using the default builtin registry and the
// system clock.
func New(formula string, env map[string]types.Value) *Evaluator {
	return &Evaluator{
		Formula:  formula,
		Env:      env,
		Registry: DefaultRegistry,
		Now:      time.Now,
	}
}

// Eval reduces expr to a Value, recursing into children as needed.
func (ev *Evaluator) Eval(expr parser.Expr) (types.Value, error) {
	switch n := expr.(type) {
	case parser.BoolLit:
		return types.NewBool(n.Value), nil

	case parser.NumLit:
		if n.IsFloat {
			return types.NewFloat(n.FloatVal), nil
		}
		return types.NewInt(n.IntVal), nil

	case parser.StrLit:
		return types.NewStr(n.Value), nil

	case parser.EnvGet:
		v, ok := ev.Env[n.Key]
		if !ok {
			return types.Null, nil
		}
		return v, nil

	case parser.ArrayLit:
		elements := make([]types.Value, len(n.Elements))
		for i, child := range n.Elements {
			v, err := ev.Eval(child)
			if err != nil {
				return nil, err
			}
			elements[i] = v
		}
		return types.NewList(elements), nil

	case parser.RangeLit:
		return ev.evalRangeLit(n)

	case parser.Call:
		return ev.evalCall(n)

	default:
		return nil, ffserr.Type(ev.Formula, "unrecognized expression node %T", expr)
	}
}

func (ev *Evaluator) evalRangeLit(n parser.RangeLit) (types.Value, error) {
	lo, err := ev.Eval(n.Lo)
	if err != nil {
		return nil, err
	}
	hi, err := ev.Eval(n.Hi)
	if err != nil {
		return nil, err
	}
	loI, ok := lo.(types.IntValue)
	if !ok {
		return nil, ffserr.Type(ev.Formula, "range bounds must be Int, got %s", lo.Kind())
	}
	hiI, ok := hi.(types.IntValue)
	if !ok {
		return nil, ffserr.Type(ev.Formula, "range bounds must be Int, got %s", hi.Kind())
	}
	if loI.Val > hiI.Val {
		return nil, ffserr.Domain(ev.Formula, "inverted range [%d:%d]", loI.Val, hiI.Val)
	}
	return types.NewRange(loI.Val, hiI.Val), nil
}

func (ev *Evaluator) evalCall(n parser.Call) (types.Value, error) {
	name := strings.ToLower(n.Name)
	fn, ok := ev.Registry.Get(name)
	if !ok {
		return nil, ffserr.UnknownFunction(ev.Formula, n.Name)
	}
	return fn(ev, n.Args)
}

// evalArgs evaluates every argument eagerly, left to right, and
// enforces exact arity. Builtins that need lazy evaluation (if) do
// not call this helper.
func (ev *Evaluator) evalArgs(args []parser.Expr, want int) ([]types.Value, error) {
	if len(args) != want {
		return nil, ffserr.Arity(ev.Formula, "expected %d argument(s), got %d", want, len(args))
	}
	vals := make([]types.Value, len(args))
	for i, a := range args {
		v, err := ev.Eval(a)
		if err != nil {
			return nil, err
		}
		vals[i] = v
	}
	return vals, nil
}

// evalArgsMin evaluates every argument eagerly and requires at least
// min of them, for variadic builtins (and, or).
func (ev *Evaluator) evalArgsMin(args []parser.Expr, min int) ([]types.Value, error) {
	if len(args) < min {
		return nil, ffserr.Arity(ev.Formula, "expected at least %d argument(s), got %d", min, len(args))
	}
	vals := make([]types.Value, len(args))
	for i, a := range args {
		v, err := ev.Eval(a)
		if err != nil {
			return nil, err
		}
		vals[i] = v
	}
	return vals, nil
}

// evalArgsRange evaluates every argument eagerly, requiring the count
// to fall within [min, max]. Used by log(x)/log(x, base).
func (ev *Evaluator) evalArgsRange(args []parser.Expr, min, max int) ([]types.Value, error) {
	if len(args) < min || len(args) > max {
		return nil, ffserr.Arity(ev.Formula, "expected %d to %d argument(s), got %d", min, max, len(args))
	}
	vals := make([]types.Value, len(args))
	for i, a := range args {
		v, err := ev.Eval(a)
		if err != nil {
			return nil, err
		}
		vals[i] = v
	}
	return vals, nil
}
