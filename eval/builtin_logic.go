package eval

import (
	"github.com/kemasdimas/ffs/internal/ffserr"
	"github.com/kemasdimas/ffs/parser"
	"github.com/kemasdimas/ffs/types"
)

func init() {
	DefaultRegistry.Register("not", builtinNot)
	DefaultRegistry.Register("and", builtinAnd)
	DefaultRegistry.Register("or", builtinOr)
	DefaultRegistry.Register("if", builtinIf)
}

func builtinNot(ev *Evaluator, args []parser.Expr) (types.Value, error) {
	vals, err := ev.evalArgs(args, 1)
	if err != nil {
		return nil, err
	}
	b, ok := vals[0].(types.BoolValue)
	if !ok {
		return nil, ffserr.Type(ev.Formula, "not: expected Bool, got %s", vals[0].Kind())
	}
	return types.NewBool(!b.Val), nil
}

// builtinAnd evaluates every argument (no short-circuit guarantee)
// and requires each to be Bool.
func builtinAnd(ev *Evaluator, args []parser.Expr) (types.Value, error) {
	vals, err := ev.evalArgsMin(args, 1)
	if err != nil {
		return nil, err
	}
	result := true
	for i, v := range vals {
		b, ok := v.(types.BoolValue)
		if !ok {
			return nil, ffserr.Type(ev.Formula, "and: argument %d expected Bool, got %s", i, v.Kind())
		}
		if !b.Val {
			result = false
		}
	}
	return types.NewBool(result), nil
}

func builtinOr(ev *Evaluator, args []parser.Expr) (types.Value, error) {
	vals, err := ev.evalArgsMin(args, 1)
	if err != nil {
		return nil, err
	}
	result := false
	for i, v := range vals {
		b, ok := v.(types.BoolValue)
		if !ok {
			return nil, ffserr.Type(ev.Formula, "or: argument %d expected Bool, got %s", i, v.Kind())
		}
		if b.Val {
			result = true
		}
	}
	return types.NewBool(result), nil
}

// builtinIf evaluates cond, then only the selected branch. It is the
// one builtin in the catalogue with lazy argument evaluation.
func builtinIf(ev *Evaluator, args []parser.Expr) (types.Value, error) {
	if len(args) != 3 {
		return nil, ffserr.Arity(ev.Formula, "if: expected 3 arguments, got %d", len(args))
	}
	condVal, err := ev.Eval(args[0])
	if err != nil {
		return nil, err
	}
	cond, ok := condVal.(types.BoolValue)
	if !ok {
		return nil, ffserr.Type(ev.Formula, "if: condition expected Bool, got %s", condVal.Kind())
	}
	if cond.Val {
		return ev.Eval(args[1])
	}
	return ev.Eval(args[2])
}
