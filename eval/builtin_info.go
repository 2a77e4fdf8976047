package eval

import (
	"strings"

	"github.com/kemasdimas/ffs/parser"
	"github.com/kemasdimas/ffs/types"
)

func init() {
	DefaultRegistry.Register("isblank", builtinIsBlank)
}

// builtinIsBlank: true iff x is Null, an all-whitespace Str, or an
// empty List/Range. Numbers and bools are never blank, including the
// zero values 0 and false.
func builtinIsBlank(ev *Evaluator, args []parser.Expr) (types.Value, error) {
	vals, err := ev.evalArgs(args, 1)
	if err != nil {
		return nil, err
	}
	switch x := vals[0].(type) {
	case types.NullValue:
		return types.NewBool(true), nil
	case types.StrValue:
		return types.NewBool(strings.TrimSpace(x.Val) == ""), nil
	case types.ListValue:
		return types.NewBool(x.Len() == 0), nil
	case types.RangeValue:
		return types.NewBool(x.Size() == 0), nil
	default:
		return types.NewBool(false), nil
	}
}
