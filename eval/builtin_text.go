package eval

import (
	"github.com/dlclark/regexp2"

	"github.com/kemasdimas/ffs/internal/ffserr"
	"github.com/kemasdimas/ffs/parser"
	"github.com/kemasdimas/ffs/types"
)

func init() {
	DefaultRegistry.Register("matches", builtinMatches)
}

// builtinMatches full-matches text against pattern using an
// ECMAScript-flavored regex engine. Stdlib regexp is RE2-based and
// cannot express backreferences or lookaround that formula authors
// reasonably expect from "a standard regex flavour equivalent to
// ECMAScript"; regexp2 implements that flavor. The pattern is wrapped
// in ^(?:...)$ so the match is always whole-string, matching the
// language's "no anchoring flags, implicit ^ and $" rule regardless
// of what the author wrote.
func builtinMatches(ev *Evaluator, args []parser.Expr) (types.Value, error) {
	vals, err := ev.evalArgs(args, 2)
	if err != nil {
		return nil, err
	}
	text, ok := vals[0].(types.StrValue)
	if !ok {
		return nil, ffserr.Type(ev.Formula, "matches: expected Str text, got %s", vals[0].Kind())
	}
	pattern, ok := vals[1].(types.StrValue)
	if !ok {
		return nil, ffserr.Type(ev.Formula, "matches: expected Str pattern, got %s", vals[1].Kind())
	}

	re, err := regexp2.Compile("^(?:"+pattern.Val+")$", regexp2.ECMAScript)
	if err != nil {
		return nil, ffserr.Domain(ev.Formula, "invalid regex pattern %q: %v", pattern.Val, err)
	}
	matched, err := re.MatchString(text.Val)
	if err != nil {
		return nil, ffserr.Domain(ev.Formula, "regex evaluation failed for pattern %q: %v", pattern.Val, err)
	}
	return types.NewBool(matched), nil
}
