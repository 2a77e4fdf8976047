package eval

import (
	"time"

	"github.com/kemasdimas/ffs/internal/ffserr"
	"github.com/kemasdimas/ffs/parser"
	"github.com/kemasdimas/ffs/types"
)

// datetimeLayouts are tried in order: full RFC-3339 with offset,
// local date-time with no offset (interpreted as UTC because the
// layout carries no zone), then date-only (also UTC, start of day).
var datetimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func init() {
	DefaultRegistry.Register("now", builtinNow)
	DefaultRegistry.Register("datetime", builtinDatetime)
}

func builtinNow(ev *Evaluator, args []parser.Expr) (types.Value, error) {
	if _, err := ev.evalArgs(args, 0); err != nil {
		return nil, err
	}
	return types.NewInt(ev.Now().UTC().Unix()), nil
}

func builtinDatetime(ev *Evaluator, args []parser.Expr) (types.Value, error) {
	vals, err := ev.evalArgs(args, 1)
	if err != nil {
		return nil, err
	}
	s, ok := vals[0].(types.StrValue)
	if !ok {
		return nil, ffserr.Type(ev.Formula, "datetime: expected Str, got %s", vals[0].Kind())
	}
	for _, layout := range datetimeLayouts {
		t, err := time.Parse(layout, s.Val)
		if err == nil {
			return types.NewInt(t.Unix()), nil
		}
	}
	return nil, ffserr.Domain(ev.Formula, "invalid datetime literal %q", s.Val)
}
