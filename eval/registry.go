package eval

import (
	"strings"

	"github.com/kemasdimas/ffs/parser"
	"github.com/kemasdimas/ffs/types"
)

// BuiltinFunc implements one dispatch name. It receives the unevaluated
// argument expressions rather than already-reduced Values so that
// control-flow builtins like if can choose which branch to evaluate.
type BuiltinFunc func(ev *Evaluator, args []parser.Expr) (types.Value, error)

// Registry is a case-insensitive lookup table from dispatch name to
// BuiltinFunc: call names are case-insensitive at dispatch.
type Registry struct {
	funcs map[string]BuiltinFunc
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{funcs: make(map[string]BuiltinFunc)}
}

// Register adds or replaces the BuiltinFunc for name.
func (r *Registry) Register(name string, fn BuiltinFunc) {
	r.funcs[strings.ToLower(name)] = fn
}

// Get looks up name case-insensitively.
func (r *Registry) Get(name string) (BuiltinFunc, bool) {
	fn, ok := r.funcs[strings.ToLower(name)]
	return fn, ok
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.funcs[strings.ToLower(name)]
	return ok
}

// DefaultRegistry carries every built-in function the evaluator
// supports. It is populated by the init() functions in the
// builtin_*.go files, one per function family.
var DefaultRegistry = NewRegistry()
