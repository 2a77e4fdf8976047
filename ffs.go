// Package ffs is the evaluation core of a feature-flag / gradual-
// rollout service: it parses and evaluates small spreadsheet-like
// rule formulas against a JSON-shaped environment, producing a
// frequency in [0, 1]. Everything outside this package (HTTP
// transport, storage, auth, the deterministic bucketing step that
// turns a frequency into a per-context boolean) is a collaborator
// with no presence here.
package ffs

import (
	"context"
	"time"

	"github.com/kemasdimas/ffs/env"
	"github.com/kemasdimas/ffs/eval"
	"github.com/kemasdimas/ffs/internal/metrics"
	"github.com/kemasdimas/ffs/internal/trace"
	"github.com/kemasdimas/ffs/parser"
)

// Validate reports whether formula parses. It never evaluates the
// formula, so a formula that parses but fails at evaluation time
// (wrong argument types, for instance) still validates.
func Validate(formula string) bool {
	_, err := parser.Parse(formula)
	return err == nil
}

// Evaluate parses and evaluates formula against environment, returning
// the projected frequency in [0, 1] for formulas whose natural result
// falls in that range (no clamping is performed otherwise). Any
// parse, type, arity, unknown-function, domain, or math failure
// returns a non-nil error satisfying errors.Is(err,
// ffserr.ErrInvalidArgument).
func Evaluate(formula string, environment map[string]any) (float32, error) {
	return EvaluateContext(context.Background(), formula, environment)
}

// EvaluateContext is Evaluate with an explicit context, used only to
// carry a tracing correlation ID. Evaluation itself is synchronous
// and cannot be cancelled mid-flight (see the concurrency model: no
// suspension, no I/O but the clock read inside now()).
func EvaluateContext(ctx context.Context, formula string, environment map[string]any) (float32, error) {
	ctx, _ = trace.WithEvaluation(ctx)
	tr := trace.Global()
	tr.Start(ctx, formula)

	start := time.Now()
	result, err := evaluate(formula, environment)
	metrics.Observe(err, time.Since(start))

	if err != nil {
		tr.Error(ctx, formula, err)
		return 0, err
	}
	tr.Result(ctx, formula, result)
	return result, nil
}

func evaluate(formula string, environment map[string]any) (float32, error) {
	expr, err := parser.Parse(formula)
	if err != nil {
		return 0, err
	}
	coerced := env.FromMap(environment)
	ev := eval.New(formula, coerced)
	v, err := ev.Eval(expr)
	if err != nil {
		return 0, err
	}
	return eval.Project(v), nil
}
