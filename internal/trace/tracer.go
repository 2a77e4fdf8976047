// Package trace provides optional structured tracing around a single
// evaluate() call: a start event, a result or error event, and a
// per-call correlation ID, filtered by formula glob pattern the way
// the interpreter this module grew out of filtered trace output by
// verb name.
package trace

import (
	"context"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Tracer emits structured trace events for evaluations matching its
// filter set. A nil *Tracer is safe to call (no-op), so callers that
// never opt in never pay for tracing.
type Tracer struct {
	enabled bool
	filters []string
	logger  *zap.Logger
}

var (
	globalMu sync.RWMutex
	global   = NewNop()
)

// NewNop returns a disabled Tracer.
func NewNop() *Tracer {
	return &Tracer{logger: zap.NewNop()}
}

// New returns an enabled Tracer writing through logger, restricted to
// formulas matching one of filters (filepath.Match glob syntax); an
// empty filter set traces every evaluation.
func New(logger *zap.Logger, filters []string) *Tracer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Tracer{enabled: true, filters: filters, logger: logger}
}

// SetGlobal installs t as the package-level default tracer used by
// the ffs package's entry points when no per-call tracer is supplied.
func SetGlobal(t *Tracer) {
	globalMu.Lock()
	defer globalMu.Unlock()
	if t == nil {
		t = NewNop()
	}
	global = t
}

// Global returns the current package-level default tracer.
func Global() *Tracer {
	globalMu.RLock()
	defer globalMu.RUnlock()
	return global
}

func (t *Tracer) matches(formula string) bool {
	if len(t.filters) == 0 {
		return true
	}
	for _, pattern := range t.filters {
		if ok, _ := filepath.Match(pattern, formula); ok {
			return true
		}
	}
	return false
}

type correlationKey struct{}

// WithEvaluation stamps ctx with a fresh correlation ID for one
// evaluate() call, returned alongside so callers can log it
// themselves too.
func WithEvaluation(ctx context.Context) (context.Context, string) {
	id := uuid.NewString()
	return context.WithValue(ctx, correlationKey{}, id), id
}

func correlationID(ctx context.Context) string {
	id, _ := ctx.Value(correlationKey{}).(string)
	return id
}

// Start logs the beginning of an evaluation.
func (t *Tracer) Start(ctx context.Context, formula string) {
	if t == nil || !t.enabled || !t.matches(formula) {
		return
	}
	t.logger.Debug("evaluate.start",
		zap.String("trace_id", correlationID(ctx)),
		zap.String("formula", formula))
}

// Result logs a successful evaluation's projected output.
func (t *Tracer) Result(ctx context.Context, formula string, result float32) {
	if t == nil || !t.enabled || !t.matches(formula) {
		return
	}
	t.logger.Debug("evaluate.result",
		zap.String("trace_id", correlationID(ctx)),
		zap.String("formula", formula),
		zap.Float32("result", result))
}

// Error logs a failed evaluation.
func (t *Tracer) Error(ctx context.Context, formula string, err error) {
	if t == nil || !t.enabled || !t.matches(formula) {
		return
	}
	t.logger.Debug("evaluate.error",
		zap.String("trace_id", correlationID(ctx)),
		zap.String("formula", formula),
		zap.Error(err))
}
