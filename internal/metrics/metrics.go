// Package metrics instruments evaluate() with Prometheus collectors:
// a counter broken down by outcome (ok or one of the ffserr Kinds)
// and a latency histogram. Registration is opt-in: a caller that
// never calls Register still gets correct Observe calls, just
// nothing scraped.
package metrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/kemasdimas/ffs/internal/ffserr"
)

var (
	evaluations = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "ffs_evaluations_total",
		Help: "Total evaluate() calls, labeled by outcome.",
	}, []string{"outcome"})

	duration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "ffs_evaluate_duration_seconds",
		Help:    "evaluate() latency in seconds.",
		Buckets: prometheus.DefBuckets,
	})
)

// Register adds the package's collectors to reg.
func Register(reg prometheus.Registerer) error {
	if err := reg.Register(evaluations); err != nil {
		return err
	}
	return reg.Register(duration)
}

// Observe records one evaluate() call's outcome and wall-clock cost.
func Observe(err error, elapsed time.Duration) {
	duration.Observe(elapsed.Seconds())
	evaluations.WithLabelValues(outcomeLabel(err)).Inc()
}

func outcomeLabel(err error) string {
	if err == nil {
		return "ok"
	}
	var fe *ffserr.Error
	if errors.As(err, &fe) {
		return string(fe.Kind)
	}
	return "error"
}
