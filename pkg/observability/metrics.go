package observability

import (
	"context"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aretw0/symdq"
)

// Metrics collects per-operation counters and latencies.
type Metrics struct {
	registry   *prometheus.Registry
	operations *prometheus.CounterVec
	failures   *prometheus.CounterVec
	duration   *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them on a fresh registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		operations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "symdq_operations_total",
				Help: "Total number of engine operations",
			},
			[]string{"operation", "domain"},
		),
		failures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "symdq_operation_errors_total",
				Help: "Total number of failed engine operations",
			},
			[]string{"operation", "domain"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "symdq_operation_duration_seconds",
				Help:    "Duration of engine operations",
				Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
			},
			[]string{"operation"},
		),
	}
	m.registry.MustRegister(m.operations, m.failures, m.duration)
	return m
}

// Registry exposes the underlying registry, e.g. to add process collectors.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// Observe records one operation event.
func (m *Metrics) Observe(ev *symdq.OperationEvent) {
	m.operations.WithLabelValues(ev.Operation, ev.Domain).Inc()
	if ev.Err != nil {
		m.failures.WithLabelValues(ev.Operation, ev.Domain).Inc()
	}
	m.duration.WithLabelValues(ev.Operation).Observe(ev.Duration.Seconds())
}

// Hooks returns engine hooks feeding these metrics. next, if set, is
// called after recording.
func (m *Metrics) Hooks(next ...symdq.Hooks) symdq.Hooks {
	return symdq.Hooks{
		OnOperation: func(ctx context.Context, ev *symdq.OperationEvent) {
			m.Observe(ev)
			for _, h := range next {
				if h.OnOperation != nil {
					h.OnOperation(ctx, ev)
				}
			}
		},
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
