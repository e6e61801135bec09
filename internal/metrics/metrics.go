// Package metrics exposes evaluation counters in Prometheus form.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics records suite evaluations. A nil *Metrics is a no-op.
type Metrics struct {
	registry *prometheus.Registry

	// Case outcomes by kind and status (PASS, FAIL, N/A)
	CaseOutcome *prometheus.CounterVec

	// Access verdicts by allowed/denied and deny reason
	AccessVerdict *prometheus.CounterVec

	// Wall time of a full suite run
	RunLatency prometheus.Histogram
}

// New creates a Metrics instance on its own registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,

		CaseOutcome: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "ruleeval_case_outcomes_total",
			Help: "Evaluated cases by kind and comparison status",
		}, []string{"kind", "status"}),

		AccessVerdict: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "ruleeval_access_verdicts_total",
			Help: "Access gate verdicts by outcome and deny reason",
		}, []string{"verdict", "reason"}),

		RunLatency: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "ruleeval_run_duration_seconds",
			Help:    "Duration of a full suite evaluation",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		}),
	}
}

// IncrementOutcome records one evaluated case.
func (m *Metrics) IncrementOutcome(kind, status string) {
	if m != nil {
		m.CaseOutcome.WithLabelValues(kind, status).Inc()
	}
}

// IncrementAccess records an access gate verdict.
func (m *Metrics) IncrementAccess(allowed bool, reason string) {
	if m == nil {
		return
	}
	verdict := "denied"
	if allowed {
		verdict = "allowed"
	}
	m.AccessVerdict.WithLabelValues(verdict, reason).Inc()
}

// ObserveRunLatency records the duration of a suite run.
func (m *Metrics) ObserveRunLatency(d time.Duration) {
	if m != nil {
		m.RunLatency.Observe(d.Seconds())
	}
}

// WriteTextfile writes the current values in the text exposition format.
func (m *Metrics) WriteTextfile(path string) error {
	if m == nil {
		return fmt.Errorf("metrics.WriteTextfile: metrics not initialized")
	}
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("metrics.WriteTextfile: %w", err)
	}
	return nil
}
