// Package metrics holds the domain Prometheus collectors. A nil *Metrics is
// valid and records nothing, which keeps service tests free of registries.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Outcome label values.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// Metrics groups the report and document collectors.
type Metrics struct {
	reportGenerations *prometheus.CounterVec
	renderDuration    *prometheus.HistogramVec
	documentUploads   *prometheus.CounterVec
}

// New creates the collectors and registers them on reg.
func New(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		reportGenerations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "report_generations_total",
				Help: "Report generation attempts by outcome and the stage they ended in.",
			},
			[]string{"outcome", "stage"},
		),
		renderDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "report_render_duration_seconds",
				Help:    "Time spent fetching and rendering a report template.",
				Buckets: prometheus.ExponentialBuckets(0.005, 2, 12),
			},
			[]string{"strategy"},
		),
		documentUploads: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "case_document_uploads_total",
				Help: "Case document files processed by outcome.",
			},
			[]string{"outcome"},
		),
	}
	for _, c := range []prometheus.Collector{m.reportGenerations, m.renderDuration, m.documentUploads} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Generation records one finished generation attempt.
func (m *Metrics) Generation(outcome, stage string) {
	if m == nil {
		return
	}
	m.reportGenerations.WithLabelValues(outcome, stage).Inc()
}

// Render records how long a render strategy took.
func (m *Metrics) Render(strategy string, d time.Duration) {
	if m == nil {
		return
	}
	m.renderDuration.WithLabelValues(strategy).Observe(d.Seconds())
}

// Uploads adds n processed document files with the given outcome.
func (m *Metrics) Uploads(outcome string, n int) {
	if m == nil || n <= 0 {
		return
	}
	m.documentUploads.WithLabelValues(outcome).Add(float64(n))
}
