// Package metrics exposes Prometheus metrics for the import pipeline.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"ledgerly/internal/domain"
)

// Outcome labels for import runs.
const (
	OutcomeCompleted = "completed"
	OutcomeFailed    = "failed"
	OutcomeRejected  = "rejected"
)

// Metrics holds the import collectors.
type Metrics struct {
	ImportsTotal   *prometheus.CounterVec
	RecordsParsed  *prometheus.CounterVec
	ImportDuration prometheus.Histogram
	gatherer       prometheus.Gatherer
}

// New creates the collectors and registers them with reg.
func New(reg *prometheus.Registry) *Metrics {
	m := &Metrics{
		ImportsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_imports_total",
				Help: "Total number of Tally import runs by outcome",
			},
			[]string{"outcome"},
		),
		RecordsParsed: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_import_records_parsed_total",
				Help: "Total number of records parsed from Tally exports",
			},
			[]string{"entity"},
		),
		ImportDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "ledger_import_duration_seconds",
				Help:    "Time taken by a Tally import run",
				Buckets: []float64{0.05, 0.1, 0.5, 1, 5, 10, 30, 60},
			},
		),
		gatherer: reg,
	}
	reg.MustRegister(m.ImportsTotal, m.RecordsParsed, m.ImportDuration)
	return m
}

// ObserveImport records one finished run.
func (m *Metrics) ObserveImport(outcome string, counts domain.ImportCounts, elapsed time.Duration) {
	m.ImportsTotal.WithLabelValues(outcome).Inc()
	m.RecordsParsed.WithLabelValues("item").Add(float64(counts.Items))
	m.RecordsParsed.WithLabelValues("ledger").Add(float64(counts.Ledgers))
	m.RecordsParsed.WithLabelValues("party").Add(float64(counts.Parties))
	m.RecordsParsed.WithLabelValues("voucher").Add(float64(counts.Vouchers))
	m.ImportDuration.Observe(elapsed.Seconds())
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
