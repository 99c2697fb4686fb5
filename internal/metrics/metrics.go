package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsRegistry holds all Prometheus metrics for QualMatrix
type MetricsRegistry struct {
	// HTTP Metrics
	HTTPRequestsTotal    prometheus.CounterVec
	HTTPRequestDuration  prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.GaugeVec

	// Import / backfill business metrics
	ImportRecordsTotal    prometheus.CounterVec
	ImportBatchesTotal    prometheus.CounterVec
	BackfillRowsInserted  prometheus.Counter
	QualificationUpserts  prometheus.Counter
}

// NewMetricsRegistry initializes and returns a new MetricsRegistry with all metrics
func NewMetricsRegistry() *MetricsRegistry {
	return &MetricsRegistry{
		// HTTP Metrics
		HTTPRequestsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "qualmatrix_http_requests_total",
				Help: "Total HTTP requests processed by endpoint, method, and status code",
			},
			[]string{"endpoint", "method", "status_code"},
		),
		HTTPRequestDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "qualmatrix_http_request_duration_seconds",
				Help:    "HTTP request latency distribution in seconds",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"endpoint", "method"},
		),
		HTTPRequestsInFlight: *promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "qualmatrix_http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed",
			},
			[]string{"endpoint"},
		),

		// Business Metrics
		ImportRecordsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "qualmatrix_import_records_total",
				Help: "Import records processed, labeled by outcome (imported or skipped)",
			},
			[]string{"outcome"},
		),
		ImportBatchesTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "qualmatrix_import_batches_total",
				Help: "Import batches by final result (committed, rejected, rolled_back)",
			},
			[]string{"result"},
		),
		BackfillRowsInserted: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "qualmatrix_backfill_rows_inserted_total",
				Help: "Qualification rows created by the NMQ backfill",
			},
		),
		QualificationUpserts: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "qualmatrix_qualification_upserts_total",
				Help: "Single qualification cell writes outside the import path",
			},
		),
	}
}
