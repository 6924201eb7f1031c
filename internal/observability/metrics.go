package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the
// reshape-and-report pipeline.
type Metrics struct {
	FilesRead          prometheus.Counter
	RecordsLoaded      prometheus.Counter
	RowsDroppedMissing prometheus.Counter
	ReportsWritten     prometheus.Counter
	RunsTotal          *prometheus.CounterVec // label: outcome={success,no_input,error}
	RunDuration        prometheus.Histogram
	PipelineRunning    prometheus.Gauge
}

// NewMetrics creates and registers all pipeline metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		FilesRead: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "climate_etl",
			Name:      "files_read_total",
			Help:      "Total input CSV files read.",
		}),
		RecordsLoaded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "climate_etl",
			Name:      "records_loaded_total",
			Help:      "Total station-month records in the combined table.",
		}),
		RowsDroppedMissing: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "climate_etl",
			Name:      "rows_dropped_missing_total",
			Help:      "Total melted rows discarded for a missing temperature.",
		}),
		ReportsWritten: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "climate_etl",
			Name:      "reports_written_total",
			Help:      "Total report files written.",
		}),
		RunsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "climate_etl",
			Name:      "runs_total",
			Help:      "Pipeline runs by outcome.",
		}, []string{"outcome"}),
		RunDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "climate_etl",
			Name:      "run_duration_seconds",
			Help:      "Duration of a complete extract-analyze-report run.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10, 30},
		}),
		PipelineRunning: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "climate_etl",
			Name:      "pipeline_running",
			Help:      "1 while a run is in progress, 0 otherwise.",
		}),
	}

	prometheus.MustRegister(
		m.FilesRead,
		m.RecordsLoaded,
		m.RowsDroppedMissing,
		m.ReportsWritten,
		m.RunsTotal,
		m.RunDuration,
		m.PipelineRunning,
	)

	return m
}

// NewMetricsForTesting creates Metrics with a fresh registry to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		FilesRead:          prometheus.NewCounter(prometheus.CounterOpts{Namespace: "climate_etl", Name: "files_read_total"}),
		RecordsLoaded:      prometheus.NewCounter(prometheus.CounterOpts{Namespace: "climate_etl", Name: "records_loaded_total"}),
		RowsDroppedMissing: prometheus.NewCounter(prometheus.CounterOpts{Namespace: "climate_etl", Name: "rows_dropped_missing_total"}),
		ReportsWritten:     prometheus.NewCounter(prometheus.CounterOpts{Namespace: "climate_etl", Name: "reports_written_total"}),
		RunsTotal:          prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "climate_etl", Name: "runs_total"}, []string{"outcome"}),
		RunDuration:        prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "climate_etl", Name: "run_duration_seconds"}),
		PipelineRunning:    prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "climate_etl", Name: "pipeline_running"}),
	}
}
