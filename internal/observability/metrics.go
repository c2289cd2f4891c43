package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the
// scoring pipeline.
type Metrics struct {
	BundlesConsumed prometheus.Counter
	ReportsProduced prometheus.Counter
	TransformErrors prometheus.Counter
	PipelineRunning prometheus.Gauge

	// Batch processing metrics.
	BatchSize               prometheus.Histogram
	BatchProcessingDuration prometheus.Histogram

	// Scoring metrics.
	HoursScored  *prometheus.CounterVec // labels: outcome={rated,unrated}
	StarsAwarded prometheus.Histogram

	// Reference-link probing.
	LinkProbes *prometheus.CounterVec // labels: outcome={ok,unreachable}
}

// NewMetrics creates and registers all pipeline metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		BundlesConsumed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "foil_report",
			Name:      "bundles_consumed_total",
			Help:      "Total site bundles read from the source topic.",
		}),
		ReportsProduced: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "foil_report",
			Name:      "reports_produced_total",
			Help:      "Total site reports written to the sink topic.",
		}),
		TransformErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "foil_report",
			Name:      "transform_errors_total",
			Help:      "Total bundles skipped because they could not be scored.",
		}),
		PipelineRunning: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "foil_report",
			Name:      "pipeline_running",
			Help:      "1 when the pipeline is active, 0 when shut down.",
		}),
		BatchSize: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "foil_report",
			Name:      "batch_size",
			Help:      "Number of bundles per batch extracted from Kafka.",
			Buckets:   []float64{1, 5, 10, 20, 30, 40, 50, 75, 100},
		}),
		BatchProcessingDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "foil_report",
			Name:      "batch_processing_duration_seconds",
			Help:      "Duration of a complete batch extract-transform-load cycle.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10},
		}),
		HoursScored: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "foil_report",
			Name:      "hours_scored_total",
			Help:      "Forecast hours scored, by rating outcome.",
		}, []string{"outcome"}),
		StarsAwarded: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "foil_report",
			Name:      "stars_awarded",
			Help:      "Star ratings awarded to rated hours.",
			Buckets:   []float64{0, 1, 2, 3},
		}),
		LinkProbes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "foil_report",
			Name:      "link_probes_total",
			Help:      "Reference-link availability probes, by outcome.",
		}, []string{"outcome"}),
	}

	prometheus.MustRegister(
		m.BundlesConsumed,
		m.ReportsProduced,
		m.TransformErrors,
		m.PipelineRunning,
		m.BatchSize,
		m.BatchProcessingDuration,
		m.HoursScored,
		m.StarsAwarded,
		m.LinkProbes,
	)

	return m
}

// NewMetricsForTesting creates Metrics with a fresh registry to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		BundlesConsumed:         prometheus.NewCounter(prometheus.CounterOpts{Namespace: "foil_report", Name: "bundles_consumed_total"}),
		ReportsProduced:         prometheus.NewCounter(prometheus.CounterOpts{Namespace: "foil_report", Name: "reports_produced_total"}),
		TransformErrors:         prometheus.NewCounter(prometheus.CounterOpts{Namespace: "foil_report", Name: "transform_errors_total"}),
		PipelineRunning:         prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "foil_report", Name: "pipeline_running"}),
		BatchSize:               prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "foil_report", Name: "batch_size"}),
		BatchProcessingDuration: prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "foil_report", Name: "batch_processing_duration_seconds"}),
		HoursScored:             prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "foil_report", Name: "hours_scored_total"}, []string{"outcome"}),
		StarsAwarded:            prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "foil_report", Name: "stars_awarded", Buckets: []float64{0, 1, 2, 3}}),
		LinkProbes:              prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "foil_report", Name: "link_probes_total"}, []string{"outcome"}),
	}
}
