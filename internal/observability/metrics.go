package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters and histograms for one analysis run.
type Metrics struct {
	RecordsLoaded prometheus.Counter
	RowsSkipped   prometheus.Counter
	PlotsRendered *prometheus.CounterVec // label: chart
	RenderErrors  *prometheus.CounterVec // label: chart

	LoadDuration   prometheus.Histogram
	RenderDuration *prometheus.HistogramVec // label: chart
}

// NewMetrics creates and registers all run metrics with the default
// Prometheus registry, for exposure via --metrics-addr.
func NewMetrics() *Metrics {
	m := &Metrics{
		RecordsLoaded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "fire_analysis",
			Name:      "records_loaded_total",
			Help:      "Total ignition records loaded from the dataset.",
		}),
		RowsSkipped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "fire_analysis",
			Name:      "rows_skipped_total",
			Help:      "Total dataset rows dropped due to unparseable fields.",
		}),
		PlotsRendered: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "fire_analysis",
			Name:      "plots_rendered_total",
			Help:      "Image files written, by chart.",
		}, []string{"chart"}),
		RenderErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "fire_analysis",
			Name:      "render_errors_total",
			Help:      "Chart rendering failures, by chart.",
		}, []string{"chart"}),
		LoadDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "fire_analysis",
			Name:      "load_duration_seconds",
			Help:      "Duration of the dataset load.",
			Buckets:   []float64{0.05, 0.1, 0.5, 1, 2.5, 5, 10, 30},
		}),
		RenderDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "fire_analysis",
			Name:      "render_duration_seconds",
			Help:      "Duration of each chart render, by chart.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 2.5, 5},
		}, []string{"chart"}),
	}

	prometheus.MustRegister(
		m.RecordsLoaded,
		m.RowsSkipped,
		m.PlotsRendered,
		m.RenderErrors,
		m.LoadDuration,
		m.RenderDuration,
	)

	return m
}

// NewMetricsForTesting creates Metrics with a fresh registry to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		RecordsLoaded:  prometheus.NewCounter(prometheus.CounterOpts{Namespace: "fire_analysis", Name: "records_loaded_total"}),
		RowsSkipped:    prometheus.NewCounter(prometheus.CounterOpts{Namespace: "fire_analysis", Name: "rows_skipped_total"}),
		PlotsRendered:  prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "fire_analysis", Name: "plots_rendered_total"}, []string{"chart"}),
		RenderErrors:   prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "fire_analysis", Name: "render_errors_total"}, []string{"chart"}),
		LoadDuration:   prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "fire_analysis", Name: "load_duration_seconds"}),
		RenderDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{Namespace: "fire_analysis", Name: "render_duration_seconds"}, []string{"chart"}),
	}
}
