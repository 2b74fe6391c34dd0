package observability

import (
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/san-kum/typhoonviz/internal/chart"
)

const namespace = "typhoonviz"

// Outcome label values for RendersTotal.
const (
	OutcomeSuccess  = "success"
	OutcomeError    = "error"
	OutcomeCanceled = "canceled"
)

// Metrics holds the Prometheus collectors for frame generation and rendering.
type Metrics struct {
	FramesGenerated *prometheus.CounterVec   // labels: chart
	Primitives      *prometheus.CounterVec   // labels: chart
	Points          *prometheus.CounterVec   // labels: chart
	Progress        *prometheus.GaugeVec     // labels: chart
	RenderDuration  *prometheus.HistogramVec // labels: chart
	RendersTotal    *prometheus.CounterVec   // labels: chart, outcome
	ServedPages     prometheus.Counter

	registry *prometheus.Registry
}

var renderBuckets = []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10}

func newMetrics() *Metrics {
	return &Metrics{
		FramesGenerated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "frames_generated_total",
			Help:      "Animation frames generated.",
		}, []string{"chart"}),
		Primitives: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "primitives_total",
			Help:      "Traces emitted across all frames.",
		}, []string{"chart"}),
		Points: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "points_total",
			Help:      "Coordinates emitted across all frames.",
		}, []string{"chart"}),
		Progress: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "appearance_progress",
			Help:      "Mean appearance progress of the latest generated frame.",
		}, []string{"chart"}),
		RenderDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "render_duration_seconds",
			Help:      "Duration of a complete frame generation and export.",
			Buckets:   renderBuckets,
		}, []string{"chart"}),
		RendersTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "renders_total",
			Help:      "Renders by outcome.",
		}, []string{"chart", "outcome"}),
		ServedPages: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "served_pages_total",
			Help:      "Rendered pages served by the preview server.",
		}),
	}
}

func (m *Metrics) collectors() []prometheus.Collector {
	return []prometheus.Collector{
		m.FramesGenerated,
		m.Primitives,
		m.Points,
		m.Progress,
		m.RenderDuration,
		m.RendersTotal,
		m.ServedPages,
	}
}

// NewMetrics creates and registers all metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(m.collectors()...)
	return m
}

// NewMetricsForTesting registers with a fresh registry to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	m := newMetrics()
	m.registry = prometheus.NewRegistry()
	m.registry.MustRegister(m.collectors()...)
	return m
}

// Gatherer returns the registry the metrics were registered with.
func (m *Metrics) Gatherer() prometheus.Gatherer {
	if m.registry != nil {
		return m.registry
	}
	return prometheus.DefaultGatherer
}

// OnFrame records one generated frame.
func (m *Metrics) OnFrame(name string, _ int, f chart.Frame) {
	m.FramesGenerated.WithLabelValues(name).Inc()
	m.Primitives.WithLabelValues(name).Add(float64(len(f.Traces)))
	m.Points.WithLabelValues(name).Add(float64(f.NumPoints()))
	m.Progress.WithLabelValues(name).Set(f.MeanProgress())
}

// ObserveRender records the outcome and duration of one render.
func (m *Metrics) ObserveRender(name, outcome string, elapsed time.Duration) {
	m.RendersTotal.WithLabelValues(name, outcome).Inc()
	if outcome == OutcomeSuccess {
		m.RenderDuration.WithLabelValues(name).Observe(elapsed.Seconds())
	}
}

// FrameLogger logs every generated frame at debug level.
type FrameLogger struct {
	Logger *slog.Logger
}

func (l FrameLogger) OnFrame(name string, index int, f chart.Frame) {
	l.Logger.Debug("frame generated",
		"chart", name,
		"frame", index,
		"primitives", len(f.Traces),
		"points", f.NumPoints(),
		"progress", f.MeanProgress(),
	)
}
