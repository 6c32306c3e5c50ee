// Package metrics exposes Prometheus instrumentation for the engine
// and the configuration API.
package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome labels for stub dispatch.
const (
	OutcomeMatched = "matched"
	OutcomeDefault = "default"
	OutcomeError   = "error"
)

// Metrics bundles all collectors on a private registry so tests can
// run multiple instances without duplicate-registration panics.
type Metrics struct {
	registry *prometheus.Registry

	// StubRequests counts dispatched requests per imposter port and
	// outcome (matched, default, error).
	StubRequests *prometheus.CounterVec

	// StubLatency observes dispatch duration per imposter port.
	StubLatency *prometheus.HistogramVec

	// ImpostersActive tracks the number of live imposters.
	ImpostersActive prometheus.Gauge

	// RecordedRequests counts request log appends per imposter port.
	RecordedRequests *prometheus.CounterVec
}

// New creates a Metrics bundle with its own registry, including the
// standard Go and process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		StubRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "impose",
			Subsystem: "stub",
			Name:      "requests_total",
			Help:      "Requests dispatched to imposters, by port and outcome.",
		}, []string{"port", "outcome"}),
		StubLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "impose",
			Subsystem: "stub",
			Name:      "request_duration_seconds",
			Help:      "Dispatch duration per imposter port.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"port"}),
		ImpostersActive: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "impose",
			Name:      "imposters_active",
			Help:      "Number of imposters currently bound to ports.",
		}),
		RecordedRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "impose",
			Name:      "recorded_requests_total",
			Help:      "Requests appended to imposter request logs, by port.",
		}, []string{"port"}),
	}
}

// ObserveDispatch records one dispatched request.
func (m *Metrics) ObserveDispatch(port int, outcome string, seconds float64) {
	p := strconv.Itoa(port)
	m.StubRequests.WithLabelValues(p, outcome).Inc()
	m.StubLatency.WithLabelValues(p).Observe(seconds)
}

// ObserveRecorded records one request log append.
func (m *Metrics) ObserveRecorded(port int) {
	m.RecordedRequests.WithLabelValues(strconv.Itoa(port)).Inc()
}

// Handler returns the scrape endpoint for this bundle's registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
