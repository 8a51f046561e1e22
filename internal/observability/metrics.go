package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the serve-mode instruments on an independent registry, so
// repeated construction (as in tests) never collides with a global collector.
type Metrics struct {
	registry *prometheus.Registry

	// RequestsTotal counts dashboard requests by report mode and outcome.
	RequestsTotal *prometheus.CounterVec

	// RequestDuration observes the filter-aggregate-render cycle duration.
	RequestDuration prometheus.Histogram
}

// NewMetrics creates and registers the serve-mode instruments.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	requestsTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "airdash",
		Name:      "requests_total",
		Help:      "Dashboard requests by report mode and outcome.",
	}, []string{"report", "outcome"})

	requestDuration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "airdash",
		Name:      "request_duration_seconds",
		Help:      "Duration of the filter, aggregate, and render cycle.",
		Buckets:   prometheus.DefBuckets,
	})

	registry.MustRegister(requestsTotal, requestDuration)

	return &Metrics{
		registry:        registry,
		RequestsTotal:   requestsTotal,
		RequestDuration: requestDuration,
	}
}

// Handler returns the /metrics scrape endpoint for this registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
