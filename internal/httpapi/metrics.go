package httpapi

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the flag lookup API.
type Metrics struct {
	// Lookup outcomes by flag kind and result
	Lookups *prometheus.CounterVec

	// Request latency by route pattern
	RequestDuration *prometheus.HistogramVec
}

// NewMetrics creates a Metrics instance registered against reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Lookups: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "veximoji_lookups_total",
			Help: "Total flag lookups by kind and outcome",
		}, []string{"kind", "outcome"}), // outcome: "hit", "miss"

		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "veximoji_request_duration_seconds",
			Help:    "Duration of HTTP requests by route",
			Buckets: []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25},
		}, []string{"route"}),
	}
}

// IncrementLookup records a lookup outcome.
func (m *Metrics) IncrementLookup(kind string, hit bool) {
	if m != nil {
		outcome := "miss"
		if hit {
			outcome = "hit"
		}
		m.Lookups.WithLabelValues(kind, outcome).Inc()
	}
}

// ObserveRequest records the duration of a request.
func (m *Metrics) ObserveRequest(route string, d time.Duration) {
	if m != nil {
		m.RequestDuration.WithLabelValues(route).Observe(d.Seconds())
	}
}
