package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the application-specific Prometheus collectors on a private
// registry so tests can construct isolated instances.
type Metrics struct {
	registry *prometheus.Registry

	httpInFlight prometheus.Gauge
	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
	itemOps      *prometheus.CounterVec
}

// New creates and registers the collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpInFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "itemsvc",
			Subsystem: "http",
			Name:      "inflight_requests",
			Help:      "Current number of in-flight HTTP requests.",
		}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "itemsvc",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		}, []string{"method", "path", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "itemsvc",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms to ~5s
		}, []string{"method", "path"}),
		itemOps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "itemsvc",
			Subsystem: "items",
			Name:      "operations_total",
			Help:      "Total number of item store operations.",
		}, []string{"operation", "outcome"}),
	}

	m.registry.MustRegister(m.httpInFlight, m.httpRequests, m.httpDuration, m.itemOps)
	return m
}

// IncrementInFlight marks a request as started.
func (m *Metrics) IncrementInFlight() { m.httpInFlight.Inc() }

// DecrementInFlight marks a request as finished.
func (m *Metrics) DecrementInFlight() { m.httpInFlight.Dec() }

// RecordHTTPRequest records one handled request.
func (m *Metrics) RecordHTTPRequest(method, path, status string, duration time.Duration) {
	m.httpRequests.WithLabelValues(method, path, status).Inc()
	m.httpDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// RecordItemOperation records the outcome of one item operation.
func (m *Metrics) RecordItemOperation(operation string, err error) {
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	m.itemOps.WithLabelValues(operation, outcome).Inc()
}

// Handler returns the exposition endpoint for this registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
