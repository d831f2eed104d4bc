// Package metrics exposes Prometheus collectors for the HTTP surface and the
// time entry lifecycle.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "esclavizador"

// Metrics holds the collectors registered on one registry.
type Metrics struct {
	registry *prometheus.Registry

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec

	entriesWritten  *prometheus.CounterVec
	entriesRejected *prometheus.CounterVec
}

// New creates a registry with Go and process collectors plus the
// application collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,

		// Labels: method, route (pattern, not raw path), status
		httpRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests by route and status",
		}, []string{"method", "route", "status"}),

		httpDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency in seconds",
			Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}, []string{"method", "route"}),

		// Labels: op (start, stop, create, update, delete)
		entriesWritten: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "time_entries",
			Name:      "written_total",
			Help:      "Successful time entry writes by operation",
		}, []string{"op"}),

		// Labels: op, reason (running, stopped, order, future, overlap)
		entriesRejected: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "time_entries",
			Name:      "rejected_total",
			Help:      "Time entry writes rejected by a lifecycle rule",
		}, []string{"op", "reason"}),
	}
}

// EntryWritten counts a successful lifecycle write.
func (m *Metrics) EntryWritten(op string) {
	m.entriesWritten.WithLabelValues(op).Inc()
}

// EntryRejected counts a lifecycle write refused by a rule.
func (m *Metrics) EntryRejected(op, reason string) {
	m.entriesRejected.WithLabelValues(op, reason).Inc()
}

// ObserveHTTP records one served request.
func (m *Metrics) ObserveHTTP(method, route string, status int, d time.Duration) {
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
