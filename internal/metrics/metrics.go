package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Metrics groups all Prometheus instruments used across the application.
// Registered once at startup via New(); passed by pointer wherever needed.
type Metrics struct {
	HTTPRequests  *prometheus.CounterVec
	HTTPLatency   *prometheus.HistogramVec
	WSConnections prometheus.Gauge
}

// New registers all instruments with the given Prometheus registerer and
// returns the populated Metrics struct. Go runtime and process collectors
// are registered alongside them.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests served, by route and status.",
		}, []string{"method", "route", "status"}),

		HTTPLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Time from request receipt to handler return.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),

		WSConnections: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "websocket_connections",
			Help: "Current number of open WebSocket connections.",
		}),
	}

	reg.MustRegister(
		m.HTTPRequests,
		m.HTTPLatency,
		m.WSConnections,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// HTTPHook returns the observation callback expected by the metrics middleware.
func (m *Metrics) HTTPHook() func(method, route string, status int, latency time.Duration) {
	return func(method, route string, status int, latency time.Duration) {
		m.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
		m.HTTPLatency.WithLabelValues(method, route).Observe(latency.Seconds())
	}
}

// WSHooks returns the connect/disconnect callbacks expected by ws.Hooks.
func (m *Metrics) WSHooks() (onConnect, onDisconnect func()) {
	onConnect = func() { m.WSConnections.Inc() }
	onDisconnect = func() { m.WSConnections.Dec() }
	return
}
