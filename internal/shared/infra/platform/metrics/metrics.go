package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Resultados posibles de una llamada a un adapter.
const (
	ResultOK       = "ok"
	ResultError    = "error"
	ResultConflict = "conflict"
)

// Metrics agrupa las métricas del servicio sobre un registry propio.
type Metrics struct {
	Registry       *prometheus.Registry
	HTTPRequests   *prometheus.CounterVec
	HTTPLatency    *prometheus.HistogramVec
	AdapterCalls   *prometheus.CounterVec
	AdapterLatency *prometheus.HistogramVec
}

// New registra las métricas bajo el namespace dado, junto con las de runtime y proceso.
func New(namespace string) *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		Registry: registry,
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by route, method and status.",
		}, []string{"route", "method", "status"}),
		HTTPLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Latency of HTTP requests by route and method.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method"}),
		AdapterCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "adapter_calls_total",
			Help:      "Total number of outbound adapter calls by port, adapter and result.",
		}, []string{"port", "adapter", "result"}),
		AdapterLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "adapter_call_duration_seconds",
			Help:      "Latency of outbound adapter calls by port and adapter.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"port", "adapter"}),
	}

	registry.MustRegister(
		m.HTTPRequests,
		m.HTTPLatency,
		m.AdapterCalls,
		m.AdapterLatency,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Handler expone el registry en formato Prometheus.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}

// ObserveHTTP registra una petición HTTP ya respondida.
func (m *Metrics) ObserveHTTP(route, method, status string, elapsed time.Duration) {
	m.HTTPRequests.WithLabelValues(route, method, status).Inc()
	m.HTTPLatency.WithLabelValues(route, method).Observe(elapsed.Seconds())
}

// ObserveAdapterCall registra una llamada a un adapter outbound.
func (m *Metrics) ObserveAdapterCall(port, adapter, result string, elapsed time.Duration) {
	m.AdapterCalls.WithLabelValues(port, adapter, result).Inc()
	m.AdapterLatency.WithLabelValues(port, adapter).Observe(elapsed.Seconds())
}
