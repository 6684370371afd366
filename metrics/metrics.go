// api/metrics/metrics.go
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the API's Prometheus instruments on a private registry.
// A nil *Metrics records nothing.
type Metrics struct {
	registry            *prometheus.Registry
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	decisionsTotal      *prometheus.CounterVec
	rateLimitTotal      *prometheus.CounterVec
}

func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "casa_http_requests_total",
			Help: "Total HTTP requests",
		}, []string{"method", "path", "status"}),
		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "casa_http_request_duration_seconds",
			Help:    "HTTP request duration",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0, 10.0},
		}, []string{"method", "path"}),
		decisionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "casa_authz_decisions_total",
			Help: "Authorization decisions by rule and outcome",
		}, []string{"rule", "outcome", "reason"}),
		rateLimitTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "casa_ratelimit_decisions_total",
			Help: "Rate limit decisions",
		}, []string{"result"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.decisionsTotal,
		m.rateLimitTotal,
	)
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// RecordHTTPRequest takes the route template as path to keep label cardinality bounded.
func (m *Metrics) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.httpRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

func (m *Metrics) RecordDecision(rule, reason string, allowed bool) {
	if m == nil {
		return
	}
	outcome := "deny"
	if allowed {
		outcome = "allow"
	}
	m.decisionsTotal.WithLabelValues(rule, outcome, reason).Inc()
}

func (m *Metrics) RecordRateLimitDecision(allowed bool) {
	if m == nil {
		return
	}
	result := "limited"
	if allowed {
		result = "allowed"
	}
	m.rateLimitTotal.WithLabelValues(result).Inc()
}
