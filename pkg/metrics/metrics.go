// Package metrics exposes Prometheus collectors for the HTTP API.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the service collectors, registered on their own registry so
// tests can build as many as they like.
type Metrics struct {
	registry *prometheus.Registry

	requests       *prometheus.CounterVec
	duration       *prometheus.HistogramVec
	cookiesIssued  prometheus.Counter
	concertsStored prometheus.Counter
}

// New creates and registers the collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)
	return &Metrics{
		registry: reg,
		requests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "concerts",
			Name:      "http_requests_total",
			Help:      "HTTP requests by route, method and status code.",
		}, []string{"route", "method", "code"}),
		duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "concerts",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route and method.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 2, 14),
		}, []string{"route", "method"}),
		cookiesIssued: f.NewCounter(prometheus.CounterOpts{
			Namespace: "concerts",
			Name:      "client_cookies_issued_total",
			Help:      "Client-identifier cookies minted.",
		}),
		concertsStored: f.NewCounter(prometheus.CounterOpts{
			Namespace: "concerts",
			Name:      "concerts_created_total",
			Help:      "Concerts created since start.",
		}),
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// CookieIssued counts a minted client cookie.
func (m *Metrics) CookieIssued() {
	m.cookiesIssued.Inc()
}

// ConcertCreated counts a created concert.
func (m *Metrics) ConcertCreated() {
	m.concertsStored.Inc()
}

// Observe records one finished request.
func (m *Metrics) Observe(route, method string, code int, elapsed time.Duration) {
	m.requests.WithLabelValues(route, method, strconv.Itoa(code)).Inc()
	m.duration.WithLabelValues(route, method).Observe(elapsed.Seconds())
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
