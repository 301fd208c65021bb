package service

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsService encapsulates Prometheus instrumentation for the portal.
type MetricsService struct {
	registry        *prometheus.Registry
	handler         http.Handler
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	storeErrors     prometheus.Counter
	authFailures    *prometheus.CounterVec
}

// NewMetricsService registers the core collectors.
func NewMetricsService() *MetricsService {
	registry := prometheus.NewRegistry()

	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	requestTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	storeErrors := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "store_errors_total",
		Help: "Total entity store backend failures",
	})

	authFailures := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "auth_failures_total",
		Help: "Total rejected requests by rejection kind",
	}, []string{"kind"})

	registry.MustRegister(requestDuration, requestTotal, storeErrors, authFailures)

	return &MetricsService{
		registry:        registry,
		handler:         promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		requestDuration: requestDuration,
		requestTotal:    requestTotal,
		storeErrors:     storeErrors,
		authFailures:    authFailures,
	}
}

// Handler serves the /metrics endpoint.
func (s *MetricsService) Handler() http.Handler { return s.handler }

// ObserveHTTPRequest records a completed request.
func (s *MetricsService) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	code := strconv.Itoa(status)
	s.requestDuration.WithLabelValues(method, path, code).Observe(duration.Seconds())
	s.requestTotal.WithLabelValues(method, path, code).Inc()
	switch status {
	case http.StatusUnauthorized:
		s.authFailures.WithLabelValues("unauthorized").Inc()
	case http.StatusForbidden:
		s.authFailures.WithLabelValues("forbidden").Inc()
	}
}

// ObserveStoreError counts a backend failure surfaced to a caller.
func (s *MetricsService) ObserveStoreError() { s.storeErrors.Inc() }
