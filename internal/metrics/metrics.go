// Package metrics instruments outbound API client traffic with Prometheus
// collectors and exposes them over an optional local listener.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector records API request outcomes.
type Collector struct {
	registry        *prometheus.Registry
	handler         http.Handler
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	requestErrors   *prometheus.CounterVec
}

// NewCollector registers the portal's Prometheus collectors.
func NewCollector() *Collector {
	registry := prometheus.NewRegistry()

	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "portal_api_request_duration_seconds",
		Help:    "Duration of backend API requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation", "status"})

	requestTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "portal_api_requests_total",
		Help: "Total backend API requests",
	}, []string{"operation", "status"})

	requestErrors := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "portal_api_request_errors_total",
		Help: "Total backend API requests that failed before a response",
	}, []string{"operation"})

	registry.MustRegister(requestDuration, requestTotal, requestErrors)

	return &Collector{
		registry:        registry,
		handler:         promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		requestDuration: requestDuration,
		requestTotal:    requestTotal,
		requestErrors:   requestErrors,
	}
}

// ObserveRequest records one completed request. A status of 0 means the
// request never reached the backend.
func (c *Collector) ObserveRequest(operation string, status int, duration time.Duration) {
	if c == nil {
		return
	}
	if status == 0 {
		c.requestErrors.WithLabelValues(operation).Inc()
		return
	}
	label := strconv.Itoa(status)
	c.requestTotal.WithLabelValues(operation, label).Inc()
	c.requestDuration.WithLabelValues(operation, label).Observe(duration.Seconds())
}

// Handler serves the /metrics endpoint for this collector's registry.
func (c *Collector) Handler() http.Handler {
	return c.handler
}
