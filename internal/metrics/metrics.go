// Package metrics holds the Prometheus instruments shared by the use cases,
// the HTTP middleware, and the background workers. Collectors register with
// the default registry, so mounting promhttp.Handler() exposes all of them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	ActiveConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_active_connections",
			Help: "Number of in-flight HTTP requests",
		},
	)

	leadLifecycle = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lead_lifecycle_total",
			Help: "Lead mutations by kind (created, updated, deleted, restored)",
		},
		[]string{"action"},
	)

	leadsActive = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "leads_active",
			Help: "Active (not deleted) leads by storage status",
		},
		[]string{"status"},
	)

	leadsDeleted = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "leads_deleted",
			Help: "Soft-deleted leads",
		},
	)

	loginAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_login_attempts_total",
			Help: "Login attempts by outcome",
		},
		[]string{"outcome"},
	)

	eventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "events_published_total",
			Help: "Domain events handed to the broker, by type and result",
		},
		[]string{"type", "result"},
	)

	eventsConsumed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "events_consumed_total",
			Help: "Domain events read by the audit consumer, by type and result",
		},
		[]string{"type", "result"},
	)
)

func RecordLeadAction(action string) {
	leadLifecycle.WithLabelValues(action).Inc()
}

func SetLeadGauges(activeByStatus map[string]int, deleted int) {
	for status, n := range activeByStatus {
		leadsActive.WithLabelValues(status).Set(float64(n))
	}
	leadsDeleted.Set(float64(deleted))
}

func RecordLogin(outcome string) {
	loginAttempts.WithLabelValues(outcome).Inc()
}

func RecordEventPublished(eventType string, err error) {
	eventsPublished.WithLabelValues(eventType, result(err)).Inc()
}

func RecordEventConsumed(eventType string, err error) {
	eventsConsumed.WithLabelValues(eventType, result(err)).Inc()
}

func result(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
