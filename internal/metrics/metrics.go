// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Entry sources.
const (
	SourceManual = "manual"
	SourceTimer  = "timer"
	SourceCLI    = "cli"
)

var (
	// HTTP metrics
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "workhours_http_requests_total",
			Help: "Total HTTP requests handled",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "workhours_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// Tracking metrics
	EntriesCreated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "workhours_entries_created_total",
			Help: "Time entries saved",
		},
		[]string{"source"},
	)

	EntriesRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "workhours_entries_rejected_total",
			Help: "Time entries rejected by validation",
		},
		[]string{"source"},
	)

	HoursRecorded = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "workhours_hours_recorded_total",
			Help: "Hours covered by saved time entries",
		},
	)

	TimerTransitions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "workhours_timer_transitions_total",
			Help: "Live timer state transitions",
		},
		[]string{"action"},
	)

	ActiveTimers = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "workhours_active_timers",
			Help: "Timers that are running or paused",
		},
	)

	// Auth metrics
	LoginAttempts = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "workhours_login_attempts_total",
			Help: "Login attempts by result",
		},
		[]string{"result"},
	)

	Registrations = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "workhours_registrations_total",
			Help: "Accounts created",
		},
	)
)

func init() {
	prometheus.MustRegister(
		HTTPRequestsTotal,
		HTTPRequestDuration,
		EntriesCreated,
		EntriesRejected,
		HoursRecorded,
		TimerTransitions,
		ActiveTimers,
		LoginAttempts,
		Registrations,
	)
}

// Handler serves the default registry in the Prometheus text format.
func Handler() http.Handler {
	return promhttp.Handler()
}
