package infrastructure

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsCollectorAdapter implements the PipelineMetrics port with Prometheus collectors
type MetricsCollectorAdapter struct {
	lookups          *prometheus.CounterVec
	lookupLatency    prometheus.Histogram
	upstreamRequests *prometheus.CounterVec
	upstreamLatency  *prometheus.HistogramVec
}

// NewMetricsCollectorAdapter registers the pipeline collectors on reg
func NewMetricsCollectorAdapter(reg prometheus.Registerer) *MetricsCollectorAdapter {
	factory := promauto.With(reg)

	return &MetricsCollectorAdapter{
		lookups: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "weather_lookups_total",
				Help: "The total number of weather lookups by outcome",
			},
			[]string{"outcome"},
		),
		lookupLatency: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "weather_lookup_duration_seconds",
				Help:    "End-to-end weather lookup duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),
		upstreamRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "weather_upstream_requests_total",
				Help: "The total number of upstream requests by service and outcome",
			},
			[]string{"service", "outcome"},
		),
		upstreamLatency: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "weather_upstream_request_duration_seconds",
				Help:    "Upstream request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"service"},
		),
	}
}

// RecordLookup counts a finished lookup and observes its duration
func (m *MetricsCollectorAdapter) RecordLookup(outcome string, duration time.Duration) {
	m.lookups.WithLabelValues(outcome).Inc()
	m.lookupLatency.Observe(duration.Seconds())
}

// RecordUpstreamCall counts one upstream request and observes its duration
func (m *MetricsCollectorAdapter) RecordUpstreamCall(service string, success bool, duration time.Duration) {
	outcome := "success"
	if !success {
		outcome = "error"
	}
	m.upstreamRequests.WithLabelValues(service, outcome).Inc()
	m.upstreamLatency.WithLabelValues(service).Observe(duration.Seconds())
}
