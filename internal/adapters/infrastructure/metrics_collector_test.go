package infrastructure

import (
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"weathernow.app/internal/ports"
)

func TestMetricsCollectorAdapter_RecordLookup(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewMetricsCollectorAdapter(reg)

	metrics.RecordLookup(ports.OutcomeSuccess, 120*time.Millisecond)
	metrics.RecordLookup(ports.OutcomeSuccess, 80*time.Millisecond)
	metrics.RecordLookup(ports.OutcomeNotFound, 30*time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.lookups.WithLabelValues(ports.OutcomeSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.lookups.WithLabelValues(ports.OutcomeNotFound)))
	assert.Equal(t, 1, testutil.CollectAndCount(metrics.lookupLatency))
}

func TestMetricsCollectorAdapter_RecordUpstreamCall(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewMetricsCollectorAdapter(reg)

	metrics.RecordUpstreamCall("geocoding", true, 10*time.Millisecond)
	metrics.RecordUpstreamCall("forecast", false, 20*time.Millisecond)

	expected := `
# HELP weather_upstream_requests_total The total number of upstream requests by service and outcome
# TYPE weather_upstream_requests_total counter
weather_upstream_requests_total{outcome="error",service="forecast"} 1
weather_upstream_requests_total{outcome="success",service="geocoding"} 1
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "weather_upstream_requests_total"))
	assert.Equal(t, 2, testutil.CollectAndCount(metrics.upstreamLatency))
}

func TestMetricsCollectorAdapter_DuplicateRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewMetricsCollectorAdapter(reg)

	assert.Panics(t, func() { NewMetricsCollectorAdapter(reg) })
}
