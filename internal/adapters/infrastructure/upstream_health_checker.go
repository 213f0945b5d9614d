package infrastructure

import (
	"context"
	"net/url"

	"weathernow.app/internal/ports"
)

// UpstreamHealthChecker reports whether the Open-Meteo endpoints are configured.
// It never calls the upstream services.
type UpstreamHealthChecker struct {
	config ports.UpstreamConfig
}

// NewUpstreamHealthChecker creates a new upstream health checker
func NewUpstreamHealthChecker(config ports.UpstreamConfig) *UpstreamHealthChecker {
	return &UpstreamHealthChecker{config: config}
}

// Check verifies that both upstream base URLs are absolute http(s) URLs
func (u *UpstreamHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: "upstream",
		Status:    "healthy",
		Details: map[string]interface{}{
			"geocoding": u.config.GeocodingBaseURL,
			"forecast":  u.config.ForecastBaseURL,
			"timeout":   u.config.Timeout.String(),
		},
	}

	for name, endpoint := range map[string]string{
		"geocoding": u.config.GeocodingBaseURL,
		"forecast":  u.config.ForecastBaseURL,
	} {
		if !isHTTPURL(endpoint) {
			status.Status = "unhealthy"
			status.Error = name + " endpoint is not configured"
			return status
		}
	}

	return status
}

func isHTTPURL(raw string) bool {
	parsed, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (parsed.Scheme == "http" || parsed.Scheme == "https") && parsed.Host != ""
}
