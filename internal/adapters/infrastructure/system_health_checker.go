package infrastructure

import (
	"context"

	"weathernow.app/internal/ports"
)

// SystemHealthChecker aggregates all health checks
type SystemHealthChecker struct {
	upstreamChecker ports.HealthChecker
	configProvider  ports.ConfigProvider
}

// SystemHealthCheckerConfig holds the configuration for creating a system health checker
type SystemHealthCheckerConfig struct {
	UpstreamChecker ports.HealthChecker
	ConfigProvider  ports.ConfigProvider
}

// NewSystemHealthChecker creates a new system health checker
func NewSystemHealthChecker(config SystemHealthCheckerConfig) *SystemHealthChecker {
	return &SystemHealthChecker{
		upstreamChecker: config.UpstreamChecker,
		configProvider:  config.ConfigProvider,
	}
}

// CheckAll performs health checks on all components
func (s *SystemHealthChecker) CheckAll(ctx context.Context) map[string]ports.HealthStatus {
	results := make(map[string]ports.HealthStatus)

	if s.upstreamChecker != nil {
		results["upstream"] = s.upstreamChecker.Check(ctx)
	}

	if s.configProvider != nil {
		server := s.configProvider.GetServerConfig()
		session := s.configProvider.GetSessionConfig()
		results["config"] = ports.HealthStatus{
			Component: "config",
			Status:    "healthy",
			Details: map[string]interface{}{
				"port":               server.Port,
				"sessionIdleTimeout": session.IdleTimeout.String(),
			},
		}
	}

	return results
}
