package infrastructure

import (
	"time"

	"weathernow.app/internal/config"
	"weathernow.app/internal/ports"
)

// ConfigProviderAdapter implements the ConfigProvider port
type ConfigProviderAdapter struct {
	config *config.Config
}

// NewConfigProviderAdapter creates a new config provider adapter
func NewConfigProviderAdapter(cfg *config.Config) *ConfigProviderAdapter {
	return &ConfigProviderAdapter{
		config: cfg,
	}
}

// GetUpstreamConfig returns the Open-Meteo endpoints and client timeout
func (c *ConfigProviderAdapter) GetUpstreamConfig() ports.UpstreamConfig {
	return ports.UpstreamConfig{
		GeocodingBaseURL: c.config.Upstream.GeocodingBaseURL,
		ForecastBaseURL:  c.config.Upstream.ForecastBaseURL,
		Timeout:          time.Duration(c.config.Upstream.TimeoutSeconds) * time.Second,
	}
}

// GetServerConfig returns server configuration
func (c *ConfigProviderAdapter) GetServerConfig() ports.ServerConfig {
	return ports.ServerConfig{
		Port: c.config.Server.Port,
	}
}

// GetSessionConfig returns presentation session configuration
func (c *ConfigProviderAdapter) GetSessionConfig() ports.SessionConfig {
	return ports.SessionConfig{
		IdleTimeout: time.Duration(c.config.Session.IdleMinutes) * time.Minute,
	}
}
