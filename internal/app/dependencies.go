package app

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"weathernow.app/internal/adapters/external"
	"weathernow.app/internal/adapters/infrastructure"
	"weathernow.app/internal/config"
	"weathernow.app/internal/ports"
)

type DependencyContainer struct {
	config     *config.Config
	registry   *prometheus.Registry
	fileLogger *infrastructure.FileLoggerAdapter
	health     ports.SystemHealthChecker
	ports      *ports.ApplicationPorts
}

// DependencyOptions overrides process-wide defaults, mainly for tests
type DependencyOptions struct {
	LogOutput io.Writer
}

func NewDependencyContainer(cfg *config.Config, opts DependencyOptions) (*DependencyContainer, error) {
	if opts.LogOutput == nil {
		opts.LogOutput = os.Stdout
	}

	container := &DependencyContainer{
		config:   cfg,
		registry: prometheus.NewRegistry(),
	}

	if err := container.initializePorts(opts); err != nil {
		return nil, fmt.Errorf("initialize ports: %w", err)
	}

	return container, nil
}

func (c *DependencyContainer) initializePorts(opts DependencyOptions) error {
	logger := infrastructure.NewSlogLoggerAdapter(opts.LogOutput, c.config.Logging.SlogLevel())
	slog.SetDefault(logger.Slog())
	logger.Info("Initializing ports...")

	c.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := infrastructure.NewMetricsCollectorAdapter(c.registry)

	configProvider := infrastructure.NewConfigProviderAdapter(c.config)
	upstreamConfig := configProvider.GetUpstreamConfig()

	var geocoder ports.Geocoder = external.NewOpenMeteoGeocoderAdapter(external.OpenMeteoParams{
		BaseURL:   upstreamConfig.GeocodingBaseURL,
		Timeout:   upstreamConfig.Timeout,
		UserAgent: c.config.Upstream.UserAgent,
		Logger:    logger,
		Metrics:   metrics,
	})
	var forecastProvider ports.ForecastProvider = external.NewOpenMeteoForecastAdapter(external.OpenMeteoParams{
		BaseURL:   upstreamConfig.ForecastBaseURL,
		Timeout:   upstreamConfig.Timeout,
		UserAgent: c.config.Upstream.UserAgent,
		Logger:    logger,
		Metrics:   metrics,
	})

	// If logging is enabled, wrap the upstream adapters with logging decorators
	if c.config.Upstream.EnableLogging {
		var upstreamLogger ports.Logger = logger
		fileLogger, err := infrastructure.NewFileLoggerAdapter(c.config.Upstream.LogFilePath)
		if err != nil {
			logger.Warn("Failed to create file logger, falling back to slog", ports.F("error", err))
		} else {
			c.fileLogger = fileLogger
			upstreamLogger = fileLogger
			logger.Info("Upstream file logging enabled", ports.F("path", c.config.Upstream.LogFilePath))
		}

		geocoder = external.NewGeocoderLoggingDecorator(geocoder, upstreamLogger)
		forecastProvider = external.NewForecastLoggingDecorator(forecastProvider, upstreamLogger)
	}

	c.health = infrastructure.NewSystemHealthChecker(infrastructure.SystemHealthCheckerConfig{
		UpstreamChecker: infrastructure.NewUpstreamHealthChecker(upstreamConfig),
		ConfigProvider:  configProvider,
	})

	c.ports = &ports.ApplicationPorts{
		Geocoder:         geocoder,
		ForecastProvider: forecastProvider,
		ConfigProvider:   configProvider,
		Logger:           logger,
		Metrics:          metrics,
	}

	logger.Info("Ports initialized successfully",
		ports.F("geocoder", geocoder.GetProviderName()),
		ports.F("forecast", forecastProvider.GetProviderName()),
		ports.F("timeout", upstreamConfig.Timeout.String()))
	return nil
}

func (c *DependencyContainer) ApplicationPorts() *ports.ApplicationPorts {
	return c.ports
}

// Registry returns the Prometheus registry served at /metrics
func (c *DependencyContainer) Registry() *prometheus.Registry {
	return c.registry
}

// HealthChecker returns the aggregated health checker
func (c *DependencyContainer) HealthChecker() ports.SystemHealthChecker {
	return c.health
}

// Cleanup releases resources held by the container
func (c *DependencyContainer) Cleanup() error {
	if c.fileLogger != nil {
		return c.fileLogger.Close()
	}
	return nil
}

// NewTestConfig returns a valid configuration pointing at the given upstream base URLs
func NewTestConfig(geocodingURL, forecastURL string) *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Port: 8080},
		Upstream: config.UpstreamConfig{
			GeocodingBaseURL: geocodingURL,
			ForecastBaseURL:  forecastURL,
			TimeoutSeconds:   5,
			UserAgent:        "weathernow.app/test",
		},
		Logging: config.LoggingConfig{Level: "debug"},
		Session: config.SessionConfig{IdleMinutes: 30},
	}
}
