package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"weathernow.app/pkg/errors"
)

const (
	maxPortNumber         = 65535
	maxUpstreamTimeout    = 120
	maxSessionIdleMinutes = 1440
)

// Config represents the application configuration structure
type Config struct {
	Server   ServerConfig   `split_words:"true"`
	Upstream UpstreamConfig `split_words:"true"`
	Logging  LoggingConfig  `split_words:"true"`
	Session  SessionConfig  `split_words:"true"`
}

type ServerConfig struct {
	Port int `envconfig:"SERVER_PORT" default:"8080"`
}

// UpstreamConfig describes the two Open-Meteo services the lookup pipeline calls.
type UpstreamConfig struct {
	GeocodingBaseURL string `envconfig:"GEOCODING_BASE_URL" default:"https://geocoding-api.open-meteo.com"`
	ForecastBaseURL  string `envconfig:"FORECAST_BASE_URL" default:"https://api.open-meteo.com"`
	TimeoutSeconds   int    `envconfig:"UPSTREAM_TIMEOUT_SECONDS" default:"10"`
	UserAgent        string `envconfig:"UPSTREAM_USER_AGENT" default:"weathernow.app/1.0"`
	EnableLogging    bool   `envconfig:"UPSTREAM_LOGGING_ENABLED" default:"true"`
	LogFilePath      string `envconfig:"UPSTREAM_LOG_FILE_PATH" default:"logs/upstream.log"`
}

type LoggingConfig struct {
	Level string `envconfig:"LOG_LEVEL" default:"info"`
}

// SlogLevel converts the configured level name to a slog level.
func (l LoggingConfig) SlogLevel() slog.Level {
	switch strings.ToLower(l.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

type SessionConfig struct {
	IdleMinutes int `envconfig:"SESSION_IDLE_MINUTES" default:"30"`
}

func LoadConfig() (*Config, error) {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, errors.NewConfigurationError("error processing config", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return err
	}
	if err := c.Upstream.Validate(); err != nil {
		return err
	}
	if err := c.Logging.Validate(); err != nil {
		return err
	}
	if err := c.Session.Validate(); err != nil {
		return err
	}
	return nil
}

func (s *ServerConfig) Validate() error {
	if s.Port < 1 || s.Port > maxPortNumber {
		return errors.NewConfigurationError("SERVER_PORT must be between 1 and 65535", nil)
	}
	return nil
}

func (u *UpstreamConfig) Validate() error {
	if err := validateBaseURL("GEOCODING_BASE_URL", u.GeocodingBaseURL); err != nil {
		return err
	}
	if err := validateBaseURL("FORECAST_BASE_URL", u.ForecastBaseURL); err != nil {
		return err
	}
	if u.TimeoutSeconds < 1 || u.TimeoutSeconds > maxUpstreamTimeout {
		return errors.NewConfigurationError("UPSTREAM_TIMEOUT_SECONDS must be between 1 and 120 seconds", nil)
	}
	if u.EnableLogging && u.LogFilePath == "" {
		return errors.NewConfigurationError("UPSTREAM_LOG_FILE_PATH cannot be empty when UPSTREAM_LOGGING_ENABLED is set", nil)
	}
	return nil
}

func validateBaseURL(key, value string) error {
	if value == "" {
		return errors.NewConfigurationError(key+" cannot be empty", nil)
	}
	if !strings.HasPrefix(value, "http://") && !strings.HasPrefix(value, "https://") {
		return errors.NewConfigurationError(key+" must start with http:// or https://", nil)
	}
	return nil
}

func (l *LoggingConfig) Validate() error {
	validLevels := []string{"debug", "info", "warn", "error"}
	for _, level := range validLevels {
		if strings.ToLower(l.Level) == level {
			return nil
		}
	}
	return errors.NewConfigurationError(
		fmt.Sprintf("LOG_LEVEL must be one of: %s", strings.Join(validLevels, ", ")), nil)
}

func (s *SessionConfig) Validate() error {
	if s.IdleMinutes < 1 || s.IdleMinutes > maxSessionIdleMinutes {
		return errors.NewConfigurationError("SESSION_IDLE_MINUTES must be between 1 and 1440 minutes", nil)
	}
	return nil
}
