package ports

import "time"

// UpstreamConfig represents the configuration of the upstream weather services
type UpstreamConfig struct {
	GeocodingBaseURL string
	ForecastBaseURL  string
	Timeout          time.Duration
}

// ServerConfig represents server configuration
type ServerConfig struct {
	Port int
}

// SessionConfig represents presentation session configuration
type SessionConfig struct {
	IdleTimeout time.Duration
}

// ConfigProvider defines the contract for configuration management
type ConfigProvider interface {
	GetUpstreamConfig() UpstreamConfig
	GetServerConfig() ServerConfig
	GetSessionConfig() SessionConfig
}

// Logger defines the contract for structured logging
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
}

// Field represents a log field
type Field struct {
	Key   string
	Value interface{}
}

// F creates a log field
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// Lookup outcomes reported to PipelineMetrics
const (
	OutcomeSuccess  = "success"
	OutcomeNotFound = "not_found"
	OutcomeInvalid  = "invalid"
	OutcomeUpstream = "upstream_error"
	OutcomeError    = "error"
)

// PipelineMetrics defines the contract for lookup pipeline metrics
type PipelineMetrics interface {
	RecordLookup(outcome string, duration time.Duration)
	RecordUpstreamCall(service string, success bool, duration time.Duration)
}
