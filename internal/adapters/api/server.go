// Package api provides HTTP adapters for the hexagonal architecture
// These adapters handle incoming HTTP requests and translate them to use cases
package api

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"weathernow.app/internal/core/weather"
	"weathernow.app/internal/ports"
	"weathernow.app/pkg/errors"
)

//go:embed templates/index.html
var templatesFS embed.FS

// ServerConfig represents HTTP server configuration
type ServerConfig struct {
	SessionIdleTimeout time.Duration
}

// HTTPServerAdapter implements HTTP server using Gin framework
type HTTPServerAdapter struct {
	router         *gin.Engine
	weatherUseCase WeatherUseCase
	sessions       *SessionStore
	healthChecker  ports.SystemHealthChecker
	gatherer       prometheus.Gatherer
	logger         ports.Logger
}

// WeatherUseCase is the lookup pipeline the HTTP adapter depends on
type WeatherUseCase interface {
	Lookup(ctx context.Context, request weather.LookupRequest) (*weather.DisplayModel, error)
}

// ServerOptions represents options for creating the HTTP server
type ServerOptions struct {
	Config          ServerConfig
	WeatherUseCase  WeatherUseCase
	HealthChecker   ports.SystemHealthChecker
	MetricsGatherer prometheus.Gatherer
	Logger          ports.Logger
}

// NewHTTPServerAdapter creates a new HTTP server adapter
func NewHTTPServerAdapter(opts ServerOptions) (*HTTPServerAdapter, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid server options: %w", err)
	}

	if err := RegisterValidators(); err != nil {
		return nil, fmt.Errorf("register validators: %w", err)
	}

	page, err := template.ParseFS(templatesFS, "templates/index.html")
	if err != nil {
		return nil, fmt.Errorf("parse page template: %w", err)
	}

	router := gin.New()
	router.Use(gin.Recovery(), requestIDMiddleware(), requestLogMiddleware(opts.Logger))
	router.SetHTMLTemplate(page)

	server := &HTTPServerAdapter{
		router:         router,
		weatherUseCase: opts.WeatherUseCase,
		sessions:       NewSessionStore(opts.WeatherUseCase, opts.Config.SessionIdleTimeout),
		healthChecker:  opts.HealthChecker,
		gatherer:       opts.MetricsGatherer,
		logger:         opts.Logger,
	}

	server.setupRoutes()
	return server, nil
}

// Validate checks if all required dependencies are provided
func (opts *ServerOptions) Validate() error {
	if opts.WeatherUseCase == nil {
		return errors.NewValidationError("weather use case is required")
	}
	if opts.HealthChecker == nil {
		return errors.NewValidationError("health checker is required")
	}
	if opts.MetricsGatherer == nil {
		return errors.NewValidationError("metrics gatherer is required")
	}
	if opts.Logger == nil {
		return errors.NewValidationError("logger is required")
	}
	return nil
}

// RegisterValidators installs the custom binding tags used by request payloads
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.NewConfigurationError("unexpected validator engine", nil)
	}
	return v.RegisterValidation("notblank", validators.NotBlank)
}

// setupRoutes configures all HTTP routes
func (s *HTTPServerAdapter) setupRoutes() {
	s.router.GET("/", s.getIndex)
	s.router.POST("/lookup", s.postLookup)

	api := s.router.Group("/api")
	{
		api.GET("/weather", s.getWeather)
		api.GET("/session", s.getSession)
		api.POST("/session/lookup", s.postSessionLookup)
		api.GET("/health", s.getHealth)
	}

	s.router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{})))
}

// GetRouter returns the router for testing purposes
func (s *HTTPServerAdapter) GetRouter() *gin.Engine {
	return s.router
}

// Sessions returns the in-memory session store
func (s *HTTPServerAdapter) Sessions() *SessionStore {
	return s.sessions
}
