package external

import (
	"context"
	"time"

	"weathernow.app/internal/ports"
)

// GeocoderLoggingDecorator decorates a geocoder with structured logging
type GeocoderLoggingDecorator struct {
	geocoder ports.Geocoder
	logger   ports.Logger
}

// NewGeocoderLoggingDecorator creates a new logging decorator for a geocoder
func NewGeocoderLoggingDecorator(geocoder ports.Geocoder, logger ports.Logger) *GeocoderLoggingDecorator {
	return &GeocoderLoggingDecorator{
		geocoder: geocoder,
		logger:   logger,
	}
}

// Geocode wraps the geocoder call with structured logging
func (d *GeocoderLoggingDecorator) Geocode(ctx context.Context, name string) (*ports.Location, error) {
	providerName := d.geocoder.GetProviderName()

	d.logger.Info("Geocoding request started",
		ports.F("provider", providerName),
		ports.F("city", name),
		ports.F("event", "request"))

	startTime := time.Now()
	location, err := d.geocoder.Geocode(ctx, name)
	duration := time.Since(startTime)

	if err != nil {
		d.logger.Error("Geocoding request failed",
			ports.F("provider", providerName),
			ports.F("city", name),
			ports.F("event", "error"),
			ports.F("duration_ms", duration.Milliseconds()),
			ports.F("error", err.Error()))
		return nil, err
	}

	d.logger.Info("Geocoding request completed",
		ports.F("provider", providerName),
		ports.F("city", name),
		ports.F("event", "response"),
		ports.F("duration_ms", duration.Milliseconds()),
		ports.F("latitude", location.Latitude),
		ports.F("longitude", location.Longitude),
		ports.F("country", location.Country))

	return location, nil
}

// GetProviderName returns the name of the wrapped geocoder with logging indication
func (d *GeocoderLoggingDecorator) GetProviderName() string {
	return "logged(" + d.geocoder.GetProviderName() + ")"
}

// ForecastLoggingDecorator decorates a forecast provider with structured logging
type ForecastLoggingDecorator struct {
	provider ports.ForecastProvider
	logger   ports.Logger
}

// NewForecastLoggingDecorator creates a new logging decorator for a forecast provider
func NewForecastLoggingDecorator(provider ports.ForecastProvider, logger ports.Logger) *ForecastLoggingDecorator {
	return &ForecastLoggingDecorator{
		provider: provider,
		logger:   logger,
	}
}

// GetForecast wraps the provider call with structured logging
func (d *ForecastLoggingDecorator) GetForecast(ctx context.Context, latitude, longitude float64) (*ports.Forecast, error) {
	providerName := d.provider.GetProviderName()

	d.logger.Info("Forecast request started",
		ports.F("provider", providerName),
		ports.F("latitude", latitude),
		ports.F("longitude", longitude),
		ports.F("event", "request"))

	startTime := time.Now()
	forecast, err := d.provider.GetForecast(ctx, latitude, longitude)
	duration := time.Since(startTime)

	if err != nil {
		d.logger.Error("Forecast request failed",
			ports.F("provider", providerName),
			ports.F("latitude", latitude),
			ports.F("longitude", longitude),
			ports.F("event", "error"),
			ports.F("duration_ms", duration.Milliseconds()),
			ports.F("error", err.Error()))
		return nil, err
	}

	d.logger.Info("Forecast request completed",
		ports.F("provider", providerName),
		ports.F("event", "response"),
		ports.F("duration_ms", duration.Milliseconds()),
		ports.F("weather_code", forecast.WeatherCode),
		ports.F("temperature", forecast.TemperatureC),
		ports.F("humidity", forecast.HumidityPct),
		ports.F("precipitation", forecast.PrecipitationMm))

	return forecast, nil
}

// GetProviderName returns the name of the wrapped provider with logging indication
func (d *ForecastLoggingDecorator) GetProviderName() string {
	return "logged(" + d.provider.GetProviderName() + ")"
}
