package weather

import (
	"context"
	"time"

	"weathernow.app/internal/ports"
	"weathernow.app/pkg/errors"
)

type UseCase struct {
	geocoder         ports.Geocoder
	forecastProvider ports.ForecastProvider
	logger           ports.Logger
	metrics          ports.PipelineMetrics
}

type UseCaseDependencies struct {
	Geocoder         ports.Geocoder
	ForecastProvider ports.ForecastProvider
	Logger           ports.Logger
	Metrics          ports.PipelineMetrics
}

func NewUseCase(deps UseCaseDependencies) (*UseCase, error) {
	if deps.Geocoder == nil {
		return nil, errors.NewValidationError("geocoder is required")
	}
	if deps.ForecastProvider == nil {
		return nil, errors.NewValidationError("forecast provider is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}
	if deps.Metrics == nil {
		return nil, errors.NewValidationError("metrics is required")
	}

	return &UseCase{
		geocoder:         deps.Geocoder,
		forecastProvider: deps.ForecastProvider,
		logger:           deps.Logger,
		metrics:          deps.Metrics,
	}, nil
}

// Lookup geocodes the requested city, fetches its forecast and derives the
// display model. The first upstream error is returned unchanged.
func (uc *UseCase) Lookup(ctx context.Context, request LookupRequest) (*DisplayModel, error) {
	startTime := time.Now()

	model, err := uc.lookup(ctx, request)

	uc.metrics.RecordLookup(lookupOutcome(err), time.Since(startTime))
	return model, err
}

func (uc *UseCase) lookup(ctx context.Context, request LookupRequest) (*DisplayModel, error) {
	if err := request.IsValid(); err != nil {
		return nil, errors.NewValidationError("invalid lookup request: " + err.Error())
	}

	request.NormalizeCity()
	city := request.City
	uc.logger.Debug("Looking up weather for city", ports.F("city", city))

	coords, err := uc.geocode(ctx, city)
	if err != nil {
		uc.logger.Warn("Geocoding failed",
			ports.F("city", city),
			ports.F("error", err))
		return nil, err
	}

	raw, err := uc.fetchForecast(ctx, coords)
	if err != nil {
		uc.logger.Warn("Forecast fetch failed",
			ports.F("city", city),
			ports.F("latitude", coords.Latitude),
			ports.F("longitude", coords.Longitude),
			ports.F("error", err))
		return nil, err
	}

	model := NewDisplayModel(*coords, *raw)
	if !IsKnownCode(raw.WeatherCode) {
		uc.logger.Debug("Unknown weather code, using fallback",
			ports.F("weather_code", raw.WeatherCode))
	}

	uc.logger.Debug("Weather lookup completed",
		ports.F("city", model.CityLabel),
		ports.F("temperature", raw.TemperatureC))
	return model, nil
}

func (uc *UseCase) geocode(ctx context.Context, city string) (*Coordinates, error) {
	location, err := uc.geocoder.Geocode(ctx, city)
	if err != nil {
		return nil, err
	}
	return &Coordinates{
		Latitude:  location.Latitude,
		Longitude: location.Longitude,
		CityName:  location.Name,
		Country:   location.Country,
	}, nil
}

func (uc *UseCase) fetchForecast(ctx context.Context, coords *Coordinates) (*RawForecast, error) {
	forecast, err := uc.forecastProvider.GetForecast(ctx, coords.Latitude, coords.Longitude)
	if err != nil {
		return nil, err
	}
	return &RawForecast{
		WeatherCode:     forecast.WeatherCode,
		TemperatureC:    forecast.TemperatureC,
		HumidityPct:     forecast.HumidityPct,
		PrecipitationMm: forecast.PrecipitationMm,
	}, nil
}

func lookupOutcome(err error) string {
	switch {
	case err == nil:
		return ports.OutcomeSuccess
	case errors.IsNotFoundError(err):
		return ports.OutcomeNotFound
	case errors.IsValidationError(err):
		return ports.OutcomeInvalid
	case errors.IsUpstreamError(err):
		return ports.OutcomeUpstream
	default:
		return ports.OutcomeError
	}
}
