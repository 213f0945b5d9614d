package ports

import "context"

// Location is a geocoded place as returned by a geocoding service
type Location struct {
	Latitude  float64
	Longitude float64
	Name      string
	Country   string
}

// Forecast is the raw current-conditions sample returned by a forecast service
type Forecast struct {
	WeatherCode     int
	TemperatureC    float64
	HumidityPct     float64
	PrecipitationMm float64
}

// Geocoder defines the contract for resolving a place name to coordinates
type Geocoder interface {
	Geocode(ctx context.Context, name string) (*Location, error)
	GetProviderName() string
}

// ForecastProvider defines the contract for fetching current weather at a coordinate
type ForecastProvider interface {
	GetForecast(ctx context.Context, latitude, longitude float64) (*Forecast, error)
	GetProviderName() string
}
