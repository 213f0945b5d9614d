package external

import (
	"context"
	"net/url"
	"strconv"
	"time"

	"weathernow.app/internal/ports"
	"weathernow.app/pkg/errors"
)

const (
	forecastService = "forecast"
	openMeteoTime   = "2006-01-02T15:04"
)

// OpenMeteoForecastAdapter implements the ForecastProvider port for the Open-Meteo forecast API
type OpenMeteoForecastAdapter struct {
	upstream upstreamClient
	logger   ports.Logger
}

// ForecastResponse represents the subset of the Open-Meteo forecast response that is read.
// Pointers distinguish absent or null values from zero readings.
type ForecastResponse struct {
	CurrentWeather *CurrentWeather `json:"current_weather"`
	Hourly         struct {
		Time             []string   `json:"time"`
		RelativeHumidity []*float64 `json:"relativehumidity_2m"`
		Precipitation    []*float64 `json:"precipitation"`
	} `json:"hourly"`
}

// CurrentWeather is the current_weather block of a forecast response
type CurrentWeather struct {
	Time        string   `json:"time"`
	Temperature *float64 `json:"temperature"`
	WeatherCode *int     `json:"weathercode"`
}

// NewOpenMeteoForecastAdapter creates a new Open-Meteo forecast adapter
func NewOpenMeteoForecastAdapter(params OpenMeteoParams) *OpenMeteoForecastAdapter {
	return &OpenMeteoForecastAdapter{
		upstream: newUpstreamClient(forecastService, DefaultForecastBaseURL, params),
		logger:   params.Logger,
	}
}

// GetForecast fetches current conditions for a coordinate. Humidity and
// precipitation are read from the first hourly sample.
func (f *OpenMeteoForecastAdapter) GetForecast(ctx context.Context, latitude, longitude float64) (*ports.Forecast, error) {
	query := url.Values{
		"latitude":        {strconv.FormatFloat(latitude, 'f', -1, 64)},
		"longitude":       {strconv.FormatFloat(longitude, 'f', -1, 64)},
		"current_weather": {"true"},
		"hourly":          {"relativehumidity_2m,precipitation"},
		"timezone":        {"auto"},
	}

	var apiResp ForecastResponse
	if err := f.upstream.getJSON(ctx, "/v1/forecast", query, &apiResp); err != nil {
		return nil, err
	}

	current := apiResp.CurrentWeather
	if current == nil || current.Temperature == nil || current.WeatherCode == nil {
		return nil, errors.NewExternalAPIError("forecast response has no current weather", nil)
	}

	hourly := apiResp.Hourly
	if len(hourly.RelativeHumidity) == 0 || len(hourly.Precipitation) == 0 ||
		hourly.RelativeHumidity[0] == nil || hourly.Precipitation[0] == nil {
		return nil, errors.NewExternalAPIError("forecast response has no hourly samples", nil)
	}

	f.checkAlignment(current.Time, hourly.Time, latitude, longitude)

	return &ports.Forecast{
		WeatherCode:     *current.WeatherCode,
		TemperatureC:    *current.Temperature,
		HumidityPct:     *hourly.RelativeHumidity[0],
		PrecipitationMm: *hourly.Precipitation[0],
	}, nil
}

// checkAlignment warns when the first hourly sample is not the current hour.
// Index 0 is used regardless.
func (f *OpenMeteoForecastAdapter) checkAlignment(currentTime string, hourlyTimes []string, latitude, longitude float64) {
	if f.logger == nil || len(hourlyTimes) == 0 {
		return
	}

	current, err := time.Parse(openMeteoTime, currentTime)
	if err != nil {
		return
	}
	first, err := time.Parse(openMeteoTime, hourlyTimes[0])
	if err != nil {
		return
	}

	if !current.Truncate(time.Hour).Equal(first.Truncate(time.Hour)) {
		f.logger.Warn("Hourly sample does not match current hour",
			ports.F("latitude", latitude),
			ports.F("longitude", longitude),
			ports.F("current_time", currentTime),
			ports.F("hourly_time", hourlyTimes[0]))
	}
}

// GetProviderName returns the name of this forecast provider
func (f *OpenMeteoForecastAdapter) GetProviderName() string {
	return "open-meteo-forecast"
}
