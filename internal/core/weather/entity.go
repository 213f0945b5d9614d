package weather

import (
	"fmt"
	"strconv"
	"strings"

	"weathernow.app/pkg/validation"
)

// Coordinates represents a geocoded city
type Coordinates struct {
	Latitude  float64
	Longitude float64
	CityName  string
	Country   string
}

// RawForecast represents the upstream current-weather sample for a coordinate
type RawForecast struct {
	WeatherCode     int
	TemperatureC    float64
	HumidityPct     float64
	PrecipitationMm float64
}

// LookupRequest represents a request for weather information
type LookupRequest struct {
	City string
}

// DisplayModel is everything the presentation layer renders for a successful lookup
type DisplayModel struct {
	Description      string   `json:"description"`
	TemperatureLabel string   `json:"temperature"`
	HumidityLabel    string   `json:"humidity"`
	RainLabel        string   `json:"rainChances"`
	Suggestions      []string `json:"suggestions"`
	WeatherCode      *int     `json:"weatherCode"`
	CityLabel        string   `json:"cityName"`
	Icon             string   `json:"icon"`
	Theme            Theme    `json:"theme"`
}

// IsValid validates lookup request
func (r *LookupRequest) IsValid() error {
	if !validation.IsNotBlank(r.City) {
		return fmt.Errorf("city cannot be empty")
	}
	if !validation.IsValidCity(r.City) {
		return fmt.Errorf("city must be at most %d characters", validation.MaxCityLength)
	}
	return nil
}

// NormalizeCity normalizes city name for consistent processing
func (r *LookupRequest) NormalizeCity() {
	r.City = strings.TrimSpace(r.City)
}

// Label returns the "City, Country" text shown above the result
func (c Coordinates) Label() string {
	return fmt.Sprintf("%s, %s", c.CityName, c.Country)
}

// NewDisplayModel derives the display model from a geocoded city and its forecast
func NewDisplayModel(coords Coordinates, raw RawForecast) *DisplayModel {
	code := raw.WeatherCode
	return &DisplayModel{
		Description:      Description(code),
		TemperatureLabel: TemperatureLabel(raw.TemperatureC),
		HumidityLabel:    HumidityLabel(raw.HumidityPct),
		RainLabel:        RainLabel(raw.PrecipitationMm),
		Suggestions:      Suggestions(raw.TemperatureC),
		WeatherCode:      &code,
		CityLabel:        coords.Label(),
		Icon:             Icon(code),
		Theme:            ThemeFor(code),
	}
}

// SuggestionsLabel joins the suggestions for display
func (m *DisplayModel) SuggestionsLabel() string {
	return strings.Join(m.Suggestions, ", ")
}

// ShowsRain reports whether the rain layer is shown for this model.
func (m *DisplayModel) ShowsRain() bool {
	return m.WeatherCode != nil && ShowsRain(*m.WeatherCode)
}

// ShowsParticles reports whether the particle layer is shown for this model.
func (m *DisplayModel) ShowsParticles() bool {
	return m.WeatherCode != nil && ShowsParticles(*m.WeatherCode)
}

func TemperatureLabel(temperatureC float64) string {
	return formatNumber(temperatureC) + "°C"
}

func HumidityLabel(humidityPct float64) string {
	return formatNumber(humidityPct) + "%"
}

// RainLabel summarizes the current precipitation sample
func RainLabel(precipitationMm float64) string {
	if precipitationMm > 0 {
		return "Rain: " + formatNumber(precipitationMm) + "mm"
	}
	return "No Rain"
}

// formatNumber renders the shortest decimal form, so 22 prints as "22" and 2.5 as "2.5".
func formatNumber(v float64) string {
	if v == 0 {
		// normalizes negative zero
		v = 0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
