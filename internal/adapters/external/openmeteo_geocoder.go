package external

import (
	"context"
	"net/url"

	"weathernow.app/internal/ports"
	"weathernow.app/pkg/errors"
)

const geocodingService = "geocoding"

// OpenMeteoGeocoderAdapter implements the Geocoder port for the Open-Meteo geocoding API
type OpenMeteoGeocoderAdapter struct {
	upstream upstreamClient
}

// GeocodingResponse represents the response from the Open-Meteo search endpoint
type GeocodingResponse struct {
	Results []struct {
		Name      string  `json:"name"`
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
		Country   string  `json:"country"`
	} `json:"results"`
}

// NewOpenMeteoGeocoderAdapter creates a new Open-Meteo geocoder adapter
func NewOpenMeteoGeocoderAdapter(params OpenMeteoParams) *OpenMeteoGeocoderAdapter {
	return &OpenMeteoGeocoderAdapter{
		upstream: newUpstreamClient(geocodingService, DefaultGeocodingBaseURL, params),
	}
}

// Geocode resolves a place name to the first matching location
func (g *OpenMeteoGeocoderAdapter) Geocode(ctx context.Context, name string) (*ports.Location, error) {
	var apiResp GeocodingResponse
	if err := g.upstream.getJSON(ctx, "/v1/search", url.Values{"name": {name}}, &apiResp); err != nil {
		return nil, err
	}

	if len(apiResp.Results) == 0 {
		return nil, errors.NewNotFoundError("City not found")
	}

	first := apiResp.Results[0]
	return &ports.Location{
		Latitude:  first.Latitude,
		Longitude: first.Longitude,
		Name:      first.Name,
		Country:   first.Country,
	}, nil
}

// GetProviderName returns the name of this geocoder
func (g *OpenMeteoGeocoderAdapter) GetProviderName() string {
	return "open-meteo-geocoding"
}
