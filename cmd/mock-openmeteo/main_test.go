package main

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"weathernow.app/internal/adapters/external"
	"weathernow.app/pkg/errors"
)

func startMock(t *testing.T) string {
	t.Helper()
	gin.SetMode(gin.TestMode)
	server := httptest.NewServer(newRouter())
	t.Cleanup(server.Close)
	return server.URL
}

func TestMockServer_WithOpenMeteoAdapters(t *testing.T) {
	baseURL := startMock(t)
	geocoder := external.NewOpenMeteoGeocoderAdapter(external.OpenMeteoParams{BaseURL: baseURL})
	forecast := external.NewOpenMeteoForecastAdapter(external.OpenMeteoParams{BaseURL: baseURL})

	location, err := geocoder.Geocode(context.Background(), "Bergen")
	require.NoError(t, err)
	assert.Equal(t, "Norway", location.Country)

	now, err := forecast.GetForecast(context.Background(), location.Latitude, location.Longitude)
	require.NoError(t, err)
	assert.Equal(t, 63, now.WeatherCode)
	assert.Equal(t, 2.5, now.PrecipitationMm)
}

func TestMockServer_UnknownCity(t *testing.T) {
	geocoder := external.NewOpenMeteoGeocoderAdapter(external.OpenMeteoParams{BaseURL: startMock(t)})

	_, err := geocoder.Geocode(context.Background(), "Xyzzyville")

	assert.True(t, errors.IsNotFoundError(err))
}

func TestMockServer_ForecastFailure(t *testing.T) {
	baseURL := startMock(t)
	geocoder := external.NewOpenMeteoGeocoderAdapter(external.OpenMeteoParams{BaseURL: baseURL})
	forecast := external.NewOpenMeteoForecastAdapter(external.OpenMeteoParams{BaseURL: baseURL})

	location, err := geocoder.Geocode(context.Background(), "servererror")
	require.NoError(t, err)

	_, err = forecast.GetForecast(context.Background(), location.Latitude, location.Longitude)

	require.Error(t, err)
	assert.Equal(t, "HTTP error! Status: 500", errors.UserMessage(err))
}
