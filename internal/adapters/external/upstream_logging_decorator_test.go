package external

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"weathernow.app/internal/mocks"
	"weathernow.app/internal/ports"
	"weathernow.app/pkg/errors"
)

func TestGeocoderLoggingDecorator_Success(t *testing.T) {
	geocoder := mocks.NewGeocoder(t)
	geocoder.EXPECT().GetProviderName().Return("test-geocoder")
	geocoder.EXPECT().Geocode(mock.Anything, "Paris").
		Return(&ports.Location{Latitude: 48.85, Longitude: 2.35, Name: "Paris", Country: "France"}, nil).Once()

	logger := &testLogger{}
	decorator := NewGeocoderLoggingDecorator(geocoder, logger)

	location, err := decorator.Geocode(context.Background(), "Paris")

	require.NoError(t, err)
	assert.Equal(t, "France", location.Country)

	require.Len(t, logger.entries, 2)
	request := logger.entries[0]
	assert.Equal(t, "INFO", request.level)
	assert.Equal(t, "Geocoding request started", request.message)
	assert.Equal(t, "test-geocoder", request.fields["provider"])
	assert.Equal(t, "Paris", request.fields["city"])
	assert.Equal(t, "request", request.fields["event"])

	response := logger.entries[1]
	assert.Equal(t, "INFO", response.level)
	assert.Equal(t, "response", response.fields["event"])
	assert.Contains(t, response.fields, "duration_ms")
	assert.Equal(t, 48.85, response.fields["latitude"])
}

func TestGeocoderLoggingDecorator_Error(t *testing.T) {
	geocoder := mocks.NewGeocoder(t)
	geocoder.EXPECT().GetProviderName().Return("test-geocoder")
	notFound := errors.NewNotFoundError("City not found")
	geocoder.EXPECT().Geocode(mock.Anything, "Nowhere").Return((*ports.Location)(nil), notFound).Once()

	logger := &testLogger{}
	decorator := NewGeocoderLoggingDecorator(geocoder, logger)

	location, err := decorator.Geocode(context.Background(), "Nowhere")

	assert.Nil(t, location)
	assert.Same(t, notFound, err)
	require.Len(t, logger.entries, 2)
	assert.Equal(t, "ERROR", logger.entries[1].level)
	assert.Equal(t, "error", logger.entries[1].fields["event"])
	assert.Equal(t, notFound.Error(), logger.entries[1].fields["error"])
}

func TestGeocoderLoggingDecorator_ProviderName(t *testing.T) {
	geocoder := mocks.NewGeocoder(t)
	geocoder.EXPECT().GetProviderName().Return("open-meteo-geocoding")

	decorator := NewGeocoderLoggingDecorator(geocoder, &testLogger{})

	assert.Equal(t, "logged(open-meteo-geocoding)", decorator.GetProviderName())
}

func TestForecastLoggingDecorator_Success(t *testing.T) {
	provider := &delayedForecastProvider{
		forecast: &ports.Forecast{WeatherCode: 61, TemperatureC: 9, HumidityPct: 90, PrecipitationMm: 1.5},
		delay:    10 * time.Millisecond,
	}
	logger := &testLogger{}
	decorator := NewForecastLoggingDecorator(provider, logger)

	forecast, err := decorator.GetForecast(context.Background(), 1, 2)

	require.NoError(t, err)
	assert.Equal(t, 61, forecast.WeatherCode)
	require.Len(t, logger.entries, 2)
	assert.Equal(t, "Forecast request started", logger.entries[0].message)
	assert.Equal(t, "Forecast request completed", logger.entries[1].message)
	assert.Equal(t, 1.5, logger.entries[1].fields["precipitation"])

	duration, ok := logger.entries[1].fields["duration_ms"].(int64)
	require.True(t, ok)
	assert.GreaterOrEqual(t, duration, int64(10))
}

func TestForecastLoggingDecorator_Error(t *testing.T) {
	provider := mocks.NewForecastProvider(t)
	provider.EXPECT().GetProviderName().Return("test-forecast")
	provider.EXPECT().GetForecast(mock.Anything, 1.0, 2.0).
		Return((*ports.Forecast)(nil), errors.NewHTTPError(500)).Once()

	logger := &testLogger{}
	decorator := NewForecastLoggingDecorator(provider, logger)

	forecast, err := decorator.GetForecast(context.Background(), 1, 2)

	assert.Nil(t, forecast)
	assert.True(t, errors.IsHTTPError(err))
	require.Len(t, logger.entries, 2)
	assert.Equal(t, "ERROR", logger.entries[1].level)
	assert.Equal(t, "Forecast request failed", logger.entries[1].message)
	assert.Equal(t, "logged(test-forecast)", decorator.GetProviderName())
}

type delayedForecastProvider struct {
	forecast *ports.Forecast
	delay    time.Duration
}

func (p *delayedForecastProvider) GetForecast(ctx context.Context, _, _ float64) (*ports.Forecast, error) {
	select {
	case <-time.After(p.delay):
		return p.forecast, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (p *delayedForecastProvider) GetProviderName() string {
	return "delayed-forecast"
}

type logEntry struct {
	level   string
	message string
	fields  map[string]interface{}
}

type testLogger struct {
	mu      sync.Mutex
	entries []logEntry
}

func (l *testLogger) Debug(msg string, fields ...ports.Field) {
	l.addEntry("DEBUG", msg, fields...)
}

func (l *testLogger) Info(msg string, fields ...ports.Field) {
	l.addEntry("INFO", msg, fields...)
}

func (l *testLogger) Warn(msg string, fields ...ports.Field) {
	l.addEntry("WARN", msg, fields...)
}

func (l *testLogger) Error(msg string, fields ...ports.Field) {
	l.addEntry("ERROR", msg, fields...)
}

func (l *testLogger) addEntry(level, message string, fields ...ports.Field) {
	fieldMap := make(map[string]interface{})
	for _, field := range fields {
		fieldMap[field.Key] = field.Value
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, logEntry{
		level:   level,
		message: message,
		fields:  fieldMap,
	})
}

func BenchmarkGeocoderLoggingDecorator(b *testing.B) {
	geocoder := NewOpenMeteoGeocoderAdapter(OpenMeteoParams{
		Client: failingClient{err: context.Canceled},
	})
	decorator := NewGeocoderLoggingDecorator(geocoder, &testLogger{})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = decorator.Geocode(context.Background(), "Paris")
	}
}
