// Package external provides adapters for the upstream Open-Meteo services
package external

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"time"

	"weathernow.app/internal/ports"
	"weathernow.app/pkg/errors"
)

const (
	DefaultGeocodingBaseURL = "https://geocoding-api.open-meteo.com"
	DefaultForecastBaseURL  = "https://api.open-meteo.com"
	DefaultTimeout          = 10 * time.Second
)

// HTTPClient interface for HTTP requests (for testing)
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// OpenMeteoParams holds parameters for creating an Open-Meteo adapter
type OpenMeteoParams struct {
	BaseURL   string
	Timeout   time.Duration
	UserAgent string
	Client    HTTPClient
	Logger    ports.Logger
	Metrics   ports.PipelineMetrics
}

// upstreamClient performs GET requests against one Open-Meteo service and decodes JSON bodies
type upstreamClient struct {
	service   string
	baseURL   string
	userAgent string
	client    HTTPClient
	logger    ports.Logger
	metrics   ports.PipelineMetrics
}

func newUpstreamClient(service, defaultBaseURL string, params OpenMeteoParams) upstreamClient {
	baseURL := strings.TrimRight(params.BaseURL, "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	client := params.Client
	if client == nil {
		timeout := params.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		client = &http.Client{Timeout: timeout}
	}

	return upstreamClient{
		service:   service,
		baseURL:   baseURL,
		userAgent: params.UserAgent,
		client:    client,
		logger:    params.Logger,
		metrics:   params.Metrics,
	}
}

// getJSON issues GET {baseURL}{path}?{query} and decodes the body into out.
// A non-2xx status yields an HTTP error, a failed exchange a transport error.
func (c upstreamClient) getJSON(ctx context.Context, path string, query url.Values, out interface{}) error {
	startTime := time.Now()
	err := c.do(ctx, path, query, out)
	if c.metrics != nil {
		c.metrics.RecordUpstreamCall(c.service, err == nil, time.Since(startTime))
	}
	return err
}

func (c upstreamClient) do(ctx context.Context, path string, query url.Values, out interface{}) error {
	endpoint := c.baseURL + path + "?" + encodeQuery(query)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return errors.NewExternalAPIError("failed to build "+c.service+" request", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return errors.NewTransportError(err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil && c.logger != nil {
			c.logger.Warn("Failed to close response body",
				ports.F("service", c.service),
				ports.F("error", closeErr))
		}
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return errors.NewHTTPError(resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.NewExternalAPIError("failed to decode "+c.service+" response", err)
	}
	return nil
}

// encodeQuery percent-encodes spaces as %20 rather than the form-style "+".
// Encode escapes a literal "+" as %2B, so every remaining "+" is a space.
func encodeQuery(query url.Values) string {
	return strings.ReplaceAll(query.Encode(), "+", "%20")
}
