package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sony/gobreaker"

	"github.com/heliotrack/solar-installations/internal/httperr"
)

// AllowedUnits are the unit systems accepted by the OpenWeatherMap API.
var AllowedUnits = []string{"standard", "metric", "imperial"}

const DefaultBaseURL = "https://api.openweathermap.org/data/2.5"

// Client is a thin gateway over the OpenWeatherMap current-weather endpoint.
// Outbound calls go through a circuit breaker so a misbehaving upstream fails
// fast instead of tying up request handlers. There is deliberately no retry:
// each lookup issues at most one request.
type Client struct {
	httpClient *http.Client
	apiKey     string
	baseURL    string
	units      string
	circuit    *gobreaker.CircuitBreaker
}

// NewClient builds a Client. apiKey is required; units must be one of
// AllowedUnits; an empty baseURL falls back to the public API endpoint.
func NewClient(httpClient *http.Client, apiKey, baseURL, units string) (*Client, error) {
	if apiKey == "" {
		return nil, errors.New("openweather api key is required")
	}
	if units == "" {
		units = "metric"
	}
	if !validUnits(units) {
		return nil, fmt.Errorf("invalid units %q; allowed: %s", units, strings.Join(AllowedUnits, ", "))
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}

	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "openweather",
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})

	return &Client{
		httpClient: httpClient,
		apiKey:     apiKey,
		baseURL:    strings.TrimRight(baseURL, "/"),
		units:      units,
		circuit:    cb,
	}, nil
}

func validUnits(units string) bool {
	for _, u := range AllowedUnits {
		if u == units {
			return true
		}
	}
	return false
}

// LookupByAddress fetches current weather for a free-text location query.
// 429 upstream becomes a 429 rate-limit error; any other non-2xx becomes an
// integration error carrying the upstream status and message; a 2xx payload
// without a numeric temperature becomes a 502.
func (c *Client) LookupByAddress(ctx context.Context, address string) (*Report, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		// Programming error in the caller, not a request-level failure.
		return nil, errors.New("address is required and must be non-empty")
	}

	values := url.Values{}
	values.Set("q", address)
	values.Set("appid", c.apiKey)
	values.Set("units", c.units)

	u := fmt.Sprintf("%s/weather?%s", c.baseURL, values.Encode())

	result, err := c.circuit.Execute(func() (interface{}, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
		if err != nil {
			return nil, err
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("openweather request failed: %w", err)
		}
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("openweather read body: %w", err)
		}

		if resp.StatusCode == http.StatusTooManyRequests {
			return nil, httperr.New(http.StatusTooManyRequests, "OpenWeather rate limit exceeded")
		}

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return nil, httperr.New(resp.StatusCode, "OpenWeather integration error: "+upstreamMessage(resp.StatusCode, body))
		}

		var payload Report
		if err := json.Unmarshal(body, &payload); err != nil {
			return nil, httperr.New(http.StatusBadGateway, "OpenWeather returned malformed data")
		}
		if payload.Main.Temp == nil {
			return nil, httperr.New(http.StatusBadGateway, "OpenWeather returned malformed data")
		}

		return &payload, nil
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, httperr.New(http.StatusServiceUnavailable, "OpenWeather integration error: circuit breaker open")
		}
		return nil, err
	}

	return result.(*Report), nil
}

// upstreamMessage extracts the `message` field from an OpenWeatherMap error
// body, falling back to the HTTP status text.
func upstreamMessage(statusCode int, body []byte) string {
	var errInfo struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &errInfo); err == nil && errInfo.Message != "" {
		return errInfo.Message
	}
	return http.StatusText(statusCode)
}
