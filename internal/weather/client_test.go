package weather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/heliotrack/solar-installations/internal/httperr"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewClient(srv.Client(), "test-key", srv.URL, "metric")
	require.NoError(t, err)
	return client
}

func TestNewClientRejectsBadConfig(t *testing.T) {
	_, err := NewClient(nil, "", "", "metric")
	require.Error(t, err)

	_, err = NewClient(nil, "key", "", "fahrenheit")
	require.Error(t, err)
}

func TestLookupByAddressRequiresAddress(t *testing.T) {
	client, err := NewClient(nil, "test-key", "", "metric")
	require.NoError(t, err)

	_, err = client.LookupByAddress(context.Background(), "   ")
	require.Error(t, err)

	// A blank address is a caller bug, not a request-level failure.
	_, carriesStatus := httperr.StatusOf(err)
	require.False(t, carriesStatus)
}

func TestLookupByAddressSendsQueryParameters(t *testing.T) {
	var gotQuery map[string]string

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{
			"q":     r.URL.Query().Get("q"),
			"appid": r.URL.Query().Get("appid"),
			"units": r.URL.Query().Get("units"),
		}
		w.Write([]byte(`{"weather":[{"id":800,"main":"Clear"}],"main":{"temp":21.5},"sys":{"sunrise":0,"sunset":7200}}`))
	})

	rep, err := client.LookupByAddress(context.Background(), "San Diego")
	require.NoError(t, err)

	require.Equal(t, "San Diego", gotQuery["q"])
	require.Equal(t, "test-key", gotQuery["appid"])
	require.Equal(t, "metric", gotQuery["units"])

	require.Len(t, rep.Weather, 1)
	require.Equal(t, float64(800), rep.Weather[0].ID)
	require.NotNil(t, rep.Main.Temp)
	require.Equal(t, 21.5, *rep.Main.Temp)
	require.Equal(t, int64(7200), rep.Sys.Sunset)
}

func TestLookupByAddressRateLimited(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})

	_, err := client.LookupByAddress(context.Background(), "San Diego")
	require.Error(t, err)

	status, ok := httperr.StatusOf(err)
	require.True(t, ok)
	require.Equal(t, http.StatusTooManyRequests, status)
	require.Equal(t, "OpenWeather rate limit exceeded", err.Error())
}

func TestLookupByAddressUpstreamErrorWithMessage(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"cod":"404","message":"city not found"}`))
	})

	_, err := client.LookupByAddress(context.Background(), "Nowhereville")
	require.Error(t, err)

	status, ok := httperr.StatusOf(err)
	require.True(t, ok)
	require.Equal(t, http.StatusNotFound, status)
	require.Equal(t, "OpenWeather integration error: city not found", err.Error())
}

func TestLookupByAddressUpstreamErrorFallsBackToStatusText(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := client.LookupByAddress(context.Background(), "San Diego")
	require.Error(t, err)

	status, ok := httperr.StatusOf(err)
	require.True(t, ok)
	require.Equal(t, http.StatusBadGateway, status)
	require.Equal(t, "OpenWeather integration error: Bad Gateway", err.Error())
}

func TestLookupByAddressMalformedPayload(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"weather":[{"id":500}]}`))
	})

	_, err := client.LookupByAddress(context.Background(), "San Diego")
	require.Error(t, err)

	status, ok := httperr.StatusOf(err)
	require.True(t, ok)
	require.Equal(t, http.StatusBadGateway, status)
	require.Equal(t, "OpenWeather returned malformed data", err.Error())
}
