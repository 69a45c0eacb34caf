package httpclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"cryptorates/internal/domain"

	"github.com/stretchr/testify/require"
)

func TestCoinGeckoClient_Success(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{
            "rates": {
                "btc": {"name": "Bitcoin", "unit": "BTC", "value": 1.0, "type": "crypto"},
                "usd": {"name": "US Dollar", "unit": "$", "value": 43000.0, "type": "fiat"}
            }
        }`))
	}))
	t.Cleanup(srv.Close)

	c := NewCoinGeckoClient(srv.Client(), srv.URL+"/api/v3/")

	payload, err := c.FetchRates(context.Background())
	require.NoError(t, err)
	require.Equal(t, "/api/v3/exchange_rates", gotPath)

	rawRates, ok := payload["rates"].(map[string]any)
	require.True(t, ok)
	require.Len(t, rawRates, 2)
}

func TestCoinGeckoClient_StatusCodeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusServiceUnavailable)
	}))
	t.Cleanup(srv.Close)

	c := NewCoinGeckoClient(srv.Client(), srv.URL)

	_, err := c.FetchRates(context.Background())
	require.Error(t, err)
	require.ErrorIs(t, err, domain.ErrUpstreamStatus)
	require.Contains(t, err.Error(), "503")
}

func TestCoinGeckoClient_JSONDecodeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("{")) // invalid JSON
	}))
	t.Cleanup(srv.Close)

	c := NewCoinGeckoClient(srv.Client(), srv.URL)

	_, err := c.FetchRates(context.Background())
	require.Error(t, err)
	require.ErrorIs(t, err, domain.ErrMalformedPayload)
}

func TestCoinGeckoClient_ConnectionError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	c := NewCoinGeckoClient(&http.Client{}, srv.URL)

	_, err := c.FetchRates(context.Background())
	require.Error(t, err)
	require.ErrorIs(t, err, domain.ErrUpstreamUnavailable)
}
