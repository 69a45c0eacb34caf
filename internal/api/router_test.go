package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cryptorates/internal/domain"
	"cryptorates/internal/metrics"
	"cryptorates/internal/rates/handler"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

type stubProvider struct {
	snap *domain.RateSnapshot
	err  error
}

func (s stubProvider) GetRates(context.Context) (*domain.RateSnapshot, error) {
	return s.snap, s.err
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	snap := &domain.RateSnapshot{
		Rates: domain.RateList{
			{Code: "btc", Rate: domain.CurrencyRate{Name: "Bitcoin", Unit: "BTC", Value: 1.0, Kind: "crypto"}},
		},
		TotalCurrencies: 1,
		LastUpdated:     time.Now(),
	}
	h, err := handler.NewRatesHandler(stubProvider{snap: snap}, "1.0.0")
	require.NoError(t, err)

	return NewRouter(h, m, reg)
}

func TestRouter_KnownRoutes(t *testing.T) {
	router := newTestRouter(t)

	cases := []struct {
		path        string
		wantStatus  int
		contentType string
	}{
		{path: "/", wantStatus: http.StatusOK, contentType: "text/html"},
		{path: "/api/rates", wantStatus: http.StatusOK, contentType: "application/json"},
		{path: "/health", wantStatus: http.StatusOK, contentType: "application/json"},
	}

	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tc.path, nil)
			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			require.Equal(t, tc.wantStatus, rr.Code)
			require.Contains(t, rr.Header().Get("Content-Type"), tc.contentType)
		})
	}
}

func TestRouter_UnknownRouteRendersErrorPage(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/does-not-exist", nil)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusNotFound, rr.Code)
	require.Contains(t, rr.Body.String(), "Page not found")
}

func TestRouter_MetricsExposition(t *testing.T) {
	router := newTestRouter(t)

	// generate one instrumented request first
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/rates", nil))

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	require.Contains(t, rr.Body.String(), "crypto_app_requests_total")
	require.Contains(t, rr.Body.String(), `endpoint="/api/rates"`)
	require.Contains(t, rr.Body.String(), "crypto_app_request_duration_seconds")
}

func TestRecoverer_RendersErrorPage(t *testing.T) {
	h, err := handler.NewRatesHandler(stubProvider{}, "1.0.0")
	require.NoError(t, err)

	wrapped := recoverer(h)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()

	wrapped.ServeHTTP(rr, req)

	require.Equal(t, http.StatusInternalServerError, rr.Code)
	require.Contains(t, rr.Body.String(), "Internal server error")
}
