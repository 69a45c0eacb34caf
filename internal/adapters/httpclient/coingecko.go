package httpclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"cryptorates/internal/domain"
)

// CoinGeckoClient fetches exchange rates from CoinGecko's /exchange_rates
// resource. Failures are classified into the domain error taxonomy so the
// cache can treat them uniformly.
type CoinGeckoClient struct {
	http    *http.Client
	baseURL string
}

func NewCoinGeckoClient(httpClient *http.Client, baseURL string) *CoinGeckoClient {
	return &CoinGeckoClient{http: httpClient, baseURL: strings.TrimSuffix(baseURL, "/")}
}

func (c *CoinGeckoClient) FetchRates(ctx context.Context) (map[string]any, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/exchange_rates", nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", domain.ErrUpstreamUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: %s", domain.ErrUpstreamStatus, resp.Status)
	}

	var payload map[string]any
	if err = json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", domain.ErrMalformedPayload, err)
	}
	return payload, nil
}
