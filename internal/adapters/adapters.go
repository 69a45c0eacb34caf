package adapters

import "context"

// RatesClient fetches the raw exchange-rates payload from the upstream
// provider. The payload stays loosely typed; shaping it into domain types
// happens at a single boundary in the rates package.
type RatesClient interface {
	FetchRates(ctx context.Context) (map[string]any, error)
}
