package rates

import (
	"fmt"
	"slices"
	"sort"
	"time"

	"cryptorates/internal/domain"
)

// BuildSnapshot shapes the raw upstream payload into a RateSnapshot. The
// payload must carry a top-level "rates" object; everything below it is
// optional and falls back to defaults instead of failing the transform.
func BuildSnapshot(raw map[string]any, now time.Time) (*domain.RateSnapshot, error) {
	rawRates, ok := raw["rates"].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: missing 'rates' field", domain.ErrMalformedPayload)
	}

	// JSON decoding into a map loses document order, so codes are walked
	// alphabetically. The stable sort below then keeps equal values in that
	// deterministic order.
	codes := make([]string, 0, len(rawRates))
	for code := range rawRates {
		codes = append(codes, code)
	}
	slices.Sort(codes)

	entries := make(domain.RateList, 0, len(codes))
	for _, code := range codes {
		fields, _ := rawRates[code].(map[string]any)
		entries = append(entries, domain.RateEntry{Code: code, Rate: shapeRate(code, fields)})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Rate.Value > entries[j].Rate.Value
	})

	return &domain.RateSnapshot{
		Rates:           entries,
		TotalCurrencies: len(entries),
		LastUpdated:     now,
	}, nil
}

func shapeRate(code string, fields map[string]any) domain.CurrencyRate {
	rate := domain.CurrencyRate{Name: code, Unit: "N/A", Kind: "unknown"}
	if v, ok := fields["name"].(string); ok {
		rate.Name = v
	}
	if v, ok := fields["unit"].(string); ok {
		rate.Unit = v
	}
	if v, ok := fields["value"].(float64); ok {
		rate.Value = v
	}
	if v, ok := fields["type"].(string); ok {
		rate.Kind = v
	}
	return rate
}
