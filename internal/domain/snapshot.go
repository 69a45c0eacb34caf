package domain

import (
	"bytes"
	"encoding/json"
	"time"
)

// CurrencyRate is a single exchange rate as reported by the upstream provider.
type CurrencyRate struct {
	Name  string  `json:"name"`
	Unit  string  `json:"unit"`
	Value float64 `json:"value"`
	Kind  string  `json:"type"`
}

// RateEntry pairs a currency code with its rate.
type RateEntry struct {
	Code string
	Rate CurrencyRate
}

// RateList is an ordered set of rates. Order carries meaning (rates are kept
// sorted by descending value), so the list marshals to a JSON object whose
// keys appear in list order instead of going through an unordered map.
type RateList []RateEntry

func (l RateList) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, entry := range l {
		if i > 0 {
			buf.WriteByte(',')
		}
		code, err := json.Marshal(entry.Code)
		if err != nil {
			return nil, err
		}
		buf.Write(code)
		buf.WriteByte(':')
		rate, err := json.Marshal(entry.Rate)
		if err != nil {
			return nil, err
		}
		buf.Write(rate)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// RateSnapshot is one complete, internally consistent set of exchange rates
// plus the time it was assembled.
type RateSnapshot struct {
	Rates           RateList  `json:"rates"`
	TotalCurrencies int       `json:"total_currencies"`
	LastUpdated     time.Time `json:"last_updated"`
}
