package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	RequestsTotal   *prometheus.CounterVec
	RequestDuration prometheus.Histogram
	UpstreamCalls   *prometheus.CounterVec
}

// New registers the application metrics on the given registry. Using an
// explicit registry keeps tests free of double-registration panics.
func New(reg *prometheus.Registry) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		RequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "crypto_app_requests_total",
				Help: "Total app requests",
			},
			[]string{"method", "endpoint"},
		),

		RequestDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "crypto_app_request_duration_seconds",
				Help:    "Request latency",
				Buckets: prometheus.DefBuckets,
			},
		),

		UpstreamCalls: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "coingecko_api_calls_total",
				Help: "Total CoinGecko API calls",
			},
			[]string{"status"},
		),
	}
}
