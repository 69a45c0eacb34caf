package rates

import (
	"context"
	"sync"
	"time"

	"cryptorates/internal/adapters"
	"cryptorates/internal/domain"
	"cryptorates/internal/metrics"

	"github.com/sirupsen/logrus"
)

const defaultTTL = 5 * time.Minute

// Cache holds the most recently fetched rate snapshot and decides on each
// request whether to serve it or refresh it. snapshot and fetchedAt are only
// read or written together under mu; the upstream call itself happens outside
// the lock so a slow provider does not serialize request handling.
type Cache struct {
	client  adapters.RatesClient
	metrics *metrics.Metrics
	ttl     time.Duration
	now     func() time.Time

	mu        sync.Mutex
	snapshot  *domain.RateSnapshot
	fetchedAt time.Time
}

func NewCache(client adapters.RatesClient, m *metrics.Metrics, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Cache{client: client, metrics: m, ttl: ttl, now: time.Now}
}

// GetRates returns the cached snapshot while it is still fresh, otherwise
// makes exactly one upstream attempt. When the attempt fails and a previous
// snapshot exists it is served stale; fetchedAt is left untouched so the next
// call retries immediately instead of waiting out the TTL again.
func (c *Cache) GetRates(ctx context.Context) (*domain.RateSnapshot, error) {
	c.mu.Lock()
	if c.snapshot != nil && c.now().Sub(c.fetchedAt) < c.ttl {
		snap := c.snapshot
		c.mu.Unlock()
		logrus.Debug("Returning cached exchange rates")
		return snap, nil
	}
	c.mu.Unlock()

	// Concurrent misses may each issue a fetch; last writer wins. The design
	// does not promise single-flight deduplication.
	snap, err := c.Refresh(ctx)
	if err == nil {
		return snap, nil
	}

	c.mu.Lock()
	stale := c.snapshot
	c.mu.Unlock()
	if stale != nil {
		logrus.WithError(err).Warn("Upstream fetch failed, returning stale exchange rates")
		return stale, nil
	}
	return nil, err
}

// Refresh makes one upstream attempt and, on success, swaps the new snapshot
// in under a short critical section.
func (c *Cache) Refresh(ctx context.Context) (*domain.RateSnapshot, error) {
	logrus.Info("Fetching fresh exchange rates from upstream")
	raw, err := c.client.FetchRates(ctx)
	if err != nil {
		c.metrics.UpstreamCalls.WithLabelValues("error").Inc()
		return nil, err
	}

	snap, err := BuildSnapshot(raw, c.now())
	if err != nil {
		c.metrics.UpstreamCalls.WithLabelValues("error").Inc()
		return nil, err
	}
	c.metrics.UpstreamCalls.WithLabelValues("success").Inc()

	c.mu.Lock()
	c.snapshot = snap
	c.fetchedAt = c.now()
	c.mu.Unlock()

	logrus.Infof("Successfully fetched %d exchange rates", snap.TotalCurrencies)
	return snap, nil
}
