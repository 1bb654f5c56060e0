package pricing

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/nikhil-r0/Green-Terrace/internal/metrics"
)

const cacheName = "price"

// CachedPredictor memoizes predictions per region and label.
// Unknown prices (0) are cached too so quiet commodities don't hammer the API.
type CachedPredictor struct {
	next Predictor
	lru  *expirable.LRU[string, float64]
}

// NewCachedPredictor wraps next with an expiring LRU cache
func NewCachedPredictor(next Predictor, size int, ttl time.Duration) *CachedPredictor {
	return &CachedPredictor{
		next: next,
		lru:  expirable.NewLRU[string, float64](size, nil, ttl),
	}
}

// PredictPrice returns a cached price or asks the wrapped predictor
func (c *CachedPredictor) PredictPrice(ctx context.Context, region, label string) (float64, error) {
	key := normalizeKey(region) + ":" + normalizeKey(label)
	if price, ok := c.lru.Get(key); ok {
		metrics.RecordCacheLookup(cacheName, true)
		return price, nil
	}
	metrics.RecordCacheLookup(cacheName, false)

	price, err := c.next.PredictPrice(ctx, region, label)
	if err != nil {
		return 0, err
	}
	c.lru.Add(key, price)
	return price, nil
}
