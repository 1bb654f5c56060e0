package climate

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/nikhil-r0/Green-Terrace/internal/domain"
	"github.com/nikhil-r0/Green-Terrace/internal/metrics"
)

// cacheName labels this cache in metrics
const cacheName = "climate"

// CachedProvider memoizes climate lookups by coordinates rounded to 2 decimals (~1km)
type CachedProvider struct {
	next Provider
	lru  *expirable.LRU[string, domain.Climate]
}

// NewCachedProvider wraps next with an expiring LRU cache
func NewCachedProvider(next Provider, size int, ttl time.Duration) *CachedProvider {
	return &CachedProvider{
		next: next,
		lru:  expirable.NewLRU[string, domain.Climate](size, nil, ttl),
	}
}

// GetClimate returns a cached climate or fetches and stores a fresh one.
// Failures are not cached.
func (c *CachedProvider) GetClimate(ctx context.Context, latitude, longitude float64) (*domain.Climate, error) {
	key := coordinateKey(latitude, longitude)
	if cached, ok := c.lru.Get(key); ok {
		metrics.RecordCacheLookup(cacheName, true)
		return &cached, nil
	}
	metrics.RecordCacheLookup(cacheName, false)

	fresh, err := c.next.GetClimate(ctx, latitude, longitude)
	if err != nil {
		return nil, err
	}
	c.lru.Add(key, *fresh)
	return fresh, nil
}

func coordinateKey(latitude, longitude float64) string {
	return fmt.Sprintf("%.2f:%.2f", math.Round(latitude*100)/100, math.Round(longitude*100)/100)
}
