package geocode

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/nikhil-r0/Green-Terrace/internal/metrics"
)

const cacheName = "region"

// CachedResolver memoizes regions by coordinates rounded to 2 decimals.
// States don't move, so the TTL mostly bounds memory.
type CachedResolver struct {
	next Resolver
	lru  *expirable.LRU[string, string]
}

// NewCachedResolver wraps next with an expiring LRU cache
func NewCachedResolver(next Resolver, size int, ttl time.Duration) *CachedResolver {
	return &CachedResolver{
		next: next,
		lru:  expirable.NewLRU[string, string](size, nil, ttl),
	}
}

// ResolveRegion returns a cached region or resolves and stores a fresh one
func (c *CachedResolver) ResolveRegion(ctx context.Context, latitude, longitude float64) (string, error) {
	key := fmt.Sprintf("%.2f:%.2f", math.Round(latitude*100)/100, math.Round(longitude*100)/100)
	if region, ok := c.lru.Get(key); ok {
		metrics.RecordCacheLookup(cacheName, true)
		return region, nil
	}
	metrics.RecordCacheLookup(cacheName, false)

	region, err := c.next.ResolveRegion(ctx, latitude, longitude)
	if err != nil {
		return "", err
	}
	c.lru.Add(key, region)
	return region, nil
}
