package catalog

import (
	"context"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/nikhil-r0/Green-Terrace/internal/domain"
	"github.com/nikhil-r0/Green-Terrace/internal/metrics"
)

const cacheName = "catalog"

// CachedProvider memoizes catalogs per region.
// Callers always get their own copy.
type CachedProvider struct {
	next Provider
	lru  *expirable.LRU[string, []domain.PlantCandidate]
}

// NewCachedProvider wraps next with an expiring LRU cache
func NewCachedProvider(next Provider, size int, ttl time.Duration) *CachedProvider {
	return &CachedProvider{
		next: next,
		lru:  expirable.NewLRU[string, []domain.PlantCandidate](size, nil, ttl),
	}
}

// GetCatalog returns a cached catalog or loads and stores a fresh one
func (c *CachedProvider) GetCatalog(ctx context.Context, region string) ([]domain.PlantCandidate, error) {
	key := strings.ToLower(strings.TrimSpace(region))
	if plants, ok := c.lru.Get(key); ok {
		metrics.RecordCacheLookup(cacheName, true)
		return clonePlants(plants), nil
	}
	metrics.RecordCacheLookup(cacheName, false)

	plants, err := c.next.GetCatalog(ctx, region)
	if err != nil {
		return nil, err
	}
	c.lru.Add(key, clonePlants(plants))
	return plants, nil
}

// Invalidate drops every cached catalog
func (c *CachedProvider) Invalidate() {
	c.lru.Purge()
}
