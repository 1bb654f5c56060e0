package worker

import (
	"context"
	"fmt"

	"github.com/nikhil-r0/Green-Terrace/internal/catalog"
	"github.com/nikhil-r0/Green-Terrace/internal/logger"
)

// RefreshableCatalog is a catalog cache that can be dropped and reloaded
type RefreshableCatalog interface {
	catalog.Provider
	Invalidate()
}

// CatalogRefreshJob drops the cached catalogs and reloads the given regions
// so edits to the catalog source reach requests without a restart
type CatalogRefreshJob struct {
	catalog RefreshableCatalog
	regions []string
}

// NewCatalogRefreshJob creates a refresh job that warms regions after invalidating
func NewCatalogRefreshJob(c RefreshableCatalog, regions ...string) *CatalogRefreshJob {
	return &CatalogRefreshJob{catalog: c, regions: regions}
}

func (j *CatalogRefreshJob) Name() string { return CatalogRefreshJobName }

// Process invalidates the cache and reloads every configured region
func (j *CatalogRefreshJob) Process(ctx context.Context) error {
	j.catalog.Invalidate()

	plants := 0
	for _, region := range j.regions {
		loaded, err := j.catalog.GetCatalog(ctx, region)
		if err != nil {
			return fmt.Errorf("failed to warm catalog for %s: %w", region, err)
		}
		plants += len(loaded)
	}

	logger.FromContext(ctx).Info(LogMsgCatalogRefreshed, "regions", len(j.regions), "plants", plants)
	return nil
}
