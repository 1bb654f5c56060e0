package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nikhil-r0/Green-Terrace/internal/catalog"
	"github.com/nikhil-r0/Green-Terrace/internal/domain"
	"github.com/nikhil-r0/Green-Terrace/internal/logger"
	"github.com/nikhil-r0/Green-Terrace/internal/utils"
)

// CatalogRepository serves the plant catalog from PostgreSQL
type CatalogRepository struct {
	db   *pgxpool.Pool
	opts catalog.Options
}

// NewCatalogRepository creates a new CatalogRepository
func NewCatalogRepository(db *pgxpool.Pool, opts catalog.Options) *CatalogRepository {
	return &CatalogRepository{db: db, opts: opts}
}

// GetCatalog returns every plant, with the region's market price where one is stored
func (r *CatalogRepository) GetCatalog(ctx context.Context, region string) ([]domain.PlantCandidate, error) {
	rows, err := r.db.Query(ctx, queryCatalogForRegion, region)
	if err != nil {
		return nil, fmt.Errorf("failed to query plants: %w", err)
	}
	defer rows.Close()

	var plants []domain.PlantCandidate
	for rows.Next() {
		var p domain.PlantCandidate
		var growing *float64
		err := rows.Scan(
			&p.Label,
			&p.Category,
			&p.TempMin,
			&p.TempMax,
			&p.Rainfall,
			&p.SunlightMin,
			&p.Perennial,
			&growing,
			&p.MarketPrice,
			&p.CarbonAbsorption,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan plant: %w", err)
		}

		p.Category = utils.TitleCase(p.Category)
		p.GrowingPrice = r.opts.DefaultGrowingCost
		if growing != nil {
			p.GrowingPrice = *growing
		}
		if err := catalog.CheckFinite(p); err != nil {
			return nil, err
		}
		if p.GrowingPrice < 0 {
			logger.FromContext(ctx).Warn(catalog.LogMsgNegativeGrowingCost, "label", p.Label, "growing_price", p.GrowingPrice)
			continue
		}
		plants = append(plants, p)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return plants, nil
}

// GetCategories returns the distinct plant categories, sorted
func (r *CatalogRepository) GetCategories(ctx context.Context) ([]string, error) {
	rows, err := r.db.Query(ctx, queryCategories)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	var categories []string
	for rows.Next() {
		var category string
		if err := rows.Scan(&category); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, utils.TitleCase(category))
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}
	return categories, nil
}

// UpsertRegionalPrice stores a region-specific market price for a plant.
// It reports false when no plant has the given label.
func (r *CatalogRepository) UpsertRegionalPrice(ctx context.Context, label, region string, price float64) (bool, error) {
	tag, err := r.db.Exec(ctx, queryUpsertRegionalPrice, label, region, price)
	if err != nil {
		return false, fmt.Errorf("failed to upsert regional price: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
