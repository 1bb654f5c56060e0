package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nikhil-r0/Green-Terrace/internal/catalog"
	"github.com/nikhil-r0/Green-Terrace/internal/climate"
	"github.com/nikhil-r0/Green-Terrace/internal/config"
	"github.com/nikhil-r0/Green-Terrace/internal/database"
	"github.com/nikhil-r0/Green-Terrace/internal/database/postgres"
	"github.com/nikhil-r0/Green-Terrace/internal/geocode"
	"github.com/nikhil-r0/Green-Terrace/internal/pricing"
)

// ConnectDatabase opens the connection pool described by cfg
func ConnectDatabase(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	pool, err := database.NewPool(ctx, cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectDatabase, err)
	}
	return pool, nil
}

// NewCatalogProvider builds the uncached catalog source. pool is only used for the postgres source.
func NewCatalogProvider(ctx context.Context, cfg *config.Config, pool *pgxpool.Pool) (catalog.Provider, error) {
	opts := catalog.Options{DefaultGrowingCost: cfg.DefaultGrowingCost}

	if cfg.UsesPostgres() {
		slog.Info(LogMsgCatalogSource, "source", config.CatalogSourcePostgres)
		return postgres.NewCatalogRepository(pool, opts), nil
	}

	var costs *catalog.GrowingCostTable
	if cfg.GrowingCostPath != "" {
		var err error
		costs, err = catalog.LoadGrowingCosts(cfg.GrowingCostPath)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadGrowingCosts, err)
		}
	}

	provider, err := catalog.LoadFileProvider(ctx, cfg.CatalogPath, costs, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadCatalog, err)
	}
	slog.Info(LogMsgCatalogSource, "source", config.CatalogSourceFile, "path", cfg.CatalogPath)
	return provider, nil
}

// NewClimateProvider returns the cached Open-Meteo provider
func NewClimateProvider(cfg *config.Config) climate.Provider {
	return climate.NewCachedProvider(
		climate.NewOpenMeteoProvider(cfg.OpenMeteoURL, cfg.ProviderTimeout),
		cfg.CacheSize, cfg.CacheTTL)
}

// NewResolver returns the cached reverse geocoder, or nil when no geocoder URL is set
func NewResolver(cfg *config.Config) geocode.Resolver {
	if cfg.NominatimURL == "" {
		return nil
	}
	return geocode.NewCachedResolver(
		geocode.NewNominatimResolver(cfg.NominatimURL, cfg.ProviderTimeout),
		cfg.CacheSize, cfg.CacheTTL)
}

// NewPredictor picks the price source: a static table wins over the live mandi API.
// It returns nil when neither is configured.
func NewPredictor(cfg *config.Config) (pricing.Predictor, error) {
	if cfg.PriceTablePath != "" {
		table, err := pricing.LoadStaticPredictor(cfg.PriceTablePath)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadPriceTable, err)
		}
		slog.Info(LogMsgPriceSource, "source", "table", "path", cfg.PriceTablePath, "prices", table.Len())
		return table, nil
	}

	if cfg.MarketPriceURL != "" && cfg.MarketPriceAPIKey != "" {
		slog.Info(LogMsgPriceSource, "source", "data.gov.in", "url", cfg.MarketPriceURL)
		return pricing.NewCachedPredictor(
			pricing.NewDataGovPredictor(cfg.MarketPriceURL, cfg.MarketPriceAPIKey, cfg.ProviderTimeout),
			cfg.CacheSize, cfg.CacheTTL), nil
	}

	slog.Info(LogMsgPriceSourceDisabled)
	return nil, nil
}
