package config

import "time"

const (
	// Data file paths
	ConfigPathPlantCatalog = "configs/plants.csv"
	ConfigPathGrowingCosts = "configs/growing_cost.csv"
	ConfigPathPriceTable   = "configs/market_prices.yaml"
)

// Catalog sources
const (
	CatalogSourceFile     = "file"
	CatalogSourcePostgres = "postgres"
)

// Upstream endpoints
const (
	DefaultOpenMeteoURL   = "https://api.open-meteo.com"
	DefaultNominatimURL   = "https://nominatim.openstreetmap.org"
	DefaultMarketPriceURL = "https://api.data.gov.in"
)

// Defaults
const (
	DefaultPort              = 8080
	DefaultProviderTimeout   = 10 * time.Second
	DefaultCacheTTL          = time.Hour
	DefaultCacheSize         = 512
	DefaultDBMaxConns        = 20
	DefaultDBMaxConnIdleTime = 5 * time.Minute
	DefaultDBMaxConnLifetime = 30 * time.Minute
)
