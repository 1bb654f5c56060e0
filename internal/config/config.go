package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/nikhil-r0/Green-Terrace/internal/domain"
)

// Config holds the application configuration
type Config struct {
	Port           int
	LogLevel       string
	LogFormat      string
	ServiceName    string
	Version        string
	Environment    string
	LogDir         string
	APIKey         string // optional; when set, /api routes require X-API-Key
	TrustedProxies []string

	DBUser            string
	DBPassword        string
	DBHost            string
	DBPort            string
	DBName            string
	DBMaxConns        int
	DBMaxConnIdleTime time.Duration
	DBMaxConnLifetime time.Duration

	// Catalog
	CatalogSource      string
	CatalogPath        string
	GrowingCostPath    string
	PriceTablePath     string
	DefaultGrowingCost float64
	DefaultRegion      string
	// CatalogRefreshInterval reloads the cached catalog periodically; zero disables it
	CatalogRefreshInterval time.Duration

	// Optimizer policy
	PlantFootprint        float64
	FloorSavings          bool
	PerennialCarbonWeight float64

	// Upstream providers
	ProviderTimeout   time.Duration
	CacheTTL          time.Duration
	CacheSize         int
	OpenMeteoURL      string
	NominatimURL      string
	MarketPriceURL    string
	MarketPriceAPIKey string
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFormat:      getEnv("LOG_FORMAT", "text"),
		ServiceName:    getEnv("SERVICE_NAME", "green-terrace"),
		Version:        getEnv("VERSION", "dev"),
		Environment:    getEnv("ENVIRONMENT", "dev"),
		LogDir:         getEnv("LOG_DIR", "logs"),
		APIKey:         getEnv("API_KEY", ""),
		TrustedProxies: getEnvAsList("TRUSTED_PROXIES"),

		DBUser:            getEnv("DB_USER", "postgres"),
		DBPassword:        getEnv("DB_PASSWORD", "postgres"),
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "5432"),
		DBName:            getEnv("DB_NAME", "greenterrace"),
		DBMaxConns:        getEnvAsInt("DB_MAX_CONNS", DefaultDBMaxConns),
		DBMaxConnIdleTime: getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", DefaultDBMaxConnIdleTime),
		DBMaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", DefaultDBMaxConnLifetime),

		CatalogSource:      strings.ToLower(getEnv("CATALOG_SOURCE", CatalogSourceFile)),
		CatalogPath:        getEnv("CATALOG_PATH", ConfigPathPlantCatalog),
		GrowingCostPath:    getEnv("GROWING_COST_PATH", ConfigPathGrowingCosts),
		PriceTablePath:     getEnv("PRICE_TABLE_PATH", ""),
		DefaultGrowingCost: getEnvAsFloat("DEFAULT_GROWING_COST", domain.DefaultGrowingCost),
		DefaultRegion:      getEnv("DEFAULT_REGION", domain.DefaultRegion),

		CatalogRefreshInterval: getEnvAsDuration("CATALOG_REFRESH_INTERVAL", 0),

		PlantFootprint:        getEnvAsFloat("PLANT_FOOTPRINT_M2", domain.DefaultPlantFootprint),
		FloorSavings:          getEnvAsBool("FLOOR_SAVINGS", true),
		PerennialCarbonWeight: getEnvAsFloat("PERENNIAL_CARBON_WEIGHT", 1.0),

		ProviderTimeout:   getEnvAsDuration("PROVIDER_TIMEOUT", DefaultProviderTimeout),
		CacheTTL:          getEnvAsDuration("CACHE_TTL", DefaultCacheTTL),
		CacheSize:         getEnvAsInt("CACHE_SIZE", DefaultCacheSize),
		OpenMeteoURL:      getEnv("OPEN_METEO_URL", DefaultOpenMeteoURL),
		NominatimURL:      getEnv("NOMINATIM_URL", DefaultNominatimURL),
		MarketPriceURL:    getEnv("MARKET_PRICE_URL", DefaultMarketPriceURL),
		MarketPriceAPIKey: getEnv("MARKET_PRICE_API_KEY", ""),
	}

	portStr := getEnv("PORT", strconv.Itoa(DefaultPort))
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	switch c.CatalogSource {
	case CatalogSourceFile, CatalogSourcePostgres:
	default:
		return fmt.Errorf("invalid CATALOG_SOURCE %q: must be %q or %q", c.CatalogSource, CatalogSourceFile, CatalogSourcePostgres)
	}
	if c.PlantFootprint <= 0 {
		return fmt.Errorf("PLANT_FOOTPRINT_M2 must be positive, got %v", c.PlantFootprint)
	}
	if c.DefaultGrowingCost < 0 {
		return fmt.Errorf("DEFAULT_GROWING_COST must not be negative, got %v", c.DefaultGrowingCost)
	}
	if c.CatalogRefreshInterval < 0 {
		return fmt.Errorf("CATALOG_REFRESH_INTERVAL must not be negative, got %v", c.CatalogRefreshInterval)
	}
	if c.ProviderTimeout <= 0 {
		return fmt.Errorf("PROVIDER_TIMEOUT must be positive, got %v", c.ProviderTimeout)
	}
	return nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt parses an integer variable, falling back on absence or parse errors
func getEnvAsInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsFloat parses a float variable, falling back on absence or parse errors
func getEnvAsFloat(key string, defaultValue float64) float64 {
	value, err := strconv.ParseFloat(getEnv(key, ""), 64)
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsBool parses a boolean variable, falling back on absence or parse errors
func getEnvAsBool(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsDuration parses a duration variable such as "10s", falling back on absence or parse errors
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsList splits a comma separated variable, dropping empty entries
func getEnvAsList(key string) []string {
	raw := getEnv(key, "")
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}

// UsesPostgres reports whether the catalog is served from the database
func (c *Config) UsesPostgres() bool {
	return c.CatalogSource == CatalogSourcePostgres
}
