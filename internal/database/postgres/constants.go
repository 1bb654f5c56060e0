package postgres

// Catalog queries
const (
	queryCatalogForRegion = `
		SELECT p.label, p.category, p.temp_min, p.temp_max, p.rainfall, p.sunlight_min,
		       p.perennial, p.growing_price, COALESCE(r.market_price, p.market_price), p.carbon_absorption
		FROM plants p
		LEFT JOIN regional_market_prices r
		       ON r.plant_id = p.plant_id AND lower(r.region) = lower($1)
		ORDER BY p.plant_id
	`

	queryCategories = `
		SELECT DISTINCT category
		FROM plants
		ORDER BY category
	`

	queryUpsertRegionalPrice = `
		INSERT INTO regional_market_prices (plant_id, region, market_price, updated_at)
		SELECT plant_id, $2, $3, NOW()
		FROM plants
		WHERE label = $1
		ON CONFLICT (plant_id, region)
		DO UPDATE SET market_price = EXCLUDED.market_price, updated_at = NOW()
	`
)
