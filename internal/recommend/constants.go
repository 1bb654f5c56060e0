package recommend

import "time"

// Defaults for Options fields left at zero
const (
	DefaultProviderTimeout  = 10 * time.Second
	DefaultPriceConcurrency = 4
)

// Log messages
const (
	LogMsgRecommendationFailed    = "Recommendation failed"
	LogMsgRecommendationCompleted = "Recommendation completed"
	LogMsgRegionFallback          = "Region lookup failed, using default region"
	LogMsgPriceLookupFailed       = "Price lookup failed, keeping catalog price"
	LogMsgPricesEnriched          = "Market prices enriched"
)
