package domain

// PlantCandidate is a plant species with climate suitability and economic attributes.
// Values are copied, never shared, so a candidate is effectively immutable.
type PlantCandidate struct {
	Label            string  `json:"label" yaml:"label"`
	Category         string  `json:"category" yaml:"category"`
	TempMin          float64 `json:"temp_min" yaml:"temp_min"`
	TempMax          float64 `json:"temp_max" yaml:"temp_max"`
	Rainfall         float64 `json:"rainfall" yaml:"rainfall"`
	SunlightMin      float64 `json:"sunlight_min" yaml:"sunlight_min"`
	Perennial        bool    `json:"perennial" yaml:"perennial"`
	GrowingPrice     float64 `json:"growing_price" yaml:"growing_price"`
	MarketPrice      float64 `json:"market_price" yaml:"market_price"`
	CarbonAbsorption float64 `json:"carbon_absorption" yaml:"carbon_absorption"`
}

// RawSavings is market price minus growing price, without any floor
func (p PlantCandidate) RawSavings() float64 {
	return p.MarketPrice - p.GrowingPrice
}

// ScoredPlant is a candidate with its derived savings and utility score
type ScoredPlant struct {
	PlantCandidate
	Savings float64 `json:"savings"`
	Score   float64 `json:"score"`
}

// Climate holds averaged local weather used to filter candidates
type Climate struct {
	TempMin  float64 `json:"temp_min"`
	TempMax  float64 `json:"temp_max"`
	Rainfall float64 `json:"rainfall"`
	Sunlight float64 `json:"sunlight"` // hours per day
}
