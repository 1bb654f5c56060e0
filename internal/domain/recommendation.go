package domain

// RecommendRequest carries one recommendation request into the facade
type RecommendRequest struct {
	TerraceSize      float64
	Latitude         float64
	Longitude        float64
	WeightSavings    float64
	WeightCarbon     float64
	Budget           float64
	SelectedCategory []string
}

// AllocationLine is one committed allocation of a plant
type AllocationLine struct {
	Label            string  `json:"label"`
	Category         string  `json:"category"`
	Quantity         int     `json:"quantity"`
	Savings          float64 `json:"savings"`
	GrowingPrice     float64 `json:"growing_price"`
	CarbonAbsorption float64 `json:"carbon_absorption"`
}

// Cost is the money spent on this line
func (l AllocationLine) Cost() float64 {
	return float64(l.Quantity) * l.GrowingPrice
}

// RecommendationResult is the response for a recommendation request.
// On failure every total is zero and Error/ErrorKind are set.
type RecommendationResult struct {
	TotalSavings        float64          `json:"total_savings"`
	TotalCarbonAbsorbed float64          `json:"total_carbon_absorbed"`
	TotalPlantsGrown    int              `json:"total_plants_grown"`
	TotalBudgetUsed     float64          `json:"total_budget_used"`
	RecommendedPlants   []AllocationLine `json:"recommended_plants"`
	TotalPlantSlots     int              `json:"total_plant_slots"`
	Region              string           `json:"region,omitempty"`
	Error               string           `json:"error,omitempty"`
	ErrorKind           string           `json:"error_kind,omitempty"`
}

// NewErrorResult builds the zeroed result returned when a request fails
func NewErrorResult(err error) *RecommendationResult {
	return &RecommendationResult{
		RecommendedPlants: []AllocationLine{},
		Error:             err.Error(),
		ErrorKind:         ErrorKind(err),
	}
}

// Price sources reported by savings estimates
const (
	PriceSourceMarket  = "market"
	PriceSourceCatalog = "catalog"
)

// EstimateItem is one crop and quantity the caller plans to grow
type EstimateItem struct {
	Label    string
	Quantity int
}

// EstimateRequest asks for the savings of a fixed planting plan.
// Region wins over coordinates; with neither the default region is used.
type EstimateRequest struct {
	Region    string
	Latitude  *float64
	Longitude *float64
	Items     []EstimateItem
}

// SavingsEstimate is the expected saving for one crop of an estimate
type SavingsEstimate struct {
	Label           string  `json:"label"`
	Category        string  `json:"category"`
	Quantity        int     `json:"quantity"`
	MarketPrice     float64 `json:"market_price"`
	GrowingPrice    float64 `json:"growing_price"`
	PriceSource     string  `json:"price_source"`
	SavingsPerPlant float64 `json:"savings_per_plant"`
	TotalSavings    float64 `json:"total_savings"`
}

// EstimateResult is the response for a savings estimate
type EstimateResult struct {
	Region        string            `json:"region"`
	Estimates     []SavingsEstimate `json:"estimates"`
	UnknownLabels []string          `json:"unknown_labels,omitempty"`
	TotalSavings  float64           `json:"total_savings"`
}
