package domain

// Plant categories used by the shipped catalogs
const (
	CategoryVegetables = "Vegetables"
	CategoryFruits     = "Fruits"
	CategoryHerbs      = "Herbs"
	CategoryMedicinal  = "Medicinal"
	CategoryFlowers    = "Flowers"
)

// KnownCategories lists the categories offered to clients, in display order
var KnownCategories = []string{
	CategoryVegetables,
	CategoryFruits,
	CategoryHerbs,
	CategoryMedicinal,
	CategoryFlowers,
}

// Catalog defaults
const (
	// DefaultGrowingCost is applied when a catalog record has no growing cost
	DefaultGrowingCost = 50.0

	// DefaultPlantFootprint is the terrace area (m²) one plant occupies
	DefaultPlantFootprint = 1.0

	// DefaultRegion is used when the location cannot be resolved to a state
	DefaultRegion = "Karnataka"
)

// Allocation policy defaults
const (
	// SpeciesCapDivisor bounds one label to totalSlots/SpeciesCapDivisor plants
	SpeciesCapDivisor = 10

	// MaxAllocationEvents is how many times one label may receive an allocation in a run
	MaxAllocationEvents = 2

	// CarbonRoundingPlaces is the precision of total_carbon_absorbed in results
	CarbonRoundingPlaces = 6
)
