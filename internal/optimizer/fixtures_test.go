package optimizer

import "github.com/nikhil-r0/Green-Terrace/internal/domain"

var mildClimate = domain.Climate{TempMin: 18, TempMax: 32, Rainfall: 4, Sunlight: 7}

func plant(label, category string, growing, market, carbon float64) domain.PlantCandidate {
	return domain.PlantCandidate{
		Label:            label,
		Category:         category,
		TempMin:          15,
		TempMax:          35,
		SunlightMin:      4,
		GrowingPrice:     growing,
		MarketPrice:      market,
		CarbonAbsorption: carbon,
	}
}

func tomatoRoseCatalog() []domain.PlantCandidate {
	return []domain.PlantCandidate{
		plant("Tomato", domain.CategoryVegetables, 10, 25, 2),
		plant("Rose", domain.CategoryFlowers, 50, 40, 1),
	}
}

func linesByLabel(lines []domain.AllocationLine) map[string]int {
	qty := make(map[string]int)
	for _, l := range lines {
		qty[l.Label] += l.Quantity
	}
	return qty
}
