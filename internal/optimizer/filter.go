package optimizer

import "github.com/nikhil-r0/Green-Terrace/internal/domain"

// FilterByClimate keeps the plants whose temperature range overlaps the local
// range and whose sunlight minimum is met. Catalog order is preserved.
func (e *Engine) FilterByClimate(catalog []domain.PlantCandidate, climate domain.Climate) []domain.PlantCandidate {
	kept := make([]domain.PlantCandidate, 0, len(catalog))
	for _, p := range catalog {
		if IsClimateCompatible(p, climate) {
			kept = append(kept, p)
		}
	}
	return kept
}

// IsClimateCompatible reports whether a single plant survives the climate filter
func IsClimateCompatible(p domain.PlantCandidate, c domain.Climate) bool {
	return p.TempMin <= c.TempMax &&
		p.TempMax >= c.TempMin &&
		p.SunlightMin <= c.Sunlight
}
