package optimizer

import (
	"fmt"
	"sort"

	"github.com/nikhil-r0/Green-Terrace/internal/domain"
	"github.com/nikhil-r0/Green-Terrace/internal/utils"
)

// CategoryGroup is one category's plants, best score first
type CategoryGroup struct {
	Category string
	Plants   []domain.ScoredPlant
}

// ScoredCatalog is the scorer output. Categories are in alphabetical order.
type ScoredCatalog struct {
	Categories []CategoryGroup
	MaxSavings float64
	MaxCarbon  float64
}

// Len returns the total number of scored plants
func (s *ScoredCatalog) Len() int {
	n := 0
	for _, g := range s.Categories {
		n += len(g.Plants)
	}
	return n
}

// Score restricts candidates to the selected categories, normalises savings and
// carbon against their maxima and ranks each category by the weighted score.
// Returns domain.ErrNoViableData when either maximum is not positive.
func (e *Engine) Score(candidates []domain.PlantCandidate, selectedCategories []string, weightSavings, weightCarbon float64) (*ScoredCatalog, error) {
	selected := make(map[string]struct{}, len(selectedCategories))
	for _, c := range selectedCategories {
		if name := utils.TitleCase(c); name != "" {
			selected[name] = struct{}{}
		}
	}

	restricted := make([]domain.ScoredPlant, 0, len(candidates))
	carbonTerms := make([]float64, 0, len(candidates))
	maxSavings, maxCarbon := 0.0, 0.0
	for _, p := range candidates {
		category := utils.TitleCase(p.Category)
		if _, ok := selected[category]; !ok {
			continue
		}
		p.Category = category

		savings := p.RawSavings()
		if e.policy.FloorSavings && savings < 0 {
			savings = 0
		}
		carbon := e.carbonTerm(p)

		// seeded from the first value so unfloored savings can go negative
		if len(restricted) == 0 || savings > maxSavings {
			maxSavings = savings
		}
		if len(restricted) == 0 || carbon > maxCarbon {
			maxCarbon = carbon
		}

		restricted = append(restricted, domain.ScoredPlant{PlantCandidate: p, Savings: savings})
		carbonTerms = append(carbonTerms, carbon)
	}

	if len(restricted) == 0 {
		return nil, fmt.Errorf("%w: no candidates in selected categories", domain.ErrNoViableData)
	}
	if maxSavings <= 0 || maxCarbon <= 0 {
		return nil, fmt.Errorf("%w: max savings %.2f, max carbon %.2f", domain.ErrNoViableData, maxSavings, maxCarbon)
	}

	groups := make(map[string][]domain.ScoredPlant)
	for i := range restricted {
		sp := restricted[i]
		sp.Score = weightSavings*(sp.Savings/maxSavings) + weightCarbon*(carbonTerms[i]/maxCarbon)
		groups[sp.Category] = append(groups[sp.Category], sp)
	}

	names := make([]string, 0, len(groups))
	for name := range groups {
		names = append(names, name)
	}
	sort.Strings(names)

	scored := &ScoredCatalog{
		Categories: make([]CategoryGroup, 0, len(names)),
		MaxSavings: maxSavings,
		MaxCarbon:  maxCarbon,
	}
	for _, name := range names {
		plants := groups[name]
		sort.SliceStable(plants, func(i, j int) bool {
			return plants[i].Score > plants[j].Score
		})
		scored.Categories = append(scored.Categories, CategoryGroup{Category: name, Plants: plants})
	}
	return scored, nil
}

func (e *Engine) carbonTerm(p domain.PlantCandidate) float64 {
	if p.Perennial {
		return p.CarbonAbsorption * e.policy.PerennialCarbonWeight
	}
	return p.CarbonAbsorption
}
