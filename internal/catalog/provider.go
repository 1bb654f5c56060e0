package catalog

import (
	"context"
	"sort"

	"github.com/nikhil-r0/Green-Terrace/internal/domain"
)

// Provider returns the plant catalog priced for a region.
// Implementations return a fresh slice the caller may modify.
type Provider interface {
	GetCatalog(ctx context.Context, region string) ([]domain.PlantCandidate, error)
}

// Categories returns the distinct categories of plants, sorted
func Categories(plants []domain.PlantCandidate) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, p := range plants {
		if _, ok := seen[p.Category]; ok || p.Category == "" {
			continue
		}
		seen[p.Category] = struct{}{}
		out = append(out, p.Category)
	}
	sort.Strings(out)
	return out
}

func clonePlants(plants []domain.PlantCandidate) []domain.PlantCandidate {
	out := make([]domain.PlantCandidate, len(plants))
	copy(out, plants)
	return out
}

// Log messages
const (
	LogMsgCatalogLoaded       = "Plant catalog loaded"
	LogMsgNegativeGrowingCost = "Dropping plant with negative growing cost"
)
