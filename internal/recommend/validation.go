package recommend

import (
	"fmt"
	"math"
	"strings"

	"github.com/nikhil-r0/Green-Terrace/internal/domain"
	"github.com/nikhil-r0/Green-Terrace/internal/utils"
)

func validateRequest(req domain.RecommendRequest) error {
	for name, v := range map[string]float64{
		"terrace_size":  req.TerraceSize,
		"latitude":      req.Latitude,
		"longitude":     req.Longitude,
		"weight_saving": req.WeightSavings,
		"weight_carbon": req.WeightCarbon,
		"budget":        req.Budget,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s must be a finite number", domain.ErrInvalidInput, name)
		}
	}

	switch {
	case req.TerraceSize <= 0:
		return fmt.Errorf("%w: terrace size must be positive", domain.ErrInvalidInput)
	case req.Budget <= 0:
		return fmt.Errorf("%w: budget must be positive", domain.ErrInvalidInput)
	case req.WeightSavings < 0 || req.WeightSavings > 1:
		return fmt.Errorf("%w: savings weight must be between 0 and 1", domain.ErrInvalidInput)
	case req.WeightCarbon < 0 || req.WeightCarbon > 1:
		return fmt.Errorf("%w: carbon weight must be between 0 and 1", domain.ErrInvalidInput)
	case req.WeightSavings == 0 && req.WeightCarbon == 0:
		return fmt.Errorf("%w: at least one weight must be positive", domain.ErrInvalidInput)
	case req.Latitude < -90 || req.Latitude > 90:
		return fmt.Errorf("%w: latitude must be between -90 and 90", domain.ErrInvalidInput)
	case req.Longitude < -180 || req.Longitude > 180:
		return fmt.Errorf("%w: longitude must be between -180 and 180", domain.ErrInvalidInput)
	}
	return nil
}

// normalizeCategories title-cases and de-duplicates selections, dropping blanks
func normalizeCategories(selected []string) []string {
	seen := make(map[string]struct{}, len(selected))
	out := make([]string, 0, len(selected))
	for _, c := range selected {
		c = utils.TitleCase(strings.TrimSpace(c))
		if c == "" {
			continue
		}
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}
