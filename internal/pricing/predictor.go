package pricing

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/nikhil-r0/Green-Terrace/internal/utils"
)

// WildcardRegion matches any region in a static price table
const WildcardRegion = "*"

// Predictor estimates the market price of a plant in a region.
// A zero price with a nil error means the price is unknown.
type Predictor interface {
	PredictPrice(ctx context.Context, region, label string) (float64, error)
}

// StaticPredictor serves prices from an in-memory table: region -> label -> price.
// Region "*" is the fallback for regions with no row of their own.
type StaticPredictor struct {
	prices map[string]map[string]float64
}

// NewStaticPredictor builds a predictor from a region/label table.
// Keys are matched case-insensitively.
func NewStaticPredictor(table map[string]map[string]float64) *StaticPredictor {
	prices := make(map[string]map[string]float64, len(table))
	for region, labels := range table {
		key := normalizeKey(region)
		if prices[key] == nil {
			prices[key] = make(map[string]float64, len(labels))
		}
		for label, price := range labels {
			if price > 0 && !math.IsInf(price, 0) && !math.IsNaN(price) {
				prices[key][normalizeKey(label)] = price
			}
		}
	}
	return &StaticPredictor{prices: prices}
}

// LoadStaticPredictor reads a YAML table such as:
//
//	Karnataka:
//	  Tomato: 28
//	"*":
//	  Tomato: 25
func LoadStaticPredictor(path string) (*StaticPredictor, error) {
	var table map[string]map[string]float64
	if err := utils.LoadYAML(path, &table); err != nil {
		return nil, fmt.Errorf("failed to load price table: %w", err)
	}
	return NewStaticPredictor(table), nil
}

// PredictPrice returns the regional price, then the wildcard price, then 0
func (p *StaticPredictor) PredictPrice(_ context.Context, region, label string) (float64, error) {
	labelKey := normalizeKey(label)
	if price, ok := p.prices[normalizeKey(region)][labelKey]; ok {
		return price, nil
	}
	return p.prices[WildcardRegion][labelKey], nil
}

// Len returns the number of priced labels across all regions
func (p *StaticPredictor) Len() int {
	n := 0
	for _, labels := range p.prices {
		n += len(labels)
	}
	return n
}

func normalizeKey(s string) string {
	s = strings.TrimSpace(s)
	if s == WildcardRegion {
		return s
	}
	return strings.ToLower(s)
}
