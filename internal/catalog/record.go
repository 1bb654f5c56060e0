package catalog

import (
	"context"
	"fmt"
	"math"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/nikhil-r0/Green-Terrace/internal/domain"
	"github.com/nikhil-r0/Green-Terrace/internal/logger"
	"github.com/nikhil-r0/Green-Terrace/internal/utils"
)

// plantRecord is the loosely-typed shape shared by all file formats.
// Pointers distinguish a missing growing price from an explicit zero.
type plantRecord struct {
	Label            string   `json:"label" yaml:"label"`
	Category         string   `json:"category" yaml:"category"`
	TempMin          float64  `json:"temp_min" yaml:"temp_min"`
	TempMax          float64  `json:"temp_max" yaml:"temp_max"`
	Rainfall         float64  `json:"rainfall" yaml:"rainfall"`
	SunlightMin      float64  `json:"sunlight_min" yaml:"sunlight_min"`
	Perennial        flexBool `json:"perennial" yaml:"perennial"`
	GrowingPrice     *float64 `json:"growing_price" yaml:"growing_price"`
	MarketPrice      float64  `json:"market_price" yaml:"market_price"`
	CarbonAbsorption float64  `json:"carbon_absorption" yaml:"carbon_absorption"`
}

// Options control how raw records become candidates
type Options struct {
	// DefaultGrowingCost replaces a missing growing price
	DefaultGrowingCost float64
}

// DefaultOptions returns the loader defaults
func DefaultOptions() Options {
	return Options{DefaultGrowingCost: domain.DefaultGrowingCost}
}

// CheckFinite rejects a candidate with a NaN or infinite numeric field.
// Such values would make scores NaN and the ranking order undefined.
func CheckFinite(p domain.PlantCandidate) error {
	fields := []struct {
		name  string
		value float64
	}{
		{"temp_min", p.TempMin},
		{"temp_max", p.TempMax},
		{"rainfall", p.Rainfall},
		{"sunlight_min", p.SunlightMin},
		{"growing_price", p.GrowingPrice},
		{"market_price", p.MarketPrice},
		{"carbon_absorption", p.CarbonAbsorption},
	}
	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return fmt.Errorf("%w: %s has non-finite %s", domain.ErrInvalidCatalog, p.Label, f.name)
		}
	}
	return nil
}

// toCandidate validates a record. ok is false when the record must be dropped.
// A NaN growing price counts as missing, as blank spreadsheet cells export that way.
func (r plantRecord) toCandidate(ctx context.Context, opts Options) (domain.PlantCandidate, bool, error) {
	label := strings.TrimSpace(r.Label)
	if label == "" {
		return domain.PlantCandidate{}, false, fmt.Errorf("%w: record without label", domain.ErrInvalidCatalog)
	}
	category := utils.TitleCase(r.Category)
	if category == "" {
		return domain.PlantCandidate{}, false, fmt.Errorf("%w: %s has no category", domain.ErrInvalidCatalog, label)
	}

	growing := opts.DefaultGrowingCost
	if r.GrowingPrice != nil && !math.IsNaN(*r.GrowingPrice) {
		growing = *r.GrowingPrice
	}

	p := domain.PlantCandidate{
		Label:            label,
		Category:         category,
		TempMin:          r.TempMin,
		TempMax:          r.TempMax,
		Rainfall:         r.Rainfall,
		SunlightMin:      r.SunlightMin,
		Perennial:        bool(r.Perennial),
		GrowingPrice:     growing,
		MarketPrice:      r.MarketPrice,
		CarbonAbsorption: r.CarbonAbsorption,
	}
	if err := CheckFinite(p); err != nil {
		return domain.PlantCandidate{}, false, err
	}
	if p.TempMin > p.TempMax {
		return domain.PlantCandidate{}, false, fmt.Errorf("%w: %s has temp_min %.1f above temp_max %.1f",
			domain.ErrInvalidCatalog, label, p.TempMin, p.TempMax)
	}
	if growing < 0 {
		logger.FromContext(ctx).Warn(LogMsgNegativeGrowingCost, "label", label, "growing_price", growing)
		return domain.PlantCandidate{}, false, nil
	}
	return p, true, nil
}

func buildCandidates(ctx context.Context, records []plantRecord, opts Options) ([]domain.PlantCandidate, error) {
	plants := make([]domain.PlantCandidate, 0, len(records))
	for i, r := range records {
		p, ok, err := r.toCandidate(ctx, opts)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i+1, err)
		}
		if ok {
			plants = append(plants, p)
		}
	}
	return plants, nil
}

// flexBool accepts true/false as well as the "Yes"/"No" strings used in plant sheets
type flexBool bool

func parseFlexBool(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "y", "true", "1":
		return true, nil
	case "no", "n", "false", "0", "", "null":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean %q", s)
	}
}

func (b *flexBool) UnmarshalJSON(data []byte) error {
	v, err := parseFlexBool(strings.Trim(string(data), `"`))
	if err != nil {
		return err
	}
	*b = flexBool(v)
	return nil
}

func (b *flexBool) UnmarshalYAML(node *yaml.Node) error {
	v, err := parseFlexBool(node.Value)
	if err != nil {
		return err
	}
	*b = flexBool(v)
	return nil
}
