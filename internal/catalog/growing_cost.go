package catalog

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/nikhil-r0/Green-Terrace/internal/domain"
)

// Amounts applied per plant when the sheet says the input is required
const (
	FertilizerKgPerPlant = 0.5
	PesticideKgPerPlant  = 0.2
)

// Growing cost sheet columns
const (
	ColumnSeedCost = "seed cost"
	ColumnFertReq  = "fert req"
	ColumnFertCost = "fert cost"
	ColumnFertName = "fert name"
	ColumnPestReq  = "pest req"
	ColumnPestCost = "pest cost"
	ColumnPestName = "pest name"
)

// GrowingCost is one row of the growing cost sheet
type GrowingCost struct {
	Category      string
	Label         string
	SeedCost      float64
	FertRequired  bool
	FertCostPerKg float64
	FertName      string
	PestRequired  bool
	PestCostPerKg float64
	PestName      string
}

// Total is seed cost plus the fertilizer and pesticide actually needed
func (g GrowingCost) Total() float64 {
	total := g.SeedCost
	if g.FertRequired {
		total += g.FertCostPerKg * FertilizerKgPerPlant
	}
	if g.PestRequired {
		total += g.PestCostPerKg * PesticideKgPerPlant
	}
	return total
}

// GrowingCostTable maps plant labels to estimated growing costs
type GrowingCostTable struct {
	costs map[string]GrowingCost
}

// LoadGrowingCosts reads the growing cost sheet:
// Category, Label, seed_cost, fert_req, fert_cost, fert_name, pest_req, pest_cost, pest_name
func LoadGrowingCosts(path string) (*GrowingCostTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open growing costs %s: %w", path, err)
	}
	defer f.Close()

	table, err := ParseGrowingCosts(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse growing costs %s: %w", path, err)
	}
	return table, nil
}

// ParseGrowingCosts reads a growing cost sheet from r
func ParseGrowingCosts(r io.Reader) (*GrowingCostTable, error) {
	cr, err := newCSVReader(r, []string{ColumnLabel, ColumnSeedCost})
	if err != nil {
		return nil, err
	}

	table := &GrowingCostTable{costs: make(map[string]GrowingCost)}
	for {
		if err := cr.next(); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}

		gc := GrowingCost{
			Category: cr.str(ColumnCategory),
			Label:    cr.str(ColumnLabel),
			FertName: cr.str(ColumnFertName),
			PestName: cr.str(ColumnPestName),
		}
		if gc.Label == "" {
			continue
		}
		if gc.SeedCost, err = cr.float(ColumnSeedCost); err != nil {
			return nil, err
		}
		if gc.FertCostPerKg, err = cr.float(ColumnFertCost); err != nil {
			return nil, err
		}
		if gc.PestCostPerKg, err = cr.float(ColumnPestCost); err != nil {
			return nil, err
		}
		if gc.FertRequired, err = parseFlexBool(cr.str(ColumnFertReq)); err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", domain.ErrInvalidCatalog, cr.line, err)
		}
		if gc.PestRequired, err = parseFlexBool(cr.str(ColumnPestReq)); err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", domain.ErrInvalidCatalog, cr.line, err)
		}

		table.costs[strings.ToLower(gc.Label)] = gc
	}
	return table, nil
}

// Lookup returns the growing cost entry for a label
func (t *GrowingCostTable) Lookup(label string) (GrowingCost, bool) {
	gc, ok := t.costs[strings.ToLower(strings.TrimSpace(label))]
	return gc, ok
}

// Len returns the number of labels in the table
func (t *GrowingCostTable) Len() int {
	return len(t.costs)
}

// Apply returns a copy of plants where a positive table cost replaces the catalog cost
func (t *GrowingCostTable) Apply(plants []domain.PlantCandidate) []domain.PlantCandidate {
	out := clonePlants(plants)
	for i := range out {
		if gc, ok := t.Lookup(out[i].Label); ok {
			if total := gc.Total(); total > 0 {
				out[i].GrowingPrice = total
			}
		}
	}
	return out
}
