package optimizer

import (
	"context"
	"math"

	"github.com/nikhil-r0/Green-Terrace/internal/domain"
	"github.com/nikhil-r0/Green-Terrace/internal/utils"
)

// Allocation is the outcome of one allocator run
type Allocation struct {
	Lines        []domain.AllocationLine
	TotalSavings float64
	TotalCarbon  float64
	PlantsUsed   int
	BudgetUsed   float64

	// CategoryQuotas holds the slots reserved for each category before allocation
	CategoryQuotas map[string]int
	TotalSlots     int
	SpeciesCap     int
}

// allocationState is owned by a single Allocate call
type allocationState struct {
	remainingBudget float64
	remainingSlots  int
	categoryQuota   map[string]int
	allocatedQty    map[string]int
	events          map[string]int
}

// CategoryQuotas spreads totalSlots over the categories in order: each gets
// totalSlots/n and the first totalSlots%n get one more.
func CategoryQuotas(categories []string, totalSlots int) map[string]int {
	quotas := make(map[string]int, len(categories))
	n := len(categories)
	if n == 0 || totalSlots <= 0 {
		for _, c := range categories {
			quotas[c] = 0
		}
		return quotas
	}
	base := totalSlots / n
	remainder := totalSlots % n
	for i, c := range categories {
		quotas[c] = base
		if i < remainder {
			quotas[c]++
		}
	}
	return quotas
}

// Allocate greedily commits plants category by category under the slot and
// budget ceilings. Commits are final; nothing is rolled back. The only error
// is cancellation of ctx, checked between categories.
func (e *Engine) Allocate(ctx context.Context, scored *ScoredCatalog, totalSlots int, totalBudget float64) (*Allocation, error) {
	result := &Allocation{
		Lines:          []domain.AllocationLine{},
		CategoryQuotas: map[string]int{},
		TotalSlots:     totalSlots,
	}
	if scored == nil || len(scored.Categories) == 0 || totalSlots <= 0 {
		return result, nil
	}

	categories := make([]string, len(scored.Categories))
	for i, g := range scored.Categories {
		categories[i] = g.Category
	}
	quotas := CategoryQuotas(categories, totalSlots)
	for c, q := range quotas {
		result.CategoryQuotas[c] = q
	}

	speciesCap := totalSlots / e.policy.SpeciesCapDivisor
	result.SpeciesCap = speciesCap

	state := &allocationState{
		remainingBudget: math.Max(totalBudget, 0),
		remainingSlots:  totalSlots,
		categoryQuota:   quotas,
		allocatedQty:    make(map[string]int),
		events:          make(map[string]int),
	}

	for _, group := range scored.Categories {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		e.allocateCategory(group, speciesCap, state, result)
		if state.remainingSlots == 0 {
			break
		}
	}
	return result, nil
}

func (e *Engine) allocateCategory(group CategoryGroup, speciesCap int, state *allocationState, result *Allocation) {
	for _, plant := range group.Plants {
		label := plant.Label
		// capped labels are skipped entirely, stop check included
		if state.events[label] >= e.policy.MaxAllocationEvents {
			continue
		}

		quota := state.categoryQuota[group.Category]
		price := plant.GrowingPrice
		if quota > 0 && state.remainingBudget >= price {
			qty := utils.MinInt(
				quota,
				state.remainingSlots,
				speciesCap-state.allocatedQty[label],
			)
			// a free plant is bounded by slots only
			if price > 0 {
				qty = utils.MinInt(qty, utils.FloorDiv(state.remainingBudget, price))
			}

			if qty > 0 {
				cost := float64(qty) * price
				state.remainingBudget -= cost
				state.remainingSlots -= qty
				state.categoryQuota[group.Category] -= qty
				state.allocatedQty[label] += qty
				state.events[label]++

				result.Lines = append(result.Lines, domain.AllocationLine{
					Label:            label,
					Category:         group.Category,
					Quantity:         qty,
					Savings:          plant.Savings,
					GrowingPrice:     price,
					CarbonAbsorption: plant.CarbonAbsorption,
				})
				result.TotalSavings += float64(qty) * plant.Savings
				result.TotalCarbon += float64(qty) * plant.CarbonAbsorption
				result.PlantsUsed += qty
				result.BudgetUsed += cost
			}
		}

		if state.categoryQuota[group.Category] == 0 ||
			state.remainingSlots == 0 ||
			state.remainingBudget < price {
			return
		}
	}
}
