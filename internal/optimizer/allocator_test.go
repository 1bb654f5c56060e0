package optimizer

import (
	"context"
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nikhil-r0/Green-Terrace/internal/domain"
)

func scoreOrFail(t *testing.T, engine *Engine, catalog []domain.PlantCandidate, categories []string, ws, wc float64) *ScoredCatalog {
	t.Helper()
	scored, err := engine.Score(catalog, categories, ws, wc)
	require.NoError(t, err)
	return scored
}

func TestCategoryQuotas(t *testing.T) {
	tests := []struct {
		name       string
		categories []string
		slots      int
		expected   map[string]int
	}{
		{"even split", []string{"A", "B"}, 10, map[string]int{"A": 5, "B": 5}},
		{"remainder goes to first", []string{"A", "B", "C"}, 10, map[string]int{"A": 4, "B": 3, "C": 3}},
		{"fewer slots than categories", []string{"A", "B", "C"}, 2, map[string]int{"A": 1, "B": 1, "C": 0}},
		{"zero slots", []string{"A", "B"}, 0, map[string]int{"A": 0, "B": 0}},
		{"no categories", nil, 10, map[string]int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CategoryQuotas(tt.categories, tt.slots))
		})
	}
}

func TestAllocate_TomatoRoseScenario(t *testing.T) {
	engine := NewEngine(DefaultPolicy())
	scored := scoreOrFail(t, engine, tomatoRoseCatalog(), []string{"Vegetables", "Flowers"}, 0.5, 0.5)

	alloc, err := engine.Allocate(context.Background(), scored, 10, 100)
	require.NoError(t, err)

	// species cap is 10/10 = 1, so each label gets a single plant
	assert.Equal(t, 1, alloc.SpeciesCap)
	assert.Equal(t, map[string]int{"Flowers": 5, "Vegetables": 5}, alloc.CategoryQuotas)
	assert.Equal(t, map[string]int{"Rose": 1, "Tomato": 1}, linesByLabel(alloc.Lines))
	assert.Equal(t, 2, alloc.PlantsUsed)
	assert.InDelta(t, 60.0, alloc.BudgetUsed, 1e-9)
	assert.InDelta(t, 15.0, alloc.TotalSavings, 1e-9)
	assert.InDelta(t, 3.0, alloc.TotalCarbon, 1e-9)

	// Rose is processed first and ends up with zero savings, Tomato carries all of it
	require.Len(t, alloc.Lines, 2)
	assert.Equal(t, "Rose", alloc.Lines[0].Label)
	assert.InDelta(t, 0.0, alloc.Lines[0].Savings, 1e-9)
	assert.Equal(t, "Tomato", alloc.Lines[1].Label)
}

func TestAllocate_DegenerateInputs(t *testing.T) {
	engine := NewEngine(DefaultPolicy())
	ctx := context.Background()
	scored := scoreOrFail(t, engine, tomatoRoseCatalog(), []string{"Vegetables", "Flowers"}, 0.5, 0.5)

	t.Run("zero slots", func(t *testing.T) {
		alloc, err := engine.Allocate(ctx, scored, 0, 100)
		require.NoError(t, err)
		assert.Empty(t, alloc.Lines)
		assert.Zero(t, alloc.PlantsUsed)
		assert.Zero(t, alloc.BudgetUsed)
	})

	t.Run("zero categories", func(t *testing.T) {
		alloc, err := engine.Allocate(ctx, &ScoredCatalog{}, 10, 100)
		require.NoError(t, err)
		assert.Empty(t, alloc.Lines)
		assert.Zero(t, alloc.TotalSavings)
	})

	t.Run("nil catalog", func(t *testing.T) {
		alloc, err := engine.Allocate(ctx, nil, 10, 100)
		require.NoError(t, err)
		assert.NotNil(t, alloc.Lines)
		assert.Empty(t, alloc.Lines)
	})

	t.Run("zero budget", func(t *testing.T) {
		alloc, err := engine.Allocate(ctx, scored, 10, 0)
		require.NoError(t, err)
		assert.Empty(t, alloc.Lines)
		assert.Zero(t, alloc.BudgetUsed)
	})

	t.Run("budget below every price", func(t *testing.T) {
		alloc, err := engine.Allocate(ctx, scored, 10, 9.99)
		require.NoError(t, err)
		assert.Empty(t, alloc.Lines)
		assert.Zero(t, alloc.BudgetUsed)
	})

	t.Run("fewer than ten slots leaves no room per species", func(t *testing.T) {
		alloc, err := engine.Allocate(ctx, scored, 9, 1000)
		require.NoError(t, err)
		assert.Zero(t, alloc.SpeciesCap)
		assert.Empty(t, alloc.Lines)
	})
}

func TestAllocate_SpeciesQuantityCap(t *testing.T) {
	engine := NewEngine(DefaultPolicy())
	catalog := []domain.PlantCandidate{
		plant("Spinach", domain.CategoryVegetables, 5, 30, 2),
		plant("Okra", domain.CategoryVegetables, 5, 20, 1),
		plant("Beans", domain.CategoryVegetables, 5, 15, 1),
	}
	scored := scoreOrFail(t, engine, catalog, []string{"Vegetables"}, 0.5, 0.5)

	alloc, err := engine.Allocate(context.Background(), scored, 30, 1000)
	require.NoError(t, err)

	assert.Equal(t, 3, alloc.SpeciesCap)
	assert.Equal(t, map[string]int{"Spinach": 3, "Okra": 3, "Beans": 3}, linesByLabel(alloc.Lines))
	assert.Equal(t, 9, alloc.PlantsUsed)
	assert.InDelta(t, 45.0, alloc.BudgetUsed, 1e-9)
}

func TestAllocate_EventCapStopsThirdAllocation(t *testing.T) {
	policy := DefaultPolicy()
	policy.SpeciesCapDivisor = 1
	engine := NewEngine(policy)

	// one slot per category pass forces a separate event for each duplicate row
	catalog := []domain.PlantCandidate{
		plant("Mint", domain.CategoryHerbs, 1, 10, 1),
		plant("Mint", domain.CategoryHerbs, 1, 10, 1),
		plant("Mint", domain.CategoryHerbs, 1, 10, 1),
	}
	scored := &ScoredCatalog{}
	for i, p := range catalog {
		scored.Categories = append(scored.Categories, CategoryGroup{
			Category: fmt.Sprintf("Herbs%d", i),
			Plants:   []domain.ScoredPlant{{PlantCandidate: p, Savings: 9, Score: 1}},
		})
	}

	alloc, err := engine.Allocate(context.Background(), scored, 3, 100)
	require.NoError(t, err)

	assert.Len(t, alloc.Lines, 2, "third event for the same label is skipped")
	assert.Equal(t, 2, alloc.PlantsUsed)
}

// A label past its event cap is skipped without running the category stop
// check, so an unaffordable capped row does not hide cheaper rows behind it.
func TestAllocate_CappedLabelDoesNotStopCategory(t *testing.T) {
	policy := DefaultPolicy()
	policy.SpeciesCapDivisor = 1
	engine := NewEngine(policy)

	group := func(category string, plants ...domain.PlantCandidate) CategoryGroup {
		g := CategoryGroup{Category: category}
		for _, p := range plants {
			g.Plants = append(g.Plants, domain.ScoredPlant{PlantCandidate: p, Score: 1})
		}
		return g
	}
	scored := &ScoredCatalog{Categories: []CategoryGroup{
		group("A", plant("Basil", "A", 1, 5, 1)),
		group("B", plant("Basil", "B", 1, 5, 1)),
		group("C", plant("Basil", "C", 1000, 5, 1), plant("Thyme", "C", 1, 5, 1)),
	}}

	alloc, err := engine.Allocate(context.Background(), scored, 3, 10)
	require.NoError(t, err)

	assert.Equal(t, map[string]int{"Basil": 2, "Thyme": 1}, linesByLabel(alloc.Lines))
	assert.InDelta(t, 3.0, alloc.BudgetUsed, 1e-9)
}

func TestAllocate_BudgetBeyondIntRange(t *testing.T) {
	engine := NewEngine(DefaultPolicy())
	scored := &ScoredCatalog{Categories: []CategoryGroup{{
		Category: domain.CategoryVegetables,
		Plants: []domain.ScoredPlant{
			{PlantCandidate: plant("Tomato", domain.CategoryVegetables, 10, 25, 2), Savings: 15, Score: 1},
		},
	}}}

	alloc, err := engine.Allocate(context.Background(), scored, 100, 1e20)
	require.NoError(t, err)

	require.Len(t, alloc.Lines, 1)
	assert.Equal(t, 10, alloc.Lines[0].Quantity, "bounded by the species cap, not the budget")
	assert.InDelta(t, 100.0, alloc.BudgetUsed, 1e-9)
}

func TestAllocate_StopsCategoryWhenBudgetBelowPrice(t *testing.T) {
	engine := NewEngine(DefaultPolicy())
	scored := &ScoredCatalog{Categories: []CategoryGroup{{
		Category: domain.CategoryFruits,
		Plants: []domain.ScoredPlant{
			{PlantCandidate: plant("Mango", domain.CategoryFruits, 80, 200, 3), Savings: 120, Score: 1},
			{PlantCandidate: plant("Lemon", domain.CategoryFruits, 10, 30, 1), Savings: 20, Score: 0.5},
		},
	}}}

	alloc, err := engine.Allocate(context.Background(), scored, 20, 50)
	require.NoError(t, err)

	// Mango is unaffordable and the cheaper Lemon behind it is not tried
	assert.Empty(t, alloc.Lines)
	assert.Zero(t, alloc.BudgetUsed)
}

func TestAllocate_FreePlantIsBoundedBySlots(t *testing.T) {
	engine := NewEngine(DefaultPolicy())
	scored := &ScoredCatalog{Categories: []CategoryGroup{{
		Category: domain.CategoryHerbs,
		Plants: []domain.ScoredPlant{
			{PlantCandidate: plant("Aloe", domain.CategoryHerbs, 0, 20, 1), Savings: 20, Score: 1},
		},
	}}}

	alloc, err := engine.Allocate(context.Background(), scored, 40, 0)
	require.NoError(t, err)

	require.Len(t, alloc.Lines, 1)
	assert.Equal(t, 4, alloc.Lines[0].Quantity)
	assert.Zero(t, alloc.BudgetUsed)
}

func TestAllocate_ContextCanceled(t *testing.T) {
	engine := NewEngine(DefaultPolicy())
	scored := scoreOrFail(t, engine, tomatoRoseCatalog(), []string{"Vegetables", "Flowers"}, 0.5, 0.5)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	alloc, err := engine.Allocate(ctx, scored, 10, 100)
	assert.Nil(t, alloc)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestAllocate_Invariants(t *testing.T) {
	engine := NewEngine(DefaultPolicy())
	rng := rand.New(rand.NewSource(42)) //nolint:gosec // deterministic fixture generation
	categories := []string{
		domain.CategoryVegetables, domain.CategoryFruits, domain.CategoryHerbs,
		domain.CategoryMedicinal, domain.CategoryFlowers,
	}

	for run := 0; run < 200; run++ {
		var catalog []domain.PlantCandidate
		for i := 0; i < 3+rng.Intn(25); i++ {
			catalog = append(catalog, plant(
				fmt.Sprintf("plant-%d", rng.Intn(12)),
				categories[rng.Intn(len(categories))],
				float64(rng.Intn(60)),
				float64(rng.Intn(120)),
				rng.Float64()*5,
			))
		}
		selected := categories[:1+rng.Intn(len(categories))]
		slots := rng.Intn(80)
		budget := float64(rng.Intn(2000))

		scored, err := engine.Score(catalog, selected, rng.Float64(), rng.Float64())
		if err != nil {
			require.ErrorIs(t, err, domain.ErrNoViableData)
			continue
		}
		alloc, err := engine.Allocate(context.Background(), scored, slots, budget)
		require.NoError(t, err)

		name := fmt.Sprintf("run %d", run)
		sumQty, sumCost := 0, 0.0
		events := map[string]int{}
		perCategory := map[string]int{}
		for _, l := range alloc.Lines {
			assert.Positive(t, l.Quantity, name)
			sumQty += l.Quantity
			sumCost += l.Cost()
			events[l.Label]++
			perCategory[l.Category] += l.Quantity
		}

		assert.LessOrEqual(t, alloc.BudgetUsed, budget+1e-9, name)
		assert.InDelta(t, sumCost, alloc.BudgetUsed, 1e-6, name)
		assert.LessOrEqual(t, alloc.PlantsUsed, slots, name)
		assert.Equal(t, sumQty, alloc.PlantsUsed, name)

		for label, n := range events {
			assert.LessOrEqual(t, n, 2, "%s: events for %s", name, label)
		}
		for label, qty := range linesByLabel(alloc.Lines) {
			assert.LessOrEqual(t, qty, slots/10, "%s: quantity for %s", name, label)
		}

		if slots > 0 {
			minQ, maxQ, total := slots, 0, 0
			for c, q := range alloc.CategoryQuotas {
				minQ = min(minQ, q)
				maxQ = max(maxQ, q)
				total += q
				assert.LessOrEqual(t, perCategory[c], q, "%s: category %s over quota", name, c)
			}
			assert.LessOrEqual(t, maxQ-minQ, 1, name)
			assert.Equal(t, slots, total, name)
		}
	}
}

func TestAllocate_CarbonWeightMonotonic(t *testing.T) {
	engine := NewEngine(DefaultPolicy())
	catalog := []domain.PlantCandidate{
		plant("Cabbage", domain.CategoryVegetables, 10, 40, 1),
		plant("Moringa", domain.CategoryVegetables, 10, 15, 5),
	}

	previous := -1.0
	for _, wc := range []float64{0, 0.25, 0.5, 0.75, 1} {
		scored := scoreOrFail(t, engine, catalog, []string{"Vegetables"}, 0.5, wc)
		alloc, err := engine.Allocate(context.Background(), scored, 20, 20)
		require.NoError(t, err)

		assert.GreaterOrEqual(t, alloc.TotalCarbon, previous, "weight_carbon=%.2f", wc)
		previous = alloc.TotalCarbon
	}
	assert.InDelta(t, 10.0, previous, 1e-9, "carbon-heavy weighting picks Moringa")
}
