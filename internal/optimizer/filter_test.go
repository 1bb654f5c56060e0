package optimizer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nikhil-r0/Green-Terrace/internal/domain"
)

func TestIsClimateCompatible(t *testing.T) {
	climate := domain.Climate{TempMin: 20, TempMax: 30, Sunlight: 6}

	tests := []struct {
		name     string
		plant    domain.PlantCandidate
		expected bool
	}{
		{"range inside", domain.PlantCandidate{TempMin: 22, TempMax: 28, SunlightMin: 5}, true},
		{"range overlaps low end", domain.PlantCandidate{TempMin: 10, TempMax: 20, SunlightMin: 5}, true},
		{"range overlaps high end", domain.PlantCandidate{TempMin: 30, TempMax: 40, SunlightMin: 5}, true},
		{"range entirely colder", domain.PlantCandidate{TempMin: 5, TempMax: 19.9, SunlightMin: 5}, false},
		{"range entirely warmer", domain.PlantCandidate{TempMin: 30.1, TempMax: 40, SunlightMin: 5}, false},
		{"sunlight exactly met", domain.PlantCandidate{TempMin: 22, TempMax: 28, SunlightMin: 6}, true},
		{"sunlight not met", domain.PlantCandidate{TempMin: 22, TempMax: 28, SunlightMin: 6.5}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsClimateCompatible(tt.plant, climate))
		})
	}
}

func TestFilterByClimate_PreservesOrder(t *testing.T) {
	engine := NewEngine(DefaultPolicy())
	shady := plant("Fern", domain.CategoryHerbs, 5, 10, 1)
	shady.SunlightMin = 12

	catalog := []domain.PlantCandidate{
		plant("Chilli", domain.CategoryVegetables, 10, 20, 1),
		shady,
		plant("Mint", domain.CategoryHerbs, 5, 15, 1),
		plant("Brinjal", domain.CategoryVegetables, 10, 30, 1),
	}

	kept := engine.FilterByClimate(catalog, mildClimate)

	assert.Len(t, kept, 3)
	assert.Equal(t, "Chilli", kept[0].Label)
	assert.Equal(t, "Mint", kept[1].Label)
	assert.Equal(t, "Brinjal", kept[2].Label)
}

func TestFilterByClimate_EmptyIsNotAnError(t *testing.T) {
	engine := NewEngine(DefaultPolicy())
	frozen := domain.Climate{TempMin: -20, TempMax: -5, Sunlight: 2}

	kept := engine.FilterByClimate(tomatoRoseCatalog(), frozen)
	assert.NotNil(t, kept)
	assert.Empty(t, kept)

	assert.Empty(t, engine.FilterByClimate(nil, mildClimate))
}

func TestFilterByClimate_DoesNotMutateInput(t *testing.T) {
	engine := NewEngine(DefaultPolicy())
	catalog := tomatoRoseCatalog()
	before := append([]domain.PlantCandidate(nil), catalog...)

	_ = engine.FilterByClimate(catalog, mildClimate)
	assert.Equal(t, before, catalog)
}
