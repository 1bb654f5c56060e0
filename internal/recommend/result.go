package recommend

import (
	"github.com/nikhil-r0/Green-Terrace/internal/domain"
	"github.com/nikhil-r0/Green-Terrace/internal/optimizer"
	"github.com/nikhil-r0/Green-Terrace/internal/utils"
)

func buildResult(alloc *optimizer.Allocation, totalSlots int, region string) *domain.RecommendationResult {
	lines := alloc.Lines
	if lines == nil {
		lines = []domain.AllocationLine{}
	}
	return &domain.RecommendationResult{
		TotalSavings:        alloc.TotalSavings,
		TotalCarbonAbsorbed: utils.RoundTo(alloc.TotalCarbon, domain.CarbonRoundingPlaces),
		TotalPlantsGrown:    alloc.PlantsUsed,
		TotalBudgetUsed:     alloc.BudgetUsed,
		RecommendedPlants:   lines,
		TotalPlantSlots:     totalSlots,
		Region:              region,
	}
}
