package optimizer

import (
	"context"

	"github.com/nikhil-r0/Green-Terrace/internal/domain"
)

// Engine provides pure recommendation logic (no I/O dependencies)
type Engine struct {
	policy Policy
}

// NewEngine creates a new optimizer engine with the given policy
func NewEngine(policy Policy) *Engine {
	return &Engine{policy: policy.normalized()}
}

// Policy returns the engine's effective policy
func (e *Engine) Policy() Policy {
	return e.policy
}

// Input is everything one optimizer run needs
type Input struct {
	Catalog            []domain.PlantCandidate
	Climate            domain.Climate
	SelectedCategories []string
	WeightSavings      float64
	WeightCarbon       float64
	TotalSlots         int
	TotalBudget        float64
}

// Run filters, scores and allocates in one pass
func (e *Engine) Run(ctx context.Context, in Input) (*Allocation, error) {
	compatible := e.FilterByClimate(in.Catalog, in.Climate)
	scored, err := e.Score(compatible, in.SelectedCategories, in.WeightSavings, in.WeightCarbon)
	if err != nil {
		return nil, err
	}
	return e.Allocate(ctx, scored, in.TotalSlots, in.TotalBudget)
}
