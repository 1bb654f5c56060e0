package optimizer

import "github.com/nikhil-r0/Green-Terrace/internal/domain"

// Policy holds the tunable rules of one optimizer.
// The zero value is not useful; start from DefaultPolicy.
type Policy struct {
	// FloorSavings clamps negative savings to zero before scoring
	FloorSavings bool

	// PerennialCarbonWeight multiplies the carbon term of perennial plants.
	// 1.0 disables the adjustment.
	PerennialCarbonWeight float64

	// SpeciesCapDivisor bounds one label to totalSlots/SpeciesCapDivisor plants
	SpeciesCapDivisor int

	// MaxAllocationEvents is how many times one label may be allocated in a run
	MaxAllocationEvents int
}

// DefaultPolicy returns the canonical allocation policy
func DefaultPolicy() Policy {
	return Policy{
		FloorSavings:          true,
		PerennialCarbonWeight: 1.0,
		SpeciesCapDivisor:     domain.SpeciesCapDivisor,
		MaxAllocationEvents:   domain.MaxAllocationEvents,
	}
}

func (p Policy) normalized() Policy {
	if p.PerennialCarbonWeight <= 0 {
		p.PerennialCarbonWeight = 1.0
	}
	if p.SpeciesCapDivisor <= 0 {
		p.SpeciesCapDivisor = domain.SpeciesCapDivisor
	}
	if p.MaxAllocationEvents <= 0 {
		p.MaxAllocationEvents = domain.MaxAllocationEvents
	}
	return p
}
