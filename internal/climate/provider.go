package climate

import (
	"context"

	"github.com/nikhil-r0/Green-Terrace/internal/domain"
)

// Provider returns averaged local weather for a location
type Provider interface {
	GetClimate(ctx context.Context, latitude, longitude float64) (*domain.Climate, error)
}

// StaticProvider always returns the same climate. Used for offline runs.
type StaticProvider struct {
	Climate domain.Climate
}

// GetClimate returns a copy of the configured climate
func (p StaticProvider) GetClimate(_ context.Context, _, _ float64) (*domain.Climate, error) {
	c := p.Climate
	return &c, nil
}
