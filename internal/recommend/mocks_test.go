package recommend

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/nikhil-r0/Green-Terrace/internal/domain"
)

// MockClimate implements climate.Provider for testing
type MockClimate struct {
	mock.Mock
}

func (m *MockClimate) GetClimate(ctx context.Context, latitude, longitude float64) (*domain.Climate, error) {
	args := m.Called(ctx, latitude, longitude)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Climate), args.Error(1)
}

// MockResolver implements geocode.Resolver for testing
type MockResolver struct {
	mock.Mock
}

func (m *MockResolver) ResolveRegion(ctx context.Context, latitude, longitude float64) (string, error) {
	args := m.Called(ctx, latitude, longitude)
	return args.String(0), args.Error(1)
}

// MockCatalog implements catalog.Provider for testing
type MockCatalog struct {
	mock.Mock
}

func (m *MockCatalog) GetCatalog(ctx context.Context, region string) ([]domain.PlantCandidate, error) {
	args := m.Called(ctx, region)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	// Hand out a copy like the real providers do
	plants := args.Get(0).([]domain.PlantCandidate)
	out := make([]domain.PlantCandidate, len(plants))
	copy(out, plants)
	return out, args.Error(1)
}

// MockPredictor implements pricing.Predictor for testing
type MockPredictor struct {
	mock.Mock
}

func (m *MockPredictor) PredictPrice(ctx context.Context, region, label string) (float64, error) {
	args := m.Called(ctx, region, label)
	return args.Get(0).(float64), args.Error(1)
}
