package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/nikhil-r0/Green-Terrace/internal/domain"
)

// MockRecommendService implements recommend.Service for testing
type MockRecommendService struct {
	mock.Mock
}

func (m *MockRecommendService) Recommend(ctx context.Context, req domain.RecommendRequest) *domain.RecommendationResult {
	args := m.Called(ctx, req)
	return args.Get(0).(*domain.RecommendationResult)
}

func (m *MockRecommendService) Plan(ctx context.Context, req domain.RecommendRequest) (*domain.RecommendationResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RecommendationResult), args.Error(1)
}

func (m *MockRecommendService) Estimate(ctx context.Context, req domain.EstimateRequest) (*domain.EstimateResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EstimateResult), args.Error(1)
}

func (m *MockRecommendService) Categories(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

type fakeInvalidator struct {
	calls int
}

func (f *fakeInvalidator) Invalidate() { f.calls++ }
