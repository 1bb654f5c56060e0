package recommend

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/nikhil-r0/Green-Terrace/internal/domain"
)

func floatPtr(v float64) *float64 { return &v }

func TestEstimate_CatalogPrices(t *testing.T) {
	f := newFixture()
	f.catalog.On("GetCatalog", mock.Anything, "Kerala").Return(tomatoRoseCatalog(), nil)

	result, err := f.service(false).Estimate(context.Background(), domain.EstimateRequest{
		Region: "Kerala",
		Items: []domain.EstimateItem{
			{Label: "tomato", Quantity: 4},
			{Label: "Rose", Quantity: 2},
			{Label: "Dragonfruit", Quantity: 1},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, "Kerala", result.Region)
	require.Len(t, result.Estimates, 2)

	tomato := result.Estimates[0]
	assert.Equal(t, "Tomato", tomato.Label)
	assert.Equal(t, domain.PriceSourceCatalog, tomato.PriceSource)
	assert.Equal(t, 15.0, tomato.SavingsPerPlant)
	assert.Equal(t, 60.0, tomato.TotalSavings)

	// Negative savings are reported as they are
	assert.Equal(t, -20.0, result.Estimates[1].TotalSavings)
	assert.Equal(t, 40.0, result.TotalSavings)
	assert.Equal(t, []string{"Dragonfruit"}, result.UnknownLabels)
	f.resolver.AssertNotCalled(t, "ResolveRegion", mock.Anything, mock.Anything, mock.Anything)
}

func TestEstimate_MarketPriceAndResolvedRegion(t *testing.T) {
	f := newFixture()
	f.resolver.On("ResolveRegion", mock.Anything, 19.07, 72.87).Return("Maharashtra", nil)
	f.catalog.On("GetCatalog", mock.Anything, "Maharashtra").Return(tomatoRoseCatalog(), nil)
	f.predictor.On("PredictPrice", mock.Anything, "Maharashtra", "Tomato").Return(32.0, nil)

	result, err := f.service(true).Estimate(context.Background(), domain.EstimateRequest{
		Latitude:  floatPtr(19.07),
		Longitude: floatPtr(72.87),
		Items:     []domain.EstimateItem{{Label: "Tomato", Quantity: 3}},
	})

	require.NoError(t, err)
	assert.Equal(t, "Maharashtra", result.Region)
	require.Len(t, result.Estimates, 1)
	assert.Equal(t, domain.PriceSourceMarket, result.Estimates[0].PriceSource)
	assert.Equal(t, 66.0, result.TotalSavings)
}

func TestEstimate_DefaultRegionWithoutLocation(t *testing.T) {
	f := newFixture()
	f.catalog.On("GetCatalog", mock.Anything, domain.DefaultRegion).Return(tomatoRoseCatalog(), nil)

	result, err := f.service(false).Estimate(context.Background(), domain.EstimateRequest{
		Items: []domain.EstimateItem{{Label: "Rose", Quantity: 1}},
	})

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultRegion, result.Region)
}

func TestEstimate_InvalidInput(t *testing.T) {
	tests := []struct {
		name string
		req  domain.EstimateRequest
	}{
		{"no items", domain.EstimateRequest{}},
		{"blank label", domain.EstimateRequest{Items: []domain.EstimateItem{{Label: " ", Quantity: 1}}}},
		{"zero quantity", domain.EstimateRequest{Items: []domain.EstimateItem{{Label: "Tomato"}}}},
		{"latitude without longitude", domain.EstimateRequest{
			Latitude: floatPtr(10),
			Items:    []domain.EstimateItem{{Label: "Tomato", Quantity: 1}},
		}},
		{"longitude out of range", domain.EstimateRequest{
			Latitude:  floatPtr(10),
			Longitude: floatPtr(200),
			Items:     []domain.EstimateItem{{Label: "Tomato", Quantity: 1}},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newFixture().service(false).Estimate(context.Background(), tt.req)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestEstimate_CatalogFailure(t *testing.T) {
	f := newFixture()
	f.catalog.On("GetCatalog", mock.Anything, mock.Anything).Return(nil, errors.New("timeout"))

	_, err := f.service(false).Estimate(context.Background(), domain.EstimateRequest{
		Items: []domain.EstimateItem{{Label: "Rose", Quantity: 1}},
	})

	assert.ErrorIs(t, err, domain.ErrDataUnavailable)
}
