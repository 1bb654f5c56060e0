package recommend

import (
	"context"
	"fmt"
	"strings"

	"github.com/nikhil-r0/Green-Terrace/internal/domain"
)

// Estimate prices a fixed planting plan: for each item the saving is
// (market price - growing price) * quantity. Savings are not floored here,
// so a crop that costs more to grow than to buy shows a negative saving.
func (s *service) Estimate(ctx context.Context, req domain.EstimateRequest) (*domain.EstimateResult, error) {
	if err := validateEstimate(req); err != nil {
		return nil, err
	}

	region := strings.TrimSpace(req.Region)
	if region == "" {
		region = s.opts.DefaultRegion
		if req.Latitude != nil && req.Longitude != nil {
			region = s.resolveRegion(ctx, *req.Latitude, *req.Longitude)
		}
	}

	plants, err := s.fetchCatalog(ctx, region)
	if err != nil {
		return nil, err
	}
	index := make(map[string]domain.PlantCandidate, len(plants))
	for _, p := range plants {
		index[strings.ToLower(p.Label)] = p
	}

	result := &domain.EstimateResult{Region: region, Estimates: []domain.SavingsEstimate{}}
	var matched []domain.PlantCandidate
	var quantities []int
	for _, item := range req.Items {
		p, ok := index[strings.ToLower(strings.TrimSpace(item.Label))]
		if !ok {
			result.UnknownLabels = append(result.UnknownLabels, item.Label)
			continue
		}
		matched = append(matched, p)
		quantities = append(quantities, item.Quantity)
	}

	prices := s.predictPrices(ctx, region, matched, func(domain.PlantCandidate) bool { return true })
	for i, p := range matched {
		est := domain.SavingsEstimate{
			Label:        p.Label,
			Category:     p.Category,
			Quantity:     quantities[i],
			MarketPrice:  p.MarketPrice,
			GrowingPrice: p.GrowingPrice,
			PriceSource:  domain.PriceSourceCatalog,
		}
		if prices[i] > 0 {
			est.MarketPrice = prices[i]
			est.PriceSource = domain.PriceSourceMarket
		}
		est.SavingsPerPlant = est.MarketPrice - est.GrowingPrice
		est.TotalSavings = est.SavingsPerPlant * float64(est.Quantity)
		result.TotalSavings += est.TotalSavings
		result.Estimates = append(result.Estimates, est)
	}
	return result, nil
}

func validateEstimate(req domain.EstimateRequest) error {
	if len(req.Items) == 0 {
		return fmt.Errorf("%w: no items to estimate", domain.ErrInvalidInput)
	}
	for _, item := range req.Items {
		if strings.TrimSpace(item.Label) == "" {
			return fmt.Errorf("%w: item without label", domain.ErrInvalidInput)
		}
		if item.Quantity <= 0 {
			return fmt.Errorf("%w: quantity for %s must be positive", domain.ErrInvalidInput, item.Label)
		}
	}
	if (req.Latitude == nil) != (req.Longitude == nil) {
		return fmt.Errorf("%w: latitude and longitude must be given together", domain.ErrInvalidInput)
	}
	if req.Latitude != nil && (*req.Latitude < -90 || *req.Latitude > 90) {
		return fmt.Errorf("%w: latitude must be between -90 and 90", domain.ErrInvalidInput)
	}
	if req.Longitude != nil && (*req.Longitude < -180 || *req.Longitude > 180) {
		return fmt.Errorf("%w: longitude must be between -180 and 180", domain.ErrInvalidInput)
	}
	return nil
}
