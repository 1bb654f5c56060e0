package recommend

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/nikhil-r0/Green-Terrace/internal/domain"
	"github.com/nikhil-r0/Green-Terrace/internal/logger"
)

// predictPrices asks the predictor for every plant accepted by include.
// The returned slice is parallel to plants; 0 means no usable prediction.
func (s *service) predictPrices(ctx context.Context, region string, plants []domain.PlantCandidate,
	include func(domain.PlantCandidate) bool) []float64 {
	prices := make([]float64, len(plants))
	if s.predictor == nil || len(plants) == 0 {
		return prices
	}

	ctx, cancel := context.WithTimeout(ctx, s.opts.ProviderTimeout)
	defer cancel()
	log := logger.FromContext(ctx)

	var g errgroup.Group
	g.SetLimit(s.opts.PriceConcurrency)
	for i, p := range plants {
		if !include(p) {
			continue
		}
		g.Go(func() error {
			price, err := s.predictor.PredictPrice(ctx, region, p.Label)
			if err != nil {
				log.Debug(LogMsgPriceLookupFailed, "label", p.Label, "region", region, "error", err)
				return nil
			}
			if price > 0 {
				prices[i] = price
			}
			return nil
		})
	}
	_ = g.Wait()
	return prices
}

// enrichPrices replaces the market price of selected-category plants with a
// predicted price when the predictor knows one. Failures keep the catalog price.
func (s *service) enrichPrices(ctx context.Context, region string, plants []domain.PlantCandidate, categories []string) []domain.PlantCandidate {
	selected := make(map[string]struct{}, len(categories))
	for _, c := range categories {
		selected[c] = struct{}{}
	}

	prices := s.predictPrices(ctx, region, plants, func(p domain.PlantCandidate) bool {
		_, ok := selected[p.Category]
		return ok
	})

	enriched := 0
	for i := range plants {
		if prices[i] > 0 {
			plants[i].MarketPrice = prices[i]
			enriched++
		}
	}
	if enriched > 0 {
		logger.FromContext(ctx).Debug(LogMsgPricesEnriched, "region", region, "count", enriched)
	}
	return plants
}
