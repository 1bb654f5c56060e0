package recommend

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nikhil-r0/Green-Terrace/internal/catalog"
	"github.com/nikhil-r0/Green-Terrace/internal/climate"
	"github.com/nikhil-r0/Green-Terrace/internal/domain"
	"github.com/nikhil-r0/Green-Terrace/internal/geocode"
	"github.com/nikhil-r0/Green-Terrace/internal/logger"
	"github.com/nikhil-r0/Green-Terrace/internal/metrics"
	"github.com/nikhil-r0/Green-Terrace/internal/optimizer"
	"github.com/nikhil-r0/Green-Terrace/internal/pricing"
	"github.com/nikhil-r0/Green-Terrace/internal/utils"
)

// Service defines the interface for recommendation operations
type Service interface {
	// Recommend never fails; errors are reported inside the result
	Recommend(ctx context.Context, req domain.RecommendRequest) *domain.RecommendationResult
	// Plan is Recommend with the error returned instead of folded into the result
	Plan(ctx context.Context, req domain.RecommendRequest) (*domain.RecommendationResult, error)
	// Estimate prices a fixed planting plan
	Estimate(ctx context.Context, req domain.EstimateRequest) (*domain.EstimateResult, error)
	// Categories lists the plant categories of the default region's catalog
	Categories(ctx context.Context) ([]string, error)
}

// Options tune the facade around the optimizer
type Options struct {
	// PlantFootprint is the terrace area in m² one plant needs
	PlantFootprint float64
	// ProviderTimeout bounds each collaborator call
	ProviderTimeout time.Duration
	// DefaultRegion is used when the location cannot be resolved
	DefaultRegion string
	// PriceConcurrency caps parallel price lookups
	PriceConcurrency int
}

// DefaultOptions returns the facade defaults
func DefaultOptions() Options {
	return Options{
		PlantFootprint:   domain.DefaultPlantFootprint,
		ProviderTimeout:  DefaultProviderTimeout,
		DefaultRegion:    domain.DefaultRegion,
		PriceConcurrency: DefaultPriceConcurrency,
	}
}

func (o Options) normalized() Options {
	if o.PlantFootprint <= 0 {
		o.PlantFootprint = domain.DefaultPlantFootprint
	}
	if o.ProviderTimeout <= 0 {
		o.ProviderTimeout = DefaultProviderTimeout
	}
	if o.DefaultRegion == "" {
		o.DefaultRegion = domain.DefaultRegion
	}
	if o.PriceConcurrency <= 0 {
		o.PriceConcurrency = DefaultPriceConcurrency
	}
	return o
}

type service struct {
	engine    *optimizer.Engine
	climate   climate.Provider
	resolver  geocode.Resolver
	catalog   catalog.Provider
	predictor pricing.Predictor
	opts      Options
}

// NewService creates a new recommendation service.
// resolver and predictor may be nil: the default region is used and catalog prices are kept.
func NewService(engine *optimizer.Engine, climateProvider climate.Provider, resolver geocode.Resolver,
	catalogProvider catalog.Provider, predictor pricing.Predictor, opts Options) Service {
	return &service{
		engine:    engine,
		climate:   climateProvider,
		resolver:  resolver,
		catalog:   catalogProvider,
		predictor: predictor,
		opts:      opts.normalized(),
	}
}

func (s *service) Recommend(ctx context.Context, req domain.RecommendRequest) *domain.RecommendationResult {
	start := time.Now()
	log := logger.FromContext(ctx)

	result, err := s.Plan(ctx, req)
	metrics.RecommendationDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		kind := domain.ErrorKind(err)
		metrics.RecommendationsTotal.WithLabelValues(kind).Inc()
		if kind == domain.ErrorKindInternal || kind == domain.ErrorKindDataUnavailable {
			log.Error(LogMsgRecommendationFailed, "error", err, "error_kind", kind)
		} else {
			log.Info(LogMsgRecommendationFailed, "error", err, "error_kind", kind)
		}
		return domain.NewErrorResult(err)
	}

	metrics.RecommendationsTotal.WithLabelValues(metrics.OutcomeOK).Inc()
	metrics.BudgetUsed.Observe(result.TotalBudgetUsed)
	for _, line := range result.RecommendedPlants {
		metrics.PlantsAllocated.WithLabelValues(line.Category).Add(float64(line.Quantity))
	}
	log.Info(LogMsgRecommendationCompleted,
		"region", result.Region,
		"plants", result.TotalPlantsGrown,
		"slots", result.TotalPlantSlots,
		"budget_used", result.TotalBudgetUsed,
		"duration", time.Since(start))
	return result
}

func (s *service) Plan(ctx context.Context, req domain.RecommendRequest) (*domain.RecommendationResult, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	categories := normalizeCategories(req.SelectedCategory)
	if len(categories) == 0 {
		return nil, fmt.Errorf("%w: no categories selected", domain.ErrNoViableData)
	}

	totalSlots := utils.FloorDiv(req.TerraceSize, s.opts.PlantFootprint)

	local, err := s.fetchClimate(ctx, req.Latitude, req.Longitude)
	if err != nil {
		return nil, err
	}

	region := s.resolveRegion(ctx, req.Latitude, req.Longitude)

	plants, err := s.fetchCatalog(ctx, region)
	if err != nil {
		return nil, err
	}
	plants = s.enrichPrices(ctx, region, plants, categories)

	alloc, err := s.engine.Run(ctx, optimizer.Input{
		Catalog:            plants,
		Climate:            *local,
		SelectedCategories: categories,
		WeightSavings:      req.WeightSavings,
		WeightCarbon:       req.WeightCarbon,
		TotalSlots:         totalSlots,
		TotalBudget:        req.Budget,
	})
	if err != nil {
		return nil, err
	}

	return buildResult(alloc, totalSlots, region), nil
}

func (s *service) Categories(ctx context.Context) ([]string, error) {
	plants, err := s.fetchCatalog(ctx, s.opts.DefaultRegion)
	if err != nil {
		return nil, err
	}
	return catalog.Categories(plants), nil
}

func (s *service) fetchClimate(ctx context.Context, latitude, longitude float64) (*domain.Climate, error) {
	ctx, cancel := context.WithTimeout(ctx, s.opts.ProviderTimeout)
	defer cancel()

	local, err := s.climate.GetClimate(ctx, latitude, longitude)
	if err != nil {
		return nil, asUnavailable("climate", err)
	}
	if local == nil {
		return nil, fmt.Errorf("%w: climate: empty response", domain.ErrDataUnavailable)
	}
	return local, nil
}

func (s *service) resolveRegion(ctx context.Context, latitude, longitude float64) string {
	if s.resolver == nil {
		return s.opts.DefaultRegion
	}

	ctx, cancel := context.WithTimeout(ctx, s.opts.ProviderTimeout)
	defer cancel()

	region, err := s.resolver.ResolveRegion(ctx, latitude, longitude)
	if err != nil || region == "" {
		logger.FromContext(ctx).Warn(LogMsgRegionFallback, "error", err, "default_region", s.opts.DefaultRegion)
		return s.opts.DefaultRegion
	}
	return region
}

func (s *service) fetchCatalog(ctx context.Context, region string) ([]domain.PlantCandidate, error) {
	ctx, cancel := context.WithTimeout(ctx, s.opts.ProviderTimeout)
	defer cancel()

	plants, err := s.catalog.GetCatalog(ctx, region)
	if err != nil {
		return nil, asUnavailable("catalog", err)
	}
	return plants, nil
}

// asUnavailable tags a collaborator failure as ErrDataUnavailable unless it already is
func asUnavailable(source string, err error) error {
	if errors.Is(err, domain.ErrDataUnavailable) {
		return err
	}
	return fmt.Errorf("%w: %s: %w", domain.ErrDataUnavailable, source, err)
}
