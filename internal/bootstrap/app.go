package bootstrap

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nikhil-r0/Green-Terrace/internal/catalog"
	"github.com/nikhil-r0/Green-Terrace/internal/config"
	"github.com/nikhil-r0/Green-Terrace/internal/optimizer"
	"github.com/nikhil-r0/Green-Terrace/internal/recommend"
	"github.com/nikhil-r0/Green-Terrace/internal/scheduler"
	"github.com/nikhil-r0/Green-Terrace/internal/server"
	"github.com/nikhil-r0/Green-Terrace/internal/worker"
)

// App holds the wired application
type App struct {
	Service      recommend.Service
	CatalogCache *catalog.CachedProvider
	Server       *server.Server

	// DBPool is nil for file catalogs
	DBPool     *pgxpool.Pool
	workerPool *worker.Pool
	scheduler  *scheduler.Scheduler
}

// NewEngine builds the optimizer from the configured policy
func NewEngine(cfg *config.Config) *optimizer.Engine {
	policy := optimizer.DefaultPolicy()
	policy.FloorSavings = cfg.FloorSavings
	policy.PerennialCarbonWeight = cfg.PerennialCarbonWeight
	return optimizer.NewEngine(policy)
}

// NewRecommendService wires the recommendation facade over its providers
func NewRecommendService(cfg *config.Config, catalogProvider catalog.Provider) (recommend.Service, error) {
	predictor, err := NewPredictor(cfg)
	if err != nil {
		return nil, err
	}

	opts := recommend.DefaultOptions()
	opts.PlantFootprint = cfg.PlantFootprint
	opts.ProviderTimeout = cfg.ProviderTimeout
	opts.DefaultRegion = cfg.DefaultRegion

	return recommend.NewService(
		NewEngine(cfg),
		NewClimateProvider(cfg),
		NewResolver(cfg),
		catalogProvider,
		predictor,
		opts,
	), nil
}

// Build wires every component described by cfg. Call Start to begin serving.
func Build(ctx context.Context, cfg *config.Config) (*App, error) {
	app := &App{}

	if cfg.UsesPostgres() {
		pool, err := ConnectDatabase(ctx, cfg)
		if err != nil {
			return nil, err
		}
		app.DBPool = pool
	}

	source, err := NewCatalogProvider(ctx, cfg, app.DBPool)
	if err != nil {
		app.close()
		return nil, err
	}
	app.CatalogCache = catalog.NewCachedProvider(source, cfg.CacheSize, cfg.CacheTTL)

	app.Service, err = NewRecommendService(cfg, app.CatalogCache)
	if err != nil {
		app.close()
		return nil, err
	}

	deps := server.Dependencies{
		Recommend:    app.Service,
		CatalogCache: app.CatalogCache,
	}
	if app.DBPool != nil {
		deps.DBPool = app.DBPool
	}
	app.Server = server.NewServer(cfg.Port, cfg.APIKey, cfg.TrustedProxies, deps)

	if cfg.CatalogRefreshInterval > 0 {
		app.workerPool = worker.NewPool(RefreshWorkers, RefreshQueueSize, RefreshJobTimeout)
		app.scheduler = scheduler.New(app.workerPool)
		app.scheduler.Schedule(cfg.CatalogRefreshInterval, worker.NewCatalogRefreshJob(app.CatalogCache, cfg.DefaultRegion))
		slog.Info(LogMsgCatalogRefreshOn, "interval", cfg.CatalogRefreshInterval)
	}

	return app, nil
}

// StartBackground starts the background workers, if any
func (a *App) StartBackground() {
	if a.workerPool != nil {
		a.workerPool.Start()
	}
}

func (a *App) close() {
	if a.DBPool != nil {
		a.DBPool.Close()
	}
}
