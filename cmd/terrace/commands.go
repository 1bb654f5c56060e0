package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/nikhil-r0/Green-Terrace/internal/bootstrap"
	"github.com/nikhil-r0/Green-Terrace/internal/catalog"
	"github.com/nikhil-r0/Green-Terrace/internal/climate"
	"github.com/nikhil-r0/Green-Terrace/internal/config"
	"github.com/nikhil-r0/Green-Terrace/internal/database/postgres"
	"github.com/nikhil-r0/Green-Terrace/internal/domain"
	"github.com/nikhil-r0/Green-Terrace/internal/recommend"
	"github.com/nikhil-r0/Green-Terrace/internal/utils"
)

// climateFlags replace the live weather lookup when --offline is given
type climateFlags struct {
	offline  bool
	tempMin  float64
	tempMax  float64
	rainfall float64
	sunlight float64
}

func (c *climateFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&c.offline, "offline", false, "use the climate flags instead of Open-Meteo")
	cmd.Flags().Float64Var(&c.tempMin, "temp-min", 20, "offline mean daily minimum temperature (°C)")
	cmd.Flags().Float64Var(&c.tempMax, "temp-max", 32, "offline mean daily maximum temperature (°C)")
	cmd.Flags().Float64Var(&c.rainfall, "rainfall", 2, "offline mean daily rainfall (mm)")
	cmd.Flags().Float64Var(&c.sunlight, "sunlight", 7, "offline mean daily sunshine (hours)")
}

func (c *climateFlags) provider(cfg *config.Config) climate.Provider {
	if !c.offline {
		return bootstrap.NewClimateProvider(cfg)
	}
	return climate.StaticProvider{Climate: domain.Climate{
		TempMin:  c.tempMin,
		TempMax:  c.tempMax,
		Rainfall: c.rainfall,
		Sunlight: c.sunlight,
	}}
}

// openPool connects to the database when the catalog lives there
func openPool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	if !cfg.UsesPostgres() {
		return nil, nil
	}
	return bootstrap.ConnectDatabase(ctx, cfg)
}

// newService wires the recommendation service for one CLI run.
// The returned pool is nil for file catalogs.
func newService(ctx context.Context, cfg *config.Config, weather *climateFlags) (recommend.Service, *pgxpool.Pool, error) {
	pool, err := openPool(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	catalogProvider, err := bootstrap.NewCatalogProvider(ctx, cfg, pool)
	if err != nil {
		closePool(pool)
		return nil, nil, err
	}

	predictor, err := bootstrap.NewPredictor(cfg)
	if err != nil {
		closePool(pool)
		return nil, nil, err
	}

	opts := recommend.DefaultOptions()
	opts.PlantFootprint = cfg.PlantFootprint
	opts.ProviderTimeout = cfg.ProviderTimeout
	opts.DefaultRegion = cfg.DefaultRegion

	svc := recommend.NewService(
		bootstrap.NewEngine(cfg),
		weather.provider(cfg),
		bootstrap.NewResolver(cfg),
		catalogProvider,
		predictor,
		opts,
	)
	return svc, pool, nil
}

func closePool(pool *pgxpool.Pool) {
	if pool != nil {
		pool.Close()
	}
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// writeResult prints v, or saves it to path when one is given
func writeResult(cmd *cobra.Command, path string, v interface{}) error {
	if path == "" {
		return printJSON(cmd.OutOrStdout(), v)
	}
	if err := utils.SaveJSON(path, v); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Result written to %s\n", path)
	return nil
}

// planFile is the --plan input of the estimate command
type planFile struct {
	Region string `json:"region"`
	Items  []struct {
		Label    string `json:"label"`
		Quantity int    `json:"quantity"`
	} `json:"items"`
}

// loadPlan reads a planting plan written as JSON
func loadPlan(path string) (string, []domain.EstimateItem, error) {
	var plan planFile
	if err := utils.LoadJSON(path, &plan); err != nil {
		return "", nil, err
	}
	items := make([]domain.EstimateItem, 0, len(plan.Items))
	for _, item := range plan.Items {
		items = append(items, domain.EstimateItem{Label: item.Label, Quantity: item.Quantity})
	}
	return plan.Region, items, nil
}

func newRecommendCmd() *cobra.Command {
	var (
		req     domain.RecommendRequest
		weather climateFlags
		out     string
	)

	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Recommend how many of each plant to grow",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			svc, pool, err := newService(cmd.Context(), cfg, &weather)
			if err != nil {
				return err
			}
			defer closePool(pool)

			result, err := svc.Plan(cmd.Context(), req)
			if err != nil {
				return err
			}
			return writeResult(cmd, out, result)
		},
	}

	cmd.Flags().Float64Var(&req.TerraceSize, "size", 0, "terrace area in m²")
	cmd.Flags().Float64Var(&req.Latitude, "lat", 0, "latitude")
	cmd.Flags().Float64Var(&req.Longitude, "lon", 0, "longitude")
	cmd.Flags().Float64Var(&req.WeightSavings, "savings-weight", 0.5, "weight of savings in [0,1]")
	cmd.Flags().Float64Var(&req.WeightCarbon, "carbon-weight", 0.5, "weight of carbon absorption in [0,1]")
	cmd.Flags().Float64Var(&req.Budget, "budget", 0, "money available for growing costs")
	cmd.Flags().StringSliceVar(&req.SelectedCategory, "types", nil, "plant categories, comma separated")
	_ = cmd.MarkFlagRequired("size")
	_ = cmd.MarkFlagRequired("lat")
	_ = cmd.MarkFlagRequired("lon")
	_ = cmd.MarkFlagRequired("budget")
	cmd.Flags().StringVar(&out, "out", "", "write the result to this JSON file")
	_ = cmd.MarkFlagRequired("types")
	weather.register(cmd)
	return cmd
}

// parseItems reads LABEL=QUANTITY pairs
func parseItems(pairs []string) ([]domain.EstimateItem, error) {
	items := make([]domain.EstimateItem, 0, len(pairs))
	for _, pair := range pairs {
		label, qty, ok := strings.Cut(pair, "=")
		label = strings.TrimSpace(label)
		if !ok || label == "" {
			return nil, fmt.Errorf("invalid item %q: want LABEL=QUANTITY", pair)
		}
		n, err := strconv.Atoi(strings.TrimSpace(qty))
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("invalid quantity in %q: want a positive integer", pair)
		}
		items = append(items, domain.EstimateItem{Label: label, Quantity: n})
	}
	return items, nil
}

func newEstimateCmd() *cobra.Command {
	var (
		region   string
		pairs    []string
		planPath string
		out      string
	)

	cmd := &cobra.Command{
		Use:     "estimate",
		Short:   "Estimate the savings of growing fixed quantities",
		Example: "terrace estimate --region Karnataka --item Tomato=4 --item Basil=2\n  terrace estimate --plan plan.json --out savings.json",
		RunE: func(cmd *cobra.Command, _ []string) error {
			items, err := parseItems(pairs)
			if err != nil {
				return err
			}
			if planPath != "" {
				planRegion, planItems, err := loadPlan(planPath)
				if err != nil {
					return err
				}
				items = append(items, planItems...)
				if region == "" {
					region = planRegion
				}
			}
			if len(items) == 0 {
				return fmt.Errorf("no items: pass --item or --plan")
			}
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			svc, pool, err := newService(cmd.Context(), cfg, &climateFlags{offline: true})
			if err != nil {
				return err
			}
			defer closePool(pool)

			result, err := svc.Estimate(cmd.Context(), domain.EstimateRequest{Region: region, Items: items})
			if err != nil {
				return err
			}
			return writeResult(cmd, out, result)
		},
	}

	cmd.Flags().StringVar(&region, "region", "", "state used for market prices (default: DEFAULT_REGION)")
	cmd.Flags().StringArrayVar(&pairs, "item", nil, "LABEL=QUANTITY, repeatable")
	cmd.Flags().StringVar(&planPath, "plan", "", "JSON file with region and items")
	cmd.Flags().StringVar(&out, "out", "", "write the result to this JSON file")
	return cmd
}

func newCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the plant categories of the catalog",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			svc, pool, err := newService(cmd.Context(), cfg, &climateFlags{offline: true})
			if err != nil {
				return err
			}
			defer closePool(pool)

			categories, err := svc.Categories(cmd.Context())
			if err != nil {
				return err
			}
			for _, c := range categories {
				fmt.Fprintln(cmd.OutOrStdout(), c)
			}
			return nil
		},
	}
}

func newPriceCmd() *cobra.Command {
	priceCmd := &cobra.Command{
		Use:   "price",
		Short: "Manage regional market prices (postgres catalog only)",
	}

	setCmd := &cobra.Command{
		Use:     "set LABEL REGION PRICE",
		Short:   "Store the market price of a plant in a region",
		Args:    cobra.ExactArgs(3),
		Example: "terrace price set Tomato Maharashtra 22",
		RunE: func(cmd *cobra.Command, args []string) error {
			price, err := strconv.ParseFloat(args[2], 64)
			if err != nil || price < 0 {
				return fmt.Errorf("invalid price %q: want a non-negative number", args[2])
			}
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if !cfg.UsesPostgres() {
				return fmt.Errorf("price set needs CATALOG_SOURCE=%s", config.CatalogSourcePostgres)
			}
			pool, err := openPool(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer pool.Close()

			repo := postgres.NewCatalogRepository(pool, catalog.Options{DefaultGrowingCost: cfg.DefaultGrowingCost})
			found, err := repo.UpsertRegionalPrice(cmd.Context(), args[0], args[1], price)
			if err != nil {
				return err
			}
			if !found {
				return fmt.Errorf("unknown plant %q", args[0])
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s in %s set to %.2f\n", args[0], args[1], price)
			return nil
		},
	}

	priceCmd.AddCommand(setCmd)
	return priceCmd
}
