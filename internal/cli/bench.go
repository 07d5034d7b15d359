package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/benchkit/ssrbench/internal/bench"
	"github.com/benchkit/ssrbench/internal/config"
	"github.com/benchkit/ssrbench/internal/results"
)

// benchCommand creates the bench command running in-process benchmarks.
func (c *CLI) benchCommand() *cobra.Command {
	var (
		configPath string
		route      string
		iterations int
		warmup     int
		rows       int
		store      string
	)

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Run an in-process render benchmark",
		Long: `Render one of the benchmark pages repeatedly and report latency statistics.

The benchmark runs in-process, without HTTP, so it measures page generation
alone. Results are saved to the configured results store for later comparison.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if store != "" {
				cfg.Results.Backend = store
				if err := cfg.Validate(); err != nil {
					return err
				}
			}

			runStore, err := c.newResultsStore(ctx, cfg)
			if err != nil {
				return fmt.Errorf("create results store: %w", err)
			}
			defer runStore.Close(ctx)

			opts := bench.Options{
				Route:      route,
				Iterations: iterations,
				Warmup:     warmup,
				Rows:       rows,
				Width:      cfg.Showdown.Width,
				Height:     cfg.Showdown.Height,
				TileSize:   cfg.Showdown.TileSize,
			}

			spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Benchmarking %s...", route))
			spinner.Start()

			p := newProgress(c.Logger)
			run, err := bench.NewRunner(c.Logger).Run(ctx, opts)
			if err != nil {
				spinner.StopWithError(fmt.Sprintf("Benchmark failed: %v", err))
				return err
			}
			spinner.Stop()
			p.done(fmt.Sprintf("Rendered %d iterations", run.Iterations))

			if err := runStore.Save(ctx, run); err != nil {
				printWarning("Could not save run: %v", err)
			} else {
				printDetail("Saved run %s (%s store)", run.ID, cfg.Results.Backend)
			}

			printRun(run)
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to TOML config file")
	cmd.Flags().StringVar(&route, "route", bench.RouteShowdown, "page to benchmark: /, /ssr, or /ssr-performance-showdown")
	cmd.Flags().IntVar(&iterations, "iterations", bench.DefaultIterations, "number of measured render iterations")
	cmd.Flags().IntVar(&warmup, "warmup", bench.DefaultWarmup, "number of unmeasured warmup iterations")
	cmd.Flags().IntVar(&rows, "rows", 0, "row count for the /ssr page (0 = default 50)")
	cmd.Flags().StringVar(&store, "store", "", "results store: memory or mongo (overrides config)")

	return cmd
}

// newResultsStore builds the results backend selected by the configuration.
func (c *CLI) newResultsStore(ctx context.Context, cfg config.Config) (results.Store, error) {
	switch cfg.Results.Backend {
	case config.ResultsMemory:
		return results.NewMemoryStore(), nil
	case config.ResultsMongo:
		return results.NewMongoStore(ctx, results.MongoConfig{
			URI:      cfg.Results.Mongo.URI,
			Database: cfg.Results.Mongo.Database,
		})
	default:
		return nil, fmt.Errorf("unknown results backend %q", cfg.Results.Backend)
	}
}

// printRun prints the benchmark summary.
func printRun(run *results.Run) {
	fmt.Println(StyleTitle.Render("Benchmark " + run.Route))
	printKeyValue("iterations", fmt.Sprintf("%d (+%d warmup)", run.Iterations, run.Warmup))
	printKeyValue("page size", fmt.Sprintf("%d bytes", run.Stats.Bytes))
	printKeyValue("min", run.Stats.Min.String())
	printKeyValue("p50", run.Stats.P50.String())
	printKeyValue("mean", run.Stats.Mean.String())
	printKeyValue("p95", run.Stats.P95.String())
	printKeyValue("max", run.Stats.Max.String())
}
