package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/benchkit/ssrbench/internal/config"
	"github.com/benchkit/ssrbench/internal/server"
	"github.com/benchkit/ssrbench/pkg/cache"
)

// serveCommand creates the serve command running the HTTP server.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		configPath string
		addr       string
		noCache    bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the SSR benchmark HTTP server",
		Long: `Serve the benchmark pages over HTTP.

Routes:
  /                          reactive counter home page
  /ssr                       SSR stress page (50 rows, ?rows= to override)
  /ssr-performance-showdown  spiral tile layout page
  /healthz, /version         operational endpoints

Configuration is read from --config (TOML); flags override the file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Server.Addr = addr
			}
			if noCache {
				cfg.Cache.Backend = config.CacheNone
			}

			renderCache, err := c.newRenderCache(cmd.Context(), cfg)
			if err != nil {
				return fmt.Errorf("create cache: %w", err)
			}
			defer renderCache.Close()

			c.Logger.Debug("configured",
				"addr", cfg.Server.Addr,
				"cache", cfg.Cache.Backend,
				"showdown", fmt.Sprintf("%vx%vx%v",
					cfg.Showdown.Width, cfg.Showdown.Height, cfg.Showdown.TileSize))

			return server.New(cfg, renderCache, c.Logger).Run(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to TOML config file")
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the render cache")

	return cmd
}

// newRenderCache builds the cache backend selected by the configuration.
func (c *CLI) newRenderCache(ctx context.Context, cfg config.Config) (cache.Cache, error) {
	switch cfg.Cache.Backend {
	case config.CacheNone:
		return cache.NewNullCache(), nil
	case config.CacheMemory:
		return cache.NewMemoryCache(), nil
	case config.CacheFile:
		dir := cfg.Cache.Dir
		if dir == "" {
			d, err := cacheDir()
			if err != nil {
				return nil, err
			}
			dir = d
		}
		return cache.NewFileCache(dir)
	case config.CacheRedis:
		return cache.NewRedisCache(ctx, cache.RedisConfig{
			Addr:     cfg.Cache.Redis.Addr,
			Password: cfg.Cache.Redis.Password,
			DB:       cfg.Cache.Redis.DB,
		})
	default:
		return nil, fmt.Errorf("unknown cache backend %q", cfg.Cache.Backend)
	}
}
