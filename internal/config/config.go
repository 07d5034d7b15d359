// Package config loads the server configuration from a TOML file.
//
// Every field has a default, so a missing config file yields a fully usable
// configuration. CLI flags override whatever the file sets; the merge happens
// in the serve command, not here.
package config

import (
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/benchkit/ssrbench/pkg/errors"
)

// Cache backend names accepted in [cache].backend.
const (
	CacheNone   = "none"
	CacheMemory = "memory"
	CacheFile   = "file"
	CacheRedis  = "redis"
)

// Results backend names accepted in [results].backend.
const (
	ResultsMemory = "memory"
	ResultsMongo  = "mongo"
)

// Config is the full server configuration.
type Config struct {
	Server   Server   `toml:"server"`
	Cache    Cache    `toml:"cache"`
	Results  Results  `toml:"results"`
	Showdown Showdown `toml:"showdown"`
}

// Server holds HTTP listener settings.
type Server struct {
	Addr string `toml:"addr"`
}

// Cache selects and configures the render cache backend.
type Cache struct {
	Backend string   `toml:"backend"`
	Dir     string   `toml:"dir"`
	TTL     duration `toml:"ttl"`
	Redis   Redis    `toml:"redis"`
}

// Redis holds connection settings for the redis cache backend.
type Redis struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// Results selects and configures the benchmark results store.
type Results struct {
	Backend string `toml:"backend"`
	Mongo   Mongo  `toml:"mongo"`
}

// Mongo holds connection settings for the mongo results backend.
type Mongo struct {
	URI      string `toml:"uri"`
	Database string `toml:"database"`
}

// Showdown holds the layout parameters of the performance showdown page.
type Showdown struct {
	Width    float64 `toml:"width"`
	Height   float64 `toml:"height"`
	TileSize float64 `toml:"tile_size"`
}

// duration wraps time.Duration for TOML decoding of strings like "5m".
type duration struct {
	time.Duration
}

func (d *duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = parsed
	return nil
}

// Default returns the configuration used when no file is present: in-memory
// cache, in-memory results store, and the reference showdown dimensions.
func Default() Config {
	return Config{
		Server: Server{Addr: ":8080"},
		Cache: Cache{
			Backend: CacheMemory,
			TTL:     duration{5 * time.Minute},
			Redis:   Redis{Addr: "localhost:6379"},
		},
		Results: Results{
			Backend: ResultsMemory,
			Mongo: Mongo{
				URI:      "mongodb://localhost:27017",
				Database: "ssrbench",
			},
		},
		Showdown: Showdown{
			Width:    960,
			Height:   720,
			TileSize: 10,
		},
	}
}

// Load reads the config file at path, layered over Default. An empty path
// returns the defaults; a missing file at an explicit path is an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config %s", path)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate rejects configurations the server cannot start with.
func (c *Config) Validate() error {
	switch c.Cache.Backend {
	case CacheNone, CacheMemory, CacheFile, CacheRedis:
	default:
		return errors.New(errors.ErrCodeInvalidConfig, "unknown cache backend %q", c.Cache.Backend)
	}

	switch c.Results.Backend {
	case ResultsMemory, ResultsMongo:
	default:
		return errors.New(errors.ErrCodeInvalidConfig, "unknown results backend %q", c.Results.Backend)
	}

	return errors.ValidateDimensions(c.Showdown.Width, c.Showdown.Height, c.Showdown.TileSize)
}

// CacheTTL returns the configured cache TTL.
func (c *Config) CacheTTL() time.Duration { return c.Cache.TTL.Duration }
