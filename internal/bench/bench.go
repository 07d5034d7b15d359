// Package bench runs in-process render benchmarks.
//
// The runner renders one of the benchmark pages repeatedly and records
// per-iteration latency, producing a results.Run record. Rendering happens
// in-process (no HTTP), so the numbers measure page generation alone, without
// network or handler overhead.
package bench

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/benchkit/ssrbench/internal/results"
	"github.com/benchkit/ssrbench/pkg/errors"
	"github.com/benchkit/ssrbench/pkg/page"
	"github.com/benchkit/ssrbench/pkg/spiral"
)

// Benchmarkable routes.
const (
	RouteHome     = "/"
	RouteRows     = "/ssr"
	RouteShowdown = "/ssr-performance-showdown"
)

// Default run parameters.
const (
	DefaultIterations = 100
	DefaultWarmup     = 10
)

// Options configures one benchmark run.
type Options struct {
	Route      string
	Iterations int
	Warmup     int

	// Rows is the row count for the /ssr page.
	Rows int

	// Width, Height, TileSize are the layout parameters for the showdown page.
	Width    float64
	Height   float64
	TileSize float64
}

// ValidateAndSetDefaults fills zero fields with defaults and rejects
// parameters the runner cannot execute.
func (o *Options) ValidateAndSetDefaults() error {
	if o.Route == "" {
		o.Route = RouteShowdown
	}
	if o.Iterations == 0 {
		o.Iterations = DefaultIterations
	}
	if o.Warmup == 0 {
		o.Warmup = DefaultWarmup
	}
	if o.Rows == 0 {
		o.Rows = page.DefaultRowCount
	}
	if o.Width == 0 {
		o.Width = 960
	}
	if o.Height == 0 {
		o.Height = 720
	}
	if o.TileSize == 0 {
		o.TileSize = 10
	}

	if o.Iterations < 0 || o.Warmup < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "iterations and warmup must be non-negative")
	}
	switch o.Route {
	case RouteHome, RouteRows, RouteShowdown:
	default:
		return errors.New(errors.ErrCodeInvalidInput, "unknown benchmark route %q", o.Route)
	}
	if o.Route == RouteShowdown {
		return errors.ValidateDimensions(o.Width, o.Height, o.TileSize)
	}
	return nil
}

// renderFunc returns the renderer for the configured route.
func (o *Options) renderFunc() func() []byte {
	switch o.Route {
	case RouteHome:
		return func() []byte { return page.RenderHome(0) }
	case RouteRows:
		rows := o.Rows
		return func() []byte { return page.RenderRows(rows) }
	default:
		// The layout is part of the measured work: the reference page
		// regenerates the spiral on every request.
		w, h, t := o.Width, o.Height, o.TileSize
		return func() []byte { return page.RenderShowdown(spiral.Generate(w, h, t)) }
	}
}

// Runner executes benchmark runs. It is stateless except for the logger;
// concurrent Run calls with different options are independent.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. A nil logger falls back to the default logger.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Run executes the benchmark and returns its record. The context is checked
// between iterations, so cancellation aborts promptly without tearing down a
// render mid-flight.
func (r *Runner) Run(ctx context.Context, opts Options) (*results.Run, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	render := opts.renderFunc()
	run := &results.Run{
		ID:         uuid.NewString(),
		Route:      opts.Route,
		Iterations: opts.Iterations,
		Warmup:     opts.Warmup,
		StartedAt:  time.Now(),
	}

	r.Logger.Debug("starting benchmark",
		"route", opts.Route,
		"iterations", opts.Iterations,
		"warmup", opts.Warmup)

	for i := 0; i < opts.Warmup; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		render()
	}

	latencies := make([]time.Duration, 0, opts.Iterations)
	size := 0
	for i := 0; i < opts.Iterations; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		start := time.Now()
		out := render()
		latencies = append(latencies, time.Since(start))
		size = len(out)
	}

	run.FinishedAt = time.Now()
	run.Stats = summarize(latencies)
	run.Stats.Bytes = size

	r.Logger.Info("benchmark complete",
		"route", opts.Route,
		"iterations", opts.Iterations,
		"mean", run.Stats.Mean,
		"p95", run.Stats.P95,
		"bytes", run.Stats.Bytes,
		"duration", run.FinishedAt.Sub(run.StartedAt))

	return run, nil
}

// summarize computes latency statistics. Zero iterations yield zero stats.
func summarize(latencies []time.Duration) results.Stats {
	if len(latencies) == 0 {
		return results.Stats{}
	}

	sorted := make([]time.Duration, len(latencies))
	copy(sorted, latencies)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	var total time.Duration
	for _, d := range sorted {
		total += d
	}

	return results.Stats{
		Min:  sorted[0],
		Max:  sorted[len(sorted)-1],
		Mean: total / time.Duration(len(sorted)),
		P50:  percentile(sorted, 50),
		P95:  percentile(sorted, 95),
	}
}

// percentile returns the nearest-rank percentile of a sorted slice.
func percentile(sorted []time.Duration, p int) time.Duration {
	idx := (p*len(sorted) + 99) / 100
	if idx > 0 {
		idx--
	}
	return sorted[idx]
}
