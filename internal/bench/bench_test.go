package bench

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/benchkit/ssrbench/pkg/errors"
)

func quietRunner() *Runner {
	logger := log.New(io.Discard)
	logger.SetLevel(log.FatalLevel)
	return &Runner{Logger: logger}
}

func TestRun_Showdown(t *testing.T) {
	r := quietRunner()
	run, err := r.Run(context.Background(), Options{
		Route:      RouteShowdown,
		Iterations: 5,
		Warmup:     1,
	})
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}

	if run.ID == "" {
		t.Error("run has no ID")
	}
	if run.Route != RouteShowdown {
		t.Errorf("Route = %q, want %q", run.Route, RouteShowdown)
	}
	if run.Iterations != 5 {
		t.Errorf("Iterations = %d, want 5", run.Iterations)
	}
	if run.Stats.Bytes == 0 {
		t.Error("showdown page rendered zero bytes")
	}
	if run.Stats.Min > run.Stats.P50 || run.Stats.P50 > run.Stats.Max {
		t.Errorf("stats out of order: min=%v p50=%v max=%v",
			run.Stats.Min, run.Stats.P50, run.Stats.Max)
	}
	if run.FinishedAt.Before(run.StartedAt) {
		t.Error("FinishedAt before StartedAt")
	}
}

func TestRun_Rows(t *testing.T) {
	r := quietRunner()
	run, err := r.Run(context.Background(), Options{
		Route:      RouteRows,
		Iterations: 3,
		Warmup:     1,
		Rows:       10,
	})
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if run.Stats.Bytes == 0 {
		t.Error("rows page rendered zero bytes")
	}
}

func TestRun_DefaultsApplied(t *testing.T) {
	opts := Options{}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("ValidateAndSetDefaults error: %v", err)
	}
	if opts.Route != RouteShowdown {
		t.Errorf("default route = %q, want %q", opts.Route, RouteShowdown)
	}
	if opts.Iterations != DefaultIterations || opts.Warmup != DefaultWarmup {
		t.Errorf("defaults = (%d, %d), want (%d, %d)",
			opts.Iterations, opts.Warmup, DefaultIterations, DefaultWarmup)
	}
	if opts.Width != 960 || opts.Height != 720 || opts.TileSize != 10 {
		t.Errorf("layout defaults = (%v, %v, %v), want reference dimensions",
			opts.Width, opts.Height, opts.TileSize)
	}
}

func TestRun_InvalidOptions(t *testing.T) {
	r := quietRunner()

	if _, err := r.Run(context.Background(), Options{Route: "/nope"}); err == nil {
		t.Error("unknown route should fail")
	}

	_, err := r.Run(context.Background(), Options{Route: RouteShowdown, Width: -1})
	if err == nil {
		t.Fatal("negative width should fail")
	}
	if !errors.Is(err, errors.ErrCodeInvalidDimension) {
		t.Errorf("error code = %v, want INVALID_DIMENSION", errors.GetCode(err))
	}
}

func TestRun_Cancellation(t *testing.T) {
	r := quietRunner()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := r.Run(ctx, Options{Iterations: 1000}); err == nil {
		t.Error("cancelled context should abort the run")
	}
}

func TestSummarize(t *testing.T) {
	ms := func(n int) time.Duration { return time.Duration(n) * time.Millisecond }
	stats := summarize([]time.Duration{ms(5), ms(1), ms(3), ms(2), ms(4)})

	if stats.Min != ms(1) || stats.Max != ms(5) {
		t.Errorf("min/max = %v/%v, want 1ms/5ms", stats.Min, stats.Max)
	}
	if stats.Mean != ms(3) {
		t.Errorf("mean = %v, want 3ms", stats.Mean)
	}
	if stats.P50 != ms(3) {
		t.Errorf("p50 = %v, want 3ms", stats.P50)
	}
	if stats.P95 != ms(5) {
		t.Errorf("p95 = %v, want 5ms", stats.P95)
	}
}

func TestSummarize_Empty(t *testing.T) {
	got := summarize(nil)
	if got.Min != 0 || got.Max != 0 || got.Mean != 0 || got.P50 != 0 || got.P95 != 0 {
		t.Errorf("empty summarize = %+v, want zero stats", got)
	}
}
