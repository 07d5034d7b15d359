// Package spiral generates tile layouts along an expanding Archimedean
// spiral, clipped to a bounding rectangle.
//
// The generator samples a point per iteration while advancing an angle and a
// radius together, keeping every sample that leaves a full tile inside the
// rectangle. The resulting positions are continuous coordinates (not snapped
// to a grid) and are returned in generation order, roughly center-outward.
//
// # Usage
//
//	l := spiral.Generate(960, 720, 10)
//	for _, p := range l.Tiles {
//	    // place a TileSize × TileSize tile at (p.X, p.Y)
//	}
//
// Generation is a pure function of its inputs: no retained state, no
// randomness, and identical inputs always yield identical layouts. Concurrent
// calls are safe.
package spiral

import "math"

// Default sampling constants. These match the reference visual output;
// changing them changes every generated layout.
const (
	// DefaultAngularStep is the angle advance per sample, in radians.
	DefaultAngularStep = 0.2

	// DefaultRadialGrowth is the fraction of the tile size added to the
	// sampling radius per iteration.
	DefaultRadialGrowth = 0.015
)

// Point is the top-left corner of a square tile.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Layout is the result of one generation run: the emitted tile positions in
// generation order, plus the parameters they were generated for.
type Layout struct {
	Tiles    []Point `json:"tiles"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	TileSize float64 `json:"tile_size"`
}

// Options controls the spiral sampling path. The zero value is not useful;
// use DefaultOptions as a starting point.
type Options struct {
	// AngularStep is the radians added to the sampling angle per iteration.
	AngularStep float64

	// RadialGrowth is the fraction of the tile size added to the sampling
	// radius per iteration.
	RadialGrowth float64
}

// DefaultOptions returns the sampling constants of the reference layout.
func DefaultOptions() Options {
	return Options{
		AngularStep:  DefaultAngularStep,
		RadialGrowth: DefaultRadialGrowth,
	}
}

// Generate produces the tile layout for a width×height rectangle and the
// given tile edge length, using the default sampling constants.
//
// Degenerate inputs are not an error: if tileSize >= min(width, height)/2,
// or any input is non-positive, the returned layout has no tiles.
func Generate(width, height, tileSize float64) Layout {
	return GenerateWith(width, height, tileSize, DefaultOptions())
}

// GenerateWith is Generate with explicit sampling options.
//
// The sampling loop runs while radius < min(width, height)/2. Each iteration
// samples one point on the spiral and keeps it iff the full tile fits inside
// the rectangle:
//
//	0 <= x <= width-tileSize && 0 <= y <= height-tileSize
//
// Kept points are appended in sampling order; a position sampled twice is
// emitted twice. A non-positive tileSize or RadialGrowth would stall the
// radius, so the loop refuses to run unless the per-iteration radius growth
// is strictly positive. Tiles at least half the size of the shorter rectangle
// edge never fit the spiral, so such inputs short-circuit to an empty layout.
func GenerateWith(width, height, tileSize float64, opts Options) Layout {
	l := Layout{Width: width, Height: height, TileSize: tileSize}

	bound := math.Min(width, height) / 2
	growth := tileSize * opts.RadialGrowth
	if bound <= 0 || growth <= 0 || tileSize >= bound {
		return l
	}

	centerX := width / 2
	centerY := height / 2

	angle := 0.0
	radius := 0.0
	for radius < bound {
		x := centerX + math.Cos(angle)*radius
		y := centerY + math.Sin(angle)*radius

		if x >= 0 && x <= width-tileSize && y >= 0 && y <= height-tileSize {
			l.Tiles = append(l.Tiles, Point{X: x, Y: y})
		}

		angle += opts.AngularStep
		radius += growth
	}

	return l
}

// MaxIterations returns an upper bound on the number of sampling iterations
// for the given parameters, or 0 if the loop would not run. Useful for
// sizing buffers and for sanity checks in benchmarks.
func MaxIterations(width, height, tileSize float64, opts Options) int {
	bound := math.Min(width, height) / 2
	growth := tileSize * opts.RadialGrowth
	if bound <= 0 || growth <= 0 {
		return 0
	}
	return int(math.Ceil(bound / growth))
}
