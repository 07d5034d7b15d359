// Package results stores benchmark run records.
//
// A Run is the immutable record of one benchmark execution: which page was
// rendered, how many times, and the latency summary. Stores keep runs for
// later comparison across code changes or machines.
//
// Backends:
//   - memory: process-local, the CLI default
//   - mongo: persistent, for tracking runs over time
package results

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a requested run does not exist.
var ErrNotFound = errors.New("run not found")

// Run is one benchmark execution record.
type Run struct {
	ID         string    `json:"id" bson:"_id"`
	Route      string    `json:"route" bson:"route"`
	Iterations int       `json:"iterations" bson:"iterations"`
	Warmup     int       `json:"warmup" bson:"warmup"`
	Stats      Stats     `json:"stats" bson:"stats"`
	StartedAt  time.Time `json:"started_at" bson:"started_at"`
	FinishedAt time.Time `json:"finished_at" bson:"finished_at"`
}

// Stats summarizes per-iteration render latencies and output size.
type Stats struct {
	Min   time.Duration `json:"min" bson:"min"`
	Max   time.Duration `json:"max" bson:"max"`
	Mean  time.Duration `json:"mean" bson:"mean"`
	P50   time.Duration `json:"p50" bson:"p50"`
	P95   time.Duration `json:"p95" bson:"p95"`
	Bytes int           `json:"bytes" bson:"bytes"`
}

// Store is the interface for run storage backends.
type Store interface {
	// Save stores a run. Saving an existing ID overwrites it.
	Save(ctx context.Context, run *Run) error

	// Get retrieves a run by ID. Returns ErrNotFound if absent.
	Get(ctx context.Context, id string) (*Run, error)

	// List returns runs ordered by start time, newest first.
	List(ctx context.Context, limit int) ([]*Run, error)

	// Close releases backend resources.
	Close(ctx context.Context) error
}
