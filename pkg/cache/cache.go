// Package cache provides byte-value caching for rendered pages.
//
// The server renders the showdown page from fixed layout parameters, so the
// output is a pure function of its cache key and can be stored byte-for-byte.
// Backends:
//   - memory: In-process map, the server default
//   - file: Cache directory on disk, survives restarts
//   - redis: Shared cache for multi-instance deployments
//   - null: Caching disabled
//
// Keys are built with [PageKey], which hashes the route and its parameters so
// a parameter change can never collide with another page's entry.
package cache

import (
	"context"
	"time"
)

// DefaultTTL is the default time-to-live for cached pages.
const DefaultTTL = 5 * time.Minute

// Cache is the interface for cache backends.
type Cache interface {
	// Get retrieves a value. The second return is false on a miss.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with the given TTL. A TTL of 0 means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// PageKey builds a cache key for a rendered page from its route and the
// parameters that determine its content.
func PageKey(route string, params ...any) string {
	return hashKey("page:"+route, params...)
}
