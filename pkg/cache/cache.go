// Package cache stores rendered figure artifacts so repeated requests for
// the same figure skip the plotting engine.
//
// # Overview
//
// Rendering is deterministic: the same style, grid shape, format, and
// resolution always produce the same bytes. That makes artifacts ideal
// cache entries. Keys are derived by hashing those inputs ([ArtifactKey]),
// so any style tweak naturally misses the cache.
//
// Three backends implement [Cache]:
//
//   - [FileCache]: cache directory on disk, the CLI default
//   - [RedisCache]: shared cache for the preview server
//   - [NullCache]: disables caching
//
// All backends are safe for concurrent use.
package cache

import (
	"context"
	"time"
)

// Cache stores rendered artifacts by key.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key
	// was present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A zero ttl means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// ArtifactKey derives the cache key for a rendered figure artifact.
// styleHash should be a stable hash of the full style (see Hash); shape is
// the "RxC" grid string; format the output format name; dpi the raster
// resolution (pass 0 for vector formats).
func ArtifactKey(styleHash, shape, format string, dpi int) string {
	return hashKey("artifact", styleHash, shape, format, dpi)
}
