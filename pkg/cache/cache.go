// Package cache provides pluggable byte caches for conversion and
// render results.
//
// Three backends implement the Cache interface: FileCache for CLI
// usage, RedisCache for server deployments where replicas share one
// cache, and NullCache to disable caching entirely. Keys are derived
// by a Keyer so that every surface addresses the same entries.
package cache

import (
	"context"
	"time"
)

// Default TTLs per entry kind. Entries are content-addressed, so
// expiry bounds storage growth rather than refreshing stale content.
const (
	// TTLConversion is the default lifetime of converted graphs.
	TTLConversion = 24 * time.Hour

	// TTLRender is the default lifetime of rendered artifacts. Renders
	// are more expensive to recompute than conversions, so they live
	// longer.
	TTLRender = 7 * 24 * time.Hour
)

// Cache is a byte-oriented cache with per-entry TTL.
//
// Implementations must be safe for concurrent use. Get reports a miss
// as (nil, false, nil); the error return is reserved for backend
// failures. A zero TTL stores the entry without expiration.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Keyer derives cache keys for the two artifact kinds this tool
// produces. Centralizing derivation keeps CLI and server entries
// interchangeable: the same document converted on either surface hits
// the same key.
type Keyer interface {
	// ConversionKey identifies a converted graph by its format and the
	// hash of the analysis document it was converted from.
	ConversionKey(format, docHash string) string

	// RenderKey identifies a rendered artifact by the hash of the
	// graph document and the options that affect rendered output.
	RenderKey(graphHash string, opts RenderKeyOpts) string
}

// RenderKeyOpts are the render options that change the artifact bytes.
type RenderKeyOpts struct {
	Format    string // "dot", "svg", or "png"
	Direction string // graphviz rankdir, e.g. "TB" or "LR"
	Detailed  bool   // section counts in labels, edge type labels
}
