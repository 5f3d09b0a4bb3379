// Package cache stores successful upstream response bodies keyed by request URL.
package cache

import "context"

// EvictCallback is called when an entry is evicted from the cache.
// Providers that delegate expiry to an external server (Redis) never call it.
type EvictCallback func(key string, value []byte)

// Logger receives errors from providers whose operations can fail at runtime.
type Logger interface {
	Error(msg string, err error)
}

// Cache is a bounded key-value store with per-entry TTL.
type Cache interface {
	// Get retrieves a value by key. Returns the value and true if found, or nil and false if not.
	Get(ctx context.Context, key string) ([]byte, bool)

	// Set stores a value with the given key, overwriting any previous value.
	Set(ctx context.Context, key string, value []byte)

	// Len returns the number of live entries.
	Len() int

	// Close releases any resources held by the cache (e.g., network connections).
	Close() error
}
