// Package interfaces defines the core interfaces used throughout the application.
// These interfaces allow for dependency injection and make the code testable.
package interfaces

import (
	"context"
	"time"
)

// Cache defines the interface for cache operations.
// Implementations can be Redis, in-memory, or any other caching solution.
//
// Example usage:
//
//	cache := someCache // implements Cache interface
//
//	// Store a value
//	err := cache.Set(ctx, "news:tesla", resultData, 15*time.Minute)
//
//	// Retrieve a value
//	data, err := cache.Get(ctx, "news:tesla")
//	if err != nil {
//		// handle error or cache miss
//	}
//
//	// Delete a value
//	err = cache.Delete(ctx, "news:tesla")
type Cache interface {
	// Get retrieves a value from the cache by key.
	// Returns the cached data as []byte or an error if the key doesn't exist.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value in the cache with the given key and TTL.
	// If ttl is 0, the value should be stored indefinitely.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a value from the cache by key.
	// Returns nil if the key doesn't exist.
	Delete(ctx context.Context, key string) error
}

// JSONCache is an optional extension for backends that store structured
// documents natively (RedisJSON). Callers type-assert from Cache and
// fall back to byte storage when the backend does not implement it.
type JSONCache interface {
	// SetJSON stores a value as a JSON document under key
	SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// GetJSON reads a JSON document into dest
	GetJSON(ctx context.Context, key string, dest interface{}) error
}
