package common

import "time"

// CacheInterface is the cache the readiness path reads through and the write
// paths invalidate. CacheService backs it in-process; RedisCacheService backs
// it when running multiple replicas.
type CacheInterface interface {
	// Set stores value under key for the given duration.
	Set(key string, value interface{}, duration time.Duration)

	// Get returns the cached value and whether key was present.
	Get(key string) (interface{}, bool)

	// Delete drops key. Qualification writes call this to invalidate the
	// touched wing's readiness report.
	Delete(key string)

	// GetOrSet returns the cached value, or runs loader and caches its result.
	GetOrSet(key string, duration time.Duration, loader func() (any, error)) (interface{}, error)

	// Close releases the backing connection, if any.
	Close() error
}
