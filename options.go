package textlayout

import (
	"github.com/gogpu/textlayout/cache"
	"github.com/gogpu/textlayout/shape"
)

// Option configures an Engine during creation.
//
// Example:
//
//	// Engine with its own 256-entry cache
//	e := textlayout.New(textlayout.WithCacheCapacity(256))
//
//	// Engine sharing a cache with another engine
//	c := cache.New(4096)
//	e := textlayout.New(textlayout.WithCache(c))
type Option func(*engineOptions)

// engineOptions holds optional configuration for Engine creation.
type engineOptions struct {
	cache    *cache.LayoutCache
	capacity int
	shaper   shape.Shaper
	shaping  bool
}

// defaultOptions returns the default engine options.
func defaultOptions() engineOptions {
	return engineOptions{
		capacity: cache.DefaultCapacity,
		shaping:  true,
	}
}

// WithCache makes the engine use c instead of a cache of its own. Engines
// sharing a cache must be configured alike: the cache key does not cover
// the engine's shaper.
func WithCache(c *cache.LayoutCache) Option {
	return func(o *engineOptions) {
		o.cache = c
	}
}

// WithCacheCapacity sets the capacity of the engine's own cache.
// It has no effect together with WithCache.
func WithCacheCapacity(n int) Option {
	return func(o *engineOptions) {
		o.capacity = n
	}
}

// WithShaping enables or disables the shaping engine. A disabled engine
// lays every text out with the fallback shaper.
func WithShaping(enabled bool) Option {
	return func(o *engineOptions) {
		o.shaping = enabled
	}
}

// WithShaper replaces the HarfBuzz shaping engine.
func WithShaper(s shape.Shaper) Option {
	return func(o *engineOptions) {
		o.shaper = s
	}
}
