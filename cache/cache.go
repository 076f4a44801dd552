// Package cache provides the bounded LRU cache of computed text layouts.
package cache

import (
	"sync"
	"sync/atomic"

	"github.com/gogpu/textlayout/internal/logging"
	"github.com/gogpu/textlayout/internal/lru"
	"github.com/gogpu/textlayout/layout"
)

// DefaultCapacity is the number of layouts kept when no capacity is given.
const DefaultCapacity = 2048

// Stats holds cache statistics.
type Stats struct {
	// Len is the current number of entries.
	Len int
	// Capacity is the maximum number of entries.
	Capacity int
	// Hits is the number of lookups that found an entry.
	Hits uint64
	// Misses is the number of lookups that found nothing.
	Misses uint64
	// HitRate is Hits over all lookups, 0.0 to 1.0.
	HitRate float64
	// Evictions is the number of entries dropped to make room.
	Evictions uint64
}

// LayoutCache maps layout hashes to shared layouts, evicting the least
// recently used entry once full.
//
// A single mutex serializes every access: a hit reorders the recency list,
// so even lookups write. Values are stored and returned as-is; a layout
// handed out by the cache must not be modified.
type LayoutCache struct {
	mu       sync.Mutex
	entries  map[uint64]*lru.Node[uint64, *layout.TextLayout]
	order    lru.List[uint64, *layout.TextLayout]
	capacity int

	// Statistics (atomic so Stats does not take the lock)
	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64
}

// New creates a cache holding up to capacity layouts.
// If capacity <= 0, DefaultCapacity is used.
func New(capacity int) *LayoutCache {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &LayoutCache{
		entries:  make(map[uint64]*lru.Node[uint64, *layout.TextLayout], capacity),
		capacity: capacity,
	}
}

// Get returns the layout stored under key and marks it most recently used.
func (c *LayoutCache) Get(key uint64) (*layout.TextLayout, bool) {
	c.mu.Lock()
	n, ok := c.entries[key]
	if ok {
		c.order.MoveToFront(n)
	}
	c.mu.Unlock()

	if !ok {
		c.misses.Add(1)
		return nil, false
	}
	c.hits.Add(1)
	return n.Value, true
}

// Put stores l under key, replacing any previous entry. When the cache is
// full the least recently used entry is evicted first.
func (c *LayoutCache) Put(key uint64, l *layout.TextLayout) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if n, ok := c.entries[key]; ok {
		n.Value = l
		c.order.MoveToFront(n)
		return
	}

	for c.order.Len() >= c.capacity {
		old := c.order.PopBack()
		if old == nil {
			break
		}
		delete(c.entries, old.Key)
		c.evictions.Add(1)
		logging.Logger().Debug("cache: layout evicted", "key", old.Key, "len", c.order.Len())
	}

	c.entries[key] = c.order.PushFront(key, l)
}

// Delete removes the entry stored under key and reports whether it existed.
func (c *LayoutCache) Delete(key uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	n, ok := c.entries[key]
	if !ok {
		return false
	}
	c.order.Remove(n)
	delete(c.entries, key)
	return true
}

// Clear removes all entries. Statistics are kept.
func (c *LayoutCache) Clear() {
	c.mu.Lock()
	clear(c.entries)
	c.order.Clear()
	c.mu.Unlock()
}

// Len returns the number of cached layouts.
func (c *LayoutCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

// Keys returns the cached keys from most to least recently used. It does
// not affect recency.
func (c *LayoutCache) Keys() []uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	keys := make([]uint64, 0, c.order.Len())
	for n := range c.order.All() {
		keys = append(keys, n.Key)
	}
	return keys
}

// Oldest returns the key that the next eviction would drop.
func (c *LayoutCache) Oldest() (uint64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := c.order.Back()
	if n == nil {
		return 0, false
	}
	return n.Key, true
}

// Cap returns the maximum number of cached layouts.
func (c *LayoutCache) Cap() int {
	return c.capacity
}

// Stats returns current cache statistics.
func (c *LayoutCache) Stats() Stats {
	hits := c.hits.Load()
	misses := c.misses.Load()

	var hitRate float64
	if total := hits + misses; total > 0 {
		hitRate = float64(hits) / float64(total)
	}

	return Stats{
		Len:       c.Len(),
		Capacity:  c.capacity,
		Hits:      hits,
		Misses:    misses,
		HitRate:   hitRate,
		Evictions: c.evictions.Load(),
	}
}

// ResetStats resets all statistics counters to zero.
func (c *LayoutCache) ResetStats() {
	c.hits.Store(0)
	c.misses.Store(0)
	c.evictions.Store(0)
}
