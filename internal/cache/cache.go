package cache

import (
	"cmp"
	"slices"
	"sync"
)

// Cache is a thread-safe map with least-recently-used trimming. Once it
// holds more than its limit, it drops the least recently touched entries
// until it is back at three quarters of the limit.
//
// Cache must not be copied after creation.
type Cache[K comparable, V any] struct {
	mu      sync.Mutex
	entries map[K]*entry[V]
	limit   int
	clock   uint64
	hits    uint64
	misses  uint64
}

type entry[V any] struct {
	value V
	used  uint64
}

// Stats is a snapshot of cache activity.
type Stats struct {
	Len    int
	Limit  int
	Hits   uint64
	Misses uint64
}

// New creates a cache holding up to limit entries. A limit of 0 means the
// cache never trims.
func New[K comparable, V any](limit int) *Cache[K, V] {
	return &Cache[K, V]{
		entries: make(map[K]*entry[V]),
		limit:   limit,
	}
}

// touch marks e as most recently used. Caller holds c.mu.
func (c *Cache[K, V]) touch(e *entry[V]) {
	c.clock++
	e.used = c.clock
}

// Get returns the value stored under key.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		c.misses++
		var zero V
		return zero, false
	}
	c.hits++
	c.touch(e)
	return e.value, true
}

// Set stores value under key, replacing any previous value.
func (c *Cache[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.insert(key, value)
}

// GetOrCreate returns the value under key, calling create to fill it on a
// miss. create runs with the cache locked, so concurrent callers for the
// same key never create twice; create must not use the cache itself.
func (c *Cache[K, V]) GetOrCreate(key K, create func() V) V {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[key]; ok {
		c.hits++
		c.touch(e)
		return e.value
	}
	c.misses++
	v := create()
	c.insert(key, v)
	return v
}

// insert stores value and trims if needed. Caller holds c.mu.
func (c *Cache[K, V]) insert(key K, value V) {
	e := &entry[V]{value: value}
	c.touch(e)
	c.entries[key] = e
	if c.limit > 0 && len(c.entries) > c.limit {
		c.trim()
	}
}

// Delete removes key and reports whether it was present.
func (c *Cache[K, V]) Delete(key K) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, ok := c.entries[key]
	delete(c.entries, key)
	return ok
}

// Clear removes every entry. Counters are kept.
func (c *Cache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.entries)
}

// Len returns the number of entries.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Stats returns a snapshot of the cache size and hit counters.
func (c *Cache[K, V]) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Stats{Len: len(c.entries), Limit: c.limit, Hits: c.hits, Misses: c.misses}
}

// trim drops the least recently used entries down to three quarters of the
// limit. Caller holds c.mu.
func (c *Cache[K, V]) trim() {
	keep := max(c.limit*3/4, 1)
	drop := len(c.entries) - keep
	if drop <= 0 {
		return
	}

	type aged struct {
		key  K
		used uint64
	}
	all := make([]aged, 0, len(c.entries))
	for k, e := range c.entries {
		all = append(all, aged{k, e.used})
	}
	slices.SortFunc(all, func(a, b aged) int { return cmp.Compare(a.used, b.used) })
	for _, a := range all[:drop] {
		delete(c.entries, a.key)
	}
}
