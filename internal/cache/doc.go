// Package cache provides the caching primitives used by the texture engine.
//
// # Rows
//
// Rows assigns scanline rows to a pre-sized arena of buffer slots. It backs
// the per-node output caches of a render call and supports three policies:
// a single slot memoising the last request, one slot per row addressed
// directly, and an N-way LRU.
//
//	rows := cache.NewRows(4, height)
//	slot, dirty := rows.Slot(y)
//	if dirty {
//	    compute(buffers[slot], y)
//	}
//
// # Cache[K, V]
//
// A small thread-safe LRU cache with a soft limit and 25% eviction when the
// limit is exceeded. Used for decoded texture definitions and brightness
// tables.
//
//	c := cache.New[int, *Definition](256)
//	def := c.GetOrCreate(id, decode)
//
// # Thread Safety
//
// Cache is safe for concurrent use and must not be copied after creation.
// Rows belongs to a single render call and is not safe for concurrent use.
package cache
