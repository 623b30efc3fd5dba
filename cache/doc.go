// Package cache provides a bounded, recency-ordered key/value cache.
//
// The cache holds a fixed number of entries and forgets the least
// recently used ones first. It exists to bound the memory spent on
// values that are looked up repeatedly but expensive to rebuild, such as
// templates compiled from a named source.
//
// # Cache[K, V]
//
// A map gives O(1) lookups and a doubly-linked recency list keeps use
// order, the classic LRU pairing:
//
//	c := cache.MustNew[string, int](3)
//	c.Set("A", 0)
//	c.Set("B", 1)
//	c.Set("C", 2)
//	c.Get("A")      // A is now the most recent
//	c.Set("D", 3)   // evicts B, the least recent
//
// Reading an entry with Get counts as use; Peek and Contains do not.
// Keys, KeysBackward and All iterate in recency order without disturbing
// it.
//
// # Memoization
//
// GetOrCompute builds missing values on demand and caches only
// successful results:
//
//	tmpl, err := c.GetOrCompute(name, func() (*Template, error) {
//	    return compile(name)
//	})
//
// # Thread Safety
//
// Cache performs no locking and is not safe for concurrent use. Share an
// instance only behind external synchronization, or hand each goroutine
// its own copy via Copy.
package cache
