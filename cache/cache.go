package cache

import (
	"fmt"
	"iter"
)

// Cache is a generic fixed-capacity cache with least-recently-used
// eviction. A map provides O(1) key lookup and a doubly-linked recency
// list maintains use order, so every operation runs in O(1).
//
// Cache provides no internal locking and is not safe for concurrent use.
// Callers that share a cache across goroutines must serialize access
// themselves, or give each goroutine its own instance via [Cache.Copy].
//
// The zero value is not usable; create instances with [New] or [MustNew].
type Cache[K comparable, V any] struct {
	capacity int
	entries  map[K]*node[K, V]
	order    recencyList[K, V]

	onEvict func(K, V)

	// Statistics counters. Plain integers: they follow the same
	// external-serialization rule as the rest of the cache.
	hits      uint64
	misses    uint64
	evictions uint64
}

// Option configures a Cache during creation.
type Option[K comparable, V any] func(*Cache[K, V])

// WithEvictFunc sets a callback invoked for each entry removed by the
// capacity rule, after the entry has left the cache. Entries removed by
// [Cache.Delete], [Cache.RemoveOldest] or [Cache.Clear] do not trigger it.
//
// The callback must not call back into the cache.
func WithEvictFunc[K comparable, V any](fn func(key K, value V)) Option[K, V] {
	return func(c *Cache[K, V]) {
		c.onEvict = fn
	}
}

// New creates a cache holding at most capacity entries. Once full,
// inserting a new key evicts the least recently used entry.
//
// New returns an error if capacity is not positive.
func New[K comparable, V any](capacity int, opts ...Option[K, V]) (*Cache[K, V], error) {
	if capacity < 1 {
		return nil, fmt.Errorf("cache: capacity must be positive, got %d", capacity)
	}

	c := &Cache[K, V]{
		capacity: capacity,
		entries:  make(map[K]*node[K, V], capacity),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// MustNew is like New but panics on error.
// Use only when the capacity is a constant known to be valid.
func MustNew[K comparable, V any](capacity int, opts ...Option[K, V]) *Cache[K, V] {
	c, err := New(capacity, opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// Capacity returns the maximum number of entries the cache may hold.
func (c *Cache[K, V]) Capacity() int {
	return c.capacity
}

// Len returns the current number of entries.
func (c *Cache[K, V]) Len() int {
	return len(c.entries)
}

// Get returns the value stored under key and marks the key most recently
// used. Returns (zero, false) if the key is not present; a miss changes
// nothing but the miss counter.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	n, ok := c.entries[key]
	if !ok {
		c.misses++
		var zero V
		return zero, false
	}

	c.order.MoveToFront(n)
	c.hits++
	return n.value, true
}

// GetOrDefault is like Get but returns def when key is not present.
// A miss does not insert def.
func (c *Cache[K, V]) GetOrDefault(key K, def V) V {
	if v, ok := c.Get(key); ok {
		return v
	}
	return def
}

// GetOrInsert is like Get but inserts def under key when the key is not
// present, evicting the least recently used entry if the cache is full,
// and returns def.
func (c *Cache[K, V]) GetOrInsert(key K, def V) V {
	if n, ok := c.entries[key]; ok {
		c.order.MoveToFront(n)
		c.hits++
		return n.value
	}

	c.misses++
	c.insert(key, def)
	return def
}

// GetOrCompute is like Get but on a miss calls compute, stores the result
// and returns it. If compute fails nothing is stored and the error is
// returned. Use this to memoize values that are expensive to build, such
// as compiled templates.
func (c *Cache[K, V]) GetOrCompute(key K, compute func() (V, error)) (V, error) {
	if n, ok := c.entries[key]; ok {
		c.order.MoveToFront(n)
		c.hits++
		return n.value, nil
	}

	c.misses++
	v, err := compute()
	if err != nil {
		var zero V
		return zero, err
	}
	c.insert(key, v)
	return v, nil
}

// Peek returns the value stored under key without marking it used.
// Peek does not touch the statistics counters.
func (c *Cache[K, V]) Peek(key K) (V, bool) {
	if n, ok := c.entries[key]; ok {
		return n.value, true
	}
	var zero V
	return zero, false
}

// Contains reports whether key is in the cache. Like Peek it is a pure
// probe: the recency order is unchanged.
func (c *Cache[K, V]) Contains(key K) bool {
	_, ok := c.entries[key]
	return ok
}

// Set stores value under key and marks the key most recently used.
//
// Overwriting an existing key updates it in place; no eviction happens in
// that case even when the cache is full. Inserting a new key into a full
// cache first evicts the least recently used entry.
func (c *Cache[K, V]) Set(key K, value V) {
	if n, ok := c.entries[key]; ok {
		n.value = value
		c.order.MoveToFront(n)
		return
	}
	c.insert(key, value)
}

// Delete removes key from the cache.
// Returns true if an entry was found and removed.
func (c *Cache[K, V]) Delete(key K) bool {
	n, ok := c.entries[key]
	if !ok {
		return false
	}

	delete(c.entries, key)
	c.order.Remove(n)
	return true
}

// Oldest returns the least recently used entry, the next eviction
// candidate, without removing it. Returns zero values and false when the
// cache is empty.
func (c *Cache[K, V]) Oldest() (K, V, bool) {
	n, ok := c.order.Oldest()
	if !ok {
		var zeroK K
		var zeroV V
		return zeroK, zeroV, false
	}
	return n.key, n.value, true
}

// RemoveOldest removes and returns the least recently used entry.
// Returns zero values and false when the cache is empty. The removal is
// not counted as an eviction and does not trigger the evict callback.
func (c *Cache[K, V]) RemoveOldest() (K, V, bool) {
	n, ok := c.order.RemoveOldest()
	if !ok {
		var zeroK K
		var zeroV V
		return zeroK, zeroV, false
	}
	delete(c.entries, n.key)
	return n.key, n.value, true
}

// Clear removes all entries. Capacity and statistics are unchanged.
func (c *Cache[K, V]) Clear() {
	c.entries = make(map[K]*node[K, V], c.capacity)
	c.order.Clear()
}

// Keys returns an iterator over the cache's keys from most recently used
// to least recently used. Every call produces an independent pass over
// the entries at iteration time.
//
// The cache must not be mutated while iterating.
func (c *Cache[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for n := c.order.head; n != nil; n = n.next {
			if !yield(n.key) {
				return
			}
		}
	}
}

// KeysBackward returns an iterator over the cache's keys from least
// recently used to most recently used; this is the order entries would be
// evicted in.
//
// The cache must not be mutated while iterating.
func (c *Cache[K, V]) KeysBackward() iter.Seq[K] {
	return func(yield func(K) bool) {
		for n := c.order.tail; n != nil; n = n.prev {
			if !yield(n.key) {
				return
			}
		}
	}
}

// All returns an iterator over key/value pairs from most recently used to
// least recently used. Iterating does not count as use.
//
// The cache must not be mutated while iterating.
func (c *Cache[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for n := c.order.head; n != nil; n = n.next {
			if !yield(n.key, n.value) {
				return
			}
		}
	}
}

// Copy returns a new independent cache with the same capacity, entries
// and recency order. The copy shares no mutable state with the original:
// mutating either cache never affects the other. The evict callback is
// carried over; statistics counters start at zero.
func (c *Cache[K, V]) Copy() *Cache[K, V] {
	dup := &Cache[K, V]{
		capacity: c.capacity,
		entries:  make(map[K]*node[K, V], c.capacity),
		onEvict:  c.onEvict,
	}

	// Walk oldest to newest so that pushing front rebuilds the order.
	for n := c.order.tail; n != nil; n = n.prev {
		dup.entries[n.key] = dup.order.PushFront(n.key, n.value)
	}
	return dup
}

// Stats contains cache statistics.
type Stats struct {
	// Len is the current number of entries.
	Len int
	// Capacity is the maximum number of entries.
	Capacity int
	// Hits is the number of lookups that found an entry.
	Hits uint64
	// Misses is the number of lookups that found nothing.
	Misses uint64
	// HitRate is the fraction of lookups that hit, 0.0 to 1.0.
	HitRate float64
	// Evictions is the number of entries removed by the capacity rule.
	Evictions uint64
}

// Stats returns a snapshot of the cache statistics. Hits and misses are
// counted by Get, GetOrDefault, GetOrInsert and GetOrCompute; Peek and
// Contains are probes and count nothing.
func (c *Cache[K, V]) Stats() Stats {
	var hitRate float64
	if total := c.hits + c.misses; total > 0 {
		hitRate = float64(c.hits) / float64(total)
	}

	return Stats{
		Len:       len(c.entries),
		Capacity:  c.capacity,
		Hits:      c.hits,
		Misses:    c.misses,
		HitRate:   hitRate,
		Evictions: c.evictions,
	}
}

// ResetStats resets all statistics counters to zero.
func (c *Cache[K, V]) ResetStats() {
	c.hits = 0
	c.misses = 0
	c.evictions = 0
}

// insert adds a new key, evicting the least recently used entry first
// when the cache is full. The caller has checked that key is absent.
func (c *Cache[K, V]) insert(key K, value V) {
	for len(c.entries) >= c.capacity {
		if !c.evictOldest() {
			break
		}
	}
	c.entries[key] = c.order.PushFront(key, value)
}

// evictOldest removes the tail entry and reports it to the evict
// callback. Returns false when the cache is already empty.
func (c *Cache[K, V]) evictOldest() bool {
	n, ok := c.order.RemoveOldest()
	if !ok {
		return false
	}

	delete(c.entries, n.key)
	c.evictions++
	if c.onEvict != nil {
		c.onEvict(n.key, n.value)
	}
	return true
}
