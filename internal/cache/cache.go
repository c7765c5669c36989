package cache

import "sync"

// Cache is a thread-safe LRU cache bounded by the total weight of its
// values. Each value is weighed once when stored; when the sum exceeds the
// budget, least recently used entries are evicted until it fits again. The
// most recent entry is always kept, even if it alone exceeds the budget.
//
// Cache must not be copied after creation.
type Cache[K comparable, V any] struct {
	mu      sync.Mutex
	entries map[K]*entry[K, V]
	order   lruList[K]
	weigh   func(V) int
	budget  int
	weight  int

	hits, misses, evictions uint64
}

type entry[K comparable, V any] struct {
	value  V
	weight int
	node   *lruNode[K]
}

// New creates a cache holding values up to a total weight of budget, as
// measured by weigh. A nil weigh counts every value as 1, so budget becomes
// an entry count. A budget of 0 means unlimited.
func New[K comparable, V any](budget int, weigh func(V) int) *Cache[K, V] {
	if weigh == nil {
		weigh = func(V) int { return 1 }
	}
	return &Cache[K, V]{
		entries: make(map[K]*entry[K, V]),
		weigh:   weigh,
		budget:  budget,
	}
}

// Get returns the value stored under key and marks it recently used.
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
	c.order.MoveToFront(e.node)
	return e.value, true
}

// Contains reports whether key is cached, without touching the recency
// order or the hit statistics.
func (c *Cache[K, V]) Contains(key K) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.entries[key]
	return ok
}

// Set stores value under key, replacing any previous value.
func (c *Cache[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.store(key, value)
}

// GetOrCreate returns the value stored under key, or calls create and
// stores its result. create runs under the cache lock, so concurrent
// callers for the same key build the value once. A create error is returned
// as is and nothing is stored.
func (c *Cache[K, V]) GetOrCreate(key K, create func() (V, error)) (V, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[key]; ok {
		c.hits++
		c.order.MoveToFront(e.node)
		return e.value, nil
	}
	c.misses++

	value, err := create()
	if err != nil {
		var zero V
		return zero, err
	}
	c.store(key, value)
	return value, nil
}

// Delete removes key. It reports whether the key was present.
func (c *Cache[K, V]) Delete(key K) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return false
	}
	c.remove(key, e)
	return true
}

// Clear removes every entry. Counters are kept.
func (c *Cache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[K]*entry[K, V])
	c.order = lruList[K]{}
	c.weight = 0
}

// Len returns the number of entries.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.entries)
}

// Budget returns the weight budget given to New.
func (c *Cache[K, V]) Budget() int {
	return c.budget
}

// Stats returns a snapshot of the cache counters.
func (c *Cache[K, V]) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := Stats{
		Len:       len(c.entries),
		Weight:    c.weight,
		Budget:    c.budget,
		Hits:      c.hits,
		Misses:    c.misses,
		Evictions: c.evictions,
	}
	if total := c.hits + c.misses; total > 0 {
		s.HitRate = float64(c.hits) / float64(total)
	}
	return s
}

// store inserts or replaces key and evicts down to the budget.
// Caller must hold c.mu.
func (c *Cache[K, V]) store(key K, value V) {
	if old, ok := c.entries[key]; ok {
		c.remove(key, old)
	}
	w := c.weigh(value)
	c.entries[key] = &entry[K, V]{
		value:  value,
		weight: w,
		node:   c.order.PushFront(key),
	}
	c.weight += w
	c.evict()
}

// evict drops least recently used entries until the total weight fits the
// budget or one entry is left. Caller must hold c.mu.
func (c *Cache[K, V]) evict() {
	if c.budget <= 0 {
		return
	}
	for c.weight > c.budget && c.order.Len() > 1 {
		key, _ := c.order.Oldest()
		c.remove(key, c.entries[key])
		c.evictions++
	}
}

// remove drops e, stored under key. Caller must hold c.mu.
func (c *Cache[K, V]) remove(key K, e *entry[K, V]) {
	c.order.Remove(e.node)
	c.weight -= e.weight
	delete(c.entries, key)
}

// Stats contains cache statistics.
type Stats struct {
	// Len is the current number of entries.
	Len int
	// Weight is the summed weight of all entries.
	Weight int
	// Budget is the weight budget, 0 if unlimited.
	Budget int
	// Hits and Misses count lookups through Get and GetOrCreate.
	Hits, Misses uint64
	// HitRate is Hits / (Hits + Misses), 0 before the first lookup.
	HitRate float64
	// Evictions counts entries dropped to fit the budget.
	Evictions uint64
}
