package cache

import (
	"container/list"
	"context"
	"sync"
	"time"
)

// Loader produces the value for a key on a cache miss.
type Loader[K comparable, V any] func(ctx context.Context, key K) (V, error)

type loadingEntry[K comparable, V any] struct {
	key       K
	value     V
	expiresAt time.Time // zero means the entry never expires
}

func (e *loadingEntry[K, V]) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && now.After(e.expiresAt)
}

// LoadingCache is a thread-safe cache that can populate itself through a
// Loader on miss. Entries optionally expire after a TTL, and an optional
// capacity bound evicts the least recently used entry when exceeded.
type LoadingCache[K comparable, V any] struct {
	capacity int           // 0 means unbounded
	ttl      time.Duration // 0 means entries never expire
	loader   Loader[K, V]
	items    map[K]*list.Element
	eviction *list.List
	mu       sync.Mutex
	now      func() time.Time
	onEvict  func(key K, value V)
}

// Option configures a LoadingCache.
type Option[K comparable, V any] func(*LoadingCache[K, V])

// WithTTL sets how long entries stay valid after being stored.
// The TTL must be positive; zero (the default) keeps entries forever.
func WithTTL[K comparable, V any](ttl time.Duration) Option[K, V] {
	if ttl < 0 {
		panic("WithTTL: duration must be >= 0")
	}
	return func(c *LoadingCache[K, V]) { c.ttl = ttl }
}

// WithCapacity bounds the number of entries. When the bound is exceeded the
// least recently used entry is evicted. Zero (the default) means unbounded.
func WithCapacity[K comparable, V any](capacity int) Option[K, V] {
	if capacity < 0 {
		panic("WithCapacity: capacity must be >= 0")
	}
	return func(c *LoadingCache[K, V]) { c.capacity = capacity }
}

// WithLoader sets the function invoked to populate the cache on miss.
func WithLoader[K comparable, V any](loader Loader[K, V]) Option[K, V] {
	return func(c *LoadingCache[K, V]) { c.loader = loader }
}

// WithEvictCallback sets a callback invoked when entries are evicted or
// expire. Useful for cleanup operations like closing resources.
func WithEvictCallback[K comparable, V any](fn func(key K, value V)) Option[K, V] {
	return func(c *LoadingCache[K, V]) { c.onEvict = fn }
}

// New creates a LoadingCache configured by the given options.
func New[K comparable, V any](opts ...Option[K, V]) *LoadingCache[K, V] {
	c := &LoadingCache[K, V]{
		items:    make(map[K]*list.Element),
		eviction: list.New(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get retrieves a value without invoking the loader. Expired entries are
// dropped and reported as missing.
func (c *LoadingCache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lookup(key)
}

// GetOrLoad retrieves a value, invoking the loader on miss and storing the
// result. Without a configured loader it behaves like Get with a zero value
// for misses. Loader errors are returned without caching anything.
//
// The loader runs outside the cache lock, so concurrent misses for the same
// key may each invoke it; the last result wins. Loads are expected to be
// idempotent per key.
func (c *LoadingCache[K, V]) GetOrLoad(ctx context.Context, key K) (V, error) {
	c.mu.Lock()
	if value, ok := c.lookup(key); ok {
		c.mu.Unlock()
		return value, nil
	}
	loader := c.loader
	c.mu.Unlock()

	var zero V
	if loader == nil {
		return zero, nil
	}

	value, err := loader(ctx, key)
	if err != nil {
		return zero, err
	}

	c.Set(key, value)
	return value, nil
}

// Set stores a value, resetting its TTL. If the cache is at capacity the
// least recently used entry is evicted.
func (c *LoadingCache[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var expiresAt time.Time
	if c.ttl > 0 {
		expiresAt = c.now().Add(c.ttl)
	}

	if elem, ok := c.items[key]; ok {
		c.eviction.MoveToFront(elem)
		entry := elem.Value.(*loadingEntry[K, V])
		entry.value = value
		entry.expiresAt = expiresAt
		return
	}

	elem := c.eviction.PushFront(&loadingEntry[K, V]{key: key, value: value, expiresAt: expiresAt})
	c.items[key] = elem

	if c.capacity > 0 && c.eviction.Len() > c.capacity {
		c.evictOldest()
	}
}

// Remove removes an entry from the cache.
// Returns the removed value and true if it existed.
func (c *LoadingCache[K, V]) Remove(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[key]; ok {
		entry := elem.Value.(*loadingEntry[K, V])
		c.removeElement(elem)
		return entry.value, true
	}

	var zero V
	return zero, false
}

// Len reports the number of entries, including any not yet expired-and-swept.
func (c *LoadingCache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.eviction.Len()
}

// Keys returns the keys of all live entries in no particular order.
func (c *LoadingCache[K, V]) Keys() []K {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	keys := make([]K, 0, len(c.items))
	for key, elem := range c.items {
		if elem.Value.(*loadingEntry[K, V]).expired(now) {
			continue
		}
		keys = append(keys, key)
	}
	return keys
}

// Clear removes all entries. The evict callback, if set, runs for each.
func (c *LoadingCache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.onEvict != nil {
		for _, elem := range c.items {
			entry := elem.Value.(*loadingEntry[K, V])
			c.onEvict(entry.key, entry.value)
		}
	}

	c.items = make(map[K]*list.Element)
	c.eviction.Init()
}

// lookup must be called with the lock held.
func (c *LoadingCache[K, V]) lookup(key K) (V, bool) {
	if elem, ok := c.items[key]; ok {
		entry := elem.Value.(*loadingEntry[K, V])
		if entry.expired(c.now()) {
			c.removeElement(elem)
		} else {
			c.eviction.MoveToFront(elem)
			return entry.value, true
		}
	}

	var zero V
	return zero, false
}

// Must be called with the lock held.
func (c *LoadingCache[K, V]) evictOldest() {
	if elem := c.eviction.Back(); elem != nil {
		c.removeElement(elem)
	}
}

// Must be called with the lock held.
func (c *LoadingCache[K, V]) removeElement(elem *list.Element) {
	c.eviction.Remove(elem)
	entry := elem.Value.(*loadingEntry[K, V])
	delete(c.items, entry.key)

	if c.onEvict != nil {
		c.onEvict(entry.key, entry.value)
	}
}
