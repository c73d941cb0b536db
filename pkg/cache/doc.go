// Package cache provides a generic, thread-safe cache that can populate
// itself through a loader function on miss, with optional TTL expiry and
// LRU capacity eviction.
//
// It is built for read-mostly lookup tables - translation catalogs, feature
// flags, configuration snapshots - where a miss should transparently fall
// through to a slower source and the result should stick around for a while.
//
// # Key Features
//
//   - Generic implementation supporting any comparable key type and any value type
//   - Lookup-or-load semantics via a pluggable Loader
//   - Optional TTL after which entries are reloaded on next access
//   - Optional capacity bound with LRU eviction
//   - Optional eviction callbacks for resource cleanup
//   - Thread-safe operations with mutex-based synchronization
//
// # Usage
//
// Create a cache with a loader and a TTL:
//
//	c := cache.New[string, []byte](
//		cache.WithTTL[string, []byte](5*time.Minute),
//		cache.WithLoader[string, []byte](func(ctx context.Context, key string) ([]byte, error) {
//			return fetchFromBackend(ctx, key)
//		}),
//	)
//
//	// Lookup-or-load. The loader runs only on miss.
//	data, err := c.GetOrLoad(ctx, "profile:123")
//
// Plain lookups and preloading work without the loader:
//
//	c.Set("profile:123", data) // store, resetting the TTL
//	data, found := c.Get("profile:123")
//
// # Loader Semantics
//
// The loader runs outside the cache lock, so concurrent misses for the same
// key may each invoke it. Loads must therefore be idempotent per key; the
// last result wins. Loader errors are returned to the caller and nothing is
// cached, so the next access retries the load.
//
// # Expiry
//
// Entries are swept lazily: an expired entry is dropped on the access that
// discovers it. There is no background goroutine, which keeps the cache
// lifecycle trivial - it needs no shutdown.
package cache
