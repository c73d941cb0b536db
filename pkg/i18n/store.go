package i18n

import (
	"context"
	"sort"
	"time"

	"github.com/dmitrymomot/langkit/pkg/cache"
)

// Store is the lookup contract for translation tables. Get returns the
// complete table for a language code or an empty/nil table when the language
// is unknown; it never returns a partial table. Set stores a snapshot, used
// by preloading. Implementations must be safe for concurrent use.
type Store interface {
	Get(ctx context.Context, code string) (Table, error)
	Set(code string, table Table)
}

// TableLoader produces the table for a language code on a store miss.
type TableLoader func(ctx context.Context, code string) (Table, error)

// storeConfig collects CacheStore options.
type storeConfig struct {
	ttl      time.Duration
	capacity int
	loader   TableLoader
}

// StoreOption configures a CacheStore.
type StoreOption func(*storeConfig)

// WithStoreTTL sets how long a loaded table stays cached before the loader
// runs again. Zero (the default) caches tables forever.
func WithStoreTTL(ttl time.Duration) StoreOption {
	if ttl < 0 {
		panic("WithStoreTTL: duration must be >= 0")
	}
	return func(c *storeConfig) { c.ttl = ttl }
}

// WithStoreCapacity bounds the number of cached tables, evicting the least
// recently used beyond it. Zero (the default) means unbounded.
func WithStoreCapacity(capacity int) StoreOption {
	if capacity < 0 {
		panic("WithStoreCapacity: capacity must be >= 0")
	}
	return func(c *storeConfig) { c.capacity = capacity }
}

// WithStoreLoader sets the function invoked to fetch a table on miss.
// Without one, misses resolve to an empty table.
func WithStoreLoader(loader TableLoader) StoreOption {
	return func(c *storeConfig) { c.loader = loader }
}

// CacheStore keeps translation tables in memory with lookup-or-load
// semantics, TTL expiry and optional LRU capacity eviction. The default
// loader resolves every miss to an empty table, so lookups never fail for
// unknown languages.
type CacheStore struct {
	cache *cache.LoadingCache[string, Table]
}

var _ Store = (*CacheStore)(nil)

// NewCacheStore creates a CacheStore configured by the given options.
func NewCacheStore(opts ...StoreOption) *CacheStore {
	cfg := storeConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	loader := cfg.loader
	if loader == nil {
		loader = func(_ context.Context, _ string) (Table, error) {
			return Table{}, nil
		}
	}

	return &CacheStore{
		cache: cache.New[string, Table](
			cache.WithTTL[string, Table](cfg.ttl),
			cache.WithCapacity[string, Table](cfg.capacity),
			cache.WithLoader[string, Table](func(ctx context.Context, code string) (Table, error) {
				return loader(ctx, code)
			}),
		),
	}
}

// Get returns the table for code, invoking the loader on miss.
func (s *CacheStore) Get(ctx context.Context, code string) (Table, error) {
	return s.cache.GetOrLoad(ctx, code)
}

// Set stores a table snapshot for code, resetting its TTL.
func (s *CacheStore) Set(code string, table Table) {
	s.cache.Set(code, table)
}

// SupportedLanguages returns the codes of all currently cached tables,
// sorted. After preloading this reflects the discovered language files.
func (s *CacheStore) SupportedLanguages() []string {
	codes := s.cache.Keys()
	sort.Strings(codes)
	return codes
}
