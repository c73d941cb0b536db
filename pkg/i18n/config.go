package i18n

import (
	"time"

	"github.com/dmitrymomot/langkit/pkg/config"
)

type Config struct {
	Dir       string        `env:"I18N_DIR" envDefault:"./translations"` // Dir is scanned recursively for translation files at startup. Empty disables preloading.
	Fallback  string        `env:"I18N_FALLBACK_LANG" envDefault:"en"`   // Fallback is the language bound when no candidate has translations.
	CacheTTL  time.Duration `env:"I18N_CACHE_TTL" envDefault:"0"`        // CacheTTL is how long tables stay cached. Zero keeps them forever.
	CacheSize int           `env:"I18N_CACHE_SIZE" envDefault:"0"`       // CacheSize bounds the number of cached tables. Zero means unbounded.
}

// NewFromConfig creates an I18n instance backed by an in-memory CacheStore
// built from the provided Config, preloading translations from cfg.Dir.
func NewFromConfig(cfg Config, opts ...Option) (*I18n, error) {
	storeOpts := make([]StoreOption, 0, 2)
	if cfg.CacheTTL > 0 {
		storeOpts = append(storeOpts, WithStoreTTL(cfg.CacheTTL))
	}
	if cfg.CacheSize > 0 {
		storeOpts = append(storeOpts, WithStoreCapacity(cfg.CacheSize))
	}
	store := NewCacheStore(storeOpts...)

	instanceOpts := make([]Option, 0, len(opts)+1)
	if cfg.Fallback != "" {
		instanceOpts = append(instanceOpts, WithFallbackLanguage(cfg.Fallback))
	}
	instanceOpts = append(instanceOpts, opts...)

	i, err := New(store, instanceOpts...)
	if err != nil {
		return nil, err
	}

	if cfg.Dir != "" {
		if err := i.Preload(cfg.Dir); err != nil {
			return nil, err
		}
	}

	return i, nil
}

// NewFromEnv creates an I18n instance from environment variables.
// See Config for the recognized variables and their defaults.
func NewFromEnv(opts ...Option) (*I18n, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return nil, err
	}
	return NewFromConfig(cfg, opts...)
}
