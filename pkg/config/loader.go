package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	mu     sync.Mutex
	loaded = make(map[reflect.Type]any)

	dotenvOnce sync.Once
)

// Load parses environment variables into the provided configuration struct.
// The first call loads the default .env file if one exists; missing .env
// files are not an error. Each configuration type is parsed once per process
// and cached, so repeated calls for the same type return the same values.
//
// Example:
//
//	type I18nConfig struct {
//		Dir      string        `env:"I18N_DIR" envDefault:"./translations"`
//		Fallback string        `env:"I18N_FALLBACK_LANG" envDefault:"en"`
//		CacheTTL time.Duration `env:"I18N_CACHE_TTL" envDefault:"0"`
//	}
//
//	var cfg I18nConfig
//	if err := config.Load(&cfg); err != nil {
//		// handle error
//	}
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}

	dotenvOnce.Do(func() {
		// The .env file is optional, ignore the error.
		_ = godotenv.Load()
	})

	key := reflect.TypeOf(*v)

	mu.Lock()
	defer mu.Unlock()

	if cached, ok := loaded[key]; ok {
		*v = cached.(T)
		return nil
	}

	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}

	// Store a copy so later mutations of the caller's struct don't leak back.
	loaded[key] = *v
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
// Use it for configuration the application cannot start without.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}
