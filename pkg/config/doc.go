// Package config provides a type-safe, generic and cached way to load
// application configuration from environment variables.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11` to
// deliver a small API that:
//
//   - Loads the default `.env` file once, if one exists.
//   - Parses the environment into any Go struct using `env` field tags.
//   - Caches each successfully loaded configuration type so it is only parsed
//     once for the lifetime of the process.
//   - Exposes MustLoad for configuration the process cannot start without.
//
// # Usage
//
// Create a struct describing your configuration and annotate its fields with
// `env` tags:
//
//	type I18nConfig struct {
//		Dir      string `env:"I18N_DIR" envDefault:"./translations"`
//		Fallback string `env:"I18N_FALLBACK_LANG" envDefault:"en"`
//	}
//
//	var cfg I18nConfig
//	if err := config.Load(&cfg); err != nil {
//		log.Fatal(err)
//	}
//
// Repeated Load calls for the same struct type return the cached copy, so
// every package observes identical configuration values.
package config
