package i18n

import (
	"io"
	"log/slog"
	"net/http"
)

// I18n composes a translation store, a language extractor and the renderer
// into a per-request resolution entry point. It is immutable after creation
// and safe for concurrent use.
type I18n struct {
	store     Store
	fallback  string
	extractor LangExtractor
	logger    *slog.Logger
	logMisses bool
}

// New creates an I18n instance resolving languages against the given store.
func New(store Store, opts ...Option) (*I18n, error) {
	if store == nil {
		return nil, ErrNilStore
	}

	i := &I18n{
		store:    store,
		fallback: DefaultLanguage,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)), // noop logger by default
	}
	for _, opt := range opts {
		opt(i)
	}

	if i.extractor == nil {
		i.extractor = DefaultLangExtractor()
	}

	return i, nil
}

// FallbackLanguage returns the configured fallback language code.
func (i *I18n) FallbackLanguage() string {
	return i.fallback
}

// Preload populates the store from a translation file or directory tree.
// Call it once at startup, before serving requests.
func (i *I18n) Preload(path string) error {
	return PreloadStore(i.store, path)
}

// Resolve selects the bound language for a request: the extractor's
// candidates are probed against the store in order and the first one with a
// non-empty table wins. When every candidate misses, the fallback language
// is bound with whatever the store returns for it, possibly an empty table.
// Resolution therefore always produces a usable binding and makes a single
// pass with no retries.
func (i *I18n) Resolve(r *http.Request) *Lang {
	ctx := r.Context()

	for _, code := range i.extractor(r) {
		table, err := i.store.Get(ctx, code)
		if err != nil {
			i.logger.WarnContext(ctx, "translation store lookup failed", "lang", code, "error", err)
			continue
		}
		if len(table) > 0 {
			return NewLang(code, table)
		}
		if i.logMisses {
			i.logger.DebugContext(ctx, "no translations for language candidate", "lang", code)
		}
	}

	table, err := i.store.Get(ctx, i.fallback)
	if err != nil {
		i.logger.WarnContext(ctx, "translation store lookup failed", "lang", i.fallback, "error", err)
		table = nil
	}
	return NewLang(i.fallback, table)
}
