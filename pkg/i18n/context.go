package i18n

import "context"

// DefaultLanguage is the fallback language code used when nothing else is
// configured or detected.
const DefaultLanguage = "en"

// langContextKey is the key for the bound language in the request context.
type langContextKey struct{}

// userLangContextKey is the key for the user-profile language hint.
type userLangContextKey struct{}

// SetLang attaches the bound language to the context. Used by the middleware;
// exposed for tests and non-HTTP call sites.
func SetLang(ctx context.Context, lang *Lang) context.Context {
	return context.WithValue(ctx, langContextKey{}, lang)
}

// GetLang returns the bound language from the context. When the middleware
// did not run it returns an empty-table binding for DefaultLanguage, so the
// result is always renderable and never nil.
func GetLang(ctx context.Context) *Lang {
	if lang, ok := ctx.Value(langContextKey{}).(*Lang); ok && lang != nil {
		return lang
	}
	return NewLang(DefaultLanguage, nil)
}

// WithUserLang records the preferred language from the authenticated user's
// profile. Upstream auth or session middleware sets it; the default language
// extractor reads it as the highest-priority candidate.
func WithUserLang(ctx context.Context, lang string) context.Context {
	return context.WithValue(ctx, userLangContextKey{}, lang)
}

// UserLang returns the user-profile language hint, or "" if none is set.
func UserLang(ctx context.Context) string {
	lang, _ := ctx.Value(userLangContextKey{}).(string)
	return lang
}
