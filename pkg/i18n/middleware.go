package i18n

import "net/http"

// Middleware returns an HTTP middleware that resolves the request's language
// and attaches the bound language to the request context. Handlers retrieve
// it with GetLang and render through its T/N methods.
//
// The middleware calls the next handler exactly once, after the binding is
// attached; whatever the downstream handler does, including panicking, is
// propagated untouched. Resolution has no side effects beyond the context
// value.
func (i *I18n) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lang := i.Resolve(r)
			next.ServeHTTP(w, r.WithContext(SetLang(r.Context(), lang)))
		})
	}
}
