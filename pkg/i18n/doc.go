// Package i18n resolves a user's preferred language from request context,
// retrieves matching translation tables through a cache-backed store with
// fallback, and renders template strings with placeholder substitution and
// count-based pluralization. It integrates with the standard net/http stack
// as middleware inserted ahead of business handlers.
//
// The package allows you to:
//
//   - Preload flat JSON or YAML translation files from a directory tree, one
//     file per language.
//   - Detect the preferred user language via pluggable extractors covering a
//     user-profile hint, cookies, query parameters and the Accept-Language
//     header.
//   - Keep translation tables in an in-memory lookup-or-load cache with TTL
//     expiry, or share them across instances through Redis.
//   - Render templates with positional ("%s") or named ("{{name}}")
//     placeholders and select Slavic-style plural forms from a numeric count.
//
// # Architecture
//
// The I18n type composes three collaborators: a Store (the lookup contract
// for translation tables), a LangExtractor (ordered language candidates per
// request) and the renderer. Per request, the middleware probes the store
// for each candidate in order, binds the first language with a non-empty
// table (or the fallback language when all miss) and attaches the binding to
// the request context. Resolution always succeeds: the fallback binding is
// produced even when its own table is empty.
//
// # Usage
//
// Basic set-up with a preloaded in-memory store:
//
//	instance, err := i18n.NewFromConfig(i18n.Config{
//		Dir:      "./translations",
//		Fallback: "en",
//	})
//	if err != nil {
//		log.Fatalf("failed to init i18n: %v", err)
//	}
//
//	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
//		lang := i18n.GetLang(r.Context())
//		fmt.Fprintln(w, lang.T("greeting", i18n.Named(i18n.M{"name": "John"})))
//		fmt.Fprintln(w, lang.N("items", 3))
//	})
//
//	http.Handle("/", instance.Middleware()(handler))
//
// # Rendering Semantics
//
// Rendering never fails: a missing path yields an empty string (check
// existence with Has), placeholders without a value pass through unchanged,
// and extra placeholder values without a marker are dropped. A named
// placeholder set carrying a numeric "count" rewrites the lookup path with
// one of the ".zero", ".one", ".few" or ".many" suffixes before lookup.
//
// # Error Handling
//
// Only startup-time failures surface as errors, wrapped with package-level
// sentinels for errors.Is checks:
//
//	if errors.Is(err, i18n.ErrFailedToParseFile) {
//		// malformed translation file
//	}
package i18n
