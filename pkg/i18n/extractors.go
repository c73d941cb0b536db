package i18n

import (
	"net/http"
	"slices"
	"strings"

	"golang.org/x/text/language"
)

// maxLangCodeLength is the maximum allowed length for a language code.
// RFC 5646 recommends 35 characters max.
const maxLangCodeLength = 35

// maxAcceptLanguageLength prevents DoS attacks through oversized
// Accept-Language headers. RFC 7231 doesn't specify a limit, but 4KB is
// generous for legitimate headers.
const maxAcceptLanguageLength = 4096

// langValidator validates and normalizes language codes.
type langValidator struct {
	supportedLangs []string
}

func newLangValidator(supportedLangs []string) *langValidator {
	normalized := make([]string, len(supportedLangs))
	for i, lang := range supportedLangs {
		normalized[i] = strings.ToLower(lang)
	}
	return &langValidator{supportedLangs: normalized}
}

// validate checks a language code and returns the normalized version, or ""
// when the code is empty, oversized or not in the supported set.
func (v *langValidator) validate(lang string) string {
	if lang == "" || len(lang) > maxLangCodeLength {
		return ""
	}

	normalized := strings.ToLower(strings.TrimSpace(lang))
	if normalized == "" {
		return ""
	}

	// Without a supported set every well-formed code passes.
	if len(v.supportedLangs) == 0 {
		return normalized
	}

	if slices.Contains(v.supportedLangs, normalized) {
		return normalized
	}
	// Region-less fallback: "en-US" matches supported "en".
	if idx := strings.Index(normalized, "-"); idx > 0 {
		base := normalized[:idx]
		if slices.Contains(v.supportedLangs, base) {
			return base
		}
	}
	return ""
}

// ExtractorConfig holds configuration for the default language extractor.
type ExtractorConfig struct {
	CookieName     string
	QueryParamName string
	SupportedLangs []string
}

// ExtractorOption configures the default language extractor.
type ExtractorOption func(*ExtractorConfig)

// WithCookieName sets the cookie name to check for language preference.
func WithCookieName(name string) ExtractorOption {
	return func(c *ExtractorConfig) {
		if name != "" {
			c.CookieName = name
		}
	}
}

// WithQueryParamName sets the query parameter name to check for language.
func WithQueryParamName(name string) ExtractorOption {
	return func(c *ExtractorConfig) {
		if name != "" {
			c.QueryParamName = name
		}
	}
}

// WithSupportedLanguages restricts candidates to the given codes.
func WithSupportedLanguages(langs ...string) ExtractorOption {
	return func(c *ExtractorConfig) {
		if len(langs) > 0 {
			c.SupportedLangs = langs
		}
	}
}

// SingleLang adapts a single-value extractor into the candidate-list shape.
func SingleLang(fn func(r *http.Request) string) LangExtractor {
	return func(r *http.Request) []string {
		if lang := fn(r); lang != "" {
			return []string{lang}
		}
		return nil
	}
}

// DefaultLangExtractor creates a language extractor that collects candidates
// from multiple sources in priority order:
//
//  1. User-profile language stored in the request context (see WithUserLang)
//  2. Cookie (default name: "lang")
//  3. Query parameter (default name: "lang")
//  4. Accept-Language header, in quality order, each tag followed by its
//     region-less base form
//
// Candidates are validated, normalized to lowercase and deduplicated while
// preserving order. An empty result leaves the choice to the fallback
// language.
func DefaultLangExtractor(opts ...ExtractorOption) LangExtractor {
	config := &ExtractorConfig{
		CookieName:     "lang",
		QueryParamName: "lang",
	}
	for _, opt := range opts {
		opt(config)
	}

	// Create the validator once at initialization time.
	validator := newLangValidator(config.SupportedLangs)

	return func(r *http.Request) []string {
		var candidates []string
		seen := make(map[string]bool)

		add := func(lang string) {
			validated := validator.validate(lang)
			if validated == "" || seen[validated] {
				return
			}
			seen[validated] = true
			candidates = append(candidates, validated)
		}

		// 1. User profile hint from upstream auth/session middleware.
		add(UserLang(r.Context()))

		// 2. Cookie.
		if config.CookieName != "" {
			if cookie, err := r.Cookie(config.CookieName); err == nil {
				add(strings.TrimSpace(cookie.Value))
			}
		}

		// 3. Query parameter.
		if config.QueryParamName != "" {
			add(strings.TrimSpace(r.URL.Query().Get(config.QueryParamName)))
		}

		// 4. Accept-Language header.
		for _, tag := range parseAcceptLanguage(r.Header.Get("Accept-Language")) {
			add(tag)
		}

		return candidates
	}
}

// parseAcceptLanguage parses an Accept-Language header into language codes
// ordered by quality, each followed by its region-less base form. Malformed
// headers yield no candidates rather than an error.
func parseAcceptLanguage(header string) []string {
	if header == "" {
		return nil
	}
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}

	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil {
		return nil
	}

	codes := make([]string, 0, len(tags)*2)
	for _, tag := range tags {
		codes = append(codes, strings.ToLower(tag.String()))

		if base, conf := tag.Base(); conf != language.No {
			codes = append(codes, strings.ToLower(base.String()))
		}
	}
	return codes
}
