package i18n

import "net/http"

// Table is a flat mapping from dotted translation keys (e.g. "item.one") to
// template strings for a single language. Keys are literal flat strings,
// nesting is not interpreted. A Table is treated as an immutable snapshot
// once it reaches a store.
type Table map[string]string

// M is a convenience type for named placeholder maps used in translations.
// It maps placeholder names to their values.
type M map[string]any

// LangExtractor returns the ordered list of candidate language codes for a
// request, most preferred first. An empty result means the fallback language
// will be used.
type LangExtractor func(r *http.Request) []string
