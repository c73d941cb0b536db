package i18n

import "maps"

// Lang pairs one language code with one translation table snapshot. It is
// created per request during resolution, attached to the request context and
// discarded when the request completes. The table is read-only after
// construction, so a Lang is safe for concurrent reads.
type Lang struct {
	code  string
	table Table
}

// NewLang binds a language code to a table snapshot. A nil table is replaced
// with an empty one so the bound language is always renderable.
func NewLang(code string, table Table) *Lang {
	if table == nil {
		table = Table{}
	}
	return &Lang{code: code, table: table}
}

// Code returns the bound language code.
func (l *Lang) Code() string {
	if l == nil {
		return ""
	}
	return l.code
}

// Table returns the bound table snapshot. Callers must treat it as read-only.
func (l *Lang) Table() Table {
	if l == nil {
		return Table{}
	}
	return l.table
}

// T renders the template at path. At most one placeholder set is applied;
// without one the raw template is returned. Missing paths yield an empty
// string, never an error.
func (l *Lang) T(path string, ph ...Placeholders) string {
	if l == nil {
		return ""
	}
	if len(ph) == 0 {
		return Render(l.table, path, Placeholders{})
	}
	return Render(l.table, path, ph[0])
}

// N renders the plural form of path selected by n. The count is injected as
// the "count" placeholder and may be complemented by extra named values.
func (l *Lang) N(path string, n int, extra ...M) string {
	if l == nil {
		return ""
	}
	values := M{CountKey: n}
	for _, m := range extra {
		maps.Copy(values, m)
	}
	return Render(l.table, path, Named(values))
}

// Has reports whether path is directly present in the bound table.
// Plural suffixes are not applied.
func (l *Lang) Has(path string) bool {
	if l == nil {
		return false
	}
	return Has(l.table, path)
}
