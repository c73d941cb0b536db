package i18n

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// PositionalMarker is replaced left-to-right by positional placeholder values.
const PositionalMarker = "%s"

// CountKey is the named placeholder that triggers plural suffix selection.
const CountKey = "count"

type placeholderMode int

const (
	modeNone placeholderMode = iota
	modePositional
	modeNamed
)

// Placeholders carries substitution values in exactly one of two shapes:
// an ordered sequence consumed against PositionalMarker occurrences, or a
// named map replacing delimited "{{name}}" tokens. The shape is decided at
// the call boundary by the Positional and Named constructors.
type Placeholders struct {
	mode   placeholderMode
	values []any
	named  M
}

// Positional builds a placeholder set whose values replace PositionalMarker
// occurrences in strict left-to-right order. Positional sets never trigger
// pluralization, regardless of content.
func Positional(values ...any) Placeholders {
	return Placeholders{mode: modePositional, values: values}
}

// Named builds a placeholder set whose entries replace every occurrence of
// the corresponding "{{name}}" token. A numeric "count" entry additionally
// selects a plural suffix for the lookup path.
func Named(values M) Placeholders {
	return Placeholders{mode: modeNamed, named: values}
}

// pluralCount reports the plural count carried by a named set, if any.
func (p Placeholders) pluralCount() (int, bool) {
	if p.mode != modeNamed {
		return 0, false
	}
	v, ok := p.named[CountKey]
	if !ok {
		return 0, false
	}
	return toCount(v)
}

// Render resolves path in table and substitutes placeholders into the
// resulting template. A named set with a numeric "count" rewrites the path
// with a plural suffix before lookup. A missing path yields an empty string;
// rendering never fails. Use Has to check existence separately.
func Render(table Table, path string, ph Placeholders) string {
	if n, ok := ph.pluralCount(); ok {
		path += PluralSuffix(n)
	}

	tmpl, ok := table[path]
	if !ok {
		return ""
	}

	switch ph.mode {
	case modePositional:
		return substitutePositional(tmpl, ph.values)
	case modeNamed:
		return substituteNamed(tmpl, ph.named)
	default:
		return tmpl
	}
}

// Has reports whether path is a directly present key in table. No plural
// rewriting is applied.
func Has(table Table, path string) bool {
	_, ok := table[path]
	return ok
}

// substitutePositional consumes values strictly left-to-right against the
// first, second, etc. occurrence of the positional marker. Markers left
// without a value pass through unchanged.
func substitutePositional(tmpl string, values []any) string {
	var b strings.Builder
	rest := tmpl
	for _, v := range values {
		idx := strings.Index(rest, PositionalMarker)
		if idx < 0 {
			break
		}
		b.WriteString(rest[:idx])
		b.WriteString(stringify(v))
		rest = rest[idx+len(PositionalMarker):]
	}
	b.WriteString(rest)
	return b.String()
}

// substituteNamed replaces every occurrence of each key's "{{key}}" token.
// Unknown tokens in the template pass through unchanged.
func substituteNamed(tmpl string, values M) string {
	result := tmpl
	for key, value := range values {
		result = strings.ReplaceAll(result, "{{"+key+"}}", stringify(value))
	}
	return result
}

// stringify converts a placeholder value to its textual representation.
// Nil renders as the literal "null".
func stringify(v any) string {
	if v == nil {
		return "null"
	}
	return fmt.Sprintf("%v", v)
}

// toCount coerces a placeholder value to an integer count. Strings are
// accepted when they parse to a finite number; non-integral values truncate.
func toCount(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int8:
		return int(n), true
	case int16:
		return int(n), true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case uint:
		return int(n), true
	case uint8:
		return int(n), true
	case uint16:
		return int(n), true
	case uint32:
		return int(n), true
	case uint64:
		return int(n), true
	case float32:
		return floatToCount(float64(n))
	case float64:
		return floatToCount(n)
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0, false
		}
		return floatToCount(f)
	default:
		return 0, false
	}
}

func floatToCount(f float64) (int, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return int(f), true
}
