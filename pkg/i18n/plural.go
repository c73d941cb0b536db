package i18n

// Plural suffixes appended to a translation path when a named placeholder
// set carries a numeric "count". The fixed four-bucket scheme mirrors
// Slavic-style plural categories.
const (
	SuffixZero = ".zero"
	SuffixOne  = ".one"
	SuffixFew  = ".few"
	SuffixMany = ".many"
)

// PluralSuffix selects the plural suffix for a count.
//
// The decision order is significant and must not be rearranged: zero and
// eleven are special-cased before the last-digit switch, so counts ending
// in 1 other than 11 select ".one", while 13 and 14 still land in ".few"
// through the 3/4 digit branch.
//
//	0            -> ".zero"
//	11           -> ".many"
//	1, 21, 31    -> ".one"
//	2, 3, 4, 22  -> ".few"
//	5..10, 12    -> ".many"
func PluralSuffix(n int) string {
	if n == 0 {
		return SuffixZero
	}
	if n == 11 {
		return SuffixMany
	}

	switch n % 10 {
	case 0:
		return SuffixMany
	case 1:
		return SuffixOne
	case 2, 3, 4:
		return SuffixFew
	default:
		return SuffixMany
	}
}
