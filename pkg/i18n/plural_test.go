package i18n_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/langkit/pkg/i18n"
)

func TestPluralSuffix(t *testing.T) {
	t.Run("zero is checked before the many branch", func(t *testing.T) {
		assert.Equal(t, i18n.SuffixZero, i18n.PluralSuffix(0))
	})

	t.Run("eleven is special-cased to many", func(t *testing.T) {
		assert.Equal(t, i18n.SuffixMany, i18n.PluralSuffix(11))
	})

	t.Run("counts ending in 1 except 11 select one", func(t *testing.T) {
		for _, n := range []int{1, 21, 31, 41, 101} {
			assert.Equal(t, i18n.SuffixOne, i18n.PluralSuffix(n), "count %d", n)
		}
	})

	t.Run("counts ending in 2 3 4 select few", func(t *testing.T) {
		for _, n := range []int{2, 3, 4, 22, 23, 24, 102} {
			assert.Equal(t, i18n.SuffixFew, i18n.PluralSuffix(n), "count %d", n)
		}
	})

	t.Run("multiples of ten select many", func(t *testing.T) {
		for _, n := range []int{10, 20, 30, 100} {
			assert.Equal(t, i18n.SuffixMany, i18n.PluralSuffix(n), "count %d", n)
		}
	})

	t.Run("remaining counts select many", func(t *testing.T) {
		for _, n := range []int{5, 6, 7, 8, 9, 12, 15, 16, 17, 18, 19, 25, 26, 27, 28, 29} {
			assert.Equal(t, i18n.SuffixMany, i18n.PluralSuffix(n), "count %d", n)
		}
	})

	t.Run("only zero and eleven bypass the digit switch", func(t *testing.T) {
		// 13 and 14 land in the few branch through their last digit;
		// the teens are not special-cased as a group.
		assert.Equal(t, i18n.SuffixFew, i18n.PluralSuffix(13))
		assert.Equal(t, i18n.SuffixFew, i18n.PluralSuffix(14))
	})
}
