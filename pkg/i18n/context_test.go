package i18n_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/langkit/pkg/i18n"
)

func TestLangContext(t *testing.T) {
	t.Run("set then get round-trips the binding", func(t *testing.T) {
		lang := i18n.NewLang("de", i18n.Table{"hello": "Hallo"})
		ctx := i18n.SetLang(context.Background(), lang)
		assert.Same(t, lang, i18n.GetLang(ctx))
	})

	t.Run("absent binding falls back to default language", func(t *testing.T) {
		lang := i18n.GetLang(context.Background())
		require.NotNil(t, lang)
		assert.Equal(t, i18n.DefaultLanguage, lang.Code())
		assert.Empty(t, lang.T("hello"))
	})

	t.Run("nil binding falls back to default language", func(t *testing.T) {
		ctx := i18n.SetLang(context.Background(), nil)
		lang := i18n.GetLang(ctx)
		require.NotNil(t, lang)
		assert.Equal(t, i18n.DefaultLanguage, lang.Code())
	})
}

func TestUserLangContext(t *testing.T) {
	t.Run("round-trips the hint", func(t *testing.T) {
		ctx := i18n.WithUserLang(context.Background(), "uk")
		assert.Equal(t, "uk", i18n.UserLang(ctx))
	})

	t.Run("absent hint is empty", func(t *testing.T) {
		assert.Empty(t, i18n.UserLang(context.Background()))
	})
}
