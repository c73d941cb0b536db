package i18n_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/langkit/pkg/i18n"
)

func TestNewRedisStore(t *testing.T) {
	t.Run("nil client is rejected", func(t *testing.T) {
		store, err := i18n.NewRedisStore(nil)
		require.ErrorIs(t, err, i18n.ErrNilRedisClient)
		assert.Nil(t, store)
	})

	t.Run("negative ttl panics", func(t *testing.T) {
		assert.Panics(t, func() { i18n.WithRedisTTL(-time.Second) })
	})
}
