package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.hackfix.me/stash/store"
)

func TestMemory(t *testing.T) {
	t.Parallel()

	t.Run("ok/set_get", func(t *testing.T) {
		drv := New()
		require.NoError(t, drv.Set("key", []byte("value")))

		val, err := drv.Get("key")
		require.NoError(t, err)
		assert.Equal(t, []byte("value"), val)
	})

	t.Run("ok/absent_key", func(t *testing.T) {
		drv := New()
		_, err := drv.Get("missing")
		assert.ErrorIs(t, err, store.ErrNoEntry)
	})

	t.Run("ok/values_are_cloned", func(t *testing.T) {
		drv := New()
		in := []byte("value")
		require.NoError(t, drv.Set("key", in))
		in[0] = 'x'

		out, err := drv.Get("key")
		require.NoError(t, err)
		assert.Equal(t, []byte("value"), out)

		out[0] = 'y'
		again, err := drv.Get("key")
		require.NoError(t, err)
		assert.Equal(t, []byte("value"), again)
	})

	t.Run("ok/delete_is_idempotent", func(t *testing.T) {
		drv := New()
		require.NoError(t, drv.Set("key", []byte("value")))
		require.NoError(t, drv.Delete("key"))
		require.NoError(t, drv.Delete("key"))

		_, err := drv.Get("key")
		assert.ErrorIs(t, err, store.ErrNoEntry)
	})

	t.Run("ok/keys_and_clear", func(t *testing.T) {
		drv := New()
		for _, k := range []string{"a", "b", "c"} {
			require.NoError(t, drv.Set(k, []byte(k)))
		}

		keys, err := drv.Keys()
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"a", "b", "c"}, keys)

		require.NoError(t, drv.Clear())
		keys, err = drv.Keys()
		require.NoError(t, err)
		assert.Empty(t, keys)
	})
}
