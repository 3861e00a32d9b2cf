package sqlite

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.hackfix.me/stash/store"
)

func newTestDriver(t *testing.T) *SQLite {
	t.Helper()
	drv, err := Open(filepath.Join(t.TempDir(), "store.db"))
	require.NoError(t, err)
	t.Cleanup(func() { drv.Close() })
	return drv
}

func TestSQLite(t *testing.T) {
	t.Parallel()

	t.Run("ok/set_get_upsert", func(t *testing.T) {
		drv := newTestDriver(t)
		require.NoError(t, drv.Set("key", []byte("value")))

		val, err := drv.Get("key")
		require.NoError(t, err)
		assert.Equal(t, []byte("value"), val)

		require.NoError(t, drv.Set("key", []byte("value2")))
		val, err = drv.Get("key")
		require.NoError(t, err)
		assert.Equal(t, []byte("value2"), val)
	})

	t.Run("ok/absent_key", func(t *testing.T) {
		drv := newTestDriver(t)
		_, err := drv.Get("missing")
		assert.ErrorIs(t, err, store.ErrNoEntry)
	})

	t.Run("ok/delete", func(t *testing.T) {
		drv := newTestDriver(t)
		require.NoError(t, drv.Set("key", []byte("value")))
		require.NoError(t, drv.Delete("key"))

		_, err := drv.Get("key")
		assert.ErrorIs(t, err, store.ErrNoEntry)

		require.NoError(t, drv.Delete("key"))
	})

	t.Run("ok/keys_and_clear", func(t *testing.T) {
		drv := newTestDriver(t)
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

	t.Run("ok/persists_across_reopen", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "store.db")
		drv, err := Open(path)
		require.NoError(t, err)
		require.NoError(t, drv.Set("key", []byte("value")))
		require.NoError(t, drv.Close())

		drv, err = Open(path)
		require.NoError(t, err)
		defer drv.Close()

		val, err := drv.Get("key")
		require.NoError(t, err)
		assert.Equal(t, []byte("value"), val)
	})
}
