package sqlite

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/carlot/internal/state"
)

var _ state.Storage = (*KV)(nil)

func TestOpen_CreatesDatabase(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")

	kv, err := Open(dir)
	require.NoError(t, err)
	t.Cleanup(func() { _ = kv.Close() })

	_, err = os.Stat(filepath.Join(dir, dbFileName))
	assert.NoError(t, err, "carlot.db not created")
	assert.Equal(t, filepath.Join(dir, dbFileName), kv.Path())
}

func TestKV_SetGetOverwrite(t *testing.T) {
	kv, err := Open(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = kv.Close() })

	_, ok, err := kv.Get("missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, kv.Set("vehiclePage", "2"))
	require.NoError(t, kv.Set("vehiclePage", "3"))

	value, ok, err := kv.Get("vehiclePage")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "3", value)
}

func TestKV_DeleteAndKeys(t *testing.T) {
	kv, err := Open(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = kv.Close() })

	require.NoError(t, kv.Set("b", "2"))
	require.NoError(t, kv.Set("a", "1"))

	keys, err := kv.Keys()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, keys)

	require.NoError(t, kv.Delete("a"))
	require.NoError(t, kv.Delete("never-set"))

	keys, err = kv.Keys()
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, keys)
}

func TestKV_SurvivesReopen(t *testing.T) {
	dir := t.TempDir()

	kv, err := Open(dir)
	require.NoError(t, err)
	require.NoError(t, kv.Set(state.SortKey, `{"column":"year","asc":true}`))
	require.NoError(t, kv.Close())

	reopened, err := Open(dir)
	require.NoError(t, err)
	t.Cleanup(func() { _ = reopened.Close() })

	value, ok, err := reopened.Get(state.SortKey)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `{"column":"year","asc":true}`, value)
}

func TestKV_ClosedOperationsFail(t *testing.T) {
	kv, err := Open(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, kv.Close())
	require.NoError(t, kv.Close(), "Close should be idempotent")

	_, _, err = kv.Get("k")
	assert.ErrorIs(t, err, ErrClosed)
	assert.ErrorIs(t, kv.Set("k", "v"), ErrClosed)
	assert.ErrorIs(t, kv.Delete("k"), ErrClosed)
	_, err = kv.Keys()
	assert.ErrorIs(t, err, ErrClosed)
}

func TestKV_BacksStoreAcrossRestarts(t *testing.T) {
	dir := t.TempDir()

	kv, err := Open(dir)
	require.NoError(t, err)
	store := state.NewStore(kv)
	store.LoadSimulated()
	store.SetFilters(state.FilterPatch{Make: state.Set("toyota")})
	require.NoError(t, store.SetSort(state.ColumnYear))
	require.NoError(t, kv.Close())

	kv, err = Open(dir)
	require.NoError(t, err)
	t.Cleanup(func() { _ = kv.Close() })

	restored := state.NewStore(kv)
	assert.Equal(t, "toyota", restored.Filters().Make)
	assert.Equal(t, state.Sort{Column: state.ColumnYear, Asc: true}, restored.Sort())
	assert.Equal(t, 1, restored.CurrentPage())
}
