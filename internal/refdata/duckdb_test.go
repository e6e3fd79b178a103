package refdata

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := OpenStore(filepath.Join(t.TempDir(), "ref.duckdb"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStore_LoadTSV(t *testing.T) {
	store := openTestStore(t)
	assert.False(t, store.Loaded())

	require.NoError(t, store.LoadTSV(referenceTSV(t)))
	assert.True(t, store.Loaded())

	count, err := store.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(len(Builtin())), count)
}

func TestStore_Lookup(t *testing.T) {
	store := openTestStore(t)
	require.NoError(t, store.LoadTSV(referenceTSV(t)))

	e, ok := store.Lookup("L858R")
	require.True(t, ok)
	assert.Equal(t, MechanismGainOfFunction, e.Mechanism)
	assert.Equal(t, PathwayRASMAPK, e.Pathway)
	assert.Equal(t, ResistanceLow, e.Resistance)
	assert.InDelta(t, 0.30, e.ResistanceScore, 1e-9)

	_, ok = store.Lookup("UNKNOWN")
	assert.False(t, ok)
}

func TestStore_Dataset(t *testing.T) {
	store := openTestStore(t)
	require.NoError(t, store.LoadTSV(referenceTSV(t)))

	d, err := store.Dataset()
	require.NoError(t, err)
	assert.Equal(t, Builtin(), d)
}

func TestStore_ReloadReplaces(t *testing.T) {
	store := openTestStore(t)
	require.NoError(t, store.LoadTSV(referenceTSV(t)))
	require.NoError(t, store.LoadTSV(referenceTSV(t)))

	count, err := store.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(len(Builtin())), count)
}
