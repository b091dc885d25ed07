package regstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TristanAtze/WindowsAutostartApi/internal/types"
)

func TestMemStoreOpenMissingKey(t *testing.T) {
	store := NewMemStore()

	_, err := store.Open(types.ScopeCurrentUser, types.KindRun, false)
	assert.ErrorIs(t, err, ErrNotExist)

	// Opening for write creates the key path.
	key, err := store.Open(types.ScopeCurrentUser, types.KindRun, true)
	require.NoError(t, err)
	require.NoError(t, key.Close())

	_, err = store.Open(types.ScopeCurrentUser, types.KindRun, false)
	assert.NoError(t, err)
}

func TestMemStoreValuesRoundTrip(t *testing.T) {
	store := NewMemStore()

	key, err := store.Open(types.ScopeCurrentUser, types.KindRun, true)
	require.NoError(t, err)
	defer key.Close()

	require.NoError(t, key.SetString("B", `C:\b.exe`))
	require.NoError(t, key.SetString("A", `C:\a.exe`))

	names, err := key.Values()
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, names)

	v, err := key.GetString("A")
	require.NoError(t, err)
	assert.Equal(t, `C:\a.exe`, v)

	_, err = key.GetString("missing")
	assert.ErrorIs(t, err, ErrNotExist)

	require.NoError(t, key.Delete("A"))
	assert.ErrorIs(t, key.Delete("A"), ErrNotExist)
}

func TestMemStoreDenyScope(t *testing.T) {
	store := NewMemStore()
	store.DenyScope(types.ScopeAllUsers)

	_, err := store.Open(types.ScopeAllUsers, types.KindRun, true)
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = store.Open(types.ScopeCurrentUser, types.KindRun, true)
	assert.NoError(t, err)
}

func TestRunKeyPath(t *testing.T) {
	assert.Equal(t, `Software\Microsoft\Windows\CurrentVersion\Run`, RunKeyPath(types.KindRun))
	assert.Equal(t, `Software\Microsoft\Windows\CurrentVersion\RunOnce`, RunKeyPath(types.KindRunOnce))
}
