package providers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TristanAtze/WindowsAutostartApi/internal/regstore"
	"github.com/TristanAtze/WindowsAutostartApi/internal/types"
)

func newRegistryProvider() (*Registry, *regstore.MemStore) {
	store := regstore.NewMemStore()
	return NewRegistry(store, nil), store
}

func TestRegistrySupports(t *testing.T) {
	p, _ := newRegistryProvider()

	assert.True(t, p.Supports(types.KindRun))
	assert.True(t, p.Supports(types.KindRunOnce))
	assert.False(t, p.Supports(types.KindStartupFolder))
}

func TestRegistryAddExistsRemove(t *testing.T) {
	p, _ := newRegistryProvider()

	entry := types.StartupEntry{
		Name:       "Notepad",
		TargetPath: `C:\Windows\System32\notepad.exe`,
		Scope:      types.ScopeCurrentUser,
		Kind:       types.KindRun,
	}
	require.NoError(t, p.Add(entry))

	present, err := p.Exists("Notepad", types.ScopeCurrentUser, types.KindRun)
	require.NoError(t, err)
	assert.True(t, present)

	// Same name under a different kind is a different identity.
	present, err = p.Exists("Notepad", types.ScopeCurrentUser, types.KindRunOnce)
	require.NoError(t, err)
	assert.False(t, present)

	require.NoError(t, p.Remove("Notepad", types.ScopeCurrentUser, types.KindRun))

	present, err = p.Exists("Notepad", types.ScopeCurrentUser, types.KindRun)
	require.NoError(t, err)
	assert.False(t, present)
}

func TestRegistryAddUpsertsByIdentity(t *testing.T) {
	p, _ := newRegistryProvider()

	first := types.StartupEntry{
		Name:       "App",
		TargetPath: `C:\old\app.exe`,
		Scope:      types.ScopeCurrentUser,
		Kind:       types.KindRun,
	}
	second := first
	second.TargetPath = `C:\new\app.exe`
	second.Arguments = "--fresh"

	require.NoError(t, p.Add(first))
	require.NoError(t, p.Add(second))

	entries, err := p.ListAll()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, `C:\new\app.exe`, entries[0].TargetPath)
	assert.Equal(t, "--fresh", entries[0].Arguments)
}

func TestRegistryListAllDecodesValues(t *testing.T) {
	p, store := newRegistryProvider()

	store.Seed(types.ScopeCurrentUser, types.KindRun, "Quoted", `"C:\Program Files\Test.exe" --flag`)
	store.Seed(types.ScopeCurrentUser, types.KindRun, "Plain", `C:\Test.exe`)
	store.Seed(types.ScopeAllUsers, types.KindRunOnce, "Setup", `C:\setup.exe /s`)

	entries, err := p.ListAll()
	require.NoError(t, err)
	require.Len(t, entries, 3)

	byName := map[string]types.StartupEntry{}
	for _, e := range entries {
		byName[e.Name] = e
	}
	assert.Equal(t, `C:\Program Files\Test.exe`, byName["Quoted"].TargetPath)
	assert.Equal(t, "--flag", byName["Quoted"].Arguments)
	assert.Equal(t, `C:\Test.exe`, byName["Plain"].TargetPath)
	assert.Equal(t, types.KindRunOnce, byName["Setup"].Kind)
	assert.Equal(t, types.ScopeAllUsers, byName["Setup"].Scope)
}

func TestRegistryListAllSkipsUndecodableValues(t *testing.T) {
	p, store := newRegistryProvider()

	store.Seed(types.ScopeCurrentUser, types.KindRun, "Broken", `"C:\no closing quote`)
	store.Seed(types.ScopeCurrentUser, types.KindRun, "Empty", ``)
	store.Seed(types.ScopeCurrentUser, types.KindRun, "Good", `C:\ok.exe`)

	entries, err := p.ListAll()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Good", entries[0].Name)
}

func TestRegistryExistsReportsUndecodableValue(t *testing.T) {
	p, store := newRegistryProvider()

	store.SeedBinary(types.ScopeCurrentUser, types.KindRun, "BinaryBlob")

	present, err := p.Exists("BinaryBlob", types.ScopeCurrentUser, types.KindRun)
	require.NoError(t, err)
	assert.True(t, present, "a value of the wrong registry type is still present")

	// The listing still skips what it cannot decode.
	entries, err := p.ListAll()
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRegistryListAllToleratesDeniedScope(t *testing.T) {
	p, store := newRegistryProvider()

	store.Seed(types.ScopeCurrentUser, types.KindRun, "Mine", `C:\mine.exe`)
	store.DenyScope(types.ScopeAllUsers)

	entries, err := p.ListAll()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Mine", entries[0].Name)
}

func TestRegistryAddDeniedSurfacesAccessError(t *testing.T) {
	p, store := newRegistryProvider()
	store.DenyScope(types.ScopeAllUsers)

	err := p.Add(types.StartupEntry{
		Name:       "System",
		TargetPath: `C:\svc.exe`,
		Scope:      types.ScopeAllUsers,
		Kind:       types.KindRun,
	})

	var accessErr *types.AccessError
	require.ErrorAs(t, err, &accessErr)
	assert.Equal(t, types.ScopeAllUsers, accessErr.Scope)
	assert.Contains(t, err.Error(), "administrator")
}

func TestRegistryRemoveAbsentIsNoOp(t *testing.T) {
	p, _ := newRegistryProvider()

	assert.NoError(t, p.Remove("Ghost", types.ScopeCurrentUser, types.KindRun))
}
