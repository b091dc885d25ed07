package autostart

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TristanAtze/WindowsAutostartApi/internal/types"
)

func (f *fakeProvider) listCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.listCnt
}

func TestCachedListAllServesSnapshotWithinTTL(t *testing.T) {
	reg := newFakeProvider("registry", types.KindRun)
	reg.entries = []types.StartupEntry{validEntry("A", types.KindRun)}
	cm := NewCachedManager(time.Minute, nil, reg)
	defer cm.Close()

	first, err := cm.ListAll()
	require.NoError(t, err)
	second, err := cm.ListAll()
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, reg.listCalls(), "second read must come from the snapshot")
}

func TestCachedListAllRefreshesAfterExpiry(t *testing.T) {
	reg := newFakeProvider("registry", types.KindRun)
	cm := NewCachedManager(10*time.Millisecond, nil, reg)
	defer cm.Close()

	_, err := cm.ListAll()
	require.NoError(t, err)

	time.Sleep(25 * time.Millisecond)

	_, err = cm.ListAll()
	require.NoError(t, err)
	assert.Equal(t, 2, reg.listCalls())
}

func TestCachedInvalidateForcesReload(t *testing.T) {
	reg := newFakeProvider("registry", types.KindRun)
	cm := NewCachedManager(time.Minute, nil, reg)
	defer cm.Close()

	_, err := cm.ListAll()
	require.NoError(t, err)
	require.NoError(t, cm.Invalidate())
	require.NoError(t, cm.Invalidate()) // redundant invalidation is fine

	_, err = cm.ListAll()
	require.NoError(t, err)
	assert.Equal(t, 2, reg.listCalls())
}

func TestCachedMutationsInvalidate(t *testing.T) {
	reg := newFakeProvider("registry", types.KindRun)
	cm := NewCachedManager(time.Minute, nil, reg)
	defer cm.Close()

	_, err := cm.ListAll()
	require.NoError(t, err)

	require.NoError(t, cm.Add(validEntry("New", types.KindRun)))

	entries, err := cm.ListAll()
	require.NoError(t, err)
	assert.Equal(t, 2, reg.listCalls(), "write must invalidate the snapshot")
	assert.Len(t, entries, 1)

	require.NoError(t, cm.Remove("New", types.ScopeCurrentUser, types.KindRun))

	entries, err = cm.ListAll()
	require.NoError(t, err)
	assert.Equal(t, 3, reg.listCalls())
	assert.Empty(t, entries)
}

func TestCachedFailedMutationStillInvalidates(t *testing.T) {
	reg := newFakeProvider("registry", types.KindRun)
	reg.addErr = errors.New("write rejected")
	reg.removeErr = errors.New("delete rejected")
	cm := NewCachedManager(time.Minute, nil, reg)
	defer cm.Close()

	_, err := cm.ListAll()
	require.NoError(t, err)

	require.Error(t, cm.Add(validEntry("Doomed", types.KindRun)))

	_, err = cm.ListAll()
	require.NoError(t, err)
	assert.Equal(t, 2, reg.listCalls(), "a failed write must still drop the snapshot")

	require.Error(t, cm.Remove("Doomed", types.ScopeCurrentUser, types.KindRun))

	_, err = cm.ListAll()
	require.NoError(t, err)
	assert.Equal(t, 3, reg.listCalls(), "a failed delete must still drop the snapshot")
}

func TestCachedListAllReturnsIndependentSlice(t *testing.T) {
	reg := newFakeProvider("registry", types.KindRun)
	reg.entries = []types.StartupEntry{validEntry("Stable", types.KindRun)}
	cm := NewCachedManager(time.Minute, nil, reg)
	defer cm.Close()

	first, err := cm.ListAll()
	require.NoError(t, err)
	require.Len(t, first, 1)
	first[0].Name = "Scribbled"

	second, err := cm.ListAll()
	require.NoError(t, err)
	require.Len(t, second, 1)
	assert.Equal(t, "Stable", second[0].Name, "callers must not reach the shared snapshot")
	assert.Equal(t, 1, reg.listCalls())

	fresh, err := cm.Refresh()
	require.NoError(t, err)
	require.Len(t, fresh, 1)
	fresh[0].Name = "Scribbled"

	again, err := cm.ListAll()
	require.NoError(t, err)
	require.Len(t, again, 1)
	assert.Equal(t, "Stable", again[0].Name)
}

func TestCachedRefreshToleratesProviderFailure(t *testing.T) {
	good := newFakeProvider("registry", types.KindRun)
	good.entries = []types.StartupEntry{validEntry("Kept", types.KindRun)}
	bad := newFakeProvider("startup-folder", types.KindStartupFolder)
	bad.listErr = errors.New("folder unreadable")

	cm := NewCachedManager(time.Minute, nil, good, bad)
	defer cm.Close()

	entries, err := cm.ListAll()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Kept", entries[0].Name)

	diags := cm.Diagnostics()
	require.Len(t, diags, 1)
	assert.Equal(t, "startup-folder", diags[0].Provider)
	assert.ErrorContains(t, diags[0].Err, "folder unreadable")
}

func TestCachedExistsBypassesCache(t *testing.T) {
	reg := newFakeProvider("registry", types.KindRun)
	cm := NewCachedManager(time.Minute, nil, reg)
	defer cm.Close()

	_, err := cm.ListAll()
	require.NoError(t, err)

	// Mutate behind the cache's back; Exists must see it immediately.
	require.NoError(t, reg.Add(validEntry("Fresh", types.KindRun)))

	present, err := cm.Exists("Fresh", types.ScopeCurrentUser, types.KindRun)
	require.NoError(t, err)
	assert.True(t, present)
	assert.Equal(t, 1, reg.listCalls(), "Exists must not refresh the cache")
}

func TestCachedConcurrentReaders(t *testing.T) {
	reg := newFakeProvider("registry", types.KindRun)
	reg.entries = []types.StartupEntry{validEntry("A", types.KindRun)}
	cm := NewCachedManager(time.Minute, nil, reg)
	defer cm.Close()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			entries, err := cm.ListAll()
			assert.NoError(t, err)
			assert.Len(t, entries, 1)
		}()
	}
	wg.Wait()
}

func TestCachedClosedManagerRejectsEverything(t *testing.T) {
	cm := NewCachedManager(time.Minute, nil, newFakeProvider("registry", types.KindRun))

	require.NoError(t, cm.Close())
	require.NoError(t, cm.Close()) // idempotent

	_, err := cm.ListAll()
	assert.ErrorIs(t, err, types.ErrClosed)

	_, err = cm.Refresh()
	assert.ErrorIs(t, err, types.ErrClosed)

	assert.ErrorIs(t, cm.Invalidate(), types.ErrClosed)
	assert.ErrorIs(t, cm.Add(validEntry("A", types.KindRun)), types.ErrClosed)
	assert.ErrorIs(t, cm.Remove("A", types.ScopeCurrentUser, types.KindRun), types.ErrClosed)

	_, err = cm.Exists("A", types.ScopeCurrentUser, types.KindRun)
	assert.ErrorIs(t, err, types.ErrClosed)
}
