package autostart

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/TristanAtze/WindowsAutostartApi/internal/logging"
	"github.com/TristanAtze/WindowsAutostartApi/internal/providers"
	"github.com/TristanAtze/WindowsAutostartApi/internal/types"
)

// ProviderFailure records one provider's error during a cache refresh.
type ProviderFailure struct {
	Provider string
	Err      error
}

// CachedManager wraps Manager's routing with a time-bounded read cache.
//
// The cache holds either nothing or one complete snapshot of all
// providers' listings taken at a single refresh. Reads share the
// snapshot under a read lock; a refresh replaces it wholesale under the
// write lock; mutations invalidate it so a stale read can never follow
// a successful write.
type CachedManager struct {
	mgr *Manager
	ttl time.Duration
	log *logging.Logger

	mu       sync.RWMutex
	snap     *types.Snapshot
	failures []ProviderFailure
	closed   bool
}

// NewCachedManager creates a cached manager with the given snapshot TTL.
func NewCachedManager(ttl time.Duration, log *logging.Logger, provs ...providers.Provider) *CachedManager {
	if log == nil {
		log = logging.NewNop()
	}
	return &CachedManager{
		mgr: NewManager(log, provs...),
		ttl: ttl,
		log: log,
	}
}

// ListAll returns the cached snapshot when it is fresh, refreshing
// otherwise.
func (c *CachedManager) ListAll() ([]types.StartupEntry, error) {
	c.mu.RLock()
	if c.closed {
		c.mu.RUnlock()
		return nil, types.ErrClosed
	}
	if c.snap != nil && time.Since(c.snap.TakenAt) < c.ttl {
		entries := copyEntries(c.snap.Entries)
		c.mu.RUnlock()
		return entries, nil
	}
	c.mu.RUnlock()

	return c.Refresh()
}

// Refresh reloads every provider in parallel and installs the combined
// result as the new snapshot. A failing provider contributes nothing;
// its error is logged and kept for Diagnostics rather than failing the
// refresh.
func (c *CachedManager) Refresh() ([]types.StartupEntry, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil, types.ErrClosed
	}

	provs := c.mgr.Providers()
	results := make([][]types.StartupEntry, len(provs))
	errs := make([]error, len(provs))

	var wg sync.WaitGroup
	for i, p := range provs {
		wg.Add(1)
		go func(i int, p providers.Provider) {
			defer wg.Done()
			results[i], errs[i] = p.ListAll()
		}(i, p)
	}
	wg.Wait()

	var entries []types.StartupEntry
	var failures []ProviderFailure
	for i, p := range provs {
		if errs[i] != nil {
			c.log.Warn("provider failed during cache refresh",
				zap.String("provider", p.Name()), zap.Error(errs[i]))
			failures = append(failures, ProviderFailure{Provider: p.Name(), Err: errs[i]})
			continue
		}
		entries = append(entries, results[i]...)
	}

	c.snap = &types.Snapshot{Entries: entries, TakenAt: time.Now()}
	c.failures = failures
	return copyEntries(entries), nil
}

// copyEntries shields the shared snapshot from writes through returned
// slices.
func copyEntries(entries []types.StartupEntry) []types.StartupEntry {
	out := make([]types.StartupEntry, len(entries))
	copy(out, entries)
	return out
}

// Diagnostics returns the provider failures recorded by the most recent
// refresh. Best-effort listing deliberately hides them from ListAll;
// this channel keeps silence from masking misconfiguration.
func (c *CachedManager) Diagnostics() []ProviderFailure {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]ProviderFailure, len(c.failures))
	copy(out, c.failures)
	return out
}

// Invalidate discards any cached snapshot. Calling it redundantly is
// harmless.
func (c *CachedManager) Invalidate() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return types.ErrClosed
	}
	c.snap = nil
	return nil
}

// Exists always dispatches to the provider; presence checks never
// consult or populate the cache.
func (c *CachedManager) Exists(name string, scope types.Scope, kind types.Kind) (bool, error) {
	if err := c.check(); err != nil {
		return false, err
	}
	return c.mgr.Exists(name, scope, kind)
}

// Add validates and dispatches like Manager, then invalidates the
// cache — even when the dispatch fails, since a failed write may still
// have mutated the backing store. The cache lock is not held during the
// store write, so a slow backing store does not block concurrent cached
// reads.
func (c *CachedManager) Add(entry types.StartupEntry) error {
	if err := c.check(); err != nil {
		return err
	}
	err := c.mgr.Add(entry)
	if invErr := c.Invalidate(); err == nil {
		err = invErr
	}
	return err
}

// Remove dispatches like Manager, then unconditionally invalidates the
// cache.
func (c *CachedManager) Remove(name string, scope types.Scope, kind types.Kind) error {
	if err := c.check(); err != nil {
		return err
	}
	err := c.mgr.Remove(name, scope, kind)
	if invErr := c.Invalidate(); err == nil {
		err = invErr
	}
	return err
}

// Close tears the manager down. Every later operation returns
// types.ErrClosed; closing twice is a no-op.
func (c *CachedManager) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	c.snap = nil
	return nil
}

func (c *CachedManager) check() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.closed {
		return types.ErrClosed
	}
	return nil
}
