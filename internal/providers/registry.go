package providers

import (
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/TristanAtze/WindowsAutostartApi/internal/cmdline"
	"github.com/TristanAtze/WindowsAutostartApi/internal/logging"
	"github.com/TristanAtze/WindowsAutostartApi/internal/regstore"
	"github.com/TristanAtze/WindowsAutostartApi/internal/types"
)

// Registry serves Run and RunOnce entries from a registry key store.
type Registry struct {
	store regstore.Store
	log   *logging.Logger
	mu    sync.Mutex
}

// NewRegistry creates a registry provider over store.
func NewRegistry(store regstore.Store, log *logging.Logger) *Registry {
	if log == nil {
		log = logging.NewNop()
	}
	return &Registry{store: store, log: log}
}

// Name implements Provider.
func (r *Registry) Name() string { return "registry" }

// Supports implements Provider.
func (r *Registry) Supports(kind types.Kind) bool {
	return kind == types.KindRun || kind == types.KindRunOnce
}

// ListAll enumerates both scopes across Run and RunOnce. A scope/kind
// combination whose key is absent or denied contributes zero entries;
// values that do not decode to a target are skipped.
func (r *Registry) ListAll() ([]types.StartupEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var entries []types.StartupEntry
	for _, scope := range types.Scopes() {
		for _, kind := range []types.Kind{types.KindRun, types.KindRunOnce} {
			part, err := r.listKey(scope, kind)
			if err != nil {
				return nil, err
			}
			entries = append(entries, part...)
		}
	}
	return entries, nil
}

func (r *Registry) listKey(scope types.Scope, kind types.Kind) ([]types.StartupEntry, error) {
	key, err := r.store.Open(scope, kind, false)
	if errors.Is(err, regstore.ErrNotExist) || errors.Is(err, regstore.ErrAccessDenied) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer key.Close()

	names, err := key.Values()
	if err != nil {
		return nil, err
	}

	var entries []types.StartupEntry
	for _, name := range names {
		raw, err := key.GetString(name)
		if err != nil {
			continue
		}
		target, args, err := cmdline.Split(raw)
		if err != nil || target == "" {
			r.log.Debug("skipping undecodable registry value",
				zap.String("name", name), zap.String("scope", string(scope)))
			continue
		}
		entries = append(entries, types.StartupEntry{
			Name:       name,
			TargetPath: target,
			Arguments:  args,
			Scope:      scope,
			Kind:       kind,
		})
	}
	return entries, nil
}

// Exists reports raw presence of the named value. It deliberately does
// not read or decode the value, so an entry of an unexpected registry
// type still counts as present.
func (r *Registry) Exists(name string, scope types.Scope, kind types.Kind) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key, err := r.store.Open(scope, kind, false)
	if errors.Is(err, regstore.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, r.translate("open", name, scope, err)
	}
	defer key.Close()

	names, err := key.Values()
	if err != nil {
		return false, r.translate("read", name, scope, err)
	}
	for _, n := range names {
		if n == name {
			return true, nil
		}
	}
	return false, nil
}

// Add writes the joined command string, creating the key path if absent.
func (r *Registry) Add(entry types.StartupEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key, err := r.store.Open(entry.Scope, entry.Kind, true)
	if err != nil {
		return r.translate("add", entry.Name, entry.Scope, err)
	}
	defer key.Close()

	if err := key.SetString(entry.Name, cmdline.Join(entry.TargetPath, entry.Arguments)); err != nil {
		return r.translate("add", entry.Name, entry.Scope, err)
	}
	return nil
}

// Remove deletes the named value; an absent value is a no-op.
func (r *Registry) Remove(name string, scope types.Scope, kind types.Kind) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key, err := r.store.Open(scope, kind, true)
	if errors.Is(err, regstore.ErrNotExist) {
		return nil
	}
	if err != nil {
		return r.translate("remove", name, scope, err)
	}
	defer key.Close()

	err = key.Delete(name)
	if errors.Is(err, regstore.ErrNotExist) {
		return nil
	}
	if err != nil {
		return r.translate("remove", name, scope, err)
	}
	return nil
}

func (r *Registry) translate(op, name string, scope types.Scope, err error) error {
	if errors.Is(err, regstore.ErrAccessDenied) {
		return &types.AccessError{Scope: scope, Cause: err}
	}
	return &types.OperationError{Op: op, Entry: name, Cause: err}
}
