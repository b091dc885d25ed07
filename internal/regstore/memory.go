package regstore

import (
	"sort"
	"sync"

	"github.com/TristanAtze/WindowsAutostartApi/internal/types"
)

// MemStore is an in-memory Store used by tests and by demo runs on hosts
// without a registry. Scopes can be marked denied to simulate missing
// elevation.
type MemStore struct {
	mu     sync.Mutex
	keys   map[string]map[string]string
	binary map[string]map[string]bool
	denied map[types.Scope]bool
}

// NewMemStore returns an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{
		keys:   make(map[string]map[string]string),
		binary: make(map[string]map[string]bool),
		denied: make(map[types.Scope]bool),
	}
}

// DenyScope makes every subsequent Open for scope fail with
// ErrAccessDenied.
func (m *MemStore) DenyScope(scope types.Scope) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.denied[scope] = true
}

// Seed writes a raw command value directly, bypassing Open.
func (m *MemStore) Seed(scope types.Scope, kind types.Kind, name, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := keyID(scope, kind)
	if m.keys[id] == nil {
		m.keys[id] = make(map[string]string)
	}
	m.keys[id][name] = value
}

// SeedBinary writes a value of a non-string registry type: it shows up
// in Values but GetString reports ErrUnexpectedType.
func (m *MemStore) SeedBinary(scope types.Scope, kind types.Kind, name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := keyID(scope, kind)
	if m.keys[id] == nil {
		m.keys[id] = make(map[string]string)
	}
	if m.binary[id] == nil {
		m.binary[id] = make(map[string]bool)
	}
	m.keys[id][name] = ""
	m.binary[id][name] = true
}

// Open implements Store.
func (m *MemStore) Open(scope types.Scope, kind types.Kind, write bool) (Key, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.denied[scope] {
		return nil, ErrAccessDenied
	}

	id := keyID(scope, kind)
	if m.keys[id] == nil {
		if !write {
			return nil, ErrNotExist
		}
		m.keys[id] = make(map[string]string)
	}
	return &memKey{store: m, id: id, values: m.keys[id]}, nil
}

type memKey struct {
	store  *MemStore
	id     string
	values map[string]string
}

func (k *memKey) Values() ([]string, error) {
	k.store.mu.Lock()
	defer k.store.mu.Unlock()
	names := make([]string, 0, len(k.values))
	for name := range k.values {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (k *memKey) GetString(name string) (string, error) {
	k.store.mu.Lock()
	defer k.store.mu.Unlock()
	v, ok := k.values[name]
	if !ok {
		return "", ErrNotExist
	}
	if k.store.binary[k.id][name] {
		return "", ErrUnexpectedType
	}
	return v, nil
}

func (k *memKey) SetString(name, value string) error {
	k.store.mu.Lock()
	defer k.store.mu.Unlock()
	k.values[name] = value
	delete(k.store.binary[k.id], name)
	return nil
}

func (k *memKey) Delete(name string) error {
	k.store.mu.Lock()
	defer k.store.mu.Unlock()
	if _, ok := k.values[name]; !ok {
		return ErrNotExist
	}
	delete(k.values, name)
	delete(k.store.binary[k.id], name)
	return nil
}

func (k *memKey) Close() error { return nil }

func keyID(scope types.Scope, kind types.Kind) string {
	return string(scope) + "|" + RunKeyPath(kind)
}
