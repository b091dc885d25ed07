//go:build windows

package regstore

import (
	"errors"
	"fmt"

	"golang.org/x/sys/windows"
	"golang.org/x/sys/windows/registry"

	"github.com/TristanAtze/WindowsAutostartApi/internal/types"
)

// SystemStore reads and writes the live Windows registry.
type SystemStore struct{}

// NewSystemStore returns a Store backed by the OS registry.
func NewSystemStore() (Store, error) {
	return SystemStore{}, nil
}

// Open opens the Run/RunOnce key under HKCU or HKLM depending on scope.
func (SystemStore) Open(scope types.Scope, kind types.Kind, write bool) (Key, error) {
	root := registry.CURRENT_USER
	if scope == types.ScopeAllUsers {
		root = registry.LOCAL_MACHINE
	}

	access := uint32(registry.QUERY_VALUE | registry.ENUMERATE_SUB_KEYS)
	if write {
		access |= registry.SET_VALUE
	}

	var (
		k   registry.Key
		err error
	)
	if write {
		k, _, err = registry.CreateKey(root, RunKeyPath(kind), access)
	} else {
		k, err = registry.OpenKey(root, RunKeyPath(kind), access)
	}
	if err != nil {
		return nil, translate(err)
	}
	return systemKey{k}, nil
}

type systemKey struct {
	k registry.Key
}

func (s systemKey) Values() ([]string, error) {
	names, err := s.k.ReadValueNames(0)
	if err != nil {
		return nil, translate(err)
	}
	return names, nil
}

func (s systemKey) GetString(name string) (string, error) {
	v, _, err := s.k.GetStringValue(name)
	if err != nil {
		return "", translate(err)
	}
	return v, nil
}

func (s systemKey) SetString(name, value string) error {
	return translate(s.k.SetStringValue(name, value))
}

func (s systemKey) Delete(name string) error {
	return translate(s.k.DeleteValue(name))
}

func (s systemKey) Close() error {
	return s.k.Close()
}

func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, registry.ErrNotExist), errors.Is(err, windows.ERROR_FILE_NOT_FOUND):
		return ErrNotExist
	case errors.Is(err, registry.ErrUnexpectedType):
		return ErrUnexpectedType
	case errors.Is(err, windows.ERROR_ACCESS_DENIED):
		return ErrAccessDenied
	default:
		return fmt.Errorf("regstore: %w", err)
	}
}
