// Package regstore abstracts the Windows registry Run/RunOnce keys as a
// scoped key-value store. Providers talk to the Store interface; the real
// registry implementation is Windows-only, and an in-memory implementation
// backs tests and non-Windows demo runs.
package regstore

import (
	"errors"

	"github.com/TristanAtze/WindowsAutostartApi/internal/types"
)

// Sentinel conditions the backing store can report.
var (
	// ErrNotExist means the key or value is absent.
	ErrNotExist = errors.New("regstore: key or value does not exist")

	// ErrAccessDenied means the caller lacks rights for the operation.
	ErrAccessDenied = errors.New("regstore: access denied")

	// ErrUnexpectedType means the value exists but is not a string.
	ErrUnexpectedType = errors.New("regstore: value is not a string")
)

// Store opens one registry key per (scope, kind) combination.
type Store interface {
	// Open returns a handle on the Run or RunOnce key for scope. With
	// write set, the key path is created when absent; without it, an
	// absent key reports ErrNotExist.
	Open(scope types.Scope, kind types.Kind, write bool) (Key, error)
}

// Key is an open registry key holding string values.
type Key interface {
	// Values lists the value names under the key.
	Values() ([]string, error)

	// GetString reads a named string value; ErrNotExist when absent.
	GetString(name string) (string, error)

	// SetString writes a named string value, replacing any previous one.
	SetString(name, value string) error

	// Delete removes a named value; ErrNotExist when absent.
	Delete(name string) error

	Close() error
}

// RunKeyPath is the key path holding autostart values, relative to the
// scope's hive root.
func RunKeyPath(kind types.Kind) string {
	if kind == types.KindRunOnce {
		return `Software\Microsoft\Windows\CurrentVersion\RunOnce`
	}
	return `Software\Microsoft\Windows\CurrentVersion\Run`
}
