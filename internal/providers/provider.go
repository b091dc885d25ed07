package providers

import "github.com/TristanAtze/WindowsAutostartApi/internal/types"

// Provider is one startup-entry source.
//
// Implementations serialize their own operations: two concurrent calls
// into the same instance never interleave at the backing-store level.
type Provider interface {
	// Name identifies the provider in diagnostics and logs.
	Name() string

	// Supports reports whether this provider handles entries of kind.
	Supports(kind types.Kind) bool

	// ListAll enumerates every entry this provider can see, across all
	// scopes, in scope-then-kind-then-store order.
	ListAll() ([]types.StartupEntry, error)

	// Exists reports raw presence of the named entry without decoding it.
	Exists(name string, scope types.Scope, kind types.Kind) (bool, error)

	// Add writes the entry, replacing any existing entry with the same
	// identity.
	Add(entry types.StartupEntry) error

	// Remove deletes the named entry; removing an absent entry is a
	// no-op.
	Remove(name string, scope types.Scope, kind types.Kind) error
}
