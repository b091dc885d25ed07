package autostart

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/TristanAtze/WindowsAutostartApi/internal/logging"
	"github.com/TristanAtze/WindowsAutostartApi/internal/providers"
	"github.com/TristanAtze/WindowsAutostartApi/internal/types"
	"github.com/TristanAtze/WindowsAutostartApi/internal/winpath"
)

// MaxArguments is the longest accepted argument string.
const MaxArguments = 1024

// Manager routes autostart operations across an ordered set of
// providers. Registration order is a contract: Exists, Add, and Remove
// go to the first provider whose Supports reports true for the kind,
// and ListAll concatenates results in registration order.
type Manager struct {
	providers []providers.Provider
	log       *logging.Logger
}

// NewManager creates a manager over the given providers.
func NewManager(log *logging.Logger, provs ...providers.Provider) *Manager {
	if log == nil {
		log = logging.NewNop()
	}
	return &Manager{providers: provs, log: log}
}

// Providers returns the registered providers in order.
func (m *Manager) Providers() []providers.Provider {
	return m.providers
}

// ListAll concatenates every provider's listing. A provider failing
// during enumeration fails the whole call; callers wanting best-effort
// listing use CachedManager or ResultManager.
func (m *Manager) ListAll() ([]types.StartupEntry, error) {
	var entries []types.StartupEntry
	for _, p := range m.providers {
		part, err := p.ListAll()
		if err != nil {
			return nil, fmt.Errorf("provider %s: %w", p.Name(), err)
		}
		entries = append(entries, part...)
	}
	return entries, nil
}

// Exists reports whether the named entry is present.
func (m *Manager) Exists(name string, scope types.Scope, kind types.Kind) (bool, error) {
	p, err := m.providerFor(kind)
	if err != nil {
		return false, err
	}
	return p.Exists(name, scope, kind)
}

// Add validates the entry and dispatches it to the provider for its
// kind. Adding an entry whose identity (Name, Scope, Kind) already
// exists replaces the stored target and arguments.
func (m *Manager) Add(entry types.StartupEntry) error {
	if err := ValidateEntry(entry); err != nil {
		return err
	}
	p, err := m.providerFor(entry.Kind)
	if err != nil {
		return err
	}
	if err := p.Add(entry); err != nil {
		return err
	}
	m.log.Debug("added autostart entry",
		zap.String("name", entry.Name),
		zap.String("kind", string(entry.Kind)),
		zap.String("scope", string(entry.Scope)))
	return nil
}

// Remove deletes the named entry; removing an absent entry is a no-op.
func (m *Manager) Remove(name string, scope types.Scope, kind types.Kind) error {
	p, err := m.providerFor(kind)
	if err != nil {
		return err
	}
	if err := p.Remove(name, scope, kind); err != nil {
		return err
	}
	m.log.Debug("removed autostart entry",
		zap.String("name", name),
		zap.String("kind", string(kind)),
		zap.String("scope", string(scope)))
	return nil
}

// providerFor returns the first registered provider supporting kind.
func (m *Manager) providerFor(kind types.Kind) (providers.Provider, error) {
	for _, p := range m.providers {
		if p.Supports(kind) {
			return p, nil
		}
	}
	return nil, &types.NotSupportedError{Kind: kind}
}

// ValidateEntry checks an entry against the naming, path, and argument
// rules before any provider I/O happens.
func ValidateEntry(entry types.StartupEntry) error {
	if entry.Name == "" {
		return &types.ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if !winpath.IsValidEntryName(entry.Name) {
		return &types.ValidationError{Field: "name", Reason: "contains invalid characters or is too long"}
	}
	if entry.TargetPath == "" {
		return &types.ValidationError{Field: "target path", Reason: "must not be empty"}
	}
	if !winpath.IsValidPath(entry.TargetPath) {
		return &types.ValidationError{Field: "target path", Reason: "is not a valid Windows path"}
	}
	if len(entry.Arguments) > MaxArguments {
		return &types.ValidationError{
			Field:  "arguments",
			Reason: fmt.Sprintf("exceed %d characters", MaxArguments),
		}
	}
	return nil
}
