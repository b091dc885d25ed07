package types

import "time"

// Scope selects which users an autostart entry applies to.
type Scope string

const (
	// ScopeCurrentUser maps to the per-user registry hive or the per-user
	// startup directory. No elevation required.
	ScopeCurrentUser Scope = "current_user"

	// ScopeAllUsers maps to the machine-wide hive or the shared startup
	// directory. Mutations require administrator rights.
	ScopeAllUsers Scope = "all_users"
)

// Scopes lists all scopes in enumeration order.
func Scopes() []Scope {
	return []Scope{ScopeCurrentUser, ScopeAllUsers}
}

// ParseScope converts a user-supplied string to a Scope.
func ParseScope(s string) (Scope, bool) {
	switch s {
	case string(ScopeCurrentUser), "user":
		return ScopeCurrentUser, true
	case string(ScopeAllUsers), "machine", "system":
		return ScopeAllUsers, true
	}
	return "", false
}

// Kind identifies the OS mechanism backing an autostart entry.
type Kind string

const (
	// KindRun is the registry Run key; entries persist across reboots.
	KindRun Kind = "run"

	// KindRunOnce is the registry RunOnce key. The OS removes the value
	// after one execution; that consumption happens outside this system,
	// so listings of RunOnce entries carry an inherent staleness.
	KindRunOnce Kind = "run_once"

	// KindStartupFolder is a .lnk shortcut in a startup directory.
	KindStartupFolder Kind = "startup_folder"
)

// ParseKind converts a user-supplied string to a Kind.
func ParseKind(s string) (Kind, bool) {
	switch s {
	case string(KindRun):
		return KindRun, true
	case string(KindRunOnce), "runonce":
		return KindRunOnce, true
	case string(KindStartupFolder), "folder", "startup":
		return KindStartupFolder, true
	}
	return "", false
}

// StartupEntry is one auto-start registration. Identity is
// (Name, Scope, Kind); adding an entry with a matching identity replaces
// the stored target and arguments rather than creating a duplicate.
type StartupEntry struct {
	Name       string `json:"name"`
	TargetPath string `json:"target_path"`
	Arguments  string `json:"arguments,omitempty"`
	Scope      Scope  `json:"scope"`
	Kind       Kind   `json:"kind"`
}

// SameIdentity reports whether two entries refer to the same registration.
func (e StartupEntry) SameIdentity(o StartupEntry) bool {
	return e.Name == o.Name && e.Scope == o.Scope && e.Kind == o.Kind
}

// Snapshot is a complete listing of all providers' entries captured at one
// refresh instant. It is replaced wholesale, never mutated in place.
type Snapshot struct {
	Entries []StartupEntry `json:"entries"`
	TakenAt time.Time      `json:"taken_at"`
}
