//go:build !windows

package regstore

import "errors"

// NewSystemStore is unavailable off Windows; callers fall back to an
// in-memory store or run folder-only.
func NewSystemStore() (Store, error) {
	return nil, errors.New("regstore: the system registry store requires Windows")
}
