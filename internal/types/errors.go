package types

import (
	"errors"
	"fmt"
)

// ErrClosed is returned by every operation on a closed cached manager.
var ErrClosed = errors.New("autostart manager is closed")

// ValidationError reports a malformed entry, caught before any I/O.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid startup entry: %s %s", e.Field, e.Reason)
}

// NotSupportedError reports that no registered provider handles a kind.
type NotSupportedError struct {
	Kind Kind
}

func (e *NotSupportedError) Error() string {
	return fmt.Sprintf("no provider supports entry kind %q", e.Kind)
}

// AccessError reports a permission-denied condition from a backing store.
// For the all-users scope the message tells the caller that elevation is
// required; calling code relies on that to offer retry-as-admin guidance.
type AccessError struct {
	Scope Scope
	Cause error
}

func (e *AccessError) Error() string {
	if e.Scope == ScopeAllUsers {
		return fmt.Sprintf("access denied for scope %q: administrator rights are likely required: %v", e.Scope, e.Cause)
	}
	return fmt.Sprintf("access denied for scope %q: %v", e.Scope, e.Cause)
}

func (e *AccessError) Unwrap() error { return e.Cause }

// OperationError reports an I/O fault distinct from access denial, such as
// a locked file or a malformed registry value, during add or remove.
type OperationError struct {
	Op    string
	Entry string
	Cause error
}

func (e *OperationError) Error() string {
	return fmt.Sprintf("%s %q failed: %v", e.Op, e.Entry, e.Cause)
}

func (e *OperationError) Unwrap() error { return e.Cause }
