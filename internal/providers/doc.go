// Package providers implements the startup-entry sources the managers
// aggregate: the registry Run/RunOnce keys and the startup folders. Each
// provider owns exclusive access to one backing store, serializes its own
// operations with a per-instance lock, and translates backing-store
// failures into the shared error taxonomy.
package providers
