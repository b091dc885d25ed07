// Package autostart aggregates startup-entry providers behind one
// add/remove/list/exists surface. Manager routes each request to the
// first provider supporting the requested kind and validates entries
// before dispatch; CachedManager adds a time-bounded read cache with
// explicit invalidation; ResultManager returns tagged outcomes instead
// of errors.
package autostart
