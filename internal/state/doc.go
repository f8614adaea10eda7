// Package state keeps the outcome of the most recent weather fetch.
//
// Fetch units run concurrently and report here when they finish, in
// completion order. The store is used for log context (how many refreshes
// in a row have failed, when the last good reading arrived); the overlay's
// displayed text is owned by the overlay model, not by this package.
//
// Update semantics:
//
//	store.Update(&reading, nil)  // replace reading, clear error, reset failures
//	store.Update(nil, err)       // keep reading, record error, failures++
//
// Snapshot returns a copy; the error is re-wrapped so callers never share
// the stored error value. The zero Store is ready to use.
package state
