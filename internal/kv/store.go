// ABOUTME: Key-value store abstraction shared by every storage backend.
// ABOUTME: Values are opaque bytes; callers layer JSON on top.
package kv

import "errors"

// ErrNotFound is returned by Get when the key has never been set or was deleted.
var ErrNotFound = errors.New("key not found")

// Store is the persistence collaborator the repository is built on.
// Implementations must be safe for sequential use; the bundled ones are also
// safe for concurrent use.
type Store interface {
	// Get returns the value for key, or ErrNotFound.
	Get(key string) ([]byte, error)
	// Set stores value under key, replacing any previous value.
	Set(key string, value []byte) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(key string) error
	// Keys lists every stored key.
	Keys() ([]string, error)
	Close() error
}
