// Package store is the persistence boundary for per-user session state.
// Values are opaque serialized blobs; callers own the encoding.
package store

import "github.com/google/uuid"

type Store interface {
	// Get returns the stored value for key, with found=false when the key
	// has never been set (or was removed).
	Get(userID uuid.UUID, key string) (value []byte, found bool, err error)
	Set(userID uuid.UUID, key string, value []byte) error
	Remove(userID uuid.UUID, key string) error
	// RemoveAll clears every key in the user's namespace. Used only by the
	// full-account reset.
	RemoveAll(userID uuid.UUID) error
}
