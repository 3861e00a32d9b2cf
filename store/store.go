package store

import "errors"

// ErrNoEntry is returned by Driver.Get when no entry exists for a key.
// Absence is a normal outcome, not a failure; callers check for it with
// errors.Is.
var ErrNoEntry = errors.New("no entry for key")

// Driver defines the operations a backing key-value store must implement.
// All methods are synchronous, and any of them may fail with a
// driver-specific error (full storage, closed handle, I/O failure).
//
// Keys enumerates the keyspace in whatever order the underlying engine
// provides; the order is not stable and callers must not depend on it.
type Driver interface {
	Close() error
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Delete(key string) error
	Clear() error
	Keys() ([]string, error)
}
