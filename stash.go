// Package stash is a namespacing and serialization layer over flat
// synchronous key/value drivers. A Store operates on a private, prefixed
// slice of a shared keyspace, JSON-encoding values on the way in and
// decoding them on the way out. Operational failures are returned as
// error values from every operation; the package never panics on the
// data path.
package stash

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"reflect"

	"go.hackfix.me/stash/store"
	"go.hackfix.me/stash/store/badger"
	"go.hackfix.me/stash/store/memory"
)

// Store exposes namespaced operations over a single backing driver. The
// driver and key prefix are fixed at construction. A Store holds no other
// state; every operation is synchronous and independent.
//
// The backing driver is a shared resource: other Store instances (with
// the same or different prefixes) and code outside this package may
// mutate the same keyspace. Clear and Iterate enumerate and then act
// without any atomicity guarantee against such interleaved mutation.
type Store struct {
	driver store.Driver
	prefix string
	logger *slog.Logger
}

// New creates a Store bound to a resolved driver. The requested driver is
// probed with a write-read-delete round trip before being bound; an
// unavailable driver fails construction loudly rather than silently
// substituting a no-op fallback.
func New(opts ...Option) (*Store, error) {
	cfg := &config{
		driver: DriverBadger,
		prefix: DefaultKeyPrefix,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	drv := cfg.store
	if drv == nil {
		var err error
		drv, err = openDriver(cfg.driver, cfg.dataDir)
		if err != nil {
			return nil, err
		}
		if err = probe(drv); err != nil {
			drv.Close()
			return nil, NewRuntimeError(
				fmt.Sprintf("driver '%s' is unavailable", cfg.driver), err)
		}
	}

	return &Store{driver: drv, prefix: cfg.prefix, logger: cfg.logger}, nil
}

func openDriver(d Driver, dataDir string) (store.Driver, error) {
	switch d {
	case DriverBadger:
		if dataDir == "" {
			dataDir = DefaultDataDir()
		}
		b, err := badger.Open(dataDir)
		if err != nil {
			return nil, NewRuntimeError("failed opening badger driver", err)
		}
		return b, nil
	case DriverMemory:
		return memory.New(), nil
	}

	return nil, NewInvalidArgumentError(fmt.Sprintf("unknown driver '%s'", d))
}

// Close releases the backing driver.
func (s *Store) Close() error {
	return s.driver.Close()
}

// GetItem reads and decodes the value stored under key. A key that was
// never written yields (nil, nil); absence is not an error, and is
// indistinguishable from a stored JSON null without checking Keys.
func (s *Store) GetItem(key string) (any, error) {
	raw, err := s.driver.Get(joinKey(s.prefix, key))
	if errors.Is(err, store.ErrNoEntry) {
		return nil, nil
	}
	if err != nil {
		return nil, s.fail("get", key, "failed reading value", err)
	}

	var val any
	if err := json.Unmarshal(raw, &val); err != nil {
		return nil, s.fail("get", key, "failed decoding stored value", err)
	}

	return val, nil
}

// SetItem encodes value as JSON and stores it under key, overwriting any
// previous entry. Nil and function-typed values are normalized to JSON
// null before encoding. Values the encoder rejects (cyclic structures,
// non-finite numbers, channels) fail the operation.
func (s *Store) SetItem(key string, value any) error {
	enc, err := json.Marshal(normalize(value))
	if err != nil {
		return s.fail("set", key, "failed encoding value", err)
	}

	if err := s.driver.Set(joinKey(s.prefix, key), enc); err != nil {
		return s.fail("set", key, "failed writing value", err)
	}

	return nil
}

// RemoveItem deletes the entry stored under key. Removing a key that
// doesn't exist is not an error.
func (s *Store) RemoveItem(key string) error {
	if err := s.driver.Delete(joinKey(s.prefix, key)); err != nil {
		return s.fail("remove", key, "failed deleting value", err)
	}

	return nil
}

// Clear deletes every entry in the namespace, leaving all other entries
// in the driver untouched. The first failure aborts the loop; entries
// already deleted are not restored.
func (s *Store) Clear() error {
	fullKeys, err := s.driver.Keys()
	if err != nil {
		return s.fail("clear", "", "failed enumerating keys", err)
	}

	for _, fk := range fullKeys {
		if !inNamespace(s.prefix, fk) {
			continue
		}
		if err := s.driver.Delete(fk); err != nil {
			return s.fail("clear", trimKey(s.prefix, fk), "failed deleting value", err)
		}
	}

	return nil
}

// Keys returns the bare keys of all entries in the namespace, in the
// driver's enumeration order. Sort the result if deterministic order
// matters.
func (s *Store) Keys() ([]string, error) {
	fullKeys, err := s.driver.Keys()
	if err != nil {
		return nil, s.fail("keys", "", "failed enumerating keys", err)
	}

	keys := make([]string, 0, len(fullKeys))
	for _, fk := range fullKeys {
		if inNamespace(s.prefix, fk) {
			keys = append(keys, trimKey(s.prefix, fk))
		}
	}

	return keys, nil
}

// Length returns the number of entries in the namespace.
func (s *Store) Length() (int, error) {
	keys, err := s.Keys()
	if err != nil {
		return 0, err
	}

	return len(keys), nil
}

// Iterate invokes fn with the decoded value and bare key of every entry
// in the namespace, in the driver's enumeration order. An error returned
// by fn halts traversal and is returned; a panic inside fn is recovered
// and returned the same way, so no callback failure escapes the call.
// Mutating the store from inside fn is not guarded against and can skip
// or duplicate entries.
func (s *Store) Iterate(fn func(value any, key string) error) (err error) {
	if fn == nil {
		return NewInvalidArgumentError("iterate callback must not be nil")
	}

	fullKeys, kerr := s.driver.Keys()
	if kerr != nil {
		return s.fail("iterate", "", "failed enumerating keys", kerr)
	}

	defer func() {
		if r := recover(); r != nil {
			err = NewRuntimeError(fmt.Sprintf("iterate callback panicked: %v", r), nil)
		}
	}()

	for _, fk := range fullKeys {
		if !inNamespace(s.prefix, fk) {
			continue
		}

		key := trimKey(s.prefix, fk)
		raw, gerr := s.driver.Get(fk)
		if errors.Is(gerr, store.ErrNoEntry) {
			// The entry was removed between enumeration and read.
			continue
		}
		if gerr != nil {
			return s.fail("iterate", key, "failed reading value", gerr)
		}

		var val any
		if uerr := json.Unmarshal(raw, &val); uerr != nil {
			return s.fail("iterate", key, "failed decoding stored value", uerr)
		}

		if cberr := fn(val, key); cberr != nil {
			return NewRuntimeError("iterate callback failed", cberr)
		}
	}

	return nil
}

// normalize makes the JSON encoder's coercions explicit: nil and
// function-typed values become JSON null.
func normalize(v any) any {
	if v == nil {
		return nil
	}
	if reflect.ValueOf(v).Kind() == reflect.Func {
		return nil
	}
	return v
}

func (s *Store) fail(op, key, msg string, cause error) error {
	s.logger.Error(msg, "op", op, "key", key, "error", cause)
	return NewRuntimeError(msg, cause)
}
