package badger

import (
	"errors"

	badger "github.com/dgraph-io/badger/v4"

	"go.hackfix.me/stash/store"
)

// Badger is a persistent store.Driver backed by BadgerDB.
type Badger struct {
	db *badger.DB
}

var _ store.Driver = &Badger{}

// Open opens or creates a Badger database at path.
func Open(path string) (*Badger, error) {
	opts := badger.DefaultOptions(path)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}

	return &Badger{db: db}, nil
}

func (s *Badger) Close() error {
	return s.db.Close()
}

func (s *Badger) Get(key string) ([]byte, error) {
	txn := s.db.NewTransaction(false)
	defer txn.Discard()

	item, err := txn.Get([]byte(key))
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, store.ErrNoEntry
		}
		return nil, err
	}

	val, err := item.ValueCopy(nil)
	if err != nil {
		return nil, err
	}

	return val, nil
}

func (s *Badger) Set(key string, value []byte) error {
	txn := s.db.NewTransaction(true)
	defer txn.Discard()

	err := txn.Set([]byte(key), value)
	if err != nil {
		return err
	}

	if err := txn.Commit(); err != nil {
		return err
	}

	return nil
}

func (s *Badger) Delete(key string) error {
	txn := s.db.NewTransaction(true)
	defer txn.Discard()

	err := txn.Delete([]byte(key))
	if err != nil {
		return err
	}

	return txn.Commit()
}

func (s *Badger) Clear() error {
	return s.db.DropAll()
}

func (s *Badger) Keys() ([]string, error) {
	txn := s.db.NewTransaction(false)
	defer txn.Discard()

	opts := badger.DefaultIteratorOptions
	// Enable key-only iteration, which is more efficient.
	opts.PrefetchValues = false

	it := txn.NewIterator(opts)
	defer it.Close()

	keys := []string{}
	for it.Rewind(); it.Valid(); it.Next() {
		item := it.Item()
		keys = append(keys, string(item.KeyCopy(nil)))
	}

	return keys, nil
}
