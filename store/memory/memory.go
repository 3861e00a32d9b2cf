package memory

import (
	"sync"

	"go.hackfix.me/stash/store"
)

// Memory is an ephemeral in-process store.Driver. It is always available,
// and its contents are lost when the process exits. It is safe for
// concurrent use.
type Memory struct {
	mx   sync.RWMutex
	data map[string][]byte
}

var _ store.Driver = &Memory{}

// New creates an empty in-memory driver.
func New() *Memory {
	return &Memory{data: make(map[string][]byte)}
}

func (s *Memory) Close() error {
	return nil
}

func (s *Memory) Get(key string) ([]byte, error) {
	s.mx.RLock()
	defer s.mx.RUnlock()

	val, ok := s.data[key]
	if !ok {
		return nil, store.ErrNoEntry
	}

	return clone(val), nil
}

func (s *Memory) Set(key string, value []byte) error {
	s.mx.Lock()
	defer s.mx.Unlock()
	s.data[key] = clone(value)
	return nil
}

func (s *Memory) Delete(key string) error {
	s.mx.Lock()
	defer s.mx.Unlock()
	delete(s.data, key)
	return nil
}

func (s *Memory) Clear() error {
	s.mx.Lock()
	defer s.mx.Unlock()
	s.data = make(map[string][]byte)
	return nil
}

func (s *Memory) Keys() ([]string, error) {
	s.mx.RLock()
	defer s.mx.RUnlock()

	keys := make([]string, 0, len(s.data))
	for k := range s.data {
		keys = append(keys, k)
	}

	return keys, nil
}

// clone copies driver-owned buffers so callers can't alias them.
func clone(b []byte) []byte {
	if b == nil {
		return nil
	}
	c := make([]byte, len(b))
	copy(c, b)
	return c
}
