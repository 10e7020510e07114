// Package store persists encrypted ledger partitions. A partition is one
// named, independently encrypted slice of one user's data; the RecordStore
// maps (user, partition) pairs onto a flat key-value backend the way the
// original kept them in browser Web Storage.
package store

import (
	"errors"
	"sync"
)

// ErrNotFound means the key was never written. It is distinct from a
// decode failure: a missing partition gets the documented default shell.
var ErrNotFound = errors.New("store: not found")

// KV is the pluggable flat key-value backend. Implementations must be safe
// for concurrent use within a single process.
type KV interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Delete(key string) error
}

// MemoryKV is an in-memory KV for local development and tests.
type MemoryKV struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewMemoryKV creates an empty in-memory backend.
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{data: make(map[string]string)}
}

func (m *MemoryKV) Get(key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.data[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

func (m *MemoryKV) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.data[key] = value
	return nil
}

func (m *MemoryKV) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.data, key)
	return nil
}
