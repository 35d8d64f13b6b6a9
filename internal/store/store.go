// Package store provides the key-value storage backends that hold the
// persisted application state.
package store

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"
)

// KV is the persistent storage collaborator: one text value per key.
type KV interface {
	// Get returns the value for key and whether it exists.
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Delete(key string) error
	Close() error
}

// Backend names accepted by Open.
const (
	BackendSQLite = "sqlite"
	BackendDisk   = "disk"
	BackendMemory = "memory"
)

// Backends lists the accepted backend names.
var Backends = []string{BackendSQLite, BackendDisk, BackendMemory}

// Open returns the backend rooted at dataDir.
func Open(backend, dataDir string) (KV, error) {
	switch backend {
	case "", BackendSQLite:
		return OpenSQLite(filepath.Join(dataDir, "state.db"))
	case BackendDisk:
		return OpenDisk(filepath.Join(dataDir, "kv")), nil
	case BackendMemory:
		return NewMemory(), nil
	}
	return nil, fmt.Errorf("unknown storage backend %q (want %s)", backend, strings.Join(Backends, ", "))
}

// Memory is a map-backed KV that forgets everything on exit.
type Memory struct {
	mu   sync.Mutex
	data map[string]string
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{data: make(map[string]string)}
}

// Get implements KV.
func (m *Memory) Get(key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	return v, ok, nil
}

// Set implements KV.
func (m *Memory) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

// Delete implements KV.
func (m *Memory) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

// Close implements KV.
func (m *Memory) Close() error { return nil }
