// internal/store/memory.go
//
// In-memory implementation of Store.
// Characteristics:
//   - Records keyed by save name in a map, copied in and out.
//   - Concurrency-safe via RWMutex.
//   - State is lost when the process exits; used by tests.

package store

import (
	"context"
	"sort"
	"sync"
)

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu    sync.RWMutex      // guards saves map
	saves map[string][]byte // keyed by save name
}

// NewMemory constructs a new in-memory Store.
func NewMemory() Store {
	return &memory{saves: make(map[string][]byte)}
}

func (m *memory) Save(_ context.Context, name string, record []byte) error {
	if err := checkName(name); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saves[name] = append([]byte(nil), record...)
	return nil
}

func (m *memory) Load(_ context.Context, name string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if r, ok := m.saves[name]; ok {
		return append([]byte(nil), r...), nil
	}
	return nil, ErrNotFound
}

func (m *memory) Exists(_ context.Context, name string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.saves[name]
	return ok, nil
}

func (m *memory) List(context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	names := make([]string, 0, len(m.saves))
	for n := range m.saves {
		names = append(names, n)
	}
	sort.Strings(names)
	return names, nil
}

func (m *memory) Close() error { return nil }
