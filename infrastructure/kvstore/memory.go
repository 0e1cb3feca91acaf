package kvstore

import (
	"context"
	"sync"

	"github.com/AzielCF/az-learn/domains/kv"
)

// MemoryBackend keeps items in a map. Data is lost on restart; used for tests
// and as the fallback when no persistent backend is configured.
type MemoryBackend struct {
	mu    sync.RWMutex
	items map[string]string
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{items: make(map[string]string)}
}

func (m *MemoryBackend) SetItem(ctx context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[key] = value
	return nil
}

func (m *MemoryBackend) GetItem(ctx context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.items[key]
	return v, ok, nil
}

func (m *MemoryBackend) RemoveItem(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, key)
	return nil
}

func (m *MemoryBackend) Clear(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items = make(map[string]string)
	return nil
}

func (m *MemoryBackend) Stats(ctx context.Context) (kv.Stats, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var st kv.Stats
	for k, v := range m.items {
		st.Keys++
		st.Bytes += int64(len(k) + len(v))
	}
	return st, nil
}
