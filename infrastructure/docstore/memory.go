package docstore

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/AzielCF/az-learn/domains/remote"
)

// MemoryStore is an in-process remote.Store. It follows the same ordering,
// cursor and sentinel rules as GormStore and backs tests and offline runs.
type MemoryStore struct {
	mu          sync.RWMutex
	collections map[string]map[string]map[string]any
	now         func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		collections: make(map[string]map[string]map[string]any),
		now:         time.Now,
	}
}

// SetClock overrides the time used for server timestamps.
func (m *MemoryStore) SetClock(now func() time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = now
}

func (m *MemoryStore) Query(ctx context.Context, q remote.Query) ([]remote.Document, error) {
	m.mu.RLock()
	coll := m.collections[q.Collection]
	docs := make([]remote.Document, 0, len(coll))
	for id, data := range coll {
		docs = append(docs, remote.Document{ID: id, Data: cloneMap(data)})
	}
	m.mu.RUnlock()

	return applyQuery(q, docs), nil
}

func (m *MemoryStore) Get(ctx context.Context, collection, id string) (remote.Document, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.collections[collection][id]
	if !ok {
		return remote.Document{}, false, nil
	}
	return remote.Document{ID: id, Data: cloneMap(data)}, true, nil
}

func (m *MemoryStore) Add(ctx context.Context, collection string, data map[string]any) (string, error) {
	id := uuid.NewString()
	return id, m.Set(ctx, collection, id, data, false)
}

func (m *MemoryStore) Set(ctx context.Context, collection, id string, data map[string]any, merge bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	coll, ok := m.collections[collection]
	if !ok {
		coll = make(map[string]map[string]any)
		m.collections[collection] = coll
	}
	coll[id] = cloneMap(remote.Resolve(coll[id], data, m.now(), merge))
	return nil
}

func (m *MemoryStore) Update(ctx context.Context, collection, id string, patch map[string]any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	prev, ok := m.collections[collection][id]
	if !ok {
		return remote.ErrNotFound
	}
	m.collections[collection][id] = cloneMap(remote.Resolve(prev, patch, m.now(), true))
	return nil
}

func (m *MemoryStore) Delete(ctx context.Context, collection, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.collections[collection], id)
	return nil
}

func cloneMap(in map[string]any) map[string]any {
	if in == nil {
		return nil
	}
	out := make(map[string]any, len(in))
	for k, v := range in {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return cloneMap(t)
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = cloneValue(e)
		}
		return out
	case []string:
		return append([]string(nil), t...)
	}
	return v
}
