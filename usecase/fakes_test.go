package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/AzielCF/az-learn/domains/remote"
	"github.com/AzielCF/az-learn/infrastructure/docstore"
	"github.com/AzielCF/az-learn/infrastructure/kvstore"
	"github.com/AzielCF/az-learn/pkg/localcache"
)

var errNetwork = errors.New("network unreachable")

// fakeStore wraps the in-memory store with call counters and injectable failures.
type fakeStore struct {
	*docstore.MemoryStore

	mu         sync.Mutex
	calls      map[string]int
	failOps    map[string]bool
	failPrefix string
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		MemoryStore: docstore.NewMemoryStore(),
		calls:       map[string]int{},
		failOps:     map[string]bool{},
	}
}

func (f *fakeStore) hit(op, collection string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[op]++
	if f.failOps[op] || (f.failPrefix != "" && strings.HasPrefix(collection, f.failPrefix)) {
		return errors.Join(remote.ErrUnavailable, errNetwork)
	}
	return nil
}

func (f *fakeStore) count(op string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[op]
}

func (f *fakeStore) fail(op string, on bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failOps[op] = on
}

func (f *fakeStore) Query(ctx context.Context, q remote.Query) ([]remote.Document, error) {
	if err := f.hit("query", q.Collection); err != nil {
		return nil, err
	}
	return f.MemoryStore.Query(ctx, q)
}

func (f *fakeStore) Get(ctx context.Context, collection, id string) (remote.Document, bool, error) {
	if err := f.hit("get", collection); err != nil {
		return remote.Document{}, false, err
	}
	return f.MemoryStore.Get(ctx, collection, id)
}

func (f *fakeStore) Add(ctx context.Context, collection string, data map[string]any) (string, error) {
	if err := f.hit("add", collection); err != nil {
		return "", err
	}
	return f.MemoryStore.Add(ctx, collection, data)
}

func (f *fakeStore) Set(ctx context.Context, collection, id string, data map[string]any, merge bool) error {
	if err := f.hit("set", collection); err != nil {
		return err
	}
	return f.MemoryStore.Set(ctx, collection, id, data, merge)
}

func (f *fakeStore) Update(ctx context.Context, collection, id string, patch map[string]any) error {
	if err := f.hit("update", collection); err != nil {
		return err
	}
	return f.MemoryStore.Update(ctx, collection, id, patch)
}

func (f *fakeStore) Delete(ctx context.Context, collection, id string) error {
	if err := f.hit("delete", collection); err != nil {
		return err
	}
	return f.MemoryStore.Delete(ctx, collection, id)
}

type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newTestCache(t *testing.T, clk *testClock) *localcache.Store {
	t.Helper()
	opts := []localcache.Option{}
	if clk != nil {
		opts = append(opts, localcache.WithClock(clk.Now))
	}
	return localcache.NewStore(kvstore.NewMemoryBackend(), opts...)
}
