package batch

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AzielCF/az-learn/domains/remote"
	"github.com/AzielCF/az-learn/infrastructure/docstore"
	"github.com/AzielCF/az-learn/infrastructure/kvstore"
	"github.com/AzielCF/az-learn/pkg/localcache"
)

type countingStore struct {
	*docstore.MemoryStore
	queries int
	fail    bool
}

func (c *countingStore) Query(ctx context.Context, q remote.Query) ([]remote.Document, error) {
	c.queries++
	if c.fail {
		return nil, errors.New("network down")
	}
	return c.MemoryStore.Query(ctx, q)
}

func setup(t *testing.T, n int) (*countingStore, *Loader, *localcache.Store) {
	t.Helper()
	store := &countingStore{MemoryStore: docstore.NewMemoryStore()}
	base := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	coll := remote.UserCollection("u1", "journals")
	for i := 0; i < n; i++ {
		require.NoError(t, store.Set(context.Background(), coll, fmt.Sprintf("j%02d", i), map[string]any{
			"title":     fmt.Sprintf("entry %d", i),
			"createdAt": base.Add(time.Duration(i) * time.Hour),
		}, false))
	}
	cache := localcache.NewStore(kvstore.NewMemoryBackend())
	return store, NewLoader(NewAccessor(store), cache), cache
}

func drain(t *testing.T, l *Loader, req Request) ([]string, int) {
	t.Helper()
	var ids []string
	calls := 0
	for {
		calls++
		page, err := l.LoadBatch(context.Background(), req)
		require.NoError(t, err)
		for _, d := range page.Items {
			ids = append(ids, d.ID)
		}
		if !page.HasMore {
			assert.Nil(t, page.LastVisible)
			return ids, calls
		}
		require.NotNil(t, page.LastVisible)
		req.LastVisible = page.Cursor()
	}
}

func TestLoadBatch_PaginationCompleteness(t *testing.T) {
	cases := []struct {
		n     int
		calls int
	}{
		{n: 0, calls: 1},
		{n: 7, calls: 1},
		{n: 25, calls: 3},
		// A full last page needs one more (empty) round-trip to learn it was the last.
		{n: 20, calls: 3},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("n=%d", tc.n), func(t *testing.T) {
			_, loader, _ := setup(t, tc.n)
			ids, calls := drain(t, loader, Request{UserID: "u1", CollectionPath: "journals"})

			assert.Equal(t, tc.calls, calls)
			require.Len(t, ids, tc.n)
			seen := map[string]bool{}
			for i, id := range ids {
				assert.False(t, seen[id], "duplicate %s", id)
				seen[id] = true
				assert.Equal(t, fmt.Sprintf("j%02d", tc.n-1-i), id, "newest first")
			}
		})
	}
}

func TestLoadBatch_FirstPageCached(t *testing.T) {
	store, loader, cache := setup(t, 15)
	ctx := context.Background()
	key := localcache.JournalsKey("u1")
	req := Request{UserID: "u1", CollectionPath: "journals", CacheKey: key}

	first, err := loader.LoadBatch(ctx, req)
	require.NoError(t, err)
	assert.False(t, first.FromCache)
	assert.Equal(t, 1, store.queries)

	cached, ok := localcache.Get[[]remote.Document](ctx, cache, key)
	require.True(t, ok)
	assert.Len(t, cached, 10)

	again, err := loader.LoadBatch(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, 1, store.queries, "cache hit must not reach the remote store")
	assert.True(t, again.FromCache)
	assert.True(t, again.HasMore)
	assert.Nil(t, again.LastVisible)
	require.NotNil(t, again.Cursor())
	assert.Equal(t, "j05", again.Cursor().ID)

	next, err := loader.LoadBatch(ctx, Request{UserID: "u1", CollectionPath: "journals", LastVisible: again.Cursor()})
	require.NoError(t, err)
	require.Len(t, next.Items, 5)
	assert.Equal(t, "j04", next.Items[0].ID)
	assert.False(t, next.HasMore)
}

func TestLoadBatch_LaterPagesAreNotCached(t *testing.T) {
	_, loader, cache := setup(t, 15)
	ctx := context.Background()
	key := localcache.JournalsKey("u1")

	first, err := loader.LoadBatch(ctx, Request{UserID: "u1", CollectionPath: "journals"})
	require.NoError(t, err)
	_, err = loader.LoadBatch(ctx, Request{UserID: "u1", CollectionPath: "journals", CacheKey: key, LastVisible: first.LastVisible})
	require.NoError(t, err)

	_, ok := localcache.Get[[]remote.Document](ctx, cache, key)
	assert.False(t, ok)
}

func TestLoadBatch_RemoteFailure(t *testing.T) {
	store, loader, cache := setup(t, 5)
	store.fail = true
	ctx := context.Background()
	key := localcache.JournalsKey("u1")

	_, err := loader.LoadBatch(ctx, Request{UserID: "u1", CollectionPath: "journals", CacheKey: key})
	assert.ErrorIs(t, err, remote.ErrUnavailable)

	_, ok := localcache.Get[[]remote.Document](ctx, cache, key)
	assert.False(t, ok)
}

func TestLoadBatch_AscendingOrder(t *testing.T) {
	_, loader, _ := setup(t, 12)
	page, err := loader.LoadBatch(context.Background(), Request{
		UserID:         "u1",
		CollectionPath: "journals",
		OrderDirection: remote.Asc,
	})
	require.NoError(t, err)
	assert.Equal(t, "j00", page.Items[0].ID)
	assert.Equal(t, "j09", page.LastVisible.ID)
}

func TestInvalidate(t *testing.T) {
	store, loader, _ := setup(t, 3)
	ctx := context.Background()
	req := Request{UserID: "u1", CollectionPath: "journals", CacheKey: localcache.JournalsKey("u1")}

	_, err := loader.LoadBatch(ctx, req)
	require.NoError(t, err)
	loader.Invalidate(ctx, req.CacheKey)
	_, err = loader.LoadBatch(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, 2, store.queries)
}

func TestView_StateMachine(t *testing.T) {
	store, loader, _ := setup(t, 23)
	ctx := context.Background()
	v := NewView(loader, Request{UserID: "u1", CollectionPath: "journals", CacheKey: localcache.JournalsKey("u1")})

	assert.Equal(t, StateInitial, v.State())
	_, err := v.LoadMore(ctx)
	assert.ErrorIs(t, err, ErrNotStarted)

	_, err = v.LoadFirst(ctx)
	require.NoError(t, err)
	assert.Equal(t, StateReady, v.State())
	assert.Len(t, v.Items(), 10)

	_, err = v.LoadMore(ctx)
	require.NoError(t, err)
	assert.Equal(t, StateReady, v.State())

	store.fail = true
	_, err = v.LoadMore(ctx)
	assert.Error(t, err)
	assert.Equal(t, StateReady, v.State(), "failure keeps the loaded pages")
	assert.Len(t, v.Items(), 20)
	store.fail = false

	_, err = v.LoadMore(ctx)
	require.NoError(t, err)
	assert.Equal(t, StateExhausted, v.State())
	assert.Len(t, v.Items(), 23)

	queries := store.queries
	_, err = v.LoadMore(ctx)
	require.NoError(t, err)
	assert.Equal(t, queries, store.queries)

	v.Reset()
	assert.Equal(t, StateInitial, v.State())
	assert.Empty(t, v.Items())
}

func TestView_ContinuesPastCachedFirstPage(t *testing.T) {
	store, loader, _ := setup(t, 12)
	ctx := context.Background()
	req := Request{UserID: "u1", CollectionPath: "journals", CacheKey: localcache.JournalsKey("u1")}
	_, err := loader.LoadBatch(ctx, req)
	require.NoError(t, err)

	v := NewView(loader, req)
	page, err := v.LoadFirst(ctx)
	require.NoError(t, err)
	assert.True(t, page.FromCache)
	assert.Equal(t, 1, store.queries)

	_, err = v.LoadMore(ctx)
	require.NoError(t, err)
	assert.Equal(t, StateExhausted, v.State())
	items := v.Items()
	require.Len(t, items, 12)
	assert.Equal(t, "j11", items[0].ID)
	assert.Equal(t, "j00", items[11].ID)
}

func TestView_FirstLoadFailureReturnsToInitial(t *testing.T) {
	store, loader, _ := setup(t, 3)
	store.fail = true
	v := NewView(loader, Request{UserID: "u1", CollectionPath: "journals"})

	_, err := v.LoadFirst(context.Background())
	assert.Error(t, err)
	assert.Equal(t, StateInitial, v.State())
}
