package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AzielCF/az-learn/domains/remote"
	domainRoadmap "github.com/AzielCF/az-learn/domains/roadmap"
	pkgError "github.com/AzielCF/az-learn/pkg/error"
	"github.com/AzielCF/az-learn/pkg/localcache"
)

func TestGenerateVisualMap(t *testing.T) {
	vm := generateVisualMap([]string{"a", "b", "c", "d"})

	assert.Equal(t, "mindmap", vm.Type)
	assert.Equal(t, domainRoadmap.Layout{Direction: "vertical", Spacing: 60, Padding: 20}, vm.Layout)
	require.Len(t, vm.Nodes, 4)

	want := []domainRoadmap.Node{
		{ID: "node-0", Text: "a", Level: 0, Position: domainRoadmap.Position{X: -200, Y: 0}, Connections: []string{}},
		{ID: "node-1", Text: "b", Level: 0, Position: domainRoadmap.Position{X: 200, Y: 100}, Connections: []string{"node-0"}},
		{ID: "node-2", Text: "c", Level: 0, Position: domainRoadmap.Position{X: -200, Y: 200}, Connections: []string{"node-1"}},
		{ID: "node-3", Text: "d", Level: 1, Position: domainRoadmap.Position{X: 200, Y: 300}, Connections: []string{"node-2"}},
	}
	assert.Equal(t, want, vm.Nodes)
	assert.Equal(t, vm, generateVisualMap([]string{"a", "b", "c", "d"}), "deterministic")
}

func TestRoadmapService_SaveAndGet(t *testing.T) {
	store := newFakeStore()
	cache := newTestCache(t, nil)
	svc := NewRoadmapService(store, cache)
	ctx := context.Background()

	rm, err := svc.SaveRoadmap(ctx, "u1", domainRoadmap.SaveRoadmapRequest{
		Title: "Learn Go",
		Steps: []string{"Tour", "Effective Go", "Build a CLI"},
	})
	require.NoError(t, err)
	assert.Equal(t, "u1", rm.UserID)
	assert.Len(t, rm.VisualMap.Nodes, 3)

	doc, found, err := store.MemoryStore.Get(ctx, remote.UserCollection("u1", "roadmaps"), rm.ID)
	require.NoError(t, err)
	require.True(t, found)
	assert.Contains(t, doc.Data, "visualMap")

	list, err := svc.GetRoadmaps(ctx, "u1", false)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, rm.VisualMap, list[0].VisualMap)
	assert.Equal(t, 0, store.count("query"))

	list, err = svc.GetRoadmaps(ctx, "u1", true)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 1, store.count("query"))
}

func TestRoadmapService_StepLimits(t *testing.T) {
	store := newFakeStore()
	svc := NewRoadmapService(store, newTestCache(t, nil))

	_, err := svc.SaveRoadmap(context.Background(), "u1", domainRoadmap.SaveRoadmapRequest{Title: "short", Steps: []string{"a", "b"}})
	assert.True(t, pkgError.IsLimitReached(err))
	assert.Equal(t, 0, store.count("set"))
}

func TestRoadmapService_CachesArePerUser(t *testing.T) {
	store := newFakeStore()
	cache := newTestCache(t, nil)
	svc := NewRoadmapService(store, cache)
	ctx := context.Background()

	_, err := svc.SaveRoadmap(ctx, "u1", domainRoadmap.SaveRoadmapRequest{Title: "x", Steps: []string{"a", "b", "c"}})
	require.NoError(t, err)

	_, ok := localcache.Get[[]domainRoadmap.Roadmap](ctx, cache, localcache.RoadmapsKey("u2"))
	assert.False(t, ok)
	list, err := svc.GetRoadmaps(ctx, "u2", false)
	require.NoError(t, err)
	assert.Empty(t, list)
}
