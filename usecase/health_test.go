package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AzielCF/az-learn/domains/health"
	"github.com/AzielCF/az-learn/infrastructure/docstore"
	"github.com/AzielCF/az-learn/infrastructure/kvstore"
)

func TestHealthService_Checks(t *testing.T) {
	store := newFakeStore()
	svc := NewHealthService(store, kvstore.NewMemoryBackend())
	ctx := context.Background()

	for _, r := range svc.GetStatus(ctx) {
		assert.Equal(t, health.StatusUnknown, r.Status)
	}

	records := svc.CheckAll(ctx)
	require.Len(t, records, 2)
	for _, r := range records {
		assert.Equal(t, health.StatusOk, r.Status)
		assert.NotNil(t, r.LastSuccess)
	}

	store.fail("get", true)
	remote := svc.CheckRemote(ctx)
	assert.Equal(t, health.StatusError, remote.Status)
	assert.NotNil(t, remote.LastSuccess, "last success survives a failure")

	status := svc.GetStatus(ctx)
	require.Len(t, status, 2)
	assert.Equal(t, health.EntityLocalCache, status[0].EntityType)
	assert.Equal(t, health.StatusError, status[1].Status)
}

func TestHealthService_OpenBreaker(t *testing.T) {
	inner := newFakeStore()
	inner.fail("get", true)
	breaker := docstore.NewBreakerStore(inner, docstore.BreakerConfig{Name: "test", MaxRequests: 1, FailureThreshold: 1})
	svc := NewHealthService(breaker, kvstore.NewMemoryBackend())

	first := svc.CheckRemote(context.Background())
	assert.Equal(t, health.StatusError, first.Status)

	second := svc.CheckRemote(context.Background())
	assert.Equal(t, health.StatusError, second.Status)
	assert.Contains(t, second.LastMessage, "circuit breaker is open")
	assert.Equal(t, 1, inner.count("get"))
}
