package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/AzielCF/az-learn/domains/health"
	"github.com/AzielCF/az-learn/domains/kv"
	"github.com/AzielCF/az-learn/domains/remote"
)

const healthProbeKey = "health:probe"

// breakerState is implemented by stores guarded by a circuit breaker.
type breakerState interface {
	State() string
}

type healthService struct {
	store   remote.Store
	backend kv.Backend
	now     func() time.Time

	mu      sync.RWMutex
	records map[health.EntityType]health.HealthRecord
}

func NewHealthService(store remote.Store, backend kv.Backend) health.IHealthUsecase {
	return &healthService{
		store:   store,
		backend: backend,
		now:     time.Now,
		records: map[health.EntityType]health.HealthRecord{},
	}
}

func (s *healthService) GetStatus(ctx context.Context) []health.HealthRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]health.HealthRecord, 0, 2)
	for _, entity := range []health.EntityType{health.EntityRemoteStore, health.EntityLocalCache} {
		r, ok := s.records[entity]
		if !ok {
			r = health.HealthRecord{EntityType: entity, Status: health.StatusUnknown}
		}
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].EntityType < out[j].EntityType })
	return out
}

// CheckRemote reads the system config document. An open breaker is reported
// without touching the store.
func (s *healthService) CheckRemote(ctx context.Context) health.HealthRecord {
	if b, ok := s.store.(breakerState); ok && b.State() == "open" {
		return s.report(health.EntityRemoteStore, fmt.Errorf("circuit breaker is open"), "")
	}
	_, _, err := s.store.Get(ctx, systemCollection, systemConfigDoc)
	return s.report(health.EntityRemoteStore, err, "remote store reachable")
}

// CheckCache round-trips a probe key through the cache backend.
func (s *healthService) CheckCache(ctx context.Context) health.HealthRecord {
	err := s.backend.SetItem(ctx, healthProbeKey, "ok")
	if err == nil {
		var found bool
		_, found, err = s.backend.GetItem(ctx, healthProbeKey)
		if err == nil && !found {
			err = fmt.Errorf("probe key vanished after write")
		}
	}
	if err == nil {
		err = s.backend.RemoveItem(ctx, healthProbeKey)
	}
	return s.report(health.EntityLocalCache, err, "local cache writable")
}

func (s *healthService) CheckAll(ctx context.Context) []health.HealthRecord {
	return []health.HealthRecord{s.CheckRemote(ctx), s.CheckCache(ctx)}
}

func (s *healthService) StartPeriodicChecks(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = time.Minute
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		s.CheckAll(ctx)
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.CheckAll(ctx)
			}
		}
	}()
}

func (s *healthService) report(entity health.EntityType, err error, okMessage string) health.HealthRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	r := s.records[entity]
	r.EntityType = entity
	r.LastChecked = now
	if err != nil {
		r.Status = health.StatusError
		r.LastMessage = err.Error()
		logrus.WithError(err).Warnf("[HEALTH] %s check failed", entity)
	} else {
		r.Status = health.StatusOk
		r.LastMessage = okMessage
		r.LastSuccess = &now
	}
	s.records[entity] = r
	return r
}
