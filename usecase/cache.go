package usecase

import (
	"context"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"

	domainCache "github.com/AzielCF/az-learn/domains/cache"
	"github.com/AzielCF/az-learn/domains/kv"
	"github.com/AzielCF/az-learn/pkg/localcache"
)

type cacheService struct {
	cache  *localcache.Store
	driver string
}

func NewCacheService(cache *localcache.Store, driver string) domainCache.ICacheUsecase {
	return &cacheService{cache: cache, driver: driver}
}

func (s *cacheService) GetStats(ctx context.Context) (domainCache.CacheStats, error) {
	stats := domainCache.CacheStats{Driver: s.driver}

	provider, ok := s.cache.Backend().(kv.StatsProvider)
	if !ok {
		stats.HumanSize = humanize.Bytes(0)
		return stats, nil
	}

	raw, err := provider.Stats(ctx)
	if err != nil {
		return stats, err
	}
	stats.Keys = raw.Keys
	stats.TotalSize = raw.Bytes
	stats.HumanSize = humanize.Bytes(uint64(raw.Bytes))
	return stats, nil
}

func (s *cacheService) ClearCache(ctx context.Context) error {
	s.cache.Clear(ctx)
	logrus.Info("[CACHE] Local cache cleared")
	return nil
}

// ClearUserCache drops the user's lists and counters. Analytics entries are
// keyed by range and are left to expire.
func (s *cacheService) ClearUserCache(ctx context.Context, userID string) error {
	if err := requireUser(userID); err != nil {
		return err
	}
	for _, key := range []string{
		localcache.NotesKey(userID),
		localcache.RoadmapsKey(userID),
		localcache.ManifestoKey(userID),
		localcache.JournalsKey(userID),
		localcache.MessageCountKey(userID),
	} {
		s.cache.Remove(ctx, key)
	}
	logrus.WithField("user_id", userID).Info("[CACHE] User cache cleared")
	return nil
}
