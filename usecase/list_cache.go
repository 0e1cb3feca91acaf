package usecase

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/AzielCF/az-learn/domains/remote"
	"github.com/AzielCF/az-learn/pkg/localcache"
)

// cachedList is the read-through, write-through list behind the note, roadmap
// and manifesto managers. The remote write always happens before the cache is
// touched, and a failed remote write leaves the cache as it was.
type cachedList[T any] struct {
	tag        string
	collection string
	key        func(userID string) string
	expiry     time.Duration
	id         func(T) string

	store remote.Store
	cache *localcache.Store
}

// getAll is strictly cache-or-remote. On a remote failure it returns an empty
// list together with the error.
func (l *cachedList[T]) getAll(ctx context.Context, userID string, forceRefresh bool) ([]T, error) {
	key := l.key(userID)
	if !forceRefresh {
		if items, ok := localcache.Get[[]T](ctx, l.cache, key); ok {
			return items, nil
		}
	}

	docs, err := l.store.Query(ctx, remote.Query{
		Collection: remote.UserCollection(userID, l.collection),
		OrderBy:    "createdAt",
		Direction:  remote.Desc,
	})
	if err != nil {
		logrus.WithError(err).WithField("user_id", userID).Errorf("[%s] Failed to load from remote", l.tag)
		return []T{}, err
	}

	items := make([]T, 0, len(docs))
	for _, doc := range docs {
		var item T
		if err := doc.Decode(&item); err != nil {
			logrus.WithError(err).WithField("doc_id", doc.ID).Warnf("[%s] Skipping undecodable document", l.tag)
			continue
		}
		items = append(items, item)
	}

	l.cache.Set(ctx, key, items, l.expiry)
	return items, nil
}

func (l *cachedList[T]) save(ctx context.Context, userID string, item T) error {
	data, err := remote.ToData(item)
	if err != nil {
		return err
	}
	if err := l.store.Set(ctx, remote.UserCollection(userID, l.collection), l.id(item), data, false); err != nil {
		return err
	}

	key := l.key(userID)
	cached, ok := localcache.Get[[]T](ctx, l.cache, key)
	if !ok {
		cached = []T{}
	}
	l.cache.Set(ctx, key, append(cached, item), l.expiry)
	return nil
}

// update patches the remote document, then applies mutate to the cached copy
// if the list is cached.
func (l *cachedList[T]) update(ctx context.Context, userID, id string, patch map[string]any, mutate func(*T)) error {
	if err := l.store.Update(ctx, remote.UserCollection(userID, l.collection), id, patch); err != nil {
		return err
	}

	key := l.key(userID)
	cached, ok := localcache.Get[[]T](ctx, l.cache, key)
	if !ok {
		return nil
	}
	for i := range cached {
		if l.id(cached[i]) == id {
			mutate(&cached[i])
			l.cache.Set(ctx, key, cached, l.expiry)
			break
		}
	}
	return nil
}

// delete is idempotent: deleting an absent id succeeds and leaves the cache as is.
func (l *cachedList[T]) delete(ctx context.Context, userID, id string) error {
	if err := l.store.Delete(ctx, remote.UserCollection(userID, l.collection), id); err != nil {
		return err
	}

	key := l.key(userID)
	cached, ok := localcache.Get[[]T](ctx, l.cache, key)
	if !ok {
		return nil
	}
	kept := make([]T, 0, len(cached))
	for _, item := range cached {
		if l.id(item) != id {
			kept = append(kept, item)
		}
	}
	if len(kept) != len(cached) {
		l.cache.Set(ctx, key, kept, l.expiry)
	}
	return nil
}
