package usecase

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	domainMessage "github.com/AzielCF/az-learn/domains/message"
	"github.com/AzielCF/az-learn/domains/remote"
	pkgError "github.com/AzielCF/az-learn/pkg/error"
	"github.com/AzielCF/az-learn/pkg/localcache"
)

const usersCollection = "users"

// messageService tracks the per-user AI message quota stored on users/{uid}.
type messageService struct {
	store remote.Store
	cache *localcache.Store
}

func NewMessageService(store remote.Store, cache *localcache.Store) domainMessage.IMessageUsecase {
	return &messageService{store: store, cache: cache}
}

func (s *messageService) IncrementMessageCount(ctx context.Context, userID string) (domainMessage.MessageStats, error) {
	if err := requireUser(userID); err != nil {
		return domainMessage.MessageStats{}, err
	}

	current, err := s.readStats(ctx, userID)
	if err != nil {
		return domainMessage.MessageStats{}, err
	}
	if current.LimitReached {
		return current, pkgError.LimitReachedError(fmt.Sprintf("message limit of %d reached", current.MessageLimit))
	}

	err = s.store.Set(ctx, usersCollection, userID, map[string]any{
		"messageCount": remote.Increment(1),
	}, true)
	if err != nil {
		logrus.WithError(err).WithField("user_id", userID).Error("[MESSAGE] Failed to increment message count")
		return domainMessage.MessageStats{}, err
	}

	next := newMessageStats(current.MessageCount+1, current.MessageLimit)
	s.cache.Set(ctx, localcache.MessageCountKey(userID), next, localcache.MessageCountExpiry)
	return next, nil
}

func (s *messageService) GetMessageStats(ctx context.Context, userID string) (domainMessage.MessageStats, error) {
	if err := requireUser(userID); err != nil {
		return domainMessage.MessageStats{}, err
	}

	key := localcache.MessageCountKey(userID)
	if stats, ok := localcache.Get[domainMessage.MessageStats](ctx, s.cache, key); ok {
		return stats, nil
	}

	stats, err := s.readStats(ctx, userID)
	if err != nil {
		return domainMessage.MessageStats{}, err
	}
	s.cache.Set(ctx, key, stats, localcache.MessageCountExpiry)
	return stats, nil
}

func (s *messageService) readStats(ctx context.Context, userID string) (domainMessage.MessageStats, error) {
	doc, _, err := s.store.Get(ctx, usersCollection, userID)
	if err != nil {
		logrus.WithError(err).WithField("user_id", userID).Error("[MESSAGE] Failed to read user document")
		return domainMessage.MessageStats{}, err
	}
	return newMessageStats(intField(doc.Data, "messageCount"), intField(doc.Data, "messageLimit")), nil
}

func newMessageStats(count, limit int) domainMessage.MessageStats {
	if limit <= 0 {
		limit = domainMessage.DefaultMessageLimit
	}
	remaining := limit - count
	if remaining < 0 {
		remaining = 0
	}
	return domainMessage.MessageStats{
		MessageCount: count,
		MessageLimit: limit,
		Remaining:    remaining,
		LimitReached: count >= limit,
	}
}
