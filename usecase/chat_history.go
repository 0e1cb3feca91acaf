package usecase

import (
	"context"

	domainChat "github.com/AzielCF/az-learn/domains/chat"
	"github.com/AzielCF/az-learn/pkg/localcache"
)

// chatHistoryService keeps the tail of each chat on the device so a chat
// screen can render before the remote history arrives.
type chatHistoryService struct {
	cache *localcache.Store
	limit int
}

func NewChatHistoryService(cache *localcache.Store) domainChat.IChatHistoryUsecase {
	return &chatHistoryService{cache: cache, limit: domainChat.HistoryLimit}
}

func (s *chatHistoryService) GetHistory(ctx context.Context, userID, chatID string) ([]domainChat.Message, bool) {
	return localcache.Get[[]domainChat.Message](ctx, s.cache, localcache.ChatHistoryKey(userID, chatID))
}

func (s *chatHistoryService) AppendMessages(ctx context.Context, userID, chatID string, messages ...domainChat.Message) []domainChat.Message {
	key := localcache.ChatHistoryKey(userID, chatID)
	history, ok := localcache.Get[[]domainChat.Message](ctx, s.cache, key)
	if !ok {
		history = []domainChat.Message{}
	}
	history = append(history, messages...)
	if len(history) > s.limit {
		history = append([]domainChat.Message(nil), history[len(history)-s.limit:]...)
	}
	s.cache.Set(ctx, key, history, localcache.ChatHistoryExpiry)
	return history
}

func (s *chatHistoryService) ClearHistory(ctx context.Context, userID, chatID string) {
	s.cache.Remove(ctx, localcache.ChatHistoryKey(userID, chatID))
}
