package message

import "context"

const DefaultMessageLimit = 100

type MessageStats struct {
	MessageCount int  `json:"messageCount"`
	MessageLimit int  `json:"messageLimit"`
	Remaining    int  `json:"remaining"`
	LimitReached bool `json:"limitReached"`
}

type IMessageUsecase interface {
	// IncrementMessageCount consumes one message of the user's quota. It
	// returns a LimitReachedError, without writing, once the quota is used up.
	IncrementMessageCount(ctx context.Context, userID string) (MessageStats, error)
	GetMessageStats(ctx context.Context, userID string) (MessageStats, error)
}
