package chat

import (
	"context"
	"time"
)

// HistoryLimit is how many recent messages of a chat are kept locally.
const HistoryLimit = 50

type Sender string

const (
	SenderUser Sender = "user"
	SenderAI   Sender = "ai"
)

type Message struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Sender    Sender    `json:"sender"`
	Timestamp time.Time `json:"timestamp"`
}

type IChatHistoryUsecase interface {
	// GetHistory returns the locally cached messages of a chat, oldest first.
	GetHistory(ctx context.Context, userID, chatID string) ([]Message, bool)
	// AppendMessages adds messages and keeps the most recent HistoryLimit.
	AppendMessages(ctx context.Context, userID, chatID string, messages ...Message) []Message
	ClearHistory(ctx context.Context, userID, chatID string)
}
