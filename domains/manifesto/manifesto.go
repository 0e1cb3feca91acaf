package manifesto

import (
	"context"
	"time"
)

const MaxTags = 3

type ItemType string

const (
	TypePersonal ItemType = "personal"
	TypeGoals    ItemType = "goals"
	TypeValues   ItemType = "values"
	TypeProjects ItemType = "projects"
)

var Types = []any{TypePersonal, TypeGoals, TypeValues, TypeProjects}

// Tags is the closed set of labels an item may carry.
var Tags = []any{
	"urgent", "important", "inProgress", "longTerm",
	"shortTerm", "critical", "pending", "completed",
}

type Item struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Type      ItemType  `json:"type"`
	Tags      []string  `json:"tags"`
	CreatedAt time.Time `json:"createdAt"`
}

type SaveItemRequest struct {
	Text string   `json:"text" form:"text"`
	Type ItemType `json:"type" form:"type"`
	Tags []string `json:"tags" form:"tags"`
}

type IManifestoUsecase interface {
	SaveManifestoItem(ctx context.Context, userID string, request SaveItemRequest) (Item, error)
	GetManifestoItems(ctx context.Context, userID string) ([]Item, error)
	DeleteManifestoItem(ctx context.Context, userID, itemID string) error
}
