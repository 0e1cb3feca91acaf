package roadmap

import (
	"context"
	"time"
)

const (
	MinSteps      = 3
	MaxSteps      = 20
	MaxStepLength = 100
)

type Roadmap struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Steps       []string  `json:"steps"`
	VisualMap   VisualMap `json:"visualMap"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// VisualMap is the render layout derived from the step order.
type VisualMap struct {
	Type   string `json:"type"`
	Nodes  []Node `json:"nodes"`
	Layout Layout `json:"layout"`
}

type Node struct {
	ID          string   `json:"id"`
	Text        string   `json:"text"`
	Level       int      `json:"level"`
	Position    Position `json:"position"`
	Connections []string `json:"connections"`
}

type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type Layout struct {
	Direction string `json:"direction"`
	Spacing   int    `json:"spacing"`
	Padding   int    `json:"padding"`
}

type SaveRoadmapRequest struct {
	Title       string   `json:"title" form:"title"`
	Description string   `json:"description" form:"description"`
	Steps       []string `json:"steps" form:"steps"`
}

type IRoadmapUsecase interface {
	SaveRoadmap(ctx context.Context, userID string, request SaveRoadmapRequest) (Roadmap, error)
	// GetRoadmaps is cache-or-remote; forceRefresh skips the cache read.
	GetRoadmaps(ctx context.Context, userID string, forceRefresh bool) ([]Roadmap, error)
	DeleteRoadmap(ctx context.Context, userID, roadmapID string) error
}
