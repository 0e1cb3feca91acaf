package analytics

import (
	"context"
	"time"
)

type Variant string

const (
	VariantLive       Variant = "live"
	VariantHistorical Variant = "historical"
)

const DefaultRangeDays = 30

type HeatmapCell struct {
	Count int `json:"count"`
}

type TimeDistribution struct {
	Morning   int `json:"morning"`
	Afternoon int `json:"afternoon"`
	Evening   int `json:"evening"`
	Night     int `json:"night"`
}

type Result struct {
	// DailyActivity is indexed [weeksAgo][weekday] with Sunday = 0.
	DailyActivity         [][]HeatmapCell  `json:"dailyActivity"`
	TimeDistribution      TimeDistribution `json:"timeDistribution"`
	SubjectDistribution   map[string]int   `json:"subjectDistribution"`
	TotalInteractions     int              `json:"totalInteractions"`
	AverageResponseLength int              `json:"averageResponseLength"`
	CommonQueries         map[string]int   `json:"commonQueries"`
}

type Summary struct {
	TotalInteractions int        `json:"totalInteractions"`
	CreatedAt         *time.Time `json:"createdAt,omitempty"`
	LastInteraction   *time.Time `json:"lastInteraction,omitempty"`
}

type IAnalyticsUsecase interface {
	// GetChatsAnalytics is the live view: 30 minute cache, errors surface.
	GetChatsAnalytics(ctx context.Context, userID string, days int) (Result, error)
	// GetHistoricalAnalytics is the 24 hour view: on failure it serves the last
	// cached result regardless of age, or an empty result.
	GetHistoricalAnalytics(ctx context.Context, userID string, days int) (Result, error)

	InitializeAnalytics(ctx context.Context, userID string) error
	TrackInteraction(ctx context.Context, userID, userMessage, aiResponse string) error
	GetSummary(ctx context.Context, userID string) (Summary, error)
}
