package journal

import (
	"context"
	"time"

	"github.com/AzielCF/az-learn/domains/remote"
)

type Mood string

const (
	MoodHappy   Mood = "HAPPY"
	MoodSad     Mood = "SAD"
	MoodAngry   Mood = "ANGRY"
	MoodCalm    Mood = "CALM"
	MoodExcited Mood = "EXCITED"
	MoodTired   Mood = "TIRED"
	MoodNeutral Mood = "NEUTRAL"
)

var Moods = []any{MoodHappy, MoodSad, MoodAngry, MoodCalm, MoodExcited, MoodTired, MoodNeutral}

type Weather string

const (
	WeatherSunny  Weather = "SUNNY"
	WeatherRainy  Weather = "RAINY"
	WeatherCloudy Weather = "CLOUDY"
	WeatherSnowy  Weather = "SNOWY"
	WeatherWindy  Weather = "WINDY"
	WeatherFoggy  Weather = "FOGGY"
)

var Weathers = []any{WeatherSunny, WeatherRainy, WeatherCloudy, WeatherSnowy, WeatherWindy, WeatherFoggy}

type Entry struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Mood      Mood      `json:"mood,omitempty"`
	Weather   Weather   `json:"weather,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type SaveEntryRequest struct {
	Title   string  `json:"title" form:"title"`
	Content string  `json:"content" form:"content"`
	Mood    Mood    `json:"mood" form:"mood"`
	Weather Weather `json:"weather" form:"weather"`
}

// EntryPage is one page of the journal list. Cursor is passed back verbatim to
// load the next page and is nil once the list is exhausted.
type EntryPage struct {
	Entries   []Entry          `json:"entries"`
	Cursor    *remote.Document `json:"cursor"`
	HasMore   bool             `json:"hasMore"`
	FromCache bool             `json:"fromCache"`
}

type IJournalUsecase interface {
	SaveEntry(ctx context.Context, userID string, request SaveEntryRequest) (Entry, error)
	UpdateEntry(ctx context.Context, userID, entryID string, request SaveEntryRequest) error
	DeleteEntry(ctx context.Context, userID, entryID string) error
	// ListEntries returns the page after cursor; a nil cursor is the first page.
	ListEntries(ctx context.Context, userID string, cursor *remote.Document) (EntryPage, error)
}
