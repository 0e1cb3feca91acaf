package remote

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserCollection(t *testing.T) {
	assert.Equal(t, "users/u1/notes", UserCollection("u1", "notes"))
	assert.Equal(t, "users/u1/chats/c9/messages", UserCollection("u1", "chats", "c9", "messages"))
	assert.Equal(t, "system/config", Join("system", "", "/config/"))
}

func TestResolve_Sentinels(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	prev := map[string]any{"totalInteractions": float64(4), "name": "x"}

	merged := Resolve(prev, map[string]any{
		"totalInteractions": Increment(1),
		"lastInteraction":   ServerTimestamp(),
	}, now, true)

	assert.Equal(t, float64(5), merged["totalInteractions"])
	assert.Equal(t, now, merged["lastInteraction"])
	assert.Equal(t, "x", merged["name"])

	replaced := Resolve(prev, map[string]any{"count": Increment(2)}, now, false)
	assert.Equal(t, map[string]any{"count": float64(2)}, replaced)
}

func TestCompare_MixedTimeRepresentations(t *testing.T) {
	a := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	b := a.Add(time.Millisecond)

	assert.Equal(t, -1, Compare(a, b.Format(time.RFC3339Nano)))
	assert.Equal(t, 0, Compare(a.Format(TimeLayout), a))
	assert.Equal(t, 1, Compare(3, 2.5))
	assert.Equal(t, -1, Compare(nil, "a"))
	assert.Equal(t, -1, Compare("abc", "abd"))
}

func TestFilter_Matches(t *testing.T) {
	start := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	f := Filter{Field: "timestamp", Op: OpGreaterEqual, Value: start}

	assert.True(t, f.Matches(start))
	assert.True(t, f.Matches(start.Add(time.Hour)))
	assert.False(t, f.Matches(start.Add(-time.Hour)))
}

func TestDocument_DecodeAndToData(t *testing.T) {
	type note struct {
		ID        string    `json:"id"`
		Title     string    `json:"title"`
		CreatedAt time.Time `json:"createdAt"`
	}
	created := time.Date(2026, 2, 2, 8, 30, 0, 0, time.UTC)

	data, err := ToData(note{ID: "n1", Title: "hello", CreatedAt: created})
	require.NoError(t, err)
	_, hasID := data["id"]
	assert.False(t, hasID)

	var out note
	require.NoError(t, Document{ID: "n1", Data: data}.Decode(&out))
	assert.Equal(t, "n1", out.ID)
	assert.Equal(t, "hello", out.Title)
	assert.True(t, created.Equal(out.CreatedAt))
}
