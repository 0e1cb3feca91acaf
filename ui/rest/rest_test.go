package rest

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AzielCF/az-learn/domains/remote"
	"github.com/AzielCF/az-learn/infrastructure/docstore"
	"github.com/AzielCF/az-learn/infrastructure/kvstore"
	"github.com/AzielCF/az-learn/pkg/batch"
	"github.com/AzielCF/az-learn/pkg/localcache"
	"github.com/AzielCF/az-learn/usecase"
)

type envelope struct {
	Status  int             `json:"status"`
	Code    string          `json:"code"`
	Message string          `json:"message"`
	Results json.RawMessage `json:"results"`
}

func newTestApp(t *testing.T, opts Options) (*fiber.App, *docstore.MemoryStore) {
	t.Helper()
	store := docstore.NewMemoryStore()
	backend := kvstore.NewMemoryBackend()
	cache := localcache.NewStore(backend)
	loader := batch.NewLoader(batch.NewAccessor(store), cache)

	app := NewApp(opts, Services{
		Notes:       usecase.NewNoteService(store, cache),
		Roadmaps:    usecase.NewRoadmapService(store, cache),
		Manifesto:   usecase.NewManifestoService(store, cache),
		Journals:    usecase.NewJournalService(store, loader),
		ChatHistory: usecase.NewChatHistoryService(cache),
		Messages:    usecase.NewMessageService(store, cache),
		Access:      usecase.NewAccessService(store),
		Analytics:   usecase.NewAnalyticsService(store, cache, time.UTC),
		Cache:       usecase.NewCacheService(cache, "memory"),
		Health:      usecase.NewHealthService(store, backend),
	})
	return app, store
}

func do(t *testing.T, app *fiber.App, method, path, body string) (int, envelope) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var env envelope
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &env)
	}
	return resp.StatusCode, env
}

func TestNotes_Lifecycle(t *testing.T) {
	app, _ := newTestApp(t, Options{})

	status, env := do(t, app, "POST", "/api/users/u1/notes", `{"title":"Go","content":"channels"}`)
	require.Equal(t, http.StatusCreated, status)
	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Results, &created))
	require.NotEmpty(t, created.ID)

	status, env = do(t, app, "GET", "/api/users/u1/notes", "")
	require.Equal(t, http.StatusOK, status)
	var notes []map[string]any
	require.NoError(t, json.Unmarshal(env.Results, &notes))
	require.Len(t, notes, 1)
	assert.Equal(t, "Go", notes[0]["title"])

	status, _ = do(t, app, "PATCH", "/api/users/u1/notes/"+created.ID, `{"title":"Go 2"}`)
	assert.Equal(t, http.StatusOK, status)

	status, env = do(t, app, "PATCH", "/api/users/u1/notes/missing", `{"title":"x"}`)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "NOT_FOUND_ERROR", env.Code)

	status, _ = do(t, app, "DELETE", "/api/users/u1/notes/"+created.ID, "")
	assert.Equal(t, http.StatusOK, status)
}

func TestNotes_ValidationAndBadBody(t *testing.T) {
	app, _ := newTestApp(t, Options{})

	status, env := do(t, app, "POST", "/api/users/u1/notes", `{"content":"no title"}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION_ERROR", env.Code)

	status, env = do(t, app, "POST", "/api/users/u1/notes", `{not json`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "BAD_REQUEST", env.Code)
}

func TestRoadmaps_StepLimit(t *testing.T) {
	app, _ := newTestApp(t, Options{})

	status, env := do(t, app, "POST", "/api/users/u1/roadmaps", `{"title":"x","steps":["a"]}`)
	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Equal(t, "LIMIT_REACHED", env.Code)

	status, _ = do(t, app, "POST", "/api/users/u1/roadmaps", `{"title":"x","steps":["a","b","c"]}`)
	assert.Equal(t, http.StatusCreated, status)

	status, env = do(t, app, "GET", "/api/users/u1/roadmaps?refresh=true", "")
	require.Equal(t, http.StatusOK, status)
	var roadmaps []map[string]any
	require.NoError(t, json.Unmarshal(env.Results, &roadmaps))
	assert.Len(t, roadmaps, 1)
}

func TestJournals_CursorPaging(t *testing.T) {
	app, store := newTestApp(t, Options{})
	base := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 12; i++ {
		err := store.Set(context.Background(), remote.UserCollection("u1", "journals"), string(rune('a'+i)), map[string]any{
			"title":     "t",
			"content":   "c",
			"createdAt": base.Add(time.Duration(i) * time.Hour),
		}, false)
		require.NoError(t, err)
	}

	type page struct {
		Entries []struct {
			ID string `json:"id"`
		} `json:"entries"`
		Cursor  *remote.Document `json:"cursor"`
		HasMore bool             `json:"hasMore"`
	}

	status, env := do(t, app, "GET", "/api/users/u1/journals", "")
	require.Equal(t, http.StatusOK, status)
	var first page
	require.NoError(t, json.Unmarshal(env.Results, &first))
	require.Len(t, first.Entries, batch.DefaultPageSize)
	require.True(t, first.HasMore)
	require.NotNil(t, first.Cursor)

	createdAt, _ := first.Cursor.Data["createdAt"].(string)
	path := "/api/users/u1/journals?cursor_id=" + first.Cursor.ID + "&cursor_created_at=" + createdAt
	status, env = do(t, app, "GET", path, "")
	require.Equal(t, http.StatusOK, status)
	var second page
	require.NoError(t, json.Unmarshal(env.Results, &second))
	require.Len(t, second.Entries, 2)
	assert.False(t, second.HasMore)
	assert.Equal(t, "a", second.Entries[1].ID)
}

func TestMessages_LimitReached(t *testing.T) {
	app, store := newTestApp(t, Options{})
	require.NoError(t, store.Set(context.Background(), "users", "u1", map[string]any{"messageCount": 0, "messageLimit": 1}, false))

	status, _ := do(t, app, "POST", "/api/users/u1/messages/increment", "")
	assert.Equal(t, http.StatusOK, status)

	status, env := do(t, app, "POST", "/api/users/u1/messages/increment", "")
	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Equal(t, "LIMIT_REACHED", env.Code)
	var stats map[string]any
	require.NoError(t, json.Unmarshal(env.Results, &stats))
	assert.Equal(t, true, stats["limitReached"])
}

func TestAnalytics_Variants(t *testing.T) {
	app, _ := newTestApp(t, Options{})

	status, env := do(t, app, "GET", "/api/users/u1/analytics?variant=historical&days=7", "")
	require.Equal(t, http.StatusOK, status)
	var result map[string]any
	require.NoError(t, json.Unmarshal(env.Results, &result))
	assert.Len(t, result["dailyActivity"], 1)

	status, _ = do(t, app, "GET", "/api/users/u1/analytics?variant=weekly", "")
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = do(t, app, "POST", "/api/users/u1/analytics/interactions", `{"userMessage":"hi","aiResponse":"hello"}`)
	assert.Equal(t, http.StatusOK, status)
	status, env = do(t, app, "GET", "/api/users/u1/analytics/summary", "")
	require.Equal(t, http.StatusOK, status)
	var summary map[string]any
	require.NoError(t, json.Unmarshal(env.Results, &summary))
	assert.EqualValues(t, 1, summary["totalInteractions"])
}

func TestAccessCacheAndHealth(t *testing.T) {
	app, _ := newTestApp(t, Options{})

	status, _ := do(t, app, "POST", "/api/access/free", `{"emails":["Ana@Example.com"]}`)
	require.Equal(t, http.StatusOK, status)
	_, env := do(t, app, "GET", "/api/access/free?email=ana@example.com", "")
	var check map[string]any
	require.NoError(t, json.Unmarshal(env.Results, &check))
	assert.Equal(t, true, check["free_access"])

	status, _ = do(t, app, "POST", "/api/users/u1/chats/c1/history", `[{"id":"m1","text":"hi","sender":"user"}]`)
	assert.Equal(t, http.StatusOK, status)
	status, env = do(t, app, "GET", "/api/cache/stats", "")
	require.Equal(t, http.StatusOK, status)
	var stats map[string]any
	require.NoError(t, json.Unmarshal(env.Results, &stats))
	assert.EqualValues(t, 1, stats["keys"])

	status, _ = do(t, app, "POST", "/api/health/check-all", "")
	assert.Equal(t, http.StatusOK, status)

	status, _ = do(t, app, "GET", "/api/nope", "")
	assert.Equal(t, http.StatusNotFound, status)

	req := httptest.NewRequest("GET", "/metrics", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestBasicAuth(t *testing.T) {
	app, _ := newTestApp(t, Options{BasicAuth: map[string]string{"admin": "secret"}})

	status, _ := do(t, app, "GET", "/api/users/u1/notes", "")
	assert.Equal(t, http.StatusUnauthorized, status)

	req := httptest.NewRequest("GET", "/api/users/u1/notes", nil)
	req.SetBasicAuth("admin", "secret")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
