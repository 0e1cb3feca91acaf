package localcache

import (
	"context"
	"time"

	"github.com/goccy/go-json"
	"github.com/sirupsen/logrus"

	"github.com/AzielCF/az-learn/domains/kv"
)

const (
	DefaultExpiry = time.Hour

	NotesExpiry               = 30 * time.Minute
	JournalExpiry             = 30 * time.Minute
	RoadmapExpiry             = 30 * time.Minute
	ManifestoExpiry           = time.Hour
	ProjectsExpiry            = time.Hour
	ProfileExpiry             = time.Hour
	MessageCountExpiry        = time.Hour
	LiveAnalyticsExpiry       = 30 * time.Minute
	HistoricalAnalyticsExpiry = 24 * time.Hour
	ChatHistoryExpiry         = 24 * time.Hour
)

// Store is the best-effort local cache. It never fails its caller: backend and
// codec errors are logged and turned into misses or dropped writes.
//
// Expired entries are evicted lazily on Get; there is no background sweep, so
// stale envelopes stay in the backend until they are next read.
type Store struct {
	backend       kv.Backend
	now           func() time.Time
	defaultExpiry time.Duration
}

type Option func(*Store)

// WithClock overrides the time source (tests).
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithDefaultExpiry sets the lifetime used when Set is called with expiry <= 0.
func WithDefaultExpiry(d time.Duration) Option {
	return func(s *Store) {
		if d > 0 {
			s.defaultExpiry = d
		}
	}
}

func NewStore(backend kv.Backend, opts ...Option) *Store {
	s := &Store{
		backend:       backend,
		now:           time.Now,
		defaultExpiry: DefaultExpiry,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Backend exposes the underlying persistence backend (stats, maintenance).
func (s *Store) Backend() kv.Backend {
	return s.backend
}

// Set writes data under key with the given lifetime, overwriting any previous entry.
func (s *Store) Set(ctx context.Context, key string, data any, expiry time.Duration) {
	if expiry <= 0 {
		expiry = s.defaultExpiry
	}
	payload, err := json.Marshal(Entry[any]{
		Data:      data,
		Timestamp: s.now().UnixMilli(),
		Expiry:    expiry.Milliseconds(),
		Version:   EntryVersion,
	})
	if err != nil {
		recordWrite(false)
		logrus.WithField("key", key).WithError(err).Error("[CACHE] Failed to encode entry")
		return
	}
	if err := s.backend.SetItem(ctx, key, string(payload)); err != nil {
		recordWrite(false)
		logrus.WithField("key", key).WithError(err).Error("[CACHE] Failed to persist entry")
		return
	}
	recordWrite(true)
}

// Get decodes a valid entry into dst and reports whether it did.
func (s *Store) Get(ctx context.Context, key string, dst any) bool {
	found, _ := s.lookup(ctx, key, dst, true)
	return found
}

// GetStale is Get without the expiry check. It never evicts on age; used as a
// last resort when the remote store is unreachable.
func (s *Store) GetStale(ctx context.Context, key string, dst any) bool {
	found, _ := s.lookup(ctx, key, dst, false)
	return found
}

// Peek decodes the entry under key whatever its age and reports whether it is
// still fresh. Expired entries are kept so a caller can fall back to them.
func (s *Store) Peek(ctx context.Context, key string, dst any) (found, fresh bool) {
	return s.lookup(ctx, key, dst, false)
}

// Remove deletes key unconditionally.
func (s *Store) Remove(ctx context.Context, key string) {
	if err := s.backend.RemoveItem(ctx, key); err != nil {
		logrus.WithField("key", key).WithError(err).Error("[CACHE] Failed to remove entry")
	}
}

// Clear wipes every entry in the backend.
func (s *Store) Clear(ctx context.Context) {
	if err := s.backend.Clear(ctx); err != nil {
		logrus.WithError(err).Error("[CACHE] Failed to clear cache")
	}
}

func (s *Store) lookup(ctx context.Context, key string, dst any, evictExpired bool) (found, fresh bool) {
	raw, ok, err := s.backend.GetItem(ctx, key)
	if err != nil {
		recordLookup("error")
		logrus.WithField("key", key).WithError(err).Warn("[CACHE] Failed to read entry")
		return false, false
	}
	if !ok {
		recordLookup("miss")
		return false, false
	}

	var entry rawEntry
	if err := json.Unmarshal([]byte(raw), &entry); err != nil || entry.Version > EntryVersion {
		s.evict(ctx, key, "corrupt")
		return false, false
	}
	fresh = entry.Valid(s.now())
	if !fresh && evictExpired {
		s.evict(ctx, key, "expired")
		return false, false
	}
	if len(entry.Data) == 0 || string(entry.Data) == "null" {
		recordLookup("miss")
		return false, false
	}
	if err := json.Unmarshal(entry.Data, dst); err != nil {
		s.evict(ctx, key, "corrupt")
		return false, false
	}

	if fresh {
		recordLookup("hit")
	} else {
		recordLookup("stale")
	}
	return true, fresh
}

func (s *Store) evict(ctx context.Context, key, reason string) {
	recordLookup(reason)
	if reason == "corrupt" {
		logrus.WithField("key", key).Warn("[CACHE] Dropping unreadable entry")
	} else {
		logrus.WithField("key", key).Debug("[CACHE] Evicting expired entry")
	}
	s.Remove(ctx, key)
}

// Get is the typed form of Store.Get.
func Get[T any](ctx context.Context, s *Store, key string) (T, bool) {
	var v T
	if !s.Get(ctx, key, &v) {
		var zero T
		return zero, false
	}
	return v, true
}

// GetStale is the typed form of Store.GetStale.
func GetStale[T any](ctx context.Context, s *Store, key string) (T, bool) {
	var v T
	if !s.GetStale(ctx, key, &v) {
		var zero T
		return zero, false
	}
	return v, true
}
