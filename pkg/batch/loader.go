package batch

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/AzielCF/az-learn/domains/remote"
	"github.com/AzielCF/az-learn/pkg/localcache"
)

const (
	DefaultPageSize  = 10
	DefaultOrderBy   = "createdAt"
	DefaultDirection = remote.Desc
)

// Request describes one page load. LastVisible nil means the first page.
// Only the first page is ever cached, and only when CacheKey is set.
type Request struct {
	UserID         string
	CollectionPath string
	LastVisible    *remote.Document
	CacheKey       string
	OrderByField   string
	OrderDirection remote.Direction
	// Expiry of the cached first page; zero uses the cache default.
	Expiry time.Duration
}

// Page is one slice of a paginated list. HasMore is true exactly when the page
// is full; LastVisible is nil on the final (short or empty) page.
type Page struct {
	Items       []remote.Document `json:"items"`
	LastVisible *remote.Document  `json:"lastVisible"`
	HasMore     bool              `json:"hasMore"`
	FromCache   bool              `json:"fromCache"`
}

// Cursor is where the next page starts. A cache-served first page carries no
// LastVisible, so its last item is used instead.
func (p Page) Cursor() *remote.Document {
	if p.LastVisible != nil {
		return p.LastVisible
	}
	if p.FromCache && len(p.Items) > 0 {
		last := p.Items[len(p.Items)-1]
		return &last
	}
	return nil
}

type Loader struct {
	accessor *Accessor
	cache    *localcache.Store
	pageSize int
}

type LoaderOption func(*Loader)

// WithPageSize overrides DefaultPageSize.
func WithPageSize(n int) LoaderOption {
	return func(l *Loader) {
		if n > 0 {
			l.pageSize = n
		}
	}
}

func NewLoader(accessor *Accessor, cache *localcache.Store, opts ...LoaderOption) *Loader {
	l := &Loader{accessor: accessor, cache: cache, pageSize: DefaultPageSize}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *Loader) PageSize() int {
	return l.pageSize
}

// LoadBatch returns the next page. A first-page request with a cache key is
// answered from cache when possible; otherwise the remote store is queried and,
// for a first page, its items are cached. Remote errors are returned as is.
func (l *Loader) LoadBatch(ctx context.Context, req Request) (Page, error) {
	first := req.LastVisible == nil

	if first && req.CacheKey != "" {
		if items, ok := localcache.Get[[]remote.Document](ctx, l.cache, req.CacheKey); ok {
			logrus.WithField("key", req.CacheKey).Debug("[BATCH] First page served from cache")
			return Page{Items: items, HasMore: true, FromCache: true}, nil
		}
	}

	orderBy := req.OrderByField
	if orderBy == "" {
		orderBy = DefaultOrderBy
	}
	dir := req.OrderDirection
	if dir == "" {
		dir = DefaultDirection
	}

	items, err := l.accessor.Fetch(ctx, req.UserID, req.CollectionPath, orderBy, dir, l.pageSize, req.LastVisible)
	if err != nil {
		logrus.WithError(err).WithField("collection", req.CollectionPath).Error("[BATCH] Failed to load page")
		return Page{}, err
	}
	if items == nil {
		items = []remote.Document{}
	}

	if first && req.CacheKey != "" {
		l.cache.Set(ctx, req.CacheKey, items, req.Expiry)
	}

	page := Page{Items: items, HasMore: len(items) == l.pageSize}
	if page.HasMore {
		last := items[len(items)-1]
		page.LastVisible = &last
	}
	return page, nil
}

// Invalidate drops a cached first page so the next first-page load goes remote.
func (l *Loader) Invalidate(ctx context.Context, cacheKey string) {
	if cacheKey == "" {
		return
	}
	l.cache.Remove(ctx, cacheKey)
}
