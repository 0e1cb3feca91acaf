package remote

import (
	"context"
	"errors"
	"strings"
)

var (
	// ErrUnavailable marks network, auth or backend failures. Callers treat it as
	// transient: fall back to cache or an empty result, never crash.
	ErrUnavailable = errors.New("remote store unavailable")
	ErrNotFound    = errors.New("document not found")
)

type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

type Operator string

const (
	OpEqual        Operator = "=="
	OpLess         Operator = "<"
	OpLessEqual    Operator = "<="
	OpGreater      Operator = ">"
	OpGreaterEqual Operator = ">="
)

// Filter is a single where(field, op, value) clause.
type Filter struct {
	Field string
	Op    Operator
	Value any
}

// Query addresses one collection. An empty OrderBy orders by document id.
// Ties on OrderBy are broken by document id in the same direction, which makes
// StartAfter continuation stable.
type Query struct {
	Collection string
	Filters    []Filter
	OrderBy    string
	Direction  Direction
	Limit      int
	StartAfter *Document
}

// Store is the remote document database contract.
type Store interface {
	Query(ctx context.Context, q Query) ([]Document, error)

	// Get returns found=false with a nil error when the document does not exist.
	Get(ctx context.Context, collection, id string) (doc Document, found bool, err error)

	// Add writes a new document with a store-generated id.
	Add(ctx context.Context, collection string, data map[string]any) (string, error)

	// Set writes a document under a client id. With merge the fields are merged
	// into an existing document instead of replacing it.
	Set(ctx context.Context, collection, id string, data map[string]any, merge bool) error

	// Update patches an existing document and returns ErrNotFound if it is absent.
	Update(ctx context.Context, collection, id string, patch map[string]any) error

	// Delete removes a document. Deleting an absent document is not an error.
	Delete(ctx context.Context, collection, id string) error
}

// UserCollection builds users/{userID}/{name}[/{docID}/{subName}...].
func UserCollection(userID, name string, rest ...string) string {
	return Join(append([]string{"users", userID, name}, rest...)...)
}

// Join joins path segments, dropping empty ones.
func Join(parts ...string) string {
	segs := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.Trim(p, "/")
		if p != "" {
			segs = append(segs, p)
		}
	}
	return strings.Join(segs, "/")
}
