package batch

import (
	"context"
	"errors"
	"fmt"

	"github.com/AzielCF/az-learn/domains/remote"
)

// Accessor reads user-scoped collections (users/{userID}/{collection}) from the
// remote store one page at a time.
type Accessor struct {
	store remote.Store
}

func NewAccessor(store remote.Store) *Accessor {
	return &Accessor{store: store}
}

// Fetch returns up to pageSize documents after cursor, ordered by orderBy in dir.
// Ties on orderBy are broken by document id in the same direction.
func (a *Accessor) Fetch(ctx context.Context, userID, collection, orderBy string, dir remote.Direction, pageSize int, cursor *remote.Document) ([]remote.Document, error) {
	docs, err := a.store.Query(ctx, remote.Query{
		Collection: remote.UserCollection(userID, collection),
		OrderBy:    orderBy,
		Direction:  dir,
		Limit:      pageSize,
		StartAfter: cursor,
	})
	if err != nil {
		if errors.Is(err, remote.ErrUnavailable) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", remote.ErrUnavailable, err)
	}
	return docs, nil
}
