package kv

import "context"

// Backend is the local key-value persistence contract the cache store sits on.
// Values are opaque strings (the cache store writes JSON envelopes).
// Implementations must be safe for concurrent use; there is no cross-key locking.
type Backend interface {
	// SetItem stores value under key, overwriting any previous value.
	SetItem(ctx context.Context, key, value string) error

	// GetItem returns the stored value. found is false (with a nil error) when
	// the key does not exist.
	GetItem(ctx context.Context, key string) (value string, found bool, err error)

	// RemoveItem deletes key. Removing an absent key is not an error.
	RemoveItem(ctx context.Context, key string) error

	// Clear removes every key owned by this backend.
	Clear(ctx context.Context) error
}

// Stats describes the footprint of a backend.
type Stats struct {
	Keys  int   `json:"keys"`
	Bytes int64 `json:"bytes"`
}

// StatsProvider is implemented by backends that can report their footprint.
type StatsProvider interface {
	Stats(ctx context.Context) (Stats, error)
}
