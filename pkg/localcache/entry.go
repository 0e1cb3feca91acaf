package localcache

import (
	"time"

	"github.com/goccy/go-json"
)

// EntryVersion is the envelope schema written by this build. Envelopes with a
// higher version are treated as corrupt.
const EntryVersion = 1

// Entry is the persisted cache envelope. Timestamp is the write time in ms
// since epoch, Expiry the lifetime in ms.
type Entry[T any] struct {
	Data      T     `json:"data"`
	Timestamp int64 `json:"timestamp"`
	Expiry    int64 `json:"expiry"`
	Version   int   `json:"v,omitempty"`
}

// Valid reports whether now - timestamp <= expiry.
func (e Entry[T]) Valid(now time.Time) bool {
	return now.UnixMilli()-e.Timestamp <= e.Expiry
}

type rawEntry = Entry[json.RawMessage]
