package remote

import (
	"fmt"
	"strings"
	"time"
)

type serverTimestamp struct{}

type increment struct {
	by float64
}

// ServerTimestamp is a sentinel resolved to the write time by the store.
func ServerTimestamp() any { return serverTimestamp{} }

// Increment is a sentinel that adds n to the stored numeric value (0 if absent).
func Increment(n float64) any { return increment{by: n} }

// Resolve applies sentinels in patch against the previous document data and
// returns the merged field map. prev may be nil.
func Resolve(prev, patch map[string]any, now time.Time, merge bool) map[string]any {
	out := make(map[string]any, len(prev)+len(patch))
	if merge {
		for k, v := range prev {
			out[k] = v
		}
	}
	for k, v := range patch {
		switch s := v.(type) {
		case serverTimestamp:
			out[k] = now
		case increment:
			base, _ := toFloat(prev[k])
			out[k] = base + s.by
		default:
			out[k] = v
		}
	}
	return out
}

// TimeLayout is a fixed-width UTC layout: lexical order equals chronological order.
const TimeLayout = "2006-01-02T15:04:05.000000000Z"

// AsTime interprets v as a timestamp. Strings must be RFC 3339.
func AsTime(v any) (time.Time, bool) {
	switch t := v.(type) {
	case time.Time:
		return t, true
	case *time.Time:
		if t == nil {
			return time.Time{}, false
		}
		return *t, true
	case string:
		if !strings.Contains(t, "T") {
			return time.Time{}, false
		}
		parsed, err := time.Parse(time.RFC3339Nano, t)
		if err != nil {
			return time.Time{}, false
		}
		return parsed, true
	}
	return time.Time{}, false
}

// Compare orders two field values: timestamps chronologically (mixing time.Time
// and RFC 3339 strings), numbers numerically, everything else as strings.
// nil sorts first.
func Compare(a, b any) int {
	if a == nil || b == nil {
		switch {
		case a == nil && b == nil:
			return 0
		case a == nil:
			return -1
		default:
			return 1
		}
	}
	if ta, ok := AsTime(a); ok {
		if tb, ok := AsTime(b); ok {
			return ta.Compare(tb)
		}
	}
	if fa, ok := toFloat(a); ok {
		if fb, ok := toFloat(b); ok {
			switch {
			case fa < fb:
				return -1
			case fa > fb:
				return 1
			}
			return 0
		}
	}
	return strings.Compare(toString(a), toString(b))
}

// Matches evaluates a filter against a value.
func (f Filter) Matches(v any) bool {
	c := Compare(v, f.Value)
	switch f.Op {
	case OpEqual:
		return c == 0
	case OpLess:
		return c < 0
	case OpLessEqual:
		return c <= 0
	case OpGreater:
		return c > 0
	case OpGreaterEqual:
		return c >= 0
	}
	return false
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return 0, false
}

func toString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	if t, ok := AsTime(v); ok {
		return t.UTC().Format(TimeLayout)
	}
	return fmt.Sprint(v)
}
