package localcache

import (
	"net/url"
	"strconv"
	"strings"
)

// Key builds a namespaced cache key. Each part is query-escaped before joining
// with ":", so distinct part tuples never produce the same key.
//
//	Key("notes", "u1") -> "@notes:u1"
func Key(parts ...string) string {
	escaped := make([]string, len(parts))
	for i, p := range parts {
		escaped[i] = url.QueryEscape(p)
	}
	return "@" + strings.Join(escaped, ":")
}

func NotesKey(userID string) string     { return Key("notes", userID) }
func RoadmapsKey(userID string) string  { return Key("roadmaps", userID) }
func ManifestoKey(userID string) string { return Key("manifesto", userID) }
func JournalsKey(userID string) string  { return Key("journals", userID) }

func MessageCountKey(userID string) string { return Key("messageCount", userID) }

func ChatHistoryKey(userID, chatID string) string { return Key("chat", userID, chatID) }

// AnalyticsKey scopes analytics by variant ("live" or "historical"), user and range.
func AnalyticsKey(variant, userID string, days int) string {
	return Key("analytics", variant, userID, strconv.Itoa(days))
}

// BatchKey is the first-page key for an arbitrary paginated collection view.
func BatchKey(userID, collection, orderBy, direction string) string {
	return Key("batch", userID, collection, orderBy, direction)
}
