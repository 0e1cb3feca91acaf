package cache

import "context"

type CacheStats struct {
	Driver    string `json:"driver"`
	Keys      int    `json:"keys"`
	TotalSize int64  `json:"total_size"`
	HumanSize string `json:"human_size"`
}

type ICacheUsecase interface {
	GetStats(ctx context.Context) (CacheStats, error)
	ClearCache(ctx context.Context) error
	// ClearUserCache drops every list and counter cached for one user.
	ClearUserCache(ctx context.Context, userID string) error
}
