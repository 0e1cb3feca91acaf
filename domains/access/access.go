package access

import "context"

const DefaultMessageLimit = 10

type SystemConfig struct {
	MessageLimit int `json:"messageLimit"`
}

type IAccessUsecase interface {
	// GetSystemConfig never fails: it falls back to the default config.
	GetSystemConfig(ctx context.Context) SystemConfig
	GetMessageLimit(ctx context.Context) int
	// CheckFreeAccess matches email case-insensitively; false on any failure.
	CheckFreeAccess(ctx context.Context, email string) bool
	AddFreeAccess(ctx context.Context, emails ...string) error
}
