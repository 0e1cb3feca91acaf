package health

import (
	"context"
	"time"
)

type EntityType string

const (
	EntityRemoteStore EntityType = "remote_store"
	EntityLocalCache  EntityType = "local_cache"
)

type Status string

const (
	StatusOk      Status = "OK"
	StatusError   Status = "ERROR"
	StatusUnknown Status = "UNKNOWN"
)

type HealthRecord struct {
	EntityType  EntityType `json:"entity_type"`
	Status      Status     `json:"status"`
	LastMessage string     `json:"last_message"`
	LastChecked time.Time  `json:"last_checked"`
	LastSuccess *time.Time `json:"last_success,omitempty"`
}

type IHealthUsecase interface {
	CheckRemote(ctx context.Context) HealthRecord
	CheckCache(ctx context.Context) HealthRecord
	CheckAll(ctx context.Context) []HealthRecord
	// GetStatus returns the last recorded result per entity without probing.
	GetStatus(ctx context.Context) []HealthRecord
	StartPeriodicChecks(ctx context.Context, interval time.Duration)
}
