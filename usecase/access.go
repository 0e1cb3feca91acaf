package usecase

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	domainAccess "github.com/AzielCF/az-learn/domains/access"
	"github.com/AzielCF/az-learn/domains/remote"
)

const (
	systemCollection     = "system"
	systemConfigDoc      = "config"
	freeAccessCollection = "freeAccess"
)

type accessService struct {
	store remote.Store
}

func NewAccessService(store remote.Store) domainAccess.IAccessUsecase {
	return &accessService{store: store}
}

func defaultSystemConfig() domainAccess.SystemConfig {
	return domainAccess.SystemConfig{MessageLimit: domainAccess.DefaultMessageLimit}
}

func (s *accessService) GetSystemConfig(ctx context.Context) domainAccess.SystemConfig {
	doc, found, err := s.store.Get(ctx, systemCollection, systemConfigDoc)
	if err != nil {
		logrus.WithError(err).Warn("[ACCESS] Failed to read system config, using defaults")
		return defaultSystemConfig()
	}
	if !found {
		return defaultSystemConfig()
	}

	var cfg domainAccess.SystemConfig
	if err := doc.Decode(&cfg); err != nil {
		logrus.WithError(err).Warn("[ACCESS] Unreadable system config, using defaults")
		return defaultSystemConfig()
	}
	return cfg
}

func (s *accessService) GetMessageLimit(ctx context.Context) int {
	if limit := s.GetSystemConfig(ctx).MessageLimit; limit > 0 {
		return limit
	}
	return domainAccess.DefaultMessageLimit
}

func (s *accessService) CheckFreeAccess(ctx context.Context, email string) bool {
	email = strings.TrimSpace(email)
	if email == "" {
		return false
	}
	docs, err := s.store.Query(ctx, remote.Query{Collection: freeAccessCollection})
	if err != nil {
		logrus.WithError(err).Warn("[ACCESS] Failed to check free access")
		return false
	}
	for _, doc := range docs {
		if allowed, ok := doc.Data["email"].(string); ok && strings.EqualFold(allowed, email) {
			return true
		}
	}
	return false
}

// AddFreeAccess grants free access to each email. Emails are stored lower-cased
// and keyed by themselves, so adding one twice is harmless.
func (s *accessService) AddFreeAccess(ctx context.Context, emails ...string) error {
	for _, email := range emails {
		email = strings.ToLower(strings.TrimSpace(email))
		if email == "" {
			continue
		}
		err := s.store.Set(ctx, freeAccessCollection, email, map[string]any{
			"email":   email,
			"addedAt": remote.ServerTimestamp(),
		}, true)
		if err != nil {
			logrus.WithError(err).WithField("email", email).Error("[ACCESS] Failed to add free access")
			return err
		}
	}
	return nil
}
