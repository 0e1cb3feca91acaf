package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	domainManifesto "github.com/AzielCF/az-learn/domains/manifesto"
	"github.com/AzielCF/az-learn/domains/remote"
	"github.com/AzielCF/az-learn/pkg/localcache"
	"github.com/AzielCF/az-learn/validations"
)

type manifestoService struct {
	items *cachedList[domainManifesto.Item]
	now   func() time.Time
}

func NewManifestoService(store remote.Store, cache *localcache.Store) domainManifesto.IManifestoUsecase {
	return &manifestoService{
		items: &cachedList[domainManifesto.Item]{
			tag:        "MANIFESTO",
			collection: "manifesto",
			key:        localcache.ManifestoKey,
			expiry:     localcache.ManifestoExpiry,
			id:         func(i domainManifesto.Item) string { return i.ID },
			store:      store,
			cache:      cache,
		},
		now: time.Now,
	}
}

func (s *manifestoService) SaveManifestoItem(ctx context.Context, userID string, request domainManifesto.SaveItemRequest) (domainManifesto.Item, error) {
	if err := requireUser(userID); err != nil {
		return domainManifesto.Item{}, err
	}
	if err := validations.ValidateSaveManifestoItem(ctx, request); err != nil {
		return domainManifesto.Item{}, err
	}

	tags := request.Tags
	if tags == nil {
		tags = []string{}
	}
	item := domainManifesto.Item{
		ID:        uuid.NewString(),
		Text:      request.Text,
		Type:      request.Type,
		Tags:      tags,
		CreatedAt: s.now().UTC(),
	}
	if err := s.items.save(ctx, userID, item); err != nil {
		logrus.WithError(err).WithField("user_id", userID).Error("[MANIFESTO] Failed to save item")
		return domainManifesto.Item{}, err
	}
	return item, nil
}

func (s *manifestoService) GetManifestoItems(ctx context.Context, userID string) ([]domainManifesto.Item, error) {
	if err := requireUser(userID); err != nil {
		return []domainManifesto.Item{}, err
	}
	return s.items.getAll(ctx, userID, false)
}

func (s *manifestoService) DeleteManifestoItem(ctx context.Context, userID, itemID string) error {
	if err := requireUser(userID); err != nil {
		return err
	}
	if err := requireID("manifesto item", itemID); err != nil {
		return err
	}
	if err := s.items.delete(ctx, userID, itemID); err != nil {
		logrus.WithError(err).WithField("item_id", itemID).Error("[MANIFESTO] Failed to delete item")
		return err
	}
	return nil
}
