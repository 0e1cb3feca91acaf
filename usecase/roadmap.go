package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/AzielCF/az-learn/domains/remote"
	domainRoadmap "github.com/AzielCF/az-learn/domains/roadmap"
	"github.com/AzielCF/az-learn/pkg/localcache"
	"github.com/AzielCF/az-learn/validations"
)

const (
	visualMapColumnOffset = 200
	visualMapRowHeight    = 100
	visualMapNodesPerRow  = 3
)

type roadmapService struct {
	roadmaps *cachedList[domainRoadmap.Roadmap]
	now      func() time.Time
}

func NewRoadmapService(store remote.Store, cache *localcache.Store) domainRoadmap.IRoadmapUsecase {
	return &roadmapService{
		roadmaps: &cachedList[domainRoadmap.Roadmap]{
			tag:        "ROADMAP",
			collection: "roadmaps",
			key:        localcache.RoadmapsKey,
			expiry:     localcache.RoadmapExpiry,
			id:         func(r domainRoadmap.Roadmap) string { return r.ID },
			store:      store,
			cache:      cache,
		},
		now: time.Now,
	}
}

func (s *roadmapService) SaveRoadmap(ctx context.Context, userID string, request domainRoadmap.SaveRoadmapRequest) (domainRoadmap.Roadmap, error) {
	if err := requireUser(userID); err != nil {
		return domainRoadmap.Roadmap{}, err
	}
	if err := validations.ValidateSaveRoadmap(ctx, request); err != nil {
		return domainRoadmap.Roadmap{}, err
	}

	now := s.now().UTC()
	roadmap := domainRoadmap.Roadmap{
		ID:          uuid.NewString(),
		UserID:      userID,
		Title:       request.Title,
		Description: request.Description,
		Steps:       append([]string(nil), request.Steps...),
		VisualMap:   generateVisualMap(request.Steps),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.roadmaps.save(ctx, userID, roadmap); err != nil {
		logrus.WithError(err).WithField("user_id", userID).Error("[ROADMAP] Failed to save roadmap")
		return domainRoadmap.Roadmap{}, err
	}
	return roadmap, nil
}

func (s *roadmapService) GetRoadmaps(ctx context.Context, userID string, forceRefresh bool) ([]domainRoadmap.Roadmap, error) {
	if err := requireUser(userID); err != nil {
		return []domainRoadmap.Roadmap{}, err
	}
	return s.roadmaps.getAll(ctx, userID, forceRefresh)
}

func (s *roadmapService) DeleteRoadmap(ctx context.Context, userID, roadmapID string) error {
	if err := requireUser(userID); err != nil {
		return err
	}
	if err := requireID("roadmap", roadmapID); err != nil {
		return err
	}
	if err := s.roadmaps.delete(ctx, userID, roadmapID); err != nil {
		logrus.WithError(err).WithField("roadmap_id", roadmapID).Error("[ROADMAP] Failed to delete roadmap")
		return err
	}
	return nil
}

// generateVisualMap lays steps out top to bottom, alternating left and right,
// each node linked to the one before it.
func generateVisualMap(steps []string) domainRoadmap.VisualMap {
	nodes := make([]domainRoadmap.Node, len(steps))
	for i, step := range steps {
		x := -visualMapColumnOffset
		if i%2 == 1 {
			x = visualMapColumnOffset
		}
		connections := []string{}
		if i > 0 {
			connections = append(connections, fmt.Sprintf("node-%d", i-1))
		}
		nodes[i] = domainRoadmap.Node{
			ID:          fmt.Sprintf("node-%d", i),
			Text:        step,
			Level:       i / visualMapNodesPerRow,
			Position:    domainRoadmap.Position{X: x, Y: i * visualMapRowHeight},
			Connections: connections,
		}
	}
	return domainRoadmap.VisualMap{
		Type:  "mindmap",
		Nodes: nodes,
		Layout: domainRoadmap.Layout{
			Direction: "vertical",
			Spacing:   60,
			Padding:   20,
		},
	}
}
