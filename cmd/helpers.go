package cmd

import (
	"context"
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	coreconfig "github.com/AzielCF/az-learn/core/config"
	coreDB "github.com/AzielCF/az-learn/core/database"
	"github.com/AzielCF/az-learn/domains/kv"
	"github.com/AzielCF/az-learn/domains/remote"
	"github.com/AzielCF/az-learn/infrastructure/docstore"
	"github.com/AzielCF/az-learn/infrastructure/kvstore"
	"github.com/AzielCF/az-learn/infrastructure/valkey"
	"github.com/AzielCF/az-learn/pkg/batch"
	"github.com/AzielCF/az-learn/pkg/localcache"
	"github.com/AzielCF/az-learn/pkg/utils"
	"github.com/AzielCF/az-learn/ui/rest"
	"github.com/AzielCF/az-learn/usecase"
)

const badgerKeyPrefix = "cache:"

// appRuntime owns every connection opened for one command run.
type appRuntime struct {
	cfg      *coreconfig.Config
	db       *gorm.DB
	badgerDB *badger.DB
	valkey   *valkey.Client

	backend kv.Backend
	store   remote.Store
	cache   *localcache.Store
}

func newRuntime(ctx context.Context, cfg *coreconfig.Config) (*appRuntime, error) {
	rt := &appRuntime{cfg: cfg}

	if err := utils.CreateFolder(cfg.Storage.BaseDir); err != nil {
		return nil, err
	}

	if err := rt.openBackend(); err != nil {
		rt.Close()
		return nil, err
	}
	if err := rt.openStore(ctx); err != nil {
		rt.Close()
		return nil, err
	}

	rt.cache = localcache.NewStore(rt.backend, localcache.WithDefaultExpiry(cfg.Cache.DefaultExpiry))
	return rt, nil
}

func (rt *appRuntime) openBackend() error {
	switch rt.cfg.Storage.KVDriver {
	case "memory":
		rt.backend = kvstore.NewMemoryBackend()
	case "badger":
		if err := utils.CreateFolder(rt.cfg.Storage.BadgerDir); err != nil {
			return err
		}
		db, err := kvstore.OpenBadger(rt.cfg.Storage.BadgerDir)
		if err != nil {
			return err
		}
		rt.badgerDB = db
		rt.backend = kvstore.NewBadgerBackend(db, badgerKeyPrefix)
	case "valkey":
		client, err := valkey.NewClient(valkey.Config{
			Address:   rt.cfg.Valkey.Address,
			Password:  rt.cfg.Valkey.Password,
			DB:        rt.cfg.Valkey.DB,
			KeyPrefix: rt.cfg.Valkey.KeyPrefix,
		})
		if err != nil {
			return err
		}
		rt.valkey = client
		rt.backend = kvstore.NewValkeyBackend(client)
	default:
		return fmt.Errorf("unsupported kv driver: %s", rt.cfg.Storage.KVDriver)
	}
	logrus.Infof("[CACHE] Using %s backend", rt.cfg.Storage.KVDriver)
	return nil
}

func (rt *appRuntime) openStore(ctx context.Context) error {
	var inner remote.Store
	switch rt.cfg.Database.Driver {
	case "memory":
		inner = docstore.NewMemoryStore()
	case "sqlite", "postgres":
		if rt.cfg.Database.Driver == "sqlite" {
			if err := utils.CreateFolder(utils.ParentDir(rt.cfg.Database.Name)); err != nil {
				return err
			}
		}
		db, err := coreDB.NewDatabase(rt.cfg)
		if err != nil {
			return err
		}
		rt.db = db
		gs := docstore.NewGormStore(db)
		if err := gs.Init(ctx); err != nil {
			return err
		}
		inner = gs
	default:
		return fmt.Errorf("unsupported database driver: %s", rt.cfg.Database.Driver)
	}

	rt.store = docstore.NewBreakerStore(inner, docstore.BreakerConfig{
		Name:             "remote-" + rt.cfg.Database.Driver,
		MaxRequests:      rt.cfg.Breaker.MaxRequests,
		Interval:         rt.cfg.Breaker.Interval,
		Timeout:          rt.cfg.Breaker.Timeout,
		FailureThreshold: rt.cfg.Breaker.FailureThreshold,
	})
	logrus.Infof("[REMOTE] Using %s document store", rt.cfg.Database.Driver)
	return nil
}

func (rt *appRuntime) services() rest.Services {
	loader := batch.NewLoader(batch.NewAccessor(rt.store), rt.cache)
	return rest.Services{
		Notes:       usecase.NewNoteService(rt.store, rt.cache),
		Roadmaps:    usecase.NewRoadmapService(rt.store, rt.cache),
		Manifesto:   usecase.NewManifestoService(rt.store, rt.cache),
		Journals:    usecase.NewJournalService(rt.store, loader),
		ChatHistory: usecase.NewChatHistoryService(rt.cache),
		Messages:    usecase.NewMessageService(rt.store, rt.cache),
		Access:      usecase.NewAccessService(rt.store),
		Analytics:   usecase.NewAnalyticsService(rt.store, rt.cache, rt.cfg.Location()),
		Cache:       usecase.NewCacheService(rt.cache, rt.cfg.Storage.KVDriver),
		Health:      usecase.NewHealthService(rt.store, rt.backend),
	}
}

// Close releases connections in reverse order of opening.
func (rt *appRuntime) Close() {
	if rt.db != nil {
		if err := coreDB.Close(rt.db); err != nil {
			logrus.WithError(err).Error("[APP] Failed to close database")
		}
	}
	if rt.valkey != nil {
		rt.valkey.Close()
	}
	if rt.badgerDB != nil {
		if err := rt.badgerDB.Close(); err != nil {
			logrus.WithError(err).Error("[APP] Failed to close badger")
		}
	}
	logrus.Debug("[APP] Runtime closed")
}
