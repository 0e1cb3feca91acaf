package docstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/AzielCF/az-learn/domains/remote"
)

type BreakerConfig struct {
	Name             string
	MaxRequests      uint32
	Interval         time.Duration
	Timeout          time.Duration
	FailureThreshold uint32
}

// BreakerStore guards a remote.Store with a circuit breaker. While the circuit
// is open calls fail fast with remote.ErrUnavailable. ErrNotFound is a normal
// answer and does not count as a failure.
type BreakerStore struct {
	next remote.Store
	cb   *gobreaker.CircuitBreaker[any]
}

func NewBreakerStore(next remote.Store, cfg BreakerConfig) *BreakerStore {
	if cfg.Name == "" {
		cfg.Name = "remote-store"
	}
	if cfg.FailureThreshold == 0 {
		cfg.FailureThreshold = 5
	}
	threshold := cfg.FailureThreshold

	settings := gobreaker.Settings{
		Name:        cfg.Name,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, remote.ErrNotFound)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logrus.Warnf("[REMOTE] Circuit %s: %s -> %s", name, from, to)
		},
	}
	return &BreakerStore{next: next, cb: gobreaker.NewCircuitBreaker[any](settings)}
}

// State returns the breaker state name (closed, half-open, open).
func (b *BreakerStore) State() string {
	return b.cb.State().String()
}

func (b *BreakerStore) execute(fn func() (any, error)) (any, error) {
	res, err := b.cb.Execute(fn)
	if err == nil || errors.Is(err, remote.ErrNotFound) || errors.Is(err, remote.ErrUnavailable) {
		return res, err
	}
	return res, fmt.Errorf("%w: %v", remote.ErrUnavailable, err)
}

func (b *BreakerStore) Query(ctx context.Context, q remote.Query) ([]remote.Document, error) {
	res, err := b.execute(func() (any, error) { return b.next.Query(ctx, q) })
	if err != nil {
		return nil, err
	}
	docs, _ := res.([]remote.Document)
	return docs, nil
}

type getResult struct {
	doc   remote.Document
	found bool
}

func (b *BreakerStore) Get(ctx context.Context, collection, id string) (remote.Document, bool, error) {
	res, err := b.execute(func() (any, error) {
		doc, found, err := b.next.Get(ctx, collection, id)
		return getResult{doc: doc, found: found}, err
	})
	if err != nil {
		return remote.Document{}, false, err
	}
	r := res.(getResult)
	return r.doc, r.found, nil
}

func (b *BreakerStore) Add(ctx context.Context, collection string, data map[string]any) (string, error) {
	res, err := b.execute(func() (any, error) { return b.next.Add(ctx, collection, data) })
	if err != nil {
		return "", err
	}
	id, _ := res.(string)
	return id, nil
}

func (b *BreakerStore) Set(ctx context.Context, collection, id string, data map[string]any, merge bool) error {
	_, err := b.execute(func() (any, error) { return nil, b.next.Set(ctx, collection, id, data, merge) })
	return err
}

func (b *BreakerStore) Update(ctx context.Context, collection, id string, patch map[string]any) error {
	_, err := b.execute(func() (any, error) { return nil, b.next.Update(ctx, collection, id, patch) })
	return err
}

func (b *BreakerStore) Delete(ctx context.Context, collection, id string) error {
	_, err := b.execute(func() (any, error) { return nil, b.next.Delete(ctx, collection, id) })
	return err
}
