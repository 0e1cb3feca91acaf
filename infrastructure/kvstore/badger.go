package kvstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"

	"github.com/AzielCF/az-learn/domains/kv"
)

// BadgerBackend persists items in an embedded BadgerDB. It is the on-device
// store: entries survive restarts, which is what makes stale fallbacks useful.
type BadgerBackend struct {
	db     *badger.DB
	prefix string
}

// OpenBadger opens (or creates) a BadgerDB in dir with logging disabled.
func OpenBadger(dir string) (*badger.DB, error) {
	opts := badger.DefaultOptions(dir).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger at %s: %w", dir, err)
	}
	return db, nil
}

// NewBadgerBackend wraps db. Keys are stored under prefix so several backends
// can share one database; Clear only drops this prefix.
func NewBadgerBackend(db *badger.DB, prefix string) *BadgerBackend {
	return &BadgerBackend{db: db, prefix: prefix}
}

func (b *BadgerBackend) key(k string) []byte {
	return []byte(b.prefix + k)
}

func (b *BadgerBackend) SetItem(ctx context.Context, key, value string) error {
	return b.db.Update(func(txn *badger.Txn) error {
		return txn.Set(b.key(key), []byte(value))
	})
}

func (b *BadgerBackend) GetItem(ctx context.Context, key string) (string, bool, error) {
	var value []byte
	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(b.key(key))
		if err != nil {
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("badger get %s: %w", key, err)
	}
	return string(value), true, nil
}

func (b *BadgerBackend) RemoveItem(ctx context.Context, key string) error {
	err := b.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(b.key(key))
	})
	if err != nil && !errors.Is(err, badger.ErrKeyNotFound) {
		return fmt.Errorf("badger delete %s: %w", key, err)
	}
	return nil
}

func (b *BadgerBackend) Clear(ctx context.Context) error {
	if b.prefix == "" {
		return b.db.DropAll()
	}
	return b.db.DropPrefix([]byte(b.prefix))
}

func (b *BadgerBackend) Stats(ctx context.Context) (kv.Stats, error) {
	var st kv.Stats
	err := b.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(b.prefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			st.Keys++
			st.Bytes += it.Item().EstimatedSize()
		}
		return nil
	})
	return st, err
}
