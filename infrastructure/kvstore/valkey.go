package kvstore

import (
	"context"
	"fmt"

	"github.com/AzielCF/az-learn/domains/kv"
	"github.com/AzielCF/az-learn/infrastructure/valkey"
)

// ValkeyBackend stores items as plain Valkey strings without a server-side TTL:
// expiry is decided by the cache envelope, not by Valkey.
type ValkeyBackend struct {
	client *valkey.Client
	prefix string
}

func NewValkeyBackend(client *valkey.Client) *ValkeyBackend {
	return &ValkeyBackend{
		client: client,
		prefix: client.Key("kv") + ":",
	}
}

func (v *ValkeyBackend) fullKey(key string) string {
	return v.prefix + key
}

func (v *ValkeyBackend) SetItem(ctx context.Context, key, value string) error {
	inner := v.client.Inner()
	cmd := inner.B().Set().Key(v.fullKey(key)).Value(value).Build()
	if err := inner.Do(ctx, cmd).Error(); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}
	return nil
}

func (v *ValkeyBackend) GetItem(ctx context.Context, key string) (string, bool, error) {
	inner := v.client.Inner()
	val, err := inner.Do(ctx, inner.B().Get().Key(v.fullKey(key)).Build()).ToString()
	if err != nil {
		if valkey.IsNil(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to get %s: %w", key, err)
	}
	return val, true, nil
}

func (v *ValkeyBackend) RemoveItem(ctx context.Context, key string) error {
	inner := v.client.Inner()
	if err := inner.Do(ctx, inner.B().Del().Key(v.fullKey(key)).Build()).Error(); err != nil {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}

func (v *ValkeyBackend) Clear(ctx context.Context) error {
	inner := v.client.Inner()
	return v.client.ScanKeys(ctx, v.prefix+"*", func(keys []string) error {
		return inner.Do(ctx, inner.B().Del().Key(keys...).Build()).Error()
	})
}

func (v *ValkeyBackend) Stats(ctx context.Context) (kv.Stats, error) {
	inner := v.client.Inner()
	var st kv.Stats
	err := v.client.ScanKeys(ctx, v.prefix+"*", func(keys []string) error {
		for _, k := range keys {
			n, err := inner.Do(ctx, inner.B().Strlen().Key(k).Build()).AsInt64()
			if err != nil {
				return err
			}
			st.Keys++
			st.Bytes += int64(len(k)) + n
		}
		return nil
	})
	return st, err
}
