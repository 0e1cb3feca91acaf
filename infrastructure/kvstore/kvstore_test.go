package kvstore

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AzielCF/az-learn/domains/kv"
	"github.com/AzielCF/az-learn/infrastructure/valkey"
)

// exerciseBackend runs the shared contract every backend must satisfy.
func exerciseBackend(t *testing.T, b kv.Backend) {
	t.Helper()
	ctx := context.Background()

	_, found, err := b.GetItem(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, b.SetItem(ctx, "@notes:u1", `{"data":[1]}`))
	require.NoError(t, b.SetItem(ctx, "@notes:u1", `{"data":[2]}`))
	v, found, err := b.GetItem(ctx, "@notes:u1")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `{"data":[2]}`, v)

	require.NoError(t, b.RemoveItem(ctx, "@notes:u1"))
	require.NoError(t, b.RemoveItem(ctx, "@notes:u1"))
	_, found, err = b.GetItem(ctx, "@notes:u1")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, b.SetItem(ctx, "a", "1"))
	require.NoError(t, b.SetItem(ctx, "b", "22"))
	if sp, ok := b.(kv.StatsProvider); ok {
		st, err := sp.Stats(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, st.Keys)
		assert.Positive(t, st.Bytes)
	}

	require.NoError(t, b.Clear(ctx))
	_, found, err = b.GetItem(ctx, "a")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestMemoryBackend_Contract(t *testing.T) {
	exerciseBackend(t, NewMemoryBackend())
}

func TestBadgerBackend_Contract(t *testing.T) {
	db, err := OpenBadger(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	exerciseBackend(t, NewBadgerBackend(db, "kv:"))
}

func TestBadgerBackend_ClearKeepsOtherPrefixes(t *testing.T) {
	db, err := OpenBadger(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	ctx := context.Background()
	mine := NewBadgerBackend(db, "kv:")
	other := NewBadgerBackend(db, "other:")

	require.NoError(t, mine.SetItem(ctx, "k", "v"))
	require.NoError(t, other.SetItem(ctx, "k", "w"))
	require.NoError(t, mine.Clear(ctx))

	v, found, err := other.GetItem(ctx, "k")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "w", v)
}

func TestValkeyBackend_Contract(t *testing.T) {
	addr := os.Getenv("VALKEY_TEST_ADDRESS")
	if addr == "" {
		t.Skip("VALKEY_TEST_ADDRESS not set")
	}
	client, err := valkey.NewClient(valkey.Config{
		Address:        addr,
		KeyPrefix:      "azlearn-test-" + time.Now().Format("150405.000"),
		ConnectTimeout: 2 * time.Second,
	})
	require.NoError(t, err)
	t.Cleanup(client.Close)

	exerciseBackend(t, NewValkeyBackend(client))
}
