package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cbnu/subscribe-service/internal/domain/shared"
	"github.com/cbnu/subscribe-service/internal/domain/wallet"
	"github.com/cbnu/subscribe-service/internal/shared/logger"
)

type balanceCache interface {
	Get(ctx context.Context, userID shared.UserID) (wallet.BalanceSnapshot, bool, error)
	Put(ctx context.Context, userID shared.UserID, snap wallet.BalanceSnapshot) error
	Invalidate(ctx context.Context, userID shared.UserID) error
}

func exerciseBalanceCache(t *testing.T, c balanceCache) {
	t.Helper()
	ctx := context.Background()

	_, found, err := c.Get(ctx, 77)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, c.Put(ctx, 77, wallet.BalanceSnapshot{Balance: 1200, Version: 3}))
	snap, found, err := c.Get(ctx, 77)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, wallet.BalanceSnapshot{Balance: 1200, Version: 3}, snap)

	// a reader that loaded version 2 before the write committed must not win
	require.NoError(t, c.Put(ctx, 77, wallet.BalanceSnapshot{Balance: 300, Version: 2}))
	require.NoError(t, c.Put(ctx, 77, wallet.BalanceSnapshot{Balance: 999, Version: 3}))
	snap, _, err = c.Get(ctx, 77)
	require.NoError(t, err)
	assert.Equal(t, wallet.BalanceSnapshot{Balance: 1200, Version: 3}, snap)

	require.NoError(t, c.Put(ctx, 77, wallet.BalanceSnapshot{Balance: 1500, Version: 4}))
	snap, _, err = c.Get(ctx, 77)
	require.NoError(t, err)
	assert.Equal(t, wallet.BalanceSnapshot{Balance: 1500, Version: 4}, snap)

	// zero is a real balance, not a miss
	require.NoError(t, c.Put(ctx, 78, wallet.BalanceSnapshot{Balance: 0, Version: 1}))
	_, found, err = c.Get(ctx, 78)
	require.NoError(t, err)
	assert.True(t, found)

	require.NoError(t, c.Invalidate(ctx, 77))
	_, found, err = c.Get(ctx, 77)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, c.Invalidate(ctx, 12345))
}

func TestLRUBalanceCache(t *testing.T) {
	exerciseBalanceCache(t, NewLRUBalanceCache(16, time.Minute))
}

func TestLRUBalanceCache_EvictsAndExpires(t *testing.T) {
	ctx := context.Background()

	small := NewLRUBalanceCache(2, time.Minute)
	for id := shared.UserID(1); id <= 3; id++ {
		require.NoError(t, small.Put(ctx, id, wallet.BalanceSnapshot{Balance: int64(id), Version: 1}))
	}
	assert.Equal(t, 2, small.Len())
	_, found, _ := small.Get(ctx, 1)
	assert.False(t, found, "least recently used entry is evicted")

	short := NewLRUBalanceCache(2, 20*time.Millisecond)
	require.NoError(t, short.Put(ctx, 1, wallet.BalanceSnapshot{Balance: 10, Version: 1}))
	assert.Eventually(t, func() bool {
		_, found, _ := short.Get(ctx, 1)
		return !found
	}, time.Second, 10*time.Millisecond)
}

// Runs against a real server when SUBSCRIBE_TEST_REDIS_ADDR is set.
func TestRedisBalanceCache(t *testing.T) {
	addr := os.Getenv("SUBSCRIBE_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("SUBSCRIBE_TEST_REDIS_ADDR not set")
	}

	client := redis.NewClient(&redis.Options{Addr: addr})
	t.Cleanup(func() { _ = client.Close() })
	require.NoError(t, client.Ping(context.Background()).Err())

	c := NewRedisBalanceCache(client, logger.NewDiscardLogger())
	exerciseBalanceCache(t, c)

	ctx := context.Background()
	require.NoError(t, client.Set(ctx, c.key(90), "garbage", time.Minute).Err())
	_, found, err := c.Get(ctx, 90)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Zero(t, client.Exists(ctx, c.key(90)).Val(), "corrupt entry is dropped")
}

func TestParseSnapshot(t *testing.T) {
	snap, err := parseSnapshot("7:1500")
	require.NoError(t, err)
	assert.Equal(t, wallet.BalanceSnapshot{Balance: 1500, Version: 7}, snap)

	for _, raw := range []string{"1500", "x:1", "1:x", ""} {
		_, err := parseSnapshot(raw)
		assert.Error(t, err, raw)
	}
}
