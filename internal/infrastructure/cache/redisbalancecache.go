package cache

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/cbnu/subscribe-service/internal/domain/shared"
	"github.com/cbnu/subscribe-service/internal/domain/wallet"
	"github.com/cbnu/subscribe-service/internal/shared/logger"
)

const (
	balanceKeyPrefix = "wallet:balance:"
	baseBalanceTTL   = 5 * time.Minute
	balanceTTLJitter = time.Minute // TTL range: 5-6 min (anti-stampede)
)

// putIfNewerScript stores "version:balance" unless the key already holds the
// same or a newer version.
// KEYS[1]: balance key
// ARGV[1]: version, ARGV[2]: balance, ARGV[3]: ttl in milliseconds
// Returns 1 when written, 0 when a newer entry was kept.
var putIfNewerScript = redis.NewScript(`
local cur = redis.call('GET', KEYS[1])
if cur then
	local v = tonumber(string.match(cur, '^(%d+):'))
	if v and v >= tonumber(ARGV[1]) then
		return 0
	end
end
redis.call('SET', KEYS[1], ARGV[1] .. ':' .. ARGV[2], 'PX', ARGV[3])
return 1
`)

// RedisBalanceCache shares cached balances between replicas.
type RedisBalanceCache struct {
	client *redis.Client
	logger logger.Interface
}

func NewRedisBalanceCache(client *redis.Client, logger logger.Interface) *RedisBalanceCache {
	return &RedisBalanceCache{
		client: client,
		logger: logger,
	}
}

func (c *RedisBalanceCache) key(userID shared.UserID) string {
	return balanceKeyPrefix + userID.String()
}

func (c *RedisBalanceCache) Get(ctx context.Context, userID shared.UserID) (wallet.BalanceSnapshot, bool, error) {
	raw, err := c.client.Get(ctx, c.key(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return wallet.BalanceSnapshot{}, false, nil
	}
	if err != nil {
		return wallet.BalanceSnapshot{}, false, fmt.Errorf("failed to get balance from cache: %w", err)
	}

	snap, err := parseSnapshot(raw)
	if err != nil {
		// a corrupt entry is a miss; drop it so the next read repopulates
		c.logger.Warnw("dropping unparsable cached balance", "user_id", userID, "value", raw)
		if err := c.client.Del(ctx, c.key(userID)).Err(); err != nil {
			c.logger.Warnw("failed to drop unparsable cached balance", "user_id", userID, "error", err)
		}
		return wallet.BalanceSnapshot{}, false, nil
	}
	return snap, true, nil
}

// Put writes snap unless the cached entry is the same version or newer.
func (c *RedisBalanceCache) Put(ctx context.Context, userID shared.UserID, snap wallet.BalanceSnapshot) error {
	ttl := baseBalanceTTL + time.Duration(rand.Int63n(int64(balanceTTLJitter)))
	written, err := putIfNewerScript.Run(ctx, c.client, []string{c.key(userID)},
		snap.Version, snap.Balance, ttl.Milliseconds()).Int()
	if err != nil {
		return fmt.Errorf("failed to cache balance: %w", err)
	}
	if written == 0 {
		c.logger.Debugw("kept newer cached balance", "user_id", userID, "version", snap.Version)
	}
	return nil
}

func (c *RedisBalanceCache) Invalidate(ctx context.Context, userID shared.UserID) error {
	if err := c.client.Del(ctx, c.key(userID)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate cached balance: %w", err)
	}
	return nil
}

func parseSnapshot(raw string) (wallet.BalanceSnapshot, error) {
	version, balance, ok := strings.Cut(raw, ":")
	if !ok {
		return wallet.BalanceSnapshot{}, fmt.Errorf("missing version in %q", raw)
	}
	v, err := strconv.Atoi(version)
	if err != nil {
		return wallet.BalanceSnapshot{}, err
	}
	b, err := strconv.ParseInt(balance, 10, 64)
	if err != nil {
		return wallet.BalanceSnapshot{}, err
	}
	return wallet.BalanceSnapshot{Balance: b, Version: v}, nil
}
