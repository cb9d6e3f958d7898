// Package cache holds read-through balance caches for the point ledger.
package cache

import (
	"context"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/cbnu/subscribe-service/internal/domain/shared"
	"github.com/cbnu/subscribe-service/internal/domain/wallet"
)

// LRUBalanceCache keeps balances in process memory. Entries expire after ttl
// so a missed update from another replica heals on its own.
type LRUBalanceCache struct {
	mu      sync.Mutex
	entries *expirable.LRU[shared.UserID, wallet.BalanceSnapshot]
}

func NewLRUBalanceCache(size int, ttl time.Duration) *LRUBalanceCache {
	if size <= 0 {
		size = 1024
	}
	return &LRUBalanceCache{
		entries: expirable.NewLRU[shared.UserID, wallet.BalanceSnapshot](size, nil, ttl),
	}
}

func (c *LRUBalanceCache) Get(_ context.Context, userID shared.UserID) (wallet.BalanceSnapshot, bool, error) {
	snap, ok := c.entries.Get(userID)
	return snap, ok, nil
}

// Put ignores snap when the cached entry is the same version or newer.
func (c *LRUBalanceCache) Put(_ context.Context, userID shared.UserID, snap wallet.BalanceSnapshot) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if cur, ok := c.entries.Peek(userID); ok && !snap.NewerThan(cur) {
		return nil
	}
	c.entries.Add(userID, snap)
	return nil
}

func (c *LRUBalanceCache) Invalidate(_ context.Context, userID shared.UserID) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries.Remove(userID)
	return nil
}

// Len reports the number of live entries.
func (c *LRUBalanceCache) Len() int {
	return c.entries.Len()
}
