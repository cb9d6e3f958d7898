package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cbnu/subscribe-service/internal/domain/shared"
	"github.com/cbnu/subscribe-service/internal/domain/subscription"
	vo "github.com/cbnu/subscribe-service/internal/domain/subscription/valueobjects"
	sharedErrors "github.com/cbnu/subscribe-service/internal/shared/errors"
	"github.com/cbnu/subscribe-service/internal/shared/logger"
)

func TestSubscriptionRepository_Lifecycle(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewSubscriptionRepository(gdb, logger.NewDiscardLogger())
	ctx := context.Background()

	s, err := subscription.NewSubscription(3, vo.TierBasic, 30, t0)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, s))
	assert.NotZero(t, s.ID())

	dup, err := subscription.NewSubscription(3, vo.TierPremium, 10, t0)
	require.NoError(t, err)
	err = repo.Create(ctx, dup)
	assert.True(t, sharedErrors.IsDuplicateError(err))

	loaded, err := repo.GetByUserID(ctx, 3)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, vo.TierBasic, loaded.Tier())
	assert.True(t, loaded.EndDate().Equal(t0.Add(30*24*time.Hour)))

	renewed, err := loaded.Renew(3, vo.TierPremium, 60, t0.Add(time.Hour))
	require.NoError(t, err)
	require.NoError(t, repo.Update(ctx, renewed))

	// renewing the stale snapshot again must not overwrite
	again, err := loaded.Renew(3, vo.TierFree, 10, t0.Add(time.Hour))
	require.NoError(t, err)
	assert.ErrorIs(t, repo.Update(ctx, again), shared.ErrConcurrentModification)

	// deleting with the stale version fails, the current one succeeds
	assert.ErrorIs(t, repo.Delete(ctx, loaded), shared.ErrConcurrentModification)
	require.NoError(t, repo.Delete(ctx, renewed))

	exists, err := repo.ExistsByUserID(ctx, 3)
	require.NoError(t, err)
	assert.False(t, exists)

	gone, err := repo.GetByUserID(ctx, 3)
	require.NoError(t, err)
	assert.Nil(t, gone)
}
