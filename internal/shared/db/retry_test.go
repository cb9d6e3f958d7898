package db

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var errConflict = errors.New("conflict")

func isConflict(err error) bool { return errors.Is(err, errConflict) }

func TestRetry(t *testing.T) {
	policy := RetryPolicy{MaxRetries: 2, Backoff: time.Millisecond}

	tests := []struct {
		name      string
		failures  int
		failWith  error
		wantCalls int
		wantErr   error
	}{
		{name: "first attempt succeeds", failures: 0, wantCalls: 1},
		{name: "succeeds after conflicts", failures: 2, failWith: errConflict, wantCalls: 3},
		{name: "budget exhausted", failures: 5, failWith: errConflict, wantCalls: 3, wantErr: errConflict},
		{name: "non retryable error stops", failures: 5, failWith: errors.New("fatal"), wantCalls: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			err := Retry(context.Background(), policy, isConflict, func(ctx context.Context) error {
				calls++
				if calls <= tt.failures {
					return tt.failWith
				}
				return nil
			})

			assert.Equal(t, tt.wantCalls, calls)
			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.failures > 0 && tt.failWith != errConflict:
				assert.Error(t, err)
			default:
				assert.NoError(t, err)
			}
		})
	}
}

func TestRetry_SingleAttemptInsideTransaction(t *testing.T) {
	gdb := setupTestDB(t)
	tm := NewTransactionManager(gdb)

	calls := 0
	err := tm.RunInTransaction(context.Background(), func(ctx context.Context) error {
		return Retry(ctx, DefaultRetryPolicy, isConflict, func(context.Context) error {
			calls++
			return errConflict
		})
	})

	assert.ErrorIs(t, err, errConflict)
	assert.Equal(t, 1, calls)
}
