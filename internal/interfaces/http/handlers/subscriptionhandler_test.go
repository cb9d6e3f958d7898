package handlers

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	subdto "github.com/cbnu/subscribe-service/internal/application/subscription/dto"
	"github.com/cbnu/subscribe-service/internal/domain/subscription"
	vo "github.com/cbnu/subscribe-service/internal/domain/subscription/valueobjects"
	"github.com/cbnu/subscribe-service/internal/interfaces/http/handlers/testutil"
	"github.com/cbnu/subscribe-service/internal/shared/logger"
)

// =====================================================================
// Stub service
// =====================================================================

type stubSubscriptionService struct {
	purchase  *subdto.PurchaseDTO
	terminate *subdto.TerminateResultDTO
	verify    *subdto.VerifyResultDTO
	sub       *subdto.SubscriptionDTO
	err       error

	lastTier string
	lastDays int64
}

func (s *stubSubscriptionService) Subscribe(_ context.Context, _ int64, tier string, days int64) (*subdto.PurchaseDTO, error) {
	s.lastTier, s.lastDays = tier, days
	return s.purchase, s.err
}

func (s *stubSubscriptionService) Renew(_ context.Context, _ int64, tier string, days int64) (*subdto.PurchaseDTO, error) {
	s.lastTier, s.lastDays = tier, days
	return s.purchase, s.err
}

func (s *stubSubscriptionService) Terminate(context.Context, int64) (*subdto.TerminateResultDTO, error) {
	return s.terminate, s.err
}

func (s *stubSubscriptionService) Verify(_ context.Context, _ int64, tier string) (*subdto.VerifyResultDTO, error) {
	s.lastTier = tier
	return s.verify, s.err
}

func (s *stubSubscriptionService) Get(context.Context, int64) (*subdto.SubscriptionDTO, error) {
	return s.sub, s.err
}

func newTestSubscriptionHandler(svc *stubSubscriptionService) *SubscriptionHandler {
	return NewSubscriptionHandler(svc, logger.NewDiscardLogger())
}

func samplePurchase() *subdto.PurchaseDTO {
	return &subdto.PurchaseDTO{
		SubscriptionDTO: subdto.SubscriptionDTO{
			SubscriptionID: 1,
			UserID:         10,
			Tier:           "PREMIUM",
			StartDate:      "2026-10-18",
			EndDate:        "2026-11-17",
		},
		Price:   2700,
		Balance: 7300,
	}
}

// =====================================================================
// Tests
// =====================================================================

func TestSubscriptionHandler_RegisterSubscription_Success(t *testing.T) {
	svc := &stubSubscriptionService{purchase: samplePurchase()}
	handler := newTestSubscriptionHandler(svc)

	c, w := testutil.NewTestContext(http.MethodPost, "/register/subscription",
		PurchaseSubscriptionRequest{UserID: 10, Tier: "premium", Days: 30})
	handler.RegisterSubscription(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "premium", svc.lastTier)
	assert.Equal(t, int64(30), svc.lastDays)

	resp := testutil.DecodeResponse(t, w)
	assert.True(t, resp.Success)
	assert.Contains(t, string(resp.Data), `"price":2700`)
}

func TestSubscriptionHandler_RegisterSubscription_MissingTier(t *testing.T) {
	svc := &stubSubscriptionService{purchase: samplePurchase()}
	handler := newTestSubscriptionHandler(svc)

	c, w := testutil.NewTestContext(http.MethodPost, "/register/subscription",
		map[string]any{"user_id": 10, "days": 30})
	handler.RegisterSubscription(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := testutil.DecodeResponse(t, w)
	require.NotNil(t, resp.Error)
	assert.Contains(t, resp.Error.Details, "tier is required")
	assert.Empty(t, svc.lastTier)
}

func TestSubscriptionHandler_RegisterSubscription_DomainErrors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		reason string
	}{
		{"already exists", subscription.ErrSubscriptionAlreadyExists, http.StatusConflict, "SUBSCRIPTION_ALREADY_EXISTS"},
		{"invalid tier", vo.ErrInvalidTier, http.StatusBadRequest, "INVALID_SUBSCRIPTION_TIER"},
		{"invalid days", vo.ErrInvalidDuration, http.StatusBadRequest, "INVALID_SUBSCRIPTION_DAYS"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := newTestSubscriptionHandler(&stubSubscriptionService{err: tt.err})

			c, w := testutil.NewTestContext(http.MethodPost, "/register/subscription",
				PurchaseSubscriptionRequest{UserID: 10, Tier: "PREMIUM", Days: 30})
			handler.RegisterSubscription(c)

			assert.Equal(t, tt.status, w.Code)
			assert.Contains(t, w.Body.String(), tt.reason)
		})
	}
}

func TestSubscriptionHandler_RenewSubscription(t *testing.T) {
	svc := &stubSubscriptionService{purchase: samplePurchase()}
	handler := newTestSubscriptionHandler(svc)

	c, w := testutil.NewTestContext(http.MethodPut, "/renewal/subscription",
		PurchaseSubscriptionRequest{UserID: 10, Tier: "PREMIUM", Days: 30})
	handler.RenewSubscription(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSubscriptionHandler_TerminateSubscription(t *testing.T) {
	t.Run("refunds", func(t *testing.T) {
		svc := &stubSubscriptionService{terminate: &subdto.TerminateResultDTO{
			UserID: 10, PreviousBalance: 100, Refund: 800, CurrentBalance: 900,
		}}
		handler := newTestSubscriptionHandler(svc)

		c, w := testutil.NewTestContext(http.MethodDelete, "/terminate/subscription",
			TerminateSubscriptionRequest{UserID: 10})
		handler.TerminateSubscription(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"refund":800`)
	})

	t.Run("expired", func(t *testing.T) {
		handler := newTestSubscriptionHandler(&stubSubscriptionService{err: subscription.ErrSubscriptionExpired})

		c, w := testutil.NewTestContext(http.MethodDelete, "/terminate/subscription",
			TerminateSubscriptionRequest{UserID: 10})
		handler.TerminateSubscription(c)

		assert.Equal(t, http.StatusGone, w.Code)
		assert.Contains(t, w.Body.String(), "SUBSCRIPTION_EXPIRED")
	})
}

func TestSubscriptionHandler_VerifySubscription(t *testing.T) {
	svc := &stubSubscriptionService{verify: &subdto.VerifyResultDTO{
		UserID: 10, Authorization: vo.Authorized.String(),
	}}
	handler := newTestSubscriptionHandler(svc)

	c, w := testutil.NewTestContext(http.MethodPost, "/verify/subscription",
		VerifySubscriptionRequest{UserID: 10, Tier: "BASIC"})
	handler.VerifySubscription(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "BASIC", svc.lastTier)
	assert.Contains(t, w.Body.String(), vo.Authorized.String())
}

func TestSubscriptionHandler_LoadSubscription(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		sub := samplePurchase().SubscriptionDTO
		handler := newTestSubscriptionHandler(&stubSubscriptionService{sub: &sub})

		c, w := testutil.NewTestContext(http.MethodGet, "/load/subscription/10", nil)
		testutil.SetURLParam(c, "userId", "10")
		handler.LoadSubscription(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"end_date":"2026-11-17"`)
	})

	t.Run("unexpected error hides details", func(t *testing.T) {
		handler := newTestSubscriptionHandler(&stubSubscriptionService{err: errors.New("connection refused")})

		c, w := testutil.NewTestContext(http.MethodGet, "/load/subscription/10", nil)
		testutil.SetURLParam(c, "userId", "10")
		handler.LoadSubscription(c)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "connection refused")
	})
}
