package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cbnu/subscribe-service/internal/shared/logger"
	"github.com/cbnu/subscribe-service/internal/shared/utils"
)

// SubscriptionHandler handles purchase, renewal, termination and
// verification of tier subscriptions.
type SubscriptionHandler struct {
	subscriptions subscriptionService
	logger        logger.Interface
}

// NewSubscriptionHandler creates a new subscription handler
func NewSubscriptionHandler(subscriptions subscriptionService, logger logger.Interface) *SubscriptionHandler {
	return &SubscriptionHandler{subscriptions: subscriptions, logger: logger}
}

type PurchaseSubscriptionRequest struct {
	UserID int64  `json:"user_id" example:"1"`
	Tier   string `json:"tier" validate:"required,max=16" example:"PREMIUM"`
	Days   int64  `json:"days" example:"30"`
}

type TerminateSubscriptionRequest struct {
	UserID int64 `json:"user_id" example:"1"`
}

type VerifySubscriptionRequest struct {
	UserID int64  `json:"user_id" example:"1"`
	Tier   string `json:"tier" validate:"required,max=16" example:"BASIC"`
}

// RegisterSubscription purchases a new subscription
// @Summary Purchase a subscription
// @Description Debits the discounted price and stores the subscription in one transaction
// @Tags subscription
// @Accept json
// @Produce json
// @Param request body PurchaseSubscriptionRequest true "purchase"
// @Success 201 {object} utils.APIResponse{data=subdto.PurchaseDTO}
// @Failure 400 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Failure 422 {object} utils.APIResponse
// @Router /register/subscription [post]
func (h *SubscriptionHandler) RegisterSubscription(c *gin.Context) {
	var req PurchaseSubscriptionRequest
	if err := bindJSON(c, &req); err != nil {
		respondError(c, h.logger, "subscribe", err)
		return
	}

	result, err := h.subscriptions.Subscribe(c.Request.Context(), req.UserID, req.Tier, req.Days)
	if err != nil {
		respondError(c, h.logger, "subscribe", err)
		return
	}
	utils.CreatedResponse(c, result, "subscription registered")
}

// RenewSubscription replaces the tier and window of an existing subscription
// @Summary Renew a subscription
// @Tags subscription
// @Accept json
// @Produce json
// @Param request body PurchaseSubscriptionRequest true "renewal"
// @Success 200 {object} utils.APIResponse{data=subdto.PurchaseDTO}
// @Failure 404 {object} utils.APIResponse
// @Failure 422 {object} utils.APIResponse
// @Router /renewal/subscription [put]
func (h *SubscriptionHandler) RenewSubscription(c *gin.Context) {
	var req PurchaseSubscriptionRequest
	if err := bindJSON(c, &req); err != nil {
		respondError(c, h.logger, "renew", err)
		return
	}

	result, err := h.subscriptions.Renew(c.Request.Context(), req.UserID, req.Tier, req.Days)
	if err != nil {
		respondError(c, h.logger, "renew", err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "subscription renewed", result)
}

// TerminateSubscription cancels a subscription and refunds the remaining days
// @Summary Terminate a subscription
// @Tags subscription
// @Accept json
// @Produce json
// @Param request body TerminateSubscriptionRequest true "termination"
// @Success 200 {object} utils.APIResponse{data=subdto.TerminateResultDTO}
// @Failure 404 {object} utils.APIResponse
// @Failure 410 {object} utils.APIResponse
// @Router /terminate/subscription [delete]
func (h *SubscriptionHandler) TerminateSubscription(c *gin.Context) {
	var req TerminateSubscriptionRequest
	if err := bindJSON(c, &req); err != nil {
		respondError(c, h.logger, "terminate", err)
		return
	}

	result, err := h.subscriptions.Terminate(c.Request.Context(), req.UserID)
	if err != nil {
		respondError(c, h.logger, "terminate", err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "subscription terminated", result)
}

// VerifySubscription reports whether the held tier covers the requested one
// @Summary Verify a subscription tier
// @Tags subscription
// @Accept json
// @Produce json
// @Param request body VerifySubscriptionRequest true "verification"
// @Success 200 {object} utils.APIResponse{data=subdto.VerifyResultDTO}
// @Failure 404 {object} utils.APIResponse
// @Failure 410 {object} utils.APIResponse
// @Router /verify/subscription [post]
func (h *SubscriptionHandler) VerifySubscription(c *gin.Context) {
	var req VerifySubscriptionRequest
	if err := bindJSON(c, &req); err != nil {
		respondError(c, h.logger, "verify", err)
		return
	}

	result, err := h.subscriptions.Verify(c.Request.Context(), req.UserID, req.Tier)
	if err != nil {
		respondError(c, h.logger, "verify", err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// LoadSubscription returns a subscription with dates in the business timezone
// @Summary Load a subscription
// @Tags subscription
// @Produce json
// @Param userId path int true "user id"
// @Success 200 {object} utils.APIResponse{data=subdto.SubscriptionDTO}
// @Failure 404 {object} utils.APIResponse
// @Router /load/subscription/{userId} [get]
func (h *SubscriptionHandler) LoadSubscription(c *gin.Context) {
	userID, err := pathUserID(c)
	if err != nil {
		respondError(c, h.logger, "load subscription", err)
		return
	}

	result, err := h.subscriptions.Get(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.logger, "load subscription", err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}
