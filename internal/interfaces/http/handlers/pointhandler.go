package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cbnu/subscribe-service/internal/shared/logger"
	"github.com/cbnu/subscribe-service/internal/shared/utils"
)

// PointHandler exposes the wallet ledger.
type PointHandler struct {
	points pointService
	logger logger.Interface
}

func NewPointHandler(points pointService, logger logger.Interface) *PointHandler {
	return &PointHandler{points: points, logger: logger}
}

type RegisterPointRequest struct {
	UserID int64 `json:"user_id" example:"1"`
}

type RechargePointRequest struct {
	UserID int64 `json:"user_id" example:"1"`
	Amount int64 `json:"amount" example:"10000"`
}

type UsePointRequest struct {
	UserID int64  `json:"user_id" example:"1"`
	Amount int64  `json:"amount" example:"500"`
	Reason string `json:"reason" validate:"max=255" example:"coffee"`
}

type PresentPointRequest struct {
	FromUserID int64 `json:"from_user_id" example:"1"`
	ToUserID   int64 `json:"to_user_id" example:"2"`
	Amount     int64 `json:"amount" example:"1000"`
}

// RegisterPoint creates an empty wallet for a user
// @Summary Create an empty wallet
// @Tags point
// @Accept json
// @Produce json
// @Param request body RegisterPointRequest true "wallet owner"
// @Success 201 {object} utils.APIResponse{data=dto.WalletDTO}
// @Failure 400 {object} utils.APIResponse
// @Router /register/point [post]
func (h *PointHandler) RegisterPoint(c *gin.Context) {
	var req RegisterPointRequest
	if err := bindJSON(c, &req); err != nil {
		respondError(c, h.logger, "register wallet", err)
		return
	}

	result, err := h.points.RegisterWallet(c.Request.Context(), req.UserID)
	if err != nil {
		respondError(c, h.logger, "register wallet", err)
		return
	}
	utils.CreatedResponse(c, result, "wallet registered")
}

// RechargePoint credits a wallet
// @Summary Add points to a wallet
// @Tags point
// @Accept json
// @Produce json
// @Param request body RechargePointRequest true "recharge"
// @Success 200 {object} utils.APIResponse{data=dto.BalanceChangeDTO}
// @Failure 422 {object} utils.APIResponse
// @Router /recharge/point [put]
func (h *PointHandler) RechargePoint(c *gin.Context) {
	var req RechargePointRequest
	if err := bindJSON(c, &req); err != nil {
		respondError(c, h.logger, "recharge", err)
		return
	}

	result, err := h.points.Recharge(c.Request.Context(), req.UserID, req.Amount)
	if err != nil {
		respondError(c, h.logger, "recharge", err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "points recharged", result)
}

// UsePoint debits a wallet
// @Summary Spend points from a wallet
// @Tags point
// @Accept json
// @Produce json
// @Param request body UsePointRequest true "debit"
// @Success 200 {object} utils.APIResponse{data=dto.BalanceChangeDTO}
// @Failure 422 {object} utils.APIResponse
// @Router /use/point [put]
func (h *PointHandler) UsePoint(c *gin.Context) {
	var req UsePointRequest
	if err := bindJSON(c, &req); err != nil {
		respondError(c, h.logger, "use points", err)
		return
	}

	result, err := h.points.Use(c.Request.Context(), req.UserID, req.Amount, req.Reason)
	if err != nil {
		respondError(c, h.logger, "use points", err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "points used", result)
}

// PresentPoint transfers points between two wallets
// @Summary Move points between two wallets atomically
// @Tags point
// @Accept json
// @Produce json
// @Param request body PresentPointRequest true "transfer"
// @Success 200 {object} utils.APIResponse{data=dto.PresentResultDTO}
// @Failure 400 {object} utils.APIResponse
// @Failure 422 {object} utils.APIResponse
// @Router /present/point [post]
func (h *PointHandler) PresentPoint(c *gin.Context) {
	var req PresentPointRequest
	if err := bindJSON(c, &req); err != nil {
		respondError(c, h.logger, "present points", err)
		return
	}

	result, err := h.points.Present(c.Request.Context(), req.FromUserID, req.ToUserID, req.Amount)
	if err != nil {
		respondError(c, h.logger, "present points", err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "points presented", result)
}

// LoadPoint returns the current wallet state
// @Summary Read a wallet balance
// @Tags point
// @Produce json
// @Param userId path int true "user id"
// @Success 200 {object} utils.APIResponse{data=dto.WalletDTO}
// @Failure 404 {object} utils.APIResponse
// @Router /load/point/{userId} [get]
func (h *PointHandler) LoadPoint(c *gin.Context) {
	userID, err := pathUserID(c)
	if err != nil {
		respondError(c, h.logger, "load wallet", err)
		return
	}

	result, err := h.points.LoadWallet(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.logger, "load wallet", err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListPointHistory returns a page of ledger entries
// @Summary List ledger entries, newest first
// @Tags point
// @Produce json
// @Param userId path int true "user id"
// @Param page query int false "page" default(1)
// @Param page_size query int false "page size" default(20)
// @Success 200 {object} utils.APIResponse{data=utils.ListResponse}
// @Router /history/point/{userId} [get]
func (h *PointHandler) ListPointHistory(c *gin.Context) {
	userID, err := pathUserID(c)
	if err != nil {
		respondError(c, h.logger, "list history", err)
		return
	}

	p := utils.ParsePagination(c)
	result, err := h.points.ListHistory(c.Request.Context(), userID, p.Page, p.PageSize)
	if err != nil {
		respondError(c, h.logger, "list history", err)
		return
	}
	utils.ListSuccessResponse(c, result.Items, result.Total, result.Page, result.PageSize)
}
