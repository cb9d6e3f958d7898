package handlers

import (
	stderrors "errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cbnu/subscribe-service/internal/domain/shared"
	"github.com/cbnu/subscribe-service/internal/domain/subscription"
	vo "github.com/cbnu/subscribe-service/internal/domain/subscription/valueobjects"
	"github.com/cbnu/subscribe-service/internal/domain/wallet"
	"github.com/cbnu/subscribe-service/internal/shared/errors"
	"github.com/cbnu/subscribe-service/internal/shared/logger"
	"github.com/cbnu/subscribe-service/internal/shared/utils"
)

type errorMapping struct {
	kind    error
	errType errors.ErrorType
	status  int
	reason  string
}

// domainErrors pairs every domain error kind with a stable status and reason.
// Order matters only for errors that wrap one another.
var domainErrors = []errorMapping{
	{wallet.ErrInvalidAmount, errors.ErrorTypeValidation, http.StatusBadRequest, "INVALID_AMOUNT"},
	{shared.ErrInvalidUserID, errors.ErrorTypeValidation, http.StatusBadRequest, "INVALID_USER_ID"},
	{vo.ErrInvalidTier, errors.ErrorTypeValidation, http.StatusBadRequest, "INVALID_SUBSCRIPTION_TIER"},
	{vo.ErrInvalidDuration, errors.ErrorTypeValidation, http.StatusBadRequest, "INVALID_SUBSCRIPTION_DAYS"},
	{wallet.ErrSameWallet, errors.ErrorTypeValidation, http.StatusBadRequest, "SAME_WALLET_TRANSFER"},
	{wallet.ErrPointLimitExceeded, errors.ErrorTypeUnprocessable, http.StatusUnprocessableEntity, "POINT_LIMIT_EXCEEDED"},
	{wallet.ErrPointBelowThreshold, errors.ErrorTypeUnprocessable, http.StatusUnprocessableEntity, "POINT_BELOW_THRESHOLD"},
	{wallet.ErrWalletNotFound, errors.ErrorTypeNotFound, http.StatusNotFound, "WALLET_NOT_FOUND"},
	{subscription.ErrSubscriptionNotFound, errors.ErrorTypeNotFound, http.StatusNotFound, "SUBSCRIPTION_NOT_FOUND"},
	{subscription.ErrSubscriptionAlreadyExists, errors.ErrorTypeConflict, http.StatusConflict, "SUBSCRIPTION_ALREADY_EXISTS"},
	{subscription.ErrSubscriptionExpired, errors.ErrorTypeGone, http.StatusGone, "SUBSCRIPTION_EXPIRED"},
	{shared.ErrWrongUserID, errors.ErrorTypeForbidden, http.StatusForbidden, "WRONG_USER_ID"},
	{shared.ErrConcurrentModification, errors.ErrorTypeConflict, http.StatusConflict, "CONCURRENT_MODIFICATION"},
}

// toAppError classifies err. Errors outside the table are returned as-is
// and render as a generic 500.
func toAppError(err error) error {
	if errors.GetAppError(err) != nil {
		return err
	}
	for _, m := range domainErrors {
		if stderrors.Is(err, m.kind) {
			return errors.FromDomain(m.kind, m.errType, m.status, m.reason)
		}
	}
	return err
}

// respondError logs unexpected failures and writes the mapped response.
func respondError(c *gin.Context, log logger.Interface, operation string, err error) {
	mapped := toAppError(err)
	if appErr := errors.GetAppError(mapped); appErr != nil && appErr.Code < http.StatusInternalServerError {
		log.Warnw(operation+" rejected", "reason", appErr.Reason, "error", err)
	} else {
		log.Errorw(operation+" failed", "error", err)
	}
	utils.ErrorResponseWithError(c, mapped)
}
