package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/cbnu/subscribe-service/internal/domain/shared"
	"github.com/cbnu/subscribe-service/internal/shared/constants"
	"github.com/cbnu/subscribe-service/internal/shared/errors"
	"github.com/cbnu/subscribe-service/internal/shared/utils"
)

// bindJSON decodes the body and runs struct validation.
func bindJSON(c *gin.Context, req any) error {
	if err := c.ShouldBindJSON(req); err != nil {
		return errors.NewBadRequestError(constants.ErrMsgValidationFailed, "request body must be valid JSON")
	}
	return utils.ValidateStruct(req)
}

// pathUserID parses the :userId segment. Non-numeric values are reported
// as an invalid user id.
func pathUserID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("userId"), 10, 64)
	if err != nil {
		return 0, shared.ErrInvalidUserID
	}
	return id, nil
}
