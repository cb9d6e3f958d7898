package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cbnu/subscribe-service/internal/shared/errors"
)

type sampleRequest struct {
	Tier   string `json:"tier" validate:"required,alphanum,max=16"`
	Reason string `json:"reason" validate:"max=8"`
}

func TestValidateStruct(t *testing.T) {
	require.NoError(t, ValidateStruct(sampleRequest{Tier: "gold"}))

	err := ValidateStruct(sampleRequest{Reason: "far too long"})
	require.Error(t, err)

	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeValidation, appErr.Type)
	assert.Contains(t, appErr.Details, "tier is required")
	assert.Contains(t, appErr.Details, "reason must be at most 8 characters long")
}
