package apperrors_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/SscSPs/money_forecast_app/internal/apperrors"
	"github.com/stretchr/testify/assert"
)

func TestAppError_MatchesSentinel(t *testing.T) {
	cause := errors.New("connection reset")
	err := apperrors.NewAppError(apperrors.ErrNotFound, "account not found", cause)

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, apperrors.ErrValidation)
	assert.Equal(t, "account not found: connection reset", err.Error())
}

func TestAppError_WrappedStillMatches(t *testing.T) {
	err := fmt.Errorf("service layer: %w", apperrors.NewAppError(apperrors.ErrForbidden, "not yours", nil))

	assert.ErrorIs(t, err, apperrors.ErrForbidden)

	var appErr *apperrors.AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, "not yours", appErr.Error())
}
