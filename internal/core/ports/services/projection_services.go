package services

import (
	"context"
	"time"

	"github.com/SscSPs/money_forecast_app/internal/core/projection"
)

// ProjectionSvc defines the balance forecast operations for an account
type ProjectionSvc interface {
	// GetProjection builds the dated, balanced timeline of an account between from and to (inclusive).
	GetProjection(ctx context.Context, accountID string, from, to time.Time, userID string) (*projection.Result, error)
}
