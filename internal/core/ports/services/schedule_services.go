package services

import (
	"context"

	"github.com/SscSPs/money_forecast_app/internal/materialize"
)

// ScheduleSvc defines operations that hand due recurring items to the materialization queue
type ScheduleSvc interface {
	// ScheduleDue publishes one materialization job per occurrence that has fallen due within the lookback window.
	// Returns the number of jobs published.
	ScheduleDue(ctx context.Context, accountID string, userID string) (int, error)
}

// MaterializeSvc turns due occurrences into realized ledger rows
type MaterializeSvc interface {
	// Handle persists the ledger row for a single materialization job.
	Handle(ctx context.Context, job *materialize.Job) error
}
