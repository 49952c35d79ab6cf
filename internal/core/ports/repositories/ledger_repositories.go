package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/money_forecast_app/internal/core/domain"
)

// LedgerReader defines read operations for realized ledger rows
type LedgerReader interface {
	// ListLedgerRows retrieves the ledger rows of an account dated within [from, to].
	ListLedgerRows(ctx context.Context, accountID string, from, to time.Time) ([]domain.LedgerRow, error)
}

// LedgerWriter defines write operations for realized ledger rows
type LedgerWriter interface {
	// SaveLedgerRow persists a realized row and applies its amount to the account balance.
	// Returns apperrors.ErrDuplicate if the same source item was already materialized on that date.
	SaveLedgerRow(ctx context.Context, row domain.LedgerRow) error
}

// LedgerRepositoryFacade combines all ledger-related repository interfaces
type LedgerRepositoryFacade interface {
	LedgerReader
	LedgerWriter
}
