package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerRow represents a row of the ledger_rows table.
type LedgerRow struct {
	TransactionID string          `db:"transaction_id"`
	AccountID     string          `db:"account_id"`
	SourceKind    string          `db:"source_kind"`
	SourceID      string          `db:"source_id"` // Empty for manual entries
	Title         string          `db:"title"`
	Description   string          `db:"description"`
	TransactionOn time.Time       `db:"transaction_on"`
	Amount        decimal.Decimal `db:"amount"`
	CreatedAt     time.Time       `db:"created_at"`
}
