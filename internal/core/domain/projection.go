package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SourceKind identifies what produced a GeneratedTransaction.
type SourceKind string

const (
	SourceLedger   SourceKind = "LEDGER"
	SourceExpense  SourceKind = "EXPENSE"
	SourceLoan     SourceKind = "LOAN"
	SourceTransfer SourceKind = "TRANSFER"
	SourcePayroll  SourceKind = "PAYROLL"
	SourceWishlist SourceKind = "WISHLIST"
)

// LedgerRow is an already-realized transaction on an account.
type LedgerRow struct {
	TransactionID string          `json:"transactionID"`
	AccountID     string          `json:"accountID"`
	SourceKind    SourceKind      `json:"sourceKind"` // Kind of recurring item that produced the row, LEDGER for manual entries
	SourceID      string          `json:"sourceID"`
	Title         string          `json:"title"`
	Description   string          `json:"description"`
	Date          time.Time       `json:"date"`
	Amount        decimal.Decimal `json:"amount"` // Signed: credits positive, debits negative
	CreatedAt     time.Time       `json:"createdAt"`
}

// GeneratedTransaction is one dated entry of a projected timeline.
// Balance is invalid until balances have been assigned and then holds the
// account balance after the transaction posts.
type GeneratedTransaction struct {
	SourceID    string              `json:"sourceID"`
	SourceKind  SourceKind          `json:"sourceKind"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Date        time.Time           `json:"date"`
	Amount      decimal.Decimal     `json:"amount"`
	Balance     decimal.NullDecimal `json:"balance"`
}

// FromLedgerRow maps a realized ledger row onto the projection shape.
func FromLedgerRow(row LedgerRow) GeneratedTransaction {
	id := row.SourceID
	if id == "" {
		id = row.TransactionID
	}
	return GeneratedTransaction{
		SourceID:    id,
		SourceKind:  SourceLedger,
		Title:       row.Title,
		Description: row.Description,
		Date:        row.Date,
		Amount:      row.Amount,
	}
}
