package domain

import (
	"github.com/shopspring/decimal"
)

// Account represents a financial account within the core domain.
// Balance is the current balance, already net of every realized ledger row.
type Account struct {
	AccountID    string          `json:"accountID"`    // Primary Key (e.g., UUID)
	UserID       string          `json:"userID"`       // Owner of the account
	Name         string          `json:"name"`         // User-defined name
	CurrencyCode string          `json:"currencyCode"` // e.g. "USD"
	IsActive     bool            `json:"isActive"`     // Soft delete or status flag
	AuditFields                  // Embed CreatedAt, CreatedBy, etc.
	Balance      decimal.Decimal `json:"balance"`
}
