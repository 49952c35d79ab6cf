package mapping

import (
	"database/sql"

	"github.com/SscSPs/money_forecast_app/internal/core/domain"
	"github.com/SscSPs/money_forecast_app/internal/models"
)

// ToModelLedgerRow converts a domain LedgerRow to a model LedgerRow
func ToModelLedgerRow(d domain.LedgerRow) models.LedgerRow {
	return models.LedgerRow{
		TransactionID: d.TransactionID,
		AccountID:     d.AccountID,
		SourceKind:    string(d.SourceKind),
		SourceID:      d.SourceID,
		Title:         d.Title,
		Description:   d.Description,
		TransactionOn: d.Date,
		Amount:        d.Amount,
		CreatedAt:     d.CreatedAt,
	}
}

// ToDomainLedgerRow converts a model LedgerRow to a domain LedgerRow
func ToDomainLedgerRow(m models.LedgerRow) domain.LedgerRow {
	return domain.LedgerRow{
		TransactionID: m.TransactionID,
		AccountID:     m.AccountID,
		SourceKind:    domain.SourceKind(m.SourceKind),
		SourceID:      m.SourceID,
		Title:         m.Title,
		Description:   m.Description,
		Date:          m.TransactionOn,
		Amount:        m.Amount,
		CreatedAt:     m.CreatedAt,
	}
}

// NullSourceID stores an empty source id as NULL.
func NullSourceID(id string) sql.NullString {
	return sql.NullString{String: id, Valid: id != ""}
}
