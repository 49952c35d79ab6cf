package projection

import (
	"time"

	"github.com/SscSPs/money_forecast_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Recurring is a repeating item that can be expanded into dated transactions.
// Describe returns the title, description and the amount already signed from
// the point of view of viewerAccountID.
type Recurring interface {
	SourceID() string
	SourceKind() domain.SourceKind
	Rule() domain.RecurrenceRule
	Describe(viewerAccountID string) (title, description string, amount decimal.Decimal)
}

var (
	_ Recurring = domain.Expense{}
	_ Recurring = domain.Loan{}
	_ Recurring = domain.Transfer{}
)

// Window is the query range of a projection. From and To are inclusive
// calendar dates; Now is the instant separating history from projection.
type Window struct {
	From            time.Time
	To              time.Time
	Now             time.Time
	ViewerAccountID string
}

// place sorts one occurrence into the included or skipped sequence. Anything
// dated on or before Now is dropped.
func (w Window) place(tx domain.GeneratedTransaction, included, skipped []domain.GeneratedTransaction) ([]domain.GeneratedTransaction, []domain.GeneratedTransaction) {
	switch {
	case !tx.Date.After(w.Now):
		return included, skipped
	case tx.Date.Before(w.From):
		return included, append(skipped, tx)
	default:
		return append(included, tx), skipped
	}
}

// Expand generates the future occurrences of item up to w.To. Occurrences on
// or after w.From are returned as included, earlier future ones as skipped.
func Expand(item Recurring, w Window) (included, skipped []domain.GeneratedTransaction) {
	title, description, amount := item.Describe(w.ViewerAccountID)
	for _, date := range Occurrences(item.Rule(), w.To) {
		tx := domain.GeneratedTransaction{
			SourceID:    item.SourceID(),
			SourceKind:  item.SourceKind(),
			Title:       title,
			Description: description,
			Date:        date,
			Amount:      amount,
		}
		included, skipped = w.place(tx, included, skipped)
	}
	return included, skipped
}

// ExpandPayroll generates the single deposit of a payroll record.
func ExpandPayroll(p domain.Payroll, w Window) (included, skipped []domain.GeneratedTransaction) {
	date := dateOnly(p.PayDate)
	if date.After(w.To) {
		return nil, nil
	}
	tx := domain.GeneratedTransaction{
		SourceID:    p.PayrollID,
		SourceKind:  domain.SourcePayroll,
		Title:       p.Title,
		Description: p.Description,
		Date:        date,
		Amount:      p.NetPay,
	}
	return w.place(tx, nil, nil)
}

// Due returns the occurrences of item dated after since and on or before now.
// They have fallen due and belong in the ledger, never in a projection.
func Due(item Recurring, since, now time.Time, viewerAccountID string) []domain.GeneratedTransaction {
	title, description, amount := item.Describe(viewerAccountID)
	var due []domain.GeneratedTransaction
	for _, date := range Occurrences(item.Rule(), now) {
		if !date.After(since) {
			continue
		}
		due = append(due, domain.GeneratedTransaction{
			SourceID:    item.SourceID(),
			SourceKind:  item.SourceKind(),
			Title:       title,
			Description: description,
			Date:        date,
			Amount:      amount,
		})
	}
	return due
}

// DuePayroll returns the deposit of p when its pay date falls in (since, now].
func DuePayroll(p domain.Payroll, since, now time.Time) []domain.GeneratedTransaction {
	date := dateOnly(p.PayDate)
	if !date.After(since) || date.After(now) {
		return nil
	}
	return []domain.GeneratedTransaction{{
		SourceID:    p.PayrollID,
		SourceKind:  domain.SourcePayroll,
		Title:       p.Title,
		Description: p.Description,
		Date:        date,
		Amount:      p.NetPay,
	}}
}
