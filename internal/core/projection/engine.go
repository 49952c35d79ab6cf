// Package projection expands recurring items into a dated, balanced timeline
// of future transactions.
package projection

import (
	"time"

	"github.com/SscSPs/money_forecast_app/internal/core/domain"
	"github.com/SscSPs/money_forecast_app/internal/utils"
	"github.com/shopspring/decimal"
)

// Input carries everything one projection needs. Wishlists are funded in the
// order given.
type Input struct {
	AccountID     string
	LedgerRows    []domain.LedgerRow
	Expenses      []domain.Expense
	Loans         []domain.Loan
	Transfers     []domain.Transfer
	Payrolls      []domain.Payroll
	Wishlists     []domain.Wishlist
	From          time.Time
	To            time.Time
	AnchorBalance decimal.Decimal
}

// Result is a finished projection. Transactions are sorted by date and hold
// the included sequence; Skipped holds future transactions dated before From.
type Result struct {
	AccountID       string
	CurrentBalance  decimal.Decimal
	Transactions    []domain.GeneratedTransaction
	Skipped         []domain.GeneratedTransaction
	WishlistsPlaced int
}

// Engine builds projections. It keeps no state between calls and is safe for
// concurrent use.
type Engine struct {
	clock utils.Clock
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithClock overrides the source of "now".
func WithClock(clock utils.Clock) EngineOption {
	return func(e *Engine) {
		e.clock = clock
	}
}

// NewEngine creates an Engine reading the system clock unless overridden.
func NewEngine(options ...EngineOption) *Engine {
	e := &Engine{clock: utils.SystemClock{}}
	for _, option := range options {
		option(e)
	}
	return e
}

// Now returns the engine's current instant.
func (e *Engine) Now() time.Time {
	return e.clock.Now()
}

// Generate builds the balanced timeline for in.
func (e *Engine) Generate(in Input) Result {
	w := Window{
		From:            in.From,
		To:              in.To,
		Now:             e.clock.Now(),
		ViewerAccountID: in.AccountID,
	}

	var t timeline
	for _, row := range in.LedgerRows {
		t.included = append(t.included, domain.FromLedgerRow(row))
	}
	for _, expense := range in.Expenses {
		t.add(Expand(expense, w))
	}
	for _, loan := range in.Loans {
		t.add(Expand(loan, w))
	}
	for _, transfer := range in.Transfers {
		t.add(Expand(transfer, w))
	}
	for _, payroll := range in.Payrolls {
		t.add(ExpandPayroll(payroll, w))
	}

	t.rebalance(in.AnchorBalance, w.Now)

	placed := 0
	for _, wish := range in.Wishlists {
		var ok bool
		t.included, t.skipped, ok = PlaceWishlist(t.included, t.skipped, wish, w.From, w.Now)
		if !ok {
			continue
		}
		placed++
		t.rebalance(in.AnchorBalance, w.Now)
	}

	return Result{
		AccountID:       in.AccountID,
		CurrentBalance:  in.AnchorBalance,
		Transactions:    t.included,
		Skipped:         t.skipped,
		WishlistsPlaced: placed,
	}
}
