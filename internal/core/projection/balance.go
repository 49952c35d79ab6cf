package projection

import (
	"slices"
	"sort"
	"time"

	"github.com/SscSPs/money_forecast_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

func byDate(a, b *domain.GeneratedTransaction) int {
	return a.Date.Compare(b.Date)
}

// AssignBalances sorts txns by date and sets the balance of every transaction
// around anchor, the balance at now.
//
// Transactions dated before now are walked newest first: each one receives
// the running balance, which then has its amount removed. Transactions dated
// at or after now are walked oldest first: the amount is applied and the
// result becomes the transaction's balance.
func AssignBalances(txns []*domain.GeneratedTransaction, anchor decimal.Decimal, now time.Time) {
	slices.SortStableFunc(txns, byDate)
	split := sort.Search(len(txns), func(i int) bool {
		return !txns[i].Date.Before(now)
	})

	running := anchor
	for i := split - 1; i >= 0; i-- {
		txns[i].Balance = decimal.NewNullDecimal(running)
		running = running.Sub(txns[i].Amount)
	}

	running = anchor
	for _, tx := range txns[split:] {
		running = running.Add(tx.Amount)
		tx.Balance = decimal.NewNullDecimal(running)
	}
}

// timeline holds the two disjoint sequences of a projection.
type timeline struct {
	included []domain.GeneratedTransaction
	skipped  []domain.GeneratedTransaction
}

func (t *timeline) add(included, skipped []domain.GeneratedTransaction) {
	t.included = append(t.included, included...)
	t.skipped = append(t.skipped, skipped...)
}

// merged returns pointers into both sequences so balances can be written back.
func (t *timeline) merged() []*domain.GeneratedTransaction {
	all := make([]*domain.GeneratedTransaction, 0, len(t.included)+len(t.skipped))
	for i := range t.skipped {
		all = append(all, &t.skipped[i])
	}
	for i := range t.included {
		all = append(all, &t.included[i])
	}
	return all
}

// rebalance sorts both sequences and recomputes every balance.
func (t *timeline) rebalance(anchor decimal.Decimal, now time.Time) {
	sortTransactions(t.included)
	sortTransactions(t.skipped)
	AssignBalances(t.merged(), anchor, now)
}

func sortTransactions(txns []domain.GeneratedTransaction) {
	slices.SortStableFunc(txns, func(a, b domain.GeneratedTransaction) int {
		return a.Date.Compare(b.Date)
	})
}
