package projection

import (
	"slices"
	"time"

	"github.com/SscSPs/money_forecast_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// affordableIndex returns the earliest transaction after now whose balance,
// and the balance of every transaction following it, is at least amount.
// txns must be sorted with balances assigned. It returns -1 when no such
// transaction exists.
func affordableIndex(txns []*domain.GeneratedTransaction, amount decimal.Decimal, now time.Time) int {
candidates:
	for i, tx := range txns {
		if !tx.Date.After(now) || !tx.Balance.Valid || tx.Balance.Decimal.LessThan(amount) {
			continue
		}
		for _, later := range txns[i+1:] {
			if !later.Balance.Valid || later.Balance.Decimal.LessThan(amount) {
				continue candidates
			}
		}
		return i
	}
	return -1
}

// PlaceWishlist finds the earliest date the wishlist purchase stays affordable
// for the rest of the known timeline and appends the purchase to included or
// skipped depending on from. Balances of both sequences must already be
// assigned. The returned bool reports whether a purchase was placed; an item
// that never becomes affordable is silently left out.
//
// Only transactions dated after now are candidates, so a timeline with no
// future transactions never places a wishlist item, whatever the balance.
func PlaceWishlist(included, skipped []domain.GeneratedTransaction, item domain.Wishlist, from, now time.Time) ([]domain.GeneratedTransaction, []domain.GeneratedTransaction, bool) {
	t := timeline{included: included, skipped: skipped}
	merged := t.merged()
	slices.SortStableFunc(merged, byDate)

	idx := affordableIndex(merged, item.Amount, now)
	if idx < 0 {
		return included, skipped, false
	}

	date := merged[idx].Date
	if item.DateAvailable != nil {
		if available := dateOnly(*item.DateAvailable); available.After(date) {
			date = available
		}
	}

	tx := domain.GeneratedTransaction{
		SourceID:    item.WishlistID,
		SourceKind:  domain.SourceWishlist,
		Title:       item.Title,
		Description: item.Description,
		Date:        date,
		Amount:      item.Amount.Neg(),
	}
	if date.Before(from) {
		return included, append(skipped, tx), true
	}
	return append(included, tx), skipped, true
}
