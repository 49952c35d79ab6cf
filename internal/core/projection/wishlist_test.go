package projection_test

import (
	"slices"
	"testing"

	"github.com/SscSPs/money_forecast_app/internal/core/domain"
	"github.com/SscSPs/money_forecast_app/internal/core/projection"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// balancedTimeline returns included transactions on consecutive days from
// 2020-01-02 with balances assigned against anchor at 2020-01-01.
func balancedTimeline(anchor string, amounts ...string) []domain.GeneratedTransaction {
	txns := make([]domain.GeneratedTransaction, len(amounts))
	ptrs := make([]*domain.GeneratedTransaction, len(amounts))
	for i, a := range amounts {
		txns[i] = domain.GeneratedTransaction{SourceID: "src", Date: day(2020, 1, 2+i), Amount: dec(a)}
		ptrs[i] = &txns[i]
	}
	projection.AssignBalances(ptrs, dec(anchor), day(2020, 1, 1))
	return txns
}

func TestPlaceWishlist_WaitsForSustainedAffordability(t *testing.T) {
	// Balances: 2500, 1700, 2300, 1800, 2500, 2300, 2400
	included := balancedTimeline("1500", "1000", "-800", "600", "-500", "700", "-200", "100")
	wish := domain.Wishlist{WishlistID: "wish-1", Title: "Laptop", Amount: dec("2000")}

	gotIncluded, gotSkipped, placed := projection.PlaceWishlist(included, nil, wish, day(2020, 1, 1), day(2020, 1, 1))

	require.True(t, placed)
	assert.Empty(t, gotSkipped)
	require.Len(t, gotIncluded, len(included)+1)
	purchase := gotIncluded[len(gotIncluded)-1]
	assert.Equal(t, day(2020, 1, 6), purchase.Date)
	assert.True(t, dec("-2000").Equal(purchase.Amount))
	assert.Equal(t, domain.SourceWishlist, purchase.SourceKind)
	assert.Equal(t, "wish-1", purchase.SourceID)
	assert.False(t, purchase.Balance.Valid)

	for _, tx := range included {
		if !tx.Date.Before(purchase.Date) {
			assert.False(t, tx.Balance.Decimal.LessThan(wish.Amount))
		}
	}
}

func TestPlaceWishlist_RespectsDateAvailable(t *testing.T) {
	included := balancedTimeline("5000", "-100", "-100")
	available := day(2020, 2, 1)
	wish := domain.Wishlist{WishlistID: "wish-1", Amount: dec("1000"), DateAvailable: &available}

	gotIncluded, _, placed := projection.PlaceWishlist(included, nil, wish, day(2020, 1, 1), day(2020, 1, 1))

	require.True(t, placed)
	assert.Equal(t, available, gotIncluded[len(gotIncluded)-1].Date)
}

func TestPlaceWishlist_NeverAffordable(t *testing.T) {
	included := balancedTimeline("100", "50", "-20", "10")
	wish := domain.Wishlist{WishlistID: "wish-1", Amount: dec("1000")}

	gotIncluded, gotSkipped, placed := projection.PlaceWishlist(included, nil, wish, day(2020, 1, 1), day(2020, 1, 1))

	assert.False(t, placed)
	assert.Len(t, gotIncluded, 3)
	assert.Empty(t, gotSkipped)
}

func TestPlaceWishlist_BeforeFromGoesToSkipped(t *testing.T) {
	all := balancedTimeline("3000", "10", "10", "10", "10")
	skipped, included := slices.Clone(all[:2]), slices.Clone(all[2:])
	wish := domain.Wishlist{WishlistID: "wish-1", Amount: dec("500")}

	gotIncluded, gotSkipped, placed := projection.PlaceWishlist(included, skipped, wish, day(2020, 1, 4), day(2020, 1, 1))

	require.True(t, placed)
	assert.Len(t, gotIncluded, 2)
	require.Len(t, gotSkipped, 3)
	assert.Equal(t, day(2020, 1, 2), gotSkipped[2].Date)
}

func TestPlaceWishlist_IgnoresHistory(t *testing.T) {
	included := balancedTimeline("3000", "10", "10")
	wish := domain.Wishlist{WishlistID: "wish-1", Amount: dec("500")}

	// Both transactions are at or before now, so nothing can be chosen.
	_, _, placed := projection.PlaceWishlist(included, nil, wish, day(2020, 1, 1), day(2020, 1, 3))

	assert.False(t, placed)
}

func TestPlaceWishlist_EmptyTimeline(t *testing.T) {
	wish := domain.Wishlist{WishlistID: "wish-1", Amount: dec("1")}

	gotIncluded, gotSkipped, placed := projection.PlaceWishlist(nil, nil, wish, day(2020, 1, 1), day(2020, 1, 1))

	assert.False(t, placed)
	assert.Empty(t, gotIncluded)
	assert.Empty(t, gotSkipped)
}
