package projection_test

import (
	"testing"
	"time"

	"github.com/SscSPs/money_forecast_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func intPtr(i int) *int {
	return &i
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertBalance(t *testing.T, want string, tx domain.GeneratedTransaction) {
	t.Helper()
	if assert.True(t, tx.Balance.Valid, "balance not assigned for %s on %s", tx.Title, tx.Date.Format("2006-01-02")) {
		assert.True(t, dec(want).Equal(tx.Balance.Decimal), "balance on %s: want %s, got %s", tx.Date.Format("2006-01-02"), want, tx.Balance.Decimal)
	}
}

func dates(txns []domain.GeneratedTransaction) []time.Time {
	out := make([]time.Time, len(txns))
	for i, tx := range txns {
		out[i] = tx.Date
	}
	return out
}
