package projection_test

import (
	"testing"
	"time"

	"github.com/SscSPs/money_forecast_app/internal/core/domain"
	"github.com/SscSPs/money_forecast_app/internal/core/projection"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dailyExpense(begin time.Time, amount int64) domain.Expense {
	return domain.Expense{
		ExpenseID: "exp-1",
		AccountID: "acc-1",
		Title:     "Coffee",
		Amount:    decimal.NewFromInt(amount),
		RecurrenceRule: domain.RecurrenceRule{
			BeginDate:     begin,
			FrequencyType: domain.Daily,
		},
	}
}

func TestExpand_DailyExpense(t *testing.T) {
	w := projection.Window{
		From: day(2020, 1, 1),
		To:   day(2020, 1, 6),
		Now:  time.Date(2019, 12, 31, 12, 0, 0, 0, time.UTC),
	}

	included, skipped := projection.Expand(dailyExpense(day(2020, 1, 2), 100), w)

	require.Len(t, included, 5)
	assert.Empty(t, skipped)
	assert.True(t, decimal.NewFromInt(-100).Equal(included[0].Amount))
	assert.Equal(t, day(2020, 1, 6), included[4].Date)
	for _, tx := range included {
		assert.Equal(t, "exp-1", tx.SourceID)
		assert.Equal(t, domain.SourceExpense, tx.SourceKind)
		assert.Equal(t, "Coffee", tx.Title)
		assert.False(t, tx.Balance.Valid)
	}
}

func TestExpand_DropsOccurrencesUpToNow(t *testing.T) {
	w := projection.Window{
		From: day(2020, 1, 1),
		To:   day(2020, 1, 6),
		Now:  day(2020, 1, 4),
	}

	included, skipped := projection.Expand(dailyExpense(day(2020, 1, 2), 100), w)

	assert.Equal(t, []time.Time{day(2020, 1, 5), day(2020, 1, 6)}, dates(included))
	assert.Empty(t, skipped)
	for _, tx := range included {
		assert.True(t, tx.Date.After(w.Now))
	}
}

func TestExpand_SplitsOnFromDate(t *testing.T) {
	w := projection.Window{
		From: day(2020, 1, 5),
		To:   day(2020, 1, 6),
		Now:  day(2019, 12, 31),
	}

	included, skipped := projection.Expand(dailyExpense(day(2020, 1, 2), 100), w)

	assert.Equal(t, []time.Time{day(2020, 1, 5), day(2020, 1, 6)}, dates(included))
	assert.Equal(t, []time.Time{day(2020, 1, 2), day(2020, 1, 3), day(2020, 1, 4)}, dates(skipped))
}

func TestExpand_PartitionMatchesAllFutureOccurrences(t *testing.T) {
	rule := domain.RecurrenceRule{BeginDate: day(2019, 6, 15), FrequencyType: domain.Weekly, FrequencyDayOfWeek: intPtr(3)}
	loan := domain.Loan{LoanID: "loan-1", Title: "Car", Amount: decimal.NewFromInt(250), RecurrenceRule: rule}
	w := projection.Window{
		From: day(2020, 3, 1),
		To:   day(2020, 9, 30),
		Now:  time.Date(2020, 1, 15, 8, 0, 0, 0, time.UTC),
	}

	included, skipped := projection.Expand(loan, w)

	var future []time.Time
	for _, d := range projection.Occurrences(rule, w.To) {
		if d.After(w.Now) {
			future = append(future, d)
		}
	}
	assert.Equal(t, future, append(dates(skipped), dates(included)...))
	for _, tx := range skipped {
		assert.True(t, tx.Date.Before(w.From))
	}
	for _, tx := range included {
		assert.False(t, tx.Date.Before(w.From))
		assert.True(t, decimal.NewFromInt(-250).Equal(tx.Amount))
		assert.Equal(t, domain.SourceLoan, tx.SourceKind)
	}
}

func TestExpand_TransferSign(t *testing.T) {
	transfer := domain.Transfer{
		TransferID:           "tr-1",
		SourceAccountID:      "checking",
		DestinationAccountID: "savings",
		Title:                "Savings sweep",
		Amount:               decimal.NewFromInt(300),
		RecurrenceRule:       domain.RecurrenceRule{BeginDate: day(2020, 1, 1), FrequencyType: domain.Monthly},
	}
	w := projection.Window{From: day(2020, 1, 1), To: day(2020, 3, 31), Now: day(2019, 12, 1)}

	tests := []struct {
		name   string
		viewer string
		want   decimal.Decimal
	}{
		{name: "destination sees a credit", viewer: "savings", want: decimal.NewFromInt(300)},
		{name: "source sees a debit", viewer: "checking", want: decimal.NewFromInt(-300)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w.ViewerAccountID = tt.viewer
			included, _ := projection.Expand(transfer, w)
			require.Len(t, included, 3)
			for _, tx := range included {
				assert.True(t, tt.want.Equal(tx.Amount))
			}
		})
	}
}

func TestExpandPayroll(t *testing.T) {
	payroll := domain.Payroll{
		PayrollID: "pay-1",
		Title:     "Salary",
		PayDate:   day(2020, 1, 15),
		NetPay:    dec("2450.75"),
	}

	tests := []struct {
		name         string
		w            projection.Window
		wantIncluded int
		wantSkipped  int
	}{
		{name: "inside window", w: projection.Window{From: day(2020, 1, 1), To: day(2020, 1, 31), Now: day(2019, 12, 31)}, wantIncluded: 1},
		{name: "before from", w: projection.Window{From: day(2020, 1, 20), To: day(2020, 1, 31), Now: day(2019, 12, 31)}, wantSkipped: 1},
		{name: "after to", w: projection.Window{From: day(2020, 1, 1), To: day(2020, 1, 10), Now: day(2019, 12, 31)}},
		{name: "already paid", w: projection.Window{From: day(2020, 1, 1), To: day(2020, 1, 31), Now: day(2020, 1, 15)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			included, skipped := projection.ExpandPayroll(payroll, tt.w)
			assert.Len(t, included, tt.wantIncluded)
			assert.Len(t, skipped, tt.wantSkipped)
			for _, tx := range append(included, skipped...) {
				assert.True(t, dec("2450.75").Equal(tx.Amount))
				assert.Equal(t, domain.SourcePayroll, tx.SourceKind)
			}
		})
	}
}

func TestDue_OnlyOccurrencesUpToNow(t *testing.T) {
	now := time.Date(2020, 1, 5, 8, 0, 0, 0, time.UTC)
	expense := dailyExpense(day(2020, 1, 1), 10)

	due := projection.Due(expense, now.AddDate(0, 0, -2), now, "acc-1")

	assert.Equal(t, []time.Time{day(2020, 1, 4), day(2020, 1, 5)}, dates(due))
	for _, tx := range due {
		assert.Equal(t, "exp-1", tx.SourceID)
		assert.True(t, decimal.NewFromInt(-10).Equal(tx.Amount))
	}
}

func TestDue_DisjointFromProjection(t *testing.T) {
	now := time.Date(2020, 1, 5, 8, 0, 0, 0, time.UTC)
	expense := dailyExpense(day(2020, 1, 1), 10)

	due := projection.Due(expense, now.AddDate(0, 0, -30), now, "acc-1")
	included, skipped := projection.Expand(expense, projection.Window{From: day(2020, 1, 1), To: day(2020, 1, 31), Now: now})

	seen := make(map[time.Time]bool)
	for _, tx := range due {
		assert.False(t, tx.Date.After(now))
		seen[tx.Date] = true
	}
	for _, tx := range append(included, skipped...) {
		assert.False(t, seen[tx.Date], "%s is both due and projected", tx.Date.Format("2006-01-02"))
	}
	assert.Len(t, due, 5)
	assert.Len(t, included, 26)
}

func TestDuePayroll(t *testing.T) {
	payroll := domain.Payroll{PayrollID: "pay-1", Title: "Salary", PayDate: day(2020, 1, 15), NetPay: dec("900")}

	tests := []struct {
		name  string
		since time.Time
		now   time.Time
		want  int
	}{
		{name: "paid today", since: day(2020, 1, 14), now: time.Date(2020, 1, 15, 9, 0, 0, 0, time.UTC), want: 1},
		{name: "not yet paid", since: day(2020, 1, 13), now: day(2020, 1, 14)},
		{name: "already materialized in an earlier run", since: day(2020, 1, 15), now: day(2020, 1, 16)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			due := projection.DuePayroll(payroll, tt.since, tt.now)
			require.Len(t, due, tt.want)
			for _, tx := range due {
				assert.True(t, dec("900").Equal(tx.Amount))
				assert.Equal(t, domain.SourcePayroll, tx.SourceKind)
			}
		})
	}
}
