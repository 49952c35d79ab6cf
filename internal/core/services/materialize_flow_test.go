package services_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/SscSPs/money_forecast_app/internal/apperrors"
	"github.com/SscSPs/money_forecast_app/internal/core/domain"
	"github.com/SscSPs/money_forecast_app/internal/core/services"
	"github.com/SscSPs/money_forecast_app/internal/materialize"
	"github.com/SscSPs/money_forecast_app/internal/utils"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryLedger keeps accounts and ledger rows in memory and applies every saved
// row to the account balance, like the pgsql ledger repository.
type memoryLedger struct {
	mu       sync.Mutex
	accounts map[string]domain.Account
	rows     []domain.LedgerRow
}

func (l *memoryLedger) FindAccountByID(_ context.Context, accountID string) (*domain.Account, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	account, ok := l.accounts[accountID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &account, nil
}

func (l *memoryLedger) ListLedgerRows(_ context.Context, accountID string, from, to time.Time) ([]domain.LedgerRow, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	var out []domain.LedgerRow
	for _, row := range l.rows {
		if row.AccountID == accountID && !row.Date.Before(from) && !row.Date.After(to) {
			out = append(out, row)
		}
	}
	return out, nil
}

func (l *memoryLedger) SaveLedgerRow(_ context.Context, row domain.LedgerRow) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, existing := range l.rows {
		if existing.AccountID == row.AccountID && existing.SourceKind == row.SourceKind &&
			existing.SourceID == row.SourceID && existing.Date.Equal(row.Date) {
			return apperrors.ErrDuplicate
		}
	}
	account, ok := l.accounts[row.AccountID]
	if !ok {
		return apperrors.ErrNotFound
	}
	account.Balance = account.Balance.Add(row.Amount)
	l.accounts[row.AccountID] = account
	l.rows = append(l.rows, row)
	return nil
}

// inlinePublisher hands every job straight to the handler.
type inlinePublisher struct {
	handle materialize.Handler
}

func (p inlinePublisher) Publish(ctx context.Context, job *materialize.Job) error {
	return p.handle(ctx, job)
}

func (p inlinePublisher) Close() error { return nil }

func TestScheduleMaterializeProject_BalanceIsStable(t *testing.T) {
	ctx := context.Background()
	clock := &utils.MockClock{FixedNow: time.Date(2020, 1, 3, 8, 0, 0, 0, time.UTC)}
	store := &memoryLedger{accounts: map[string]domain.Account{
		"acc-1": {AccountID: "acc-1", UserID: "user-1", Balance: decimal.NewFromInt(1000)},
	}}

	recurring := new(MockRecurringRepository)
	recurring.expectItems("acc-1",
		[]domain.Expense{{
			ExpenseID: "exp-1", AccountID: "acc-1", Title: "Parking", Amount: decimal.NewFromInt(10),
			RecurrenceRule: domain.RecurrenceRule{BeginDate: day(2020, 1, 4), FrequencyType: domain.Daily},
		}},
		[]domain.Transfer{}, []domain.Payroll{}, []domain.Wishlist{},
	)

	materializer := services.NewMaterializeService(store, clock)
	scheduler := services.NewScheduleService(store, recurring, inlinePublisher{handle: materializer.Handle},
		services.WithScheduleClock(clock),
		services.WithScheduleLookbackDays(2))
	projector := services.NewProjectionService(store, recurring, store,
		services.WithProjectionClock(clock))

	from, to := day(2020, 1, 1), day(2020, 1, 10)
	wantDates := []time.Time{
		day(2020, 1, 4), day(2020, 1, 5), day(2020, 1, 6), day(2020, 1, 7),
		day(2020, 1, 8), day(2020, 1, 9), day(2020, 1, 10),
	}

	before, err := projector.GetProjection(ctx, "acc-1", from, to, "user-1")
	require.NoError(t, err)
	require.Len(t, before.Transactions, 7)

	clock.SetNow(time.Date(2020, 1, 5, 8, 0, 0, 0, time.UTC))
	n, err := scheduler.ScheduleDue(ctx, "acc-1", "user-1")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	account, err := store.FindAccountByID(ctx, "acc-1")
	require.NoError(t, err)
	assert.True(t, account.Balance.Equal(decimal.NewFromInt(980)), "balance after materializing Jan 4 and 5: %s", account.Balance)

	after, err := projector.GetProjection(ctx, "acc-1", from, to, "user-1")
	require.NoError(t, err)
	require.Len(t, after.Transactions, 7)

	var gotDates []time.Time
	for _, tx := range after.Transactions {
		gotDates = append(gotDates, tx.Date)
	}
	assert.Equal(t, wantDates, gotDates, "every occurrence appears exactly once")
	assert.Equal(t, domain.SourceLedger, after.Transactions[0].SourceKind)
	assert.Equal(t, domain.SourceLedger, after.Transactions[1].SourceKind)
	assert.True(t, after.Transactions[1].Balance.Decimal.Equal(decimal.NewFromInt(980)))

	for i := range before.Transactions {
		assert.True(t, before.Transactions[i].Balance.Decimal.Equal(after.Transactions[i].Balance.Decimal),
			"balance on %s changed from %s to %s", wantDates[i].Format(time.DateOnly),
			before.Transactions[i].Balance.Decimal, after.Transactions[i].Balance.Decimal)
	}
	last := after.Transactions[len(after.Transactions)-1]
	assert.True(t, last.Balance.Decimal.Equal(decimal.NewFromInt(930)))

	// A second run republishes the same occurrences; nothing is written twice.
	n, err = scheduler.ScheduleDue(ctx, "acc-1", "user-1")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	account, err = store.FindAccountByID(ctx, "acc-1")
	require.NoError(t, err)
	assert.True(t, account.Balance.Equal(decimal.NewFromInt(980)))
	assert.Len(t, store.rows, 2)
}
