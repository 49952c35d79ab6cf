package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/money_forecast_app/internal/core/domain"
	"github.com/SscSPs/money_forecast_app/internal/materialize"
	"github.com/stretchr/testify/mock"
)

// MockAccountRepository is a mock type for the AccountReader interface
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

// MockRecurringRepository is a mock type for the RecurringItemReader interface
type MockRecurringRepository struct {
	mock.Mock
}

func (m *MockRecurringRepository) ListExpenses(ctx context.Context, accountID string) ([]domain.Expense, error) {
	args := m.Called(ctx, accountID)
	return args.Get(0).([]domain.Expense), args.Error(1)
}

func (m *MockRecurringRepository) ListLoans(ctx context.Context, accountID string) ([]domain.Loan, error) {
	args := m.Called(ctx, accountID)
	return args.Get(0).([]domain.Loan), args.Error(1)
}

func (m *MockRecurringRepository) ListTransfers(ctx context.Context, accountID string) ([]domain.Transfer, error) {
	args := m.Called(ctx, accountID)
	return args.Get(0).([]domain.Transfer), args.Error(1)
}

func (m *MockRecurringRepository) ListPayrolls(ctx context.Context, accountID string) ([]domain.Payroll, error) {
	args := m.Called(ctx, accountID)
	return args.Get(0).([]domain.Payroll), args.Error(1)
}

func (m *MockRecurringRepository) ListWishlists(ctx context.Context, accountID string) ([]domain.Wishlist, error) {
	args := m.Called(ctx, accountID)
	return args.Get(0).([]domain.Wishlist), args.Error(1)
}

// expectItems stubs every list call for accountID.
func (m *MockRecurringRepository) expectItems(accountID string, expenses []domain.Expense, transfers []domain.Transfer, payrolls []domain.Payroll, wishlists []domain.Wishlist) {
	m.On("ListExpenses", mock.Anything, accountID).Return(expenses, nil)
	m.On("ListLoans", mock.Anything, accountID).Return([]domain.Loan{}, nil)
	m.On("ListTransfers", mock.Anything, accountID).Return(transfers, nil)
	m.On("ListPayrolls", mock.Anything, accountID).Return(payrolls, nil)
	m.On("ListWishlists", mock.Anything, accountID).Return(wishlists, nil)
}

// MockLedgerRepository is a mock type for the LedgerRepositoryFacade interface
type MockLedgerRepository struct {
	mock.Mock
}

func (m *MockLedgerRepository) ListLedgerRows(ctx context.Context, accountID string, from, to time.Time) ([]domain.LedgerRow, error) {
	args := m.Called(ctx, accountID, from, to)
	return args.Get(0).([]domain.LedgerRow), args.Error(1)
}

func (m *MockLedgerRepository) SaveLedgerRow(ctx context.Context, row domain.LedgerRow) error {
	args := m.Called(ctx, row)
	return args.Error(0)
}

// MockPublisher is a mock type for the materialize.Publisher interface
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, job *materialize.Job) error {
	args := m.Called(ctx, job)
	return args.Error(0)
}

func (m *MockPublisher) Close() error {
	return m.Called().Error(0)
}
