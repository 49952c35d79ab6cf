package repositories

import (
	"context"

	"github.com/SscSPs/money_forecast_app/internal/core/domain"
)

// RecurringItemReader defines read operations for the recurring items of an account.
// Records are owned by the CRUD layer; the projection only reads them.
type RecurringItemReader interface {
	// ListExpenses retrieves the active recurring expenses charged to an account.
	ListExpenses(ctx context.Context, accountID string) ([]domain.Expense, error)

	// ListLoans retrieves the active loan repayments charged to an account.
	ListLoans(ctx context.Context, accountID string) ([]domain.Loan, error)

	// ListTransfers retrieves the active transfers where the account is either the source or the destination.
	ListTransfers(ctx context.Context, accountID string) ([]domain.Transfer, error)

	// ListPayrolls retrieves upcoming payroll deposits into an account.
	ListPayrolls(ctx context.Context, accountID string) ([]domain.Payroll, error)

	// ListWishlists retrieves the unpurchased wishlist items of an account ordered by priority.
	ListWishlists(ctx context.Context, accountID string) ([]domain.Wishlist, error)
}
