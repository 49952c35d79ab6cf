package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/money_forecast_app/internal/core/domain"
	portsrepo "github.com/SscSPs/money_forecast_app/internal/core/ports/repositories"
	"github.com/SscSPs/money_forecast_app/internal/models"
	"github.com/SscSPs/money_forecast_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const recurrenceColumns = `begin_date, frequency_type, frequency_type_variable,
		frequency_day_of_week, frequency_week_of_month, frequency_day_of_month, frequency_month_of_year`

type PgxRecurringItemRepository struct {
	BaseRepository
}

// newPgxRecurringItemRepository creates a new repository for the recurring items of accounts.
func newPgxRecurringItemRepository(pool *pgxpool.Pool) *PgxRecurringItemRepository {
	return &PgxRecurringItemRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxRecurringItemRepository implements portsrepo.RecurringItemReader
var _ portsrepo.RecurringItemReader = (*PgxRecurringItemRepository)(nil)

// recurrenceTargets returns scan destinations for recurrenceColumns in order.
func recurrenceTargets(c *models.RecurrenceColumns) []any {
	return []any{
		&c.BeginDate,
		&c.FrequencyType,
		&c.FrequencyTypeVariable,
		&c.FrequencyDayOfWeek,
		&c.FrequencyWeekOfMonth,
		&c.FrequencyDayOfMonth,
		&c.FrequencyMonthOfYear,
	}
}

// queryAll runs query and collects every row with scan. An empty result is an empty slice.
func queryAll[M any, D any](ctx context.Context, pool *pgxpool.Pool, what string, scan func(pgx.CollectableRow) (M, error), toDomain func(M) D, query string, args ...any) ([]D, error) {
	rows, err := pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", what, err)
	}
	defer rows.Close()

	modelRows, err := pgx.CollectRows(rows, pgx.RowToFunc[M](scan))
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", what, err)
	}

	out := make([]D, 0, len(modelRows))
	for _, m := range modelRows {
		out = append(out, toDomain(m))
	}
	return out, nil
}

// ListExpenses retrieves the active recurring expenses charged to an account.
func (r *PgxRecurringItemRepository) ListExpenses(ctx context.Context, accountID string) ([]domain.Expense, error) {
	query := `
		SELECT expense_id, account_id, title, description, amount, ` + recurrenceColumns + `
		FROM expenses
		WHERE account_id = $1 AND is_active = TRUE
		ORDER BY begin_date, expense_id;
	`
	return queryAll(ctx, r.Pool, "expenses", func(row pgx.CollectableRow) (models.Expense, error) {
		var m models.Expense
		dest := append([]any{&m.ExpenseID, &m.AccountID, &m.Title, &m.Description, &m.Amount}, recurrenceTargets(&m.RecurrenceColumns)...)
		err := row.Scan(dest...)
		return m, err
	}, mapping.ToDomainExpense, query, accountID)
}

// ListLoans retrieves the active loan repayments charged to an account.
func (r *PgxRecurringItemRepository) ListLoans(ctx context.Context, accountID string) ([]domain.Loan, error) {
	query := `
		SELECT loan_id, account_id, title, description, amount, ` + recurrenceColumns + `
		FROM loans
		WHERE account_id = $1 AND is_active = TRUE
		ORDER BY begin_date, loan_id;
	`
	return queryAll(ctx, r.Pool, "loans", func(row pgx.CollectableRow) (models.Loan, error) {
		var m models.Loan
		dest := append([]any{&m.LoanID, &m.AccountID, &m.Title, &m.Description, &m.Amount}, recurrenceTargets(&m.RecurrenceColumns)...)
		err := row.Scan(dest...)
		return m, err
	}, mapping.ToDomainLoan, query, accountID)
}

// ListTransfers retrieves the active transfers where the account is either side.
func (r *PgxRecurringItemRepository) ListTransfers(ctx context.Context, accountID string) ([]domain.Transfer, error) {
	query := `
		SELECT transfer_id, source_account_id, destination_account_id, title, description, amount, ` + recurrenceColumns + `
		FROM transfers
		WHERE (source_account_id = $1 OR destination_account_id = $1) AND is_active = TRUE
		ORDER BY begin_date, transfer_id;
	`
	return queryAll(ctx, r.Pool, "transfers", func(row pgx.CollectableRow) (models.Transfer, error) {
		var m models.Transfer
		dest := append([]any{&m.TransferID, &m.SourceAccountID, &m.DestinationAccountID, &m.Title, &m.Description, &m.Amount}, recurrenceTargets(&m.RecurrenceColumns)...)
		err := row.Scan(dest...)
		return m, err
	}, mapping.ToDomainTransfer, query, accountID)
}

// ListPayrolls retrieves the payroll deposits into an account.
func (r *PgxRecurringItemRepository) ListPayrolls(ctx context.Context, accountID string) ([]domain.Payroll, error) {
	query := `
		SELECT payroll_id, account_id, title, description, pay_date, net_pay
		FROM payrolls
		WHERE account_id = $1
		ORDER BY pay_date, payroll_id;
	`
	return queryAll(ctx, r.Pool, "payrolls", func(row pgx.CollectableRow) (models.Payroll, error) {
		var m models.Payroll
		err := row.Scan(&m.PayrollID, &m.AccountID, &m.Title, &m.Description, &m.PayDate, &m.NetPay)
		return m, err
	}, mapping.ToDomainPayroll, query, accountID)
}

// ListWishlists retrieves the unpurchased wishlist items of an account, highest priority first.
func (r *PgxRecurringItemRepository) ListWishlists(ctx context.Context, accountID string) ([]domain.Wishlist, error) {
	query := `
		SELECT wishlist_id, account_id, title, description, amount, date_available, priority
		FROM wishlists
		WHERE account_id = $1 AND purchased = FALSE
		ORDER BY priority, wishlist_id;
	`
	return queryAll(ctx, r.Pool, "wishlists", func(row pgx.CollectableRow) (models.Wishlist, error) {
		var m models.Wishlist
		err := row.Scan(&m.WishlistID, &m.AccountID, &m.Title, &m.Description, &m.Amount, &m.DateAvailable, &m.Priority)
		return m, err
	}, mapping.ToDomainWishlist, query, accountID)
}
