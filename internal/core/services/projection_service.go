package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/money_forecast_app/internal/apperrors"
	"github.com/SscSPs/money_forecast_app/internal/core/domain"
	portsrepo "github.com/SscSPs/money_forecast_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/money_forecast_app/internal/core/ports/services"
	"github.com/SscSPs/money_forecast_app/internal/core/projection"
	"github.com/SscSPs/money_forecast_app/internal/utils"
)

// DefaultMaxProjectionDays bounds the window of a single projection request.
const DefaultMaxProjectionDays = 1830

// accountItems is everything stored against an account that feeds a projection.
type accountItems struct {
	expenses  []domain.Expense
	loans     []domain.Loan
	transfers []domain.Transfer
	payrolls  []domain.Payroll
	wishlists []domain.Wishlist
}

type ProjectionService struct {
	BaseService
	accountRepo   portsrepo.AccountReader
	recurringRepo portsrepo.RecurringItemReader
	ledgerRepo    portsrepo.LedgerReader
	validator     *RecordValidator
	maxDays       int
}

// ProjectionOption is a functional option for configuring the projection service
type ProjectionOption func(*ProjectionService)

// WithProjectionClock overrides the clock used as "now".
func WithProjectionClock(clock utils.Clock) ProjectionOption {
	return func(s *ProjectionService) {
		s.Clock = clock
	}
}

// WithMaxProjectionDays overrides the longest accepted window.
func WithMaxProjectionDays(days int) ProjectionOption {
	return func(s *ProjectionService) {
		if days > 0 {
			s.maxDays = days
		}
	}
}

// NewProjectionService creates a new projection service.
func NewProjectionService(accountRepo portsrepo.AccountReader, recurringRepo portsrepo.RecurringItemReader, ledgerRepo portsrepo.LedgerReader, options ...ProjectionOption) *ProjectionService {
	svc := &ProjectionService{
		BaseService:   BaseService{Clock: utils.SystemClock{}},
		accountRepo:   accountRepo,
		recurringRepo: recurringRepo,
		ledgerRepo:    ledgerRepo,
		validator:     NewRecordValidator(),
		maxDays:       DefaultMaxProjectionDays,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.ProjectionSvc = (*ProjectionService)(nil)

// GetProjection builds the balanced timeline of an account between from and to, inclusive.
func (s *ProjectionService) GetProjection(ctx context.Context, accountID string, from, to time.Time, userID string) (*projection.Result, error) {
	if to.Before(from) {
		return nil, fmt.Errorf("%w: fromDate must not be after toDate", apperrors.ErrValidation)
	}
	if days := int(to.Sub(from).Hours() / 24); days > s.maxDays {
		return nil, fmt.Errorf("%w: projection window of %d days exceeds the maximum of %d", apperrors.ErrValidation, days, s.maxDays)
	}

	account, err := s.AuthorizeAccount(ctx, s.accountRepo, accountID, userID)
	if err != nil {
		return nil, err
	}

	items, err := loadAccountItems(ctx, s.recurringRepo, accountID)
	if err != nil {
		return nil, err
	}
	if err := validateAccountItems(s.validator, items); err != nil {
		s.LogError(ctx, err, "Recurring record failed validation", slog.String("account_id", accountID))
		return nil, err
	}

	rows, err := s.ledgerRepo.ListLedgerRows(ctx, accountID, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to load ledger rows", slog.String("account_id", accountID))
		return nil, fmt.Errorf("loading ledger rows: %w", err)
	}

	engine := projection.NewEngine(projection.WithClock(s.Clock))
	result := engine.Generate(projection.Input{
		AccountID:     accountID,
		LedgerRows:    rows,
		Expenses:      items.expenses,
		Loans:         items.loans,
		Transfers:     items.transfers,
		Payrolls:      items.payrolls,
		Wishlists:     items.wishlists,
		From:          from,
		To:            to,
		AnchorBalance: account.Balance,
	})

	s.LogInfo(ctx, "Projection generated",
		slog.String("account_id", accountID),
		slog.String("from", from.Format(time.DateOnly)),
		slog.String("to", to.Format(time.DateOnly)),
		slog.Int("transactions", len(result.Transactions)),
		slog.Int("skipped", len(result.Skipped)),
		slog.Int("wishlists_placed", result.WishlistsPlaced))

	return &result, nil
}

func loadAccountItems(ctx context.Context, repo portsrepo.RecurringItemReader, accountID string) (accountItems, error) {
	var items accountItems
	var err error

	if items.expenses, err = repo.ListExpenses(ctx, accountID); err != nil {
		return items, fmt.Errorf("loading expenses: %w", err)
	}
	if items.loans, err = repo.ListLoans(ctx, accountID); err != nil {
		return items, fmt.Errorf("loading loans: %w", err)
	}
	if items.transfers, err = repo.ListTransfers(ctx, accountID); err != nil {
		return items, fmt.Errorf("loading transfers: %w", err)
	}
	if items.payrolls, err = repo.ListPayrolls(ctx, accountID); err != nil {
		return items, fmt.Errorf("loading payrolls: %w", err)
	}
	if items.wishlists, err = repo.ListWishlists(ctx, accountID); err != nil {
		return items, fmt.Errorf("loading wishlists: %w", err)
	}
	return items, nil
}

func validateAccountItems(v *RecordValidator, items accountItems) error {
	if err := ValidateAll(v, domain.SourceExpense, items.expenses, domain.Expense.SourceID); err != nil {
		return err
	}
	if err := ValidateAll(v, domain.SourceLoan, items.loans, domain.Loan.SourceID); err != nil {
		return err
	}
	if err := ValidateAll(v, domain.SourceTransfer, items.transfers, domain.Transfer.SourceID); err != nil {
		return err
	}
	if err := ValidateAll(v, domain.SourcePayroll, items.payrolls, func(p domain.Payroll) string { return p.PayrollID }); err != nil {
		return err
	}
	return ValidateAll(v, domain.SourceWishlist, items.wishlists, func(w domain.Wishlist) string { return w.WishlistID })
}
