package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/money_forecast_app/internal/core/domain"
	portsrepo "github.com/SscSPs/money_forecast_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/money_forecast_app/internal/core/ports/services"
	"github.com/SscSPs/money_forecast_app/internal/core/projection"
	"github.com/SscSPs/money_forecast_app/internal/materialize"
	"github.com/SscSPs/money_forecast_app/internal/utils"
)

// DefaultScheduleLookbackDays is how far before now ScheduleDue looks for due occurrences.
const DefaultScheduleLookbackDays = 1

type ScheduleService struct {
	BaseService
	accountRepo   portsrepo.AccountReader
	recurringRepo portsrepo.RecurringItemReader
	publisher     materialize.Publisher
	validator     *RecordValidator
	lookbackDays  int
}

// ScheduleOption is a functional option for configuring the schedule service
type ScheduleOption func(*ScheduleService)

// WithScheduleClock overrides the clock used as "now".
func WithScheduleClock(clock utils.Clock) ScheduleOption {
	return func(s *ScheduleService) {
		s.Clock = clock
	}
}

// WithScheduleLookbackDays overrides how many days back due occurrences are collected.
func WithScheduleLookbackDays(days int) ScheduleOption {
	return func(s *ScheduleService) {
		if days > 0 {
			s.lookbackDays = days
		}
	}
}

// NewScheduleService creates a service publishing due occurrences to publisher.
func NewScheduleService(accountRepo portsrepo.AccountReader, recurringRepo portsrepo.RecurringItemReader, publisher materialize.Publisher, options ...ScheduleOption) *ScheduleService {
	svc := &ScheduleService{
		BaseService:   BaseService{Clock: utils.SystemClock{}},
		accountRepo:   accountRepo,
		recurringRepo: recurringRepo,
		publisher:     publisher,
		validator:     NewRecordValidator(),
		lookbackDays:  DefaultScheduleLookbackDays,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.ScheduleSvc = (*ScheduleService)(nil)

// ScheduleDue publishes one job per occurrence dated in (now - lookback, now].
// Only occurrences that have fallen due are materialized; anything later stays
// a projection. Wishlists are never scheduled; their placement is only a forecast.
func (s *ScheduleService) ScheduleDue(ctx context.Context, accountID string, userID string) (int, error) {
	if _, err := s.AuthorizeAccount(ctx, s.accountRepo, accountID, userID); err != nil {
		return 0, err
	}

	items, err := loadAccountItems(ctx, s.recurringRepo, accountID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load recurring items", slog.String("account_id", accountID))
		return 0, err
	}
	if err := validateAccountItems(s.validator, items); err != nil {
		return 0, err
	}

	now := s.Now()
	since := now.AddDate(0, 0, -s.lookbackDays)

	var due []domain.GeneratedTransaction
	for _, e := range items.expenses {
		due = append(due, projection.Due(e, since, now, accountID)...)
	}
	for _, l := range items.loans {
		due = append(due, projection.Due(l, since, now, accountID)...)
	}
	for _, t := range items.transfers {
		due = append(due, projection.Due(t, since, now, accountID)...)
	}
	for _, p := range items.payrolls {
		due = append(due, projection.DuePayroll(p, since, now)...)
	}

	published := 0
	for _, tx := range due {
		job := materialize.JobFromTransaction(accountID, tx)
		if err := s.publisher.Publish(ctx, job); err != nil {
			s.LogError(ctx, err, "Failed to publish materialization job",
				slog.String("account_id", accountID),
				slog.String("source_id", tx.SourceID),
				slog.Int("published", published))
			return published, fmt.Errorf("publishing %s %s on %s: %w", tx.SourceKind, tx.SourceID, tx.Date.Format(time.DateOnly), err)
		}
		published++
	}

	s.LogInfo(ctx, "Scheduled due occurrences",
		slog.String("account_id", accountID),
		slog.Int("jobs", published),
		slog.Int("lookback_days", s.lookbackDays))
	return published, nil
}
