package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/money_forecast_app/internal/apperrors"
	"github.com/SscSPs/money_forecast_app/internal/core/domain"
	portsrepo "github.com/SscSPs/money_forecast_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/money_forecast_app/internal/core/ports/services"
	"github.com/SscSPs/money_forecast_app/internal/materialize"
	"github.com/SscSPs/money_forecast_app/internal/utils"
	"github.com/google/uuid"
)

type MaterializeService struct {
	BaseService
	ledgerRepo portsrepo.LedgerWriter
}

// NewMaterializeService creates the consumer side of the materialization queue.
func NewMaterializeService(ledgerRepo portsrepo.LedgerWriter, clock utils.Clock) *MaterializeService {
	if clock == nil {
		clock = utils.SystemClock{}
	}
	return &MaterializeService{
		BaseService: BaseService{Clock: clock},
		ledgerRepo:  ledgerRepo,
	}
}

var _ portssvc.MaterializeSvc = (*MaterializeService)(nil)

// Handle writes the ledger row for job. An occurrence that was already
// materialized counts as done, so republished jobs are harmless.
func (s *MaterializeService) Handle(ctx context.Context, job *materialize.Job) error {
	row := domain.LedgerRow{
		TransactionID: uuid.NewString(),
		AccountID:     job.AccountID,
		SourceKind:    job.SourceKind,
		SourceID:      job.SourceID,
		Title:         job.Title,
		Description:   job.Description,
		Date:          job.DueDate,
		Amount:        job.Amount,
		CreatedAt:     s.Now(),
	}

	if err := s.ledgerRepo.SaveLedgerRow(ctx, row); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			s.LogDebug(ctx, "Occurrence already materialized",
				slog.String("job_id", job.JobID),
				slog.String("source_id", job.SourceID))
			return nil
		}
		s.LogError(ctx, err, "Failed to materialize occurrence",
			slog.String("job_id", job.JobID),
			slog.String("account_id", job.AccountID),
			slog.String("source_id", job.SourceID))
		return fmt.Errorf("materializing job %s: %w", job.JobID, err)
	}

	s.LogInfo(ctx, "Occurrence materialized",
		slog.String("job_id", job.JobID),
		slog.String("transaction_id", row.TransactionID),
		slog.String("account_id", row.AccountID),
		slog.String("amount", row.Amount.String()))
	return nil
}
