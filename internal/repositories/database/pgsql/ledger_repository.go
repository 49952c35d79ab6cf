package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/money_forecast_app/internal/apperrors"
	"github.com/SscSPs/money_forecast_app/internal/core/domain"
	portsrepo "github.com/SscSPs/money_forecast_app/internal/core/ports/repositories"
	"github.com/SscSPs/money_forecast_app/internal/models"
	"github.com/SscSPs/money_forecast_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxLedgerRepository struct {
	BaseRepository
}

// newPgxLedgerRepository creates a new repository for realized ledger rows.
func newPgxLedgerRepository(pool *pgxpool.Pool) *PgxLedgerRepository {
	return &PgxLedgerRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxLedgerRepository implements portsrepo.LedgerRepositoryFacade
var _ portsrepo.LedgerRepositoryFacade = (*PgxLedgerRepository)(nil)

// ListLedgerRows retrieves the ledger rows of an account dated within [from, to].
func (r *PgxLedgerRepository) ListLedgerRows(ctx context.Context, accountID string, from, to time.Time) ([]domain.LedgerRow, error) {
	query := `
		SELECT transaction_id, account_id, source_kind, COALESCE(source_id, ''), title, description, transaction_on, amount, created_at
		FROM ledger_rows
		WHERE account_id = $1 AND transaction_on BETWEEN $2 AND $3
		ORDER BY transaction_on, created_at;
	`
	return queryAll(ctx, r.Pool, "ledger rows", func(row pgx.CollectableRow) (models.LedgerRow, error) {
		var m models.LedgerRow
		err := row.Scan(&m.TransactionID, &m.AccountID, &m.SourceKind, &m.SourceID, &m.Title, &m.Description, &m.TransactionOn, &m.Amount, &m.CreatedAt)
		return m, err
	}, mapping.ToDomainLedgerRow, query, accountID, from, to)
}

// SaveLedgerRow inserts a realized row and applies its amount to the account balance
// within one database transaction.
func (r *PgxLedgerRepository) SaveLedgerRow(ctx context.Context, row domain.LedgerRow) error {
	m := mapping.ToModelLedgerRow(row)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) // Ignored once committed

	insertQuery := `
		INSERT INTO ledger_rows (transaction_id, account_id, source_kind, source_id, title, description, transaction_on, amount, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err = tx.Exec(ctx, insertQuery,
		m.TransactionID,
		m.AccountID,
		m.SourceKind,
		mapping.NullSourceID(m.SourceID),
		m.Title,
		m.Description,
		m.TransactionOn,
		m.Amount,
		m.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation
			return fmt.Errorf("%w: %s %s already materialized on %s", apperrors.ErrDuplicate, m.SourceKind, m.SourceID, m.TransactionOn.Format(time.DateOnly))
		}
		return apperrors.NewAppError(apperrors.ErrInternal, "failed to insert ledger row "+m.TransactionID, err)
	}

	updateQuery := `
		UPDATE accounts
		SET balance = balance + $1, last_updated_at = $2, last_updated_by = 'materializer'
		WHERE account_id = $3;
	`
	tag, err := tx.Exec(ctx, updateQuery, m.Amount, m.CreatedAt, m.AccountID)
	if err != nil {
		return apperrors.NewAppError(apperrors.ErrInternal, "failed to update balance of account "+m.AccountID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: account %s", apperrors.ErrNotFound, m.AccountID)
	}

	return r.Commit(ctx, tx)
}
