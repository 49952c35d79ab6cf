package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/money_forecast_app/internal/apperrors"
	"github.com/SscSPs/money_forecast_app/internal/core/domain"
	portsrepo "github.com/SscSPs/money_forecast_app/internal/core/ports/repositories"
	"github.com/SscSPs/money_forecast_app/internal/middleware"
	"github.com/SscSPs/money_forecast_app/internal/utils"
)

// BaseService provides common functionality for all services
type BaseService struct {
	Clock utils.Clock
}

// Now returns the service clock's current instant.
func (s *BaseService) Now() time.Time {
	if s.Clock == nil {
		return time.Now()
	}
	return s.Clock.Now()
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// AuthorizeAccount loads an account and checks that userID owns it.
func (s *BaseService) AuthorizeAccount(ctx context.Context, accounts portsrepo.AccountReader, accountID, userID string) (*domain.Account, error) {
	account, err := accounts.FindAccountByID(ctx, accountID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load account", slog.String("account_id", accountID))
		return nil, fmt.Errorf("loading account %s: %w", accountID, err)
	}
	if account.UserID != userID {
		s.LogInfo(ctx, "User does not own account",
			slog.String("account_id", accountID),
			slog.String("user_id", userID))
		return nil, fmt.Errorf("%w: account %s does not belong to user", apperrors.ErrForbidden, accountID)
	}
	return account, nil
}
