package services

import (
	portsrepo "github.com/SscSPs/money_forecast_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/money_forecast_app/internal/core/ports/services"
	"github.com/SscSPs/money_forecast_app/internal/materialize"
	"github.com/SscSPs/money_forecast_app/internal/platform/config"
	"github.com/SscSPs/money_forecast_app/internal/utils"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, publisher materialize.Publisher) *portssvc.ServiceContainer {
	clock := utils.SystemClock{}

	return &portssvc.ServiceContainer{
		Projection: NewProjectionService(
			repos.AccountRepo,
			repos.RecurringRepo,
			repos.LedgerRepo,
			WithProjectionClock(clock),
			WithMaxProjectionDays(cfg.MaxProjectionDays),
		),
		Schedule: NewScheduleService(
			repos.AccountRepo,
			repos.RecurringRepo,
			publisher,
			WithScheduleClock(clock),
			WithScheduleLookbackDays(cfg.ScheduleLookbackDays),
		),
		Materialize: NewMaterializeService(repos.LedgerRepo, clock),
	}
}
