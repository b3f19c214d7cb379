package services

import (
	portsrepo "github.com/somkassa/exchange_office_app/internal/core/ports/repositories"
	portssvc "github.com/somkassa/exchange_office_app/internal/core/ports/services"
	"github.com/somkassa/exchange_office_app/pkg/config"
)

// NewServiceContainer wires all application services over the repository
// provider.
func NewServiceContainer(cfg *config.AppConfig, repos *portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Currency:  NewCurrencyService(repos.CurrencyRepo),
		Exchange:  NewExchangeService(repos.CurrencyRepo, repos.HistoryRepo),
		History:   NewHistoryService(repos.HistoryRepo),
		Reporting: NewReportingService(repos.ReportingRepo),
		System:    NewSystemService(repos.CurrencyRepo, repos.UserRepo, repos.SystemRepo, cfg.AdminUsername, cfg.AdminPassword),
		User:      NewUserService(repos.UserRepo, cfg.AdminUsername),
	}
}
