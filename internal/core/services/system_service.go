package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/somkassa/exchange_office_app/internal/apperrors"
	"github.com/somkassa/exchange_office_app/internal/core/domain"
	portsrepo "github.com/somkassa/exchange_office_app/internal/core/ports/repositories"
	portssvc "github.com/somkassa/exchange_office_app/internal/core/ports/services"
	"github.com/somkassa/exchange_office_app/internal/dto"
	"github.com/somkassa/exchange_office_app/internal/utils"
	"github.com/somkassa/exchange_office_app/internal/utils/mapping"
)

type systemService struct {
	BaseService
	currencyRepo  portsrepo.CurrencyRepositoryFacade
	userRepo      portsrepo.UserRepositoryFacade
	systemRepo    portsrepo.SystemRepository
	adminUsername string
	adminPassword string
}

// NewSystemService creates the maintenance service. The admin credential is
// what Reset and EnsureDefaults restore.
func NewSystemService(
	currencyRepo portsrepo.CurrencyRepositoryFacade,
	userRepo portsrepo.UserRepositoryFacade,
	systemRepo portsrepo.SystemRepository,
	adminUsername, adminPassword string,
) portssvc.SystemSvcFacade {
	return &systemService{
		currencyRepo:  currencyRepo,
		userRepo:      userRepo,
		systemRepo:    systemRepo,
		adminUsername: adminUsername,
		adminPassword: adminPassword,
	}
}

// Ensure implementation matches interface
var _ portssvc.SystemSvcFacade = (*systemService)(nil)

func (s *systemService) defaultAdmin() (domain.User, error) {
	hash, err := utils.HashPassword(s.adminPassword)
	if err != nil {
		return domain.User{}, fmt.Errorf("failed to hash admin password: %w", err)
	}
	return domain.User{
		UserID:       uuid.NewString(),
		Username:     s.adminUsername,
		PasswordHash: hash,
		Role:         domain.RoleAdmin,
		CreatedAt:    time.Now().UTC(),
	}, nil
}

// Reset wipes the office back to its initial state: empty ledger, base
// currency at zero, only the default admin credential left.
func (s *systemService) Reset(ctx context.Context) error {
	admin, err := s.defaultAdmin()
	if err != nil {
		return err
	}

	if err := s.systemRepo.Reset(ctx, mapping.ToModelUser(admin)); err != nil {
		return err
	}

	s.LogInfo(ctx, "system reset completed")
	return nil
}

// EnsureDefaults seeds the base currency and the default admin credential if
// either is missing. Safe to run on every startup.
func (s *systemService) EnsureDefaults(ctx context.Context) error {
	_, err := s.currencyRepo.FindCurrencyByCode(ctx, domain.BaseCurrencyCode)
	if errors.Is(err, apperrors.ErrNotFound) {
		seed := domain.Currency{
			Code:      domain.BaseCurrencyCode,
			UpdatedAt: time.Now().UTC(),
		}
		if err := s.currencyRepo.SaveCurrency(ctx, seed); err != nil {
			return fmt.Errorf("failed to seed base currency: %w", err)
		}
	} else if err != nil {
		return err
	}

	_, err = s.userRepo.FindUserByUsername(ctx, s.adminUsername)
	if errors.Is(err, apperrors.ErrNotFound) {
		admin, err := s.defaultAdmin()
		if err != nil {
			return err
		}
		if _, err := s.userRepo.SaveUser(ctx, admin); err != nil {
			return fmt.Errorf("failed to seed admin account: %w", err)
		}
	} else if err != nil {
		return err
	}

	return nil
}

// CurrencySummary returns the base balance plus every other held balance.
func (s *systemService) CurrencySummary(ctx context.Context) (*dto.CurrencySummaryResponse, error) {
	currencies, err := s.currencyRepo.ListCurrencies(ctx)
	if err != nil {
		return nil, err
	}

	summary := &dto.CurrencySummaryResponse{
		SomBalance:      decimal.Zero,
		OtherCurrencies: map[string]decimal.Decimal{},
	}
	for _, c := range currencies {
		if c.IsBase() {
			summary.SomBalance = c.Quantity
			continue
		}
		summary.OtherCurrencies[c.Code] = c.Quantity
	}
	return summary, nil
}
