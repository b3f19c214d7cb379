package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/somkassa/exchange_office_app/internal/apperrors"
	"github.com/somkassa/exchange_office_app/internal/core/domain"
	portsrepo "github.com/somkassa/exchange_office_app/internal/core/ports/repositories"
	portssvc "github.com/somkassa/exchange_office_app/internal/core/ports/services"
	"github.com/somkassa/exchange_office_app/internal/dto"
)

type currencyService struct {
	BaseService
	currencyRepo portsrepo.CurrencyRepositoryFacade
}

// NewCurrencyService creates the balance-store service.
func NewCurrencyService(currencyRepo portsrepo.CurrencyRepositoryFacade) portssvc.CurrencySvcFacade {
	return &currencyService{currencyRepo: currencyRepo}
}

// Ensure implementation matches interface
var _ portssvc.CurrencySvcFacade = (*currencyService)(nil)

func (s *currencyService) GetCurrencyByCode(ctx context.Context, code string) (*domain.Currency, error) {
	if code == "" {
		return nil, fmt.Errorf("%w: currency code is required", apperrors.ErrValidation)
	}
	return s.currencyRepo.FindCurrencyByCode(ctx, code)
}

func (s *currencyService) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	return s.currencyRepo.ListCurrencies(ctx)
}

// UpsertCurrency creates a currency or overwrites the supplied fields of an
// existing one. Omitted fields keep their prior value; on creation they
// default to zero.
func (s *currencyService) UpsertCurrency(ctx context.Context, req dto.UpsertCurrencyRequest) (*domain.Currency, error) {
	if req.Code == "" {
		return nil, fmt.Errorf("%w: currency code is required", apperrors.ErrValidation)
	}
	if req.Quantity != nil && req.Quantity.IsNegative() {
		return nil, fmt.Errorf("%w: quantity must not be negative", apperrors.ErrValidation)
	}
	if req.DefaultBuyRate != nil && req.DefaultBuyRate.IsNegative() {
		return nil, fmt.Errorf("%w: default buy rate must not be negative", apperrors.ErrValidation)
	}
	if req.DefaultSellRate != nil && req.DefaultSellRate.IsNegative() {
		return nil, fmt.Errorf("%w: default sell rate must not be negative", apperrors.ErrValidation)
	}

	currency := domain.Currency{Code: req.Code}
	existing, err := s.currencyRepo.FindCurrencyByCode(ctx, req.Code)
	switch {
	case err == nil:
		currency = *existing
	case errors.Is(err, apperrors.ErrNotFound):
		// New currency, zero-valued fields
	default:
		return nil, err
	}

	if req.Quantity != nil {
		currency.Quantity = *req.Quantity
	}
	if req.DefaultBuyRate != nil {
		currency.DefaultBuyRate = *req.DefaultBuyRate
	}
	if req.DefaultSellRate != nil {
		currency.DefaultSellRate = *req.DefaultSellRate
	}
	currency.UpdatedAt = time.Now().UTC()

	if err := s.currencyRepo.SaveCurrency(ctx, currency); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "currency upserted", "code", currency.Code)
	return &currency, nil
}

// SetCurrencyQuantity overwrites the held amount of an existing currency.
func (s *currencyService) SetCurrencyQuantity(ctx context.Context, code string, quantity decimal.Decimal) (*domain.Currency, error) {
	if code == "" {
		return nil, fmt.Errorf("%w: currency code is required", apperrors.ErrValidation)
	}
	if quantity.IsNegative() {
		return nil, fmt.Errorf("%w: quantity must not be negative", apperrors.ErrValidation)
	}

	updated, err := s.currencyRepo.SetCurrencyQuantity(ctx, code, quantity, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "currency quantity set", "code", code, "quantity", quantity.String())
	return updated, nil
}

// DeleteCurrency removes a currency record. The base currency is protected.
func (s *currencyService) DeleteCurrency(ctx context.Context, code string) error {
	if code == "" {
		return fmt.Errorf("%w: currency code is required", apperrors.ErrValidation)
	}
	if code == domain.BaseCurrencyCode {
		return fmt.Errorf("%w: the base currency cannot be deleted", apperrors.ErrForbidden)
	}

	if err := s.currencyRepo.DeleteCurrency(ctx, code); err != nil {
		return err
	}

	s.LogInfo(ctx, "currency deleted", "code", code)
	return nil
}
