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

type exchangeService struct {
	BaseService
	currencyRepo portsrepo.CurrencyRepositoryFacade
	historyRepo  portsrepo.HistoryRepositoryFacade
}

// NewExchangeService creates the exchange engine.
func NewExchangeService(currencyRepo portsrepo.CurrencyRepositoryFacade, historyRepo portsrepo.HistoryRepositoryFacade) portssvc.ExchangeSvcFacade {
	return &exchangeService{
		currencyRepo: currencyRepo,
		historyRepo:  historyRepo,
	}
}

// Ensure implementation matches interface
var _ portssvc.ExchangeSvcFacade = (*exchangeService)(nil)

// PerformExchange validates the request, applies the balance movements for
// both sides of the trade and appends the ledger row, all as one atomic
// unit. A failure at any point leaves balances and history untouched.
func (s *exchangeService) PerformExchange(ctx context.Context, req dto.ExchangeRequest) (*domain.ExchangeResult, error) {
	entry, err := s.validate(req)
	if err != nil {
		return nil, err
	}

	deltas, err := s.balanceDeltas(ctx, *entry)
	if err != nil {
		return nil, err
	}

	recorded, err := s.historyRepo.RecordExchange(ctx, *entry, deltas)
	if err != nil {
		return nil, err
	}

	currency, err := s.currencyRepo.FindCurrencyByCode(ctx, recorded.CurrencyCode)
	if err != nil {
		return nil, fmt.Errorf("failed to reload currency after exchange: %w", err)
	}
	base, err := s.currencyRepo.FindCurrencyByCode(ctx, domain.BaseCurrencyCode)
	if err != nil {
		return nil, fmt.Errorf("failed to reload base currency after exchange: %w", err)
	}

	s.LogInfo(ctx, "exchange recorded",
		"entry_id", recorded.EntryID,
		"currency_code", recorded.CurrencyCode,
		"operation_type", string(recorded.OperationType),
		"total", recorded.Total.String(),
	)

	return &domain.ExchangeResult{
		Currency: *currency,
		Base:     *base,
		Entry:    *recorded,
	}, nil
}

// validate checks shape, positivity, operation type and the arithmetic
// consistency of the request, returning the ledger row to append.
func (s *exchangeService) validate(req dto.ExchangeRequest) (*domain.ExchangeEntry, error) {
	if req.CurrencyCode == "" || req.Rate == nil || req.Quantity == nil || req.Total == nil {
		return nil, fmt.Errorf("%w: currency_code, operation_type, rate, quantity and total are required", apperrors.ErrValidation)
	}
	if req.CurrencyCode == domain.BaseCurrencyCode {
		return nil, fmt.Errorf("%w: cannot exchange the base currency against itself", apperrors.ErrValidation)
	}

	opType := domain.OperationType(req.OperationType)
	if !opType.IsValid() {
		return nil, fmt.Errorf("%w: %q", apperrors.ErrInvalidOperationType, req.OperationType)
	}

	rate, quantity, total := *req.Rate, *req.Quantity, *req.Total
	if !rate.IsPositive() || !quantity.IsPositive() || !total.IsPositive() {
		return nil, fmt.Errorf("%w: rate, quantity and total must be positive", apperrors.ErrValidation)
	}

	// The client computes total; accept it only when it matches the rate and
	// quantity to the centi-SOM.
	expected := rate.Mul(quantity).Round(2)
	if !total.Equal(expected) {
		return nil, fmt.Errorf("%w: expected %s, got %s", apperrors.ErrAmountMismatch, expected.String(), total.String())
	}

	return &domain.ExchangeEntry{
		CurrencyCode:  req.CurrencyCode,
		OperationType: opType,
		Rate:          rate,
		Quantity:      quantity,
		Total:         total,
		CreatedAt:     time.Now().UTC(),
	}, nil
}

// balanceDeltas resolves which balance moves where. A Purchase spends base
// currency to acquire the foreign one; a Sale is the reverse. The
// insufficiency pre-check here gives clean typed errors before the
// transactional re-check under row locks.
func (s *exchangeService) balanceDeltas(ctx context.Context, entry domain.ExchangeEntry) (map[string]decimal.Decimal, error) {
	base, err := s.currencyRepo.FindCurrencyByCode(ctx, domain.BaseCurrencyCode)
	if err != nil {
		return nil, fmt.Errorf("failed to load base currency: %w", err)
	}

	foreignQuantity := decimal.Zero
	foreign, err := s.currencyRepo.FindCurrencyByCode(ctx, entry.CurrencyCode)
	switch {
	case err == nil:
		foreignQuantity = foreign.Quantity
	case errors.Is(err, apperrors.ErrNotFound):
		// First trade in this currency; the recorder creates it at zero.
	default:
		return nil, fmt.Errorf("failed to load currency %s: %w", entry.CurrencyCode, err)
	}

	switch entry.OperationType {
	case domain.Purchase:
		if base.Quantity.LessThan(entry.Total) {
			return nil, fmt.Errorf("%w: not enough %s", apperrors.ErrInsufficientBalance, domain.BaseCurrencyCode)
		}
		return map[string]decimal.Decimal{
			domain.BaseCurrencyCode: entry.Total.Neg(),
			entry.CurrencyCode:      entry.Quantity,
		}, nil
	case domain.Sale:
		if foreignQuantity.LessThan(entry.Quantity) {
			return nil, fmt.Errorf("%w: not enough %s", apperrors.ErrInsufficientBalance, entry.CurrencyCode)
		}
		return map[string]decimal.Decimal{
			domain.BaseCurrencyCode: entry.Total,
			entry.CurrencyCode:      entry.Quantity.Neg(),
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q", apperrors.ErrInvalidOperationType, string(entry.OperationType))
	}
}
