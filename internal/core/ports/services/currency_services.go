package services

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/somkassa/exchange_office_app/internal/core/domain"
	"github.com/somkassa/exchange_office_app/internal/dto"
)

// CurrencyReaderSvc defines read operations for currency balances
type CurrencyReaderSvc interface {
	// GetCurrencyByCode retrieves a specific currency by its code.
	GetCurrencyByCode(ctx context.Context, code string) (*domain.Currency, error)

	// ListCurrencies retrieves all currencies, most recently updated first.
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
}

// CurrencyWriterSvc defines write operations for currency balances
type CurrencyWriterSvc interface {
	// UpsertCurrency creates or updates a currency by code; omitted request
	// fields keep their prior value.
	UpsertCurrency(ctx context.Context, req dto.UpsertCurrencyRequest) (*domain.Currency, error)

	// SetCurrencyQuantity sets an absolute, non-negative quantity.
	SetCurrencyQuantity(ctx context.Context, code string, quantity decimal.Decimal) (*domain.Currency, error)

	// DeleteCurrency removes a currency record. The base currency cannot be
	// deleted.
	DeleteCurrency(ctx context.Context, code string) error
}

// CurrencySvcFacade combines all currency-related service interfaces
type CurrencySvcFacade interface {
	CurrencyReaderSvc
	CurrencyWriterSvc
}
