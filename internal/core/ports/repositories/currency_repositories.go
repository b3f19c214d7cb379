package repositories

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/somkassa/exchange_office_app/internal/core/domain"
)

// CurrencyReader defines read operations for currency balances
type CurrencyReader interface {
	// FindCurrencyByCode retrieves a specific currency by its code.
	FindCurrencyByCode(ctx context.Context, code string) (*domain.Currency, error)

	// ListCurrencies retrieves all currencies, most recently updated first.
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
}

// CurrencyWriter defines write operations for currency balances
type CurrencyWriter interface {
	// SaveCurrency inserts or updates a currency by code.
	SaveCurrency(ctx context.Context, currency domain.Currency) error

	// SetCurrencyQuantity sets an absolute quantity for an existing currency.
	// Returns apperrors.ErrNotFound when the code is unknown.
	SetCurrencyQuantity(ctx context.Context, code string, quantity decimal.Decimal, updatedAt time.Time) (*domain.Currency, error)

	// DeleteCurrency removes a currency record. History rows referencing the
	// code by value remain untouched.
	DeleteCurrency(ctx context.Context, code string) error
}

// CurrencyRepositoryFacade combines all currency-related repository interfaces
type CurrencyRepositoryFacade interface {
	CurrencyReader
	CurrencyWriter
}

// CurrencyRepositoryWithTx extends CurrencyRepositoryFacade with transaction capabilities
type CurrencyRepositoryWithTx interface {
	CurrencyRepositoryFacade
	TransactionManager
}
