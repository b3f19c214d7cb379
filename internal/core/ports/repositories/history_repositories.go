package repositories

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/somkassa/exchange_office_app/internal/core/domain"
)

// EntryFilter narrows history queries. Nil fields are not applied; the set
// fields compose with logical AND.
type EntryFilter struct {
	CurrencyCode  *string
	OperationType *string
	From          *time.Time // Inclusive
	To            *time.Time // Inclusive
	Limit         int        // Applied after ordering; 0 means no limit
}

// EntryUpdate carries the administratively correctable fields of a history
// row. Nil fields keep their prior value. Values are passed through without
// re-validating the rate*quantity=total invariant.
type EntryUpdate struct {
	CurrencyCode  *string
	OperationType *string
	Rate          *decimal.Decimal
	Quantity      *decimal.Decimal
	Total         *decimal.Decimal
	CreatedAt     *time.Time
}

// HistoryReader defines read operations over the exchange ledger
type HistoryReader interface {
	// FindEntries retrieves history rows matching the filter, ordered by
	// created_at descending with entry id as tie-break.
	FindEntries(ctx context.Context, filter EntryFilter) ([]domain.ExchangeEntry, error)

	// DistinctCurrencyCodes lists the currency codes present in history, ascending.
	DistinctCurrencyCodes(ctx context.Context) ([]string, error)

	// DistinctOperationTypes lists the operation types present in history, ascending.
	DistinctOperationTypes(ctx context.Context) ([]string, error)
}

// HistoryWriter defines write operations over the exchange ledger
type HistoryWriter interface {
	// InsertEntry appends a single history row and returns it with its
	// assigned identifier.
	InsertEntry(ctx context.Context, entry domain.ExchangeEntry) (*domain.ExchangeEntry, error)

	// UpdateEntry applies an administrative correction to a history row.
	UpdateEntry(ctx context.Context, entryID int64, update EntryUpdate) (*domain.ExchangeEntry, error)

	// DeleteEntry removes a history row.
	DeleteEntry(ctx context.Context, entryID int64) error
}

// ExchangeRecorder persists one exchange atomically: the balance deltas for
// both affected currencies and the history append commit or roll back
// together. Deltas are keyed by currency code; a currency missing from the
// balances table is created at zero before the delta is applied. A delta
// that would drive a balance negative fails the whole unit with
// apperrors.ErrInsufficientBalance.
type ExchangeRecorder interface {
	RecordExchange(ctx context.Context, entry domain.ExchangeEntry, deltas map[string]decimal.Decimal) (*domain.ExchangeEntry, error)
}

// HistoryRepositoryFacade combines all ledger-related repository interfaces
type HistoryRepositoryFacade interface {
	HistoryReader
	HistoryWriter
	ExchangeRecorder
}

// HistoryRepositoryWithTx extends HistoryRepositoryFacade with transaction capabilities
type HistoryRepositoryWithTx interface {
	HistoryRepositoryFacade
	TransactionManager
}
