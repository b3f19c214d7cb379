package services

import (
	"context"
	"time"

	"github.com/somkassa/exchange_office_app/internal/core/domain"
	"github.com/somkassa/exchange_office_app/internal/dto"
)

// HistoryReaderSvc defines read operations over the exchange ledger
type HistoryReaderSvc interface {
	// ListEntries retrieves history rows, newest first, optionally narrowed
	// by currency code, operation type and a result limit.
	ListEntries(ctx context.Context, params dto.ListEntriesParams) ([]domain.ExchangeEntry, error)

	// ListEntriesInRange retrieves history rows within the inclusive
	// [from, to] window, plus the optional filters.
	ListEntriesInRange(ctx context.Context, from, to time.Time, params dto.ListEntriesParams) ([]domain.ExchangeEntry, error)

	// ListEntryCodes lists the distinct currency codes present in history.
	ListEntryCodes(ctx context.Context) ([]string, error)

	// ListEntryTypes lists the distinct operation types present in history.
	ListEntryTypes(ctx context.Context) ([]string, error)
}

// HistoryWriterSvc defines the administrative write operations over the ledger
type HistoryWriterSvc interface {
	// CreateEntry inserts a history row directly, without touching balances.
	CreateEntry(ctx context.Context, req dto.CreateEntryRequest) (*domain.ExchangeEntry, error)

	// UpdateEntry corrects a history row; supplied values pass through
	// without re-validation.
	UpdateEntry(ctx context.Context, entryID int64, req dto.UpdateEntryRequest) (*domain.ExchangeEntry, error)

	// DeleteEntry removes a history row.
	DeleteEntry(ctx context.Context, entryID int64) error
}

// HistorySvcFacade combines all ledger-related service interfaces
type HistorySvcFacade interface {
	HistoryReaderSvc
	HistoryWriterSvc
}
