package services

import (
	"context"
	"time"

	"github.com/somkassa/exchange_office_app/internal/core/domain"
)

// ReportingSvcFacade is the read-only analytics engine over the ledger.
// Its queries may interleave with concurrent writes; a Dashboard call does
// not observe a single consistent snapshot across its three sub-queries.
type ReportingSvcFacade interface {
	// DailyTurnover aggregates purchases, sales and the placeholder profit
	// margin per UTC calendar day, ascending. Inactive days are omitted.
	DailyTurnover(ctx context.Context, from, to time.Time) ([]domain.DailyTurnover, error)

	// Distribution sums turnover per currency, split by operation type,
	// excluding the base currency. A non-nil currencyCode restricts the
	// result to that code.
	Distribution(ctx context.Context, from, to time.Time, currencyCode *string) (*domain.Distribution, error)

	// Profitability ranks foreign currencies by realized margin, descending.
	Profitability(ctx context.Context, from, to time.Time) ([]domain.CurrencyPerformance, error)

	// Dashboard composes all three reports for one window. A failed
	// sub-computation degrades to its empty shape instead of failing the call.
	Dashboard(ctx context.Context, from, to time.Time) (*domain.DashboardReport, error)
}
