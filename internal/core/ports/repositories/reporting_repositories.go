package repositories

import (
	"context"
	"time"

	"github.com/somkassa/exchange_office_app/internal/models"
)

// ReportingRepository defines the read-only aggregation queries the
// analytics engine runs against the ledger. It is never in the write path.
type ReportingRepository interface {
	// GetDailyTurnover returns per-day purchase/sale sums within [from, to],
	// ascending by day. Days without activity are absent.
	GetDailyTurnover(ctx context.Context, from, to time.Time) ([]models.DailyTurnoverRow, error)

	// GetDistribution returns turnover sums grouped by currency and operation
	// type within [from, to], excluding the base currency. A non-nil
	// currencyCode restricts the result to that code.
	GetDistribution(ctx context.Context, from, to time.Time, currencyCode *string) ([]models.DistributionRow, error)

	// GetCurrencyTotals returns per-currency purchase/sale amount and
	// quantity sums within [from, to], excluding the base currency.
	GetCurrencyTotals(ctx context.Context, from, to time.Time) ([]models.CurrencyTotalsRow, error)
}
