package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/somkassa/exchange_office_app/internal/core/domain"
	portsrepo "github.com/somkassa/exchange_office_app/internal/core/ports/repositories"
	"github.com/somkassa/exchange_office_app/internal/models"
)

type PgxReportingRepository struct {
	BaseRepository
}

// newPgxReportingRepository creates a new repository for aggregate queries
// over the exchange ledger.
func newPgxReportingRepository(pool PgxPoolIface) portsrepo.ReportingRepository {
	return &PgxReportingRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.ReportingRepository = (*PgxReportingRepository)(nil)

// GetDailyTurnover sums purchase and sale totals per UTC calendar day within
// the inclusive range.
func (r *PgxReportingRepository) GetDailyTurnover(ctx context.Context, from, to time.Time) ([]models.DailyTurnoverRow, error) {
	query := `
		SELECT (created_at AT TIME ZONE 'UTC')::date AS day,
			COALESCE(SUM(CASE WHEN operation_type = 'Purchase' THEN total ELSE 0 END), 0) AS purchases,
			COALESCE(SUM(CASE WHEN operation_type = 'Sale' THEN total ELSE 0 END), 0) AS sales
		FROM history
		WHERE created_at >= $1 AND created_at <= $2
		GROUP BY day
		ORDER BY day;
	`
	rows, err := r.Pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query daily turnover: %w", err)
	}
	defer rows.Close()

	result, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.DailyTurnoverRow, error) {
		var tr models.DailyTurnoverRow
		err := row.Scan(&tr.Day, &tr.Purchases, &tr.Sales)
		return tr, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan daily turnover: %w", err)
	}
	return result, nil
}

// GetDistribution sums totals per currency and operation type. An optional
// currency code narrows the result to a single currency.
func (r *PgxReportingRepository) GetDistribution(ctx context.Context, from, to time.Time, currencyCode *string) ([]models.DistributionRow, error) {
	query := `
		SELECT currency_code, operation_type, COALESCE(SUM(total), 0) AS total
		FROM history
		WHERE created_at >= $1 AND created_at <= $2 AND currency_code <> $3
	`
	args := []any{from, to, domain.BaseCurrencyCode}
	if currencyCode != nil {
		args = append(args, *currencyCode)
		query += fmt.Sprintf("	AND currency_code = $%d", len(args))
	}
	query += `
		GROUP BY currency_code, operation_type
		ORDER BY currency_code, operation_type;
	`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query distribution: %w", err)
	}
	defer rows.Close()

	result, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.DistributionRow, error) {
		var dr models.DistributionRow
		err := row.Scan(&dr.CurrencyCode, &dr.OperationType, &dr.Total)
		return dr, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan distribution: %w", err)
	}
	return result, nil
}

// GetCurrencyTotals sums totals and quantities per foreign currency and
// operation type within the range. The base currency never appears in the
// ledger's currency_code column but is excluded here anyway.
func (r *PgxReportingRepository) GetCurrencyTotals(ctx context.Context, from, to time.Time) ([]models.CurrencyTotalsRow, error) {
	query := `
		SELECT currency_code,
			COALESCE(SUM(CASE WHEN operation_type = 'Purchase' THEN total ELSE 0 END), 0) AS purchase_total,
			COALESCE(SUM(CASE WHEN operation_type = 'Purchase' THEN quantity ELSE 0 END), 0) AS purchase_qty,
			COALESCE(SUM(CASE WHEN operation_type = 'Sale' THEN total ELSE 0 END), 0) AS sale_total,
			COALESCE(SUM(CASE WHEN operation_type = 'Sale' THEN quantity ELSE 0 END), 0) AS sale_qty
		FROM history
		WHERE created_at >= $1 AND created_at <= $2 AND currency_code <> $3
		GROUP BY currency_code
		ORDER BY currency_code;
	`
	rows, err := r.Pool.Query(ctx, query, from, to, domain.BaseCurrencyCode)
	if err != nil {
		return nil, fmt.Errorf("failed to query currency totals: %w", err)
	}
	defer rows.Close()

	result, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.CurrencyTotalsRow, error) {
		var ct models.CurrencyTotalsRow
		err := row.Scan(&ct.CurrencyCode, &ct.PurchaseTotal, &ct.PurchaseQty, &ct.SaleTotal, &ct.SaleQty)
		return ct, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan currency totals: %w", err)
	}
	return result, nil
}
