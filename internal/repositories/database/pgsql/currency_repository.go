package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/somkassa/exchange_office_app/internal/apperrors"
	"github.com/somkassa/exchange_office_app/internal/core/domain"
	portsrepo "github.com/somkassa/exchange_office_app/internal/core/ports/repositories"
	"github.com/somkassa/exchange_office_app/internal/models"
	"github.com/somkassa/exchange_office_app/internal/utils/mapping"
)

type PgxCurrencyRepository struct {
	BaseRepository
}

// newPgxCurrencyRepository creates a new repository for currency balances.
func newPgxCurrencyRepository(pool PgxPoolIface) portsrepo.CurrencyRepositoryFacade {
	return &PgxCurrencyRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.CurrencyRepositoryFacade = (*PgxCurrencyRepository)(nil)

// SaveCurrency inserts or updates a currency by code.
func (r *PgxCurrencyRepository) SaveCurrency(ctx context.Context, currency domain.Currency) error {
	modelCurr := mapping.ToModelCurrency(currency)

	query := `
		INSERT INTO currencies (code, quantity, default_buy_rate, default_sell_rate, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (code) DO UPDATE SET
			quantity = EXCLUDED.quantity,
			default_buy_rate = EXCLUDED.default_buy_rate,
			default_sell_rate = EXCLUDED.default_sell_rate,
			updated_at = EXCLUDED.updated_at;
	`

	_, err := r.Pool.Exec(ctx, query,
		modelCurr.Code,
		modelCurr.Quantity,
		modelCurr.DefaultBuyRate,
		modelCurr.DefaultSellRate,
		modelCurr.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to save currency %s: %w", modelCurr.Code, err)
	}
	return nil
}

// FindCurrencyByCode retrieves a currency by its code.
func (r *PgxCurrencyRepository) FindCurrencyByCode(ctx context.Context, code string) (*domain.Currency, error) {
	query := `
		SELECT code, quantity, default_buy_rate, default_sell_rate, updated_at
		FROM currencies
		WHERE code = $1;
	`
	var modelCurr models.Currency
	err := r.Pool.QueryRow(ctx, query, code).Scan(
		&modelCurr.Code,
		&modelCurr.Quantity,
		&modelCurr.DefaultBuyRate,
		&modelCurr.DefaultSellRate,
		&modelCurr.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find currency by code %s: %w", code, err)
	}

	domainCurr := mapping.ToDomainCurrency(modelCurr)
	return &domainCurr, nil
}

// ListCurrencies retrieves all currencies, most recently updated first.
func (r *PgxCurrencyRepository) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	query := `
		SELECT code, quantity, default_buy_rate, default_sell_rate, updated_at
		FROM currencies
		ORDER BY updated_at DESC, code;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query currencies: %w", err)
	}
	defer rows.Close()

	modelCurrencies, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Currency, error) {
		var currency models.Currency
		err := row.Scan(
			&currency.Code,
			&currency.Quantity,
			&currency.DefaultBuyRate,
			&currency.DefaultSellRate,
			&currency.UpdatedAt,
		)
		return currency, err
	})

	if err != nil {
		return nil, fmt.Errorf("failed to scan currencies: %w", err)
	}

	return mapping.ToDomainCurrencySlice(modelCurrencies), nil
}

// SetCurrencyQuantity sets an absolute quantity for an existing currency.
func (r *PgxCurrencyRepository) SetCurrencyQuantity(ctx context.Context, code string, quantity decimal.Decimal, updatedAt time.Time) (*domain.Currency, error) {
	query := `
		UPDATE currencies
		SET quantity = $2, updated_at = $3
		WHERE code = $1
		RETURNING code, quantity, default_buy_rate, default_sell_rate, updated_at;
	`
	var modelCurr models.Currency
	err := r.Pool.QueryRow(ctx, query, code, quantity, updatedAt).Scan(
		&modelCurr.Code,
		&modelCurr.Quantity,
		&modelCurr.DefaultBuyRate,
		&modelCurr.DefaultSellRate,
		&modelCurr.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to set quantity for currency %s: %w", code, err)
	}

	domainCurr := mapping.ToDomainCurrency(modelCurr)
	return &domainCurr, nil
}

// DeleteCurrency removes a currency record. History rows referencing the code
// stay in place.
func (r *PgxCurrencyRepository) DeleteCurrency(ctx context.Context, code string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM currencies WHERE code = $1;`, code)
	if err != nil {
		return fmt.Errorf("failed to delete currency %s: %w", code, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
