package pgsql

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/somkassa/exchange_office_app/internal/apperrors"
	"github.com/somkassa/exchange_office_app/internal/core/domain"
	portsrepo "github.com/somkassa/exchange_office_app/internal/core/ports/repositories"
	"github.com/somkassa/exchange_office_app/internal/models"
	"github.com/somkassa/exchange_office_app/internal/utils/mapping"
)

const entryColumns = "entry_id, currency_code, operation_type, rate, quantity, total, created_at"

type PgxHistoryRepository struct {
	BaseRepository
}

// newPgxHistoryRepository creates a new repository for the exchange ledger.
func newPgxHistoryRepository(pool PgxPoolIface) portsrepo.HistoryRepositoryFacade {
	return &PgxHistoryRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.HistoryRepositoryFacade = (*PgxHistoryRepository)(nil)

func scanEntry(row pgx.Row) (models.ExchangeEntry, error) {
	var entry models.ExchangeEntry
	err := row.Scan(
		&entry.EntryID,
		&entry.CurrencyCode,
		&entry.OperationType,
		&entry.Rate,
		&entry.Quantity,
		&entry.Total,
		&entry.CreatedAt,
	)
	return entry, err
}

// InsertEntry appends a single history row and returns it with its assigned id.
func (r *PgxHistoryRepository) InsertEntry(ctx context.Context, entry domain.ExchangeEntry) (*domain.ExchangeEntry, error) {
	modelEntry := mapping.ToModelExchangeEntry(entry)

	query := `
		INSERT INTO history (currency_code, operation_type, rate, quantity, total, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + entryColumns + `;
	`
	inserted, err := scanEntry(r.Pool.QueryRow(ctx, query,
		modelEntry.CurrencyCode,
		modelEntry.OperationType,
		modelEntry.Rate,
		modelEntry.Quantity,
		modelEntry.Total,
		modelEntry.CreatedAt,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to insert history entry: %w", err)
	}

	domainEntry := mapping.ToDomainExchangeEntry(inserted)
	return &domainEntry, nil
}

// FindEntries retrieves history rows matching the filter, newest first with
// the entry id as tie-break.
func (r *PgxHistoryRepository) FindEntries(ctx context.Context, filter portsrepo.EntryFilter) ([]domain.ExchangeEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM history`
	args := []any{}
	conditions := []string{}

	appendCondition := func(clause string, value any) {
		args = append(args, value)
		conditions = append(conditions, fmt.Sprintf(clause, len(args)))
	}

	if filter.CurrencyCode != nil {
		appendCondition("currency_code = $%d", *filter.CurrencyCode)
	}
	if filter.OperationType != nil {
		appendCondition("operation_type = $%d", *filter.OperationType)
	}
	if filter.From != nil {
		appendCondition("created_at >= $%d", *filter.From)
	}
	if filter.To != nil {
		appendCondition("created_at <= $%d", *filter.To)
	}

	for i, cond := range conditions {
		if i == 0 {
			query += " WHERE " + cond
		} else {
			query += " AND " + cond
		}
	}

	query += " ORDER BY created_at DESC, entry_id DESC"
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	query += ";"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query history entries: %w", err)
	}
	defer rows.Close()

	modelEntries, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.ExchangeEntry, error) {
		return scanEntry(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan history entries: %w", err)
	}

	return mapping.ToDomainExchangeEntrySlice(modelEntries), nil
}

// UpdateEntry applies an administrative correction to a history row. Supplied
// values pass through as-is; nothing re-checks rate*quantity against total.
func (r *PgxHistoryRepository) UpdateEntry(ctx context.Context, entryID int64, update portsrepo.EntryUpdate) (*domain.ExchangeEntry, error) {
	query := `
		UPDATE history
		SET currency_code = COALESCE($2, currency_code),
			operation_type = COALESCE($3, operation_type),
			rate = COALESCE($4, rate),
			quantity = COALESCE($5, quantity),
			total = COALESCE($6, total),
			created_at = COALESCE($7, created_at)
		WHERE entry_id = $1
		RETURNING ` + entryColumns + `;
	`
	updated, err := scanEntry(r.Pool.QueryRow(ctx, query,
		entryID,
		update.CurrencyCode,
		update.OperationType,
		update.Rate,
		update.Quantity,
		update.Total,
		update.CreatedAt,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to update history entry %d: %w", entryID, err)
	}

	domainEntry := mapping.ToDomainExchangeEntry(updated)
	return &domainEntry, nil
}

// DeleteEntry removes a history row.
func (r *PgxHistoryRepository) DeleteEntry(ctx context.Context, entryID int64) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM history WHERE entry_id = $1;`, entryID)
	if err != nil {
		return fmt.Errorf("failed to delete history entry %d: %w", entryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DistinctCurrencyCodes lists the currency codes present in history, ascending.
func (r *PgxHistoryRepository) DistinctCurrencyCodes(ctx context.Context) ([]string, error) {
	return r.distinctColumn(ctx, `SELECT DISTINCT currency_code FROM history ORDER BY currency_code;`)
}

// DistinctOperationTypes lists the operation types present in history, ascending.
func (r *PgxHistoryRepository) DistinctOperationTypes(ctx context.Context) ([]string, error) {
	return r.distinctColumn(ctx, `SELECT DISTINCT operation_type FROM history ORDER BY operation_type;`)
}

func (r *PgxHistoryRepository) distinctColumn(ctx context.Context, query string) ([]string, error) {
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query distinct history values: %w", err)
	}
	defer rows.Close()

	values, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (string, error) {
		var v string
		err := row.Scan(&v)
		return v, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan distinct history values: %w", err)
	}

	if values == nil {
		values = []string{}
	}
	return values, nil
}

// RecordExchange applies the balance deltas for both affected currencies and
// appends the history row within a single database transaction. Balance rows
// are locked in deterministic order; a delta that would drive a balance below
// zero aborts the whole unit.
func (r *PgxHistoryRepository) RecordExchange(ctx context.Context, entry domain.ExchangeEntry, deltas map[string]decimal.Decimal) (*domain.ExchangeEntry, error) {
	tx, err := r.Pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	// Rollback is a no-op after a successful commit
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	// Lock order must be stable across concurrent exchanges
	codes := make([]string, 0, len(deltas))
	for code := range deltas {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	now := entry.CreatedAt
	for _, code := range codes {
		_, err = tx.Exec(ctx, `
			INSERT INTO currencies (code, quantity, default_buy_rate, default_sell_rate, updated_at)
			VALUES ($1, 0, 0, 0, $2)
			ON CONFLICT (code) DO NOTHING;
		`, code, now)
		if err != nil {
			return nil, fmt.Errorf("failed to ensure currency %s exists: %w", code, err)
		}

		var quantity decimal.Decimal
		err = tx.QueryRow(ctx, `SELECT quantity FROM currencies WHERE code = $1 FOR UPDATE;`, code).Scan(&quantity)
		if err != nil {
			return nil, fmt.Errorf("failed to lock currency %s: %w", code, err)
		}

		newQuantity := quantity.Add(deltas[code])
		if newQuantity.IsNegative() {
			return nil, fmt.Errorf("%w: not enough %s", apperrors.ErrInsufficientBalance, code)
		}

		_, err = tx.Exec(ctx, `UPDATE currencies SET quantity = $2, updated_at = $3 WHERE code = $1;`, code, newQuantity, now)
		if err != nil {
			return nil, fmt.Errorf("failed to update balance of %s: %w", code, err)
		}
	}

	modelEntry := mapping.ToModelExchangeEntry(entry)
	inserted, err := scanEntry(tx.QueryRow(ctx, `
		INSERT INTO history (currency_code, operation_type, rate, quantity, total, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+entryColumns+`;
	`,
		modelEntry.CurrencyCode,
		modelEntry.OperationType,
		modelEntry.Rate,
		modelEntry.Quantity,
		modelEntry.Total,
		modelEntry.CreatedAt,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to append history entry: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit exchange: %w", err)
	}

	domainEntry := mapping.ToDomainExchangeEntry(inserted)
	return &domainEntry, nil
}
