package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/somkassa/exchange_office_app/internal/core/domain"
	portsrepo "github.com/somkassa/exchange_office_app/internal/core/ports/repositories"
	"github.com/somkassa/exchange_office_app/internal/models"
)

type PgxSystemRepository struct {
	BaseRepository
}

// newPgxSystemRepository creates a new repository for whole-database
// maintenance operations.
func newPgxSystemRepository(pool PgxPoolIface) portsrepo.SystemRepository {
	return &PgxSystemRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.SystemRepository = (*PgxSystemRepository)(nil)

// Reset wipes history, foreign currencies and non-admin accounts in a single
// transaction, then restores the base currency at zero and the given admin
// account.
func (r *PgxSystemRepository) Reset(ctx context.Context, admin models.User) error {
	tx, err := r.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin reset transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	if _, err := tx.Exec(ctx, `DELETE FROM history;`); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM currencies WHERE code <> $1;`, domain.BaseCurrencyCode); err != nil {
		return fmt.Errorf("failed to clear currencies: %w", err)
	}

	now := time.Now().UTC()
	_, err = tx.Exec(ctx, `
		INSERT INTO currencies (code, quantity, default_buy_rate, default_sell_rate, updated_at)
		VALUES ($1, 0, 0, 0, $2)
		ON CONFLICT (code) DO UPDATE
		SET quantity = 0, default_buy_rate = 0, default_sell_rate = 0, updated_at = $2;
	`, domain.BaseCurrencyCode, now)
	if err != nil {
		return fmt.Errorf("failed to restore base currency: %w", err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM users WHERE username <> $1;`, admin.Username); err != nil {
		return fmt.Errorf("failed to clear users: %w", err)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO users (user_id, username, password_hash, role, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (username) DO UPDATE
		SET password_hash = $3, role = $4;
	`, admin.UserID, admin.Username, admin.PasswordHash, admin.Role, admin.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to restore admin account: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit reset: %w", err)
	}
	return nil
}
