package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/somkassa/exchange_office_app/internal/apperrors"
	"github.com/somkassa/exchange_office_app/internal/core/domain"
	portsrepo "github.com/somkassa/exchange_office_app/internal/core/ports/repositories"
	"github.com/somkassa/exchange_office_app/internal/models"
	"github.com/somkassa/exchange_office_app/internal/utils/mapping"
)

const userColumns = "user_id, username, password_hash, role, created_at"

type PgxUserRepository struct {
	BaseRepository
}

// newPgxUserRepository creates a new repository for operator accounts.
func newPgxUserRepository(pool PgxPoolIface) portsrepo.UserRepositoryFacade {
	return &PgxUserRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

func scanUser(row pgx.Row) (models.User, error) {
	var user models.User
	err := row.Scan(
		&user.UserID,
		&user.Username,
		&user.PasswordHash,
		&user.Role,
		&user.CreatedAt,
	)
	return user, err
}

// SaveUser inserts a new account. A username collision maps to ErrDuplicate.
func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) (*domain.User, error) {
	modelUser := mapping.ToModelUser(user)

	query := `
		INSERT INTO users (user_id, username, password_hash, role, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + userColumns + `;
	`
	inserted, err := scanUser(r.Pool.QueryRow(ctx, query,
		modelUser.UserID,
		modelUser.Username,
		modelUser.PasswordHash,
		modelUser.Role,
		modelUser.CreatedAt,
	))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, fmt.Errorf("%w: username %s already taken", apperrors.ErrDuplicate, user.Username)
		}
		return nil, fmt.Errorf("failed to insert user: %w", err)
	}

	domainUser := mapping.ToDomainUser(inserted)
	return &domainUser, nil
}

func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE user_id = $1;`
	found, err := scanUser(r.Pool.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user %s: %w", userID, err)
	}

	domainUser := mapping.ToDomainUser(found)
	return &domainUser, nil
}

func (r *PgxUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1;`
	found, err := scanUser(r.Pool.QueryRow(ctx, query, username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by username: %w", err)
	}

	domainUser := mapping.ToDomainUser(found)
	return &domainUser, nil
}

func (r *PgxUserRepository) ListUsers(ctx context.Context) ([]domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY created_at DESC;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	modelUsers, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.User, error) {
		return scanUser(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan users: %w", err)
	}

	return mapping.ToDomainUserSlice(modelUsers), nil
}

// UpdateUser rewrites the mutable fields of an account.
func (r *PgxUserRepository) UpdateUser(ctx context.Context, user domain.User) (*domain.User, error) {
	modelUser := mapping.ToModelUser(user)

	query := `
		UPDATE users
		SET username = $2, password_hash = $3, role = $4
		WHERE user_id = $1
		RETURNING ` + userColumns + `;
	`
	updated, err := scanUser(r.Pool.QueryRow(ctx, query,
		modelUser.UserID,
		modelUser.Username,
		modelUser.PasswordHash,
		modelUser.Role,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, fmt.Errorf("%w: username %s already taken", apperrors.ErrDuplicate, user.Username)
		}
		return nil, fmt.Errorf("failed to update user %s: %w", user.UserID, err)
	}

	domainUser := mapping.ToDomainUser(updated)
	return &domainUser, nil
}

func (r *PgxUserRepository) DeleteUser(ctx context.Context, userID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM users WHERE user_id = $1;`, userID)
	if err != nil {
		return fmt.Errorf("failed to delete user %s: %w", userID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
