package repositories

import (
	"context"

	"github.com/somkassa/exchange_office_app/internal/core/domain"
)

// UserReader defines read operations for credential records
type UserReader interface {
	// FindUserByID retrieves a user by their ID.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByUsername retrieves a user by their unique username.
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)

	// ListUsers retrieves all users, newest first.
	ListUsers(ctx context.Context) ([]domain.User, error)
}

// UserWriter defines write operations for credential records
type UserWriter interface {
	// SaveUser persists a new user. Returns apperrors.ErrDuplicate when the
	// username is taken.
	SaveUser(ctx context.Context, user domain.User) (*domain.User, error)

	// UpdateUser persists changes to an existing user.
	UpdateUser(ctx context.Context, user domain.User) (*domain.User, error)

	// DeleteUser removes a user record.
	DeleteUser(ctx context.Context, userID string) error
}

// UserRepositoryFacade combines all user-related repository interfaces
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}
