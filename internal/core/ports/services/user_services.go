package services

import (
	"context"

	"github.com/somkassa/exchange_office_app/internal/core/domain"
	"github.com/somkassa/exchange_office_app/internal/dto"
)

// UserReaderSvc defines read operations for credential records
type UserReaderSvc interface {
	// GetUserByID retrieves a user by their ID.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// GetUserByUsername retrieves a user by their unique username.
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)

	// ListUsers retrieves all users, newest first.
	ListUsers(ctx context.Context) ([]domain.User, error)

	// UsernameExists reports whether the username is taken.
	UsernameExists(ctx context.Context, username string) (bool, error)
}

// UserWriterSvc defines write operations for credential records
type UserWriterSvc interface {
	// CreateUser registers a new user with a hashed password.
	CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error)

	// UpdateUser changes username, password or role of an existing user.
	UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest) (*domain.User, error)

	// DeleteUser removes a user. The default administrative credential
	// cannot be deleted.
	DeleteUser(ctx context.Context, userID string) error
}

// AuthenticatorSvc verifies login credentials.
type AuthenticatorSvc interface {
	// Authenticate checks username/password and returns the user on success.
	Authenticate(ctx context.Context, username, password string) (*domain.User, error)
}

// UserSvcFacade combines all user-related service interfaces
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
	AuthenticatorSvc
}
