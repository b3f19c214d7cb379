package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/somkassa/exchange_office_app/internal/apperrors"
	"github.com/somkassa/exchange_office_app/internal/core/domain"
	portsrepo "github.com/somkassa/exchange_office_app/internal/core/ports/repositories"
	portssvc "github.com/somkassa/exchange_office_app/internal/core/ports/services"
	"github.com/somkassa/exchange_office_app/internal/dto"
	"github.com/somkassa/exchange_office_app/internal/utils"
)

type userService struct {
	BaseService
	userRepo      portsrepo.UserRepositoryFacade
	adminUsername string
}

// NewUserService creates the credential service. adminUsername names the
// protected default administrative account.
func NewUserService(userRepo portsrepo.UserRepositoryFacade, adminUsername string) portssvc.UserSvcFacade {
	return &userService{
		userRepo:      userRepo,
		adminUsername: adminUsername,
	}
}

// Ensure implementation matches interface
var _ portssvc.UserSvcFacade = (*userService)(nil)

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", apperrors.ErrValidation)
	}
	return s.userRepo.FindUserByID(ctx, userID)
}

func (s *userService) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	if username == "" {
		return nil, fmt.Errorf("%w: username is required", apperrors.ErrValidation)
	}
	return s.userRepo.FindUserByUsername(ctx, username)
}

func (s *userService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.userRepo.ListUsers(ctx)
}

func (s *userService) UsernameExists(ctx context.Context, username string) (bool, error) {
	_, err := s.userRepo.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (s *userService) CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error) {
	if req.Username == "" || req.Password == "" {
		return nil, fmt.Errorf("%w: username and password are required", apperrors.ErrValidation)
	}

	role := domain.RoleUser
	if req.Role != "" {
		role = domain.UserRole(req.Role)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	created, err := s.userRepo.SaveUser(ctx, domain.User{
		UserID:       uuid.NewString(),
		Username:     req.Username,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "user created", "user_id", created.UserID, "username", created.Username)
	return created, nil
}

func (s *userService) UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest) (*domain.User, error) {
	existing, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Username != nil {
		if *req.Username == "" {
			return nil, fmt.Errorf("%w: username must not be empty", apperrors.ErrValidation)
		}
		existing.Username = *req.Username
	}
	if req.Password != nil {
		if *req.Password == "" {
			return nil, fmt.Errorf("%w: password must not be empty", apperrors.ErrValidation)
		}
		hash, err := utils.HashPassword(*req.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		existing.PasswordHash = hash
	}
	if req.Role != nil {
		existing.Role = domain.UserRole(*req.Role)
	}

	updated, err := s.userRepo.UpdateUser(ctx, *existing)
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "user updated", "user_id", userID)
	return updated, nil
}

// DeleteUser removes a credential record. The default administrative account
// stays, otherwise a reset could lock everyone out.
func (s *userService) DeleteUser(ctx context.Context, userID string) error {
	existing, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return err
	}
	if existing.Username == s.adminUsername {
		return fmt.Errorf("%w: the default admin account cannot be deleted", apperrors.ErrForbidden)
	}

	if err := s.userRepo.DeleteUser(ctx, userID); err != nil {
		return err
	}

	s.LogInfo(ctx, "user deleted", "user_id", userID)
	return nil
}

// Authenticate verifies the password against the stored bcrypt hash. An
// unknown username and a wrong password are indistinguishable to the caller.
func (s *userService) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: invalid credentials", apperrors.ErrValidation)
		}
		return nil, err
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, fmt.Errorf("%w: invalid credentials", apperrors.ErrValidation)
	}

	return user, nil
}
