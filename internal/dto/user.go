package dto

import (
	"time"

	"github.com/somkassa/exchange_office_app/internal/core/domain"
)

// CreateUserRequest registers a new credential record.
type CreateUserRequest struct {
	Username string `json:"username" binding:"required,min=1,max=50"`
	Password string `json:"password" binding:"required,min=1,max=100"`
	Role     string `json:"role" binding:"omitempty,oneof=admin user"`
}

// UpdateUserRequest changes a credential record. Omitted fields keep their
// prior value.
type UpdateUserRequest struct {
	Username *string `json:"username" binding:"omitempty,min=1,max=50"`
	Password *string `json:"password" binding:"omitempty,min=1,max=100"`
	Role     *string `json:"role" binding:"omitempty,oneof=admin user"`
}

// UserResponse defines the data returned for a user. The password hash never
// leaves the service layer.
type UserResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// ToUserResponse converts a domain.User to UserResponse DTO
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:        u.UserID,
		Username:  u.Username,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
	}
}

// ToListUserResponse converts a slice of domain users to DTOs
func ToListUserResponse(users []domain.User) []UserResponse {
	res := make([]UserResponse, len(users))
	for i := range users {
		res[i] = ToUserResponse(&users[i])
	}
	return res
}

// LoginRequest carries login credentials.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse returns the signed token and the authenticated user.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// CheckUsernameRequest asks whether a username is taken.
type CheckUsernameRequest struct {
	Username string `json:"username" binding:"required"`
}

// CheckUsernameResponse answers a username availability check.
type CheckUsernameResponse struct {
	Exists bool `json:"exists"`
}
