package domain

import "time"

// UserRole is the coarse access level of a credential.
type UserRole string

const (
	RoleAdmin UserRole = "admin"
	RoleUser  UserRole = "user"
)

// User is a credential record. The exchange core never inspects it beyond
// the opaque "is caller authorized" boundary enforced by the auth middleware.
type User struct {
	UserID       string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         UserRole  `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}
