package models

import "time"

// User mirrors the users table.
type User struct {
	UserID       string
	Username     string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
}
