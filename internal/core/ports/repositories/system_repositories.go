package repositories

import (
	"context"

	"github.com/somkassa/exchange_office_app/internal/models"
)

// SystemRepository owns the destructive maintenance operations that span
// every table. Reset executes as a single transaction: purge history, drop
// all currencies except the base one, zero the base balance, drop all
// non-admin users and restore the given admin credential.
type SystemRepository interface {
	Reset(ctx context.Context, admin models.User) error
}
