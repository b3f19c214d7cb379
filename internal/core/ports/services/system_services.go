package services

import (
	"context"

	"github.com/somkassa/exchange_office_app/internal/dto"
)

// SystemSvcFacade owns cross-cutting maintenance operations.
type SystemSvcFacade interface {
	// Reset destroys all history, all currencies except the base one (which
	// is zeroed), and all non-admin users, then restores the default
	// administrative credential. Idempotent; callers gate access.
	Reset(ctx context.Context) error

	// EnsureDefaults seeds the base currency and the default administrative
	// credential if they are missing. Run at startup.
	EnsureDefaults(ctx context.Context) error

	// CurrencySummary returns the base balance and a map of all other
	// balances.
	CurrencySummary(ctx context.Context) (*dto.CurrencySummaryResponse, error)
}
