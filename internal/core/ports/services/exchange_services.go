package services

import (
	"context"

	"github.com/somkassa/exchange_office_app/internal/core/domain"
	"github.com/somkassa/exchange_office_app/internal/dto"
)

// ExchangeSvcFacade is the exchange engine boundary: it validates a raw
// Purchase/Sale request and executes it as one atomic unit against both
// currency balances and the history ledger.
type ExchangeSvcFacade interface {
	// PerformExchange runs the full validate-mutate-append sequence. On any
	// failure no balance mutation or ledger append survives.
	PerformExchange(ctx context.Context, req dto.ExchangeRequest) (*domain.ExchangeResult, error)
}
