package services

import (
	"context"
	"fmt"
	"time"

	"github.com/somkassa/exchange_office_app/internal/apperrors"
	"github.com/somkassa/exchange_office_app/internal/core/domain"
	portsrepo "github.com/somkassa/exchange_office_app/internal/core/ports/repositories"
	portssvc "github.com/somkassa/exchange_office_app/internal/core/ports/services"
	"github.com/somkassa/exchange_office_app/internal/dto"
)

type historyService struct {
	BaseService
	historyRepo portsrepo.HistoryRepositoryFacade
}

// NewHistoryService creates the ledger read/correction service.
func NewHistoryService(historyRepo portsrepo.HistoryRepositoryFacade) portssvc.HistorySvcFacade {
	return &historyService{historyRepo: historyRepo}
}

// Ensure implementation matches interface
var _ portssvc.HistorySvcFacade = (*historyService)(nil)

func (s *historyService) ListEntries(ctx context.Context, params dto.ListEntriesParams) ([]domain.ExchangeEntry, error) {
	if params.OperationType != nil && !domain.OperationType(*params.OperationType).IsValid() {
		return nil, fmt.Errorf("%w: %q", apperrors.ErrInvalidOperationType, *params.OperationType)
	}
	return s.historyRepo.FindEntries(ctx, portsrepo.EntryFilter{
		CurrencyCode:  params.CurrencyCode,
		OperationType: params.OperationType,
		Limit:         params.Limit,
	})
}

func (s *historyService) ListEntriesInRange(ctx context.Context, from, to time.Time, params dto.ListEntriesParams) ([]domain.ExchangeEntry, error) {
	if to.Before(from) {
		return nil, fmt.Errorf("%w: range end precedes start", apperrors.ErrInvalidDateRange)
	}
	if params.OperationType != nil && !domain.OperationType(*params.OperationType).IsValid() {
		return nil, fmt.Errorf("%w: %q", apperrors.ErrInvalidOperationType, *params.OperationType)
	}
	return s.historyRepo.FindEntries(ctx, portsrepo.EntryFilter{
		CurrencyCode:  params.CurrencyCode,
		OperationType: params.OperationType,
		From:          &from,
		To:            &to,
		Limit:         params.Limit,
	})
}

func (s *historyService) ListEntryCodes(ctx context.Context) ([]string, error) {
	return s.historyRepo.DistinctCurrencyCodes(ctx)
}

func (s *historyService) ListEntryTypes(ctx context.Context) ([]string, error) {
	return s.historyRepo.DistinctOperationTypes(ctx)
}

// CreateEntry writes a ledger row directly. This is the administrative
// backfill path: balances stay untouched and the rate*quantity arithmetic is
// accepted as given.
func (s *historyService) CreateEntry(ctx context.Context, req dto.CreateEntryRequest) (*domain.ExchangeEntry, error) {
	if req.CurrencyCode == "" || req.Rate == nil || req.Quantity == nil || req.Total == nil {
		return nil, fmt.Errorf("%w: currency_code, operation_type, rate, quantity and total are required", apperrors.ErrValidation)
	}
	opType := domain.OperationType(req.OperationType)
	if !opType.IsValid() {
		return nil, fmt.Errorf("%w: %q", apperrors.ErrInvalidOperationType, req.OperationType)
	}

	createdAt := time.Now().UTC()
	if req.CreatedAt != nil {
		createdAt = req.CreatedAt.UTC()
	}

	inserted, err := s.historyRepo.InsertEntry(ctx, domain.ExchangeEntry{
		CurrencyCode:  req.CurrencyCode,
		OperationType: opType,
		Rate:          *req.Rate,
		Quantity:      *req.Quantity,
		Total:         *req.Total,
		CreatedAt:     createdAt,
	})
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "history entry inserted", "entry_id", inserted.EntryID)
	return inserted, nil
}

func (s *historyService) UpdateEntry(ctx context.Context, entryID int64, req dto.UpdateEntryRequest) (*domain.ExchangeEntry, error) {
	if req.OperationType != nil && !domain.OperationType(*req.OperationType).IsValid() {
		return nil, fmt.Errorf("%w: %q", apperrors.ErrInvalidOperationType, *req.OperationType)
	}

	var createdAt *time.Time
	if req.CreatedAt != nil {
		utc := req.CreatedAt.UTC()
		createdAt = &utc
	}

	updated, err := s.historyRepo.UpdateEntry(ctx, entryID, portsrepo.EntryUpdate{
		CurrencyCode:  req.CurrencyCode,
		OperationType: req.OperationType,
		Rate:          req.Rate,
		Quantity:      req.Quantity,
		Total:         req.Total,
		CreatedAt:     createdAt,
	})
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "history entry updated", "entry_id", entryID)
	return updated, nil
}

func (s *historyService) DeleteEntry(ctx context.Context, entryID int64) error {
	if err := s.historyRepo.DeleteEntry(ctx, entryID); err != nil {
		return err
	}
	s.LogInfo(ctx, "history entry deleted", "entry_id", entryID)
	return nil
}
