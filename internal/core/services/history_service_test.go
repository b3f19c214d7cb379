package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/somkassa/exchange_office_app/internal/apperrors"
	"github.com/somkassa/exchange_office_app/internal/core/domain"
	portsrepo "github.com/somkassa/exchange_office_app/internal/core/ports/repositories"
	portssvc "github.com/somkassa/exchange_office_app/internal/core/ports/services"
	"github.com/somkassa/exchange_office_app/internal/core/services"
	"github.com/somkassa/exchange_office_app/internal/dto"
)

type HistoryServiceTestSuite struct {
	suite.Suite
	mockRepo *MockHistoryRepository
	service  portssvc.HistorySvcFacade
}

func (suite *HistoryServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockHistoryRepository)
	suite.service = services.NewHistoryService(suite.mockRepo)
}

func strPtr(s string) *string {
	return &s
}

// --- Test Cases ---

func (suite *HistoryServiceTestSuite) TestListEntries_PassesFilter() {
	ctx := context.Background()
	params := dto.ListEntriesParams{
		CurrencyCode:  strPtr("USD"),
		OperationType: strPtr("Sale"),
		Limit:         10,
	}
	expected := []domain.ExchangeEntry{{EntryID: 1, CurrencyCode: "USD"}}

	suite.mockRepo.On("FindEntries", ctx, mock.MatchedBy(func(f portsrepo.EntryFilter) bool {
		return *f.CurrencyCode == "USD" && *f.OperationType == "Sale" && f.Limit == 10 && f.From == nil && f.To == nil
	})).Return(expected, nil).Once()

	entries, err := suite.service.ListEntries(ctx, params)

	suite.Require().NoError(err)
	suite.Len(entries, 1)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *HistoryServiceTestSuite) TestListEntries_InvalidOperationType() {
	ctx := context.Background()
	params := dto.ListEntriesParams{OperationType: strPtr("Swap")}

	entries, err := suite.service.ListEntries(ctx, params)

	suite.Require().Error(err)
	suite.Nil(entries)
	suite.ErrorIs(err, apperrors.ErrInvalidOperationType)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindEntries")
}

func (suite *HistoryServiceTestSuite) TestListEntriesInRange_InvertedRange() {
	ctx := context.Background()
	from := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	to := from.Add(-24 * time.Hour)

	entries, err := suite.service.ListEntriesInRange(ctx, from, to, dto.ListEntriesParams{})

	suite.Require().Error(err)
	suite.Nil(entries)
	suite.ErrorIs(err, apperrors.ErrInvalidDateRange)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindEntries")
}

func (suite *HistoryServiceTestSuite) TestListEntriesInRange_BoundsPassedThrough() {
	ctx := context.Background()
	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 1, 31, 23, 59, 59, 0, time.UTC)

	suite.mockRepo.On("FindEntries", ctx, mock.MatchedBy(func(f portsrepo.EntryFilter) bool {
		return f.From != nil && f.From.Equal(from) && f.To != nil && f.To.Equal(to)
	})).Return([]domain.ExchangeEntry{}, nil).Once()

	entries, err := suite.service.ListEntriesInRange(ctx, from, to, dto.ListEntriesParams{})

	suite.Require().NoError(err)
	suite.Empty(entries)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *HistoryServiceTestSuite) TestCreateEntry_DefaultsTimestamp() {
	ctx := context.Background()
	req := dto.CreateEntryRequest{
		CurrencyCode:  "USD",
		OperationType: "Purchase",
		Rate:          decPtr(decimal.NewFromInt(89)),
		Quantity:      decPtr(decimal.NewFromInt(10)),
		Total:         decPtr(decimal.NewFromInt(890)),
	}

	inserted := &domain.ExchangeEntry{EntryID: 5, CurrencyCode: "USD"}
	suite.mockRepo.On("InsertEntry", ctx, mock.MatchedBy(func(e domain.ExchangeEntry) bool {
		return e.CurrencyCode == "USD" && !e.CreatedAt.IsZero() && e.CreatedAt.Location() == time.UTC
	})).Return(inserted, nil).Once()

	entry, err := suite.service.CreateEntry(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(int64(5), entry.EntryID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *HistoryServiceTestSuite) TestCreateEntry_HonorsExplicitTimestamp() {
	ctx := context.Background()
	createdAt := time.Date(2025, 12, 24, 10, 30, 0, 0, time.UTC)
	req := dto.CreateEntryRequest{
		CurrencyCode:  "EUR",
		OperationType: "Sale",
		Rate:          decPtr(decimal.NewFromInt(95)),
		Quantity:      decPtr(decimal.NewFromInt(2)),
		Total:         decPtr(decimal.NewFromInt(190)),
		CreatedAt:     &createdAt,
	}

	inserted := &domain.ExchangeEntry{EntryID: 6, CreatedAt: createdAt}
	suite.mockRepo.On("InsertEntry", ctx, mock.MatchedBy(func(e domain.ExchangeEntry) bool {
		return e.CreatedAt.Equal(createdAt)
	})).Return(inserted, nil).Once()

	entry, err := suite.service.CreateEntry(ctx, req)

	suite.Require().NoError(err)
	suite.True(entry.CreatedAt.Equal(createdAt))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *HistoryServiceTestSuite) TestCreateEntry_InvalidOperationType() {
	ctx := context.Background()
	req := dto.CreateEntryRequest{
		CurrencyCode:  "USD",
		OperationType: "Swap",
		Rate:          decPtr(decimal.NewFromInt(1)),
		Quantity:      decPtr(decimal.NewFromInt(1)),
		Total:         decPtr(decimal.NewFromInt(1)),
	}

	entry, err := suite.service.CreateEntry(ctx, req)

	suite.Require().Error(err)
	suite.Nil(entry)
	suite.ErrorIs(err, apperrors.ErrInvalidOperationType)
	suite.mockRepo.AssertNotCalled(suite.T(), "InsertEntry")
}

func (suite *HistoryServiceTestSuite) TestUpdateEntry_PassesThroughWithoutRevalidation() {
	ctx := context.Background()
	// A total inconsistent with rate*quantity is accepted on this path
	newTotal := decimal.NewFromInt(123456)
	req := dto.UpdateEntryRequest{Total: &newTotal}

	updated := &domain.ExchangeEntry{EntryID: 9, Total: newTotal}
	suite.mockRepo.On("UpdateEntry", ctx, int64(9), mock.MatchedBy(func(u portsrepo.EntryUpdate) bool {
		return u.Total != nil && u.Total.Equal(newTotal) && u.Rate == nil
	})).Return(updated, nil).Once()

	entry, err := suite.service.UpdateEntry(ctx, 9, req)

	suite.Require().NoError(err)
	suite.True(entry.Total.Equal(newTotal))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *HistoryServiceTestSuite) TestDeleteEntry_NotFound() {
	ctx := context.Background()

	suite.mockRepo.On("DeleteEntry", ctx, int64(404)).Return(apperrors.ErrNotFound).Once()

	err := suite.service.DeleteEntry(ctx, 404)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *HistoryServiceTestSuite) TestListEntryCodes() {
	ctx := context.Background()

	suite.mockRepo.On("DistinctCurrencyCodes", ctx).Return([]string{"EUR", "USD"}, nil).Once()

	codes, err := suite.service.ListEntryCodes(ctx)

	suite.Require().NoError(err)
	suite.Equal([]string{"EUR", "USD"}, codes)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestHistoryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(HistoryServiceTestSuite))
}
