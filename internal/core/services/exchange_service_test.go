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

// --- Mock HistoryRepository ---
type MockHistoryRepository struct {
	mock.Mock
}

func (m *MockHistoryRepository) FindEntries(ctx context.Context, filter portsrepo.EntryFilter) ([]domain.ExchangeEntry, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExchangeEntry), args.Error(1)
}

func (m *MockHistoryRepository) DistinctCurrencyCodes(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockHistoryRepository) DistinctOperationTypes(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockHistoryRepository) InsertEntry(ctx context.Context, entry domain.ExchangeEntry) (*domain.ExchangeEntry, error) {
	args := m.Called(ctx, entry)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeEntry), args.Error(1)
}

func (m *MockHistoryRepository) UpdateEntry(ctx context.Context, entryID int64, update portsrepo.EntryUpdate) (*domain.ExchangeEntry, error) {
	args := m.Called(ctx, entryID, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeEntry), args.Error(1)
}

func (m *MockHistoryRepository) DeleteEntry(ctx context.Context, entryID int64) error {
	args := m.Called(ctx, entryID)
	return args.Error(0)
}

func (m *MockHistoryRepository) RecordExchange(ctx context.Context, entry domain.ExchangeEntry, deltas map[string]decimal.Decimal) (*domain.ExchangeEntry, error) {
	args := m.Called(ctx, entry, deltas)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeEntry), args.Error(1)
}

// --- Test Suite ---
type ExchangeServiceTestSuite struct {
	suite.Suite
	mockCurrencyRepo *MockCurrencyRepository
	mockHistoryRepo  *MockHistoryRepository
	service          portssvc.ExchangeSvcFacade
}

func (suite *ExchangeServiceTestSuite) SetupTest() {
	suite.mockCurrencyRepo = new(MockCurrencyRepository)
	suite.mockHistoryRepo = new(MockHistoryRepository)
	suite.service = services.NewExchangeService(suite.mockCurrencyRepo, suite.mockHistoryRepo)
}

func decPtr(d decimal.Decimal) *decimal.Decimal {
	return &d
}

func purchaseRequest() dto.ExchangeRequest {
	return dto.ExchangeRequest{
		CurrencyCode:  "USD",
		OperationType: "Purchase",
		Rate:          decPtr(decimal.NewFromFloat(89.5)),
		Quantity:      decPtr(decimal.NewFromInt(100)),
		Total:         decPtr(decimal.NewFromInt(8950)),
	}
}

// --- Test Cases ---

func (suite *ExchangeServiceTestSuite) TestPerformExchange_PurchaseSuccess() {
	ctx := context.Background()
	req := purchaseRequest()

	som := &domain.Currency{Code: domain.BaseCurrencyCode, Quantity: decimal.NewFromInt(10000)}
	usd := &domain.Currency{Code: "USD", Quantity: decimal.NewFromInt(20)}

	suite.mockCurrencyRepo.On("FindCurrencyByCode", ctx, domain.BaseCurrencyCode).Return(som, nil).Once()
	suite.mockCurrencyRepo.On("FindCurrencyByCode", ctx, "USD").Return(usd, nil).Once()

	recorded := &domain.ExchangeEntry{
		EntryID:       1,
		CurrencyCode:  "USD",
		OperationType: domain.Purchase,
		Rate:          *req.Rate,
		Quantity:      *req.Quantity,
		Total:         *req.Total,
		CreatedAt:     time.Now().UTC(),
	}
	suite.mockHistoryRepo.On("RecordExchange", ctx, mock.AnythingOfType("domain.ExchangeEntry"), mock.MatchedBy(func(deltas map[string]decimal.Decimal) bool {
		return deltas[domain.BaseCurrencyCode].Equal(decimal.NewFromInt(-8950)) &&
			deltas["USD"].Equal(decimal.NewFromInt(100))
	})).Return(recorded, nil).Once()

	somAfter := &domain.Currency{Code: domain.BaseCurrencyCode, Quantity: decimal.NewFromInt(1050)}
	usdAfter := &domain.Currency{Code: "USD", Quantity: decimal.NewFromInt(120)}
	suite.mockCurrencyRepo.On("FindCurrencyByCode", ctx, "USD").Return(usdAfter, nil).Once()
	suite.mockCurrencyRepo.On("FindCurrencyByCode", ctx, domain.BaseCurrencyCode).Return(somAfter, nil).Once()

	result, err := suite.service.PerformExchange(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(result)
	suite.Equal(int64(1), result.Entry.EntryID)
	suite.True(result.Currency.Quantity.Equal(decimal.NewFromInt(120)))
	suite.True(result.Base.Quantity.Equal(decimal.NewFromInt(1050)))
	suite.mockHistoryRepo.AssertExpectations(suite.T())
}

func (suite *ExchangeServiceTestSuite) TestPerformExchange_SaleSuccess() {
	ctx := context.Background()
	req := dto.ExchangeRequest{
		CurrencyCode:  "EUR",
		OperationType: "Sale",
		Rate:          decPtr(decimal.NewFromInt(95)),
		Quantity:      decPtr(decimal.NewFromInt(10)),
		Total:         decPtr(decimal.NewFromInt(950)),
	}

	som := &domain.Currency{Code: domain.BaseCurrencyCode, Quantity: decimal.NewFromInt(100)}
	eur := &domain.Currency{Code: "EUR", Quantity: decimal.NewFromInt(50)}

	suite.mockCurrencyRepo.On("FindCurrencyByCode", ctx, domain.BaseCurrencyCode).Return(som, nil).Once()
	suite.mockCurrencyRepo.On("FindCurrencyByCode", ctx, "EUR").Return(eur, nil).Once()

	recorded := &domain.ExchangeEntry{EntryID: 7, CurrencyCode: "EUR", OperationType: domain.Sale}
	suite.mockHistoryRepo.On("RecordExchange", ctx, mock.AnythingOfType("domain.ExchangeEntry"), mock.MatchedBy(func(deltas map[string]decimal.Decimal) bool {
		return deltas[domain.BaseCurrencyCode].Equal(decimal.NewFromInt(950)) &&
			deltas["EUR"].Equal(decimal.NewFromInt(-10))
	})).Return(recorded, nil).Once()

	suite.mockCurrencyRepo.On("FindCurrencyByCode", ctx, "EUR").Return(eur, nil).Once()
	suite.mockCurrencyRepo.On("FindCurrencyByCode", ctx, domain.BaseCurrencyCode).Return(som, nil).Once()

	result, err := suite.service.PerformExchange(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(int64(7), result.Entry.EntryID)
	suite.mockHistoryRepo.AssertExpectations(suite.T())
}

func (suite *ExchangeServiceTestSuite) TestPerformExchange_FirstPurchaseCreatesCurrency() {
	ctx := context.Background()
	req := purchaseRequest()

	som := &domain.Currency{Code: domain.BaseCurrencyCode, Quantity: decimal.NewFromInt(10000)}

	suite.mockCurrencyRepo.On("FindCurrencyByCode", ctx, domain.BaseCurrencyCode).Return(som, nil).Once()
	// Unknown foreign currency is not an error on the purchase path
	suite.mockCurrencyRepo.On("FindCurrencyByCode", ctx, "USD").Return(nil, apperrors.ErrNotFound).Once()

	recorded := &domain.ExchangeEntry{EntryID: 2, CurrencyCode: "USD", OperationType: domain.Purchase}
	suite.mockHistoryRepo.On("RecordExchange", ctx, mock.AnythingOfType("domain.ExchangeEntry"), mock.Anything).Return(recorded, nil).Once()

	usdAfter := &domain.Currency{Code: "USD", Quantity: decimal.NewFromInt(100)}
	suite.mockCurrencyRepo.On("FindCurrencyByCode", ctx, "USD").Return(usdAfter, nil).Once()
	suite.mockCurrencyRepo.On("FindCurrencyByCode", ctx, domain.BaseCurrencyCode).Return(som, nil).Once()

	result, err := suite.service.PerformExchange(ctx, req)

	suite.Require().NoError(err)
	suite.Equal("USD", result.Currency.Code)
	suite.mockHistoryRepo.AssertExpectations(suite.T())
}

func (suite *ExchangeServiceTestSuite) TestPerformExchange_InsufficientBase() {
	ctx := context.Background()
	req := purchaseRequest()

	som := &domain.Currency{Code: domain.BaseCurrencyCode, Quantity: decimal.NewFromInt(100)}
	usd := &domain.Currency{Code: "USD", Quantity: decimal.Zero}

	suite.mockCurrencyRepo.On("FindCurrencyByCode", ctx, domain.BaseCurrencyCode).Return(som, nil).Once()
	suite.mockCurrencyRepo.On("FindCurrencyByCode", ctx, "USD").Return(usd, nil).Once()

	result, err := suite.service.PerformExchange(ctx, req)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrInsufficientBalance)
	suite.Contains(err.Error(), domain.BaseCurrencyCode)
	suite.mockHistoryRepo.AssertNotCalled(suite.T(), "RecordExchange")
}

func (suite *ExchangeServiceTestSuite) TestPerformExchange_InsufficientForeign() {
	ctx := context.Background()
	req := dto.ExchangeRequest{
		CurrencyCode:  "EUR",
		OperationType: "Sale",
		Rate:          decPtr(decimal.NewFromInt(95)),
		Quantity:      decPtr(decimal.NewFromInt(10)),
		Total:         decPtr(decimal.NewFromInt(950)),
	}

	som := &domain.Currency{Code: domain.BaseCurrencyCode, Quantity: decimal.NewFromInt(100)}
	eur := &domain.Currency{Code: "EUR", Quantity: decimal.NewFromInt(5)}

	suite.mockCurrencyRepo.On("FindCurrencyByCode", ctx, domain.BaseCurrencyCode).Return(som, nil).Once()
	suite.mockCurrencyRepo.On("FindCurrencyByCode", ctx, "EUR").Return(eur, nil).Once()

	result, err := suite.service.PerformExchange(ctx, req)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrInsufficientBalance)
	suite.Contains(err.Error(), "EUR")
	suite.mockHistoryRepo.AssertNotCalled(suite.T(), "RecordExchange")
}

func (suite *ExchangeServiceTestSuite) TestPerformExchange_AmountMismatch() {
	ctx := context.Background()
	req := purchaseRequest()
	req.Total = decPtr(decimal.NewFromInt(9000))

	result, err := suite.service.PerformExchange(ctx, req)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrAmountMismatch)
	suite.mockCurrencyRepo.AssertNotCalled(suite.T(), "FindCurrencyByCode")
	suite.mockHistoryRepo.AssertNotCalled(suite.T(), "RecordExchange")
}

func (suite *ExchangeServiceTestSuite) TestPerformExchange_RoundedTotalAccepted() {
	ctx := context.Background()
	// 3.333 * 3 = 9.999, rounds to 10.00
	req := dto.ExchangeRequest{
		CurrencyCode:  "USD",
		OperationType: "Purchase",
		Rate:          decPtr(decimal.NewFromFloat(3.333)),
		Quantity:      decPtr(decimal.NewFromInt(3)),
		Total:         decPtr(decimal.NewFromFloat(10.00)),
	}

	som := &domain.Currency{Code: domain.BaseCurrencyCode, Quantity: decimal.NewFromInt(100)}
	usd := &domain.Currency{Code: "USD", Quantity: decimal.Zero}
	suite.mockCurrencyRepo.On("FindCurrencyByCode", ctx, domain.BaseCurrencyCode).Return(som, nil).Twice()
	suite.mockCurrencyRepo.On("FindCurrencyByCode", ctx, "USD").Return(usd, nil).Twice()

	recorded := &domain.ExchangeEntry{EntryID: 3, CurrencyCode: "USD"}
	suite.mockHistoryRepo.On("RecordExchange", ctx, mock.AnythingOfType("domain.ExchangeEntry"), mock.Anything).Return(recorded, nil).Once()

	_, err := suite.service.PerformExchange(ctx, req)

	suite.Require().NoError(err)
	suite.mockHistoryRepo.AssertExpectations(suite.T())
}

func (suite *ExchangeServiceTestSuite) TestPerformExchange_InvalidOperationType() {
	ctx := context.Background()
	req := purchaseRequest()
	req.OperationType = "Transfer"

	result, err := suite.service.PerformExchange(ctx, req)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrInvalidOperationType)
}

func (suite *ExchangeServiceTestSuite) TestPerformExchange_MissingFields() {
	ctx := context.Background()
	req := purchaseRequest()
	req.Rate = nil

	result, err := suite.service.PerformExchange(ctx, req)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ExchangeServiceTestSuite) TestPerformExchange_NonPositiveAmounts() {
	ctx := context.Background()
	req := purchaseRequest()
	req.Quantity = decPtr(decimal.Zero)
	req.Total = decPtr(decimal.Zero)

	result, err := suite.service.PerformExchange(ctx, req)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ExchangeServiceTestSuite) TestPerformExchange_BaseAgainstItselfRejected() {
	ctx := context.Background()
	req := purchaseRequest()
	req.CurrencyCode = domain.BaseCurrencyCode

	result, err := suite.service.PerformExchange(ctx, req)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ExchangeServiceTestSuite) TestPerformExchange_RecorderFailurePropagates() {
	ctx := context.Background()
	req := purchaseRequest()

	som := &domain.Currency{Code: domain.BaseCurrencyCode, Quantity: decimal.NewFromInt(10000)}
	usd := &domain.Currency{Code: "USD", Quantity: decimal.Zero}
	suite.mockCurrencyRepo.On("FindCurrencyByCode", ctx, domain.BaseCurrencyCode).Return(som, nil).Once()
	suite.mockCurrencyRepo.On("FindCurrencyByCode", ctx, "USD").Return(usd, nil).Once()

	// Concurrent writer drained the balance between pre-check and lock
	suite.mockHistoryRepo.On("RecordExchange", ctx, mock.AnythingOfType("domain.ExchangeEntry"), mock.Anything).
		Return(nil, apperrors.ErrInsufficientBalance).Once()

	result, err := suite.service.PerformExchange(ctx, req)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrInsufficientBalance)
	suite.mockHistoryRepo.AssertExpectations(suite.T())
}

func TestExchangeServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ExchangeServiceTestSuite))
}
