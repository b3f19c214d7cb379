package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/somkassa/exchange_office_app/internal/apperrors"
	"github.com/somkassa/exchange_office_app/internal/core/domain"
	portssvc "github.com/somkassa/exchange_office_app/internal/core/ports/services"
	"github.com/somkassa/exchange_office_app/internal/core/services"
	"github.com/somkassa/exchange_office_app/internal/dto"
)

// --- Mock CurrencyRepository ---
type MockCurrencyRepository struct {
	mock.Mock
}

func (m *MockCurrencyRepository) FindCurrencyByCode(ctx context.Context, code string) (*domain.Currency, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) SaveCurrency(ctx context.Context, currency domain.Currency) error {
	args := m.Called(ctx, currency)
	return args.Error(0)
}

func (m *MockCurrencyRepository) SetCurrencyQuantity(ctx context.Context, code string, quantity decimal.Decimal, updatedAt time.Time) (*domain.Currency, error) {
	args := m.Called(ctx, code, quantity, updatedAt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) DeleteCurrency(ctx context.Context, code string) error {
	args := m.Called(ctx, code)
	return args.Error(0)
}

// --- Test Suite ---
type CurrencyServiceTestSuite struct {
	suite.Suite
	mockRepo *MockCurrencyRepository
	service  portssvc.CurrencySvcFacade
}

func (suite *CurrencyServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockCurrencyRepository)
	suite.service = services.NewCurrencyService(suite.mockRepo)
}

// --- Test Cases ---

func (suite *CurrencyServiceTestSuite) TestUpsertCurrency_CreatesNew() {
	ctx := context.Background()
	quantity := decimal.NewFromInt(100)
	req := dto.UpsertCurrencyRequest{
		Code:     "USD",
		Quantity: &quantity,
	}

	suite.mockRepo.On("FindCurrencyByCode", ctx, "USD").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveCurrency", ctx, mock.MatchedBy(func(c domain.Currency) bool {
		return c.Code == "USD" && c.Quantity.Equal(quantity) && c.DefaultBuyRate.IsZero()
	})).Return(nil).Once()

	currency, err := suite.service.UpsertCurrency(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(currency)
	suite.Equal("USD", currency.Code)
	suite.True(currency.Quantity.Equal(quantity))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestUpsertCurrency_PartialUpdateKeepsPriorValues() {
	ctx := context.Background()
	existing := &domain.Currency{
		Code:            "EUR",
		Quantity:        decimal.NewFromInt(50),
		DefaultBuyRate:  decimal.NewFromFloat(94.5),
		DefaultSellRate: decimal.NewFromFloat(95.5),
		UpdatedAt:       time.Now().UTC().Add(-time.Hour),
	}
	newBuyRate := decimal.NewFromFloat(96.0)
	req := dto.UpsertCurrencyRequest{
		Code:           "EUR",
		DefaultBuyRate: &newBuyRate,
	}

	suite.mockRepo.On("FindCurrencyByCode", ctx, "EUR").Return(existing, nil).Once()
	suite.mockRepo.On("SaveCurrency", ctx, mock.MatchedBy(func(c domain.Currency) bool {
		return c.Quantity.Equal(existing.Quantity) &&
			c.DefaultBuyRate.Equal(newBuyRate) &&
			c.DefaultSellRate.Equal(existing.DefaultSellRate)
	})).Return(nil).Once()

	currency, err := suite.service.UpsertCurrency(ctx, req)

	suite.Require().NoError(err)
	suite.True(currency.DefaultBuyRate.Equal(newBuyRate))
	suite.True(currency.Quantity.Equal(existing.Quantity))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestUpsertCurrency_NegativeQuantityRejected() {
	ctx := context.Background()
	quantity := decimal.NewFromInt(-1)
	req := dto.UpsertCurrencyRequest{Code: "USD", Quantity: &quantity}

	currency, err := suite.service.UpsertCurrency(ctx, req)

	suite.Require().Error(err)
	suite.Nil(currency)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveCurrency")
}

func (suite *CurrencyServiceTestSuite) TestSetCurrencyQuantity_Success() {
	ctx := context.Background()
	quantity := decimal.NewFromInt(250)
	updated := &domain.Currency{Code: "USD", Quantity: quantity, UpdatedAt: time.Now().UTC()}

	suite.mockRepo.On("SetCurrencyQuantity", ctx, "USD", quantity, mock.AnythingOfType("time.Time")).Return(updated, nil).Once()

	currency, err := suite.service.SetCurrencyQuantity(ctx, "USD", quantity)

	suite.Require().NoError(err)
	suite.True(currency.Quantity.Equal(quantity))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestSetCurrencyQuantity_NegativeRejected() {
	ctx := context.Background()

	currency, err := suite.service.SetCurrencyQuantity(ctx, "USD", decimal.NewFromInt(-10))

	suite.Require().Error(err)
	suite.Nil(currency)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SetCurrencyQuantity")
}

func (suite *CurrencyServiceTestSuite) TestSetCurrencyQuantity_UnknownCode() {
	ctx := context.Background()
	quantity := decimal.NewFromInt(5)

	suite.mockRepo.On("SetCurrencyQuantity", ctx, "XXX", quantity, mock.AnythingOfType("time.Time")).Return(nil, apperrors.ErrNotFound).Once()

	currency, err := suite.service.SetCurrencyQuantity(ctx, "XXX", quantity)

	suite.Require().Error(err)
	suite.Nil(currency)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestDeleteCurrency_BaseProtected() {
	ctx := context.Background()

	err := suite.service.DeleteCurrency(ctx, domain.BaseCurrencyCode)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockRepo.AssertNotCalled(suite.T(), "DeleteCurrency")
}

func (suite *CurrencyServiceTestSuite) TestDeleteCurrency_Success() {
	ctx := context.Background()

	suite.mockRepo.On("DeleteCurrency", ctx, "USD").Return(nil).Once()

	err := suite.service.DeleteCurrency(ctx, "USD")

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestListCurrencies_PropagatesError() {
	ctx := context.Background()
	expectedErr := assert.AnError

	suite.mockRepo.On("ListCurrencies", ctx).Return(nil, expectedErr).Once()

	currencies, err := suite.service.ListCurrencies(ctx)

	suite.Require().Error(err)
	suite.Nil(currencies)
	suite.ErrorIs(err, expectedErr)
}

func TestCurrencyServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CurrencyServiceTestSuite))
}
