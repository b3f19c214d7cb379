package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/somkassa/exchange_office_app/internal/apperrors"
	"github.com/somkassa/exchange_office_app/internal/core/domain"
	portssvc "github.com/somkassa/exchange_office_app/internal/core/ports/services"
	"github.com/somkassa/exchange_office_app/internal/dto"
	"github.com/somkassa/exchange_office_app/internal/middleware"
)

// --- Mock ExchangeService ---
type MockExchangeService struct {
	mock.Mock
}

func (m *MockExchangeService) PerformExchange(ctx context.Context, req dto.ExchangeRequest) (*domain.ExchangeResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeResult), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.ExchangeSvcFacade = (*MockExchangeService)(nil)

// --- Test Suite ---
type ExchangeHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockExchangeService
	jwtSecret   string
}

func (suite *ExchangeHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "exchange-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *ExchangeHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.mockService = new(MockExchangeService)

	v1 := suite.router.Group("/api/v1", middleware.AuthMiddleware(suite.jwtSecret))
	registerExchangeRoutes(v1, suite.mockService)
}

func (suite *ExchangeHandlerTestSuite) postExchange(body map[string]any, token string) *httptest.ResponseRecorder {
	payload, err := json.Marshal(body)
	suite.Require().NoError(err)

	req, _ := http.NewRequest(http.MethodPost, "/api/v1/exchange", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func validBody() map[string]any {
	return map[string]any{
		"currency_code":  "USD",
		"operation_type": "Purchase",
		"rate":           "89.5",
		"quantity":       "100",
		"total":          "8950",
	}
}

// --- Test Cases ---

func (suite *ExchangeHandlerTestSuite) TestPerformExchange_Success() {
	token := suite.generateTestToken(uuid.NewString())
	result := &domain.ExchangeResult{
		Currency: domain.Currency{Code: "USD", Quantity: decimal.NewFromInt(100)},
		Base:     domain.Currency{Code: domain.BaseCurrencyCode, Quantity: decimal.NewFromInt(1050)},
		Entry: domain.ExchangeEntry{
			EntryID:       1,
			CurrencyCode:  "USD",
			OperationType: domain.Purchase,
			Rate:          decimal.NewFromFloat(89.5),
			Quantity:      decimal.NewFromInt(100),
			Total:         decimal.NewFromInt(8950),
			CreatedAt:     time.Now().UTC(),
		},
	}

	suite.mockService.On("PerformExchange", mock.Anything, mock.MatchedBy(func(req dto.ExchangeRequest) bool {
		return req.CurrencyCode == "USD" && req.OperationType == "Purchase" && req.Total.Equal(decimal.NewFromInt(8950))
	})).Return(result, nil).Once()

	w := suite.postExchange(validBody(), token)

	suite.Equal(http.StatusCreated, w.Code)

	var resp dto.ExchangeResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("USD", resp.Currency.Code)
	suite.Equal(int64(1), resp.Entry.ID)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *ExchangeHandlerTestSuite) TestPerformExchange_InsufficientBalance() {
	token := suite.generateTestToken(uuid.NewString())

	suite.mockService.On("PerformExchange", mock.Anything, mock.AnythingOfType("dto.ExchangeRequest")).
		Return(nil, fmt.Errorf("%w: not enough SOM", apperrors.ErrInsufficientBalance)).Once()

	w := suite.postExchange(validBody(), token)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(), "SOM")
}

func (suite *ExchangeHandlerTestSuite) TestPerformExchange_AmountMismatch() {
	token := suite.generateTestToken(uuid.NewString())

	suite.mockService.On("PerformExchange", mock.Anything, mock.AnythingOfType("dto.ExchangeRequest")).
		Return(nil, fmt.Errorf("%w: expected 8950, got 9000", apperrors.ErrAmountMismatch)).Once()

	body := validBody()
	body["total"] = "9000"
	w := suite.postExchange(body, token)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *ExchangeHandlerTestSuite) TestPerformExchange_MissingField() {
	token := suite.generateTestToken(uuid.NewString())

	body := validBody()
	delete(body, "rate")
	w := suite.postExchange(body, token)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "PerformExchange")
}

func (suite *ExchangeHandlerTestSuite) TestPerformExchange_Unauthorized() {
	w := suite.postExchange(validBody(), "")

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "PerformExchange")
}

func TestExchangeHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ExchangeHandlerTestSuite))
}
