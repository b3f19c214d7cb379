package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/somkassa/exchange_office_app/internal/core/domain"
)

// UpsertCurrencyRequest creates a currency or updates it by code. Omitted
// fields keep their prior value (or default to zero on creation).
type UpsertCurrencyRequest struct {
	Code            string           `json:"code" binding:"required,alphanum,max=10"`
	Quantity        *decimal.Decimal `json:"quantity"`
	DefaultBuyRate  *decimal.Decimal `json:"default_buy_rate"`
	DefaultSellRate *decimal.Decimal `json:"default_sell_rate"`
}

// SetQuantityRequest sets an absolute quantity for a currency.
type SetQuantityRequest struct {
	Quantity *decimal.Decimal `json:"quantity" binding:"required"`
}

// CurrencyResponse defines the data returned for a currency.
type CurrencyResponse struct {
	Code            string          `json:"code"`
	Quantity        decimal.Decimal `json:"quantity"`
	DefaultBuyRate  decimal.Decimal `json:"default_buy_rate"`
	DefaultSellRate decimal.Decimal `json:"default_sell_rate"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// ToCurrencyResponse converts a domain.Currency to CurrencyResponse DTO
func ToCurrencyResponse(c *domain.Currency) CurrencyResponse {
	return CurrencyResponse{
		Code:            c.Code,
		Quantity:        c.Quantity,
		DefaultBuyRate:  c.DefaultBuyRate,
		DefaultSellRate: c.DefaultSellRate,
		UpdatedAt:       c.UpdatedAt,
	}
}

// ToListCurrencyResponse converts a slice of domain currencies to DTOs
func ToListCurrencyResponse(currencies []domain.Currency) []CurrencyResponse {
	res := make([]CurrencyResponse, len(currencies))
	for i := range currencies {
		res[i] = ToCurrencyResponse(&currencies[i])
	}
	return res
}

// CurrencySummaryResponse is the dashboard snapshot of all balances.
type CurrencySummaryResponse struct {
	SomBalance      decimal.Decimal            `json:"som_balance"`
	OtherCurrencies map[string]decimal.Decimal `json:"other_currencies"`
}
