package dto

import (
	"github.com/shopspring/decimal"

	"github.com/somkassa/exchange_office_app/internal/core/domain"
)

// ExchangeRequest carries the raw parameters of one exchange operation.
// Positivity, operation type and the rate*quantity=total consistency are
// validated by the exchange engine, not by binding, so the engine can
// surface its structured errors.
type ExchangeRequest struct {
	CurrencyCode  string           `json:"currency_code" binding:"required,alphanum,max=10"`
	OperationType string           `json:"operation_type" binding:"required"`
	Rate          *decimal.Decimal `json:"rate" binding:"required"`
	Quantity      *decimal.Decimal `json:"quantity" binding:"required"`
	Total         *decimal.Decimal `json:"total" binding:"required"`
}

// ExchangeResponse returns both updated balances and the appended ledger row.
type ExchangeResponse struct {
	Currency CurrencyResponse `json:"currency"`
	Base     CurrencyResponse `json:"base"`
	Entry    EntryResponse    `json:"entry"`
}

// ToExchangeResponse converts a domain.ExchangeResult to ExchangeResponse DTO
func ToExchangeResponse(r *domain.ExchangeResult) ExchangeResponse {
	return ExchangeResponse{
		Currency: ToCurrencyResponse(&r.Currency),
		Base:     ToCurrencyResponse(&r.Base),
		Entry:    ToEntryResponse(&r.Entry),
	}
}
