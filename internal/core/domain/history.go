package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OperationType distinguishes the two sides of an exchange.
type OperationType string

const (
	// Purchase spends SOM to acquire foreign currency.
	Purchase OperationType = "Purchase"
	// Sale spends foreign currency to acquire SOM.
	Sale OperationType = "Sale"
)

// IsValid reports whether the operation type is one of the known values.
func (t OperationType) IsValid() bool {
	return t == Purchase || t == Sale
}

// ExchangeEntry is an immutable history record of one completed exchange
// (or an administratively inserted row).
type ExchangeEntry struct {
	EntryID       int64           `json:"id"`
	CurrencyCode  string          `json:"currency_code"`
	OperationType OperationType   `json:"operation_type"`
	Rate          decimal.Decimal `json:"rate"`     // SOM per unit of foreign currency
	Quantity      decimal.Decimal `json:"quantity"` // Foreign currency amount
	Total         decimal.Decimal `json:"total"`    // SOM amount moved
	CreatedAt     time.Time       `json:"created_at"`
}

// ExchangeResult is what the exchange engine returns on success: both
// updated balances and the ledger entry it appended.
type ExchangeResult struct {
	Currency Currency      `json:"currency"`
	Base     Currency      `json:"base"`
	Entry    ExchangeEntry `json:"entry"`
}
