package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BaseCurrencyCode is the settlement currency every exchange is denominated against.
const BaseCurrencyCode = "SOM"

// Currency represents a held currency balance.
type Currency struct {
	Code            string          `json:"code"` // Primary key, case-sensitive (e.g. "SOM", "USD")
	Quantity        decimal.Decimal `json:"quantity"`
	DefaultBuyRate  decimal.Decimal `json:"default_buy_rate"`  // Advisory quote, never enforced
	DefaultSellRate decimal.Decimal `json:"default_sell_rate"` // Advisory quote, never enforced
	UpdatedAt       time.Time       `json:"updated_at"`        // UTC, refreshed on every mutation
}

// IsBase reports whether this currency is the settlement currency.
func (c Currency) IsBase() bool {
	return c.Code == BaseCurrencyCode
}
