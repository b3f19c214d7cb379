package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Currency mirrors the currencies table.
type Currency struct {
	Code            string
	Quantity        decimal.Decimal
	DefaultBuyRate  decimal.Decimal
	DefaultSellRate decimal.Decimal
	UpdatedAt       time.Time
}
