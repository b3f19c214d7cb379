package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeEntry mirrors the history table.
type ExchangeEntry struct {
	EntryID       int64
	CurrencyCode  string
	OperationType string
	Rate          decimal.Decimal
	Quantity      decimal.Decimal
	Total         decimal.Decimal
	CreatedAt     time.Time
}
